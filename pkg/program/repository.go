package program

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrProgramNotFound = errors.New("program not found")

type Repository interface {
	GetProgram(ctx context.Context, id string) (Program, error)
	// ListPrograms returns all programs ordered by creation time, newest
	// first.
	ListPrograms(ctx context.Context) ([]Program, error)
	CreateProgram(ctx context.Context, p Program) (string, error)
	UpdateProgram(ctx context.Context, p Program) error
	DeleteProgram(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewProgramRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const programColumns = `id, title, short_description, detailed_description, focus_area, sub_focus_area, tags,
	duration, program_type, provider_id, gender, age_group, geography, status, base_price, offer_price,
	currency, created_by, created_at`

func scanProgram(row pgx.Row) (Program, error) {
	var p Program
	err := row.Scan(&p.Id, &p.Title, &p.ShortDescription, &p.DetailedDescription, &p.FocusArea,
		&p.SubFocusArea, &p.Tags, &p.Duration, &p.ProgramType, &p.ProviderId, &p.Gender,
		&p.AgeGroup, &p.Geography, &p.Status, &p.BasePrice, &p.OfferPrice, &p.Currency,
		&p.CreatedBy, &p.CreatedAt)
	return p, err
}

func (r *RepositoryImpl) GetProgram(ctx context.Context, id string) (Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id = $1`
	p, err := scanProgram(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Program{}, ErrProgramNotFound
		}
		err := fmt.Errorf("could not query program: %w", err)
		log.Error(err)
		return Program{}, err
	}
	return p, nil
}

func (r *RepositoryImpl) ListPrograms(ctx context.Context) ([]Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			err := fmt.Errorf("could not scan program row: %w", err)
			log.Error(err)
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *RepositoryImpl) CreateProgram(ctx context.Context, p Program) (string, error) {
	query := `INSERT INTO programs (title, short_description, detailed_description, focus_area, sub_focus_area,
			tags, duration, program_type, provider_id, gender, age_group, geography, status, base_price,
			offer_price, currency, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		p.Title, p.ShortDescription, p.DetailedDescription, p.FocusArea, p.SubFocusArea,
		p.Tags, p.Duration, p.ProgramType, p.ProviderId, p.Gender, p.AgeGroup, p.Geography,
		p.Status, p.BasePrice, p.OfferPrice, p.Currency, p.CreatedBy,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not insert program: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *RepositoryImpl) UpdateProgram(ctx context.Context, p Program) error {
	query := `UPDATE programs
		SET title = $2, short_description = $3, detailed_description = $4, focus_area = $5,
			sub_focus_area = $6, tags = $7, duration = $8, program_type = $9, provider_id = $10,
			gender = $11, age_group = $12, geography = $13, status = $14, base_price = $15,
			offer_price = $16, currency = $17
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		p.Id, p.Title, p.ShortDescription, p.DetailedDescription, p.FocusArea, p.SubFocusArea,
		p.Tags, p.Duration, p.ProgramType, p.ProviderId, p.Gender, p.AgeGroup, p.Geography,
		p.Status, p.BasePrice, p.OfferPrice, p.Currency,
	)
	if err != nil {
		err := fmt.Errorf("could not update program: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrProgramNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteProgram(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not delete program: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
