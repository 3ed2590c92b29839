package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrPartnerNotFound = errors.New("partner not found")

type Repository interface {
	GetPartner(ctx context.Context, id string) (Partner, error)
	ListPartners(ctx context.Context) ([]Partner, error)
	CreatePartner(ctx context.Context, p Partner) (string, error)
	UpdatePartner(ctx context.Context, p Partner) error
	DeletePartner(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewPartnerRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const partnerColumns = `id, name, type, roles, contact_person, contact_email, contact_phone, city, state, country, status, parent_id`

func scanPartner(row pgx.Row) (Partner, error) {
	var p Partner
	var parentId *string
	err := row.Scan(&p.Id, &p.Name, &p.Type, &p.Roles, &p.ContactPerson, &p.ContactEmail,
		&p.ContactPhone, &p.City, &p.State, &p.Country, &p.Status, &parentId)
	if err != nil {
		return Partner{}, err
	}
	if parentId != nil {
		p.ParentId = *parentId
	}
	return p, nil
}

func (r *RepositoryImpl) GetPartner(ctx context.Context, id string) (Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	p, err := scanPartner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Partner{}, ErrPartnerNotFound
		}
		err := fmt.Errorf("could not query partner: %w", err)
		log.Error(err)
		return Partner{}, err
	}
	return p, nil
}

func (r *RepositoryImpl) ListPartners(ctx context.Context) ([]Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query partners: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var partners []Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

func (r *RepositoryImpl) CreatePartner(ctx context.Context, p Partner) (string, error) {
	query := `INSERT INTO partners (name, type, roles, contact_person, contact_email, contact_phone,
					city, state, country, status, parent_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Type, p.Roles, p.ContactPerson, p.ContactEmail, p.ContactPhone,
		p.City, p.State, p.Country, p.Status, nullable(p.ParentId),
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *RepositoryImpl) UpdatePartner(ctx context.Context, p Partner) error {
	query := `UPDATE partners SET
					name = $1, type = $2, roles = $3, contact_person = $4, contact_email = $5,
					contact_phone = $6, city = $7, state = $8, country = $9, status = $10, parent_id = $11
				WHERE id = $12`
	result, err := r.db.Exec(ctx, query,
		p.Name, p.Type, p.Roles, p.ContactPerson, p.ContactEmail, p.ContactPhone,
		p.City, p.State, p.Country, p.Status, nullable(p.ParentId), p.Id,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrPartnerNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeletePartner(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
