package class

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrClassNotFound = errors.New("class not found")

type Repository interface {
	GetClass(ctx context.Context, id string) (Class, error)
	ListClasses(ctx context.Context) ([]Class, error)
	CreateClass(ctx context.Context, c Class) (string, error)
	UpdateClass(ctx context.Context, c Class) error
	DeleteClass(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewClassRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const classColumns = `id, title, description, focus_area, sub_focus_area, service_id, provider_id,
	instructor_name, recurrence, mode, capacity, subscription_type, status, base_price, currency,
	created_by, created_at`

func scanClass(row pgx.Row) (Class, error) {
	var c Class
	var serviceId *string
	err := row.Scan(&c.Id, &c.Title, &c.Description, &c.FocusArea, &c.SubFocusArea, &serviceId,
		&c.ProviderId, &c.InstructorName, &c.Recurrence, &c.Mode, &c.Capacity, &c.SubscriptionType,
		&c.Status, &c.BasePrice, &c.Currency, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return Class{}, err
	}
	if serviceId != nil {
		c.ServiceId = *serviceId
	}
	return c, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *RepositoryImpl) GetClass(ctx context.Context, id string) (Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	c, err := scanClass(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Class{}, ErrClassNotFound
		}
		err := fmt.Errorf("could not query class: %w", err)
		log.Error(err)
		return Class{}, err
	}
	return c, nil
}

func (r *RepositoryImpl) ListClasses(ctx context.Context) ([]Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY title`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var classes []Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			err := fmt.Errorf("could not scan class row: %w", err)
			log.Error(err)
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func (r *RepositoryImpl) CreateClass(ctx context.Context, c Class) (string, error) {
	query := `INSERT INTO classes (title, description, focus_area, sub_focus_area, service_id, provider_id,
			instructor_name, recurrence, mode, capacity, subscription_type, status, base_price, currency,
			created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		c.Title, c.Description, c.FocusArea, c.SubFocusArea, nullable(c.ServiceId), c.ProviderId,
		c.InstructorName, c.Recurrence, c.Mode, c.Capacity, c.SubscriptionType, c.Status,
		c.BasePrice, c.Currency, c.CreatedBy,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not insert class: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *RepositoryImpl) UpdateClass(ctx context.Context, c Class) error {
	query := `UPDATE classes
		SET title = $2, description = $3, focus_area = $4, sub_focus_area = $5, service_id = $6,
			provider_id = $7, instructor_name = $8, recurrence = $9, mode = $10, capacity = $11,
			subscription_type = $12, status = $13, base_price = $14, currency = $15
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		c.Id, c.Title, c.Description, c.FocusArea, c.SubFocusArea, nullable(c.ServiceId),
		c.ProviderId, c.InstructorName, c.Recurrence, c.Mode, c.Capacity, c.SubscriptionType,
		c.Status, c.BasePrice, c.Currency,
	)
	if err != nil {
		err := fmt.Errorf("could not update class: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteClass(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not delete class: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
