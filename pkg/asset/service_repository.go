package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	GetService(ctx context.Context, id string) (Service, error)
	ListServices(ctx context.Context) ([]Service, error)
	CreateService(ctx context.Context, s Service) (string, error)
	UpdateService(ctx context.Context, s Service) error
	DeleteService(ctx context.Context, id string) (bool, error)
}

type ServiceRepositoryImpl struct {
	db *pgxpool.Pool
}

func NewServiceRepo(db *pgxpool.Pool) *ServiceRepositoryImpl {
	return &ServiceRepositoryImpl{db: db}
}

const serviceColumns = `id, title, short_description, detailed_description, focus_area, sub_focus_area, tags,
	service_type, delivery_channel, default_duration, default_capacity, qualified_roles, provider_id, center_id,
	gender, age_group, geography, status, base_price, currency, created_by, created_at`

func scanService(row pgx.Row) (Service, error) {
	var s Service
	var centerId *string
	err := row.Scan(&s.Id, &s.Title, &s.ShortDescription, &s.DetailedDescription, &s.FocusArea,
		&s.SubFocusArea, &s.Tags, &s.ServiceType, &s.DeliveryChannel, &s.DefaultDuration,
		&s.DefaultCapacity, &s.QualifiedRoles, &s.ProviderId, &centerId, &s.Gender, &s.AgeGroup,
		&s.Geography, &s.Status, &s.BasePrice, &s.Currency, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		return Service{}, err
	}
	if centerId != nil {
		s.CenterId = *centerId
	}
	return s, nil
}

func (r *ServiceRepositoryImpl) GetService(ctx context.Context, id string) (Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	s, err := scanService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Service{}, ErrServiceNotFound
		}
		err := fmt.Errorf("could not query service: %w", err)
		log.Error(err)
		return Service{}, err
	}
	return s, nil
}

func (r *ServiceRepositoryImpl) ListServices(ctx context.Context) ([]Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY title`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query services: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var services []Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *ServiceRepositoryImpl) CreateService(ctx context.Context, s Service) (string, error) {
	query := `INSERT INTO services (title, short_description, detailed_description, focus_area, sub_focus_area,
					tags, service_type, delivery_channel, default_duration, default_capacity, qualified_roles,
					provider_id, center_id, gender, age_group, geography, status, base_price, currency, created_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
				RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		s.Title, s.ShortDescription, s.DetailedDescription, s.FocusArea, s.SubFocusArea,
		s.Tags, s.ServiceType, s.DeliveryChannel, s.DefaultDuration, s.DefaultCapacity, s.QualifiedRoles,
		s.ProviderId, nullable(s.CenterId), s.Gender, s.AgeGroup, s.Geography, s.Status, s.BasePrice,
		s.Currency, s.CreatedBy,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *ServiceRepositoryImpl) UpdateService(ctx context.Context, s Service) error {
	query := `UPDATE services SET title = $1, short_description = $2, detailed_description = $3,
					focus_area = $4, sub_focus_area = $5, tags = $6, service_type = $7, delivery_channel = $8,
					default_duration = $9, default_capacity = $10, qualified_roles = $11, provider_id = $12,
					center_id = $13, gender = $14, age_group = $15, geography = $16, status = $17,
					base_price = $18, currency = $19
				WHERE id = $20`
	result, err := r.db.Exec(ctx, query,
		s.Title, s.ShortDescription, s.DetailedDescription, s.FocusArea, s.SubFocusArea,
		s.Tags, s.ServiceType, s.DeliveryChannel, s.DefaultDuration, s.DefaultCapacity, s.QualifiedRoles,
		s.ProviderId, nullable(s.CenterId), s.Gender, s.AgeGroup, s.Geography, s.Status, s.BasePrice,
		s.Currency, s.Id,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) DeleteService(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
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
