package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	GetSession(ctx context.Context, id string) (Session, error)
	// ListSessions returns all sessions ordered by title, for the
	// asset-selection panel.
	ListSessions(ctx context.Context) ([]Session, error)
	CreateSession(ctx context.Context, s Session) (string, error)
	UpdateSession(ctx context.Context, s Session) error
	DeleteSession(ctx context.Context, id string) (bool, error)
}

type SessionRepositoryImpl struct {
	db *pgxpool.Pool
}

func NewSessionRepo(db *pgxpool.Pool) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{db: db}
}

const sessionColumns = `id, title, short_description, detailed_description, focus_area, sub_focus_area, tags,
	content_type, duration, language, provider_id, file_url, thumbnail_url, gender, age_group, geography,
	status, is_free, base_price, currency, created_by, created_at`

func scanSession(row pgx.Row) (Session, error) {
	var s Session
	err := row.Scan(&s.Id, &s.Title, &s.ShortDescription, &s.DetailedDescription, &s.FocusArea,
		&s.SubFocusArea, &s.Tags, &s.ContentType, &s.Duration, &s.Language, &s.ProviderId,
		&s.FileUrl, &s.ThumbnailUrl, &s.Gender, &s.AgeGroup, &s.Geography, &s.Status,
		&s.IsFree, &s.BasePrice, &s.Currency, &s.CreatedBy, &s.CreatedAt)
	return s, err
}

func (r *SessionRepositoryImpl) GetSession(ctx context.Context, id string) (Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	s, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}
		err := fmt.Errorf("could not query session: %w", err)
		log.Error(err)
		return Session{}, err
	}
	return s, nil
}

func (r *SessionRepositoryImpl) ListSessions(ctx context.Context) ([]Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY title`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query sessions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, s Session) (string, error) {
	query := `INSERT INTO sessions (title, short_description, detailed_description, focus_area, sub_focus_area,
					tags, content_type, duration, language, provider_id, file_url, thumbnail_url, gender,
					age_group, geography, status, is_free, base_price, currency, created_by)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
				RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		s.Title, s.ShortDescription, s.DetailedDescription, s.FocusArea, s.SubFocusArea,
		s.Tags, s.ContentType, s.Duration, s.Language, s.ProviderId, s.FileUrl, s.ThumbnailUrl,
		s.Gender, s.AgeGroup, s.Geography, s.Status, s.IsFree, s.BasePrice, s.Currency, s.CreatedBy,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *SessionRepositoryImpl) UpdateSession(ctx context.Context, s Session) error {
	query := `UPDATE sessions SET title = $1, short_description = $2, detailed_description = $3,
					focus_area = $4, sub_focus_area = $5, tags = $6, content_type = $7, duration = $8,
					language = $9, provider_id = $10, file_url = $11, thumbnail_url = $12, gender = $13,
					age_group = $14, geography = $15, status = $16, is_free = $17, base_price = $18, currency = $19
				WHERE id = $20`
	result, err := r.db.Exec(ctx, query,
		s.Title, s.ShortDescription, s.DetailedDescription, s.FocusArea, s.SubFocusArea,
		s.Tags, s.ContentType, s.Duration, s.Language, s.ProviderId, s.FileUrl, s.ThumbnailUrl,
		s.Gender, s.AgeGroup, s.Geography, s.Status, s.IsFree, s.BasePrice, s.Currency, s.Id,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepositoryImpl) DeleteSession(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}
