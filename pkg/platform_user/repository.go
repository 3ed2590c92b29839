package platform_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("platform user not found")

type Repository interface {
	GetUser(ctx context.Context, id string) (PlatformUser, error)
	ListUsers(ctx context.Context) ([]PlatformUser, error)
	CreateUser(ctx context.Context, u PlatformUser) (string, error)
	UpdateUser(ctx context.Context, u PlatformUser) error
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetUser(ctx context.Context, id string) (PlatformUser, error) {
	query := `SELECT id, name, email, mobile, role, status FROM platform_users WHERE id = $1`
	var u PlatformUser
	err := r.db.QueryRow(ctx, query, id).Scan(&u.Id, &u.Name, &u.Email, &u.Mobile, &u.Role, &u.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PlatformUser{}, ErrUserNotFound
		}
		err := fmt.Errorf("could not query platform user: %w", err)
		log.Error(err)
		return PlatformUser{}, err
	}
	links, err := r.getLinks(ctx, id)
	if err != nil {
		return PlatformUser{}, err
	}
	u.PartnerLinks = links
	return u, nil
}

func (r *RepositoryImpl) ListUsers(ctx context.Context) ([]PlatformUser, error) {
	query := `SELECT u.id, u.name, u.email, u.mobile, u.role, u.status, l.partner_id, l.relationship_type
				FROM platform_users u
				LEFT JOIN platform_user_partner_links l ON u.id = l.user_id
				ORDER BY u.name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query platform users: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	byId := map[string]*PlatformUser{}
	var ordered []*PlatformUser
	for rows.Next() {
		var u PlatformUser
		var partnerId, relationship *string
		if err := rows.Scan(&u.Id, &u.Name, &u.Email, &u.Mobile, &u.Role, &u.Status, &partnerId, &relationship); err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		existing, seen := byId[u.Id]
		if !seen {
			existing = &u
			byId[u.Id] = existing
			ordered = append(ordered, existing)
		}
		// LEFT JOIN: partner_id is NULL for users without links
		if partnerId != nil {
			existing.PartnerLinks = append(existing.PartnerLinks, PartnerLink{
				PartnerId:        *partnerId,
				RelationshipType: RelationshipType(*relationship),
			})
		}
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	users := make([]PlatformUser, 0, len(ordered))
	for _, u := range ordered {
		users = append(users, *u)
	}
	return users, nil
}

func (r *RepositoryImpl) CreateUser(ctx context.Context, u PlatformUser) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO platform_users (name, email, mobile, role, status) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id string
	if err := tx.QueryRow(ctx, query, u.Name, u.Email, u.Mobile, u.Role, u.Status).Scan(&id); err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}
	if err := r.insertLinks(ctx, tx, id, u.PartnerLinks); err != nil {
		return "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("could not commit transaction: %w", err)
	}
	return id, nil
}

func (r *RepositoryImpl) UpdateUser(ctx context.Context, u PlatformUser) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE platform_users SET name = $1, email = $2, mobile = $3, role = $4, status = $5 WHERE id = $6`
	result, err := tx.Exec(ctx, query, u.Name, u.Email, u.Mobile, u.Role, u.Status, u.Id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	// Links are replaced as a set on every save.
	if _, err := tx.Exec(ctx, `DELETE FROM platform_user_partner_links WHERE user_id = $1`, u.Id); err != nil {
		err := fmt.Errorf("could not clear partner links: %w", err)
		log.Error(err)
		return err
	}
	if err := r.insertLinks(ctx, tx, u.Id, u.PartnerLinks); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM platform_users WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *RepositoryImpl) getLinks(ctx context.Context, userId string) ([]PartnerLink, error) {
	query := `SELECT partner_id, relationship_type FROM platform_user_partner_links WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query partner links: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var links []PartnerLink
	for rows.Next() {
		var l PartnerLink
		if err := rows.Scan(&l.PartnerId, &l.RelationshipType); err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *RepositoryImpl) insertLinks(ctx context.Context, tx pgx.Tx, userId string, links []PartnerLink) error {
	for _, l := range links {
		_, err := tx.Exec(ctx,
			`INSERT INTO platform_user_partner_links (user_id, partner_id, relationship_type) VALUES ($1, $2, $3)`,
			userId, l.PartnerId, l.RelationshipType)
		if err != nil {
			err := fmt.Errorf("could not insert partner link: %w", err)
			log.Error(err)
			return err
		}
	}
	return nil
}
