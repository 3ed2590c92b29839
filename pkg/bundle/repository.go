package bundle

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrBundleNotFound = errors.New("bundle not found")

type Repository interface {
	GetBundle(ctx context.Context, id string) (Bundle, error)
	ListBundles(ctx context.Context) ([]Bundle, error)
	CreateBundle(ctx context.Context, b Bundle) (string, error)
	UpdateBundle(ctx context.Context, b Bundle) error
	DeleteBundle(ctx context.Context, id string) (bool, error)
	// RemoveProgramId drops a program id from every bundle that includes it
	// and returns the number of bundles touched.
	RemoveProgramId(ctx context.Context, programId string) (int, error)
	RemoveClassId(ctx context.Context, classId string) (int, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewBundleRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const bundleColumns = `id, name, description, bundle_type, program_ids, class_ids, bundle_price,
	original_price, discount_percent, validity_days, status, created_by, created_at`

func scanBundle(row pgx.Row) (Bundle, error) {
	var b Bundle
	err := row.Scan(&b.Id, &b.Name, &b.Description, &b.BundleType, &b.ProgramIds, &b.ClassIds,
		&b.BundlePrice, &b.OriginalPrice, &b.DiscountPercent, &b.ValidityDays, &b.Status,
		&b.CreatedBy, &b.CreatedAt)
	return b, err
}

func (r *RepositoryImpl) GetBundle(ctx context.Context, id string) (Bundle, error) {
	query := `SELECT ` + bundleColumns + ` FROM bundles WHERE id = $1`
	b, err := scanBundle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Bundle{}, ErrBundleNotFound
		}
		err := fmt.Errorf("could not query bundle: %w", err)
		log.Error(err)
		return Bundle{}, err
	}
	return b, nil
}

func (r *RepositoryImpl) ListBundles(ctx context.Context) ([]Bundle, error) {
	query := `SELECT ` + bundleColumns + ` FROM bundles ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var bundles []Bundle
	for rows.Next() {
		b, err := scanBundle(rows)
		if err != nil {
			err := fmt.Errorf("could not scan bundle row: %w", err)
			log.Error(err)
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, rows.Err()
}

func (r *RepositoryImpl) CreateBundle(ctx context.Context, b Bundle) (string, error) {
	query := `INSERT INTO bundles (name, description, bundle_type, program_ids, class_ids, bundle_price,
			original_price, discount_percent, validity_days, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query,
		b.Name, b.Description, b.BundleType, b.ProgramIds, b.ClassIds, b.BundlePrice,
		b.OriginalPrice, b.DiscountPercent, b.ValidityDays, b.Status, b.CreatedBy,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not insert bundle: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *RepositoryImpl) UpdateBundle(ctx context.Context, b Bundle) error {
	query := `UPDATE bundles
		SET name = $2, description = $3, bundle_type = $4, program_ids = $5, class_ids = $6,
			bundle_price = $7, original_price = $8, discount_percent = $9, validity_days = $10,
			status = $11
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		b.Id, b.Name, b.Description, b.BundleType, b.ProgramIds, b.ClassIds, b.BundlePrice,
		b.OriginalPrice, b.DiscountPercent, b.ValidityDays, b.Status,
	)
	if err != nil {
		err := fmt.Errorf("could not update bundle: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrBundleNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteBundle(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM bundles WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not delete bundle: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *RepositoryImpl) RemoveProgramId(ctx context.Context, programId string) (int, error) {
	query := `UPDATE bundles SET program_ids = array_remove(program_ids, $1) WHERE $1 = ANY(program_ids)`
	result, err := r.db.Exec(ctx, query, programId)
	if err != nil {
		err := fmt.Errorf("could not remove program id from bundles: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(result.RowsAffected()), nil
}

func (r *RepositoryImpl) RemoveClassId(ctx context.Context, classId string) (int, error) {
	query := `UPDATE bundles SET class_ids = array_remove(class_ids, $1) WHERE $1 = ANY(class_ids)`
	result, err := r.db.Exec(ctx, query, classId)
	if err != nil {
		err := fmt.Errorf("could not remove class id from bundles: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(result.RowsAffected()), nil
}
