package operator

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrOperatorNotFound = errors.New("operator not found")

type Repo interface {
	CreateOperator(ctx context.Context, op Operator) (string, error)
	GetOperator(ctx context.Context, id string) (Operator, error)
	GetAllOperators(ctx context.Context) ([]Operator, error)
	DeleteOperator(ctx context.Context, id string) error
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewOperatorRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) CreateOperator(ctx context.Context, op Operator) (string, error) {
	status := op.Status
	if status == "" {
		status = StatusActive
	}
	query := `INSERT INTO operators (name, email, role, status) VALUES ($1, $2, $3, $4) RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query, op.Name, op.Email, op.Role, status).Scan(&id)
	if err != nil {
		log.Errorf("failed to create operator: %v", err)
		return "", err
	}
	return id, nil
}

func (r *RepoImpl) GetOperator(ctx context.Context, id string) (Operator, error) {
	query := `SELECT id, name, email, role, status FROM operators WHERE id = $1`
	var op Operator
	err := r.db.QueryRow(ctx, query, id).Scan(&op.Id, &op.Name, &op.Email, &op.Role, &op.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Operator{}, ErrOperatorNotFound
		}
		log.Errorf("failed to get operator %s: %v", id, err)
		return Operator{}, err
	}
	return op, nil
}

func (r *RepoImpl) GetAllOperators(ctx context.Context) ([]Operator, error) {
	query := `SELECT id, name, email, role, status FROM operators ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to list operators: %v", err)
		return nil, err
	}
	defer rows.Close()

	var operators []Operator
	for rows.Next() {
		var op Operator
		if err := rows.Scan(&op.Id, &op.Name, &op.Email, &op.Role, &op.Status); err != nil {
			log.Errorf("failed to scan operator row: %v", err)
			return nil, err
		}
		operators = append(operators, op)
	}
	return operators, rows.Err()
}

func (r *RepoImpl) DeleteOperator(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM operators WHERE id = $1`, id)
	if err != nil {
		log.Errorf("failed to delete operator %s: %v", id, err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrOperatorNotFound
	}
	return nil
}
