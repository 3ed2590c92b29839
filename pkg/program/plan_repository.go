package program

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrPlanNotFound = errors.New("program plan not found")

type PlanRepository interface {
	// GetActivePlan returns the single plan with active status for the
	// program, or ErrPlanNotFound when none exists yet.
	GetActivePlan(ctx context.Context, programId string) (Plan, error)
	CreatePlan(ctx context.Context, plan Plan) (string, error)
	UpdatePlan(ctx context.Context, plan Plan) error
	// DeletePlansByProgram removes all plans for a program. Item rows go
	// with them through the referential cascade.
	DeletePlansByProgram(ctx context.Context, programId string) error

	// ReplaceItems swaps the plan's full item set: existing rows for the
	// plan are deleted, then the new list is inserted in one batch.
	ReplaceItems(ctx context.Context, planId string, items []Item) error
	// ListItems returns the plan's items ordered by day, then sequence.
	ListItems(ctx context.Context, planId string) ([]Item, error)
}

type PlanRepositoryImpl struct {
	db *pgxpool.Pool
}

func NewPlanRepo(db *pgxpool.Pool) *PlanRepositoryImpl {
	return &PlanRepositoryImpl{db: db}
}

func (r *PlanRepositoryImpl) GetActivePlan(ctx context.Context, programId string) (Plan, error) {
	query := `SELECT id, program_id, plan_type, title, description, sequence_order, status, created_at
		FROM program_plans
		WHERE program_id = $1 AND status = 'active'`
	var p Plan
	err := r.db.QueryRow(ctx, query, programId).Scan(&p.Id, &p.ProgramId, &p.PlanType, &p.Title,
		&p.Description, &p.SequenceOrder, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Plan{}, ErrPlanNotFound
		}
		err := fmt.Errorf("could not query program plan: %w", err)
		log.Error(err)
		return Plan{}, err
	}
	return p, nil
}

func (r *PlanRepositoryImpl) CreatePlan(ctx context.Context, plan Plan) (string, error) {
	query := `INSERT INTO program_plans (program_id, plan_type, title, description, sequence_order, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query, plan.ProgramId, plan.PlanType, plan.Title, plan.Description,
		plan.SequenceOrder, plan.Status).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not insert program plan: %w", err)
		log.Error(err)
		return "", err
	}
	return id, nil
}

func (r *PlanRepositoryImpl) UpdatePlan(ctx context.Context, plan Plan) error {
	query := `UPDATE program_plans
		SET plan_type = $2, title = $3, description = $4, sequence_order = $5, status = $6
		WHERE id = $1`
	result, err := r.db.Exec(ctx, query, plan.Id, plan.PlanType, plan.Title, plan.Description,
		plan.SequenceOrder, plan.Status)
	if err != nil {
		err := fmt.Errorf("could not update program plan: %w", err)
		log.Error(err)
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepositoryImpl) DeletePlansByProgram(ctx context.Context, programId string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM program_plans WHERE program_id = $1`, programId)
	if err != nil {
		err := fmt.Errorf("could not delete program plans: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *PlanRepositoryImpl) ReplaceItems(ctx context.Context, planId string, items []Item) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM program_items WHERE plan_id = $1`, planId); err != nil {
		err := fmt.Errorf("could not delete program items: %w", err)
		log.Error(err)
		return err
	}
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO program_items (plan_id, asset_type, asset_id, day_no, sequence_no, title,
			is_optional, completion_required, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, item := range items {
		batch.Queue(query, planId, item.Asset.Type, item.Asset.Id, item.DayNo, item.SequenceNo,
			item.Title, item.IsOptional, item.CompletionRequired, item.CreatedBy)
	}
	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if err := results.Close(); err != nil {
			log.Errorf("could not close item batch: %v", err)
		}
	}()
	for range items {
		if _, err := results.Exec(); err != nil {
			err := fmt.Errorf("could not insert program item: %w", err)
			log.Error(err)
			return err
		}
	}
	return nil
}

func (r *PlanRepositoryImpl) ListItems(ctx context.Context, planId string) ([]Item, error) {
	query := `SELECT id, plan_id, asset_type, asset_id, day_no, sequence_no, title, is_optional,
			completion_required, created_by, created_at
		FROM program_items
		WHERE plan_id = $1
		ORDER BY day_no ASC, sequence_no ASC`
	rows, err := r.db.Query(ctx, query, planId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		err := rows.Scan(&item.Id, &item.PlanId, &item.Asset.Type, &item.Asset.Id, &item.DayNo,
			&item.SequenceNo, &item.Title, &item.IsOptional, &item.CompletionRequired,
			&item.CreatedBy, &item.CreatedAt)
		if err != nil {
			err := fmt.Errorf("could not scan item row: %w", err)
			log.Error(err)
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
