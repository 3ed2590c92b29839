package operator

import (
	"context"
	"strings"

	"github.com/samatva/samatva/internal/validation"
)

type Service interface {
	GetOperator(ctx context.Context, id string) (Operator, error)
	GetCurrentOperator(ctx context.Context) (Operator, error)
	ListOperators(ctx context.Context) ([]Operator, error)
	CreateOperator(ctx context.Context, op Operator) (Operator, error)
	DeleteOperator(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repo
}

func NewOperatorService(repo Repo) Service {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetOperator(ctx context.Context, id string) (Operator, error) {
	return s.repo.GetOperator(ctx, id)
}

func (s *ServiceImpl) GetCurrentOperator(ctx context.Context) (Operator, error) {
	return Current(ctx)
}

func (s *ServiceImpl) ListOperators(ctx context.Context) ([]Operator, error) {
	return s.repo.GetAllOperators(ctx)
}

func (s *ServiceImpl) CreateOperator(ctx context.Context, op Operator) (Operator, error) {
	if strings.TrimSpace(op.Name) == "" {
		return Operator{}, validation.NewError("name", "is required")
	}
	if strings.TrimSpace(op.Email) == "" {
		return Operator{}, validation.NewError("email", "is required")
	}
	if op.Status == "" {
		op.Status = StatusActive
	}
	id, err := s.repo.CreateOperator(ctx, op)
	if err != nil {
		return Operator{}, err
	}
	op.Id = id
	return op, nil
}

func (s *ServiceImpl) DeleteOperator(ctx context.Context, id string) error {
	return s.repo.DeleteOperator(ctx, id)
}
