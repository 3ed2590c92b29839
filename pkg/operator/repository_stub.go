package operator

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type RepoStub struct {
	operators map[string]Operator
}

func NewStubOperatorRepo() *RepoStub {
	return &RepoStub{operators: map[string]Operator{}}
}

func (s *RepoStub) CreateOperator(ctx context.Context, op Operator) (string, error) {
	op.Id = uuid.New().String()
	if op.Status == "" {
		op.Status = StatusActive
	}
	s.operators[op.Id] = op
	return op.Id, nil
}

func (s *RepoStub) GetOperator(ctx context.Context, id string) (Operator, error) {
	if op, exists := s.operators[id]; exists {
		return op, nil
	}
	return Operator{}, ErrOperatorNotFound
}

func (s *RepoStub) GetAllOperators(ctx context.Context) ([]Operator, error) {
	operators := make([]Operator, 0, len(s.operators))
	for _, op := range s.operators {
		operators = append(operators, op)
	}
	sort.Slice(operators, func(i, j int) bool { return operators[i].Name < operators[j].Name })
	return operators, nil
}

func (s *RepoStub) DeleteOperator(ctx context.Context, id string) error {
	if _, exists := s.operators[id]; !exists {
		return ErrOperatorNotFound
	}
	delete(s.operators, id)
	return nil
}

func (s *RepoStub) Cleanup() {
	s.operators = map[string]Operator{}
}
