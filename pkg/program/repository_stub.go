package program

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type RepoStub struct {
	programs map[string]Program
}

func NewStubProgramRepo() *RepoStub {
	return &RepoStub{programs: map[string]Program{}}
}

func (s *RepoStub) GetProgram(ctx context.Context, id string) (Program, error) {
	if p, exists := s.programs[id]; exists {
		return p, nil
	}
	return Program{}, ErrProgramNotFound
}

func (s *RepoStub) ListPrograms(ctx context.Context) ([]Program, error) {
	programs := make([]Program, 0, len(s.programs))
	for _, p := range s.programs {
		programs = append(programs, p)
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].CreatedAt.After(programs[j].CreatedAt) })
	return programs, nil
}

func (s *RepoStub) CreateProgram(ctx context.Context, p Program) (string, error) {
	p.Id = uuid.New().String()
	p.CreatedAt = time.Now()
	s.programs[p.Id] = p
	return p.Id, nil
}

func (s *RepoStub) UpdateProgram(ctx context.Context, p Program) error {
	existing, exists := s.programs[p.Id]
	if !exists {
		return ErrProgramNotFound
	}
	p.CreatedBy = existing.CreatedBy
	p.CreatedAt = existing.CreatedAt
	s.programs[p.Id] = p
	return nil
}

func (s *RepoStub) DeleteProgram(ctx context.Context, id string) (bool, error) {
	if _, exists := s.programs[id]; !exists {
		return false, nil
	}
	delete(s.programs, id)
	return true, nil
}

func (s *RepoStub) Cleanup() {
	s.programs = map[string]Program{}
}

type PlanRepoStub struct {
	plans map[string]Plan
	items map[string][]Item
}

func NewStubPlanRepo() *PlanRepoStub {
	return &PlanRepoStub{plans: map[string]Plan{}, items: map[string][]Item{}}
}

func (s *PlanRepoStub) GetActivePlan(ctx context.Context, programId string) (Plan, error) {
	for _, plan := range s.plans {
		if plan.ProgramId == programId && plan.Status == PlanActive {
			return plan, nil
		}
	}
	return Plan{}, ErrPlanNotFound
}

func (s *PlanRepoStub) CreatePlan(ctx context.Context, plan Plan) (string, error) {
	plan.Id = uuid.New().String()
	plan.CreatedAt = time.Now()
	s.plans[plan.Id] = plan
	return plan.Id, nil
}

func (s *PlanRepoStub) UpdatePlan(ctx context.Context, plan Plan) error {
	existing, exists := s.plans[plan.Id]
	if !exists {
		return ErrPlanNotFound
	}
	plan.CreatedAt = existing.CreatedAt
	s.plans[plan.Id] = plan
	return nil
}

func (s *PlanRepoStub) DeletePlansByProgram(ctx context.Context, programId string) error {
	for id, plan := range s.plans {
		if plan.ProgramId == programId {
			delete(s.plans, id)
			delete(s.items, id)
		}
	}
	return nil
}

func (s *PlanRepoStub) ReplaceItems(ctx context.Context, planId string, items []Item) error {
	replaced := make([]Item, 0, len(items))
	for _, item := range items {
		item.Id = uuid.New().String()
		item.PlanId = planId
		item.CreatedAt = time.Now()
		replaced = append(replaced, item)
	}
	s.items[planId] = replaced
	return nil
}

func (s *PlanRepoStub) ListItems(ctx context.Context, planId string) ([]Item, error) {
	items := append([]Item(nil), s.items[planId]...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DayNo != items[j].DayNo {
			return items[i].DayNo < items[j].DayNo
		}
		return items[i].SequenceNo < items[j].SequenceNo
	})
	return items, nil
}

// ActivePlanCount reports how many plans hold active status for a program,
// for assertions on the upsert behaviour.
func (s *PlanRepoStub) ActivePlanCount(programId string) int {
	count := 0
	for _, plan := range s.plans {
		if plan.ProgramId == programId && plan.Status == PlanActive {
			count++
		}
	}
	return count
}

func (s *PlanRepoStub) Cleanup() {
	s.plans = map[string]Plan{}
	s.items = map[string][]Item{}
}
