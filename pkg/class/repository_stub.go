package class

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type RepoStub struct {
	classes map[string]Class
}

func NewStubClassRepo() *RepoStub {
	return &RepoStub{classes: map[string]Class{}}
}

func (s *RepoStub) GetClass(ctx context.Context, id string) (Class, error) {
	if c, exists := s.classes[id]; exists {
		return c, nil
	}
	return Class{}, ErrClassNotFound
}

func (s *RepoStub) ListClasses(ctx context.Context) ([]Class, error) {
	classes := make([]Class, 0, len(s.classes))
	for _, c := range s.classes {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Title < classes[j].Title })
	return classes, nil
}

func (s *RepoStub) CreateClass(ctx context.Context, c Class) (string, error) {
	c.Id = uuid.New().String()
	c.CreatedAt = time.Now()
	s.classes[c.Id] = c
	return c.Id, nil
}

func (s *RepoStub) UpdateClass(ctx context.Context, c Class) error {
	existing, exists := s.classes[c.Id]
	if !exists {
		return ErrClassNotFound
	}
	c.CreatedAt = existing.CreatedAt
	s.classes[c.Id] = c
	return nil
}

func (s *RepoStub) DeleteClass(ctx context.Context, id string) (bool, error) {
	if _, exists := s.classes[id]; !exists {
		return false, nil
	}
	delete(s.classes, id)
	return true, nil
}

func (s *RepoStub) Cleanup() {
	s.classes = map[string]Class{}
}
