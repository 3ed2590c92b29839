package bundle

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type RepoStub struct {
	bundles map[string]Bundle
}

func NewStubBundleRepo() *RepoStub {
	return &RepoStub{bundles: map[string]Bundle{}}
}

func (s *RepoStub) GetBundle(ctx context.Context, id string) (Bundle, error) {
	if b, exists := s.bundles[id]; exists {
		return b, nil
	}
	return Bundle{}, ErrBundleNotFound
}

func (s *RepoStub) ListBundles(ctx context.Context) ([]Bundle, error) {
	bundles := make([]Bundle, 0, len(s.bundles))
	for _, b := range s.bundles {
		bundles = append(bundles, b)
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i].Name < bundles[j].Name })
	return bundles, nil
}

func (s *RepoStub) CreateBundle(ctx context.Context, b Bundle) (string, error) {
	b.Id = uuid.New().String()
	b.CreatedAt = time.Now()
	s.bundles[b.Id] = b
	return b.Id, nil
}

func (s *RepoStub) UpdateBundle(ctx context.Context, b Bundle) error {
	existing, exists := s.bundles[b.Id]
	if !exists {
		return ErrBundleNotFound
	}
	b.CreatedAt = existing.CreatedAt
	s.bundles[b.Id] = b
	return nil
}

func (s *RepoStub) DeleteBundle(ctx context.Context, id string) (bool, error) {
	if _, exists := s.bundles[id]; !exists {
		return false, nil
	}
	delete(s.bundles, id)
	return true, nil
}

func (s *RepoStub) RemoveProgramId(ctx context.Context, programId string) (int, error) {
	touched := 0
	for id, b := range s.bundles {
		if removed := removeId(b.ProgramIds, programId); len(removed) != len(b.ProgramIds) {
			b.ProgramIds = removed
			s.bundles[id] = b
			touched++
		}
	}
	return touched, nil
}

func (s *RepoStub) RemoveClassId(ctx context.Context, classId string) (int, error) {
	touched := 0
	for id, b := range s.bundles {
		if removed := removeId(b.ClassIds, classId); len(removed) != len(b.ClassIds) {
			b.ClassIds = removed
			s.bundles[id] = b
			touched++
		}
	}
	return touched, nil
}

func removeId(ids []string, id string) []string {
	result := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			result = append(result, candidate)
		}
	}
	return result
}

func (s *RepoStub) Cleanup() {
	s.bundles = map[string]Bundle{}
}
