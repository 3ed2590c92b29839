package partner

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type RepositoryStub struct {
	partners map[string]Partner
}

func NewStubPartnerRepo() *RepositoryStub {
	return &RepositoryStub{partners: map[string]Partner{}}
}

func (s *RepositoryStub) GetPartner(ctx context.Context, id string) (Partner, error) {
	if p, exists := s.partners[id]; exists {
		return p, nil
	}
	return Partner{}, ErrPartnerNotFound
}

func (s *RepositoryStub) ListPartners(ctx context.Context) ([]Partner, error) {
	partners := make([]Partner, 0, len(s.partners))
	for _, p := range s.partners {
		partners = append(partners, p)
	}
	sort.Slice(partners, func(i, j int) bool { return partners[i].Name < partners[j].Name })
	return partners, nil
}

func (s *RepositoryStub) CreatePartner(ctx context.Context, p Partner) (string, error) {
	p.Id = uuid.New().String()
	s.partners[p.Id] = p
	return p.Id, nil
}

func (s *RepositoryStub) UpdatePartner(ctx context.Context, p Partner) error {
	if _, exists := s.partners[p.Id]; !exists {
		return ErrPartnerNotFound
	}
	s.partners[p.Id] = p
	return nil
}

func (s *RepositoryStub) DeletePartner(ctx context.Context, id string) (bool, error) {
	if _, exists := s.partners[id]; exists {
		delete(s.partners, id)
		return true, nil
	}
	return false, nil
}

func (s *RepositoryStub) Cleanup() {
	s.partners = map[string]Partner{}
}
