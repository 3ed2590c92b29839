package partner

import (
	"context"
	"strings"

	"github.com/samatva/samatva/internal/validation"
)

type Service interface {
	GetPartner(ctx context.Context, id string) (Partner, error)
	ListPartners(ctx context.Context) ([]Partner, error)
	// ListProviders returns only partners that can own catalog entities.
	ListProviders(ctx context.Context) ([]Partner, error)
	CreatePartner(ctx context.Context, p Partner) (Partner, error)
	UpdatePartner(ctx context.Context, p Partner) (Partner, error)
	DeletePartner(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewPartnerService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetPartner(ctx context.Context, id string) (Partner, error) {
	return s.repo.GetPartner(ctx, id)
}

func (s *ServiceImpl) ListPartners(ctx context.Context) ([]Partner, error) {
	return s.repo.ListPartners(ctx)
}

func (s *ServiceImpl) ListProviders(ctx context.Context) ([]Partner, error) {
	partners, err := s.repo.ListPartners(ctx)
	if err != nil {
		return nil, err
	}
	providers := make([]Partner, 0, len(partners))
	for _, p := range partners {
		if p.IsProvider() {
			providers = append(providers, p)
		}
	}
	return providers, nil
}

func (s *ServiceImpl) CreatePartner(ctx context.Context, p Partner) (Partner, error) {
	if err := validatePartner(p); err != nil {
		return Partner{}, err
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	id, err := s.repo.CreatePartner(ctx, p)
	if err != nil {
		return Partner{}, err
	}
	p.Id = id
	return p, nil
}

func (s *ServiceImpl) UpdatePartner(ctx context.Context, p Partner) (Partner, error) {
	if err := validatePartner(p); err != nil {
		return Partner{}, err
	}
	if err := s.repo.UpdatePartner(ctx, p); err != nil {
		return Partner{}, err
	}
	return p, nil
}

func (s *ServiceImpl) DeletePartner(ctx context.Context, id string) (bool, error) {
	return s.repo.DeletePartner(ctx, id)
}

func validatePartner(p Partner) error {
	if strings.TrimSpace(p.Name) == "" {
		return validation.NewError("name", "is required")
	}
	switch p.Type {
	case TypeProvider, TypeInstitution, TypeCenter, TypeDual:
	default:
		return validation.NewError("type", "must be provider, institution, center or dual")
	}
	return nil
}
