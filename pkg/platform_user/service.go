package platform_user

import (
	"context"
	"strings"

	"github.com/samatva/samatva/internal/validation"
)

type Service interface {
	GetUser(ctx context.Context, id string) (PlatformUser, error)
	ListUsers(ctx context.Context) ([]PlatformUser, error)
	CreateUser(ctx context.Context, u PlatformUser) (PlatformUser, error)
	UpdateUser(ctx context.Context, u PlatformUser) (PlatformUser, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetUser(ctx context.Context, id string) (PlatformUser, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *ServiceImpl) ListUsers(ctx context.Context) ([]PlatformUser, error) {
	return s.repo.ListUsers(ctx)
}

func (s *ServiceImpl) CreateUser(ctx context.Context, u PlatformUser) (PlatformUser, error) {
	if err := validateUser(u); err != nil {
		return PlatformUser{}, err
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	id, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return PlatformUser{}, err
	}
	u.Id = id
	return u, nil
}

func (s *ServiceImpl) UpdateUser(ctx context.Context, u PlatformUser) (PlatformUser, error) {
	if err := validateUser(u); err != nil {
		return PlatformUser{}, err
	}
	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return PlatformUser{}, err
	}
	return u, nil
}

func (s *ServiceImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteUser(ctx, id)
}

func validateUser(u PlatformUser) error {
	if strings.TrimSpace(u.Name) == "" {
		return validation.NewError("name", "is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return validation.NewError("email", "is required")
	}
	if !ValidRole(u.Role) {
		return validation.NewError("role", "is not a known role")
	}
	seen := map[string]bool{}
	for _, l := range u.PartnerLinks {
		if l.PartnerId == "" {
			return validation.NewError("partnerLinks", "partner id is required")
		}
		key := l.PartnerId + "/" + string(l.RelationshipType)
		if seen[key] {
			return validation.NewError("partnerLinks", "duplicate partner link")
		}
		seen[key] = true
	}
	return nil
}
