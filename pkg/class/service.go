package class

import (
	"context"
	"strings"

	"github.com/samatva/samatva/internal/event_bus"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/operator"
	"github.com/samatva/samatva/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	ListClasses(ctx context.Context) ([]Class, error)
	GetClass(ctx context.Context, id string) (Class, error)
	CreateClass(ctx context.Context, c Class) (Class, error)
	UpdateClass(ctx context.Context, c Class) (Class, error)
	DeleteClass(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
}

func NewClassService(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, eventBus: eventBus}
}

func (s *ServiceImpl) ListClasses(ctx context.Context) ([]Class, error) {
	return s.repo.ListClasses(ctx)
}

func (s *ServiceImpl) GetClass(ctx context.Context, id string) (Class, error) {
	return s.repo.GetClass(ctx, id)
}

func (s *ServiceImpl) CreateClass(ctx context.Context, c Class) (Class, error) {
	if err := validateClass(c); err != nil {
		return Class{}, err
	}
	if operatorId, err := operator.CurrentId(ctx); err == nil {
		c.CreatedBy = operatorId
	}
	if c.Status == "" {
		c.Status = StatusDraft
	}
	id, err := s.repo.CreateClass(ctx, c)
	if err != nil {
		return Class{}, err
	}
	c.Id = id
	return c, nil
}

func (s *ServiceImpl) UpdateClass(ctx context.Context, c Class) (Class, error) {
	if err := validateClass(c); err != nil {
		return Class{}, err
	}
	if err := s.repo.UpdateClass(ctx, c); err != nil {
		return Class{}, err
	}
	return c, nil
}

func (s *ServiceImpl) DeleteClass(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.DeleteClass(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted && s.eventBus != nil {
		event := event_bus.NewEvent(ctx, event_bus.ClassDeletedEvent, event_bus.ClassDeleted{ClassId: id})
		if err := s.eventBus.Publish(event); err != nil {
			log.Errorf("failed to publish class deleted event: %v", err)
		}
	}
	return deleted, nil
}

func validateClass(c Class) error {
	if strings.TrimSpace(c.Title) == "" {
		return validation.NewError("title", "is required")
	}
	if !taxonomy.ValidFocusArea(c.FocusArea) {
		return validation.NewError("focusArea", "is not a known focus area")
	}
	if c.ProviderId == "" {
		return validation.NewError("providerId", "is required")
	}
	if c.Mode != ModeOnline && c.Mode != ModeOffline && c.Mode != ModeHybrid {
		return validation.NewError("mode", "must be online, offline or hybrid")
	}
	if c.Capacity < 0 {
		return validation.NewError("capacity", "must be non-negative")
	}
	if c.BasePrice < 0 {
		return validation.NewError("basePrice", "must be non-negative")
	}
	return nil
}
