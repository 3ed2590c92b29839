package bundle

import (
	"context"
	"strings"

	"github.com/samatva/samatva/internal/event_bus"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/operator"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	ListBundles(ctx context.Context) ([]Bundle, error)
	GetBundle(ctx context.Context, id string) (Bundle, error)
	CreateBundle(ctx context.Context, b Bundle) (Bundle, error)
	UpdateBundle(ctx context.Context, b Bundle) (Bundle, error)
	DeleteBundle(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

// NewBundleService wires the service into the catalog lifecycle events so
// deleted programs and classes disappear from bundle contents.
func NewBundleService(repo Repository, eventBus *event_bus.EventBus) *ServiceImpl {
	service := &ServiceImpl{repo: repo}
	eventBus.Subscribe(event_bus.ProgramDeletedEvent, func(e event_bus.Event) error {
		data, ok := e.Data.(event_bus.ProgramDeleted)
		if !ok {
			return nil
		}
		log.Debugf("received program deleted event: %v", data)
		touched, err := service.repo.RemoveProgramId(e.Context(), data.ProgramId)
		if err != nil {
			log.Errorf("failed to prune program %s from bundles: %v", data.ProgramId, err)
			return err
		}
		log.Debugf("pruned program %s from %d bundles", data.ProgramId, touched)
		return nil
	})
	eventBus.Subscribe(event_bus.ClassDeletedEvent, func(e event_bus.Event) error {
		data, ok := e.Data.(event_bus.ClassDeleted)
		if !ok {
			return nil
		}
		log.Debugf("received class deleted event: %v", data)
		touched, err := service.repo.RemoveClassId(e.Context(), data.ClassId)
		if err != nil {
			log.Errorf("failed to prune class %s from bundles: %v", data.ClassId, err)
			return err
		}
		log.Debugf("pruned class %s from %d bundles", data.ClassId, touched)
		return nil
	})
	return service
}

func (s *ServiceImpl) ListBundles(ctx context.Context) ([]Bundle, error) {
	return s.repo.ListBundles(ctx)
}

func (s *ServiceImpl) GetBundle(ctx context.Context, id string) (Bundle, error) {
	return s.repo.GetBundle(ctx, id)
}

func (s *ServiceImpl) CreateBundle(ctx context.Context, b Bundle) (Bundle, error) {
	if err := validateBundle(b); err != nil {
		return Bundle{}, err
	}
	if operatorId, err := operator.CurrentId(ctx); err == nil {
		b.CreatedBy = operatorId
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
	id, err := s.repo.CreateBundle(ctx, b)
	if err != nil {
		return Bundle{}, err
	}
	b.Id = id
	return b, nil
}

func (s *ServiceImpl) UpdateBundle(ctx context.Context, b Bundle) (Bundle, error) {
	if err := validateBundle(b); err != nil {
		return Bundle{}, err
	}
	if err := s.repo.UpdateBundle(ctx, b); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

func (s *ServiceImpl) DeleteBundle(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteBundle(ctx, id)
}

func validateBundle(b Bundle) error {
	if strings.TrimSpace(b.Name) == "" {
		return validation.NewError("name", "is required")
	}
	switch b.BundleType {
	case TypePrograms, TypeClasses, TypeMixed:
	default:
		return validation.NewError("bundleType", "must be programs, classes or mixed")
	}
	if b.BundleType == TypePrograms && len(b.ClassIds) > 0 {
		return validation.NewError("classIds", "must be empty for a programs bundle")
	}
	if b.BundleType == TypeClasses && len(b.ProgramIds) > 0 {
		return validation.NewError("programIds", "must be empty for a classes bundle")
	}
	if b.BundlePrice < 0 || b.OriginalPrice < 0 {
		return validation.NewError("bundlePrice", "must be non-negative")
	}
	if b.BundlePrice > b.OriginalPrice && b.OriginalPrice > 0 {
		return validation.NewError("bundlePrice", "must not exceed the original price")
	}
	if b.DiscountPercent < 0 || b.DiscountPercent > 100 {
		return validation.NewError("discountPercent", "must be between 0 and 100")
	}
	if b.ValidityDays < 0 {
		return validation.NewError("validityDays", "must be non-negative")
	}
	return nil
}
