package program

import (
	"context"
	"errors"
	"strings"

	"github.com/samatva/samatva/internal/event_bus"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/operator"
	"github.com/samatva/samatva/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
)

// ResolvedItem pairs a persisted item with its asset details. Asset stays nil
// when the referenced session or service has been deleted; the builder then
// renders the item from its own title.
type ResolvedItem struct {
	Item  Item
	Asset *asset.Resolved
}

type Service interface {
	ListPrograms(ctx context.Context) ([]Program, error)
	GetProgram(ctx context.Context, id string) (Program, error)

	// SaveProgram commits the record, its plan and the full item list as one
	// logical operation. The record is inserted when p.Id is empty and
	// updated otherwise; the plan is upserted; when items is non-empty the
	// plan's item set is fully replaced. The steps are not transactional, a
	// failure aborts the remaining steps without rolling back earlier ones.
	SaveProgram(ctx context.Context, p Program, items []Item) (Program, error)

	// GetProgramItems returns the active plan's items ordered by day then
	// sequence, each enriched with its asset details where the asset still
	// exists.
	GetProgramItems(ctx context.Context, programId string) ([]ResolvedItem, error)

	// DeleteProgram removes the plan (items cascade with it) and then the
	// record. The record survives if the plan deletion fails.
	DeleteProgram(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo     Repository
	plans    PlanRepository
	catalog  asset.Catalog
	eventBus *event_bus.EventBus
}

func NewProgramService(repo Repository, plans PlanRepository, catalog asset.Catalog, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, plans: plans, catalog: catalog, eventBus: eventBus}
}

func (s *ServiceImpl) ListPrograms(ctx context.Context) ([]Program, error) {
	return s.repo.ListPrograms(ctx)
}

func (s *ServiceImpl) GetProgram(ctx context.Context, id string) (Program, error) {
	return s.repo.GetProgram(ctx, id)
}

func (s *ServiceImpl) SaveProgram(ctx context.Context, p Program, items []Item) (Program, error) {
	if err := validateProgram(p); err != nil {
		return Program{}, err
	}
	for _, item := range items {
		if err := ValidateItem(item, p.Duration); err != nil {
			return Program{}, err
		}
	}

	operatorId, _ := operator.CurrentId(ctx)

	if p.Id == "" {
		if p.Status == "" {
			p.Status = StatusDraft
		}
		p.CreatedBy = operatorId
		id, err := s.repo.CreateProgram(ctx, p)
		if err != nil {
			return Program{}, err
		}
		p.Id = id
	} else {
		if err := s.repo.UpdateProgram(ctx, p); err != nil {
			return Program{}, err
		}
	}

	plan, err := s.upsertPlan(ctx, p)
	if err != nil {
		return Program{}, err
	}

	if len(items) > 0 {
		for i := range items {
			items[i].PlanId = plan.Id
			if items[i].CreatedBy == "" {
				items[i].CreatedBy = operatorId
			}
		}
		if err := s.plans.ReplaceItems(ctx, plan.Id, items); err != nil {
			return Program{}, err
		}
	}
	return p, nil
}

// upsertPlan looks up the program's active plan and updates it in place, or
// creates it when the program is saved for the first time. The original
// creation date survives updates.
func (s *ServiceImpl) upsertPlan(ctx context.Context, p Program) (Plan, error) {
	plan := Plan{
		ProgramId:     p.Id,
		PlanType:      PlanTypeFor(p.ProgramType),
		Title:         p.Title + " - Plan",
		Description:   "Execution plan for " + p.Title,
		SequenceOrder: 1,
		Status:        PlanActive,
	}

	existing, err := s.plans.GetActivePlan(ctx, p.Id)
	if err != nil {
		if !errors.Is(err, ErrPlanNotFound) {
			return Plan{}, err
		}
		id, err := s.plans.CreatePlan(ctx, plan)
		if err != nil {
			return Plan{}, err
		}
		plan.Id = id
		return plan, nil
	}

	plan.Id = existing.Id
	plan.CreatedAt = existing.CreatedAt
	if err := s.plans.UpdatePlan(ctx, plan); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (s *ServiceImpl) GetProgramItems(ctx context.Context, programId string) ([]ResolvedItem, error) {
	plan, err := s.plans.GetActivePlan(ctx, programId)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return []ResolvedItem{}, nil
		}
		return nil, err
	}
	items, err := s.plans.ListItems(ctx, plan.Id)
	if err != nil {
		return nil, err
	}

	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		entry := ResolvedItem{Item: item}
		details, err := s.catalog.Resolve(ctx, item.Asset)
		switch {
		case err == nil:
			entry.Asset = &details
		case errors.Is(err, asset.ErrAssetNotFound):
			log.Warnf("asset %s/%s referenced by item %s no longer exists", item.Asset.Type, item.Asset.Id, item.Id)
		default:
			return nil, err
		}
		resolved = append(resolved, entry)
	}
	return resolved, nil
}

func (s *ServiceImpl) DeleteProgram(ctx context.Context, id string) (bool, error) {
	if err := s.plans.DeletePlansByProgram(ctx, id); err != nil {
		return false, err
	}
	deleted, err := s.repo.DeleteProgram(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted && s.eventBus != nil {
		event := event_bus.NewEvent(ctx, event_bus.ProgramDeletedEvent, event_bus.ProgramDeleted{ProgramId: id})
		if err := s.eventBus.Publish(event); err != nil {
			log.Errorf("failed to publish program deleted event: %v", err)
		}
	}
	return deleted, nil
}

func validateProgram(p Program) error {
	if strings.TrimSpace(p.Title) == "" {
		return validation.NewError("title", "is required")
	}
	if strings.TrimSpace(p.ShortDescription) == "" {
		return validation.NewError("shortDescription", "is required")
	}
	if p.ProviderId == "" {
		return validation.NewError("providerId", "is required")
	}
	if !taxonomy.ValidFocusArea(p.FocusArea) {
		return validation.NewError("focusArea", "is not a known focus area")
	}
	if p.Duration <= 0 {
		return validation.NewError("duration", "must be positive")
	}
	if p.ProgramType != TypeSequential && p.ProgramType != TypeModular {
		return validation.NewError("programType", "must be sequential or modular")
	}
	if p.BasePrice < 0 {
		return validation.NewError("basePrice", "must be non-negative")
	}
	if p.OfferPrice != nil && *p.OfferPrice >= p.BasePrice {
		return validation.NewError("offerPrice", "offer price must be less than base price")
	}
	seen := make(map[string]bool, len(p.Tags))
	for _, tag := range p.Tags {
		if seen[tag] {
			return validation.NewError("tags", "duplicate tag "+tag)
		}
		seen[tag] = true
	}
	return nil
}
