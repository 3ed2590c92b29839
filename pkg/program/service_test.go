package program

import (
	"context"
	"testing"

	"github.com/samatva/samatva/internal/event_bus"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/operator"
	"github.com/samatva/samatva/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoStub = NewStubProgramRepo()
var planStub = NewStubPlanRepo()
var sessionStub = asset.NewStubSessionRepo()
var serviceStub = asset.NewStubServiceRepo()

var service Service
var bus *event_bus.EventBus

func setup(t *testing.T) func() {
	bus = event_bus.NewEventBus()
	catalog := asset.NewCatalog(sessionStub, serviceStub, &asset.StubFileStorage{})
	service = NewProgramService(repoStub, planStub, catalog, bus)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
		planStub.Cleanup()
		sessionStub.Cleanup()
		serviceStub.Cleanup()
	}
}

func validTestProgram() Program {
	return Program{
		Title:            "28-Day Reset",
		ShortDescription: "A four week wellness reset",
		FocusArea:        taxonomy.FocusBody,
		Duration:         7,
		ProgramType:      TypeSequential,
		ProviderId:       "provider-1",
		BasePrice:        100000,
		Currency:         "INR",
	}
}

func seedSession(t *testing.T, title string) string {
	t.Helper()
	id, err := sessionStub.CreateSession(context.Background(), asset.Session{Title: title})
	require.NoError(t, err)
	return id
}

func testItem(assetId string, day int, seq int, title string) Item {
	return Item{
		Asset:      asset.Ref{Type: asset.TypeSession, Id: assetId},
		DayNo:      day,
		SequenceNo: seq,
		Title:      title,
	}
}

func TestServiceImpl_SaveProgram(t *testing.T) {
	t.Run("should create the record, its plan and the item set on first save", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		ctx := operator.WithOperator(context.Background(), operator.Operator{Id: "op-1"})
		assetId := seedSession(t, "Breathwork")
		items := []Item{testItem(assetId, 1, 1, "Day 1 breathwork")}

		// when
		saved, err := service.SaveProgram(ctx, validTestProgram(), items)

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, saved.Id)
		assert.Equal(t, StatusDraft, saved.Status)
		assert.Equal(t, "op-1", saved.CreatedBy)

		plan, err := planStub.GetActivePlan(ctx, saved.Id)
		require.NoError(t, err)
		assert.Equal(t, PlanDay, plan.PlanType)
		assert.Equal(t, "28-Day Reset - Plan", plan.Title)
		assert.Equal(t, "Execution plan for 28-Day Reset", plan.Description)
		assert.Equal(t, 1, plan.SequenceOrder)

		persisted, err := planStub.ListItems(ctx, plan.Id)
		require.NoError(t, err)
		require.Len(t, persisted, 1)
		assert.Equal(t, "op-1", persisted[0].CreatedBy)
	})

	t.Run("should map a modular program to a step plan", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		p := validTestProgram()
		p.ProgramType = TypeModular

		// when
		saved, err := service.SaveProgram(context.Background(), p, nil)

		// then
		require.NoError(t, err)
		plan, err := planStub.GetActivePlan(context.Background(), saved.Id)
		require.NoError(t, err)
		assert.Equal(t, PlanStep, plan.PlanType)
	})

	t.Run("should reject an item scheduled beyond the program duration before persisting", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		items := []Item{testItem("session-1", 8, 1, "overflow")}

		// when
		_, err := service.SaveProgram(context.Background(), validTestProgram(), items)

		// then
		require.True(t, validation.IsValidationError(err))
		assert.Contains(t, err.Error(), "day number out of range")
		programs, _ := repoStub.ListPrograms(context.Background())
		assert.Empty(t, programs)
	})

	t.Run("should reject an item with an unrecognised asset type before persisting", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		item := testItem("session-1", 1, 1, "mystery content")
		item.Asset.Type = "foo"

		// when
		_, err := service.SaveProgram(context.Background(), validTestProgram(), []Item{item})

		// then
		require.True(t, validation.IsValidationError(err))
		assert.Contains(t, err.Error(), "assetType")
		programs, _ := repoStub.ListPrograms(context.Background())
		assert.Empty(t, programs)
	})

	t.Run("should reject an offer price at or above the base price", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		p := validTestProgram()
		p.BasePrice = 1000
		offer := int64(1200)
		p.OfferPrice = &offer

		// when
		_, err := service.SaveProgram(context.Background(), p, nil)

		// then
		require.True(t, validation.IsValidationError(err))
		assert.Contains(t, err.Error(), "offer price must be less than base price")
	})

	t.Run("should reject duplicate tags", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		p := validTestProgram()
		p.Tags = []string{"stress", "sleep", "stress"}

		// when
		_, err := service.SaveProgram(context.Background(), p, nil)

		// then
		assert.True(t, validation.IsValidationError(err))
	})

	t.Run("should update the existing plan instead of duplicating it on re-save", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		saved, err := service.SaveProgram(context.Background(), validTestProgram(), nil)
		require.NoError(t, err)
		firstPlan, err := planStub.GetActivePlan(context.Background(), saved.Id)
		require.NoError(t, err)

		// when
		saved.Title = "28-Day Reset v2"
		_, err = service.SaveProgram(context.Background(), saved, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, planStub.ActivePlanCount(saved.Id))
		secondPlan, err := planStub.GetActivePlan(context.Background(), saved.Id)
		require.NoError(t, err)
		assert.Equal(t, firstPlan.Id, secondPlan.Id)
		assert.Equal(t, firstPlan.CreatedAt, secondPlan.CreatedAt)
		assert.Equal(t, "28-Day Reset v2 - Plan", secondPlan.Title)
	})

	t.Run("should fully replace the item set on re-save", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		assetId := seedSession(t, "Breathwork")
		initial := []Item{
			testItem(assetId, 1, 1, "one"),
			testItem(assetId, 2, 1, "two"),
			testItem(assetId, 3, 1, "three"),
		}
		saved, err := service.SaveProgram(context.Background(), validTestProgram(), initial)
		require.NoError(t, err)

		// when
		reduced := []Item{
			testItem(assetId, 1, 1, "one"),
			testItem(assetId, 2, 1, "two"),
		}
		_, err = service.SaveProgram(context.Background(), saved, reduced)

		// then
		require.NoError(t, err)
		items, err := service.GetProgramItems(context.Background(), saved.Id)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "one", items[0].Item.Title)
		assert.Equal(t, "two", items[1].Item.Title)
	})

	t.Run("should keep the stored item set when the draft list is empty", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		assetId := seedSession(t, "Breathwork")
		saved, err := service.SaveProgram(context.Background(), validTestProgram(),
			[]Item{testItem(assetId, 1, 1, "one")})
		require.NoError(t, err)

		// when
		_, err = service.SaveProgram(context.Background(), saved, nil)

		// then
		require.NoError(t, err)
		items, err := service.GetProgramItems(context.Background(), saved.Id)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestServiceImpl_GetProgramItems(t *testing.T) {
	t.Run("should order items by day then sequence and enrich with asset titles", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		breathwork := seedSession(t, "Breathwork")
		bodyScan := seedSession(t, "Body Scan")
		items := []Item{
			testItem(bodyScan, 2, 1, "later"),
			testItem(breathwork, 1, 1, "earlier"),
		}
		saved, err := service.SaveProgram(context.Background(), validTestProgram(), items)
		require.NoError(t, err)

		// when
		resolved, err := service.GetProgramItems(context.Background(), saved.Id)

		// then
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.Equal(t, "earlier", resolved[0].Item.Title)
		require.NotNil(t, resolved[0].Asset)
		assert.Equal(t, "Breathwork", resolved[0].Asset.Title())
		assert.Equal(t, "Body Scan", resolved[1].Asset.Title())
	})

	t.Run("should degrade gracefully when a referenced asset no longer exists", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		assetId := seedSession(t, "Breathwork")
		saved, err := service.SaveProgram(context.Background(), validTestProgram(),
			[]Item{testItem(assetId, 1, 1, "orphaned")})
		require.NoError(t, err)
		_, err = sessionStub.DeleteSession(context.Background(), assetId)
		require.NoError(t, err)

		// when
		resolved, err := service.GetProgramItems(context.Background(), saved.Id)

		// then
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Nil(t, resolved[0].Asset)
		assert.Equal(t, "orphaned", resolved[0].Item.Title)
	})

	t.Run("should degrade gracefully when a stored item carries an unrecognised asset type", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		assetId := seedSession(t, "Breathwork")
		saved, err := service.SaveProgram(context.Background(), validTestProgram(),
			[]Item{testItem(assetId, 1, 1, "fine")})
		require.NoError(t, err)
		plan, err := planStub.GetActivePlan(context.Background(), saved.Id)
		require.NoError(t, err)
		stale := testItem("gone", 1, 2, "stale reference")
		stale.Asset.Type = "foo"
		require.NoError(t, planStub.ReplaceItems(context.Background(), plan.Id,
			[]Item{testItem(assetId, 1, 1, "fine"), stale}))

		// when
		resolved, err := service.GetProgramItems(context.Background(), saved.Id)

		// then
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		require.NotNil(t, resolved[0].Asset)
		assert.Nil(t, resolved[1].Asset)
		assert.Equal(t, "stale reference", resolved[1].Item.Title)
	})

	t.Run("should return an empty list for a program without a plan", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		resolved, err := service.GetProgramItems(context.Background(), "no-plan-yet")

		// then
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})
}

func TestServiceImpl_DeleteProgram(t *testing.T) {
	t.Run("should remove the plan and its items along with the record", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		assetId := seedSession(t, "Breathwork")
		saved, err := service.SaveProgram(context.Background(), validTestProgram(),
			[]Item{testItem(assetId, 1, 1, "one")})
		require.NoError(t, err)

		// when
		deleted, err := service.DeleteProgram(context.Background(), saved.Id)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		_, err = repoStub.GetProgram(context.Background(), saved.Id)
		assert.ErrorIs(t, err, ErrProgramNotFound)
		_, err = planStub.GetActivePlan(context.Background(), saved.Id)
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("should publish a deletion event for subscribers", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		saved, err := service.SaveProgram(context.Background(), validTestProgram(), nil)
		require.NoError(t, err)
		var published []string
		bus.Subscribe(event_bus.ProgramDeletedEvent, func(e event_bus.Event) error {
			published = append(published, e.Data.(event_bus.ProgramDeleted).ProgramId)
			return nil
		})

		// when
		_, err = service.DeleteProgram(context.Background(), saved.Id)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{saved.Id}, published)
	})

	t.Run("should report false for an unknown program", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		deleted, err := service.DeleteProgram(context.Background(), "missing")

		// then
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
