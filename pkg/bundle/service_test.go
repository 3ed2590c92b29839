package bundle

import (
	"context"
	"testing"

	"github.com/samatva/samatva/internal/event_bus"
	"github.com/samatva/samatva/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoStub = NewStubBundleRepo()

var service Service
var bus *event_bus.EventBus

func setup(t *testing.T) func() {
	bus = event_bus.NewEventBus()
	service = NewBundleService(repoStub, bus)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func validTestBundle() Bundle {
	return Bundle{
		Name:            "Mind & Body Starter",
		BundleType:      TypeMixed,
		ProgramIds:      []string{"program-1", "program-2"},
		ClassIds:        []string{"class-1"},
		BundlePrice:     80000,
		OriginalPrice:   100000,
		DiscountPercent: 20,
		ValidityDays:    90,
	}
}

func TestServiceImpl_CreateBundle(t *testing.T) {
	t.Run("should create a bundle with active status", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateBundle(context.Background(), validTestBundle())

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, StatusActive, created.Status)
	})

	t.Run("should reject class ids in a programs-only bundle", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		b := validTestBundle()
		b.BundleType = TypePrograms

		// when
		_, err := service.CreateBundle(context.Background(), b)

		// then
		assert.True(t, validation.IsValidationError(err))
	})

	t.Run("should reject a bundle price above the original price", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		b := validTestBundle()
		b.BundlePrice = 120000

		// when
		_, err := service.CreateBundle(context.Background(), b)

		// then
		assert.True(t, validation.IsValidationError(err))
	})

	t.Run("should reject a discount outside 0-100", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		b := validTestBundle()
		b.DiscountPercent = 120

		// when
		_, err := service.CreateBundle(context.Background(), b)

		// then
		assert.True(t, validation.IsValidationError(err))
	})
}

func TestServiceImpl_EventPruning(t *testing.T) {
	t.Run("should prune a deleted program from every bundle including it", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		first, err := service.CreateBundle(context.Background(), validTestBundle())
		require.NoError(t, err)
		other := validTestBundle()
		other.Name = "Programs Only"
		other.BundleType = TypePrograms
		other.ClassIds = nil
		second, err := service.CreateBundle(context.Background(), other)
		require.NoError(t, err)

		// when
		err = bus.Publish(event_bus.NewEvent(context.Background(), event_bus.ProgramDeletedEvent,
			event_bus.ProgramDeleted{ProgramId: "program-1"}))

		// then
		require.NoError(t, err)
		reloaded, err := service.GetBundle(context.Background(), first.Id)
		require.NoError(t, err)
		assert.Equal(t, []string{"program-2"}, reloaded.ProgramIds)
		reloaded, err = service.GetBundle(context.Background(), second.Id)
		require.NoError(t, err)
		assert.Equal(t, []string{"program-2"}, reloaded.ProgramIds)
	})

	t.Run("should prune a deleted class", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateBundle(context.Background(), validTestBundle())
		require.NoError(t, err)

		// when
		err = bus.Publish(event_bus.NewEvent(context.Background(), event_bus.ClassDeletedEvent,
			event_bus.ClassDeleted{ClassId: "class-1"}))

		// then
		require.NoError(t, err)
		reloaded, err := service.GetBundle(context.Background(), created.Id)
		require.NoError(t, err)
		assert.Empty(t, reloaded.ClassIds)
		assert.Equal(t, []string{"program-1", "program-2"}, reloaded.ProgramIds)
	})
}
