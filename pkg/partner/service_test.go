package partner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoStub = NewStubPartnerRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewPartnerService(repoStub)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_CreatePartner(t *testing.T) {
	t.Run("should create a partner and default status to active", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreatePartner(context.Background(), Partner{
			Name:          "Prakriti Wellness",
			Type:          TypeProvider,
			ContactPerson: "Meera Iyer",
			City:          "Bengaluru",
			Country:       "India",
		})

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, StatusActive, created.Status)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.CreatePartner(context.Background(), Partner{Type: TypeProvider})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should reject an unknown type", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.CreatePartner(context.Background(), Partner{Name: "X", Type: "franchise"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "type")
	})
}

func TestServiceImpl_ListProviders(t *testing.T) {
	t.Run("should include provider and dual partners only", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.CreatePartner(context.Background(), Partner{Name: "A Provider", Type: TypeProvider})
		require.NoError(t, err)
		_, err = service.CreatePartner(context.Background(), Partner{Name: "B Institution", Type: TypeInstitution})
		require.NoError(t, err)
		_, err = service.CreatePartner(context.Background(), Partner{Name: "C Dual", Type: TypeDual})
		require.NoError(t, err)

		// when
		providers, err := service.ListProviders(context.Background())

		// then
		require.NoError(t, err)
		assert.Len(t, providers, 2)
		assert.Equal(t, "A Provider", providers[0].Name)
		assert.Equal(t, "C Dual", providers[1].Name)
	})
}

func TestServiceImpl_UpdatePartner(t *testing.T) {
	t.Run("should update an existing partner", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreatePartner(context.Background(), Partner{Name: "Old Name", Type: TypeCenter})
		require.NoError(t, err)
		created.Name = "New Name"
		created.Status = StatusInactive

		// when
		updated, err := service.UpdatePartner(context.Background(), created)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, StatusInactive, updated.Status)
	})

	t.Run("should fail for a missing partner", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.UpdatePartner(context.Background(), Partner{Id: "missing", Name: "X", Type: TypeCenter})

		// then
		assert.ErrorIs(t, err, ErrPartnerNotFound)
	})
}

func TestServiceImpl_DeletePartner(t *testing.T) {
	t.Run("should delete an existing partner", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreatePartner(context.Background(), Partner{Name: "To Delete", Type: TypeProvider})
		require.NoError(t, err)

		// when
		deleted, err := service.DeletePartner(context.Background(), created.Id)

		// then
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("should report false for an unknown partner", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		deleted, err := service.DeletePartner(context.Background(), "missing")

		// then
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
