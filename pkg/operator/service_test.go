package operator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoStub = NewStubOperatorRepo()

var service Service

func setup(t *testing.T) func() {
	service = NewOperatorService(repoStub)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func TestServiceImpl_CreateOperator(t *testing.T) {
	t.Run("should create an operator with defaults", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.CreateOperator(context.Background(), Operator{Name: "Asha Rao", Email: "asha@example.com", Role: "catalog_admin"})

		// then
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, StatusActive, created.Status)
	})

	t.Run("should reject missing name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.CreateOperator(context.Background(), Operator{Email: "asha@example.com"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should reject missing email", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.CreateOperator(context.Background(), Operator{Name: "Asha Rao"})

		// then
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})
}

func TestServiceImpl_GetCurrentOperator(t *testing.T) {
	t.Run("should return the operator from context", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		op := Operator{Id: "op-1", Name: "Asha Rao"}
		ctx := WithOperator(context.Background(), op)

		// when
		current, err := service.GetCurrentOperator(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, op, current)
	})

	t.Run("should fail when context has no operator", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.GetCurrentOperator(context.Background())

		// then
		assert.ErrorIs(t, err, ErrNoOperator)
	})
}

func TestServiceImpl_DeleteOperator(t *testing.T) {
	t.Run("should delete an existing operator", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.CreateOperator(context.Background(), Operator{Name: "Asha Rao", Email: "asha@example.com"})
		require.NoError(t, err)

		// when
		err = service.DeleteOperator(context.Background(), created.Id)

		// then
		assert.NoError(t, err)
		operators, err := service.ListOperators(context.Background())
		require.NoError(t, err)
		assert.Empty(t, operators)
	})

	t.Run("should fail for unknown operator", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.DeleteOperator(context.Background(), "missing")

		// then
		assert.ErrorIs(t, err, ErrOperatorNotFound)
	})
}
