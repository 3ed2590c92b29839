package program

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samatva/samatva/internal/test_utils"
	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var pgContainer *postgres.PostgresContainer
var openDb func() *pgxpool.Pool

func TestMain(m *testing.M) {
	pgContainer, openDb = test_utils.TestWithDB()
	defer func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			log.Errorf("failed to terminate container: %s", err)
		}
	}()
	code := m.Run()
	os.Exit(code)
}

func setupTestRepositories(t *testing.T) (context.Context, *RepositoryImpl, *PlanRepositoryImpl) {
	ctx := context.Background()
	db := openDb()
	t.Cleanup(func() {
		db.Close()
		err := pgContainer.Restore(ctx)
		require.NoError(t, err)
	})
	return ctx, NewProgramRepo(db), NewPlanRepo(db)
}

func storedProgram() Program {
	return Program{
		Title:            "Sleep Better",
		ShortDescription: "Two weeks of sleep hygiene",
		FocusArea:        taxonomy.FocusSleep,
		Tags:             []string{"sleep", "habits"},
		Duration:         14,
		ProgramType:      TypeSequential,
		ProviderId:       "provider-1",
		Gender:           taxonomy.GenderAny,
		AgeGroup:         taxonomy.AgeAdult,
		Status:           StatusDraft,
		BasePrice:        50000,
		Currency:         "INR",
		CreatedBy:        "op-1",
	}
}

func storedItem(planId string, day int, seq int, title string) Item {
	return Item{
		PlanId:     planId,
		Asset:      asset.Ref{Type: asset.TypeSession, Id: "session-1"},
		DayNo:      day,
		SequenceNo: seq,
		Title:      title,
		CreatedBy:  "op-1",
	}
}

func TestRepositoryImpl_Programs(t *testing.T) {
	t.Run("should round-trip a program through create and get", func(t *testing.T) {
		// given
		ctx, repo, _ := setupTestRepositories(t)

		// when
		id, err := repo.CreateProgram(ctx, storedProgram())

		// then
		require.NoError(t, err)
		require.NotEmpty(t, id)
		loaded, err := repo.GetProgram(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Sleep Better", loaded.Title)
		assert.Equal(t, []string{"sleep", "habits"}, loaded.Tags)
		assert.Equal(t, 14, loaded.Duration)
		assert.Nil(t, loaded.OfferPrice)
		assert.False(t, loaded.CreatedAt.IsZero())
	})

	t.Run("should update all scalar fields", func(t *testing.T) {
		// given
		ctx, repo, _ := setupTestRepositories(t)
		id, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)
		loaded, err := repo.GetProgram(ctx, id)
		require.NoError(t, err)

		// when
		loaded.Title = "Sleep Even Better"
		offer := int64(40000)
		loaded.OfferPrice = &offer
		err = repo.UpdateProgram(ctx, loaded)

		// then
		require.NoError(t, err)
		updated, err := repo.GetProgram(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Sleep Even Better", updated.Title)
		require.NotNil(t, updated.OfferPrice)
		assert.Equal(t, int64(40000), *updated.OfferPrice)
	})

	t.Run("should return ErrProgramNotFound when updating a missing program", func(t *testing.T) {
		// given
		ctx, repo, _ := setupTestRepositories(t)
		p := storedProgram()
		p.Id = "00000000-0000-0000-0000-000000000000"

		// when
		err := repo.UpdateProgram(ctx, p)

		// then
		assert.ErrorIs(t, err, ErrProgramNotFound)
	})
}

func TestPlanRepositoryImpl_Plans(t *testing.T) {
	t.Run("should find only the active plan for a program", func(t *testing.T) {
		// given
		ctx, repo, plans := setupTestRepositories(t)
		programId, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)
		_, err = plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "old", SequenceOrder: 1, Status: PlanInactive})
		require.NoError(t, err)
		activeId, err := plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "Sleep Better - Plan", Description: "Execution plan for Sleep Better",
			SequenceOrder: 1, Status: PlanActive})
		require.NoError(t, err)

		// when
		active, err := plans.GetActivePlan(ctx, programId)

		// then
		require.NoError(t, err)
		assert.Equal(t, activeId, active.Id)
		assert.Equal(t, "Sleep Better - Plan", active.Title)
	})

	t.Run("should reject a second active plan for the same program", func(t *testing.T) {
		// given
		ctx, repo, plans := setupTestRepositories(t)
		programId, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)
		_, err = plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "first", SequenceOrder: 1, Status: PlanActive})
		require.NoError(t, err)

		// when
		_, err = plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "second", SequenceOrder: 1, Status: PlanActive})

		// then
		assert.Error(t, err)
	})

	t.Run("should return ErrPlanNotFound for a program without plans", func(t *testing.T) {
		// given
		ctx, repo, plans := setupTestRepositories(t)
		programId, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)

		// when
		_, err = plans.GetActivePlan(ctx, programId)

		// then
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})
}

func TestPlanRepositoryImpl_Items(t *testing.T) {
	t.Run("should replace the full item set and read back in day/sequence order", func(t *testing.T) {
		// given
		ctx, repo, plans := setupTestRepositories(t)
		programId, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)
		planId, err := plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "plan", SequenceOrder: 1, Status: PlanActive})
		require.NoError(t, err)

		// when
		err = plans.ReplaceItems(ctx, planId, []Item{
			storedItem(planId, 2, 1, "d2s1"),
			storedItem(planId, 1, 2, "d1s2"),
			storedItem(planId, 1, 1, "d1s1"),
		})

		// then
		require.NoError(t, err)
		items, err := plans.ListItems(ctx, planId)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "d1s1", items[0].Title)
		assert.Equal(t, "d1s2", items[1].Title)
		assert.Equal(t, "d2s1", items[2].Title)
		for _, item := range items {
			assert.NotEmpty(t, item.Id)
			assert.Equal(t, planId, item.PlanId)
		}
	})

	t.Run("should drop removed items on a second replace", func(t *testing.T) {
		// given
		ctx, repo, plans := setupTestRepositories(t)
		programId, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)
		planId, err := plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "plan", SequenceOrder: 1, Status: PlanActive})
		require.NoError(t, err)
		err = plans.ReplaceItems(ctx, planId, []Item{
			storedItem(planId, 1, 1, "one"),
			storedItem(planId, 2, 1, "two"),
			storedItem(planId, 3, 1, "three"),
		})
		require.NoError(t, err)

		// when
		err = plans.ReplaceItems(ctx, planId, []Item{
			storedItem(planId, 1, 1, "one"),
			storedItem(planId, 2, 1, "two"),
		})

		// then
		require.NoError(t, err)
		items, err := plans.ListItems(ctx, planId)
		require.NoError(t, err)
		require.Len(t, items, 2)
	})

	t.Run("should cascade items when plans are deleted by program", func(t *testing.T) {
		// given
		ctx, repo, plans := setupTestRepositories(t)
		programId, err := repo.CreateProgram(ctx, storedProgram())
		require.NoError(t, err)
		planId, err := plans.CreatePlan(ctx, Plan{ProgramId: programId, PlanType: PlanDay,
			Title: "plan", SequenceOrder: 1, Status: PlanActive})
		require.NoError(t, err)
		err = plans.ReplaceItems(ctx, planId, []Item{storedItem(planId, 1, 1, "one")})
		require.NoError(t, err)

		// when
		err = plans.DeletePlansByProgram(ctx, programId)

		// then
		require.NoError(t, err)
		items, err := plans.ListItems(ctx, planId)
		require.NoError(t, err)
		assert.Empty(t, items)
		deleted, err := repo.DeleteProgram(ctx, programId)
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
