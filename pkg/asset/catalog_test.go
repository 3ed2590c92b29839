package asset

import (
	"context"
	"strings"
	"testing"

	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/operator"
	"github.com/samatva/samatva/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionStub = NewStubSessionRepo()
var serviceStub = NewStubServiceRepo()
var mediaStub = &StubFileStorage{}

var catalog Catalog

func setup(t *testing.T) func() {
	catalog = NewCatalog(sessionStub, serviceStub, mediaStub)
	return func() {
		t.Log("Teardown after test")
		sessionStub.Cleanup()
		serviceStub.Cleanup()
		mediaStub.Cleanup()
	}
}

func validTestSession() Session {
	return Session{
		Title:       "Morning Breathwork",
		FocusArea:   taxonomy.FocusMind,
		ContentType: ContentAudio,
		Duration:    20,
		IsFree:      true,
	}
}

func validTestService() Service {
	return Service{
		Title:       "Nutrition Consult",
		FocusArea:   taxonomy.FocusNutrition,
		ServiceType: ServiceTeleConsult,
		ProviderId:  "provider-1",
		BasePrice:   150000,
		Currency:    "INR",
	}
}

func TestCatalogImpl_CreateSession(t *testing.T) {
	t.Run("should create a session with draft status and operator attribution", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		ctx := operator.WithOperator(context.Background(), operator.Operator{Id: "op-1"})

		// when
		created, err := catalog.CreateSession(ctx, validTestSession())

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, SessionDraft, created.Status)
		assert.Equal(t, "op-1", created.CreatedBy)
	})

	t.Run("should reject a paid session without a base price", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		s := validTestSession()
		s.IsFree = false
		s.BasePrice = nil

		// when
		_, err := catalog.CreateSession(context.Background(), s)

		// then
		assert.True(t, validation.IsValidationError(err))
	})

	t.Run("should reject an unknown focus area", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		s := validTestSession()
		s.FocusArea = "Chakras"

		// when
		_, err := catalog.CreateSession(context.Background(), s)

		// then
		assert.True(t, validation.IsValidationError(err))
	})
}

func TestCatalogImpl_Sessions(t *testing.T) {
	t.Run("should list sessions ordered by title", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		first := validTestSession()
		first.Title = "Zen Walk"
		second := validTestSession()
		second.Title = "Body Scan"
		_, err := catalog.CreateSession(context.Background(), first)
		require.NoError(t, err)
		_, err = catalog.CreateSession(context.Background(), second)
		require.NoError(t, err)

		// when
		sessions, err := catalog.ListSessions(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.Equal(t, "Body Scan", sessions[0].Title)
		assert.Equal(t, "Zen Walk", sessions[1].Title)
	})

	t.Run("should remove the media object along with the session", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		s := validTestSession()
		s.FileUrl = "sessions/abc123.mp3"
		created, err := catalog.CreateSession(context.Background(), s)
		require.NoError(t, err)

		// when
		deleted, err := catalog.DeleteSession(context.Background(), created.Id)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Contains(t, mediaStub.DeletedKeys, "sessions/abc123.mp3")
	})

	t.Run("should not touch the object store for a session without media", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := catalog.CreateSession(context.Background(), validTestSession())
		require.NoError(t, err)

		// when
		deleted, err := catalog.DeleteSession(context.Background(), created.Id)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Empty(t, mediaStub.DeletedKeys)
	})

	t.Run("should report a missing session on delete", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		deleted, err := catalog.DeleteSession(context.Background(), "no-such-id")

		// then
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestCatalogImpl_CreateService(t *testing.T) {
	t.Run("should create a service with defined status", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := catalog.CreateService(context.Background(), validTestService())

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, ServiceDefined, created.Status)
	})

	t.Run("should reject a service without a provider", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		s := validTestService()
		s.ProviderId = ""

		// when
		_, err := catalog.CreateService(context.Background(), s)

		// then
		assert.True(t, validation.IsValidationError(err))
	})
}

func TestCatalogImpl_Resolve(t *testing.T) {
	t.Run("should resolve a session reference", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := catalog.CreateSession(context.Background(), validTestSession())
		require.NoError(t, err)

		// when
		resolved, err := catalog.Resolve(context.Background(), Ref{Type: TypeSession, Id: created.Id})

		// then
		require.NoError(t, err)
		require.NotNil(t, resolved.Session)
		assert.Nil(t, resolved.Service)
		assert.Equal(t, "Morning Breathwork", resolved.Title())
	})

	t.Run("should resolve a service reference", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := catalog.CreateService(context.Background(), validTestService())
		require.NoError(t, err)

		// when
		resolved, err := catalog.Resolve(context.Background(), Ref{Type: TypeService, Id: created.Id})

		// then
		require.NoError(t, err)
		require.NotNil(t, resolved.Service)
		assert.Equal(t, "Nutrition Consult", resolved.Title())
	})

	t.Run("should map a missing asset to ErrAssetNotFound", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := catalog.Resolve(context.Background(), Ref{Type: TypeSession, Id: "gone"})

		// then
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})

	t.Run("should map an unrecognised reference type to ErrAssetNotFound", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := catalog.Resolve(context.Background(), Ref{Type: "foo", Id: "whatever"})

		// then
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})
}

func TestCatalogImpl_MediaDownloadURL(t *testing.T) {
	t.Run("should return a presigned URL for the session's media object", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		s := validTestSession()
		s.FileUrl = "sessions/abc123.mp3"
		created, err := catalog.CreateSession(context.Background(), s)
		require.NoError(t, err)

		// when
		url, err := catalog.MediaDownloadURL(context.Background(), created.Id)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://media.test/download/sessions/abc123.mp3", url)
	})

	t.Run("should reject a session without a media file", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := catalog.CreateSession(context.Background(), validTestSession())
		require.NoError(t, err)

		// when
		_, err = catalog.MediaDownloadURL(context.Background(), created.Id)

		// then
		assert.True(t, validation.IsValidationError(err))
	})

	t.Run("should surface a missing session", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := catalog.MediaDownloadURL(context.Background(), "no-such-id")

		// then
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestCatalogImpl_MediaUploadURL(t *testing.T) {
	t.Run("should return a presigned URL and a keyed object path", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		url, key, err := catalog.MediaUploadURL(context.Background(), "breathwork.mp3", "audio/mpeg")

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "sessions/"))
		assert.True(t, strings.HasSuffix(key, ".mp3"))
		assert.Equal(t, "https://media.test/upload/"+key, url)
	})

	t.Run("should reject an empty filename", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, _, err := catalog.MediaUploadURL(context.Background(), " ", "audio/mpeg")

		// then
		assert.True(t, validation.IsValidationError(err))
	})
}
