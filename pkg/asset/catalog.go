package asset

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/samatva/samatva/internal/storage"
	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/operator"
	"github.com/samatva/samatva/pkg/taxonomy"
	log "github.com/sirupsen/logrus"
)

// Catalog is the business layer over both asset collections. It also resolves
// typed asset references for the program builder.
type Catalog interface {
	ListSessions(ctx context.Context) ([]Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	CreateSession(ctx context.Context, s Session) (Session, error)
	UpdateSession(ctx context.Context, s Session) (Session, error)
	DeleteSession(ctx context.Context, id string) (bool, error)

	ListServices(ctx context.Context) ([]Service, error)
	GetService(ctx context.Context, id string) (Service, error)
	CreateService(ctx context.Context, s Service) (Service, error)
	UpdateService(ctx context.Context, s Service) (Service, error)
	DeleteService(ctx context.Context, id string) (bool, error)

	// Resolve loads the asset behind a reference. A missing asset returns
	// ErrAssetNotFound; callers rendering lists are expected to degrade
	// rather than abort.
	Resolve(ctx context.Context, ref Ref) (Resolved, error)

	// MediaUploadURL returns a presigned upload URL and the object key for a
	// new session media file.
	MediaUploadURL(ctx context.Context, filename string, contentType string) (string, string, error)

	// MediaDownloadURL returns a presigned download URL for the media object
	// behind a session.
	MediaDownloadURL(ctx context.Context, sessionId string) (string, error)
}

var ErrAssetNotFound = errors.New("asset not found")

type CatalogImpl struct {
	sessions SessionRepository
	services ServiceRepository
	media    storage.FileStorage
}

func NewCatalog(sessions SessionRepository, services ServiceRepository, media storage.FileStorage) *CatalogImpl {
	return &CatalogImpl{sessions: sessions, services: services, media: media}
}

func (c *CatalogImpl) ListSessions(ctx context.Context) ([]Session, error) {
	return c.sessions.ListSessions(ctx)
}

func (c *CatalogImpl) GetSession(ctx context.Context, id string) (Session, error) {
	return c.sessions.GetSession(ctx, id)
}

func (c *CatalogImpl) CreateSession(ctx context.Context, s Session) (Session, error) {
	if err := validateSession(s); err != nil {
		return Session{}, err
	}
	if operatorId, err := operator.CurrentId(ctx); err == nil {
		s.CreatedBy = operatorId
	}
	if s.Status == "" {
		s.Status = SessionDraft
	}
	id, err := c.sessions.CreateSession(ctx, s)
	if err != nil {
		return Session{}, err
	}
	s.Id = id
	return s, nil
}

func (c *CatalogImpl) UpdateSession(ctx context.Context, s Session) (Session, error) {
	if err := validateSession(s); err != nil {
		return Session{}, err
	}
	if err := c.sessions.UpdateSession(ctx, s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (c *CatalogImpl) DeleteSession(ctx context.Context, id string) (bool, error) {
	s, err := c.sessions.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	deleted, err := c.sessions.DeleteSession(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	// The media object is cleaned up best-effort; a leaked object must not
	// resurrect the session row.
	if c.media != nil && s.FileUrl != "" {
		if err := c.media.DeleteObject(ctx, s.FileUrl); err != nil {
			log.Errorf("failed to delete media object %q for session %s: %v", s.FileUrl, id, err)
		}
	}
	return true, nil
}

func (c *CatalogImpl) ListServices(ctx context.Context) ([]Service, error) {
	return c.services.ListServices(ctx)
}

func (c *CatalogImpl) GetService(ctx context.Context, id string) (Service, error) {
	return c.services.GetService(ctx, id)
}

func (c *CatalogImpl) CreateService(ctx context.Context, s Service) (Service, error) {
	if err := validateService(s); err != nil {
		return Service{}, err
	}
	if operatorId, err := operator.CurrentId(ctx); err == nil {
		s.CreatedBy = operatorId
	}
	if s.Status == "" {
		s.Status = ServiceDefined
	}
	id, err := c.services.CreateService(ctx, s)
	if err != nil {
		return Service{}, err
	}
	s.Id = id
	return s, nil
}

func (c *CatalogImpl) UpdateService(ctx context.Context, s Service) (Service, error) {
	if err := validateService(s); err != nil {
		return Service{}, err
	}
	if err := c.services.UpdateService(ctx, s); err != nil {
		return Service{}, err
	}
	return s, nil
}

func (c *CatalogImpl) DeleteService(ctx context.Context, id string) (bool, error) {
	return c.services.DeleteService(ctx, id)
}

func (c *CatalogImpl) Resolve(ctx context.Context, ref Ref) (Resolved, error) {
	switch ref.Type {
	case TypeSession:
		s, err := c.sessions.GetSession(ctx, ref.Id)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				return Resolved{}, ErrAssetNotFound
			}
			return Resolved{}, err
		}
		return Resolved{Ref: ref, Session: &s}, nil
	case TypeService:
		s, err := c.services.GetService(ctx, ref.Id)
		if err != nil {
			if errors.Is(err, ErrServiceNotFound) {
				return Resolved{}, ErrAssetNotFound
			}
			return Resolved{}, err
		}
		return Resolved{Ref: ref, Service: &s}, nil
	}
	// An unrecognised type cannot be looked up anywhere; treat it like a
	// missing asset so list rendering degrades instead of aborting.
	return Resolved{}, fmt.Errorf("unknown asset type %q: %w", ref.Type, ErrAssetNotFound)
}

func (c *CatalogImpl) MediaUploadURL(ctx context.Context, filename string, contentType string) (string, string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", "", validation.NewError("filename", "is required")
	}
	if c.media == nil {
		return "", "", errors.New("media storage is not configured")
	}
	key := "sessions/" + uuid.New().String() + path.Ext(filename)
	url, err := c.media.GeneratePresignedUploadURL(ctx, key, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Errorf("failed to create upload URL for %q: %v", filename, err)
		return "", "", err
	}
	return url, key, nil
}

func (c *CatalogImpl) MediaDownloadURL(ctx context.Context, sessionId string) (string, error) {
	s, err := c.sessions.GetSession(ctx, sessionId)
	if err != nil {
		return "", err
	}
	if s.FileUrl == "" {
		return "", validation.NewError("fileUrl", "session has no media file")
	}
	if c.media == nil {
		return "", errors.New("media storage is not configured")
	}
	url, err := c.media.GeneratePresignedDownloadURL(ctx, s.FileUrl, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Errorf("failed to create download URL for session %s: %v", sessionId, err)
		return "", err
	}
	return url, nil
}

func validateSession(s Session) error {
	if strings.TrimSpace(s.Title) == "" {
		return validation.NewError("title", "is required")
	}
	if !taxonomy.ValidFocusArea(s.FocusArea) {
		return validation.NewError("focusArea", "is not a known focus area")
	}
	if s.Duration <= 0 {
		return validation.NewError("duration", "must be positive")
	}
	if !s.IsFree && (s.BasePrice == nil || *s.BasePrice < 0) {
		return validation.NewError("basePrice", "must be non-negative for paid sessions")
	}
	return nil
}

func validateService(s Service) error {
	if strings.TrimSpace(s.Title) == "" {
		return validation.NewError("title", "is required")
	}
	if !taxonomy.ValidFocusArea(s.FocusArea) {
		return validation.NewError("focusArea", "is not a known focus area")
	}
	if s.ProviderId == "" {
		return validation.NewError("providerId", "is required")
	}
	if s.BasePrice < 0 {
		return validation.NewError("basePrice", "must be non-negative")
	}
	return nil
}
