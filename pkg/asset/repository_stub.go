package asset

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type SessionRepoStub struct {
	sessions map[string]Session
}

func NewStubSessionRepo() *SessionRepoStub {
	return &SessionRepoStub{sessions: map[string]Session{}}
}

func (s *SessionRepoStub) GetSession(ctx context.Context, id string) (Session, error) {
	if sess, exists := s.sessions[id]; exists {
		return sess, nil
	}
	return Session{}, ErrSessionNotFound
}

func (s *SessionRepoStub) ListSessions(ctx context.Context) ([]Session, error) {
	sessions := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Title < sessions[j].Title })
	return sessions, nil
}

func (s *SessionRepoStub) CreateSession(ctx context.Context, sess Session) (string, error) {
	sess.Id = uuid.New().String()
	sess.CreatedAt = time.Now()
	s.sessions[sess.Id] = sess
	return sess.Id, nil
}

func (s *SessionRepoStub) UpdateSession(ctx context.Context, sess Session) error {
	existing, exists := s.sessions[sess.Id]
	if !exists {
		return ErrSessionNotFound
	}
	sess.CreatedAt = existing.CreatedAt
	s.sessions[sess.Id] = sess
	return nil
}

func (s *SessionRepoStub) DeleteSession(ctx context.Context, id string) (bool, error) {
	if _, exists := s.sessions[id]; !exists {
		return false, nil
	}
	delete(s.sessions, id)
	return true, nil
}

func (s *SessionRepoStub) Cleanup() {
	s.sessions = map[string]Session{}
}

type ServiceRepoStub struct {
	services map[string]Service
}

func NewStubServiceRepo() *ServiceRepoStub {
	return &ServiceRepoStub{services: map[string]Service{}}
}

func (s *ServiceRepoStub) GetService(ctx context.Context, id string) (Service, error) {
	if svc, exists := s.services[id]; exists {
		return svc, nil
	}
	return Service{}, ErrServiceNotFound
}

func (s *ServiceRepoStub) ListServices(ctx context.Context) ([]Service, error) {
	services := make([]Service, 0, len(s.services))
	for _, svc := range s.services {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Title < services[j].Title })
	return services, nil
}

func (s *ServiceRepoStub) CreateService(ctx context.Context, svc Service) (string, error) {
	svc.Id = uuid.New().String()
	svc.CreatedAt = time.Now()
	s.services[svc.Id] = svc
	return svc.Id, nil
}

func (s *ServiceRepoStub) UpdateService(ctx context.Context, svc Service) error {
	existing, exists := s.services[svc.Id]
	if !exists {
		return ErrServiceNotFound
	}
	svc.CreatedAt = existing.CreatedAt
	s.services[svc.Id] = svc
	return nil
}

func (s *ServiceRepoStub) DeleteService(ctx context.Context, id string) (bool, error) {
	if _, exists := s.services[id]; !exists {
		return false, nil
	}
	delete(s.services, id)
	return true, nil
}

func (s *ServiceRepoStub) Cleanup() {
	s.services = map[string]Service{}
}

// StubFileStorage fakes the object store for tests.
type StubFileStorage struct {
	DeletedKeys []string
}

func (s *StubFileStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiry time.Duration) (string, error) {
	return "https://media.test/upload/" + key, nil
}

func (s *StubFileStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://media.test/download/" + key, nil
}

func (s *StubFileStorage) DeleteObject(ctx context.Context, key string) error {
	s.DeletedKeys = append(s.DeletedKeys, key)
	return nil
}

func (s *StubFileStorage) Cleanup() {
	s.DeletedKeys = nil
}
