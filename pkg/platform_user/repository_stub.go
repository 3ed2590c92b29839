package platform_user

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type RepositoryStub struct {
	users map[string]PlatformUser
}

func NewStubUserRepo() *RepositoryStub {
	return &RepositoryStub{users: map[string]PlatformUser{}}
}

func (s *RepositoryStub) GetUser(ctx context.Context, id string) (PlatformUser, error) {
	if u, exists := s.users[id]; exists {
		return u, nil
	}
	return PlatformUser{}, ErrUserNotFound
}

func (s *RepositoryStub) ListUsers(ctx context.Context) ([]PlatformUser, error) {
	users := make([]PlatformUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (s *RepositoryStub) CreateUser(ctx context.Context, u PlatformUser) (string, error) {
	u.Id = uuid.New().String()
	s.users[u.Id] = u
	return u.Id, nil
}

func (s *RepositoryStub) UpdateUser(ctx context.Context, u PlatformUser) error {
	if _, exists := s.users[u.Id]; !exists {
		return ErrUserNotFound
	}
	s.users[u.Id] = u
	return nil
}

func (s *RepositoryStub) DeleteUser(ctx context.Context, id string) (bool, error) {
	if _, exists := s.users[id]; exists {
		delete(s.users, id)
		return true, nil
	}
	return false, nil
}

func (s *RepositoryStub) Cleanup() {
	s.users = map[string]PlatformUser{}
}
