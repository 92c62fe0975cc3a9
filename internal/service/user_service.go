package service

import (
	"context"

	"restaurant-staffing/internal/domain"
)

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Ensure creates the user record for a subject on first authenticated visit.
// The second return reports whether the subject was already known.
func (s *UserService) Ensure(ctx context.Context, sub string) (*domain.User, bool, *domain.Error) {
	u, err := s.users.FindUserBySub(ctx, sub)
	if err != nil {
		return nil, false, domain.Internal(err)
	}
	if u != nil {
		return u, true, nil
	}
	u = &domain.User{Sub: sub}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, false, domain.Internal(err)
	}
	return u, false, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, *domain.Error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return users, nil
}

func (s *UserService) DeleteAll(ctx context.Context) *domain.Error {
	if err := s.users.DeleteAllUsers(ctx); err != nil {
		return domain.Internal(err)
	}
	return nil
}

var _ UserServiceInterface = (*UserService)(nil)
