package service

import (
	"context"

	"github.com/practicum/shareit/server/internal/model"

	"go.uber.org/zap"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	user, err := s.repo.CreateUser(ctx, req)
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user created", zap.Int64("id", user.ID))
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, from, size int) ([]model.User, error) {
	if err := validatePage(from, size); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx, from/size, size)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	if req.Name == "" && req.Email == "" {
		return s.repo.GetUser(ctx, id)
	}
	return s.repo.UpdateUser(ctx, id, req)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}
