package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"juggler/internal/logger"
	"juggler/internal/models"
	"juggler/internal/repository"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("Пользователь", id, err)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id int, name, email, avatarColor string) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "имя не может быть пустым")
	}

	user.Name = name
	user.Email = email
	user.AvatarColor = avatarColor
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Service: профиль обновлён", zap.Int("user_id", id))
	return s.GetUser(ctx, id)
}

func (s *UserService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.repo.CurrentUser(ctx)
}

// SwitchUser - смена активного пользователя, сессия общая на процесс
func (s *UserService) SwitchUser(ctx context.Context, id int) (*models.User, error) {
	if err := s.repo.SetCurrentUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("Пользователь", id, err)
		}
		return nil, err
	}

	logger.Info("Service: сменён активный пользователь", zap.Int("user_id", id))
	return s.repo.CurrentUser(ctx)
}
