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

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// CreateProject - новый проект; автор становится владельцем
// и первым участником
func (s *ProjectService) CreateProject(ctx context.Context, name, description, deadline string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "имя проекта не может быть пустым")
	}
	if err := validDate("deadline", deadline); err != nil {
		return nil, err
	}

	owner, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		OwnerID:     owner.ID,
		Name:        name,
		Description: description,
		Deadline:    deadline,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		logger.Error("Service: не удалось создать проект", err)
		return nil, err
	}

	logger.Info("Service: проект создан",
		zap.Int("project_id", project.ID),
		zap.Int("owner_id", owner.ID))
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id int) (*models.Project, error) {
	project, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("Проект", id, err)
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int, name, description, deadline string) (*models.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "имя проекта не может быть пустым")
	}
	if err := validDate("deadline", deadline); err != nil {
		return nil, err
	}

	project.Name = name
	project.Description = description
	project.Deadline = deadline
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}

	logger.Info("Service: проект обновлён", zap.Int("project_id", id))
	return s.GetProject(ctx, id)
}

// ArchiveProject - мягкое удаление, задачи проекта не трогаем
func (s *ProjectService) ArchiveProject(ctx context.Context, id int) error {
	if err := s.repo.ArchiveProject(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("Проект", id, err)
		}
		return err
	}

	logger.Info("Service: проект в архиве", zap.Int("project_id", id))
	return nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// ToggleMember - кнопка участника работает как переключатель:
// не состоит - добавить, состоит - убрать. Владельца снять нельзя.
func (s *ProjectService) ToggleMember(ctx context.Context, projectID, userID int) (bool, error) {
	project, err := s.GetProject(ctx, projectID)
	if err != nil {
		return false, err
	}
	if project.OwnerID == userID {
		return false, NewValidationError("user_id", "владельца проекта нельзя исключить")
	}

	added, err := s.repo.ToggleMember(ctx, projectID, userID)
	if err != nil {
		return false, err
	}

	logger.Info("Service: состав проекта изменён",
		zap.Int("project_id", projectID),
		zap.Int("user_id", userID),
		zap.Bool("added", added))
	return added, nil
}

func (s *ProjectService) Members(ctx context.Context, projectID int) ([]*models.ProjectMember, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListProjectMembers(ctx, projectID)
}
