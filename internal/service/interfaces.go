package service

import (
	"context"

	"juggler/internal/models"
)

// Репозиторий задач вместе с журналом и комментариями - всё, чем
// владеет хранилище вокруг одной задачи
type TaskRepository interface {
	HealthCheck(ctx context.Context) error

	CreateTask(ctx context.Context, t *models.Task) error
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	UpdateTask(ctx context.Context, t *models.Task) error
	SoftDeleteTaskCascade(ctx context.Context, id int) (int, error)
	ListProjectTasks(ctx context.Context, projectID int) ([]*models.Task, error)
	TaskCount(ctx context.Context) (int, error)

	AppendHistory(ctx context.Context, h *models.TaskHistory) error
	ListTaskHistory(ctx context.Context, taskID int) ([]*models.TaskHistory, error)

	AddComment(ctx context.Context, c *models.TaskComment) error
	ListTaskComments(ctx context.Context, taskID int) ([]*models.TaskComment, error)

	CurrentUser(ctx context.Context) (*models.User, error)
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, p *models.Project) error
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	ArchiveProject(ctx context.Context, id int) error
	ListProjects(ctx context.Context) ([]*models.Project, error)

	ToggleMember(ctx context.Context, projectID, userID int) (bool, error)
	ListProjectMembers(ctx context.Context, projectID int) ([]*models.ProjectMember, error)

	CurrentUser(ctx context.Context) (*models.User, error)
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	CurrentUser(ctx context.Context) (*models.User, error)
	SetCurrentUser(ctx context.Context, id int) error
}
