package handlers

import (
	"context"

	"juggler/internal/models"
	"juggler/internal/service"
)

type TaskService interface {
	HealthCheck(ctx context.Context) error

	CreateTask(ctx context.Context, in service.CreateTaskInput) (*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, opts ...service.TaskOption) (*models.Task, error)
	ToggleComplete(ctx context.Context, id int) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
	Reschedule(ctx context.Context, id int, target service.DropTarget) (*models.Task, error)

	ListProjectTasks(ctx context.Context, projectID int) ([]*models.Task, error)
	TasksForView(ctx context.Context, projectID int, f service.TaskFilter) ([]*models.Task, error)
	Inbox(ctx context.Context, projectID int) ([]*models.Task, error)

	GetHistory(ctx context.Context, taskID int) ([]*models.TaskHistory, error)
	AddComment(ctx context.Context, taskID int, text string) (*models.TaskComment, error)
	GetComments(ctx context.Context, taskID int) ([]*models.TaskComment, error)
}

type ProjectService interface {
	CreateProject(ctx context.Context, name, description, deadline string) (*models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, name, description, deadline string) (*models.Project, error)
	ArchiveProject(ctx context.Context, id int) error
	ListProjects(ctx context.Context) ([]*models.Project, error)
	ToggleMember(ctx context.Context, projectID, userID int) (bool, error)
	Members(ctx context.Context, projectID int) ([]*models.ProjectMember, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	UpdateProfile(ctx context.Context, id int, name, email, avatarColor string) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	SwitchUser(ctx context.Context, id int) (*models.User, error)
}
