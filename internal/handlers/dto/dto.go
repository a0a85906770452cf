package dto

import (
	"time"

	"juggler/internal/models"
	"juggler/internal/schedule"
)

type CreateTaskRequest struct {
	// project_id нужен только маршруту POST /api/tasks,
	// проектный маршрут берёт его из пути
	ProjectID    int     `json:"project_id,omitempty"`
	ParentTaskID *int    `json:"parent_task_id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Status       string  `json:"status,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	Deadline     *string `json:"deadline,omitempty"`
}

type UpdateTaskRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Position    *int    `json:"position,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
}

// RescheduleRequest - перенос карточки перетаскиванием: либо дата
// ячейки, либо inbox=true. clear_start дополнительно очищает дату
// начала при сбросе в инбокс.
type RescheduleRequest struct {
	Date       string `json:"date,omitempty"`
	Inbox      bool   `json:"inbox,omitempty"`
	ClearStart bool   `json:"clear_start,omitempty"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

type SessionRequest struct {
	UserID int `json:"user_id"`
}

type UpdateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AvatarColor string `json:"avatar_color"`
}

type TaskResponse struct {
	ID           int       `json:"id"`
	ProjectID    int       `json:"project_id"`
	ParentTaskID *int      `json:"parent_task_id,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Position     int       `json:"position"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	StartDate    string    `json:"start_date"`
	Deadline     string    `json:"deadline"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IsOverdue    bool      `json:"is_overdue"`
}

func FromTask(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		ParentTaskID: t.ParentTaskID,
		Name:         t.Name,
		Description:  t.Description,
		Position:     t.Position,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		StartDate:    t.StartDate,
		Deadline:     t.Deadline,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		// даты YYYY-MM-DD сравниваются как строки
		IsOverdue: t.Deadline != "" &&
			t.Status != models.StatusDone &&
			t.Deadline < schedule.Today(),
	}
}

func FromTaskList(tasks []*models.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
