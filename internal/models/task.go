package models

import "time"

// Даты хранятся строками в формате YYYY-MM-DD.
// Пустая строка - задача без срока, она живёт в инбоксе.
type Task struct {
	ID           int        `json:"id"`
	ProjectID    int        `json:"project_id"`
	ParentTaskID *int       `json:"parent_task_id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Position     int        `json:"position"`
	Status       TaskStatus `json:"status"`
	Priority     Priority   `json:"priority"`
	StartDate    string     `json:"start_date"`
	Deadline     string     `json:"deadline"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	IsDeleted    bool       `json:"is_deleted"`
}

type TaskStatus string
type Priority string

const StatusTodo TaskStatus = "TODO"
const StatusInProgress TaskStatus = "IN_PROGRESS"
const StatusDone TaskStatus = "DONE"

const PriorityLow Priority = "LOW"
const PriorityMedium Priority = "MEDIUM"
const PriorityHigh Priority = "HIGH"

// PriorityAll - сентинел для фильтра "все приоритеты"
const PriorityAll Priority = "ALL"

func (s TaskStatus) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// IsSubtask - вложенность ровно один уровень, дальше никто не смотрит
func (t *Task) IsSubtask() bool {
	return t.ParentTaskID != nil
}

// Unscheduled - задача без дедлайна (инбокс)
func (t *Task) Unscheduled() bool {
	return t.Deadline == ""
}
