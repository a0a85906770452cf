package models

import "time"

type ActionType string

const ActionCreated ActionType = "CREATED"
const ActionStatusChange ActionType = "STATUS_CHANGE"
const ActionPriorityChange ActionType = "PRIORITY_CHANGE"

// TaskHistory - журнал изменений задачи, только добавление.
// Записи выводятся внутри команд обновления, не вызывающей стороной.
type TaskHistory struct {
	ID         int        `json:"id"`
	TaskID     int        `json:"task_id"`
	ChangedBy  int        `json:"changed_by"`
	ActionType ActionType `json:"action_type"`
	OldValue   *string    `json:"old_value,omitempty"`
	NewValue   *string    `json:"new_value,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
