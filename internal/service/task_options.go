package service

import "juggler/internal/models"

// TaskOption - частичное обновление задачи: вызванная опция означает
// "поле пришло в патче". Отличие пустой строки даты от отсутствующей
// здесь принципиально - пустая снимает срок и уводит задачу в инбокс.
type TaskOption func(*models.Task)

func WithName(name string) TaskOption {
	return func(t *models.Task) {
		t.Name = name
	}
}

func WithDescription(description string) TaskOption {
	return func(t *models.Task) {
		t.Description = description
	}
}

func WithStatus(status models.TaskStatus) TaskOption {
	return func(t *models.Task) {
		t.Status = status
	}
}

func WithPriority(priority models.Priority) TaskOption {
	return func(t *models.Task) {
		t.Priority = priority
	}
}

func WithPosition(position int) TaskOption {
	return func(t *models.Task) {
		t.Position = position
	}
}

func WithStartDate(date string) TaskOption {
	return func(t *models.Task) {
		t.StartDate = date
	}
}

func WithDeadline(date string) TaskOption {
	return func(t *models.Task) {
		t.Deadline = date
	}
}
