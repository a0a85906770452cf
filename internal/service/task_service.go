package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"juggler/internal/logger"
	"juggler/internal/models"
	"juggler/internal/repository"
	"juggler/internal/schedule"
)

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

// CreateTaskInput - поля команды создания. Указатели на датах
// различают "не прислали" (подставим сегодня) и "прислали пустую"
// (задача сразу уходит в инбокс).
type CreateTaskInput struct {
	ProjectID    int
	ParentTaskID *int
	Name         string
	Description  string
	Status       models.TaskStatus
	Priority     models.Priority
	StartDate    *string
	Deadline     *string
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "New Task"
	}

	status := in.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !status.Valid() {
		return nil, NewValidationError("status", "неизвестный статус "+string(status))
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, NewValidationError("priority", "неизвестный приоритет "+string(priority))
	}

	today := schedule.Today()
	startDate := today
	if in.StartDate != nil {
		startDate = *in.StartDate
	}
	deadline := today
	if in.Deadline != nil {
		deadline = *in.Deadline
	}
	if err := validDate("start_date", startDate); err != nil {
		return nil, err
	}
	if err := validDate("deadline", deadline); err != nil {
		return nil, err
	}

	if in.ParentTaskID != nil {
		parent, err := s.repo.GetTaskByID(ctx, *in.ParentTaskID)
		if err != nil {
			return nil, NewNotFound("Родительская задача", *in.ParentTaskID, err)
		}
		// вложенность строго один уровень
		if parent.IsSubtask() {
			return nil, NewValidationError("parent_task_id", "подзадача не может иметь собственных подзадач")
		}
	}

	count, err := s.repo.TaskCount(ctx)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID:    in.ProjectID,
		ParentTaskID: in.ParentTaskID,
		Name:         name,
		Description:  in.Description,
		Position:     count + 1,
		Status:       status,
		Priority:     priority,
		StartDate:    startDate,
		Deadline:     deadline,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		logger.Error("Service: не удалось создать задачу", err)
		return nil, err
	}

	s.recordAction(ctx, task.ID, models.ActionCreated, nil, strPtr(task.Name))

	logger.Info("Service: задача создана",
		zap.Int("task_id", task.ID),
		zap.Int("project_id", task.ProjectID))
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*models.Task, error) {
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("Задача", id, err)
		}
		return nil, err
	}
	return task, nil
}

// UpdateTask - частичное обновление. Смена статуса или приоритета
// попадает в журнал, остальные поля меняются молча.
func (s *TaskService) UpdateTask(ctx context.Context, id int, opts ...TaskOption) (*models.Task, error) {
	old, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	for _, opt := range opts {
		opt(&updated)
	}

	if !updated.Status.Valid() {
		return nil, NewValidationError("status", "неизвестный статус "+string(updated.Status))
	}
	if !updated.Priority.Valid() {
		return nil, NewValidationError("priority", "неизвестный приоритет "+string(updated.Priority))
	}
	if err := validDate("start_date", updated.StartDate); err != nil {
		return nil, err
	}
	if err := validDate("deadline", updated.Deadline); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTask(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("Задача", id, err)
		}
		return nil, err
	}

	if old.Status != updated.Status {
		s.recordAction(ctx, id, models.ActionStatusChange,
			strPtr(string(old.Status)), strPtr(string(updated.Status)))
	}
	if old.Priority != updated.Priority {
		s.recordAction(ctx, id, models.ActionPriorityChange,
			strPtr(string(old.Priority)), strPtr(string(updated.Priority)))
	}

	logger.Info("Service: задача обновлена", zap.Int("task_id", id))
	return s.GetTask(ctx, id)
}

// ToggleComplete - переключатель DONE <-> TODO. Из IN_PROGRESS
// чекбокс тоже ведёт в DONE.
func (s *TaskService) ToggleComplete(ctx context.Context, id int) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	next := models.StatusDone
	if task.Status == models.StatusDone {
		next = models.StatusTodo
	}
	return s.UpdateTask(ctx, id, WithStatus(next))
}

// DeleteTask - мягкое удаление задачи вместе с её подзадачами
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	removed, err := s.repo.SoftDeleteTaskCascade(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("Задача", id, err)
		}
		return err
	}

	logger.Info("Service: задача удалена",
		zap.Int("task_id", id),
		zap.Int("removed", removed))
	return nil
}

// DropTarget - куда бросили карточку при drag-and-drop
type DropTarget struct {
	// дата ячейки календаря или таймлайна
	Date string
	// бросили в инбокс - дедлайн снимается
	Inbox bool
	// вместе с дедлайном очистить и дату начала
	ClearStart bool
}

// Reschedule - перенос срока перетаскиванием. Перенос дат не
// считается сменой статуса и в журнал не пишется.
func (s *TaskService) Reschedule(ctx context.Context, id int, target DropTarget) (*models.Task, error) {
	if target.Inbox {
		opts := []TaskOption{WithDeadline("")}
		if target.ClearStart {
			opts = append(opts, WithStartDate(""))
		}
		return s.UpdateTask(ctx, id, opts...)
	}

	if _, err := schedule.ParseDate(target.Date); err != nil {
		return nil, NewValidationError("date", "ожидается дата в формате YYYY-MM-DD")
	}
	return s.UpdateTask(ctx, id, WithDeadline(target.Date))
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID int) ([]*models.Task, error) {
	return s.repo.ListProjectTasks(ctx, projectID)
}

func (s *TaskService) GetHistory(ctx context.Context, taskID int) ([]*models.TaskHistory, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.repo.ListTaskHistory(ctx, taskID)
}

func (s *TaskService) AddComment(ctx context.Context, taskID int, text string) (*models.TaskComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("text", "комментарий не может быть пустым")
	}
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	user, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	comment := &models.TaskComment{
		TaskID: taskID,
		UserID: user.ID,
		Text:   text,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	logger.Info("Service: добавлен комментарий",
		zap.Int("task_id", taskID),
		zap.Int("comment_id", comment.ID))
	return comment, nil
}

func (s *TaskService) GetComments(ctx context.Context, taskID int) ([]*models.TaskComment, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.repo.ListTaskComments(ctx, taskID)
}

// recordAction - запись в журнал от имени текущего пользователя.
// Сбой журнала не валит основную команду, только пишется в лог.
func (s *TaskService) recordAction(ctx context.Context, taskID int, action models.ActionType, oldValue, newValue *string) {
	user, err := s.repo.CurrentUser(ctx)
	if err != nil {
		logger.Error("Service: журнал без автора", err)
		return
	}

	entry := &models.TaskHistory{
		TaskID:     taskID,
		ChangedBy:  user.ID,
		ActionType: action,
		OldValue:   oldValue,
		NewValue:   newValue,
	}
	if err := s.repo.AppendHistory(ctx, entry); err != nil {
		logger.Error("Service: не удалось записать журнал", err,
			zap.Int("task_id", taskID))
	}
}

// пустая дата допустима - задача без срока живёт в инбоксе
func validDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := schedule.ParseDate(value); err != nil {
		return NewValidationError(field, "ожидается дата в формате YYYY-MM-DD")
	}
	return nil
}

func strPtr(v string) *string { return &v }
