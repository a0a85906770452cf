package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"juggler/internal/logger"
	"juggler/internal/models"
	"juggler/internal/schedule"
)

// TaskSource - доступ на чтение к задачам всех активных проектов
type TaskSource interface {
	ListProjects(ctx context.Context) ([]*models.Project, error)
	ListProjectTasks(ctx context.Context, projectID int) ([]*models.Task, error)
}

// ReminderWorker периодически проходит по задачам и пишет в лог
// напоминания о сегодняшних и просроченных дедлайнах. Состояние
// задач воркер не меняет - статусов вроде OVERDUE в модели нет,
// просроченность вычисляется на лету.
type ReminderWorker struct {
	source   TaskSource
	interval time.Duration
}

func NewReminderWorker(source TaskSource, interval time.Duration) *ReminderWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReminderWorker{
		source:   source,
		interval: interval,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: Фоновая проверка сроков", zap.Time("started_at", time.Now()))
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка останавливается")
			return
		}
	}
}

func (w *ReminderWorker) Check(ctx context.Context) {
	start := time.Now()

	tasks, err := w.activeTasks(ctx)
	if err != nil {
		logger.Warn("Worker: ошибка получения задач", zap.Error(err))
		return
	}

	today := schedule.Today()
	dueToday := 0
	overdue := 0

	for _, t := range tasks {
		if t.Status == models.StatusDone || t.Unscheduled() {
			continue
		}

		// строки YYYY-MM-DD сравниваются лексикографически
		switch {
		case t.Deadline == today:
			dueToday++
			logger.Info("Worker: Дедлайн сегодня",
				zap.Int("task_id", t.ID),
				zap.String("name", t.Name),
				zap.String("deadline", t.Deadline))
		case t.Deadline < today:
			overdue++
			logger.Warn("Worker: Задача просрочена",
				zap.Int("task_id", t.ID),
				zap.String("name", t.Name),
				zap.String("deadline", t.Deadline))
		}
	}

	logger.Info("Worker: Завершение проверки сроков",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", len(tasks)),
		zap.Int("due_today", dueToday),
		zap.Int("overdue", overdue),
	)
}

func (w *ReminderWorker) activeTasks(ctx context.Context) ([]*models.Task, error) {
	projects, err := w.source.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение проектов: %w", err)
	}

	all := []*models.Task{}
	for _, p := range projects {
		tasks, err := w.source.ListProjectTasks(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("получение задач проекта %d: %w", p.ID, err)
		}
		all = append(all, tasks...)
	}
	return all, nil
}
