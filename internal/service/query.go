package service

import (
	"context"
	"strings"

	"juggler/internal/models"
)

// TaskFilter - пользовательские фильтры поверх списка задач проекта
type TaskFilter struct {
	View         models.ViewMode
	Priority     models.Priority
	Search       string
	ShowSubtasks bool
}

// TasksForView - задачи проекта после всех фильтров, в порядке
// вставки. Подзадачи в календаре и таймлайне видны всегда: у них
// есть собственные сроки, и прятать их с сетки дат нельзя.
func (s *TaskService) TasksForView(ctx context.Context, projectID int, f TaskFilter) ([]*models.Task, error) {
	tasks, err := s.repo.ListProjectTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}

	showSubtasks := f.ShowSubtasks ||
		f.View == models.ViewCalendar || f.View == models.ViewTimeline

	query := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsSubtask() && !showSubtasks {
			continue
		}
		if f.Priority != "" && f.Priority != models.PriorityAll && t.Priority != f.Priority {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// поиск сверяет и имя, и приоритет: запрос "high" находит
// все срочные задачи
func matchesQuery(t *models.Task, query string) bool {
	return strings.Contains(strings.ToLower(t.Name), query) ||
		strings.Contains(strings.ToLower(string(t.Priority)), query)
}

// Inbox - задачи без дедлайна. Фильтры видов на инбокс не действуют,
// подзадачи показываются всегда.
func (s *TaskService) Inbox(ctx context.Context, projectID int) ([]*models.Task, error) {
	tasks, err := s.repo.ListProjectTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Task, 0)
	for _, t := range tasks {
		if t.Unscheduled() {
			out = append(out, t)
		}
	}
	return out, nil
}
