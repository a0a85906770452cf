package service

import "juggler/internal/models"

// Flatten - иерархия в плоский список: корневая задача, сразу за ней
// её подзадачи в порядке вставки. Подзадача с родителем вне списка
// (отфильтрован или битая ссылка) поднимается в корень, а не
// пропадает.
func Flatten(tasks []*models.Task) []*models.Task {
	byParent := make(map[int][]*models.Task)
	ids := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = true
	}

	roots := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsSubtask() && ids[*t.ParentTaskID] {
			byParent[*t.ParentTaskID] = append(byParent[*t.ParentTaskID], t)
			continue
		}
		roots = append(roots, t)
	}

	out := make([]*models.Task, 0, len(tasks))
	for _, root := range roots {
		out = append(out, root)
		out = append(out, byParent[root.ID]...)
	}
	return out
}

// Subtasks - прямые подзадачи родителя в порядке вставки
func Subtasks(tasks []*models.Task, parentID int) []*models.Task {
	out := make([]*models.Task, 0)
	for _, t := range tasks {
		if t.IsSubtask() && *t.ParentTaskID == parentID {
			out = append(out, t)
		}
	}
	return out
}

// SubtaskProgress - сколько подзадач закрыто, для счётчика "2/3"
// в списке
func SubtaskProgress(tasks []*models.Task, parentID int) (done, total int) {
	for _, t := range Subtasks(tasks, parentID) {
		total++
		if t.Status == models.StatusDone {
			done++
		}
	}
	return done, total
}
