package views

import (
	"juggler/internal/models"
	"juggler/internal/service"
)

// ListRow - строка плоского списка. У корневой задачи с подзадачами
// заполнен счётчик прогресса вида "2/3".
type ListRow struct {
	Task         *models.Task `json:"task"`
	IsSubtask    bool         `json:"is_subtask"`
	SubtasksDone int          `json:"subtasks_done"`
	SubtasksAll  int          `json:"subtasks_all"`
}

type ListView struct {
	Rows []ListRow `json:"rows"`
}

// List - иерархия разворачивается в плоский список: родитель,
// сразу за ним его подзадачи. Прогресс считается по всем подзадачам
// проекта, даже если сами строки подзадач скрыты фильтром - поэтому
// полный список задач передаётся отдельно.
func List(visible, all []*models.Task) ListView {
	rows := make([]ListRow, 0, len(visible))
	for _, t := range service.Flatten(visible) {
		row := ListRow{
			Task:      t,
			IsSubtask: t.IsSubtask(),
		}
		if !t.IsSubtask() {
			row.SubtasksDone, row.SubtasksAll = service.SubtaskProgress(all, t.ID)
		}
		rows = append(rows, row)
	}
	return ListView{Rows: rows}
}
