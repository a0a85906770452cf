package views

import "juggler/internal/models"

// BoardColumn - колонка канбана с задачами одного статуса
type BoardColumn struct {
	Status models.TaskStatus `json:"status"`
	Title  string            `json:"title"`
	Tasks  []*models.Task    `json:"tasks"`
	Count  int               `json:"count"`
}

type BoardView struct {
	Columns []BoardColumn `json:"columns"`
}

var boardTitles = map[models.TaskStatus]string{
	models.StatusTodo:       "To Do",
	models.StatusInProgress: "In Progress",
	models.StatusDone:       "Done",
}

// Board - три колонки в фиксированном порядке, внутри колонки
// порядок вставки. Пустая колонка остаётся в выдаче.
func Board(tasks []*models.Task) BoardView {
	order := []models.TaskStatus{
		models.StatusTodo,
		models.StatusInProgress,
		models.StatusDone,
	}

	columns := make([]BoardColumn, 0, len(order))
	for _, status := range order {
		col := BoardColumn{
			Status: status,
			Title:  boardTitles[status],
			Tasks:  []*models.Task{},
		}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		col.Count = len(col.Tasks)
		columns = append(columns, col)
	}
	return BoardView{Columns: columns}
}
