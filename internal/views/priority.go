package views

import "juggler/internal/models"

type PriorityColumn struct {
	Priority models.Priority `json:"priority"`
	Title    string          `json:"title"`
	Tasks    []*models.Task  `json:"tasks"`
	Count    int             `json:"count"`
}

type PriorityView struct {
	Columns []PriorityColumn `json:"columns"`
}

var priorityTitles = map[models.Priority]string{
	models.PriorityHigh:   "High Priority",
	models.PriorityMedium: "Medium Priority",
	models.PriorityLow:    "Low Priority",
}

// ByPriority - колонки от срочного к несрочному
func ByPriority(tasks []*models.Task) PriorityView {
	order := []models.Priority{
		models.PriorityHigh,
		models.PriorityMedium,
		models.PriorityLow,
	}

	columns := make([]PriorityColumn, 0, len(order))
	for _, priority := range order {
		col := PriorityColumn{
			Priority: priority,
			Title:    priorityTitles[priority],
			Tasks:    []*models.Task{},
		}
		for _, t := range tasks {
			if t.Priority == priority {
				col.Tasks = append(col.Tasks, t)
			}
		}
		col.Count = len(col.Tasks)
		columns = append(columns, col)
	}
	return PriorityView{Columns: columns}
}
