package views

import (
	"time"

	"juggler/internal/models"
	"juggler/internal/schedule"
)

// CalendarCell - ячейка месячной сетки. Day == 0 у паддинга,
// задачи подбираются точным совпадением дедлайна с датой ячейки.
type CalendarCell struct {
	Day   int            `json:"day"`
	Date  string         `json:"date,omitempty"`
	Tasks []*models.Task `json:"tasks"`
}

type CalendarView struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}

// Calendar - сетка месяца на 42 ячейки, неделя начинается
// с воскресенья
func Calendar(tasks []*models.Task, year int, month time.Month) CalendarView {
	byDate := tasksByDeadline(tasks)

	grid := schedule.MonthCells(year, month)
	cells := make([]CalendarCell, 0, len(grid))
	for _, c := range grid {
		cell := CalendarCell{Day: c.Day, Date: c.Date, Tasks: []*models.Task{}}
		if c.Date != "" {
			if dayTasks, ok := byDate[c.Date]; ok {
				cell.Tasks = dayTasks
			}
		}
		cells = append(cells, cell)
	}

	return CalendarView{
		Year:  year,
		Month: int(month),
		Cells: cells,
	}
}

// DayTasks - задачи одного дня для панели детализации
func DayTasks(tasks []*models.Task, date string) []*models.Task {
	out := []*models.Task{}
	for _, t := range tasks {
		if !t.Unscheduled() && t.Deadline == date {
			out = append(out, t)
		}
	}
	return out
}

func tasksByDeadline(tasks []*models.Task) map[string][]*models.Task {
	byDate := make(map[string][]*models.Task)
	for _, t := range tasks {
		if t.Unscheduled() {
			continue
		}
		byDate[t.Deadline] = append(byDate[t.Deadline], t)
	}
	return byDate
}
