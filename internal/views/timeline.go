package views

import (
	"time"

	"juggler/internal/models"
	"juggler/internal/schedule"
)

// GanttRow - строка месячного гантта: задача и её бар в процентах
// от ширины месяца
type GanttRow struct {
	Task *models.Task       `json:"task"`
	Bar  schedule.GanttSpan `json:"bar"`
}

// WeekDay - колонка недельной шкалы
type WeekDay struct {
	Date  string         `json:"date"`
	Tasks []*models.Task `json:"tasks"`
}

// TimelineView - таймлайн в одном из трёх масштабов. Заполнен
// только срез выбранного масштаба, инбокс присутствует всегда.
type TimelineView struct {
	Scale models.TimelineScale `json:"scale"`

	Year  int        `json:"year,omitempty"`
	Month int        `json:"month,omitempty"`
	Rows  []GanttRow `json:"rows,omitempty"`

	Week []WeekDay `json:"week,omitempty"`

	Date string         `json:"date,omitempty"`
	Day  []*models.Task `json:"day,omitempty"`

	Inbox []*models.Task `json:"inbox"`
}

// Timeline - проекция таймлайна. Задачи без дедлайна не попадают
// на шкалу ни в одном масштабе, они показываются в панели инбокса.
func Timeline(tasks []*models.Task, scale models.TimelineScale, anchor time.Time) TimelineView {
	view := TimelineView{
		Scale: scale,
		Inbox: unscheduled(tasks),
	}

	switch scale {
	case models.ScaleWeek:
		view.Week = weekColumns(tasks, anchor)
	case models.ScaleDay:
		view.Date = schedule.FormatDate(anchor)
		view.Day = DayTasks(tasks, view.Date)
	default:
		view.Scale = models.ScaleMonth
		view.Year = anchor.Year()
		view.Month = int(anchor.Month())
		view.Rows = ganttRows(tasks, anchor.Year(), anchor.Month())
	}
	return view
}

func ganttRows(tasks []*models.Task, year int, month time.Month) []GanttRow {
	rows := []GanttRow{}
	for _, t := range tasks {
		bar, ok := schedule.BarSpan(t.StartDate, t.Deadline, year, month)
		if !ok {
			continue
		}
		rows = append(rows, GanttRow{Task: t, Bar: bar})
	}
	return rows
}

func weekColumns(tasks []*models.Task, anchor time.Time) []WeekDay {
	dates := schedule.WeekDates(anchor)
	week := make([]WeekDay, 0, len(dates))
	for _, date := range dates {
		week = append(week, WeekDay{
			Date:  date,
			Tasks: DayTasks(tasks, date),
		})
	}
	return week
}

func unscheduled(tasks []*models.Task) []*models.Task {
	out := []*models.Task{}
	for _, t := range tasks {
		if t.Unscheduled() {
			out = append(out, t)
		}
	}
	return out
}
