package schedule

import (
	"fmt"
	"time"
)

// Все даты в системе - строки YYYY-MM-DD, попадание в ячейку
// проверяется точным сравнением строк, не диапазонами.
const DateLayout = "2006-01-02"

// минимальная ширина бара в гантте, чтобы однодневные задачи
// оставались кликабельными
const MinBarWidthPct = 2.0

// ширина сетки месяца: всегда 6 недель по 7 дней,
// чтобы раскладка не прыгала от месяца к месяцу
const MonthGridCells = 42

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("неверная дата %q: %w", value, err)
	}
	return t, nil
}

func Today() string {
	return FormatDate(time.Now())
}

func DaysInMonth(year int, month time.Month) int {
	// нулевой день следующего месяца - последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday - день недели первого числа, 0 = воскресенье
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthCell - ячейка сетки месяца. Day == 0 у паддинга по краям.
type MonthCell struct {
	Day  int    `json:"day"`
	Date string `json:"date,omitempty"`
}

// MonthCells - сетка месяца: пустые ячейки до первого числа,
// дни 1..N, затем паддинг до 42 ячеек.
func MonthCells(year int, month time.Month) []MonthCell {
	days := DaysInMonth(year, month)
	offset := FirstWeekday(year, month)

	cells := make([]MonthCell, 0, MonthGridCells)
	for i := 0; i < offset; i++ {
		cells = append(cells, MonthCell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, MonthCell{
			Day:  d,
			Date: FormatDate(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)),
		})
	}
	for len(cells) < MonthGridCells {
		cells = append(cells, MonthCell{})
	}
	return cells
}

// WeekDates - 7 подряд идущих дат недели вокруг опорной,
// начало с воскресенья
func WeekDates(anchor time.Time) []string {
	start := anchor.AddDate(0, 0, -int(anchor.Weekday()))

	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = FormatDate(start.AddDate(0, 0, i))
	}
	return dates
}

// GanttSpan - горизонтальный бар задачи в месячном гантте,
// проценты от ширины месяца
type GanttSpan struct {
	LeftPct  float64 `json:"left_pct"`
	WidthPct float64 `json:"width_pct"`
}

// BarSpan считает бар для интервала startDate..deadline в указанном
// месяце. Старт пустой - берём дедлайн (однодневный бар). Бар не
// строится, если дедлайн раньше начала месяца или даты не парсятся.
// Интервал включает оба конца: duration = end - start + 1 день.
func BarSpan(startDate, deadline string, year int, month time.Month) (GanttSpan, bool) {
	if deadline == "" {
		return GanttSpan{}, false
	}
	if startDate == "" {
		startDate = deadline
	}

	start, err := ParseDate(startDate)
	if err != nil {
		return GanttSpan{}, false
	}
	end, err := ParseDate(deadline)
	if err != nil {
		return GanttSpan{}, false
	}

	days := DaysInMonth(year, month)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	if end.Before(monthStart) {
		return GanttSpan{}, false
	}

	startDay := start.Day()
	duration := daysBetween(start, end) + 1

	// задача началась раньше видимого месяца - прижимаем к первому
	// числу и укорачиваем на отрезанные дни
	if start.Before(monthStart) {
		duration -= daysBetween(start, monthStart)
		startDay = 1
	}

	widthPct := float64(duration) / float64(days) * 100
	if widthPct < MinBarWidthPct {
		widthPct = MinBarWidthPct
	}

	return GanttSpan{
		LeftPct:  float64(startDay-1) / float64(days) * 100,
		WidthPct: widthPct,
	}, true
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
