package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juggler/internal/models"
	"juggler/internal/views"
)

func intPtr(v int) *int { return &v }

func fixtureTasks() []*models.Task {
	return []*models.Task{
		{ID: 1, Name: "Design Database Schema", Status: models.StatusDone, Priority: models.PriorityHigh, StartDate: "2024-02-01", Deadline: "2024-02-05"},
		{ID: 2, Name: "Frontend Setup", Status: models.StatusInProgress, Priority: models.PriorityMedium, StartDate: "2024-02-03", Deadline: "2024-02-10"},
		{ID: 3, Name: "API Routes", Status: models.StatusTodo, Priority: models.PriorityHigh, StartDate: "2024-02-08", Deadline: "2024-02-15"},
		{ID: 5, ParentTaskID: intPtr(2), Name: "Install Shadcn UI", Status: models.StatusDone, Priority: models.PriorityLow, StartDate: "2024-02-03", Deadline: "2024-02-04"},
		{ID: 6, Name: "Brainstorming Session", Status: models.StatusTodo, Priority: models.PriorityMedium},
	}
}

// TestBoard тестирует раскладку канбана по статусам
func TestBoard(t *testing.T) {
	board := views.Board(fixtureTasks())

	require.Len(t, board.Columns, 3)
	assert.Equal(t, models.StatusTodo, board.Columns[0].Status)
	assert.Equal(t, models.StatusInProgress, board.Columns[1].Status)
	assert.Equal(t, models.StatusDone, board.Columns[2].Status)

	assert.Equal(t, 2, board.Columns[0].Count)
	assert.Equal(t, 1, board.Columns[1].Count)
	assert.Equal(t, 2, board.Columns[2].Count)

	// внутри колонки сохраняется порядок вставки
	assert.Equal(t, "API Routes", board.Columns[0].Tasks[0].Name)
	assert.Equal(t, "Brainstorming Session", board.Columns[0].Tasks[1].Name)
}

func TestBoard_EmptyColumnsStay(t *testing.T) {
	board := views.Board(nil)

	require.Len(t, board.Columns, 3)
	for _, col := range board.Columns {
		assert.Zero(t, col.Count)
		assert.NotNil(t, col.Tasks)
	}
}

// TestByPriority тестирует колонки от срочного к несрочному
func TestByPriority(t *testing.T) {
	view := views.ByPriority(fixtureTasks())

	require.Len(t, view.Columns, 3)
	assert.Equal(t, models.PriorityHigh, view.Columns[0].Priority)
	assert.Equal(t, models.PriorityMedium, view.Columns[1].Priority)
	assert.Equal(t, models.PriorityLow, view.Columns[2].Priority)

	assert.Equal(t, 2, view.Columns[0].Count)
	assert.Equal(t, 2, view.Columns[1].Count)
	assert.Equal(t, 1, view.Columns[2].Count)
}

// TestList тестирует плоский список с подзадачами под родителями
// и счётчиком прогресса
func TestList(t *testing.T) {
	all := fixtureTasks()
	view := views.List(all, all)

	require.Len(t, view.Rows, 5)

	// подзадача идёт сразу за родителем
	assert.Equal(t, "Frontend Setup", view.Rows[1].Task.Name)
	assert.Equal(t, "Install Shadcn UI", view.Rows[2].Task.Name)
	assert.True(t, view.Rows[2].IsSubtask)

	assert.Equal(t, 1, view.Rows[1].SubtasksDone)
	assert.Equal(t, 1, view.Rows[1].SubtasksAll)
	assert.Zero(t, view.Rows[0].SubtasksAll)
}

// TestList_ProgressCountsHiddenSubtasks тестирует, что счётчик
// считается по всем задачам, даже когда подзадачи скрыты фильтром
func TestList_ProgressCountsHiddenSubtasks(t *testing.T) {
	all := fixtureTasks()
	visible := []*models.Task{all[1]} // только родитель

	view := views.List(visible, all)

	require.Len(t, view.Rows, 1)
	assert.Equal(t, 1, view.Rows[0].SubtasksDone)
	assert.Equal(t, 1, view.Rows[0].SubtasksAll)
}

// TestCalendar тестирует попадание задач в ячейки по точному
// совпадению дедлайна
func TestCalendar(t *testing.T) {
	view := views.Calendar(fixtureTasks(), 2024, time.February)

	require.Len(t, view.Cells, 42)
	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 2, view.Month)

	// 1 февраля 2024 - четверг, смещение 4 ячейки
	cellFor := func(day int) views.CalendarCell {
		return view.Cells[4+day-1]
	}

	feb5 := cellFor(5)
	require.Len(t, feb5.Tasks, 1)
	assert.Equal(t, "Design Database Schema", feb5.Tasks[0].Name)

	feb4 := cellFor(4)
	require.Len(t, feb4.Tasks, 1)
	assert.Equal(t, "Install Shadcn UI", feb4.Tasks[0].Name)

	// задача без срока не попадает ни в одну ячейку
	for _, cell := range view.Cells {
		for _, task := range cell.Tasks {
			assert.NotEqual(t, "Brainstorming Session", task.Name)
		}
	}
}

func TestDayTasks(t *testing.T) {
	tasks := views.DayTasks(fixtureTasks(), "2024-02-10")
	require.Len(t, tasks, 1)
	assert.Equal(t, "Frontend Setup", tasks[0].Name)

	assert.Empty(t, views.DayTasks(fixtureTasks(), "2024-02-11"))
}

// TestTimeline_Month тестирует месячный гантт и панель инбокса
func TestTimeline_Month(t *testing.T) {
	anchor := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	view := views.Timeline(fixtureTasks(), models.ScaleMonth, anchor)

	assert.Equal(t, models.ScaleMonth, view.Scale)
	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 2, view.Month)

	// все четыре задачи со сроками получают бар, инбокс отдельно
	require.Len(t, view.Rows, 4)
	require.Len(t, view.Inbox, 1)
	assert.Equal(t, "Brainstorming Session", view.Inbox[0].Name)

	for _, row := range view.Rows {
		assert.GreaterOrEqual(t, row.Bar.WidthPct, 2.0)
	}
}

func TestTimeline_Week(t *testing.T) {
	anchor := time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)
	view := views.Timeline(fixtureTasks(), models.ScaleWeek, anchor)

	require.Len(t, view.Week, 7)
	assert.Equal(t, "2024-02-04", view.Week[0].Date)

	// дедлайн 2024-02-05 попадает во вторую колонку
	require.Len(t, view.Week[1].Tasks, 1)
	assert.Equal(t, "Design Database Schema", view.Week[1].Tasks[0].Name)
}

func TestTimeline_Day(t *testing.T) {
	anchor := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	view := views.Timeline(fixtureTasks(), models.ScaleDay, anchor)

	assert.Equal(t, "2024-02-10", view.Date)
	require.Len(t, view.Day, 1)
	assert.Equal(t, "Frontend Setup", view.Day[0].Name)
	require.Len(t, view.Inbox, 1)
}

// TestTimeline_UnknownScaleFallsBackToMonth тестирует дефолтный
// масштаб
func TestTimeline_UnknownScaleFallsBackToMonth(t *testing.T) {
	anchor := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	view := views.Timeline(fixtureTasks(), models.TimelineScale(""), anchor)

	assert.Equal(t, models.ScaleMonth, view.Scale)
	assert.NotEmpty(t, view.Rows)
}
