package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"juggler/internal/handlers"
	"juggler/internal/handlers/dto"
	"juggler/internal/models"
	"juggler/internal/service"
	"juggler/internal/views"
)

// MockTaskService - мок сервиса задач
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskService) CreateTask(ctx context.Context, in service.CreateTaskInput) (*models.Task, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) GetTask(ctx context.Context, id int) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id int, opts ...service.TaskOption) (*models.Task, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) ToggleComplete(ctx context.Context, id int) (*models.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) Reschedule(ctx context.Context, id int, target service.DropTarget) (*models.Task, error) {
	args := m.Called(ctx, id, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) ListProjectTasks(ctx context.Context, projectID int) ([]*models.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) TasksForView(ctx context.Context, projectID int, f service.TaskFilter) ([]*models.Task, error) {
	args := m.Called(ctx, projectID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) Inbox(ctx context.Context, projectID int) ([]*models.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskService) GetHistory(ctx context.Context, taskID int) ([]*models.TaskHistory, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TaskHistory), args.Error(1)
}

func (m *MockTaskService) AddComment(ctx context.Context, taskID int, text string) (*models.TaskComment, error) {
	args := m.Called(ctx, taskID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TaskComment), args.Error(1)
}

func (m *MockTaskService) GetComments(ctx context.Context, taskID int) ([]*models.TaskComment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TaskComment), args.Error(1)
}

var _ handlers.TaskService = (*MockTaskService)(nil)

// withURLParams - симуляция параметров пути chi
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestTaskHandler_HealthCheck(t *testing.T) {
	mockService := new(MockTaskService)
	mockService.On("HealthCheck", mock.Anything).Return(nil)

	handler := handlers.NewTaskHandler(mockService)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.HealthCheck(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestTaskHandler_PostTask тестирует создание задачи
func TestTaskHandler_PostTask(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		contentType    string
		setupMock      func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:        "success - create task",
			requestBody: `{"name": "New feature", "priority": "HIGH"}`,
			contentType: "application/json",
			setupMock: func(m *MockTaskService) {
				m.On("CreateTask", mock.Anything, mock.MatchedBy(func(in service.CreateTaskInput) bool {
					return in.ProjectID == 1 && in.Name == "New feature" &&
						in.Priority == models.PriorityHigh
				})).Return(&models.Task{
					ID:        7,
					ProjectID: 1,
					Name:      "New feature",
					Status:    models.StatusTodo,
					Priority:  models.PriorityHigh,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "error - invalid content type",
			requestBody:    `{}`,
			contentType:    "text/plain",
			setupMock:      func(m *MockTaskService) {},
			expectedStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:           "error - invalid JSON",
			requestBody:    `{invalid json}`,
			contentType:    "application/json",
			setupMock:      func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "error - validation from service",
			requestBody: `{"priority": "URGENT"}`,
			contentType: "application/json",
			setupMock: func(m *MockTaskService) {
				m.On("CreateTask", mock.Anything, mock.Anything).
					Return(nil, service.NewValidationError("priority", "неизвестный приоритет URGENT"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "error - service error",
			requestBody: `{"name": "x"}`,
			contentType: "application/json",
			setupMock: func(m *MockTaskService) {
				m.On("CreateTask", mock.Anything, mock.Anything).
					Return(nil, errors.New("service error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTaskService)
			tt.setupMock(mockService)

			handler := handlers.NewTaskHandler(mockService)

			req := httptest.NewRequest("POST", "/api/projects/1/tasks", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", tt.contentType)
			req = withURLParams(req, map[string]string{"projectID": "1"})
			w := httptest.NewRecorder()

			handler.PostTask(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response dto.TaskResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, "New feature", response.Name)
				assert.Equal(t, 7, response.ID)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// TestTaskHandler_GetTaskByID тестирует получение задачи по id
func TestTaskHandler_GetTaskByID(t *testing.T) {
	tests := []struct {
		name           string
		taskID         string
		setupMock      func(*MockTaskService)
		expectedStatus int
	}{
		{
			name:   "success - get task",
			taskID: "3",
			setupMock: func(m *MockTaskService) {
				m.On("GetTask", mock.Anything, 3).Return(&models.Task{
					ID:       3,
					Name:     "API Routes",
					Status:   models.StatusTodo,
					Priority: models.PriorityHigh,
					Deadline: "2024-02-15",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - bad id",
			taskID:         "abc",
			setupMock:      func(m *MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "error - not found",
			taskID: "99",
			setupMock: func(m *MockTaskService) {
				m.On("GetTask", mock.Anything, 99).
					Return(nil, service.NewNotFound("Задача", 99, nil))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTaskService)
			tt.setupMock(mockService)

			handler := handlers.NewTaskHandler(mockService)

			req := httptest.NewRequest("GET", "/api/tasks/"+tt.taskID, nil)
			req = withURLParams(req, map[string]string{"id": tt.taskID})
			w := httptest.NewRecorder()

			handler.GetTaskByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response dto.TaskResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, "API Routes", response.Name)
				// дедлайн в 2024 давно прошёл
				assert.True(t, response.IsOverdue)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// TestTaskHandler_UpdateTaskByID тестирует частичное обновление
func TestTaskHandler_UpdateTaskByID(t *testing.T) {
	mockService := new(MockTaskService)
	mockService.On("UpdateTask", mock.Anything, 2, mock.MatchedBy(func(opts []service.TaskOption) bool {
		// в патче ровно два поля
		return len(opts) == 2
	})).Return(&models.Task{
		ID:       2,
		Name:     "Frontend Setup",
		Status:   models.StatusDone,
		Priority: models.PriorityMedium,
	}, nil)

	handler := handlers.NewTaskHandler(mockService)

	body := `{"status": "DONE", "deadline": ""}`
	req := httptest.NewRequest("PUT", "/api/tasks/2", bytes.NewBufferString(body))
	req = withURLParams(req, map[string]string{"id": "2"})
	w := httptest.NewRecorder()

	handler.UpdateTaskByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTaskHandler_ToggleComplete(t *testing.T) {
	mockService := new(MockTaskService)
	mockService.On("ToggleComplete", mock.Anything, 1).Return(&models.Task{
		ID:     1,
		Name:   "Design Database Schema",
		Status: models.StatusTodo,
	}, nil)

	handler := handlers.NewTaskHandler(mockService)

	req := httptest.NewRequest("POST", "/api/tasks/1/complete", nil)
	req = withURLParams(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()

	handler.ToggleComplete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.TaskResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "TODO", response.Status)
}

// TestTaskHandler_Reschedule тестирует перенос срока
func TestTaskHandler_Reschedule(t *testing.T) {
	mockService := new(MockTaskService)
	mockService.On("Reschedule", mock.Anything, 3, service.DropTarget{
		Inbox:      true,
		ClearStart: true,
	}).Return(&models.Task{ID: 3, Name: "API Routes"}, nil)

	handler := handlers.NewTaskHandler(mockService)

	body := `{"inbox": true, "clear_start": true}`
	req := httptest.NewRequest("POST", "/api/tasks/3/reschedule", bytes.NewBufferString(body))
	req = withURLParams(req, map[string]string{"id": "3"})
	w := httptest.NewRecorder()

	handler.Reschedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTaskHandler_DeleteTaskByID(t *testing.T) {
	mockService := new(MockTaskService)
	mockService.On("DeleteTask", mock.Anything, 2).Return(nil)

	handler := handlers.NewTaskHandler(mockService)

	req := httptest.NewRequest("DELETE", "/api/tasks/2", nil)
	req = withURLParams(req, map[string]string{"id": "2"})
	w := httptest.NewRecorder()

	handler.DeleteTaskByID(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

// TestViewHandler_GetBoard тестирует проекцию доски
func TestViewHandler_GetBoard(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Name: "todo task", Status: models.StatusTodo, Priority: models.PriorityMedium},
		{ID: 2, Name: "done task", Status: models.StatusDone, Priority: models.PriorityHigh},
	}

	mockService := new(MockTaskService)
	mockService.On("TasksForView", mock.Anything, 1, mock.MatchedBy(func(f service.TaskFilter) bool {
		return f.View == models.ViewBoard
	})).Return(tasks, nil)

	handler := handlers.NewViewHandler(mockService)

	req := httptest.NewRequest("GET", "/api/projects/1/views/board", nil)
	req = withURLParams(req, map[string]string{"projectID": "1"})
	w := httptest.NewRecorder()

	handler.GetBoard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var board views.BoardView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&board))
	require.Len(t, board.Columns, 3)
	assert.Equal(t, 1, board.Columns[0].Count)
	assert.Equal(t, 1, board.Columns[2].Count)
}

// TestViewHandler_GetTimeline тестирует параметры таймлайна
func TestViewHandler_GetTimeline(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Name: "bar task", Status: models.StatusTodo, Priority: models.PriorityMedium,
			StartDate: "2024-02-03", Deadline: "2024-02-10"},
	}

	t.Run("month scale", func(t *testing.T) {
		mockService := new(MockTaskService)
		mockService.On("TasksForView", mock.Anything, 1, mock.Anything).Return(tasks, nil)

		handler := handlers.NewViewHandler(mockService)

		req := httptest.NewRequest("GET", "/api/projects/1/views/timeline?scale=MONTH&date=2024-02-01", nil)
		req = withURLParams(req, map[string]string{"projectID": "1"})
		w := httptest.NewRecorder()

		handler.GetTimeline(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var view views.TimelineView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Equal(t, models.ScaleMonth, view.Scale)
		require.Len(t, view.Rows, 1)
		assert.Greater(t, view.Rows[0].Bar.WidthPct, 0.0)
	})

	t.Run("bad scale", func(t *testing.T) {
		mockService := new(MockTaskService)
		mockService.On("TasksForView", mock.Anything, 1, mock.Anything).Return(tasks, nil)

		handler := handlers.NewViewHandler(mockService)

		req := httptest.NewRequest("GET", "/api/projects/1/views/timeline?scale=YEAR", nil)
		req = withURLParams(req, map[string]string{"projectID": "1"})
		w := httptest.NewRecorder()

		handler.GetTimeline(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestViewHandler_GetCalendar тестирует сетку месяца и панель дня
func TestViewHandler_GetCalendar(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Name: "due feb 5", Status: models.StatusTodo, Priority: models.PriorityMedium, Deadline: "2024-02-05"},
	}

	t.Run("month grid", func(t *testing.T) {
		mockService := new(MockTaskService)
		mockService.On("TasksForView", mock.Anything, 1, mock.Anything).Return(tasks, nil)

		handler := handlers.NewViewHandler(mockService)

		req := httptest.NewRequest("GET", "/api/projects/1/views/calendar?year=2024&month=2", nil)
		req = withURLParams(req, map[string]string{"projectID": "1"})
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var view views.CalendarView
		require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
		assert.Len(t, view.Cells, 42)
	})

	t.Run("day detail", func(t *testing.T) {
		mockService := new(MockTaskService)
		mockService.On("TasksForView", mock.Anything, 1, mock.Anything).Return(tasks, nil)

		handler := handlers.NewViewHandler(mockService)

		req := httptest.NewRequest("GET", "/api/projects/1/views/calendar?date=2024-02-05", nil)
		req = withURLParams(req, map[string]string{"projectID": "1"})
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var day []*models.Task
		require.NoError(t, json.NewDecoder(w.Body).Decode(&day))
		require.Len(t, day, 1)
		assert.Equal(t, "due feb 5", day[0].Name)
	})

	t.Run("bad month", func(t *testing.T) {
		mockService := new(MockTaskService)
		mockService.On("TasksForView", mock.Anything, 1, mock.Anything).Return(tasks, nil)

		handler := handlers.NewViewHandler(mockService)

		req := httptest.NewRequest("GET", "/api/projects/1/views/calendar?month=13", nil)
		req = withURLParams(req, map[string]string{"projectID": "1"})
		w := httptest.NewRecorder()

		handler.GetCalendar(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestViewHandler_GetInbox(t *testing.T) {
	mockService := new(MockTaskService)
	mockService.On("Inbox", mock.Anything, 1).Return([]*models.Task{
		{ID: 6, Name: "Brainstorming Session"},
	}, nil)

	handler := handlers.NewViewHandler(mockService)

	req := httptest.NewRequest("GET", "/api/projects/1/inbox", nil)
	req = withURLParams(req, map[string]string{"projectID": "1"})
	w := httptest.NewRecorder()

	handler.GetInbox(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var inbox []*models.Task
	require.NoError(t, json.NewDecoder(w.Body).Decode(&inbox))
	require.Len(t, inbox, 1)
}
