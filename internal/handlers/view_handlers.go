package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"juggler/internal/logger"
	"juggler/internal/models"
	"juggler/internal/schedule"
	"juggler/internal/service"
	"juggler/internal/views"
)

// ViewHandler - проекции задач проекта: доска, приоритеты, список,
// календарь, таймлайн, инбокс
type ViewHandler struct {
	TaskService TaskService
}

func NewViewHandler(taskService TaskService) ViewHandler {
	return ViewHandler{
		TaskService: taskService,
	}
}

// GetTasks - отфильтрованный плоский список задач проекта
func (s *ViewHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := s.TaskService.TasksForView(r.Context(), projectID, filterFromQuery(r, ""))
	if err != nil {
		s.serviceError(w, r, "list_tasks", err)
		return
	}

	responseWithJSON(w, http.StatusOK, tasks)
}

func (s *ViewHandler) GetInbox(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := s.TaskService.Inbox(r.Context(), projectID)
	if err != nil {
		s.serviceError(w, r, "inbox", err)
		return
	}

	responseWithJSON(w, http.StatusOK, tasks)
}

func (s *ViewHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := s.TaskService.TasksForView(r.Context(), projectID, filterFromQuery(r, models.ViewBoard))
	if err != nil {
		s.serviceError(w, r, "board", err)
		return
	}

	responseWithJSON(w, http.StatusOK, views.Board(tasks))
}

func (s *ViewHandler) GetPriority(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := s.TaskService.TasksForView(r.Context(), projectID, filterFromQuery(r, models.ViewPriority))
	if err != nil {
		s.serviceError(w, r, "priority", err)
		return
	}

	responseWithJSON(w, http.StatusOK, views.ByPriority(tasks))
}

// GetList - плоский список с подзадачами под родителями. Прогресс
// "2/3" считается по всем задачам проекта, не по отфильтрованным.
func (s *ViewHandler) GetList(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	visible, err := s.TaskService.TasksForView(r.Context(), projectID, filterFromQuery(r, models.ViewList))
	if err != nil {
		s.serviceError(w, r, "list", err)
		return
	}
	all, err := s.TaskService.ListProjectTasks(r.Context(), projectID)
	if err != nil {
		s.serviceError(w, r, "list", err)
		return
	}

	responseWithJSON(w, http.StatusOK, views.List(visible, all))
}

// GetCalendar - сетка месяца. Параметры year и month, по умолчанию
// текущий месяц. С параметром date отдаётся панель одного дня.
func (s *ViewHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := s.TaskService.TasksForView(r.Context(), projectID, filterFromQuery(r, models.ViewCalendar))
	if err != nil {
		s.serviceError(w, r, "calendar", err)
		return
	}

	if date := r.URL.Query().Get("date"); date != "" {
		if _, err := schedule.ParseDate(date); err != nil {
			responseWithError(w, http.StatusBadRequest, "неверное значение параметра date")
			return
		}
		responseWithJSON(w, http.StatusOK, views.DayTasks(tasks, date))
		return
	}

	year, month, ok := yearMonthQuery(w, r)
	if !ok {
		return
	}

	responseWithJSON(w, http.StatusOK, views.Calendar(tasks, year, month))
}

// GetTimeline - таймлайн в масштабе month, week или day
func (s *ViewHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	projectID, ok := intParam(w, r, "projectID")
	if !ok {
		return
	}

	tasks, err := s.TaskService.TasksForView(r.Context(), projectID, filterFromQuery(r, models.ViewTimeline))
	if err != nil {
		s.serviceError(w, r, "timeline", err)
		return
	}

	scale := models.ScaleMonth
	if raw := r.URL.Query().Get("scale"); raw != "" {
		scale = models.TimelineScale(raw)
		if !scale.Valid() {
			logger.Warn("HTTP: Неверное значение параметра",
				zap.String("param", "scale"),
				zap.String("value", raw),
				zap.String("client_ip", r.RemoteAddr))

			responseWithError(w, http.StatusBadRequest, "неверное значение параметра scale")
			return
		}
	}

	anchor := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := schedule.ParseDate(raw)
		if err != nil {
			responseWithError(w, http.StatusBadRequest, "неверное значение параметра date")
			return
		}
		anchor = parsed
	}

	responseWithJSON(w, http.StatusOK, views.Timeline(tasks, scale, anchor))
}

func (s *ViewHandler) serviceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	if handleBusinessError(w, err) {
		return
	}
	logger.Error("HTTP: ошибка в Service", err,
		zap.String("operation", operation),
		zap.String("client_ip", r.RemoteAddr))

	responseWithError(w, http.StatusInternalServerError, err.Error())
}

// filterFromQuery - фильтры вида из query-параметров: view (если
// маршрут не задаёт его сам), priority, search, show_subtasks
func filterFromQuery(r *http.Request, view models.ViewMode) service.TaskFilter {
	q := r.URL.Query()
	showSubtasks, _ := strconv.ParseBool(q.Get("show_subtasks"))

	if view == "" {
		if requested := models.ViewMode(q.Get("view")); requested.Valid() {
			view = requested
		}
	}

	return service.TaskFilter{
		View:         view,
		Priority:     models.Priority(q.Get("priority")),
		Search:       q.Get("search"),
		ShowSubtasks: showSubtasks,
	}
}

func yearMonthQuery(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			responseWithError(w, http.StatusBadRequest, "неверное значение параметра year")
			return 0, 0, false
		}
		year = v
	}
	if raw := q.Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			responseWithError(w, http.StatusBadRequest, "неверное значение параметра month")
			return 0, 0, false
		}
		month = time.Month(v)
	}
	return year, month, true
}
