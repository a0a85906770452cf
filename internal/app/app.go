package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"juggler/internal/config"
	"juggler/internal/handlers"
	"juggler/internal/logger"
	"juggler/internal/middleware"
	"juggler/internal/repository/memory"
	"juggler/internal/service"
	"juggler/internal/worker"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	store     *memory.Store
	worker    *worker.ReminderWorker
	shutdowns []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	a.store = memory.NewSeededStore()

	taskService := service.NewTaskService(a.store)
	projectService := service.NewProjectService(a.store)
	userService := service.NewUserService(a.store)

	taskHandler := handlers.NewTaskHandler(taskService)
	viewHandler := handlers.NewViewHandler(taskService)
	projectHandler := handlers.NewProjectHandler(projectService)
	userHandler := handlers.NewUserHandler(userService)

	a.router = a.buildRouter(&taskHandler, &viewHandler, &projectHandler, &userHandler)

	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: a.router,
	}

	if a.config.Worker.Enabled {
		a.worker = worker.NewReminderWorker(a.store, a.config.Worker.Interval.Std())
	}

	return nil
}

func (a *App) buildRouter(
	taskHandler *handlers.TaskHandler,
	viewHandler *handlers.ViewHandler,
	projectHandler *handlers.ProjectHandler,
	userHandler *handlers.UserHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Timeout(a.config.Server.RequestTimeout.Std()))
	r.Use(middleware.RateLimit(a.config.Server.RateLimitRPM))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.Cors.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	r.Route("/api", func(r chi.Router) {
		// GET/PUT /api/session
		r.Get("/session", userHandler.GetSession)
		r.Put("/session", userHandler.SwitchSession)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.GetUsers)           // GET /api/users
			r.Put("/{id}", userHandler.UpdateUserByID) // PUT /api/users/{id}
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.GetProjects)  // GET /api/projects
			r.Post("/", projectHandler.PostProject) // POST /api/projects

			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", projectHandler.GetProjectByID)      // GET /api/projects/{projectID}
				r.Put("/", projectHandler.UpdateProjectByID)   // PUT /api/projects/{projectID}
				r.Delete("/", projectHandler.ArchiveProject)   // DELETE /api/projects/{projectID}
				r.Post("/archive", projectHandler.ArchiveProject)

				// GET /api/projects/{projectID}/members
				// POST /api/projects/{projectID}/members/{userID}/toggle
				r.Get("/members", projectHandler.GetMembers)
				r.Post("/members/{userID}/toggle", projectHandler.ToggleMember)

				r.Get("/tasks", viewHandler.GetTasks) // GET /api/projects/{projectID}/tasks
				r.Post("/tasks", taskHandler.PostTask)
				r.Get("/inbox", viewHandler.GetInbox) // GET /api/projects/{projectID}/inbox

				r.Route("/views", func(r chi.Router) {
					r.Get("/board", viewHandler.GetBoard)
					r.Get("/priority", viewHandler.GetPriority)
					r.Get("/list", viewHandler.GetList)
					r.Get("/calendar", viewHandler.GetCalendar)
					r.Get("/timeline", viewHandler.GetTimeline)
				})
			})
		})

		r.Post("/tasks", taskHandler.PostTask) // POST /api/tasks (project_id в теле)

		r.Route("/tasks/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /api/tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /api/tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /api/tasks/{id}

			r.Post("/complete", taskHandler.ToggleComplete)
			r.Post("/reschedule", taskHandler.Reschedule)

			r.Get("/history", taskHandler.GetHistory)
			r.Get("/comments", taskHandler.GetComments)
			r.Post("/comments", taskHandler.PostComment)
		})
	})

	r.Get("/health", taskHandler.HealthCheck)

	return r
}

// Run блокируется до SIGINT/SIGTERM, затем гасит сервер и воркер
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.worker != nil {
		go a.worker.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server started: " + a.config.GetServerAddr())
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка сервера: %w", err)
	case sig := <-stop:
		logger.Info("Получен сигнал остановки: " + sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout.Std())
	defer shutdownCancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("остановка сервера: %w", err)
	}

	cancel()
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	return nil
}
