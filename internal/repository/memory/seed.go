package memory

import (
	"time"

	"juggler/internal/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func seedDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t, err = time.Parse("2006-01-02 15:04:05", value)
		if err != nil {
			panic("неверная дата в сид-данных: " + value)
		}
	}
	return t
}

// NewSeededStore - хранилище с демо-данными. Перезапуск процесса
// возвращает состояние к этому набору.
func NewSeededStore() *Store {
	s := NewStore()

	s.users = []*models.User{
		{ID: 1, Name: "Alex Admin", Username: "alex", Email: "alex@juggler.app", AvatarColor: "bg-blue-500"},
		{ID: 2, Name: "Sarah Dev", Username: "sarah", Email: "sarah@juggler.app", AvatarColor: "bg-emerald-500"},
		{ID: 3, Name: "Mike Manager", Username: "mike", Email: "mike@juggler.app", AvatarColor: "bg-purple-500"},
		{ID: 4, Name: "Emily Design", Username: "emily", Email: "emily@juggler.app", AvatarColor: "bg-pink-500"},
	}

	s.projects = []*models.Project{
		{ID: 1, OwnerID: 1, Name: "Juggler App V1", Description: "Launch the MVP of the new todo app.", Deadline: "2024-03-15", CreatedAt: seedDate("2024-01-01")},
		{ID: 2, OwnerID: 1, Name: "Marketing Q1", Description: "Social media and ad campaigns.", Deadline: "2024-04-01", CreatedAt: seedDate("2024-01-05")},
	}

	s.members = []*models.ProjectMember{
		{ProjectID: 1, UserID: 1, Role: models.RoleOwner},
		{ProjectID: 1, UserID: 2, Role: models.RoleMember},
		{ProjectID: 2, UserID: 1, Role: models.RoleOwner},
	}

	s.tasks = []*models.Task{
		{ID: 1, ProjectID: 1, Name: "Design Database Schema", Description: "Create SQL tables for users, projects, and tasks.", Position: 1, Status: models.StatusDone, Priority: models.PriorityHigh, StartDate: "2024-02-01", Deadline: "2024-02-05", CreatedAt: seedDate("2024-01-10"), UpdatedAt: seedDate("2024-01-11")},
		{ID: 2, ProjectID: 1, Name: "Frontend Setup", Description: "Initialize Next.js and Tailwind.", Position: 2, Status: models.StatusInProgress, Priority: models.PriorityMedium, StartDate: "2024-02-03", Deadline: "2024-02-10", CreatedAt: seedDate("2024-01-12"), UpdatedAt: seedDate("2024-01-13")},
		{ID: 3, ProjectID: 1, Name: "API Routes", Description: "Implement CRUD endpoints.", Position: 3, Status: models.StatusTodo, Priority: models.PriorityHigh, StartDate: "2024-02-08", Deadline: "2024-02-15", CreatedAt: seedDate("2024-01-15"), UpdatedAt: seedDate("2024-01-15")},
		{ID: 4, ProjectID: 2, Name: "Draft Ad Copy", Description: "Write copy for Instagram ads.", Position: 1, Status: models.StatusTodo, Priority: models.PriorityLow, StartDate: "2024-02-05", Deadline: "2024-02-07", CreatedAt: seedDate("2024-01-20"), UpdatedAt: seedDate("2024-01-20")},
		// пример подзадачи
		{ID: 5, ProjectID: 1, ParentTaskID: intPtr(2), Name: "Install Shadcn UI", Description: "Add button and card components", Position: 1, Status: models.StatusDone, Priority: models.PriorityLow, StartDate: "2024-02-03", Deadline: "2024-02-04", CreatedAt: seedDate("2024-01-13"), UpdatedAt: seedDate("2024-01-13")},
		// пример задачи без срока - живёт в инбоксе
		{ID: 6, ProjectID: 1, Name: "Brainstorming Session", Description: "Plan next features", Position: 6, Status: models.StatusTodo, Priority: models.PriorityMedium, StartDate: "", Deadline: "", CreatedAt: seedDate("2024-01-22"), UpdatedAt: seedDate("2024-01-22")},
	}

	s.comments = []*models.TaskComment{
		{ID: 1, TaskID: 2, UserID: 2, Text: "I'll handle the Tailwind config.", CreatedAt: seedDate("2024-01-13 10:00:00")},
	}

	s.history = []*models.TaskHistory{
		{ID: 1, TaskID: 1, ChangedBy: 1, ActionType: models.ActionStatusChange, OldValue: strPtr(string(models.StatusInProgress)), NewValue: strPtr(string(models.StatusDone)), CreatedAt: seedDate("2024-01-11 14:30:00")},
	}

	s.nextUserID = 5
	s.nextProjectID = 3
	s.nextTaskID = 7
	s.nextCommentID = 2
	s.nextHistoryID = 2
	s.currentUserID = 1

	return s
}
