package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juggler/internal/models"
	"juggler/internal/repository"
	"juggler/internal/repository/memory"
)

func newTask(projectID int, name string) *models.Task {
	return &models.Task{
		ProjectID: projectID,
		Name:      name,
		Status:    models.StatusTodo,
		Priority:  models.PriorityMedium,
	}
}

// TestStore_CreateTask_SequentialIDs тестирует монотонность счётчика id
func TestStore_CreateTask_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first := newTask(1, "first")
	second := newTask(1, "second")

	require.NoError(t, store.CreateTask(ctx, first))
	require.NoError(t, store.CreateTask(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, first.UpdatedAt.IsZero())
}

// TestStore_IDsNotReusedAfterDelete тестирует, что id удалённых
// задач не выдаются повторно
func TestStore_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first := newTask(1, "first")
	require.NoError(t, store.CreateTask(ctx, first))

	_, err := store.SoftDeleteTaskCascade(ctx, first.ID)
	require.NoError(t, err)

	second := newTask(1, "second")
	require.NoError(t, store.CreateTask(ctx, second))

	assert.Equal(t, 2, second.ID)
}

// TestStore_SoftDeleteTaskCascade тестирует каскадное удаление
// родителя вместе с подзадачами
func TestStore_SoftDeleteTaskCascade(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()

	// у задачи 2 есть подзадача 5
	removed, err := store.SoftDeleteTaskCascade(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = store.GetTaskByID(ctx, 2)
	require.NoError(t, err) // запись остаётся, она лишь помечена

	tasks, err := store.ListProjectTasks(ctx, 1)
	require.NoError(t, err)
	for _, task := range tasks {
		assert.NotEqual(t, 2, task.ID)
		assert.NotEqual(t, 5, task.ID)
	}
}

func TestStore_SoftDeleteTaskCascade_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.SoftDeleteTaskCascade(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_SoftDeleteTaskCascade_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()

	removed, err := store.SoftDeleteTaskCascade(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	// повтор ничего не помечает заново
	removed, err = store.SoftDeleteTaskCascade(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

// TestStore_ListProjectTasks_InsertionOrder тестирует порядок вставки
func TestStore_ListProjectTasks_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	names := []string{"alpha", "beta", "gamma"}
	for _, name := range names {
		require.NoError(t, store.CreateTask(ctx, newTask(7, name)))
	}
	// чужой проект не должен попасть в выдачу
	require.NoError(t, store.CreateTask(ctx, newTask(8, "other")))

	tasks, err := store.ListProjectTasks(ctx, 7)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i, task := range tasks {
		assert.Equal(t, names[i], task.Name)
	}
}

// TestStore_ReturnsCopies тестирует, что снаружи нельзя изменить
// запись в обход хранилища
func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	task := newTask(1, "original")
	require.NoError(t, store.CreateTask(ctx, task))

	got, err := store.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := store.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Name)
}

func TestStore_UpdateTask(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	task := newTask(1, "before")
	require.NoError(t, store.CreateTask(ctx, task))

	task.Name = "after"
	task.Status = models.StatusDone
	require.NoError(t, store.UpdateTask(ctx, task))

	got, err := store.GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, models.StatusDone, got.Status)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestStore_UpdateTask_NotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	ghost := newTask(1, "ghost")
	ghost.ID = 99
	assert.ErrorIs(t, store.UpdateTask(ctx, ghost), repository.ErrNotFound)
}

// TestStore_CreateProject_OwnerMembership тестирует, что владелец
// сразу становится участником с ролью OWNER
func TestStore_CreateProject_OwnerMembership(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	project := &models.Project{OwnerID: 3, Name: "New Project"}
	require.NoError(t, store.CreateProject(ctx, project))
	assert.Equal(t, 1, project.ID)

	members, err := store.ListProjectMembers(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, 3, members[0].UserID)
	assert.Equal(t, models.RoleOwner, members[0].Role)
}

func TestStore_ToggleMember(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	project := &models.Project{OwnerID: 1, Name: "P"}
	require.NoError(t, store.CreateProject(ctx, project))

	added, err := store.ToggleMember(ctx, project.ID, 2)
	require.NoError(t, err)
	assert.True(t, added)

	members, err := store.ListProjectMembers(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	added, err = store.ToggleMember(ctx, project.ID, 2)
	require.NoError(t, err)
	assert.False(t, added)

	members, err = store.ListProjectMembers(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestStore_ArchiveProject(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()

	require.NoError(t, store.ArchiveProject(ctx, 2))

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	for _, p := range projects {
		assert.NotEqual(t, 2, p.ID)
	}

	// задачи архивного проекта остаются на месте
	tasks, err := store.ListProjectTasks(ctx, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, tasks)
}

func TestStore_CurrentUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()

	user, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	require.NoError(t, store.SetCurrentUser(ctx, 2))
	user, err = store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	assert.ErrorIs(t, store.SetCurrentUser(ctx, 99), repository.ErrNotFound)
}

// TestNewSeededStore тестирует состав демо-данных
func TestNewSeededStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore()

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	tasks, err := store.ListProjectTasks(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, tasks, 5)

	// счётчики продолжают с хвоста демо-данных
	task := newTask(1, "next")
	require.NoError(t, store.CreateTask(ctx, task))
	assert.Equal(t, 7, task.ID)
}
