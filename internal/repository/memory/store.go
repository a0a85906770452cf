package memory

import (
	"context"
	"sync"
	"time"

	"juggler/internal/logger"
	"juggler/internal/models"
	repo "juggler/internal/repository"
)

// Store - единственный владелец всех коллекций. Порядок вставки
// сохраняется, наружу отдаются только копии записей. Счётчики id
// монотонные и принадлежат хранилищу, id не переиспользуются.
type Store struct {
	mtx sync.RWMutex

	users    []*models.User
	projects []*models.Project
	members  []*models.ProjectMember
	tasks    []*models.Task
	comments []*models.TaskComment
	history  []*models.TaskHistory

	nextUserID    int
	nextProjectID int
	nextTaskID    int
	nextCommentID int
	nextHistoryID int

	currentUserID int
}

func NewStore() *Store {
	return &Store{
		nextUserID:    1,
		nextProjectID: 1,
		nextTaskID:    1,
		nextCommentID: 1,
		nextHistoryID: 1,
	}
}

func (s *Store) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Хранилище доступно")
	return nil
}

// ---------- задачи ----------

func (s *Store) CreateTask(ctx context.Context, t *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	t.ID = s.nextTaskID
	s.nextTaskID++

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	stored := *t
	s.tasks = append(s.tasks, &stored)
	return nil
}

func (s *Store) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	t := s.findTask(id)
	if t == nil {
		return nil, repo.ErrNotFound
	}
	c := *t
	return &c, nil
}

// UpdateTask перезаписывает поля задачи целиком и ставит updated_at
func (s *Store) UpdateTask(ctx context.Context, t *models.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored := s.findTask(t.ID)
	if stored == nil {
		return repo.ErrNotFound
	}

	t.UpdatedAt = time.Now()
	*stored = *t
	return nil
}

// SoftDeleteTaskCascade - мягкое удаление задачи вместе с подзадачами.
// Уровень вложенности ровно один, поэтому один проход по коллекции,
// без рекурсии. Всё под одной блокировкой.
func (s *Store) SoftDeleteTaskCascade(ctx context.Context, id int) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.findTask(id) == nil {
		return 0, repo.ErrNotFound
	}

	now := time.Now()
	archived := 0
	for _, t := range s.tasks {
		if t.ID == id || (t.ParentTaskID != nil && *t.ParentTaskID == id) {
			if !t.IsDeleted {
				t.IsDeleted = true
				t.UpdatedAt = now
				archived++
			}
		}
	}
	return archived, nil
}

// ListProjectTasks - неудалённые задачи проекта в порядке вставки
func (s *Store) ListProjectTasks(ctx context.Context, projectID int) ([]*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID != projectID || t.IsDeleted {
			continue
		}
		c := *t
		res = append(res, &c)
	}
	return res, nil
}

// TaskCount - размер коллекции задач, нужен для position при создании
func (s *Store) TaskCount(ctx context.Context) (int, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.tasks), nil
}

func (s *Store) findTask(id int) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ---------- проекты и участники ----------

// CreateProject создаёт проект и сразу строку участника OWNER
// для создателя - инвариант держится внутри одной блокировки
func (s *Store) CreateProject(ctx context.Context, p *models.Project) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	p.ID = s.nextProjectID
	s.nextProjectID++
	p.CreatedAt = time.Now()

	stored := *p
	s.projects = append(s.projects, &stored)
	s.members = append(s.members, &models.ProjectMember{
		ProjectID: p.ID,
		UserID:    p.OwnerID,
		Role:      models.RoleOwner,
	})
	return nil
}

func (s *Store) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *Store) UpdateProject(ctx context.Context, p *models.Project) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, stored := range s.projects {
		if stored.ID == p.ID {
			*stored = *p
			return nil
		}
	}
	return repo.ErrNotFound
}

// мягкое удаление проекта (архив), задачи не трогаем
func (s *Store) ArchiveProject(ctx context.Context, id int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, p := range s.projects {
		if p.ID == id {
			p.IsDeleted = true
			return nil
		}
	}
	return repo.ErrNotFound
}

func (s *Store) ListProjects(ctx context.Context) ([]*models.Project, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.Project{}
	for _, p := range s.projects {
		if p.IsDeleted {
			continue
		}
		c := *p
		res = append(res, &c)
	}
	return res, nil
}

// ToggleMember - идемпотентная пара: есть строка - убираем,
// нет - добавляем MEMBER. Возвращает true, если участник добавлен.
func (s *Store) ToggleMember(ctx context.Context, projectID, userID int) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for i, m := range s.members {
		if m.ProjectID == projectID && m.UserID == userID {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return false, nil
		}
	}

	s.members = append(s.members, &models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      models.RoleMember,
	})
	return true, nil
}

func (s *Store) ListProjectMembers(ctx context.Context, projectID int) ([]*models.ProjectMember, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.ProjectMember{}
	for _, m := range s.members {
		if m.ProjectID != projectID {
			continue
		}
		c := *m
		res = append(res, &c)
	}
	return res, nil
}

// ---------- комментарии ----------

func (s *Store) AddComment(ctx context.Context, c *models.TaskComment) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	c.ID = s.nextCommentID
	s.nextCommentID++
	c.CreatedAt = time.Now()

	stored := *c
	s.comments = append(s.comments, &stored)
	return nil
}

func (s *Store) ListTaskComments(ctx context.Context, taskID int) ([]*models.TaskComment, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.TaskComment{}
	for _, c := range s.comments {
		if c.TaskID != taskID {
			continue
		}
		cp := *c
		res = append(res, &cp)
	}
	return res, nil
}

// ---------- история ----------

func (s *Store) AppendHistory(ctx context.Context, h *models.TaskHistory) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	h.ID = s.nextHistoryID
	s.nextHistoryID++
	h.CreatedAt = time.Now()

	stored := *h
	s.history = append(s.history, &stored)
	return nil
}

func (s *Store) ListTaskHistory(ctx context.Context, taskID int) ([]*models.TaskHistory, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.TaskHistory{}
	for _, h := range s.history {
		if h.TaskID != taskID {
			continue
		}
		c := *h
		res = append(res, &c)
	}
	return res, nil
}

// ---------- пользователи ----------

func (s *Store) ListUsers(ctx context.Context) ([]*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*models.User{}
	for _, u := range s.users {
		c := *u
		res = append(res, &c)
	}
	return res, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, stored := range s.users {
		if stored.ID == u.ID {
			*stored = *u
			return nil
		}
	}
	return repo.ErrNotFound
}

// CurrentUser - выделенный "текущий" пользователь сессии
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	for _, u := range s.users {
		if u.ID == s.currentUserID {
			c := *u
			return &c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *Store) SetCurrentUser(ctx context.Context, id int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			s.currentUserID = id
			return nil
		}
	}
	return repo.ErrNotFound
}
