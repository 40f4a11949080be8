package service_test

import (
	"context"
	"sort"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	tasksvc "github.com/Miraines/MoonyAndStarry/task-service/internal/app/task/service"
	authErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	authmodel "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/model"
)

/* ──────────────────────────────── stubs ──────────────────────────────── */

type taskRepoStub struct {
	tasks  map[int64]model.Task
	nextID int64
}

func newTaskRepoStub() *taskRepoStub {
	return &taskRepoStub{tasks: make(map[int64]model.Task), nextID: 1}
}

func (s *taskRepoStub) CreateTask(_ context.Context, t model.Task) (int64, error) {
	t.ID = s.nextID
	s.nextID++
	s.tasks[t.ID] = t
	return t.ID, nil
}

func (s *taskRepoStub) GetTaskByID(_ context.Context, id int64) (model.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, authErrors.ErrNotFound
	}
	return t, nil
}

func (s *taskRepoStub) ListTasksByUser(_ context.Context, userID int64) ([]model.Task, error) {
	var out []model.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *taskRepoStub) ListAllTasks(_ context.Context) ([]model.Task, error) {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *taskRepoStub) UpdateTask(_ context.Context, t model.Task) error {
	if _, ok := s.tasks[t.ID]; !ok {
		return authErrors.ErrNotFound
	}
	s.tasks[t.ID] = t
	return nil
}

func (s *taskRepoStub) DeleteTask(_ context.Context, id int64) error {
	if _, ok := s.tasks[id]; !ok {
		return authErrors.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

type userLookupStub struct{ users map[int64]authmodel.User }

func (u *userLookupStub) CreateUser(_ context.Context, m authmodel.User) (int64, error) {
	u.users[m.ID] = m
	return m.ID, nil
}
func (u *userLookupStub) GetUserByID(_ context.Context, id int64) (authmodel.User, error) {
	v, ok := u.users[id]
	if !ok {
		return authmodel.User{}, authErrors.ErrNotFound
	}
	return v, nil
}
func (u *userLookupStub) GetUserByUsername(_ context.Context, _ string) (authmodel.User, error) {
	return authmodel.User{}, authErrors.ErrNotFound
}
func (u *userLookupStub) ListUsers(_ context.Context) ([]authmodel.User, error) { return nil, nil }
func (u *userLookupStub) UpdateUser(_ context.Context, _ authmodel.User) error  { return nil }
func (u *userLookupStub) DeleteUser(_ context.Context, _ int64) error           { return nil }

/* ───────────────────────────── helpers ───────────────────────────── */

var (
	alice = authmodel.User{ID: 1, Username: "alice", Role: authmodel.RoleUser, Active: true}
	bob   = authmodel.User{ID: 2, Username: "bob", Role: authmodel.RoleUser, Active: true}
	admin = authmodel.User{ID: -1, Username: "TODOadmin", Role: authmodel.RoleAdmin, Active: true}
)

func newSvc() (tasksvc.Service, *taskRepoStub) {
	tr := newTaskRepoStub()
	ur := &userLookupStub{users: map[int64]authmodel.User{
		alice.ID: alice,
		bob.ID:   bob,
		admin.ID: admin,
	}}
	return tasksvc.New(tr, ur, validator.New()), tr
}

func createTask(t *testing.T, svc tasksvc.Service, actor authmodel.User, name string) model.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), actor, dto.CreateTaskDTO{Name: name})
	require.NoError(t, err)
	return task
}

/* ───────────────────────────── tests ───────────────────────────── */

func TestTaskService_CreateDefaults(t *testing.T) {
	svc, _ := newSvc()

	task := createTask(t, svc, alice, "write report")
	require.Equal(t, model.StatusPlanned, task.Status)
	require.Equal(t, alice.ID, task.UserID)
	require.Equal(t, 0, task.ScheduledHours)
}

func TestTaskService_CreateForOtherUser(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	// обычный пользователь не может завести задачу на чужой id
	_, err := svc.Create(ctx, alice, dto.CreateTaskDTO{Name: "x", UserID: bob.ID})
	require.Error(t, err)
	require.True(t, authErrors.IsNoPrivileges(err))

	task, err := svc.Create(ctx, admin, dto.CreateTaskDTO{Name: "x", UserID: bob.ID})
	require.NoError(t, err)
	require.Equal(t, bob.ID, task.UserID)
}

func TestTaskService_CreateUnknownOwner(t *testing.T) {
	svc, _ := newSvc()

	_, err := svc.Create(context.Background(), admin, dto.CreateTaskDTO{Name: "x", UserID: 99})
	require.Error(t, err)
	require.True(t, authErrors.IsNotFound(err))
	require.Equal(t, "User with id=[99] not found", err.Error())
}

func TestTaskService_CreateInvalid(t *testing.T) {
	svc, _ := newSvc()

	_, err := svc.Create(context.Background(), alice, dto.CreateTaskDTO{})
	require.Error(t, err)
	require.True(t, authErrors.IsInvalidArgument(err))
}

func TestTaskService_CreateBadTimestamp(t *testing.T) {
	svc, _ := newSvc()

	bad := "tomorrow"
	_, err := svc.Create(context.Background(), alice, dto.CreateTaskDTO{Name: "x", StartAt: &bad})
	require.Error(t, err)
	require.True(t, authErrors.IsInvalidArgument(err))
}

func TestTaskService_GetOwnership(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	task := createTask(t, svc, alice, "mine")

	got, err := svc.Get(ctx, alice, task.ID)
	require.NoError(t, err)
	require.Equal(t, task.ID, got.ID)

	_, err = svc.Get(ctx, bob, task.ID)
	require.Error(t, err)
	require.True(t, authErrors.IsNoPrivileges(err))

	_, err = svc.Get(ctx, admin, task.ID)
	require.NoError(t, err)
}

func TestTaskService_GetNotFound(t *testing.T) {
	svc, _ := newSvc()

	_, err := svc.Get(context.Background(), alice, 42)
	require.Error(t, err)
	require.True(t, authErrors.IsNotFound(err))
	require.Equal(t, "Task with id=[42] not found", err.Error())
}

func TestTaskService_ListOwn(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()

	createTask(t, svc, alice, "a1")
	createTask(t, svc, alice, "a2")
	createTask(t, svc, bob, "b1")

	own, err := svc.ListOwn(ctx, alice)
	require.NoError(t, err)
	require.Len(t, own, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestTaskService_Update(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	task := createTask(t, svc, alice, "before")

	name := "after"
	status := model.StatusAtWork
	hours := 5
	updated, err := svc.Update(ctx, alice, task.ID, dto.UpdateTaskDTO{
		Name:           &name,
		Status:         &status,
		ScheduledHours: &hours,
	})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Name)
	require.Equal(t, model.StatusAtWork, updated.Status)
	require.Equal(t, 5, updated.ScheduledHours)
}

func TestTaskService_UpdateUnknownStatus(t *testing.T) {
	svc, _ := newSvc()
	task := createTask(t, svc, alice, "x")

	status := "Done"
	_, err := svc.Update(context.Background(), alice, task.ID, dto.UpdateTaskDTO{Status: &status})
	require.Error(t, err)
	require.True(t, authErrors.IsUnknownStatus(err))
	require.Equal(t, "Status 'Done' not exist", err.Error())
}

func TestTaskService_UpdateForeignTask(t *testing.T) {
	svc, _ := newSvc()
	task := createTask(t, svc, alice, "x")

	name := "stolen"
	_, err := svc.Update(context.Background(), bob, task.ID, dto.UpdateTaskDTO{Name: &name})
	require.Error(t, err)
	require.True(t, authErrors.IsNoPrivileges(err))
}

func TestTaskService_ChangeUser(t *testing.T) {
	svc, _ := newSvc()
	ctx := context.Background()
	task := createTask(t, svc, alice, "handover")

	moved, err := svc.ChangeUser(ctx, task.ID, dto.ChangeTaskUserDTO{UserID: bob.ID})
	require.NoError(t, err)
	require.Equal(t, bob.ID, moved.UserID)

	_, err = svc.ChangeUser(ctx, task.ID, dto.ChangeTaskUserDTO{UserID: 99})
	require.Error(t, err)
	require.True(t, authErrors.IsNotFound(err))
}

func TestTaskService_Delete(t *testing.T) {
	svc, tr := newSvc()
	ctx := context.Background()
	task := createTask(t, svc, alice, "gone")

	require.Error(t, svc.Delete(ctx, bob, task.ID))
	require.NoError(t, svc.Delete(ctx, alice, task.ID))
	require.Empty(t, tr.tasks)

	err := svc.Delete(ctx, alice, task.ID)
	require.Error(t, err)
	require.True(t, authErrors.IsNotFound(err))
}
