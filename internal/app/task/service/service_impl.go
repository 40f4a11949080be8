package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	authmodel "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
	authrepo "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/repo"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/model"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/repo"
)

type taskService struct {
	taskRepo repo.TaskRepo
	userRepo authrepo.UserRepo
	v        *validator.Validate
}

func New(tr repo.TaskRepo, ur authrepo.UserRepo, v *validator.Validate) Service {
	return &taskService{taskRepo: tr, userRepo: ur, v: v}
}

func (s *taskService) Create(ctx context.Context, actor authmodel.User, in dto.CreateTaskDTO) (model.Task, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Task{}, customErrors.NewInvalidArgument(err.Error())
	}

	ownerID := in.UserID
	if ownerID == 0 {
		ownerID = actor.ID
	}
	if ownerID != actor.ID && actor.Role != authmodel.RoleAdmin {
		return model.Task{}, customErrors.ErrNoPrivileges
	}
	if _, err := s.userRepo.GetUserByID(ctx, ownerID); err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return model.Task{}, customErrors.NewUserNotFound(ownerID)
		}
		return model.Task{}, customErrors.WrapInternal(err, "Create task")
	}

	task := model.Task{
		Name:           in.Name,
		Description:    in.Description,
		ScheduledHours: in.ScheduledHours,
		Status:         model.StatusPlanned,
		UserID:         ownerID,
	}

	var err error
	if task.StartAt, err = parseTime(in.StartAt); err != nil {
		return model.Task{}, err
	}
	if task.EndAt, err = parseTime(in.EndAt); err != nil {
		return model.Task{}, err
	}

	id, err := s.taskRepo.CreateTask(ctx, task)
	if err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "Create task")
	}
	return s.taskRepo.GetTaskByID(ctx, id)
}

func (s *taskService) Get(ctx context.Context, actor authmodel.User, id int64) (model.Task, error) {
	task, err := s.fetch(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if err := s.ensureOwnership(actor, task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (s *taskService) ListOwn(ctx context.Context, actor authmodel.User) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListTasksByUser(ctx, actor.ID)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "ListOwn")
	}
	return tasks, nil
}

func (s *taskService) ListAll(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListAllTasks(ctx)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "ListAll")
	}
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, actor authmodel.User, id int64, in dto.UpdateTaskDTO) (model.Task, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Task{}, customErrors.NewInvalidArgument(err.Error())
	}

	task, err := s.fetch(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if err := s.ensureOwnership(actor, task); err != nil {
		return model.Task{}, err
	}

	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.ScheduledHours != nil {
		task.ScheduledHours = *in.ScheduledHours
	}
	if in.Status != nil {
		if !model.KnownStatus(*in.Status) {
			return model.Task{}, customErrors.NewUnknownStatus(*in.Status)
		}
		task.Status = *in.Status
	}
	if in.StartAt != nil {
		if task.StartAt, err = parseTime(in.StartAt); err != nil {
			return model.Task{}, err
		}
	}
	if in.EndAt != nil {
		if task.EndAt, err = parseTime(in.EndAt); err != nil {
			return model.Task{}, err
		}
	}

	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "Update task")
	}
	return s.taskRepo.GetTaskByID(ctx, id)
}

func (s *taskService) ChangeUser(ctx context.Context, id int64, in dto.ChangeTaskUserDTO) (model.Task, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Task{}, customErrors.NewInvalidArgument(err.Error())
	}

	task, err := s.fetch(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if _, err := s.userRepo.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, customErrors.ErrNotFound) {
			return model.Task{}, customErrors.NewUserNotFound(in.UserID)
		}
		return model.Task{}, customErrors.WrapInternal(err, "ChangeUser")
	}

	task.UserID = in.UserID
	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "ChangeUser")
	}
	return s.taskRepo.GetTaskByID(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, actor authmodel.User, id int64) error {
	task, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureOwnership(actor, task); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteTask(ctx, id); err != nil && !errors.Is(err, customErrors.ErrNotFound) {
		return customErrors.WrapInternal(err, "Delete task")
	}
	return nil
}

func (s *taskService) fetch(ctx context.Context, id int64) (model.Task, error) {
	task, err := s.taskRepo.GetTaskByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.Task{}, customErrors.NewTaskNotFound(id)
	case err != nil:
		return model.Task{}, customErrors.WrapInternal(err, "fetch task")
	}
	return task, nil
}

// ensureOwnership lets admins touch any task and owners their own.
func (s *taskService) ensureOwnership(actor authmodel.User, task model.Task) error {
	if actor.Role == authmodel.RoleAdmin || task.UserID == actor.ID {
		return nil
	}
	return customErrors.ErrNoPrivileges
}

func parseTime(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, customErrors.NewInvalidArgument("timestamps must be RFC3339")
	}
	return &ts, nil
}
