package repo

import (
	"context"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/model"
)

type TaskRepo interface {
	CreateTask(ctx context.Context, t model.Task) (int64, error)

	GetTaskByID(ctx context.Context, id int64) (model.Task, error)

	ListTasksByUser(ctx context.Context, userID int64) ([]model.Task, error)

	ListAllTasks(ctx context.Context) ([]model.Task, error)

	UpdateTask(ctx context.Context, t model.Task) error

	DeleteTask(ctx context.Context, id int64) error
}
