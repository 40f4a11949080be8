package service

import (
	"context"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	authmodel "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/model"
)

// Service is the task CRUD layer. Every operation receives the already
// resolved actor; ownership rules live here, identity resolution does not.
type Service interface {
	Create(ctx context.Context, actor authmodel.User, in dto.CreateTaskDTO) (model.Task, error)
	Get(ctx context.Context, actor authmodel.User, id int64) (model.Task, error)
	ListOwn(ctx context.Context, actor authmodel.User) ([]model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, actor authmodel.User, id int64, in dto.UpdateTaskDTO) (model.Task, error)
	ChangeUser(ctx context.Context, id int64, in dto.ChangeTaskUserDTO) (model.Task, error)
	Delete(ctx context.Context, actor authmodel.User, id int64) error
}
