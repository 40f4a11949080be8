package repo

import (
	"context"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u model.User) (int64, error)

	GetUserByID(ctx context.Context, id int64) (model.User, error)

	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	ListUsers(ctx context.Context) ([]model.User, error)

	UpdateUser(ctx context.Context, u model.User) error

	DeleteUser(ctx context.Context, id int64) error
}
