package service

import (
	"context"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
)

// Service is the authentication and account-lifecycle core. Session
// resolution always re-reads the account row, so deactivation takes
// effect on the very next request regardless of the token's validity
// window.
type Service interface {
	// Login verifies credentials and mints an access/refresh pair.
	Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error)
	// Refresh turns a valid refresh token into a new access token.
	Refresh(ctx context.Context, rawToken string) (model.TokenPair, error)

	ResolveAccess(ctx context.Context, rawToken string) (model.User, error)
	ResolveRefresh(ctx context.Context, rawToken string) (model.User, error)
	ResolveAdmin(ctx context.Context, rawToken string) (model.User, error)

	Register(ctx context.Context, in dto.RegisterDTO) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u model.User, in dto.UpdateUserDTO) (model.User, error)
	ChangePassword(ctx context.Context, u model.User, in dto.ChangePasswordDTO) (model.User, error)
	ChangeRole(ctx context.Context, u model.User, in dto.ChangeRoleDTO) (model.User, error)
	DeleteUser(ctx context.Context, u model.User) error

	// BootstrapAdmin guarantees exactly one privileged account at the
	// reserved id. Idempotent; reports whether it created the account.
	BootstrapAdmin(ctx context.Context) (bool, error)
}
