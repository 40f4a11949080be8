package service

import (
	"context"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/go-playground/validator/v10"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/jwt"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/password"
	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/repo"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/infra/config"
)

const dateLayout = "2006-01-02"

type authService struct {
	userRepo repo.UserRepo
	codec    *jwt.Codec
	cfg      *config.Config
	v        *validator.Validate
}

func New(ur repo.UserRepo, codec *jwt.Codec, cfg *config.Config, v *validator.Validate) Service {
	return &authService{userRepo: ur, codec: codec, cfg: cfg, v: v}
}

func (a *authService) Login(ctx context.Context, in dto.LoginDTO) (model.TokenPair, error) {
	if err := a.v.Struct(in); err != nil {
		return model.TokenPair{}, customErrors.ErrInvalidCredentials
	}

	user, err := a.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return model.TokenPair{}, err
	}

	at, err := a.issueAccessToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}
	rt, err := a.issueRefreshToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  at,
		RefreshToken: rt,
		AccessTTL:    a.cfg.AccessTokenTTL,
		RefreshTTL:   a.cfg.RefreshTokenTTL,
		UserID:       user.ID,
	}, nil
}

func (a *authService) Refresh(ctx context.Context, rawToken string) (model.TokenPair, error) {
	user, err := a.ResolveRefresh(ctx, rawToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	at, err := a.issueAccessToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken: at,
		AccessTTL:   a.cfg.AccessTokenTTL,
		UserID:      user.ID,
	}, nil
}

func (a *authService) ResolveAccess(ctx context.Context, rawToken string) (model.User, error) {
	claims, err := a.decodeOfType(rawToken, jwt.AccessTokenType)
	if err != nil {
		return model.User{}, err
	}
	return a.userFromClaims(ctx, claims)
}

func (a *authService) ResolveRefresh(ctx context.Context, rawToken string) (model.User, error) {
	claims, err := a.decodeOfType(rawToken, jwt.RefreshTokenType)
	if err != nil {
		return model.User{}, err
	}
	return a.userFromClaims(ctx, claims)
}

// ResolveAdmin checks the token's embedded role claim, not a fresh
// re-read of the account's role: a role change takes effect once the
// account obtains a newly issued token. The account row itself is still
// fetched fresh, so deactivation wins immediately.
func (a *authService) ResolveAdmin(ctx context.Context, rawToken string) (model.User, error) {
	claims, err := a.decodeOfType(rawToken, jwt.AccessTokenType)
	if err != nil {
		return model.User{}, err
	}
	if role, _ := claims["role"].(string); role != model.RoleAdmin {
		return model.User{}, customErrors.ErrNoPrivileges
	}
	return a.userFromClaims(ctx, claims)
}

func (a *authService) decodeOfType(rawToken, tokenType string) (jwtlib.MapClaims, error) {
	claims, err := a.codec.Decode(rawToken)
	if err != nil {
		return nil, customErrors.ErrInvalidToken
	}
	if got, _ := claims[jwt.TokenTypeField].(string); got != tokenType {
		return nil, customErrors.ErrInvalidToken
	}
	return claims, nil
}

// userFromClaims re-fetches the account on every resolution; claims are
// never treated as the account's live state.
func (a *authService) userFromClaims(ctx context.Context, claims jwtlib.MapClaims) (model.User, error) {
	sub, ok := claims["sub"].(float64)
	if !ok {
		return model.User{}, customErrors.ErrInvalidToken
	}

	user, err := a.userRepo.GetUserByID(ctx, int64(sub))
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// токен ссылается на несуществующий аккаунт — не раскрываем, какие id существуют
		return model.User{}, customErrors.ErrInvalidToken
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "resolve user")
	}

	if !user.Active {
		return model.User{}, customErrors.ErrInactiveUser
	}
	return user, nil
}

func (a *authService) authenticate(ctx context.Context, username, plain string) (model.User, error) {
	user, err := a.userRepo.GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		// та же ошибка, что и при неверном пароле — без перечисления имён
		return model.User{}, customErrors.ErrInvalidCredentials
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "authenticate")
	}

	ok, err := password.Verify(plain, user.Password)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, customErrors.ErrInvalidCredentials
	}

	if !user.Active {
		return model.User{}, customErrors.ErrInactiveUser
	}
	return user, nil
}

func (a *authService) issueAccessToken(u model.User) (string, error) {
	claims := jwtlib.MapClaims{
		"iss":              a.cfg.Issuer,
		"sub":              u.ID,
		"username":         u.Username,
		"jti":              uuid.NewString(),
		"role":             u.Role,
		jwt.TokenTypeField: jwt.AccessTokenType,
	}
	if u.Name != nil {
		claims["name"] = *u.Name
	}
	return a.codec.Encode(claims, 0, a.cfg.AccessTokenTTL)
}

func (a *authService) issueRefreshToken(u model.User) (string, error) {
	claims := jwtlib.MapClaims{
		"sub":              u.ID,
		jwt.TokenTypeField: jwt.RefreshTokenType,
	}
	return a.codec.Encode(claims, 0, a.cfg.RefreshTokenTTL)
}

func (a *authService) Register(ctx context.Context, in dto.RegisterDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	// предварительная проверка ради точного detail; гонку закрывает
	// уникальный индекс в базе
	if _, err := a.userRepo.GetUserByUsername(ctx, in.Username); err == nil {
		return model.User{}, customErrors.NewUsernameAlreadyExists(in.Username)
	} else if !errors.Is(err, customErrors.ErrNotFound) {
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username: in.Username,
		Password: hash,
		Name:     in.Name,
		Active:   true,
		Role:     model.RoleUser,
	}
	if in.BDate != nil {
		bd, err := time.Parse(dateLayout, *in.BDate)
		if err != nil {
			return model.User{}, customErrors.NewInvalidArgument("b_date must be YYYY-MM-DD")
		}
		user.BDate = &bd
	}

	id, err := a.userRepo.CreateUser(ctx, user)
	switch {
	case errors.Is(err, customErrors.ErrAlreadyExists):
		return model.User{}, customErrors.NewUsernameAlreadyExists(in.Username)
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "Register")
	}

	return a.GetUser(ctx, id)
}

func (a *authService) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := a.userRepo.GetUserByID(ctx, id)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return model.User{}, customErrors.NewUserNotFound(id)
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "GetUser")
	}
	return user, nil
}

func (a *authService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := a.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "ListUsers")
	}
	return users, nil
}

func (a *authService) UpdateUser(ctx context.Context, u model.User, in dto.UpdateUserDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	if in.Username != nil && *in.Username != u.Username {
		if _, err := a.userRepo.GetUserByUsername(ctx, *in.Username); err == nil {
			return model.User{}, customErrors.NewUsernameAlreadyExists(*in.Username)
		} else if !errors.Is(err, customErrors.ErrNotFound) {
			return model.User{}, customErrors.WrapInternal(err, "UpdateUser")
		}
		u.Username = *in.Username
	}
	if in.Name != nil {
		u.Name = in.Name
	}
	if in.BDate != nil {
		bd, err := time.Parse(dateLayout, *in.BDate)
		if err != nil {
			return model.User{}, customErrors.NewInvalidArgument("b_date must be YYYY-MM-DD")
		}
		u.BDate = &bd
	}
	if in.Active != nil {
		u.Active = *in.Active
	}

	return a.persistUser(ctx, u)
}

func (a *authService) ChangePassword(ctx context.Context, u model.User, in dto.ChangePasswordDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}
	u.Password = hash

	return a.persistUser(ctx, u)
}

func (a *authService) ChangeRole(ctx context.Context, u model.User, in dto.ChangeRoleDTO) (model.User, error) {
	if err := a.v.Struct(in); err != nil {
		return model.User{}, customErrors.NewInvalidArgument(err.Error())
	}
	if !model.KnownRole(in.Role) {
		return model.User{}, customErrors.NewUnknownRole(in.Role)
	}
	u.Role = in.Role

	return a.persistUser(ctx, u)
}

func (a *authService) persistUser(ctx context.Context, u model.User) (model.User, error) {
	err := a.userRepo.UpdateUser(ctx, u)
	switch {
	case errors.Is(err, customErrors.ErrAlreadyExists):
		return model.User{}, customErrors.NewUsernameAlreadyExists(u.Username)
	case err != nil:
		return model.User{}, customErrors.WrapInternal(err, "persist user")
	}
	return a.GetUser(ctx, u.ID)
}

func (a *authService) DeleteUser(ctx context.Context, u model.User) error {
	err := a.userRepo.DeleteUser(ctx, u.ID)
	switch {
	case errors.Is(err, customErrors.ErrNotFound):
		return customErrors.NewUserNotFound(u.ID)
	case err != nil:
		return customErrors.WrapInternal(err, "DeleteUser")
	}
	return nil
}

func (a *authService) BootstrapAdmin(ctx context.Context) (bool, error) {
	_, err := a.userRepo.GetUserByID(ctx, a.cfg.AdminID)
	switch {
	case err == nil:
		return false, nil // админ уже существует
	case !errors.Is(err, customErrors.ErrNotFound):
		return false, customErrors.WrapInternal(err, "BootstrapAdmin")
	}

	hash, err := password.Hash(a.cfg.AdminPassword)
	if err != nil {
		return false, err
	}

	name := a.cfg.AdminUsername
	admin := model.User{
		ID:       a.cfg.AdminID,
		Username: a.cfg.AdminUsername,
		Password: hash,
		Name:     &name,
		Active:   true,
		Role:     model.RoleAdmin,
	}
	if _, err := a.userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, customErrors.ErrAlreadyExists) {
			return false, nil
		}
		return false, customErrors.WrapInternal(err, "BootstrapAdmin")
	}
	return true, nil
}
