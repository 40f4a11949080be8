package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInactiveUser       = errors.New("inactive user")
	ErrNoPrivileges       = errors.New("no privileges")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownStatus      = errors.New("unknown status")
)

// detailed carries a user-facing detail string on top of one of the
// sentinel kinds. Error() returns only the detail so the transport layer
// can put it in a response body verbatim; errors.Is still matches the kind.
type detailed struct {
	kind   error
	detail string
}

func (d *detailed) Error() string { return d.detail }
func (d *detailed) Unwrap() error { return d.kind }

// WithDetail attaches a rendered detail message to an error kind.
func WithDetail(kind error, format string, args ...any) error {
	return &detailed{kind: kind, detail: fmt.Sprintf(format, args...)}
}

func NewUserNotFound(id int64) error {
	return WithDetail(ErrNotFound, "User with id=[%d] not found", id)
}

func NewTaskNotFound(id int64) error {
	return WithDetail(ErrNotFound, "Task with id=[%d] not found", id)
}

func NewUsernameAlreadyExists(username string) error {
	return WithDetail(ErrAlreadyExists, "Username '%s' already exist", username)
}

func NewUnknownRole(role string) error {
	return WithDetail(ErrUnknownRole, "Role '%s' not exist", role)
}

func NewUnknownStatus(status string) error {
	return WithDetail(ErrUnknownStatus, "Status '%s' not exist", status)
}

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsInactiveUser(err error) bool {
	return errors.Is(err, ErrInactiveUser)
}

func IsNoPrivileges(err error) bool {
	return errors.Is(err, ErrNoPrivileges)
}

func IsUnknownRole(err error) bool {
	return errors.Is(err, ErrUnknownRole)
}

func IsUnknownStatus(err error) bool {
	return errors.Is(err, ErrUnknownStatus)
}
