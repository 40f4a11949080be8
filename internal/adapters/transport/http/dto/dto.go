package dto

// Login arrives form-encoded, like an OAuth2 password grant.
type LoginDTO struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=1,max=32"`
	Password string  `json:"password" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,max=32"`
	BDate    *string `json:"b_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateUserDTO struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=32"`
	Name     *string `json:"name" validate:"omitempty,max=32"`
	BDate    *string `json:"b_date" validate:"omitempty,datetime=2006-01-02"`
	Active   *bool   `json:"active"`
}

type ChangePasswordDTO struct {
	Password string `json:"password" validate:"required"`
}

type ChangeRoleDTO struct {
	Role string `json:"role" validate:"required"`
}

type CreateTaskDTO struct {
	Name           string  `json:"name" validate:"required,max=70"`
	Description    *string `json:"description" validate:"omitempty,max=360"`
	StartAt        *string `json:"start_at" validate:"omitempty"`
	EndAt          *string `json:"end_at" validate:"omitempty"`
	ScheduledHours int     `json:"scheduled_hours" validate:"gte=0"`
	UserID         int64   `json:"user_id"`
}

type UpdateTaskDTO struct {
	Name           *string `json:"name" validate:"omitempty,max=70"`
	Description    *string `json:"description" validate:"omitempty,max=360"`
	StartAt        *string `json:"start_at" validate:"omitempty"`
	EndAt          *string `json:"end_at" validate:"omitempty"`
	ScheduledHours *int    `json:"scheduled_hours" validate:"omitempty,gte=0"`
	Status         *string `json:"status"`
}

type ChangeTaskUserDTO struct {
	UserID int64 `json:"user_id" validate:"required"`
}
