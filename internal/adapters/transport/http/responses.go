package http

import (
	"time"

	authmodel "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
	taskmodel "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/model"
)

const dateLayout = "2006-01-02"

type userResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Name      *string    `json:"name"`
	BDate     *string    `json:"b_date"`
	Active    bool       `json:"active"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func toUserResponse(u authmodel.User) userResponse {
	out := userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Active:    u.Active,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.BDate != nil {
		bd := u.BDate.Format(dateLayout)
		out.BDate = &bd
	}
	return out
}

func toUserResponses(users []authmodel.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type taskResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	StartAt        *time.Time `json:"start_at"`
	EndAt          *time.Time `json:"end_at"`
	ScheduledHours int        `json:"scheduled_hours"`
	Status         string     `json:"status"`
	UserID         int64      `json:"user_id"`
}

func toTaskResponse(t taskmodel.Task) taskResponse {
	return taskResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		StartAt:        t.StartAt,
		EndAt:          t.EndAt,
		ScheduledHours: t.ScheduledHours,
		Status:         t.Status,
		UserID:         t.UserID,
	}
}

func toTaskResponses(tasks []taskmodel.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
