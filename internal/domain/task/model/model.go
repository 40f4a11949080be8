package model

import "time"

const (
	StatusPlanned   = "Planned"
	StatusAtWork    = "At work"
	StatusCompleted = "Completed"
	StatusDelayed   = "Delayed"
)

// KnownStatus reports whether status is one of the recognized task statuses.
func KnownStatus(status string) bool {
	switch status {
	case StatusPlanned, StatusAtWork, StatusCompleted, StatusDelayed:
		return true
	}
	return false
}

type Task struct {
	ID             int64      `gorm:"primaryKey"`
	Name           string     `gorm:"size:70;not null"`
	Description    *string    `gorm:"size:360"`
	StartAt        *time.Time
	EndAt          *time.Time
	ScheduledHours int        `gorm:"not null;default:0"`
	Status         string     `gorm:"not null;default:'Planned'"`
	UserID         int64      `gorm:"not null;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      *time.Time `gorm:"autoUpdateTime:false"`
}
