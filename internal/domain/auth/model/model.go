package model

import (
	"time"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// KnownRole reports whether role is one of the recognized role values.
func KnownRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User is the account row. UpdatedAt stays nil until the first mutation,
// after that every mutation bumps it; gorm's automatic timestamps are off
// for it so the repos control the semantics.
type User struct {
	ID        int64      `gorm:"primaryKey"`
	Username  string     `gorm:"size:32;uniqueIndex;not null"`
	Password  string     `gorm:"not null"`
	Name      *string    `gorm:"size:32"`
	BDate     *time.Time `gorm:"column:b_date;type:date"`
	Active    bool       `gorm:"not null;default:true"`
	Role      string     `gorm:"not null;default:'User'"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

// TokenPair is what login/refresh hand back to the transport layer.
// RefreshToken is empty on refresh (only a new access token is minted).
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	UserID       int64
}
