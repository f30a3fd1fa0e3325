package entity

import "time"

// UserSession is an opaque bearer token issued at login. A request
// presenting a live token is attributed to the owning user; anything
// else is treated as anonymous.
type UserSession struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
