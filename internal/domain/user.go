package domain

import (
	"errors"
	"time"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// User is the record managed by the user commands.
type User struct {
	ID        string
	Name      string
	Admin     bool
	Age       int
	CreatedAt time.Time
}

// UserFilter narrows ListUsers results. A zero Limit means no limit.
type UserFilter struct {
	AdminOnly bool
	Limit     int
}
