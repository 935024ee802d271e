// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword indicates the wrong password for the given user.
	ErrWrongPassword = errors.New("wrong password")
)

// UserType classifies users into regular customers and administrators.
type UserType string

// Supported user types.
const (
	UserTypeCustomer UserType = "CUSTOMER"
	UserTypeAdmin    UserType = "ADMIN"
)

// ParseUserType parses s into a UserType.
// Unrecognized values are an error, never a silent default.
func ParseUserType(s string) (UserType, error) {
	switch UserType(s) {
	case UserTypeCustomer, UserTypeAdmin:
		return UserType(s), nil
	}

	return "", fmt.Errorf("unknown user type %q", s)
}

// User holds user data.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	UserType     UserType  `json:"user_type"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	FullName     string   `json:"full_name" validate:"required,min=3"`
	Email        string   `json:"email" validate:"required,email"`
	PasswordHash string   `json:"password_hash" validate:"required"`
	UserType     UserType `json:"user_type"`
}

// UserWithoutPassword is User data excluding password data.
type UserWithoutPassword struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	UserType  UserType  `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}
