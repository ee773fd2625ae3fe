package model

import "errors"

// Error codes
const (
	ErrCodeUserNotFound       = "USR001"
	ErrCodeEmailTaken         = "USR002"
	ErrCodeInvalidCredentials = "USR003"
	ErrCodeUserDisabled       = "USR004"
)

// Errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("user account is disabled")
)
