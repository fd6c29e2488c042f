package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("your account has been deactivated, please contact the administrator")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTimesheetNotFound  = errors.New("timesheet not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrValidation         = errors.New("validation failed")
)
