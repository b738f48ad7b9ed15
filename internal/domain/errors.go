package domain

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a registration collides with an existing email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when a login password does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a session token is missing, expired or revoked.
	ErrUnauthorized = errors.New("unauthorized")

	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrPlanNotFound         = errors.New("workout plan not found")
	ErrPlanExerciseNotFound = errors.New("plan exercise not found")
	ErrProgressNotFound     = errors.New("workout progress not found")
	ErrNutritionLogNotFound = errors.New("nutrition log not found")
)
