// Package domain defines the entities and persistence contracts for the
// fitness tracker.
package domain

import (
	"context"
	"time"
)

// User is an account holder. The password column stores whatever the
// configured credential scheme produced (plaintext by default, bcrypt hash
// when enabled) and is never serialized to clients.
type User struct {
	ID                int64
	Name              string
	Email             string
	Password          string
	Age               int
	Weight            int
	Height            int
	FitnessGoals      string
	MedicalConditions string
	ActivityLevel     string
	CreatedAt         time.Time
}

// UserRepository captures persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Delete removes the user; dependent progress and nutrition rows cascade.
	Delete(ctx context.Context, id int64) error
}
