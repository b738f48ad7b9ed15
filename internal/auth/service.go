// Package auth bridges HTTP-level credentials to a resolved user: it issues
// sessions on login, validates them on protected requests, and revokes them
// on logout.
package auth

import (
	"context"

	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/session"
)

// Service implements register/login/authenticate/logout on top of the user
// repository and the session cache.
type Service struct {
	users    domain.UserRepository
	sessions session.Store
	verifier Verifier
}

// NewService constructs a Service.
func NewService(users domain.UserRepository, sessions session.Store, verifier Verifier) *Service {
	return &Service{users: users, sessions: sessions, verifier: verifier}
}

// RegisterInput carries the registration payload. Profile fields are
// optional; Name, Email and Password are required by the handler.
type RegisterInput struct {
	Name              string
	Email             string
	Password          string
	Age               int
	Weight            int
	Height            int
	FitnessGoals      string
	MedicalConditions string
	ActivityLevel     string
}

// Register persists a new user. Returns domain.ErrDuplicateEmail when the
// email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	stored, err := s.verifier.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	return s.users.Create(ctx, domain.User{
		Name:              input.Name,
		Email:             input.Email,
		Password:          stored,
		Age:               input.Age,
		Weight:            input.Weight,
		Height:            input.Height,
		FitnessGoals:      input.FitnessGoals,
		MedicalConditions: input.MedicalConditions,
		ActivityLevel:     input.ActivityLevel,
	})
}

// Login verifies the credentials and issues a session. Returns
// domain.ErrUserNotFound for an unknown email and
// domain.ErrInvalidCredentials for a password that does not verify.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, session.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, session.Session{}, err
	}
	if user == nil {
		return domain.User{}, session.Session{}, domain.ErrUserNotFound
	}
	if !s.verifier.Verify(user.Password, password) {
		return domain.User{}, session.Session{}, domain.ErrInvalidCredentials
	}

	sess, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return domain.User{}, session.Session{}, err
	}
	return *user, sess, nil
}

// Authenticate resolves a session token to its user. Returns
// domain.ErrUnauthorized when the token is empty, unresolvable, expired, or
// the user row no longer exists.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	sess, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// Logout revokes the session. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
