package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// UserRepository persists users.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ domain.UserRepository = (*UserRepository)(nil)

// NewUserRepository constructs a UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password, age, weight, height, fitness_goals, medical_conditions, activity_level, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Age, &u.Weight, &u.Height,
		&u.FitnessGoals, &u.MedicalConditions, &u.ActivityLevel, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts the user. The unique index on email surfaces duplicates as
// domain.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const query = `INSERT INTO users (name, email, password, age, weight, height, fitness_goals, medical_conditions, activity_level)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Age, user.Weight, user.Height,
		user.FitnessGoals, user.MedicalConditions, user.ActivityLevel,
	).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return domain.User{}, domain.ErrDuplicateEmail
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByID returns the user or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

// GetByEmail returns the user or nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

// Delete removes the user; workout progress and nutrition logs cascade via
// their foreign keys.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
