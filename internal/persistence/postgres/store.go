// Package postgres implements the domain repositories backed by PostgreSQL.
//
// Each call acquires a pooled connection scoped to the request context and
// releases it on return; every mutation is a single statement, so there is
// no partial state to roll back.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// Repositories bundles one repository per aggregate over a shared pool.
type Repositories struct {
	Users         *UserRepository
	Exercises     *ExerciseRepository
	Plans         *WorkoutPlanRepository
	PlanExercises *PlanExerciseRepository
	Progress      *ProgressRepository
	Nutrition     *NutritionRepository
}

// NewRepositories constructs every repository over the pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(pool),
		Exercises:     NewExerciseRepository(pool),
		Plans:         NewWorkoutPlanRepository(pool),
		PlanExercises: NewPlanExerciseRepository(pool),
		Progress:      NewProgressRepository(pool),
		Nutrition:     NewNutritionRepository(pool),
	}
}

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// appendPage adds LIMIT/OFFSET clauses for a page window. Limit <= 0 means
// no limit.
func appendPage(query string, args []interface{}, page domain.Page) (string, []interface{}) {
	if page.Limit > 0 {
		args = append(args, page.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if page.Skip > 0 {
		args = append(args, page.Skip)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}
