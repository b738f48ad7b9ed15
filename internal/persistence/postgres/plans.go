package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// WorkoutPlanRepository persists workout plans.
type WorkoutPlanRepository struct {
	pool *pgxpool.Pool
}

var _ domain.WorkoutPlanRepository = (*WorkoutPlanRepository)(nil)

// NewWorkoutPlanRepository constructs a WorkoutPlanRepository.
func NewWorkoutPlanRepository(pool *pgxpool.Pool) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{pool: pool}
}

func scanPlan(row pgx.Row) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	err := row.Scan(&p.ID, &p.PlanName, &p.DifficultyLevel, &p.Duration)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a plan.
func (r *WorkoutPlanRepository) Create(ctx context.Context, plan domain.WorkoutPlan) (domain.WorkoutPlan, error) {
	const query = `INSERT INTO workout_plans (plan_name, difficulty_level, duration)
        VALUES ($1,$2,$3) RETURNING id`

	err := r.pool.QueryRow(ctx, query, plan.PlanName, plan.DifficultyLevel, plan.Duration).Scan(&plan.ID)
	if err != nil {
		return domain.WorkoutPlan{}, err
	}
	return plan, nil
}

// Get returns the plan or nil when absent.
func (r *WorkoutPlanRepository) Get(ctx context.Context, id int64) (*domain.WorkoutPlan, error) {
	return scanPlan(r.pool.QueryRow(ctx,
		`SELECT id, plan_name, difficulty_level, duration FROM workout_plans WHERE id=$1`, id))
}

// List applies an optional difficulty filter and offset/limit paging.
func (r *WorkoutPlanRepository) List(ctx context.Context, filter domain.PlanFilter) ([]domain.WorkoutPlan, error) {
	query := `SELECT id, plan_name, difficulty_level, duration FROM workout_plans`
	var args []interface{}

	if filter.DifficultyLevel != "" {
		args = append(args, filter.DifficultyLevel)
		query += ` WHERE difficulty_level=$1`
	}
	query += " ORDER BY id"
	query, args = appendPage(query, args, filter.Page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.WorkoutPlan{}
	for rows.Next() {
		var p domain.WorkoutPlan
		if err := rows.Scan(&p.ID, &p.PlanName, &p.DifficultyLevel, &p.Duration); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// Update replaces every field of the plan.
func (r *WorkoutPlanRepository) Update(ctx context.Context, plan domain.WorkoutPlan) (domain.WorkoutPlan, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE workout_plans SET plan_name=$2, difficulty_level=$3, duration=$4 WHERE id=$1`,
		plan.ID, plan.PlanName, plan.DifficultyLevel, plan.Duration)
	if err != nil {
		return domain.WorkoutPlan{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.WorkoutPlan{}, domain.ErrPlanNotFound
	}
	return plan, nil
}

// Delete removes the plan; its exercise links cascade.
func (r *WorkoutPlanRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workout_plans WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}
