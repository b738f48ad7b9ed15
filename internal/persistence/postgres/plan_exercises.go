package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// PlanExerciseRepository persists plan-exercise links.
type PlanExerciseRepository struct {
	pool *pgxpool.Pool
}

var _ domain.PlanExerciseRepository = (*PlanExerciseRepository)(nil)

// NewPlanExerciseRepository constructs a PlanExerciseRepository.
func NewPlanExerciseRepository(pool *pgxpool.Pool) *PlanExerciseRepository {
	return &PlanExerciseRepository{pool: pool}
}

// Create inserts a link. Referential validity of plan and exercise ids is
// checked by the handler before insert.
func (r *PlanExerciseRepository) Create(ctx context.Context, link domain.PlanExercise) (domain.PlanExercise, error) {
	const query = `INSERT INTO workout_plan_exercises (workout_plan_id, exercise_id, sets, reps, duration, position)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		link.WorkoutPlanID, link.ExerciseID, link.Sets, link.Reps, link.Duration, link.Position,
	).Scan(&link.ID)
	if err != nil {
		return domain.PlanExercise{}, err
	}
	return link, nil
}

// Get returns the link scoped to its plan, or nil when absent.
func (r *PlanExerciseRepository) Get(ctx context.Context, planID, id int64) (*domain.PlanExercise, error) {
	const query = `SELECT id, workout_plan_id, exercise_id, sets, reps, duration, position
        FROM workout_plan_exercises WHERE workout_plan_id=$1 AND id=$2`

	var link domain.PlanExercise
	err := r.pool.QueryRow(ctx, query, planID, id).Scan(
		&link.ID, &link.WorkoutPlanID, &link.ExerciseID, &link.Sets, &link.Reps, &link.Duration, &link.Position)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByPlan returns the plan's links joined with their exercises, ordered
// by sequence position.
func (r *PlanExerciseRepository) ListByPlan(ctx context.Context, planID int64) ([]domain.PlanExerciseDetail, error) {
	const query = `SELECT pe.id, pe.workout_plan_id, pe.exercise_id, pe.sets, pe.reps, pe.duration, pe.position,
            e.id, e.name, e.category, e.equipment_needed, e.difficulty, e.instructions, e.target_muscle
        FROM workout_plan_exercises pe
        JOIN exercises e ON e.id = pe.exercise_id
        WHERE pe.workout_plan_id=$1
        ORDER BY pe.position, pe.id`

	rows, err := r.pool.Query(ctx, query, planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.PlanExerciseDetail{}
	for rows.Next() {
		var d domain.PlanExerciseDetail
		if err := rows.Scan(
			&d.ID, &d.WorkoutPlanID, &d.ExerciseID, &d.Sets, &d.Reps, &d.Duration, &d.Position,
			&d.Exercise.ID, &d.Exercise.Name, &d.Exercise.Category, &d.Exercise.EquipmentNeeded,
			&d.Exercise.Difficulty, &d.Exercise.Instructions, &d.Exercise.TargetMuscle,
		); err != nil {
			return nil, err
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

// Update replaces every field of the link, scoped to its plan.
func (r *PlanExerciseRepository) Update(ctx context.Context, link domain.PlanExercise) (domain.PlanExercise, error) {
	const query = `UPDATE workout_plan_exercises
        SET exercise_id=$3, sets=$4, reps=$5, duration=$6, position=$7
        WHERE workout_plan_id=$1 AND id=$2`

	tag, err := r.pool.Exec(ctx, query,
		link.WorkoutPlanID, link.ID, link.ExerciseID, link.Sets, link.Reps, link.Duration, link.Position)
	if err != nil {
		return domain.PlanExercise{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.PlanExercise{}, domain.ErrPlanExerciseNotFound
	}
	return link, nil
}

// Delete removes the link scoped to its plan.
func (r *PlanExerciseRepository) Delete(ctx context.Context, planID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM workout_plan_exercises WHERE workout_plan_id=$1 AND id=$2`, planID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlanExerciseNotFound
	}
	return nil
}
