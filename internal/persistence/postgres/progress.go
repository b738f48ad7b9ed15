package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// ProgressRepository persists workout progress entries, always scoped to the
// owning user.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

var _ domain.WorkoutProgressRepository = (*ProgressRepository)(nil)

// NewProgressRepository constructs a ProgressRepository.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

const progressColumns = `id, user_id, workout_plan_id, exercise_id, date, sets, reps, weights, duration, notes`

// Create inserts a progress entry.
func (r *ProgressRepository) Create(ctx context.Context, progress domain.WorkoutProgress) (domain.WorkoutProgress, error) {
	const query = `INSERT INTO workout_progress (user_id, workout_plan_id, exercise_id, date, sets, reps, weights, duration, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		progress.UserID, progress.WorkoutPlanID, progress.ExerciseID, progress.Date,
		progress.Sets, progress.Reps, progress.Weights, progress.Duration, progress.Notes,
	).Scan(&progress.ID)
	if err != nil {
		return domain.WorkoutProgress{}, err
	}
	return progress, nil
}

// Get returns the entry scoped to its user, or nil when absent.
func (r *ProgressRepository) Get(ctx context.Context, userID, id int64) (*domain.WorkoutProgress, error) {
	const query = `SELECT ` + progressColumns + ` FROM workout_progress WHERE user_id=$1 AND id=$2`

	var p domain.WorkoutProgress
	err := r.pool.QueryRow(ctx, query, userID, id).Scan(
		&p.ID, &p.UserID, &p.WorkoutPlanID, &p.ExerciseID, &p.Date,
		&p.Sets, &p.Reps, &p.Weights, &p.Duration, &p.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByUser returns the user's entries with offset/limit paging.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.WorkoutProgress, error) {
	query := `SELECT ` + progressColumns + ` FROM workout_progress WHERE user_id=$1 ORDER BY id`
	args := []interface{}{userID}
	query, args = appendPage(query, args, page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.WorkoutProgress{}
	for rows.Next() {
		var p domain.WorkoutProgress
		if err := rows.Scan(&p.ID, &p.UserID, &p.WorkoutPlanID, &p.ExerciseID, &p.Date,
			&p.Sets, &p.Reps, &p.Weights, &p.Duration, &p.Notes); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// Update replaces every field of the entry, scoped to its user.
func (r *ProgressRepository) Update(ctx context.Context, progress domain.WorkoutProgress) (domain.WorkoutProgress, error) {
	const query = `UPDATE workout_progress
        SET workout_plan_id=$3, exercise_id=$4, date=$5, sets=$6, reps=$7, weights=$8, duration=$9, notes=$10
        WHERE user_id=$1 AND id=$2`

	tag, err := r.pool.Exec(ctx, query,
		progress.UserID, progress.ID, progress.WorkoutPlanID, progress.ExerciseID, progress.Date,
		progress.Sets, progress.Reps, progress.Weights, progress.Duration, progress.Notes)
	if err != nil {
		return domain.WorkoutProgress{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.WorkoutProgress{}, domain.ErrProgressNotFound
	}
	return progress, nil
}

// Delete removes the entry scoped to its user.
func (r *ProgressRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workout_progress WHERE user_id=$1 AND id=$2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}
