package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// ExerciseRepository persists the exercise catalog.
type ExerciseRepository struct {
	pool *pgxpool.Pool
}

var _ domain.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository constructs an ExerciseRepository.
func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepository {
	return &ExerciseRepository{pool: pool}
}

const exerciseColumns = `id, name, category, equipment_needed, difficulty, instructions, target_muscle`

func scanExercise(row pgx.Row) (*domain.Exercise, error) {
	var e domain.Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.EquipmentNeeded, &e.Difficulty, &e.Instructions, &e.TargetMuscle)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a catalog entry.
func (r *ExerciseRepository) Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	const query = `INSERT INTO exercises (name, category, equipment_needed, difficulty, instructions, target_muscle)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		exercise.Name, exercise.Category, exercise.EquipmentNeeded,
		exercise.Difficulty, exercise.Instructions, exercise.TargetMuscle,
	).Scan(&exercise.ID)
	if err != nil {
		return domain.Exercise{}, err
	}
	return exercise, nil
}

// Get returns the exercise or nil when absent.
func (r *ExerciseRepository) Get(ctx context.Context, id int64) (*domain.Exercise, error) {
	return scanExercise(r.pool.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id=$1`, id))
}

// List applies optional equality filters and offset/limit paging.
func (r *ExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises`
	var conds []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Difficulty != "" {
		args = append(args, filter.Difficulty)
		conds = append(conds, fmt.Sprintf("difficulty=$%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"
	query, args = appendPage(query, args, filter.Page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.EquipmentNeeded, &e.Difficulty, &e.Instructions, &e.TargetMuscle); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// Update replaces every field of the exercise.
func (r *ExerciseRepository) Update(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	const query = `UPDATE exercises
        SET name=$2, category=$3, equipment_needed=$4, difficulty=$5, instructions=$6, target_muscle=$7
        WHERE id=$1`

	tag, err := r.pool.Exec(ctx, query,
		exercise.ID, exercise.Name, exercise.Category, exercise.EquipmentNeeded,
		exercise.Difficulty, exercise.Instructions, exercise.TargetMuscle,
	)
	if err != nil {
		return domain.Exercise{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.Exercise{}, domain.ErrExerciseNotFound
	}
	return exercise, nil
}

// Delete removes the exercise; plan links referencing it cascade.
func (r *ExerciseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExerciseNotFound
	}
	return nil
}
