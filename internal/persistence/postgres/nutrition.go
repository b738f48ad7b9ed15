package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fittrack/internal/domain"
)

// NutritionRepository persists nutrition log entries, always scoped to the
// owning user.
type NutritionRepository struct {
	pool *pgxpool.Pool
}

var _ domain.NutritionRepository = (*NutritionRepository)(nil)

// NewNutritionRepository constructs a NutritionRepository.
func NewNutritionRepository(pool *pgxpool.Pool) *NutritionRepository {
	return &NutritionRepository{pool: pool}
}

const nutritionColumns = `id, user_id, date, meal_type, food_name, calories, fat, protein, carbs, serving_size`

func scanNutritionLog(row pgx.Row) (*domain.NutritionLog, error) {
	var n domain.NutritionLog
	err := row.Scan(&n.ID, &n.UserID, &n.Date, &n.MealType, &n.FoodName,
		&n.Calories, &n.Fat, &n.Protein, &n.Carbs, &n.ServingSize)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a log entry.
func (r *NutritionRepository) Create(ctx context.Context, log domain.NutritionLog) (domain.NutritionLog, error) {
	const query = `INSERT INTO nutrition_logs (user_id, date, meal_type, food_name, calories, fat, protein, carbs, serving_size)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		log.UserID, log.Date, log.MealType, log.FoodName,
		log.Calories, log.Fat, log.Protein, log.Carbs, log.ServingSize,
	).Scan(&log.ID)
	if err != nil {
		return domain.NutritionLog{}, err
	}
	return log, nil
}

// Get returns the entry scoped to its user, or nil when absent.
func (r *NutritionRepository) Get(ctx context.Context, userID, id int64) (*domain.NutritionLog, error) {
	return scanNutritionLog(r.pool.QueryRow(ctx,
		`SELECT `+nutritionColumns+` FROM nutrition_logs WHERE user_id=$1 AND id=$2`, userID, id))
}

// List returns the user's entries with optional date and meal_type filters.
func (r *NutritionRepository) List(ctx context.Context, userID int64, filter domain.NutritionFilter) ([]domain.NutritionLog, error) {
	query := `SELECT ` + nutritionColumns + ` FROM nutrition_logs WHERE user_id=$1`
	args := []interface{}{userID}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND date=$%d", len(args))
	}
	if filter.MealType != "" {
		args = append(args, filter.MealType)
		query += fmt.Sprintf(" AND meal_type=$%d", len(args))
	}
	query += " ORDER BY id"
	query, args = appendPage(query, args, filter.Page)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.NutritionLog{}
	for rows.Next() {
		var n domain.NutritionLog
		if err := rows.Scan(&n.ID, &n.UserID, &n.Date, &n.MealType, &n.FoodName,
			&n.Calories, &n.Fat, &n.Protein, &n.Carbs, &n.ServingSize); err != nil {
			return nil, err
		}
		results = append(results, n)
	}
	return results, rows.Err()
}

// Update replaces every field of the entry, scoped to its user. Partial
// semantics are the handler's concern: it loads the row and overlays the
// provided fields first.
func (r *NutritionRepository) Update(ctx context.Context, log domain.NutritionLog) (domain.NutritionLog, error) {
	const query = `UPDATE nutrition_logs
        SET date=$3, meal_type=$4, food_name=$5, calories=$6, fat=$7, protein=$8, carbs=$9, serving_size=$10
        WHERE user_id=$1 AND id=$2`

	tag, err := r.pool.Exec(ctx, query,
		log.UserID, log.ID, log.Date, log.MealType, log.FoodName,
		log.Calories, log.Fat, log.Protein, log.Carbs, log.ServingSize)
	if err != nil {
		return domain.NutritionLog{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.NutritionLog{}, domain.ErrNutritionLogNotFound
	}
	return log, nil
}

// Delete removes the entry scoped to its user.
func (r *NutritionRepository) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM nutrition_logs WHERE user_id=$1 AND id=$2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNutritionLogNotFound
	}
	return nil
}

// DeleteByDate removes all of the user's entries on the given date.
func (r *NutritionRepository) DeleteByDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM nutrition_logs WHERE user_id=$1 AND date=$2`, userID, date)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Summarize aggregates totals over the inclusive [start, end] range.
func (r *NutritionRepository) Summarize(ctx context.Context, userID int64, start, end time.Time) (domain.NutritionSummary, error) {
	const query = `SELECT COUNT(*),
            COALESCE(SUM(calories), 0),
            COALESCE(SUM(fat), 0),
            COALESCE(SUM(protein), 0),
            COALESCE(SUM(carbs), 0)
        FROM nutrition_logs
        WHERE user_id=$1 AND date >= $2 AND date <= $3`

	var summary domain.NutritionSummary
	err := r.pool.QueryRow(ctx, query, userID, start, end).Scan(
		&summary.TotalEntries, &summary.TotalCalories,
		&summary.TotalFat, &summary.TotalProtein, &summary.TotalCarbs)
	if err != nil {
		return domain.NutritionSummary{}, err
	}
	return summary, nil
}
