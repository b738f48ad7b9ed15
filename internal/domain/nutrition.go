package domain

import (
	"context"
	"time"
)

// NutritionLog records one meal entry for a user.
type NutritionLog struct {
	ID          int64
	UserID      int64
	Date        time.Time
	MealType    string
	FoodName    string
	Calories    int
	Fat         float64
	Protein     float64
	Carbs       float64
	ServingSize string
}

// NutritionFilter narrows nutrition listings. Date, when non-nil, is an
// equality filter on the entry date.
type NutritionFilter struct {
	Date     *time.Time
	MealType string
	Page     Page
}

// NutritionSummary aggregates entries over an inclusive date range.
type NutritionSummary struct {
	TotalEntries  int
	TotalCalories int
	TotalFat      float64
	TotalProtein  float64
	TotalCarbs    float64
}

// NutritionRepository scopes every operation to the owning user.
type NutritionRepository interface {
	Create(ctx context.Context, log NutritionLog) (NutritionLog, error)
	Get(ctx context.Context, userID, id int64) (*NutritionLog, error)
	List(ctx context.Context, userID int64, filter NutritionFilter) ([]NutritionLog, error)
	Update(ctx context.Context, log NutritionLog) (NutritionLog, error)
	Delete(ctx context.Context, userID, id int64) error
	// DeleteByDate removes all entries on the given date, returning the count.
	DeleteByDate(ctx context.Context, userID int64, date time.Time) (int64, error)
	// Summarize aggregates totals over [start, end] inclusive.
	Summarize(ctx context.Context, userID int64, start, end time.Time) (NutritionSummary, error)
}
