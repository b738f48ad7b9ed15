package domain

import (
	"context"
	"time"
)

// Exercise is a catalog entry referenced by plan links and progress entries.
type Exercise struct {
	ID              int64
	Name            string
	Category        string
	EquipmentNeeded string
	Difficulty      string
	Instructions    string
	TargetMuscle    string
}

// WorkoutPlan groups an ordered set of plan-exercise links.
type WorkoutPlan struct {
	ID              int64
	PlanName        string
	DifficultyLevel string
	Duration        string
}

// PlanExercise links an Exercise into a WorkoutPlan with set/rep parameters
// and an explicit sequence position. Positions may repeat or leave gaps.
type PlanExercise struct {
	ID            int64
	WorkoutPlanID int64
	ExerciseID    int64
	Sets          int
	Reps          int
	Duration      string
	Position      int
}

// PlanExerciseDetail pairs a link with its referenced exercise for listing.
type PlanExerciseDetail struct {
	PlanExercise
	Exercise Exercise
}

// WorkoutProgress records one logged workout entry for a user.
type WorkoutProgress struct {
	ID            int64
	UserID        int64
	WorkoutPlanID int64
	ExerciseID    int64
	Date          time.Time
	Sets          int
	Reps          int
	Weights       int
	Duration      string
	Notes         string
}

// Page is an offset/limit window over a listing. Limit <= 0 means no limit.
type Page struct {
	Skip  int
	Limit int
}

// ExerciseFilter narrows exercise listings by optional equality filters.
type ExerciseFilter struct {
	Category   string
	Difficulty string
	Page       Page
}

// PlanFilter narrows workout plan listings.
type PlanFilter struct {
	DifficultyLevel string
	Page            Page
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise Exercise) (Exercise, error)
	Get(ctx context.Context, id int64) (*Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]Exercise, error)
	Update(ctx context.Context, exercise Exercise) (Exercise, error)
	Delete(ctx context.Context, id int64) error
}

type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan WorkoutPlan) (WorkoutPlan, error)
	Get(ctx context.Context, id int64) (*WorkoutPlan, error)
	List(ctx context.Context, filter PlanFilter) ([]WorkoutPlan, error)
	Update(ctx context.Context, plan WorkoutPlan) (WorkoutPlan, error)
	Delete(ctx context.Context, id int64) error
}

type PlanExerciseRepository interface {
	Create(ctx context.Context, link PlanExercise) (PlanExercise, error)
	Get(ctx context.Context, planID, id int64) (*PlanExercise, error)
	// ListByPlan returns links joined with their exercises, ordered by position.
	ListByPlan(ctx context.Context, planID int64) ([]PlanExerciseDetail, error)
	Update(ctx context.Context, link PlanExercise) (PlanExercise, error)
	Delete(ctx context.Context, planID, id int64) error
}

// WorkoutProgressRepository scopes every read and mutation to the owning user.
type WorkoutProgressRepository interface {
	Create(ctx context.Context, progress WorkoutProgress) (WorkoutProgress, error)
	Get(ctx context.Context, userID, id int64) (*WorkoutProgress, error)
	ListByUser(ctx context.Context, userID int64, page Page) ([]WorkoutProgress, error)
	Update(ctx context.Context, progress WorkoutProgress) (WorkoutProgress, error)
	Delete(ctx context.Context, userID, id int64) error
}
