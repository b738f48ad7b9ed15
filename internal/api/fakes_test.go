package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"example.com/fittrack/internal/auth"
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/session"
)

// In-memory repository fakes backing the handler tests. Listings return
// entries in insertion order, matching the ORDER BY id of the real queries.

type fakeUsers struct {
	nextID int64
	users  map[int64]domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[int64]domain.User)}
}

func (f *fakeUsers) Create(ctx context.Context, user domain.User) (domain.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeExercises struct {
	nextID    int64
	exercises map[int64]domain.Exercise
}

func newFakeExercises() *fakeExercises {
	return &fakeExercises{exercises: make(map[int64]domain.Exercise)}
}

func (f *fakeExercises) Create(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	f.nextID++
	exercise.ID = f.nextID
	f.exercises[exercise.ID] = exercise
	return exercise, nil
}

func (f *fakeExercises) Get(ctx context.Context, id int64) (*domain.Exercise, error) {
	if e, ok := f.exercises[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeExercises) List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	for _, e := range f.exercises {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && e.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return applyPage(out, filter.Page), nil
}

func (f *fakeExercises) Update(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	if _, ok := f.exercises[exercise.ID]; !ok {
		return domain.Exercise{}, domain.ErrExerciseNotFound
	}
	f.exercises[exercise.ID] = exercise
	return exercise, nil
}

func (f *fakeExercises) Delete(ctx context.Context, id int64) error {
	if _, ok := f.exercises[id]; !ok {
		return domain.ErrExerciseNotFound
	}
	delete(f.exercises, id)
	return nil
}

type fakePlans struct {
	nextID int64
	plans  map[int64]domain.WorkoutPlan
}

func newFakePlans() *fakePlans {
	return &fakePlans{plans: make(map[int64]domain.WorkoutPlan)}
}

func (f *fakePlans) Create(ctx context.Context, plan domain.WorkoutPlan) (domain.WorkoutPlan, error) {
	f.nextID++
	plan.ID = f.nextID
	f.plans[plan.ID] = plan
	return plan, nil
}

func (f *fakePlans) Get(ctx context.Context, id int64) (*domain.WorkoutPlan, error) {
	if p, ok := f.plans[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakePlans) List(ctx context.Context, filter domain.PlanFilter) ([]domain.WorkoutPlan, error) {
	out := []domain.WorkoutPlan{}
	for _, p := range f.plans {
		if filter.DifficultyLevel != "" && p.DifficultyLevel != filter.DifficultyLevel {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return applyPage(out, filter.Page), nil
}

func (f *fakePlans) Update(ctx context.Context, plan domain.WorkoutPlan) (domain.WorkoutPlan, error) {
	if _, ok := f.plans[plan.ID]; !ok {
		return domain.WorkoutPlan{}, domain.ErrPlanNotFound
	}
	f.plans[plan.ID] = plan
	return plan, nil
}

func (f *fakePlans) Delete(ctx context.Context, id int64) error {
	if _, ok := f.plans[id]; !ok {
		return domain.ErrPlanNotFound
	}
	delete(f.plans, id)
	return nil
}

type fakePlanExercises struct {
	nextID    int64
	links     map[int64]domain.PlanExercise
	exercises *fakeExercises
}

func newFakePlanExercises(exercises *fakeExercises) *fakePlanExercises {
	return &fakePlanExercises{links: make(map[int64]domain.PlanExercise), exercises: exercises}
}

func (f *fakePlanExercises) Create(ctx context.Context, link domain.PlanExercise) (domain.PlanExercise, error) {
	f.nextID++
	link.ID = f.nextID
	f.links[link.ID] = link
	return link, nil
}

func (f *fakePlanExercises) Get(ctx context.Context, planID, id int64) (*domain.PlanExercise, error) {
	if l, ok := f.links[id]; ok && l.WorkoutPlanID == planID {
		return &l, nil
	}
	return nil, nil
}

func (f *fakePlanExercises) ListByPlan(ctx context.Context, planID int64) ([]domain.PlanExerciseDetail, error) {
	out := []domain.PlanExerciseDetail{}
	for _, l := range f.links {
		if l.WorkoutPlanID != planID {
			continue
		}
		detail := domain.PlanExerciseDetail{PlanExercise: l}
		if e, ok := f.exercises.exercises[l.ExerciseID]; ok {
			detail.Exercise = e
		}
		out = append(out, detail)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakePlanExercises) Update(ctx context.Context, link domain.PlanExercise) (domain.PlanExercise, error) {
	existing, ok := f.links[link.ID]
	if !ok || existing.WorkoutPlanID != link.WorkoutPlanID {
		return domain.PlanExercise{}, domain.ErrPlanExerciseNotFound
	}
	f.links[link.ID] = link
	return link, nil
}

func (f *fakePlanExercises) Delete(ctx context.Context, planID, id int64) error {
	if l, ok := f.links[id]; ok && l.WorkoutPlanID == planID {
		delete(f.links, id)
		return nil
	}
	return domain.ErrPlanExerciseNotFound
}

type fakeProgress struct {
	nextID  int64
	entries map[int64]domain.WorkoutProgress
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{entries: make(map[int64]domain.WorkoutProgress)}
}

func (f *fakeProgress) Create(ctx context.Context, progress domain.WorkoutProgress) (domain.WorkoutProgress, error) {
	f.nextID++
	progress.ID = f.nextID
	f.entries[progress.ID] = progress
	return progress, nil
}

func (f *fakeProgress) Get(ctx context.Context, userID, id int64) (*domain.WorkoutProgress, error) {
	if p, ok := f.entries[id]; ok && p.UserID == userID {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProgress) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.WorkoutProgress, error) {
	out := []domain.WorkoutProgress{}
	for _, p := range f.entries {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return applyPage(out, page), nil
}

func (f *fakeProgress) Update(ctx context.Context, progress domain.WorkoutProgress) (domain.WorkoutProgress, error) {
	existing, ok := f.entries[progress.ID]
	if !ok || existing.UserID != progress.UserID {
		return domain.WorkoutProgress{}, domain.ErrProgressNotFound
	}
	f.entries[progress.ID] = progress
	return progress, nil
}

func (f *fakeProgress) Delete(ctx context.Context, userID, id int64) error {
	if p, ok := f.entries[id]; ok && p.UserID == userID {
		delete(f.entries, id)
		return nil
	}
	return domain.ErrProgressNotFound
}

type fakeNutrition struct {
	nextID  int64
	entries map[int64]domain.NutritionLog
}

func newFakeNutrition() *fakeNutrition {
	return &fakeNutrition{entries: make(map[int64]domain.NutritionLog)}
}

func (f *fakeNutrition) Create(ctx context.Context, log domain.NutritionLog) (domain.NutritionLog, error) {
	f.nextID++
	log.ID = f.nextID
	f.entries[log.ID] = log
	return log, nil
}

func (f *fakeNutrition) Get(ctx context.Context, userID, id int64) (*domain.NutritionLog, error) {
	if l, ok := f.entries[id]; ok && l.UserID == userID {
		return &l, nil
	}
	return nil, nil
}

func (f *fakeNutrition) List(ctx context.Context, userID int64, filter domain.NutritionFilter) ([]domain.NutritionLog, error) {
	out := []domain.NutritionLog{}
	for _, l := range f.entries {
		if l.UserID != userID {
			continue
		}
		if filter.Date != nil && !sameDay(l.Date, *filter.Date) {
			continue
		}
		if filter.MealType != "" && l.MealType != filter.MealType {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return applyPage(out, filter.Page), nil
}

func (f *fakeNutrition) Update(ctx context.Context, log domain.NutritionLog) (domain.NutritionLog, error) {
	existing, ok := f.entries[log.ID]
	if !ok || existing.UserID != log.UserID {
		return domain.NutritionLog{}, domain.ErrNutritionLogNotFound
	}
	f.entries[log.ID] = log
	return log, nil
}

func (f *fakeNutrition) Delete(ctx context.Context, userID, id int64) error {
	if l, ok := f.entries[id]; ok && l.UserID == userID {
		delete(f.entries, id)
		return nil
	}
	return domain.ErrNutritionLogNotFound
}

func (f *fakeNutrition) DeleteByDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	var count int64
	for id, l := range f.entries {
		if l.UserID == userID && sameDay(l.Date, date) {
			delete(f.entries, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeNutrition) Summarize(ctx context.Context, userID int64, start, end time.Time) (domain.NutritionSummary, error) {
	var summary domain.NutritionSummary
	for _, l := range f.entries {
		if l.UserID != userID || l.Date.Before(start) || l.Date.After(end) {
			continue
		}
		summary.TotalEntries++
		summary.TotalCalories += l.Calories
		summary.TotalFat += l.Fat
		summary.TotalProtein += l.Protein
		summary.TotalCarbs += l.Carbs
	}
	return summary, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func applyPage[T any](items []T, page domain.Page) []T {
	if page.Skip >= len(items) {
		return []T{}
	}
	items = items[page.Skip:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}

// fixture bundles a fully wired Handler over the fakes.
type fixture struct {
	handler       *Handler
	mux           *http.ServeMux
	users         *fakeUsers
	exercises     *fakeExercises
	plans         *fakePlans
	planExercises *fakePlanExercises
	progress      *fakeProgress
	nutrition     *fakeNutrition
}

func newFixture() *fixture {
	users := newFakeUsers()
	exercises := newFakeExercises()
	plans := newFakePlans()
	planExercises := newFakePlanExercises(exercises)
	progress := newFakeProgress()
	nutrition := newFakeNutrition()

	service := auth.NewService(users, session.NewMemoryStore(time.Hour), auth.PlaintextVerifier{})

	handler := NewHandler(Deps{
		Auth:          service,
		Users:         users,
		Exercises:     exercises,
		Plans:         plans,
		PlanExercises: planExercises,
		Progress:      progress,
		Nutrition:     nutrition,
		SessionTTL:    time.Hour,
		CookieSecure:  false,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	return &fixture{
		handler:       handler,
		mux:           mux,
		users:         users,
		exercises:     exercises,
		plans:         plans,
		planExercises: planExercises,
		progress:      progress,
		nutrition:     nutrition,
	}
}
