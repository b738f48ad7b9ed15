package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"example.com/fittrack/internal/domain"
)

// WorkoutPlanRequest is the payload for plan create and full-field update.
type WorkoutPlanRequest struct {
	PlanName        string `json:"plan_name"`
	DifficultyLevel string `json:"difficulty_level"`
	Duration        string `json:"duration"`
}

// Validate ensures request correctness.
func (r WorkoutPlanRequest) Validate() error {
	if strings.TrimSpace(r.PlanName) == "" {
		return errRequired("plan_name")
	}
	return nil
}

// WorkoutPlanView exposes a plan.
type WorkoutPlanView struct {
	ID              int64  `json:"id"`
	PlanName        string `json:"plan_name"`
	DifficultyLevel string `json:"difficulty_level"`
	Duration        string `json:"duration"`
}

func toPlanView(p domain.WorkoutPlan) WorkoutPlanView {
	return WorkoutPlanView{
		ID:              p.ID,
		PlanName:        p.PlanName,
		DifficultyLevel: p.DifficultyLevel,
		Duration:        p.Duration,
	}
}

func toPlanViews(plans []domain.WorkoutPlan) []WorkoutPlanView {
	views := make([]WorkoutPlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, toPlanView(p))
	}
	return views
}

// PlanExerciseRequest is the payload for adding or replacing a plan link.
type PlanExerciseRequest struct {
	ExerciseID int64  `json:"exercise_id"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
	Duration   string `json:"duration"`
	Position   int    `json:"position"`
}

// Validate ensures request correctness.
func (r PlanExerciseRequest) Validate() error {
	if r.ExerciseID <= 0 {
		return errRequired("exercise_id")
	}
	return nil
}

// PlanExerciseView exposes a link, optionally with its exercise inlined.
type PlanExerciseView struct {
	ID            int64         `json:"id"`
	WorkoutPlanID int64         `json:"workout_plan_id"`
	ExerciseID    int64         `json:"exercise_id"`
	Sets          int           `json:"sets"`
	Reps          int           `json:"reps"`
	Duration      string        `json:"duration"`
	Position      int           `json:"position"`
	Exercise      *ExerciseView `json:"exercise,omitempty"`
}

func toPlanExerciseView(link domain.PlanExercise, exercise *domain.Exercise) PlanExerciseView {
	view := PlanExerciseView{
		ID:            link.ID,
		WorkoutPlanID: link.WorkoutPlanID,
		ExerciseID:    link.ExerciseID,
		Sets:          link.Sets,
		Reps:          link.Reps,
		Duration:      link.Duration,
		Position:      link.Position,
	}
	if exercise != nil {
		ev := toExerciseView(*exercise)
		view.Exercise = &ev
	}
	return view
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req WorkoutPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	plan, err := h.plans.Create(r.Context(), domain.WorkoutPlan{
		PlanName:        req.PlanName,
		DifficultyLevel: req.DifficultyLevel,
		Duration:        req.Duration,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanView(plan))
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.List(r.Context(), domain.PlanFilter{Page: parsePage(r)})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanViews(plans))
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	plan, err := h.plans.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if plan == nil {
		writeDomainError(w, domain.ErrPlanNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toPlanView(*plan))
}

func (h *Handler) updatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	var req WorkoutPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	plan, err := h.plans.Update(r.Context(), domain.WorkoutPlan{
		ID:              id,
		PlanName:        req.PlanName,
		DifficultyLevel: req.DifficultyLevel,
		Duration:        req.Duration,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanView(plan))
}

func (h *Handler) deletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	if err := h.plans.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, "workout plan deleted successfully")
}

// planSubroute fans the two-segment GET out to its two meanings:
// /workouts/plans/{plan_id}/exercises lists a plan's links, and
// /workouts/plans/difficulty/{level} filters the plan catalog.
func (h *Handler) planSubroute(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.PathValue("sub") == "exercises":
		h.listPlanExercises(w, r)
	case r.PathValue("plan_id") == "difficulty":
		h.listPlansByDifficulty(w, r, r.PathValue("sub"))
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown plan resource")
	}
}

func (h *Handler) listPlansByDifficulty(w http.ResponseWriter, r *http.Request, difficulty string) {
	plans, err := h.plans.List(r.Context(), domain.PlanFilter{
		DifficultyLevel: difficulty,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanViews(plans))
}

// addPlanExercise verifies both the plan and the exercise exist before
// inserting the link; on failure no row is written.
func (h *Handler) addPlanExercise(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	var req PlanExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	plan, err := h.plans.Get(r.Context(), planID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if plan == nil {
		writeDomainError(w, domain.ErrPlanNotFound)
		return
	}

	exercise, err := h.exercises.Get(r.Context(), req.ExerciseID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if exercise == nil {
		writeDomainError(w, domain.ErrExerciseNotFound)
		return
	}

	link, err := h.planExercises.Create(r.Context(), domain.PlanExercise{
		WorkoutPlanID: planID,
		ExerciseID:    req.ExerciseID,
		Sets:          req.Sets,
		Reps:          req.Reps,
		Duration:      req.Duration,
		Position:      req.Position,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanExerciseView(link, exercise))
}

func (h *Handler) listPlanExercises(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}

	details, err := h.planExercises.ListByPlan(r.Context(), planID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]PlanExerciseView, 0, len(details))
	for _, d := range details {
		views = append(views, toPlanExerciseView(d.PlanExercise, &d.Exercise))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) updatePlanExercise(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan exercise id")
		return
	}

	var req PlanExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	link, err := h.planExercises.Update(r.Context(), domain.PlanExercise{
		ID:            id,
		WorkoutPlanID: planID,
		ExerciseID:    req.ExerciseID,
		Sets:          req.Sets,
		Reps:          req.Reps,
		Duration:      req.Duration,
		Position:      req.Position,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	exercise, err := h.exercises.Get(r.Context(), link.ExerciseID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlanExerciseView(link, exercise))
}

func (h *Handler) removePlanExercise(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "plan_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan id")
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid plan exercise id")
		return
	}

	if err := h.planExercises.Delete(r.Context(), planID, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, "exercise removed from plan successfully")
}
