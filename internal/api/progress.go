package api

import (
	"encoding/json"
	"net/http"

	"example.com/fittrack/internal/auth"
	"example.com/fittrack/internal/domain"
)

// ProgressRequest is the payload for logging or replacing a progress entry.
type ProgressRequest struct {
	WorkoutPlanID int64  `json:"workout_plan_id"`
	ExerciseID    int64  `json:"exercise_id"`
	Date          Date   `json:"date"`
	Sets          int    `json:"sets"`
	Reps          int    `json:"reps"`
	Weights       int    `json:"weights"`
	Duration      string `json:"duration"`
	Notes         string `json:"notes"`
}

// Validate ensures request correctness.
func (r ProgressRequest) Validate() error {
	if r.WorkoutPlanID <= 0 {
		return errRequired("workout_plan_id")
	}
	if r.ExerciseID <= 0 {
		return errRequired("exercise_id")
	}
	if r.Date.IsZero() {
		return errRequired("date")
	}
	return nil
}

// ProgressView exposes a progress entry.
type ProgressView struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	WorkoutPlanID int64  `json:"workout_plan_id"`
	ExerciseID    int64  `json:"exercise_id"`
	Date          Date   `json:"date"`
	Sets          int    `json:"sets"`
	Reps          int    `json:"reps"`
	Weights       int    `json:"weights"`
	Duration      string `json:"duration"`
	Notes         string `json:"notes"`
}

func toProgressView(p domain.WorkoutProgress) ProgressView {
	return ProgressView{
		ID:            p.ID,
		UserID:        p.UserID,
		WorkoutPlanID: p.WorkoutPlanID,
		ExerciseID:    p.ExerciseID,
		Date:          NewDate(p.Date),
		Sets:          p.Sets,
		Reps:          p.Reps,
		Weights:       p.Weights,
		Duration:      p.Duration,
		Notes:         p.Notes,
	}
}

func (h *Handler) logProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	plan, err := h.plans.Get(r.Context(), req.WorkoutPlanID)
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

	entry, err := h.progress.Create(r.Context(), domain.WorkoutProgress{
		UserID:        user.ID,
		WorkoutPlanID: req.WorkoutPlanID,
		ExerciseID:    req.ExerciseID,
		Date:          req.Date.Time,
		Sets:          req.Sets,
		Reps:          req.Reps,
		Weights:       req.Weights,
		Duration:      req.Duration,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressView(entry))
}

func (h *Handler) listProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	entries, err := h.progress.ListByUser(r.Context(), user.ID, parsePage(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]ProgressView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toProgressView(e))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid progress id")
		return
	}

	entry, err := h.progress.Get(r.Context(), user.ID, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if entry == nil {
		writeDomainError(w, domain.ErrProgressNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toProgressView(*entry))
}

func (h *Handler) updateProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid progress id")
		return
	}

	var req ProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	entry, err := h.progress.Update(r.Context(), domain.WorkoutProgress{
		ID:            id,
		UserID:        user.ID,
		WorkoutPlanID: req.WorkoutPlanID,
		ExerciseID:    req.ExerciseID,
		Date:          req.Date.Time,
		Sets:          req.Sets,
		Reps:          req.Reps,
		Weights:       req.Weights,
		Duration:      req.Duration,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressView(entry))
}

func (h *Handler) deleteProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid progress id")
		return
	}

	if err := h.progress.Delete(r.Context(), user.ID, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, "progress entry deleted successfully")
}
