package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"example.com/fittrack/internal/domain"
)

// ExerciseRequest is the payload for exercise create and full-field update.
type ExerciseRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	EquipmentNeeded string `json:"equipment_needed"`
	Difficulty      string `json:"difficulty"`
	Instructions    string `json:"instructions"`
	TargetMuscle    string `json:"target_muscle"`
}

// Validate ensures request correctness.
func (r ExerciseRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errRequired("name")
	}
	return nil
}

// ExerciseView exposes a catalog entry.
type ExerciseView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	EquipmentNeeded string `json:"equipment_needed"`
	Difficulty      string `json:"difficulty"`
	Instructions    string `json:"instructions"`
	TargetMuscle    string `json:"target_muscle"`
}

func toExerciseView(e domain.Exercise) ExerciseView {
	return ExerciseView{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		EquipmentNeeded: e.EquipmentNeeded,
		Difficulty:      e.Difficulty,
		Instructions:    e.Instructions,
		TargetMuscle:    e.TargetMuscle,
	}
}

func toExerciseViews(exercises []domain.Exercise) []ExerciseView {
	views := make([]ExerciseView, 0, len(exercises))
	for _, e := range exercises {
		views = append(views, toExerciseView(e))
	}
	return views
}

func (r ExerciseRequest) toDomain(id int64) domain.Exercise {
	return domain.Exercise{
		ID:              id,
		Name:            r.Name,
		Category:        r.Category,
		EquipmentNeeded: r.EquipmentNeeded,
		Difficulty:      r.Difficulty,
		Instructions:    r.Instructions,
		TargetMuscle:    r.TargetMuscle,
	}
}

func (h *Handler) createExercise(w http.ResponseWriter, r *http.Request) {
	var req ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	exercise, err := h.exercises.Create(r.Context(), req.toDomain(0))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseView(exercise))
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exercises.List(r.Context(), domain.ExerciseFilter{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
		Page:       parsePage(r),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseViews(exercises))
}

func (h *Handler) getExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid exercise id")
		return
	}

	exercise, err := h.exercises.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if exercise == nil {
		writeDomainError(w, domain.ErrExerciseNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseView(*exercise))
}

func (h *Handler) updateExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid exercise id")
		return
	}

	var req ExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	exercise, err := h.exercises.Update(r.Context(), req.toDomain(id))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseView(exercise))
}

func (h *Handler) deleteExercise(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid exercise id")
		return
	}

	if err := h.exercises.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, "exercise deleted successfully")
}

func (h *Handler) listExercisesByCategory(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exercises.List(r.Context(), domain.ExerciseFilter{
		Category: r.PathValue("category"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseViews(exercises))
}

func (h *Handler) listExercisesByDifficulty(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exercises.List(r.Context(), domain.ExerciseFilter{
		Difficulty: r.PathValue("difficulty"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseViews(exercises))
}
