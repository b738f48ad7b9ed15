package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"example.com/fittrack/internal/auth"
	"example.com/fittrack/internal/domain"
)

// NutritionLogRequest is the payload for creating a nutrition entry.
type NutritionLogRequest struct {
	Date        Date    `json:"date"`
	MealType    string  `json:"meal_type"`
	FoodName    string  `json:"food_name"`
	Calories    int     `json:"calories"`
	Fat         float64 `json:"fat"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	ServingSize string  `json:"serving_size"`
}

// Validate ensures request correctness.
func (r NutritionLogRequest) Validate() error {
	if r.Date.IsZero() {
		return errRequired("date")
	}
	if strings.TrimSpace(r.MealType) == "" {
		return errRequired("meal_type")
	}
	if strings.TrimSpace(r.FoodName) == "" {
		return errRequired("food_name")
	}
	return nil
}

// NutritionLogUpdate carries a partial update. Only fields present in the
// body overwrite the stored entry.
type NutritionLogUpdate struct {
	Date        *Date    `json:"date"`
	MealType    *string  `json:"meal_type"`
	FoodName    *string  `json:"food_name"`
	Calories    *int     `json:"calories"`
	Fat         *float64 `json:"fat"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	ServingSize *string  `json:"serving_size"`
}

func (u NutritionLogUpdate) apply(log *domain.NutritionLog) {
	if u.Date != nil {
		log.Date = u.Date.Time
	}
	if u.MealType != nil {
		log.MealType = *u.MealType
	}
	if u.FoodName != nil {
		log.FoodName = *u.FoodName
	}
	if u.Calories != nil {
		log.Calories = *u.Calories
	}
	if u.Fat != nil {
		log.Fat = *u.Fat
	}
	if u.Protein != nil {
		log.Protein = *u.Protein
	}
	if u.Carbs != nil {
		log.Carbs = *u.Carbs
	}
	if u.ServingSize != nil {
		log.ServingSize = *u.ServingSize
	}
}

// NutritionLogView exposes a nutrition entry.
type NutritionLogView struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Date        Date    `json:"date"`
	MealType    string  `json:"meal_type"`
	FoodName    string  `json:"food_name"`
	Calories    int     `json:"calories"`
	Fat         float64 `json:"fat"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	ServingSize string  `json:"serving_size"`
}

func toNutritionView(l domain.NutritionLog) NutritionLogView {
	return NutritionLogView{
		ID:          l.ID,
		UserID:      l.UserID,
		Date:        NewDate(l.Date),
		MealType:    l.MealType,
		FoodName:    l.FoodName,
		Calories:    l.Calories,
		Fat:         l.Fat,
		Protein:     l.Protein,
		Carbs:       l.Carbs,
		ServingSize: l.ServingSize,
	}
}

func toNutritionViews(logs []domain.NutritionLog) []NutritionLogView {
	views := make([]NutritionLogView, 0, len(logs))
	for _, l := range logs {
		views = append(views, toNutritionView(l))
	}
	return views
}

// NutritionSummaryView reports aggregated totals over an inclusive range.
type NutritionSummaryView struct {
	StartDate            Date    `json:"start_date"`
	EndDate              Date    `json:"end_date"`
	DaysInRange          int     `json:"days_in_range"`
	TotalEntries         int     `json:"total_entries"`
	TotalCalories        int     `json:"total_calories"`
	TotalFat             float64 `json:"total_fat"`
	TotalProtein         float64 `json:"total_protein"`
	TotalCarbs           float64 `json:"total_carbs"`
	DailyAverageCalories float64 `json:"daily_average_calories"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (h *Handler) createNutritionLog(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req NutritionLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	log, err := h.nutrition.Create(r.Context(), domain.NutritionLog{
		UserID:      user.ID,
		Date:        req.Date.Time,
		MealType:    req.MealType,
		FoodName:    req.FoodName,
		Calories:    req.Calories,
		Fat:         req.Fat,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		ServingSize: req.ServingSize,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNutritionView(log))
}

func (h *Handler) listNutritionLogs(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	filter := domain.NutritionFilter{
		MealType: r.URL.Query().Get("meal_type"),
		Page:     parsePage(r),
	}
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &d.Time
	}

	logs, err := h.nutrition.List(r.Context(), user.ID, filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNutritionViews(logs))
}

func (h *Handler) getNutritionLog(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid nutrition log id")
		return
	}

	log, err := h.nutrition.Get(r.Context(), user.ID, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if log == nil {
		writeDomainError(w, domain.ErrNutritionLogNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toNutritionView(*log))
}

func (h *Handler) updateNutritionLog(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid nutrition log id")
		return
	}

	var req NutritionLogUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	current, err := h.nutrition.Get(r.Context(), user.ID, id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if current == nil {
		writeDomainError(w, domain.ErrNutritionLogNotFound)
		return
	}

	req.apply(current)
	updated, err := h.nutrition.Update(r.Context(), *current)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNutritionView(updated))
}

func (h *Handler) deleteNutritionLog(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid nutrition log id")
		return
	}

	if err := h.nutrition.Delete(r.Context(), user.ID, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, "nutrition log deleted successfully")
}

func (h *Handler) listNutritionLogsByDate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	d, err := ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date, expected YYYY-MM-DD")
		return
	}

	logs, err := h.nutrition.List(r.Context(), user.ID, domain.NutritionFilter{Date: &d.Time})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toNutritionViews(logs))
}

func (h *Handler) deleteNutritionLogsByDate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}
	d, err := ParseDate(r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date, expected YYYY-MM-DD")
		return
	}

	count, err := h.nutrition.DeleteByDate(r.Context(), user.ID, d.Time)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, fmt.Sprintf("deleted %d nutrition logs", count))
}

// nutritionSummary aggregates totals over [start_date, end_date]. The range
// is inclusive on both ends, so a single day counts as one day.
func (h *Handler) nutritionSummary(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	start, err := ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid end_date, expected YYYY-MM-DD")
		return
	}
	if end.Before(start.Time) {
		writeError(w, http.StatusBadRequest, "invalid_request", "end_date must not precede start_date")
		return
	}

	summary, err := h.nutrition.Summarize(r.Context(), user.ID, start.Time, end.Time)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	days := int(end.Sub(start.Time)/(24*time.Hour)) + 1
	if days < 1 {
		days = 1
	}

	writeJSON(w, http.StatusOK, NutritionSummaryView{
		StartDate:            start,
		EndDate:              end,
		DaysInRange:          days,
		TotalEntries:         summary.TotalEntries,
		TotalCalories:        summary.TotalCalories,
		TotalFat:             round2(summary.TotalFat),
		TotalProtein:         round2(summary.TotalProtein),
		TotalCarbs:           round2(summary.TotalCarbs),
		DailyAverageCalories: round2(float64(summary.TotalCalories) / float64(days)),
	})
}
