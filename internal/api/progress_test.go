package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestProgressRequiresSession(t *testing.T) {
	fx := newFixture()

	rr := doJSON(t, fx, http.MethodGet, "/workouts/progress", nil, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}

	rr = doJSON(t, fx, http.MethodPost, "/workouts/progress", map[string]interface{}{
		"workout_plan_id": 1,
		"exercise_id":     1,
		"date":            "2025-03-01",
	}, nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestLogProgressChecksReferences(t *testing.T) {
	fx := newFixture()
	cookie := registerAndLogin(t, fx, "alice@example.com")

	rr := doJSON(t, fx, http.MethodPost, "/workouts/progress", map[string]interface{}{
		"workout_plan_id": 99,
		"exercise_id":     99,
		"date":            "2025-03-01",
	}, cookie)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", rr.Code, rr.Body.String())
	}
	if len(fx.progress.entries) != 0 {
		t.Fatalf("expected no progress rows, got %d", len(fx.progress.entries))
	}
}

func TestProgressLifecycle(t *testing.T) {
	fx := newFixture()
	cookie := registerAndLogin(t, fx, "alice@example.com")
	plan := seedPlan(t, fx, "Strength", "beginner")
	squat := seedExercise(t, fx, "Squat", "strength", "beginner")

	rr := doJSON(t, fx, http.MethodPost, "/workouts/progress", map[string]interface{}{
		"workout_plan_id": plan.ID,
		"exercise_id":     squat.ID,
		"date":            "2025-03-01",
		"sets":            3,
		"reps":            5,
		"weights":         100,
		"notes":           "felt strong",
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("log failed: %d %s", rr.Code, rr.Body.String())
	}
	var entry ProgressView
	if err := json.Unmarshal(rr.Body.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if entry.UserID == 0 {
		t.Fatal("expected user id from the session")
	}

	rr = doJSON(t, fx, http.MethodPut, fmt.Sprintf("/workouts/progress/%d", entry.ID), map[string]interface{}{
		"workout_plan_id": plan.ID,
		"exercise_id":     squat.ID,
		"date":            "2025-03-01",
		"sets":            5,
		"reps":            5,
		"weights":         105,
	}, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, fx, http.MethodGet, "/workouts/progress", nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("list failed: %d", rr.Code)
	}
	var views []ProgressView
	if err := json.Unmarshal(rr.Body.Bytes(), &views); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(views) != 1 || views[0].Weights != 105 {
		t.Fatalf("unexpected progress list: %+v", views)
	}

	rr = doJSON(t, fx, http.MethodDelete, fmt.Sprintf("/workouts/progress/%d", entry.ID), nil, cookie)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete failed: %d", rr.Code)
	}
}

func TestProgressScopedToOwner(t *testing.T) {
	fx := newFixture()
	alice := registerAndLogin(t, fx, "alice@example.com")
	bob := registerAndLogin(t, fx, "bob@example.com")
	plan := seedPlan(t, fx, "Strength", "beginner")
	squat := seedExercise(t, fx, "Squat", "strength", "beginner")

	rr := doJSON(t, fx, http.MethodPost, "/workouts/progress", map[string]interface{}{
		"workout_plan_id": plan.ID,
		"exercise_id":     squat.ID,
		"date":            "2025-03-01",
	}, alice)
	if rr.Code != http.StatusOK {
		t.Fatalf("log failed: %d %s", rr.Code, rr.Body.String())
	}
	var entry ProgressView
	if err := json.Unmarshal(rr.Body.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rr = doJSON(t, fx, http.MethodGet, fmt.Sprintf("/workouts/progress/%d", entry.ID), nil, bob)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's entry got %d", rr.Code)
	}

	rr = doJSON(t, fx, http.MethodDelete, fmt.Sprintf("/workouts/progress/%d", entry.ID), nil, bob)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's delete got %d", rr.Code)
	}
}
