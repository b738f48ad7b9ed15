package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"example.com/fittrack/internal/auth"
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/session"
)

// RegisterRequest is the payload for POST /auth/register. Profile fields
// are optional.
type RegisterRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Age               int    `json:"age"`
	Weight            int    `json:"weight"`
	Height            int    `json:"height"`
	FitnessGoals      string `json:"fitness_goals"`
	MedicalConditions string `json:"medical_conditions"`
	ActivityLevel     string `json:"activity_level"`
}

// Validate ensures request correctness. Password is an opaque string; no
// format constraints apply to it.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errRequired("name")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errRequired("email")
	}
	if r.Password == "" {
		return errRequired("password")
	}
	return nil
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView exposes a user record without the password column.
type UserView struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Age               int    `json:"age"`
	Weight            int    `json:"weight"`
	Height            int    `json:"height"`
	FitnessGoals      string `json:"fitness_goals"`
	MedicalConditions string `json:"medical_conditions"`
	ActivityLevel     string `json:"activity_level"`
	CreatedAt         string `json:"created_at"`
}

func toUserView(u domain.User) UserView {
	return UserView{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Age:               u.Age,
		Weight:            u.Weight,
		Height:            u.Height,
		FitnessGoals:      u.FitnessGoals,
		MedicalConditions: u.MedicalConditions,
		ActivityLevel:     u.ActivityLevel,
		CreatedAt:         u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

type registerResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	user, err := h.auth.Register(r.Context(), auth.RegisterInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Age:               req.Age,
		Weight:            req.Weight,
		Height:            req.Height,
		FitnessGoals:      req.FitnessGoals,
		MedicalConditions: req.MedicalConditions,
		ActivityLevel:     req.ActivityLevel,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, registerResponse{
		Message: "user registered successfully",
		User:    toUserView(user),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	user, sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	session.SetCookie(w, sess, h.sessionTTL, h.cookieOpts)
	writeJSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		UserID:  user.ID,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			writeDomainError(w, err)
			return
		}
	}
	session.ClearCookie(w, h.cookieOpts)
	writeMessage(w, "logged out successfully")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing session")
		return
	}
	writeJSON(w, http.StatusOK, toUserView(*user))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if user == nil {
		writeDomainError(w, domain.ErrUserNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toUserView(*user))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, "user deleted successfully")
}
