// internal/handlers/auth.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
)

// AuthHandler handles account creation and signin
type AuthHandler struct {
	auth   *services.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With(slog.String("handler", "auth")),
	}
}

// SignUp handles POST /api/v1/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.SignUp(ctx, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			h.respondError(w, http.StatusBadRequest, "Email is already registered")
		case errors.Is(err, domain.ErrStoreNotFound):
			h.respondError(w, http.StatusNotFound, "Store not found")
		case isValidationError(err):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.ErrorContext(ctx, "signup failed",
				slog.String("error", err.Error()))
			h.respondError(w, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Account created successfully",
		"user":    user,
	})
}

// SignIn handles POST /api/v1/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SigninRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.ErrorContext(ctx, "signin failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Signed in successfully",
		"token":   token,
		"user":    user,
	})
}

// Helper methods

func (h *AuthHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *AuthHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// SignupRequest represents the request body for account creation
type SignupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	CustomerName string `json:"customerName,omitempty"`
	StoreName    string `json:"storeName,omitempty"`
	Location     string `json:"location,omitempty"`
	Phone1       string `json:"phone1,omitempty"`
	Phone2       string `json:"phone2,omitempty"`
}

// Validate validates the signup request
func (r *SignupRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.Role == "" {
		return fmt.Errorf("role is required")
	}
	return nil
}

// ToInput converts the request to a service input
func (r *SignupRequest) ToInput() services.SignupInput {
	return services.SignupInput{
		Email:        r.Email,
		Password:     r.Password,
		Role:         r.Role,
		CustomerName: r.CustomerName,
		StoreName:    r.StoreName,
		Location:     r.Location,
		Phone1:       r.Phone1,
		Phone2:       r.Phone2,
	}
}

// SigninRequest represents the request body for signin
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the signin request
func (r *SigninRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
