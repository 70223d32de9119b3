package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"hrmetrics/internal/auth"
	"hrmetrics/internal/transport/http/api"
	"hrmetrics/internal/transport/http/middleware"
)

// UserLookup is the store dependency; the pgx store satisfies it.
type UserLookup interface {
	UserByEmail(ctx context.Context, email string) (id, passwordHash, role string, err error)
}

type Handler struct {
	Users    UserLookup
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(users UserLookup, secret string, ttl time.Duration) *Handler {
	return &Handler{Users: users, Secret: secret, TokenTTL: ttl}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresInSeconds"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", requestID)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "email and password are required", requestID)
		return
	}

	userID, passwordHash, role, err := h.Users.UserByEmail(r.Context(), req.Email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", requestID)
		return
	}
	if err := auth.CheckPassword(passwordHash, req.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", requestID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{UserID: userID, Email: req.Email, Role: role}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "token generation failed", requestID)
		return
	}

	api.Success(w, loginResponse{Token: token, ExpiresIn: int64(h.TokenTTL.Seconds())}, requestID)
}
