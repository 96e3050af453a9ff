package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/security/auth"
	"github.com/yourorg/unihaven/internal/security/middleware"
	"github.com/yourorg/unihaven/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  *service.AuthService
	tokenManager *auth.TokenManager
	sessionTTL   time.Duration
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, tm *auth.TokenManager, sessionTTL time.Duration, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if sessionTTL <= 0 {
		sessionTTL = service.DefaultSessionTTL
	}

	return &AuthHandler{
		authService:  authService,
		tokenManager: tm,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and session metadata
type LoginResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"sessionId"`
	AccountID string    `json:"accountId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode register request",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.ID == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "id, username, email, and password are required")
		return
	}

	role := domain.Role(req.Role)
	switch role {
	case domain.RoleResident, domain.RoleProvider, domain.RoleModerator:
	case "":
		role = domain.RoleResident
	default:
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	account, err := h.authService.Register(req.ID, req.Username, req.Email, req.Password, role)
	if err != nil {
		h.logger.Info("registration failed",
			slog.String("username", req.Username),
			slog.String("error", err.Error()),
		)
		writeServiceError(w, err)
		return
	}

	h.logger.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       account.ID,
		"username": account.Username,
		"role":     string(account.Role),
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	session, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := h.tokenManager.GenerateToken(session.ID, session.AccountID, "", h.sessionTTL)
	if err != nil {
		h.logger.Error("failed to sign token", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		SessionID: session.ID,
		AccountID: session.AccountID,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.authService.Logout(claims.SessionID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccountFromContext(r.Context())
	if account == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       account.ID,
		"username": account.Username,
		"email":    account.Email,
		"role":     string(account.Role),
		"loggedIn": account.LoggedIn,
	})
}

// ProfileRequest carries the resident profile completion payload
type ProfileRequest struct {
	AccountID     string `json:"accountId"`
	DegreeProgram string `json:"degreeProgram"`
}

// CompleteProfile handles POST /api/auth/profile
func (h *AuthHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.AccountID == "" {
		writeError(w, http.StatusBadRequest, "accountId is required")
		return
	}

	if err := h.authService.CompleteProfile(req.AccountID, req.DegreeProgram); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

// PreferencesRequest carries a resident's co-living preferences
type PreferencesRequest struct {
	AccountID      string `json:"accountId"`
	Smoking        bool   `json:"smoking"`
	Cleanliness    int    `json:"cleanliness"`
	SleepSchedule  string `json:"sleepSchedule"`
	StudyHabit     int    `json:"studyHabit"`
	SocialActivity int    `json:"socialActivity"`
	PetsAllowed    bool   `json:"petsAllowed"`
}

// UpdatePreferences handles PUT /api/auth/preferences
func (h *AuthHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.AccountID == "" {
		writeError(w, http.StatusBadRequest, "accountId is required")
		return
	}

	prefs := domain.Preferences{
		Smoking:        req.Smoking,
		Cleanliness:    req.Cleanliness,
		SleepSchedule:  req.SleepSchedule,
		StudyHabit:     req.StudyHabit,
		SocialActivity: req.SocialActivity,
		PetsAllowed:    req.PetsAllowed,
	}
	if err := h.authService.UpdatePreferences(req.AccountID, prefs); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "preferences updated"})
}
