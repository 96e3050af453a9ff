package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/service"
)

// SurveyHandler handles roommate-matching survey endpoints
type SurveyHandler struct {
	surveyService *service.SurveyService
	authService   *service.AuthService
	logger        *slog.Logger
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveyService *service.SurveyService, authService *service.AuthService, logger *slog.Logger) *SurveyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SurveyHandler{
		surveyService: surveyService,
		authService:   authService,
		logger:        logger,
	}
}

// CreateSurveyRequest represents a new survey payload
type CreateSurveyRequest struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Questions []string `json:"questions"`
}

// Create handles POST /api/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "id and title are required")
		return
	}

	survey, err := h.surveyService.Create(req.ID, req.Title, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, survey)
}

// SetActive handles POST /api/surveys/{id}/{action} for activate and deactivate
func (h *SurveyHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	action := r.PathValue("action")

	var err error
	switch action {
	case "activate":
		err = h.surveyService.Activate(id)
	case "deactivate":
		err = h.surveyService.Deactivate(id)
	default:
		writeError(w, http.StatusBadRequest, "action must be activate or deactivate")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": action + "d"})
}

// SubmitResponseRequest represents a survey response payload
type SubmitResponseRequest struct {
	ID        string            `json:"id"`
	StudentID string            `json:"studentId"`
	Answers   map[string]string `json:"answers"`
}

// SubmitResponse handles POST /api/surveys/{id}/responses
func (h *SurveyHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.StudentID == "" {
		writeError(w, http.StatusBadRequest, "id and studentId are required")
		return
	}

	response, err := h.surveyService.SubmitResponse(r.PathValue("id"), req.ID, req.StudentID, req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

// Responses handles GET /api/surveys/{id}/responses
func (h *SurveyHandler) Responses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.surveyService.GetResponses(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, responses)
}

// CompatibilityRequest names the two residents to score
type CompatibilityRequest struct {
	ID         string `json:"id"`
	AccountIDA string `json:"accountIdA"`
	AccountIDB string `json:"accountIdB"`
}

// Compatibility handles POST /api/compatibility. Both accounts must carry a
// resident profile.
func (h *SurveyHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.AccountIDA == "" || req.AccountIDB == "" {
		writeError(w, http.StatusBadRequest, "accountIdA and accountIdB are required")
		return
	}

	prefsA, err := h.residentPreferences(req.AccountIDA)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	prefsB, err := h.residentPreferences(req.AccountIDB)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.surveyService.Compatibility(req.ID, *prefsA, *prefsB))
}

func (h *SurveyHandler) residentPreferences(accountID string) (*domain.Preferences, error) {
	account, err := h.authService.Account(accountID)
	if err != nil {
		return nil, err
	}
	if account.Resident == nil {
		return nil, domain.ErrNotFound
	}
	return &account.Resident.Preferences, nil
}
