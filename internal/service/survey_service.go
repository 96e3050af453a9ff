package service

import (
	"log/slog"
	"math"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
)

// SurveyService manages roommate-matching surveys and compatibility scoring
type SurveyService struct {
	surveys domain.SurveyRepository
	logger  *slog.Logger
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveys domain.SurveyRepository, logger *slog.Logger) *SurveyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SurveyService{surveys: surveys, logger: logger}
}

// Create stores a new inactive survey
func (s *SurveyService) Create(id, title string, questions []string) (*domain.Survey, error) {
	survey := &domain.Survey{ID: id, Title: title, Questions: questions}
	if err := s.surveys.Save(survey); err != nil {
		return nil, err
	}
	s.logger.Info("survey created", slog.String("survey_id", id))
	return survey, nil
}

// Activate opens a survey for responses
func (s *SurveyService) Activate(id string) error {
	return s.setActive(id, true)
}

// Deactivate closes a survey
func (s *SurveyService) Deactivate(id string) error {
	return s.setActive(id, false)
}

// SubmitResponse records a student's answers against a survey
func (s *SurveyService) SubmitResponse(surveyID, responseID, studentID string, answers map[string]string) (*domain.SurveyResponse, error) {
	response := &domain.SurveyResponse{
		ID:          responseID,
		SurveyID:    surveyID,
		StudentID:   studentID,
		Answers:     answers,
		SubmittedAt: time.Now(),
	}
	if err := s.surveys.AppendResponse(surveyID, response); err != nil {
		return nil, err
	}
	s.logger.Debug("survey response submitted",
		slog.String("survey_id", surveyID),
		slog.String("student_id", studentID),
	)
	return response, nil
}

// GetResponses returns all responses for a survey in submission order
func (s *SurveyService) GetResponses(surveyID string) ([]*domain.SurveyResponse, error) {
	return s.surveys.Responses(surveyID)
}

// Compatibility scores two residents' preference sets. Boolean dimensions
// score 1 on agreement; scaled dimensions decay with distance on the 0-5
// scale.
func (s *SurveyService) Compatibility(id string, a, b domain.Preferences) *domain.Compatibility {
	c := &domain.Compatibility{
		ID: id,
		Details: map[string]float64{
			"smoking":         boolMatch(a.Smoking, b.Smoking),
			"pets":            boolMatch(a.PetsAllowed, b.PetsAllowed),
			"sleep_schedule":  boolMatch(a.SleepSchedule == b.SleepSchedule, true),
			"cleanliness":     scaleMatch(a.Cleanliness, b.Cleanliness),
			"study_habit":     scaleMatch(a.StudyHabit, b.StudyHabit),
			"social_activity": scaleMatch(a.SocialActivity, b.SocialActivity),
		},
	}
	c.Calculate()
	return c
}

func (s *SurveyService) setActive(id string, active bool) error {
	survey, err := s.surveys.GetByID(id)
	if err != nil {
		return err
	}
	survey.Active = active
	if err := s.surveys.Save(survey); err != nil {
		return err
	}
	s.logger.Info("survey active flag set",
		slog.String("survey_id", id),
		slog.Bool("active", active),
	)
	return nil
}

func boolMatch(a, b bool) float64 {
	if a == b {
		return 1
	}
	return 0
}

func scaleMatch(a, b int) float64 {
	diff := math.Abs(float64(a - b))
	if diff > 5 {
		diff = 5
	}
	return 1 - diff/5
}
