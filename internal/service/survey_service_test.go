package service

import (
	"errors"
	"testing"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestSurveyLifecycle(t *testing.T) {
	s := NewSurveyService(repository.NewMemorySurveyRepository(), nil)

	survey, err := s.Create("srv-1", "move-in survey", []string{"smoking?", "pets?"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if survey.Active {
		t.Fatal("new survey should be inactive")
	}

	if err := s.Activate("srv-1"); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if _, err := s.SubmitResponse("srv-1", "resp-1", "student-1", map[string]string{"smoking?": "no"}); err != nil {
		t.Fatalf("submit response failed: %v", err)
	}
	if _, err := s.SubmitResponse("srv-1", "resp-2", "student-2", map[string]string{"smoking?": "yes"}); err != nil {
		t.Fatalf("submit response failed: %v", err)
	}

	responses, err := s.GetResponses("srv-1")
	if err != nil {
		t.Fatalf("get responses failed: %v", err)
	}
	if len(responses) != 2 || responses[0].StudentID != "student-1" {
		t.Fatalf("unexpected responses: %+v", responses)
	}

	if err := s.Deactivate("srv-1"); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	if _, err := s.SubmitResponse("missing", "resp-x", "student-1", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompatibilityIdenticalPreferences(t *testing.T) {
	s := NewSurveyService(repository.NewMemorySurveyRepository(), nil)
	prefs := domain.Preferences{
		Smoking:        false,
		PetsAllowed:    true,
		SleepSchedule:  "early",
		Cleanliness:    4,
		StudyHabit:     3,
		SocialActivity: 2,
	}

	c := s.Compatibility("cmp-1", prefs, prefs)
	if c.Score != 1 {
		t.Fatalf("expected perfect score, got %v", c.Score)
	}
}

func TestCompatibilityPartialMatch(t *testing.T) {
	s := NewSurveyService(repository.NewMemorySurveyRepository(), nil)
	a := domain.Preferences{Smoking: false, PetsAllowed: true, SleepSchedule: "early", Cleanliness: 5, StudyHabit: 0, SocialActivity: 0}
	b := domain.Preferences{Smoking: true, PetsAllowed: true, SleepSchedule: "late", Cleanliness: 0, StudyHabit: 0, SocialActivity: 0}

	c := s.Compatibility("cmp-1", a, b)
	if c.Score <= 0 || c.Score >= 1 {
		t.Fatalf("expected score strictly between 0 and 1, got %v", c.Score)
	}
	// smoking mismatch scores 0, cleanliness differs by the full scale
	if c.Details["smoking"] != 0 || c.Details["cleanliness"] != 0 {
		t.Fatalf("unexpected details: %v", c.Details)
	}
	if c.Details["pets"] != 1 {
		t.Fatalf("expected pets to match, got %v", c.Details["pets"])
	}
}
