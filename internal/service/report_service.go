package service

import (
	"log/slog"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/observability/metrics"
)

// ReportService manages moderation reports against listings and users
type ReportService struct {
	reports domain.ReportRepository
	logger  *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(reports domain.ReportRepository, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{reports: reports, logger: logger}
}

// Submit stores a new pending report. Either target may be empty; nothing
// requires at least one to be set.
func (s *ReportService) Submit(id, reporterID, targetListingID, targetUserID, reason, description string, attachments []domain.Attachment) (*domain.Report, error) {
	report := &domain.Report{
		ID:              id,
		Reason:          reason,
		Description:     description,
		Attachments:     attachments,
		Status:          domain.ReportPending,
		ReporterID:      reporterID,
		TargetListingID: targetListingID,
		TargetUserID:    targetUserID,
	}
	if err := s.reports.Save(report); err != nil {
		return nil, err
	}
	metrics.ObserveReport(string(domain.ReportPending))
	s.logger.Info("report submitted",
		slog.String("report_id", id),
		slog.String("reporter_id", reporterID),
		slog.String("reason", reason),
	)
	return report, nil
}

// UpdateStatus sets a report's status. A single free mutation: report
// moderation has no transition table.
func (s *ReportService) UpdateStatus(id string, status domain.ReportStatus) error {
	report, err := s.reports.GetByID(id)
	if err != nil {
		return err
	}
	report.Status = status
	if err := s.reports.Save(report); err != nil {
		return err
	}
	metrics.ObserveReport(string(status))
	s.logger.Info("report status updated",
		slog.String("report_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

// Get retrieves a report by id
func (s *ReportService) Get(id string) (*domain.Report, error) {
	return s.reports.GetByID(id)
}

// GetByStatus returns all reports in a given moderation state
func (s *ReportService) GetByStatus(status domain.ReportStatus) ([]*domain.Report, error) {
	return s.filter(func(r *domain.Report) bool { return r.Status == status })
}

// GetForListing returns all reports targeting a listing
func (s *ReportService) GetForListing(listingID string) ([]*domain.Report, error) {
	return s.filter(func(r *domain.Report) bool { return r.TargetListingID == listingID })
}

// GetForUser returns all reports targeting a user
func (s *ReportService) GetForUser(userID string) ([]*domain.Report, error) {
	return s.filter(func(r *domain.Report) bool { return r.TargetUserID == userID })
}

func (s *ReportService) filter(keep func(*domain.Report) bool) ([]*domain.Report, error) {
	all, err := s.reports.List()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Report, 0)
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}
