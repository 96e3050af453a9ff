package domain

// Attachment is a file reference carried by reports and agreements
type Attachment struct {
	ID       string
	Filename string
	URL      string
	Type     string
}

// ReportStatus is the moderation state of a report. Unlike the other
// lifecycles there is no transition table: status is a single free mutation.
type ReportStatus string

const (
	ReportPending       ReportStatus = "pending"
	ReportInvestigating ReportStatus = "investigating"
	ReportApproved      ReportStatus = "approved"
	ReportRejected      ReportStatus = "rejected"
)

// Report is a moderation report against a listing or a user. Nothing
// prevents a report that references neither.
type Report struct {
	ID              string
	Reason          string
	Description     string
	Attachments     []Attachment
	Status          ReportStatus
	ReporterID      string
	TargetListingID string // optional
	TargetUserID    string // optional
}

// ReportRepository defines data access for reports
type ReportRepository interface {
	Save(report *Report) error
	GetByID(id string) (*Report, error)
	List() ([]*Report, error)
}
