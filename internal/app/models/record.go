package models

// AcademicRecord is the closed set of the four category record shapes.
// Each variant exposes its identity, owner, review status and the fields a
// display projection draws from, so callers dispatch over this interface
// instead of probing category-specific fields.
type AcademicRecord interface {
	RecordID() int64
	OwnerID() string
	Kind() EntryType
	VerificationState() VerificationStatus
	// TitleCandidates returns the title-like fields in display priority order.
	TitleCandidates() []string
	// DateValue returns the category's date field, ISO formatted where the
	// category stores a full date.
	DateValue() string
}
