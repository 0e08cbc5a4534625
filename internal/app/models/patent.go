package models

// Patent defines a patent record based on the 'patents' table
type Patent struct {
	ID            int64              `json:"id" db:"id"`
	FacultyID     string             `json:"facultyId" db:"faculty_id"`
	PatentName    string             `json:"patentName" db:"patent_name"`
	PatentType    string             `json:"patentType" db:"patent_type"` // utility / design / process
	ApplicationNo string             `json:"applicationNo" db:"application_no"`
	FilingStatus  string             `json:"filingStatus" db:"status"` // filed / published / granted
	PatentDate    string             `json:"patentDate" db:"patent_date"` // YYYY-MM-DD
	PatentLink    *string            `json:"patentLink,omitempty" db:"patent_link"`
	Image         *string            `json:"image,omitempty" db:"image"`
	Status        VerificationStatus `json:"status" db:"is_verified"`
}

func (p Patent) RecordID() int64                       { return p.ID }
func (p Patent) OwnerID() string                       { return p.FacultyID }
func (p Patent) Kind() EntryType                       { return EntryPatent }
func (p Patent) VerificationState() VerificationStatus { return p.Status }
func (p Patent) TitleCandidates() []string             { return []string{p.PatentName} }
func (p Patent) DateValue() string                     { return p.PatentDate }
