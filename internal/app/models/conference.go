package models

// Conference defines a conference paper record based on the 'conferences' table
type Conference struct {
	ID           int64              `json:"id" db:"id"`
	FacultyID    string             `json:"facultyId" db:"faculty_id"`
	PaperTitle   string             `json:"paperTitle" db:"paper_title"`
	ConfName     string             `json:"confName" db:"conf_name"`
	ConfDate     string             `json:"confDate" db:"conf_date"` // YYYY-MM-DD
	Type         string             `json:"type" db:"type"`          // national / international
	Proceedings  bool               `json:"proceedings" db:"proceedings"`
	ProceedingFP *string            `json:"proceedingFp,omitempty" db:"proceeding_fp"` // Proceedings front page reference (nullable)
	Status       VerificationStatus `json:"status" db:"is_verified"`
}

func (c Conference) RecordID() int64                       { return c.ID }
func (c Conference) OwnerID() string                       { return c.FacultyID }
func (c Conference) Kind() EntryType                       { return EntryConference }
func (c Conference) VerificationState() VerificationStatus { return c.Status }
func (c Conference) TitleCandidates() []string             { return []string{c.PaperTitle} }
func (c Conference) DateValue() string                     { return c.ConfDate }
