package models

// Workshop defines a workshop/FDP record based on the 'workshops' table
type Workshop struct {
	ID           int64              `json:"id" db:"id"`
	FacultyID    string             `json:"facultyId" db:"faculty_id"`
	Title        string             `json:"title" db:"title"`
	OrganizedBy  string             `json:"organizedBy" db:"organized_by"`
	Date         string             `json:"date" db:"date"` // YYYY-MM-DD
	Type         string             `json:"type" db:"type"` // attended / conducted
	NumberOfDays int                `json:"numberOfDays" db:"number_of_days"`
	Status       VerificationStatus `json:"status" db:"is_verified"`
}

func (w Workshop) RecordID() int64                       { return w.ID }
func (w Workshop) OwnerID() string                       { return w.FacultyID }
func (w Workshop) Kind() EntryType                       { return EntryWorkshop }
func (w Workshop) VerificationState() VerificationStatus { return w.Status }
func (w Workshop) TitleCandidates() []string             { return []string{w.Title} }
func (w Workshop) DateValue() string                     { return w.Date }
