package models

// Journal defines a journal publication record based on the 'journals' table
type Journal struct {
	ID          int64              `json:"id" db:"id"`
	FacultyID   string             `json:"facultyId" db:"faculty_id"`
	PaperTitle  string             `json:"paperTitle" db:"paper_title"`
	JournalName string             `json:"journalName" db:"journal_name"`
	PublishedOn string             `json:"monthAndYearOfPublication" db:"month_and_year_of_publication"` // YYYY-MM-DD
	ISSNNumber  string             `json:"issnNumber" db:"issn_number"`
	IndexedIn   string             `json:"indexedIn" db:"indexed_in"` // SCI, Scopus, UGC-CARE, ...
	Link        *string            `json:"link,omitempty" db:"link"`
	UploadImage *string            `json:"uploadImage,omitempty" db:"upload_image"`
	Status      VerificationStatus `json:"status" db:"is_verified"`
}

func (j Journal) RecordID() int64                       { return j.ID }
func (j Journal) OwnerID() string                       { return j.FacultyID }
func (j Journal) Kind() EntryType                       { return EntryJournal }
func (j Journal) VerificationState() VerificationStatus { return j.Status }
func (j Journal) TitleCandidates() []string             { return []string{j.PaperTitle} }
func (j Journal) DateValue() string                     { return j.PublishedOn }
