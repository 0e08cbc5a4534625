package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repository instances
type Repositories struct {
	FacultyRepository    *FacultyRepository
	ConferenceRepository *ConferenceRepository
	JournalRepository    *JournalRepository
	PatentRepository     *PatentRepository
	WorkshopRepository   *WorkshopRepository
}

// RecordQuery bounds a category read to a set of owners and a date range.
// FacultyIDs must be non-empty; callers short-circuit empty scopes before
// reaching the store. Dates are inclusive ISO YYYY-MM-DD bounds.
type RecordQuery struct {
	FacultyIDs []string
	StartDate  string
	EndDate    string
}

// joinColumns renders a column list for RETURNING suffixes
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:    NewFacultyRepository(db),
		ConferenceRepository: NewConferenceRepository(db),
		JournalRepository:    NewJournalRepository(db),
		PatentRepository:     NewPatentRepository(db),
		WorkshopRepository:   NewWorkshopRepository(db),
	}
}
