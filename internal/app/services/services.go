package services

import (
	"context"

	"github.com/devika/facultyhub/internal/app/auth"
	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/repositories"
)

// Store interfaces declared on the consumer side so tests can substitute
// fakes; the pgx repositories are the production implementations.

// ConferenceStore is the conference table boundary
type ConferenceStore interface {
	Find(ctx context.Context, q repositories.RecordQuery) ([]models.Conference, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.Conference, error)
	GetByID(ctx context.Context, id int64) (*models.Conference, error)
	Create(ctx context.Context, conference *models.Conference) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Conference, error)
}

// JournalStore is the journal table boundary
type JournalStore interface {
	Find(ctx context.Context, q repositories.RecordQuery) ([]models.Journal, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.Journal, error)
	GetByID(ctx context.Context, id int64) (*models.Journal, error)
	Create(ctx context.Context, journal *models.Journal) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Journal, error)
}

// PatentStore is the patent table boundary
type PatentStore interface {
	Find(ctx context.Context, q repositories.RecordQuery) ([]models.Patent, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.Patent, error)
	GetByID(ctx context.Context, id int64) (*models.Patent, error)
	Create(ctx context.Context, patent *models.Patent) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Patent, error)
}

// WorkshopStore is the workshop table boundary
type WorkshopStore interface {
	Find(ctx context.Context, q repositories.RecordQuery) ([]models.Workshop, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.Workshop, error)
	GetByID(ctx context.Context, id int64) (*models.Workshop, error)
	Create(ctx context.Context, workshop *models.Workshop) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Workshop, error)
}

// RecordStores bundles the four category stores wired into the report and
// approval paths
type RecordStores struct {
	Conferences ConferenceStore
	Journals    JournalStore
	Patents     PatentStore
	Workshops   WorkshopStore
}

// ScopeResolver is the authorization decision boundary
type ScopeResolver interface {
	ResolveScope(ctx context.Context, acting *models.Faculty, requestedDepartment string) (*auth.Scope, error)
	RequireReviewer(acting *models.Faculty) error
	CanDecideOn(ctx context.Context, acting *models.Faculty, ownerFacultyID string) error
}
