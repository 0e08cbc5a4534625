package auth

import (
	"context"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/logger"
)

// FacultyDirectory is the directory read used for scope resolution
type FacultyDirectory interface {
	ListByDepartment(ctx context.Context, department string) ([]models.Faculty, error)
	GetByID(ctx context.Context, facultyID string) (*models.Faculty, error)
}

// Scope is the set of faculty a reviewer may view and decide on. It is
// computed fresh for every request and never cached.
type Scope struct {
	Role       models.FacultyRole
	Department string
	// Members maps allowed faculty_id to display name so report assembly
	// can enrich records without a second directory query.
	Members map[string]string
}

// Allows reports whether the given faculty is inside the scope
func (s *Scope) Allows(facultyID string) bool {
	_, ok := s.Members[facultyID]
	return ok
}

// IsEmpty reports whether the scoped department has no faculty
func (s *Scope) IsEmpty() bool {
	return len(s.Members) == 0
}

// FacultyIDs returns the allowed ids for store queries
func (s *Scope) FacultyIDs() []string {
	ids := make([]string, 0, len(s.Members))
	for id := range s.Members {
		ids = append(ids, id)
	}
	return ids
}

// AuthorizationService resolves review scopes from the acting identity
type AuthorizationService struct {
	directory FacultyDirectory
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(directory FacultyDirectory) *AuthorizationService {
	return &AuthorizationService{directory: directory}
}

// ResolveScope computes the department scope for the acting user.
//
// Plain faculty cannot view aggregated data. HODs are pinned to their own
// department; a client-supplied department is ignored for them. Editors are
// cross-department but must name the department they are reviewing.
func (s *AuthorizationService) ResolveScope(ctx context.Context, acting *models.Faculty, requestedDepartment string) (*Scope, error) {
	var department string

	switch acting.Role {
	case models.RoleHOD:
		department = acting.Department
	case models.RoleEditor:
		if requestedDepartment == "" {
			return nil, apperrors.NewBadRequestError("department is required for editors").WithField("department")
		}
		department = requestedDepartment
	default:
		return nil, apperrors.NewForbiddenError("only heads of department and editors may view aggregated records")
	}

	members, err := s.directory.ListByDepartment(ctx, department)
	if err != nil {
		logger.Error().Err(err).Str("department", department).Msg("Error resolving scope members")
		return nil, err
	}

	scope := &Scope{
		Role:       acting.Role,
		Department: department,
		Members:    make(map[string]string, len(members)),
	}
	for _, m := range members {
		scope.Members[m.ID] = m.Name
	}

	return scope, nil
}

// RequireReviewer rejects callers without a reviewing role. It needs no
// record, so callers run it before fetching anything; a plain-faculty
// caller gets the same answer whether the target id exists or not.
func (s *AuthorizationService) RequireReviewer(acting *models.Faculty) error {
	if acting.Role != models.RoleHOD && acting.Role != models.RoleEditor {
		return apperrors.NewForbiddenError("only heads of department and editors may decide on records")
	}
	return nil
}

// CanDecideOn checks a single decision against the acting user's role and
// department. Editors may decide on any record; HODs only on records owned
// by their own department. The owner's department is re-read from the
// directory, never taken from the request. A record outside the hod's
// department answers as not found so probing ids across departments cannot
// confirm they exist.
func (s *AuthorizationService) CanDecideOn(ctx context.Context, acting *models.Faculty, ownerFacultyID string) error {
	if err := s.RequireReviewer(acting); err != nil {
		return err
	}

	if acting.Role == models.RoleEditor {
		return nil
	}

	owner, err := s.directory.GetByID(ctx, ownerFacultyID)
	if err != nil {
		return err
	}

	if owner.Department != acting.Department {
		return apperrors.ErrRecordNotFound
	}

	return nil
}
