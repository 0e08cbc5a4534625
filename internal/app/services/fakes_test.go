package services

import (
	"context"
	"sync"

	"github.com/devika/facultyhub/internal/app/auth"
	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/repositories"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests. Each fake honours the
// same contract as the pgx repositories: conditional status updates fail
// with ErrAlreadyDecided once a record is terminal, and missing ids fail
// with ErrRecordNotFound.

func matchesQuery(facultyID, date string, q repositories.RecordQuery) bool {
	inScope := false
	for _, id := range q.FacultyIDs {
		if id == facultyID {
			inScope = true
			break
		}
	}
	if !inScope {
		return false
	}
	if q.StartDate != "" && date < q.StartDate {
		return false
	}
	if q.EndDate != "" && date > q.EndDate {
		return false
	}
	return true
}

type fakeConferenceStore struct {
	mu      sync.Mutex
	records map[int64]models.Conference
	nextID  int64
	findErr error
	finds   int
}

func newFakeConferenceStore() *fakeConferenceStore {
	return &fakeConferenceStore{records: make(map[int64]models.Conference), nextID: 1}
}

func (s *fakeConferenceStore) Find(_ context.Context, q repositories.RecordQuery) ([]models.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Conference
	for _, r := range s.records {
		if matchesQuery(r.FacultyID, r.ConfDate, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeConferenceStore) ListByFaculty(_ context.Context, facultyID string) ([]models.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Conference
	for _, r := range s.records {
		if r.FacultyID == facultyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeConferenceStore) GetByID(_ context.Context, id int64) (*models.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &r, nil
}

func (s *fakeConferenceStore) Create(_ context.Context, conference *models.Conference) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	stored := *conference
	stored.ID = id
	stored.Status = models.StatusPending
	s.records[id] = stored
	return id, nil
}

func (s *fakeConferenceStore) UpdateStatus(_ context.Context, id int64, status models.VerificationStatus) (*models.Conference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	if r.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyDecided
	}
	r.Status = status
	s.records[id] = r
	return &r, nil
}

type fakeJournalStore struct {
	mu      sync.Mutex
	records map[int64]models.Journal
	nextID  int64
	findErr error
	finds   int
}

func newFakeJournalStore() *fakeJournalStore {
	return &fakeJournalStore{records: make(map[int64]models.Journal), nextID: 1}
}

func (s *fakeJournalStore) Find(_ context.Context, q repositories.RecordQuery) ([]models.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Journal
	for _, r := range s.records {
		if matchesQuery(r.FacultyID, r.PublishedOn, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeJournalStore) ListByFaculty(_ context.Context, facultyID string) ([]models.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Journal
	for _, r := range s.records {
		if r.FacultyID == facultyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeJournalStore) GetByID(_ context.Context, id int64) (*models.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &r, nil
}

func (s *fakeJournalStore) Create(_ context.Context, journal *models.Journal) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	stored := *journal
	stored.ID = id
	stored.Status = models.StatusPending
	s.records[id] = stored
	return id, nil
}

func (s *fakeJournalStore) UpdateStatus(_ context.Context, id int64, status models.VerificationStatus) (*models.Journal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	if r.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyDecided
	}
	r.Status = status
	s.records[id] = r
	return &r, nil
}

type fakePatentStore struct {
	mu      sync.Mutex
	records map[int64]models.Patent
	nextID  int64
	findErr error
	finds   int
}

func newFakePatentStore() *fakePatentStore {
	return &fakePatentStore{records: make(map[int64]models.Patent), nextID: 1}
}

func (s *fakePatentStore) Find(_ context.Context, q repositories.RecordQuery) ([]models.Patent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Patent
	for _, r := range s.records {
		if matchesQuery(r.FacultyID, r.PatentDate, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakePatentStore) ListByFaculty(_ context.Context, facultyID string) ([]models.Patent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Patent
	for _, r := range s.records {
		if r.FacultyID == facultyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakePatentStore) GetByID(_ context.Context, id int64) (*models.Patent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &r, nil
}

func (s *fakePatentStore) Create(_ context.Context, patent *models.Patent) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	stored := *patent
	stored.ID = id
	stored.Status = models.StatusPending
	s.records[id] = stored
	return id, nil
}

func (s *fakePatentStore) UpdateStatus(_ context.Context, id int64, status models.VerificationStatus) (*models.Patent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	if r.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyDecided
	}
	r.Status = status
	s.records[id] = r
	return &r, nil
}

type fakeWorkshopStore struct {
	mu      sync.Mutex
	records map[int64]models.Workshop
	nextID  int64
	findErr error
	finds   int
}

func newFakeWorkshopStore() *fakeWorkshopStore {
	return &fakeWorkshopStore{records: make(map[int64]models.Workshop), nextID: 1}
}

func (s *fakeWorkshopStore) Find(_ context.Context, q repositories.RecordQuery) ([]models.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Workshop
	for _, r := range s.records {
		if matchesQuery(r.FacultyID, r.Date, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeWorkshopStore) ListByFaculty(_ context.Context, facultyID string) ([]models.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.Workshop
	for _, r := range s.records {
		if r.FacultyID == facultyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeWorkshopStore) GetByID(_ context.Context, id int64) (*models.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return &r, nil
}

func (s *fakeWorkshopStore) Create(_ context.Context, workshop *models.Workshop) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	stored := *workshop
	stored.ID = id
	stored.Status = models.StatusPending
	s.records[id] = stored
	return id, nil
}

func (s *fakeWorkshopStore) UpdateStatus(_ context.Context, id int64, status models.VerificationStatus) (*models.Workshop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	if r.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyDecided
	}
	r.Status = status
	s.records[id] = r
	return &r, nil
}

// fakeStores bundles fresh fakes for one test
type fakeStores struct {
	conferences *fakeConferenceStore
	journals    *fakeJournalStore
	patents     *fakePatentStore
	workshops   *fakeWorkshopStore
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		conferences: newFakeConferenceStore(),
		journals:    newFakeJournalStore(),
		patents:     newFakePatentStore(),
		workshops:   newFakeWorkshopStore(),
	}
}

func (f *fakeStores) bundle() RecordStores {
	return RecordStores{
		Conferences: f.conferences,
		Journals:    f.journals,
		Patents:     f.patents,
		Workshops:   f.workshops,
	}
}

// fakeDirectory backs the real AuthorizationService in service tests
type fakeDirectory struct {
	faculty []models.Faculty
	listErr error
}

func (d *fakeDirectory) ListByDepartment(_ context.Context, department string) ([]models.Faculty, error) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	var out []models.Faculty
	for _, f := range d.faculty {
		if f.Department == department {
			out = append(out, f)
		}
	}
	return out, nil
}

func (d *fakeDirectory) GetByID(_ context.Context, facultyID string) (*models.Faculty, error) {
	for _, f := range d.faculty {
		if f.ID == facultyID {
			return &f, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func newScopeResolver(faculty ...models.Faculty) ScopeResolver {
	return auth.NewAuthorizationService(&fakeDirectory{faculty: faculty})
}
