package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/helpers"
	"github.com/devika/facultyhub/internal/pkg/validation"
)

// RecordService defines the interface for achievement submissions
type RecordService interface {
	SubmitConference(ctx context.Context, acting *models.Faculty, req *dto.CreateConferenceRequest) (*models.Conference, error)
	SubmitJournal(ctx context.Context, acting *models.Faculty, req *dto.CreateJournalRequest) (*models.Journal, error)
	SubmitPatent(ctx context.Context, acting *models.Faculty, req *dto.CreatePatentRequest) (*models.Patent, error)
	SubmitWorkshop(ctx context.Context, acting *models.Faculty, req *dto.CreateWorkshopRequest) (*models.Workshop, error)
	ListMySubmissions(ctx context.Context, acting *models.Faculty) (*dto.MySubmissionsResponse, error)
}

// recordServiceImpl implements RecordService
type recordServiceImpl struct {
	stores RecordStores
}

// NewRecordService creates a new RecordService
func NewRecordService(stores RecordStores) RecordService {
	return &recordServiceImpl{stores: stores}
}

// SubmitConference creates a conference record owned by the acting faculty.
// Ownership and the initial PENDING status are forced server-side.
func (s *recordServiceImpl) SubmitConference(ctx context.Context, acting *models.Faculty, req *dto.CreateConferenceRequest) (*models.Conference, error) {
	if !helpers.IsISODate(req.ConfDate) {
		return nil, apperrors.NewBadRequestError("confDate must be YYYY-MM-DD").WithField("confDate")
	}

	conference := &models.Conference{
		FacultyID:    acting.ID,
		PaperTitle:   req.PaperTitle,
		ConfName:     req.ConfName,
		ConfDate:     req.ConfDate,
		Type:         req.Type,
		Proceedings:  req.Proceedings,
		ProceedingFP: req.ProceedingFP,
		Status:       models.StatusPending,
	}

	id, err := s.stores.Conferences.Create(ctx, conference)
	if err != nil {
		return nil, fmt.Errorf("error creating conference: %w", err)
	}
	conference.ID = id

	return conference, nil
}

// SubmitJournal creates a journal record owned by the acting faculty
func (s *recordServiceImpl) SubmitJournal(ctx context.Context, acting *models.Faculty, req *dto.CreateJournalRequest) (*models.Journal, error) {
	if !helpers.IsISODate(req.PublishedOn) {
		return nil, apperrors.NewBadRequestError("monthAndYearOfPublication must be YYYY-MM-DD").WithField("monthAndYearOfPublication")
	}
	if !validation.IsValidISSN(req.ISSNNumber) {
		return nil, apperrors.NewBadRequestError("issnNumber must look like 2049-3630").WithField("issnNumber")
	}

	journal := &models.Journal{
		FacultyID:   acting.ID,
		PaperTitle:  req.PaperTitle,
		JournalName: req.JournalName,
		PublishedOn: req.PublishedOn,
		ISSNNumber:  req.ISSNNumber,
		IndexedIn:   req.IndexedIn,
		Link:        req.Link,
		UploadImage: req.UploadImage,
		Status:      models.StatusPending,
	}

	id, err := s.stores.Journals.Create(ctx, journal)
	if err != nil {
		return nil, fmt.Errorf("error creating journal: %w", err)
	}
	journal.ID = id

	return journal, nil
}

// SubmitPatent creates a patent record owned by the acting faculty
func (s *recordServiceImpl) SubmitPatent(ctx context.Context, acting *models.Faculty, req *dto.CreatePatentRequest) (*models.Patent, error) {
	if !helpers.IsISODate(req.PatentDate) {
		return nil, apperrors.NewBadRequestError("patentDate must be YYYY-MM-DD").WithField("patentDate")
	}

	patent := &models.Patent{
		FacultyID:     acting.ID,
		PatentName:    req.PatentName,
		PatentType:    req.PatentType,
		ApplicationNo: req.ApplicationNo,
		FilingStatus:  req.FilingStatus,
		PatentDate:    req.PatentDate,
		PatentLink:    req.PatentLink,
		Image:         req.Image,
		Status:        models.StatusPending,
	}

	id, err := s.stores.Patents.Create(ctx, patent)
	if err != nil {
		return nil, fmt.Errorf("error creating patent: %w", err)
	}
	patent.ID = id

	return patent, nil
}

// SubmitWorkshop creates a workshop record owned by the acting faculty
func (s *recordServiceImpl) SubmitWorkshop(ctx context.Context, acting *models.Faculty, req *dto.CreateWorkshopRequest) (*models.Workshop, error) {
	if !helpers.IsISODate(req.Date) {
		return nil, apperrors.NewBadRequestError("date must be YYYY-MM-DD").WithField("date")
	}

	workshop := &models.Workshop{
		FacultyID:    acting.ID,
		Title:        req.Title,
		OrganizedBy:  req.OrganizedBy,
		Date:         req.Date,
		Type:         req.Type,
		NumberOfDays: req.NumberOfDays,
		Status:       models.StatusPending,
	}

	id, err := s.stores.Workshops.Create(ctx, workshop)
	if err != nil {
		return nil, fmt.Errorf("error creating workshop: %w", err)
	}
	workshop.ID = id

	return workshop, nil
}

// ListMySubmissions fetches the acting faculty's records across all four
// categories concurrently
func (s *recordServiceImpl) ListMySubmissions(ctx context.Context, acting *models.Faculty) (*dto.MySubmissionsResponse, error) {
	response := &dto.MySubmissionsResponse{
		Conferences: []models.Conference{},
		Journals:    []models.Journal{},
		Patents:     []models.Patent{},
		Workshops:   []models.Workshop{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		conferences, err := s.stores.Conferences.ListByFaculty(gctx, acting.ID)
		if err != nil {
			return err
		}
		if conferences != nil {
			response.Conferences = conferences
		}
		return nil
	})
	g.Go(func() error {
		journals, err := s.stores.Journals.ListByFaculty(gctx, acting.ID)
		if err != nil {
			return err
		}
		if journals != nil {
			response.Journals = journals
		}
		return nil
	})
	g.Go(func() error {
		patents, err := s.stores.Patents.ListByFaculty(gctx, acting.ID)
		if err != nil {
			return err
		}
		if patents != nil {
			response.Patents = patents
		}
		return nil
	})
	g.Go(func() error {
		workshops, err := s.stores.Workshops.ListByFaculty(gctx, acting.ID)
		if err != nil {
			return err
		}
		if workshops != nil {
			response.Workshops = workshops
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}

	return response, nil
}
