package services

import (
	"strings"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/helpers"
)

// FilterTypeAll selects the union of all four categories
const FilterTypeAll = "all"

// ReportFilter is the fixed predicate set shared by the reports page and the
// approvals queue. Every predicate is ANDed; an empty value matches
// everything on that dimension.
type ReportFilter struct {
	StartDate  string
	EndDate    string
	FilterType string // all | Conferences | Journals | Patents | Workshops
	Title      string
	Status     models.VerificationStatus
	FacultyID  string
	Department string // honored for editors only; ignored for hods
}

// ApplyDefaults fills the date range bounds when unspecified
func (f *ReportFilter) ApplyDefaults() {
	if f.StartDate == "" {
		f.StartDate = helpers.ReportRangeStart
	}
	if f.EndDate == "" {
		f.EndDate = helpers.Today()
	}
	if f.FilterType == "" {
		f.FilterType = FilterTypeAll
	}
}

// Validate rejects malformed filter values before any store is queried
func (f *ReportFilter) Validate() error {
	if f.StartDate != "" && !helpers.IsISODate(f.StartDate) {
		return apperrors.NewBadRequestError("startDate must be YYYY-MM-DD").WithField("startDate")
	}
	if f.EndDate != "" && !helpers.IsISODate(f.EndDate) {
		return apperrors.NewBadRequestError("endDate must be YYYY-MM-DD").WithField("endDate")
	}
	if f.Status != "" {
		switch f.Status {
		case models.StatusPending, models.StatusApproved, models.StatusRejected:
		default:
			return apperrors.NewBadRequestError("unknown status value").WithField("status")
		}
	}
	if _, err := f.Categories(); err != nil {
		return err
	}
	return nil
}

// Categories resolves the filterType selector into the category set to query
func (f *ReportFilter) Categories() ([]models.EntryType, error) {
	if f.FilterType == "" || strings.EqualFold(f.FilterType, FilterTypeAll) {
		return models.AllEntryTypes, nil
	}
	entryType, ok := models.ParseEntryType(f.FilterType)
	if !ok {
		return nil, apperrors.NewBadRequestError("unknown filterType value").WithField("filterType")
	}
	return []models.EntryType{entryType}, nil
}

// Matches applies the per-record predicates: inclusive date range,
// case-insensitive title substring over the category's title-like fields,
// exact status and exact owner. Pure function of its inputs.
func (f *ReportFilter) Matches(record models.AcademicRecord) bool {
	if f.StartDate != "" && record.DateValue() < f.StartDate {
		return false
	}
	if f.EndDate != "" && record.DateValue() > f.EndDate {
		return false
	}

	if f.Title != "" {
		needle := strings.ToLower(f.Title)
		found := false
		for _, candidate := range record.TitleCandidates() {
			if strings.Contains(strings.ToLower(candidate), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Status != "" && record.VerificationState() != f.Status {
		return false
	}

	if f.FacultyID != "" && record.OwnerID() != f.FacultyID {
		return false
	}

	return true
}
