package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/app/repositories"
	"github.com/devika/facultyhub/internal/pkg/logger"
)

// ReportService defines the interface for aggregated report queries
type ReportService interface {
	BuildReport(ctx context.Context, acting *models.Faculty, filter ReportFilter) (*dto.ReportData, error)
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	scopes ScopeResolver
	stores RecordStores
}

// NewReportService creates a new ReportService
func NewReportService(scopes ScopeResolver, stores RecordStores) ReportService {
	return &reportServiceImpl{
		scopes: scopes,
		stores: stores,
	}
}

// BuildReport answers a filtered report query scoped to what the acting user
// may see. The selected category stores are queried concurrently; any single
// store failure fails the whole report rather than under-reporting.
func (s *reportServiceImpl) BuildReport(ctx context.Context, acting *models.Faculty, filter ReportFilter) (*dto.ReportData, error) {
	filter.ApplyDefaults()
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	categories, err := filter.Categories()
	if err != nil {
		return nil, err
	}

	scope, err := s.scopes.ResolveScope(ctx, acting, filter.Department)
	if err != nil {
		return nil, err
	}

	report := &dto.ReportData{
		FullData: []models.AcademicRecord{},
		DispData: []dto.DisplayRecord{},
	}
	if scope.IsEmpty() {
		return report, nil
	}

	query := repositories.RecordQuery{
		FacultyIDs: scope.FacultyIDs(),
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
	}

	// One result slot per selected category keeps the fan-in allocation-free
	// of locks; the group context cancels all in-flight queries on failure.
	results := make([][]models.AcademicRecord, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			records, err := s.fetchCategory(gctx, category, query)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Str("department", scope.Department).Msg("Report fan-out failed")
		return nil, fmt.Errorf("report query failed: %w", err)
	}

	for _, records := range results {
		for _, record := range records {
			if !filter.Matches(record) {
				continue
			}
			report.FullData = append(report.FullData, record)
		}
	}

	// Stable date-descending order for a deterministic report
	sort.SliceStable(report.FullData, func(i, j int) bool {
		return report.FullData[i].DateValue() > report.FullData[j].DateValue()
	})

	for _, record := range report.FullData {
		report.DispData = append(report.DispData, Normalize(record, scope.Members))
	}

	logger.Debug().
		Int("records", len(report.FullData)).
		Str("department", scope.Department).
		Str("filterType", filter.FilterType).
		Msg("Report assembled")

	return report, nil
}

// fetchCategory runs one category store query and tags the results
func (s *reportServiceImpl) fetchCategory(ctx context.Context, category models.EntryType, query repositories.RecordQuery) ([]models.AcademicRecord, error) {
	switch category {
	case models.EntryConference:
		conferences, err := s.stores.Conferences.Find(ctx, query)
		if err != nil {
			return nil, err
		}
		records := make([]models.AcademicRecord, 0, len(conferences))
		for _, c := range conferences {
			records = append(records, c)
		}
		return records, nil
	case models.EntryJournal:
		journals, err := s.stores.Journals.Find(ctx, query)
		if err != nil {
			return nil, err
		}
		records := make([]models.AcademicRecord, 0, len(journals))
		for _, j := range journals {
			records = append(records, j)
		}
		return records, nil
	case models.EntryPatent:
		patents, err := s.stores.Patents.Find(ctx, query)
		if err != nil {
			return nil, err
		}
		records := make([]models.AcademicRecord, 0, len(patents))
		for _, p := range patents {
			records = append(records, p)
		}
		return records, nil
	case models.EntryWorkshop:
		workshops, err := s.stores.Workshops.Find(ctx, query)
		if err != nil {
			return nil, err
		}
		records := make([]models.AcademicRecord, 0, len(workshops))
		for _, w := range workshops {
			records = append(records, w)
		}
		return records, nil
	}
	return nil, fmt.Errorf("unknown category %q", category)
}
