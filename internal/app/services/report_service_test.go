package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
)

var (
	csHOD     = models.Faculty{ID: "CS-001", Name: "Meera Nair", Department: "Computer Science", Role: models.RoleHOD}
	csMember  = models.Faculty{ID: "CS-104", Name: "Asha Verma", Department: "Computer Science", Role: models.RoleFaculty}
	csMember2 = models.Faculty{ID: "CS-117", Name: "Rohan Iyer", Department: "Computer Science", Role: models.RoleFaculty}
	ecMember  = models.Faculty{ID: "EC-052", Name: "Priya Menon", Department: "Electronics", Role: models.RoleFaculty}
	editor    = models.Faculty{ID: "ADM-001", Name: "Devika Shetty", Department: "Administration", Role: models.RoleEditor}
)

func seedRecords(t *testing.T, stores *fakeStores) {
	t.Helper()
	ctx := context.Background()

	_, err := stores.conferences.Create(ctx, &models.Conference{
		FacultyID: "CS-104", PaperTitle: "Adaptive Query Scheduling", ConfName: "SIGMOD", ConfDate: "2024-11-02", Type: "international",
	})
	require.NoError(t, err)

	_, err = stores.journals.Create(ctx, &models.Journal{
		FacultyID: "CS-117", PaperTitle: "Streaming Joins at Scale", JournalName: "VLDB Journal",
		PublishedOn: "2024-06-01", ISSNNumber: "2049-3630", IndexedIn: "Scopus",
	})
	require.NoError(t, err)

	_, err = stores.workshops.Create(ctx, &models.Workshop{
		FacultyID: "CS-104", Title: "Go Concurrency Bootcamp", OrganizedBy: "ACM", Date: "2024-01-10", Type: "conducted", NumberOfDays: 3,
	})
	require.NoError(t, err)

	// Another department; must never leak into a CS-scoped report
	_, err = stores.patents.Create(ctx, &models.Patent{
		FacultyID: "EC-052", PatentName: "Low-power ADC", PatentType: "utility", ApplicationNo: "IN2024/77",
		FilingStatus: "filed", PatentDate: "2024-05-20",
	})
	require.NoError(t, err)
}

func TestBuildReportScopesToOwnDepartment(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewReportService(newScopeResolver(csHOD, csMember, csMember2, ecMember), stores.bundle())

	// The hod's client-supplied department is ignored
	report, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{Department: "Electronics"})
	require.NoError(t, err)
	require.Len(t, report.FullData, 3)
	require.Len(t, report.DispData, 3)

	for _, row := range report.DispData {
		require.NotEqual(t, "EC-052", row.FacultyID)
	}
}

func TestBuildReportOrdersByDateDescending(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewReportService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	report, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{})
	require.NoError(t, err)
	require.Len(t, report.FullData, 3)

	for i := 1; i < len(report.FullData); i++ {
		require.GreaterOrEqual(t, report.FullData[i-1].DateValue(), report.FullData[i].DateValue())
	}
	require.Equal(t, "2024-11-02", report.FullData[0].DateValue())
}

func TestBuildReportEnrichesDisplayNames(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewReportService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	report, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{FilterType: "Conferences"})
	require.NoError(t, err)
	require.Len(t, report.DispData, 1)
	require.Equal(t, "Asha Verma", report.DispData[0].FacultyName)
	require.Equal(t, models.EntryConference, report.DispData[0].EntryType)
}

func TestBuildReportSingleCategorySkipsOtherStores(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewReportService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	_, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{FilterType: "Journals"})
	require.NoError(t, err)

	require.Equal(t, 1, stores.journals.finds)
	require.Zero(t, stores.conferences.finds)
	require.Zero(t, stores.patents.finds)
	require.Zero(t, stores.workshops.finds)
}

func TestBuildReportAppliesFilters(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewReportService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	report, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{
		Title:     "scheduling",
		Status:    models.StatusPending,
		FacultyID: "CS-104",
	})
	require.NoError(t, err)
	require.Len(t, report.FullData, 1)
	require.Equal(t, "Adaptive Query Scheduling", report.DispData[0].Title)

	report, err = svc.BuildReport(context.Background(), &csHOD, ReportFilter{
		StartDate: "2024-05-01",
		EndDate:   "2024-07-01",
	})
	require.NoError(t, err)
	require.Len(t, report.FullData, 1)
	require.Equal(t, models.EntryJournal, report.DispData[0].EntryType)
}

func TestBuildReportEditorRequiresDepartment(t *testing.T) {
	stores := newFakeStores()
	svc := NewReportService(newScopeResolver(editor, csMember), stores.bundle())

	_, err := svc.BuildReport(context.Background(), &editor, ReportFilter{})
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	// Naming a department unlocks the cross-department view
	seedRecords(t, stores)
	report, err := svc.BuildReport(context.Background(), &editor, ReportFilter{Department: "Computer Science"})
	require.NoError(t, err)
	require.Len(t, report.FullData, 2)
}

func TestBuildReportPlainFacultyForbidden(t *testing.T) {
	stores := newFakeStores()
	svc := NewReportService(newScopeResolver(csMember), stores.bundle())

	_, err := svc.BuildReport(context.Background(), &csMember, ReportFilter{})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestBuildReportEmptyScopeShortCircuits(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	// A hod whose department has no directory entries at all; the directory
	// only knows other departments
	loneHOD := models.Faculty{ID: "ME-001", Department: "Mechanical", Role: models.RoleHOD}
	svc := NewReportService(newScopeResolver(csHOD, csMember), stores.bundle())

	report, err := svc.BuildReport(context.Background(), &loneHOD, ReportFilter{})
	require.NoError(t, err)
	require.NotNil(t, report.FullData)
	require.NotNil(t, report.DispData)
	require.Empty(t, report.FullData)

	// No store should have been touched
	require.Zero(t, stores.conferences.finds)
}

func TestBuildReportStoreFailureFailsWhole(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	stores.patents.findErr = errors.New("connection reset")
	svc := NewReportService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	_, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "report query failed")
}

func TestBuildReportRejectsInvalidFilter(t *testing.T) {
	stores := newFakeStores()
	svc := NewReportService(newScopeResolver(csHOD), stores.bundle())

	_, err := svc.BuildReport(context.Background(), &csHOD, ReportFilter{StartDate: "yesterday"})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}
