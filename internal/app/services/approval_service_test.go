package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
)

func TestDecideApprovesPendingRecord(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	decided, err := svc.Decide(context.Background(), &csHOD, dto.DecisionRequest{
		EntryType: "Conference", ID: 1, Action: dto.ActionApprove,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, decided.VerificationState())

	stored, err := stores.conferences.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, stored.Status)
}

func TestDecideRejectsPendingRecord(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	decided, err := svc.Decide(context.Background(), &csHOD, dto.DecisionRequest{
		EntryType: "journals", ID: 1, Action: dto.ActionReject,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, decided.VerificationState())
	require.Equal(t, models.EntryJournal, decided.Kind())
}

func TestDecideAlreadyDecidedConflicts(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	req := dto.DecisionRequest{EntryType: "Workshop", ID: 1, Action: dto.ActionApprove}
	_, err := svc.Decide(context.Background(), &csHOD, req)
	require.NoError(t, err)

	// A second decision, even the same one, must surface the conflict
	_, err = svc.Decide(context.Background(), &csHOD, req)
	require.ErrorIs(t, err, apperrors.ErrAlreadyDecided)

	req.Action = dto.ActionReject
	_, err = svc.Decide(context.Background(), &csHOD, req)
	require.ErrorIs(t, err, apperrors.ErrAlreadyDecided)
}

func TestDecideUnknownEntryType(t *testing.T) {
	stores := newFakeStores()
	svc := NewApprovalService(newScopeResolver(csHOD), stores.bundle())

	_, err := svc.Decide(context.Background(), &csHOD, dto.DecisionRequest{
		EntryType: "Grants", ID: 1, Action: dto.ActionApprove,
	})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDecideMissingRecord(t *testing.T) {
	stores := newFakeStores()
	svc := NewApprovalService(newScopeResolver(csHOD, csMember), stores.bundle())

	_, err := svc.Decide(context.Background(), &csHOD, dto.DecisionRequest{
		EntryType: "Patent", ID: 404, Action: dto.ActionApprove,
	})
	require.ErrorIs(t, err, apperrors.ErrRecordNotFound)
}

func TestDecideCrossDepartmentAnswersNotFound(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csHOD, csMember, csMember2, ecMember), stores.bundle())

	// Patent 1 belongs to Electronics; the CS hod gets the same answer as
	// for an id that does not exist at all
	_, err := svc.Decide(context.Background(), &csHOD, dto.DecisionRequest{
		EntryType: "Patent", ID: 1, Action: dto.ActionApprove,
	})
	require.ErrorIs(t, err, apperrors.ErrRecordNotFound)

	_, missingErr := svc.Decide(context.Background(), &csHOD, dto.DecisionRequest{
		EntryType: "Patent", ID: 404, Action: dto.ActionApprove,
	})
	require.ErrorIs(t, missingErr, apperrors.ErrRecordNotFound)

	stored, err := stores.patents.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, stored.Status)
}

func TestDecideEditorCrossesDepartments(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(editor, csMember, ecMember), stores.bundle())

	_, err := svc.Decide(context.Background(), &editor, dto.DecisionRequest{
		EntryType: "Patent", ID: 1, Action: dto.ActionApprove,
	})
	require.NoError(t, err)
}

func TestDecidePlainFacultyForbidden(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csMember, csMember2), stores.bundle())

	// Existing and nonexistent ids answer identically: the role gate runs
	// before any record is fetched
	_, err := svc.Decide(context.Background(), &csMember, dto.DecisionRequest{
		EntryType: "Conference", ID: 1, Action: dto.ActionApprove,
	})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.Decide(context.Background(), &csMember, dto.DecisionRequest{
		EntryType: "Patent", ID: 404, Action: dto.ActionApprove,
	})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestBulkDecideBestEffort(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	result := svc.BulkDecide(context.Background(), &csHOD, dto.BulkDecisionRequest{
		Decisions: []dto.DecisionRequest{
			{EntryType: "Conference", ID: 1, Action: dto.ActionApprove},
			{EntryType: "Journal", ID: 1, Action: dto.ActionReject},
			{EntryType: "Workshop", ID: 99, Action: dto.ActionApprove}, // missing
			{EntryType: "Grants", ID: 1, Action: dto.ActionApprove},   // unknown type
		},
	})

	require.Equal(t, 2, result.Success)
	require.Equal(t, 2, result.Failed)
	require.Len(t, result.Failures, 2)

	// Successful decisions stuck despite the failures
	conference, err := stores.conferences.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, conference.Status)

	journal, err := stores.journals.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, journal.Status)
}

func TestBulkDecideDuplicateEntriesOneWins(t *testing.T) {
	stores := newFakeStores()
	seedRecords(t, stores)
	svc := NewApprovalService(newScopeResolver(csHOD, csMember, csMember2), stores.bundle())

	result := svc.BulkDecide(context.Background(), &csHOD, dto.BulkDecisionRequest{
		Decisions: []dto.DecisionRequest{
			{EntryType: "Conference", ID: 1, Action: dto.ActionApprove},
			{EntryType: "Conference", ID: 1, Action: dto.ActionReject},
		},
	})

	// Exactly one of the racing decisions lands; the other conflicts
	require.Equal(t, 1, result.Success)
	require.Equal(t, 1, result.Failed)

	stored, err := stores.conferences.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, stored.Status.IsTerminal())
}
