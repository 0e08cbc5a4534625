package services

import (
	"context"
	"sync"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/models/dto"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/logger"
)

// ApprovalService defines the interface for approval decisions
type ApprovalService interface {
	Decide(ctx context.Context, acting *models.Faculty, req dto.DecisionRequest) (models.AcademicRecord, error)
	BulkDecide(ctx context.Context, acting *models.Faculty, req dto.BulkDecisionRequest) *dto.BulkDecisionResult
}

// approvalServiceImpl implements ApprovalService
type approvalServiceImpl struct {
	scopes ScopeResolver
	stores RecordStores
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(scopes ScopeResolver, stores RecordStores) ApprovalService {
	return &approvalServiceImpl{
		scopes: scopes,
		stores: stores,
	}
}

// Decide executes a single PENDING→APPROVED or PENDING→REJECTED transition.
// The role gate runs before the record is fetched, so callers without a
// reviewing role learn nothing about which ids exist. Authorization then
// runs against the owner's real department; the status write is conditional
// on the row still being PENDING, so a lost race surfaces as
// ErrAlreadyDecided.
func (s *approvalServiceImpl) Decide(ctx context.Context, acting *models.Faculty, req dto.DecisionRequest) (models.AcademicRecord, error) {
	entryType, ok := models.ParseEntryType(req.EntryType)
	if !ok {
		return nil, apperrors.NewBadRequestError("unknown entry type").WithField("entry_type")
	}

	if err := s.scopes.RequireReviewer(acting); err != nil {
		return nil, err
	}

	var status models.VerificationStatus
	switch req.Action {
	case dto.ActionApprove:
		status = models.StatusApproved
	case dto.ActionReject:
		status = models.StatusRejected
	default:
		return nil, apperrors.NewBadRequestError("action must be approve or reject").WithField("action")
	}

	record, err := s.getRecord(ctx, entryType, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.scopes.CanDecideOn(ctx, acting, record.OwnerID()); err != nil {
		return nil, err
	}

	decided, err := s.updateStatus(ctx, entryType, req.ID, status)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("entryType", string(entryType)).
		Int64("id", req.ID).
		Str("action", string(req.Action)).
		Str("decidedBy", acting.ID).
		Msg("Approval decision recorded")

	return decided, nil
}

// BulkDecide fans out independent decisions and aggregates a best-effort
// summary. No transaction spans the batch: a failed entry leaves the others
// decided, and callers retry only the failed subset.
func (s *approvalServiceImpl) BulkDecide(ctx context.Context, acting *models.Faculty, req dto.BulkDecisionRequest) *dto.BulkDecisionResult {
	errs := make([]error, len(req.Decisions))

	var wg sync.WaitGroup
	for i, decision := range req.Decisions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Decide(ctx, acting, decision)
			errs[i] = err
		}()
	}
	wg.Wait()

	result := &dto.BulkDecisionResult{}
	for i, err := range errs {
		if err == nil {
			result.Success++
			continue
		}
		result.Failed++
		result.Failures = append(result.Failures, dto.DecisionFailure{
			EntryType: req.Decisions[i].EntryType,
			ID:        req.Decisions[i].ID,
			Error:     err.Error(),
		})
	}

	logger.Info().
		Int("success", result.Success).
		Int("failed", result.Failed).
		Str("decidedBy", acting.ID).
		Msg("Bulk decision completed")

	return result
}

func (s *approvalServiceImpl) getRecord(ctx context.Context, entryType models.EntryType, id int64) (models.AcademicRecord, error) {
	switch entryType {
	case models.EntryConference:
		record, err := s.stores.Conferences.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return *record, nil
	case models.EntryJournal:
		record, err := s.stores.Journals.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return *record, nil
	case models.EntryPatent:
		record, err := s.stores.Patents.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return *record, nil
	case models.EntryWorkshop:
		record, err := s.stores.Workshops.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return *record, nil
	}
	return nil, apperrors.ErrUnknownEntryType
}

func (s *approvalServiceImpl) updateStatus(ctx context.Context, entryType models.EntryType, id int64, status models.VerificationStatus) (models.AcademicRecord, error) {
	switch entryType {
	case models.EntryConference:
		record, err := s.stores.Conferences.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		return *record, nil
	case models.EntryJournal:
		record, err := s.stores.Journals.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		return *record, nil
	case models.EntryPatent:
		record, err := s.stores.Patents.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		return *record, nil
	case models.EntryWorkshop:
		record, err := s.stores.Workshops.UpdateStatus(ctx, id, status)
		if err != nil {
			return nil, err
		}
		return *record, nil
	}
	return nil, apperrors.ErrUnknownEntryType
}
