package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/logger"
)

// WorkshopRepository handles workshop record database operations
type WorkshopRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWorkshopRepository creates a new WorkshopRepository
func NewWorkshopRepository(db *pgxpool.Pool) *WorkshopRepository {
	return &WorkshopRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var workshopColumns = []string{
	"id", "faculty_id", "title", "organized_by", "date",
	"type", "number_of_days", "is_verified",
}

func scanWorkshop(row pgx.Row) (*models.Workshop, error) {
	var w models.Workshop
	err := row.Scan(
		&w.ID, &w.FacultyID, &w.Title, &w.OrganizedBy, &w.Date,
		&w.Type, &w.NumberOfDays, &w.Status,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Find retrieves workshops owned by the given faculty within the date range
func (r *WorkshopRepository) Find(ctx context.Context, q RecordQuery) ([]models.Workshop, error) {
	sqlQuery, args, err := r.sb.Select(workshopColumns...).
		From("workshops").
		Where(squirrel.Eq{"faculty_id": q.FacultyIDs}).
		Where(squirrel.GtOrEq{"date": q.StartDate}).
		Where(squirrel.LtOrEq{"date": q.EndDate}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find workshops query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying workshops")
		return nil, fmt.Errorf("error querying workshops: %w", err)
	}
	defer rows.Close()

	var workshops []models.Workshop
	for rows.Next() {
		w, err := scanWorkshop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workshop row: %w", err)
		}
		workshops = append(workshops, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workshop rows: %w", err)
	}

	return workshops, nil
}

// ListByFaculty retrieves every workshop owned by one faculty member
func (r *WorkshopRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.Workshop, error) {
	return r.Find(ctx, RecordQuery{
		FacultyIDs: []string{facultyID},
		StartDate:  "0000-00-00",
		EndDate:    "9999-12-31",
	})
}

// GetByID retrieves a workshop by its ID
func (r *WorkshopRepository) GetByID(ctx context.Context, id int64) (*models.Workshop, error) {
	sqlQuery, args, err := r.sb.Select(workshopColumns...).
		From("workshops").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get workshop query: %w", err)
	}

	workshop, err := scanWorkshop(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Int64("workshopID", id).Msg("Error querying workshop by id")
		return nil, fmt.Errorf("error querying workshop ID=%d: %w", id, err)
	}

	return workshop, nil
}

// Create inserts a new workshop record; review status always starts PENDING
func (r *WorkshopRepository) Create(ctx context.Context, workshop *models.Workshop) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("workshops").
		Columns("faculty_id", "title", "organized_by", "date", "type", "number_of_days", "is_verified").
		Values(
			workshop.FacultyID, workshop.Title, workshop.OrganizedBy, workshop.Date,
			workshop.Type, workshop.NumberOfDays, models.StatusPending,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create workshop query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error inserting workshop")
		return 0, fmt.Errorf("error inserting workshop: %w", err)
	}

	logger.Info().Int64("workshopID", id).Str("facultyID", workshop.FacultyID).Msg("Workshop submitted")
	return id, nil
}

// UpdateStatus moves a pending workshop to the given terminal status.
// Conditional on PENDING; a decided row yields ErrAlreadyDecided.
func (r *WorkshopRepository) UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Workshop, error) {
	sqlQuery, args, err := r.sb.Update("workshops").
		Set("is_verified", status).
		Where(squirrel.Eq{"id": id, "is_verified": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(workshopColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update workshop status query: %w", err)
	}

	workshop, err := scanWorkshop(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		logger.Error().Err(err).Int64("workshopID", id).Msg("Error updating workshop status")
		return nil, fmt.Errorf("error updating workshop ID=%d: %w", id, err)
	}

	logger.Info().Int64("workshopID", id).Str("status", string(status)).Msg("Workshop status updated")
	return workshop, nil
}

func (r *WorkshopRepository) classifyMissedUpdate(ctx context.Context, id int64) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status.IsTerminal() {
		return apperrors.ErrAlreadyDecided
	}
	return apperrors.ErrRecordNotFound
}
