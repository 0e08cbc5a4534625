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

// PatentRepository handles patent record database operations
type PatentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPatentRepository creates a new PatentRepository
func NewPatentRepository(db *pgxpool.Pool) *PatentRepository {
	return &PatentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var patentColumns = []string{
	"id", "faculty_id", "patent_name", "patent_type", "application_no",
	"status", "patent_date", "patent_link", "image", "is_verified",
}

func scanPatent(row pgx.Row) (*models.Patent, error) {
	var p models.Patent
	err := row.Scan(
		&p.ID, &p.FacultyID, &p.PatentName, &p.PatentType, &p.ApplicationNo,
		&p.FilingStatus, &p.PatentDate, &p.PatentLink, &p.Image, &p.Status,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Find retrieves patents owned by the given faculty within the date range
func (r *PatentRepository) Find(ctx context.Context, q RecordQuery) ([]models.Patent, error) {
	sqlQuery, args, err := r.sb.Select(patentColumns...).
		From("patents").
		Where(squirrel.Eq{"faculty_id": q.FacultyIDs}).
		Where(squirrel.GtOrEq{"patent_date": q.StartDate}).
		Where(squirrel.LtOrEq{"patent_date": q.EndDate}).
		OrderBy("patent_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find patents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying patents")
		return nil, fmt.Errorf("error querying patents: %w", err)
	}
	defer rows.Close()

	var patents []models.Patent
	for rows.Next() {
		p, err := scanPatent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patent row: %w", err)
		}
		patents = append(patents, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patent rows: %w", err)
	}

	return patents, nil
}

// ListByFaculty retrieves every patent owned by one faculty member
func (r *PatentRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.Patent, error) {
	return r.Find(ctx, RecordQuery{
		FacultyIDs: []string{facultyID},
		StartDate:  "0000-00-00",
		EndDate:    "9999-12-31",
	})
}

// GetByID retrieves a patent by its ID
func (r *PatentRepository) GetByID(ctx context.Context, id int64) (*models.Patent, error) {
	sqlQuery, args, err := r.sb.Select(patentColumns...).
		From("patents").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get patent query: %w", err)
	}

	patent, err := scanPatent(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Int64("patentID", id).Msg("Error querying patent by id")
		return nil, fmt.Errorf("error querying patent ID=%d: %w", id, err)
	}

	return patent, nil
}

// Create inserts a new patent record; review status always starts PENDING
func (r *PatentRepository) Create(ctx context.Context, patent *models.Patent) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("patents").
		Columns(
			"faculty_id", "patent_name", "patent_type", "application_no",
			"status", "patent_date", "patent_link", "image", "is_verified",
		).
		Values(
			patent.FacultyID, patent.PatentName, patent.PatentType, patent.ApplicationNo,
			patent.FilingStatus, patent.PatentDate, patent.PatentLink, patent.Image, models.StatusPending,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create patent query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error inserting patent")
		return 0, fmt.Errorf("error inserting patent: %w", err)
	}

	logger.Info().Int64("patentID", id).Str("facultyID", patent.FacultyID).Msg("Patent submitted")
	return id, nil
}

// UpdateStatus moves a pending patent to the given terminal status.
// Conditional on PENDING; a decided row yields ErrAlreadyDecided.
func (r *PatentRepository) UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Patent, error) {
	sqlQuery, args, err := r.sb.Update("patents").
		Set("is_verified", status).
		Where(squirrel.Eq{"id": id, "is_verified": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(patentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update patent status query: %w", err)
	}

	patent, err := scanPatent(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		logger.Error().Err(err).Int64("patentID", id).Msg("Error updating patent status")
		return nil, fmt.Errorf("error updating patent ID=%d: %w", id, err)
	}

	logger.Info().Int64("patentID", id).Str("status", string(status)).Msg("Patent status updated")
	return patent, nil
}

func (r *PatentRepository) classifyMissedUpdate(ctx context.Context, id int64) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status.IsTerminal() {
		return apperrors.ErrAlreadyDecided
	}
	return apperrors.ErrRecordNotFound
}
