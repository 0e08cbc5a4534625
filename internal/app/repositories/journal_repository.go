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

// JournalRepository handles journal publication database operations
type JournalRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var journalColumns = []string{
	"id", "faculty_id", "paper_title", "journal_name", "month_and_year_of_publication",
	"issn_number", "indexed_in", "link", "upload_image", "is_verified",
}

func scanJournal(row pgx.Row) (*models.Journal, error) {
	var j models.Journal
	err := row.Scan(
		&j.ID, &j.FacultyID, &j.PaperTitle, &j.JournalName, &j.PublishedOn,
		&j.ISSNNumber, &j.IndexedIn, &j.Link, &j.UploadImage, &j.Status,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Find retrieves journals owned by the given faculty within the date range
func (r *JournalRepository) Find(ctx context.Context, q RecordQuery) ([]models.Journal, error) {
	sqlQuery, args, err := r.sb.Select(journalColumns...).
		From("journals").
		Where(squirrel.Eq{"faculty_id": q.FacultyIDs}).
		Where(squirrel.GtOrEq{"month_and_year_of_publication": q.StartDate}).
		Where(squirrel.LtOrEq{"month_and_year_of_publication": q.EndDate}).
		OrderBy("month_and_year_of_publication DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find journals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying journals")
		return nil, fmt.Errorf("error querying journals: %w", err)
	}
	defer rows.Close()

	var journals []models.Journal
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, *j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	return journals, nil
}

// ListByFaculty retrieves every journal owned by one faculty member
func (r *JournalRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.Journal, error) {
	return r.Find(ctx, RecordQuery{
		FacultyIDs: []string{facultyID},
		StartDate:  "0000-00-00",
		EndDate:    "9999-12-31",
	})
}

// GetByID retrieves a journal by its ID
func (r *JournalRepository) GetByID(ctx context.Context, id int64) (*models.Journal, error) {
	sqlQuery, args, err := r.sb.Select(journalColumns...).
		From("journals").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get journal query: %w", err)
	}

	journal, err := scanJournal(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Int64("journalID", id).Msg("Error querying journal by id")
		return nil, fmt.Errorf("error querying journal ID=%d: %w", id, err)
	}

	return journal, nil
}

// Create inserts a new journal record; review status always starts PENDING
func (r *JournalRepository) Create(ctx context.Context, journal *models.Journal) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("journals").
		Columns(
			"faculty_id", "paper_title", "journal_name", "month_and_year_of_publication",
			"issn_number", "indexed_in", "link", "upload_image", "is_verified",
		).
		Values(
			journal.FacultyID, journal.PaperTitle, journal.JournalName, journal.PublishedOn,
			journal.ISSNNumber, journal.IndexedIn, journal.Link, journal.UploadImage, models.StatusPending,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create journal query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error inserting journal")
		return 0, fmt.Errorf("error inserting journal: %w", err)
	}

	logger.Info().Int64("journalID", id).Str("facultyID", journal.FacultyID).Msg("Journal submitted")
	return id, nil
}

// UpdateStatus moves a pending journal to the given terminal status.
// Conditional on PENDING; a decided row yields ErrAlreadyDecided.
func (r *JournalRepository) UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Journal, error) {
	sqlQuery, args, err := r.sb.Update("journals").
		Set("is_verified", status).
		Where(squirrel.Eq{"id": id, "is_verified": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(journalColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update journal status query: %w", err)
	}

	journal, err := scanJournal(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		logger.Error().Err(err).Int64("journalID", id).Msg("Error updating journal status")
		return nil, fmt.Errorf("error updating journal ID=%d: %w", id, err)
	}

	logger.Info().Int64("journalID", id).Str("status", string(status)).Msg("Journal status updated")
	return journal, nil
}

func (r *JournalRepository) classifyMissedUpdate(ctx context.Context, id int64) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status.IsTerminal() {
		return apperrors.ErrAlreadyDecided
	}
	return apperrors.ErrRecordNotFound
}
