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

// ConferenceRepository handles conference record database operations
type ConferenceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewConferenceRepository creates a new ConferenceRepository
func NewConferenceRepository(db *pgxpool.Pool) *ConferenceRepository {
	return &ConferenceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var conferenceColumns = []string{
	"id", "faculty_id", "paper_title", "conf_name", "conf_date",
	"type", "proceedings", "proceeding_fp", "is_verified",
}

func scanConference(row pgx.Row) (*models.Conference, error) {
	var c models.Conference
	err := row.Scan(
		&c.ID, &c.FacultyID, &c.PaperTitle, &c.ConfName, &c.ConfDate,
		&c.Type, &c.Proceedings, &c.ProceedingFP, &c.Status,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Find retrieves conferences owned by the given faculty within the date range
func (r *ConferenceRepository) Find(ctx context.Context, q RecordQuery) ([]models.Conference, error) {
	sqlQuery, args, err := r.sb.Select(conferenceColumns...).
		From("conferences").
		Where(squirrel.Eq{"faculty_id": q.FacultyIDs}).
		Where(squirrel.GtOrEq{"conf_date": q.StartDate}).
		Where(squirrel.LtOrEq{"conf_date": q.EndDate}).
		OrderBy("conf_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find conferences query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying conferences")
		return nil, fmt.Errorf("error querying conferences: %w", err)
	}
	defer rows.Close()

	var conferences []models.Conference
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conference row: %w", err)
		}
		conferences = append(conferences, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conference rows: %w", err)
	}

	return conferences, nil
}

// ListByFaculty retrieves every conference owned by one faculty member
func (r *ConferenceRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.Conference, error) {
	return r.Find(ctx, RecordQuery{
		FacultyIDs: []string{facultyID},
		StartDate:  "0000-00-00",
		EndDate:    "9999-12-31",
	})
}

// GetByID retrieves a conference by its ID
func (r *ConferenceRepository) GetByID(ctx context.Context, id int64) (*models.Conference, error) {
	sqlQuery, args, err := r.sb.Select(conferenceColumns...).
		From("conferences").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get conference query: %w", err)
	}

	conference, err := scanConference(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Int64("conferenceID", id).Msg("Error querying conference by id")
		return nil, fmt.Errorf("error querying conference ID=%d: %w", id, err)
	}

	return conference, nil
}

// Create inserts a new conference record; review status always starts PENDING
func (r *ConferenceRepository) Create(ctx context.Context, conference *models.Conference) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("conferences").
		Columns("faculty_id", "paper_title", "conf_name", "conf_date", "type", "proceedings", "proceeding_fp", "is_verified").
		Values(
			conference.FacultyID, conference.PaperTitle, conference.ConfName, conference.ConfDate,
			conference.Type, conference.Proceedings, conference.ProceedingFP, models.StatusPending,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create conference query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error inserting conference")
		return 0, fmt.Errorf("error inserting conference: %w", err)
	}

	logger.Info().Int64("conferenceID", id).Str("facultyID", conference.FacultyID).Msg("Conference submitted")
	return id, nil
}

// UpdateStatus moves a pending conference to the given terminal status.
// The update is conditional on the row still being PENDING so concurrent
// decisions surface as ErrAlreadyDecided instead of silently overwriting.
func (r *ConferenceRepository) UpdateStatus(ctx context.Context, id int64, status models.VerificationStatus) (*models.Conference, error) {
	sqlQuery, args, err := r.sb.Update("conferences").
		Set("is_verified", status).
		Where(squirrel.Eq{"id": id, "is_verified": models.StatusPending}).
		Suffix("RETURNING " + joinColumns(conferenceColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update conference status query: %w", err)
	}

	conference, err := scanConference(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, id)
		}
		logger.Error().Err(err).Int64("conferenceID", id).Msg("Error updating conference status")
		return nil, fmt.Errorf("error updating conference ID=%d: %w", id, err)
	}

	logger.Info().Int64("conferenceID", id).Str("status", string(status)).Msg("Conference status updated")
	return conference, nil
}

// classifyMissedUpdate distinguishes a missing row from an already-decided one
func (r *ConferenceRepository) classifyMissedUpdate(ctx context.Context, id int64) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status.IsTerminal() {
		return apperrors.ErrAlreadyDecided
	}
	return apperrors.ErrRecordNotFound
}
