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
	"github.com/devika/facultyhub/internal/pkg/dberrors"
	"github.com/devika/facultyhub/internal/pkg/logger"
)

// FacultyRepository handles faculty directory database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var facultyColumns = []string{"faculty_id", "faculty_name", "faculty_department", "faculty_role", "faculty_email"}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	if err := row.Scan(&f.ID, &f.Name, &f.Department, &f.Role, &f.Email); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByEmail retrieves a faculty member by their unique email
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	sqlQuery, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"faculty_email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty by email query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error querying faculty by email")
		return nil, fmt.Errorf("error querying faculty by email: %w", err)
	}

	return faculty, nil
}

// GetByID retrieves a faculty member by their stable identifier
func (r *FacultyRepository) GetByID(ctx context.Context, facultyID string) (*models.Faculty, error) {
	sqlQuery, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty by id query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("facultyID", facultyID).Msg("Error querying faculty by id")
		return nil, fmt.Errorf("error querying faculty ID=%s: %w", facultyID, err)
	}

	return faculty, nil
}

// ListByDepartment retrieves every faculty member of one department
func (r *FacultyRepository) ListByDepartment(ctx context.Context, department string) ([]models.Faculty, error) {
	sqlQuery, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"faculty_department": department}).
		OrderBy("faculty_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("department", department).Msg("Error listing faculty by department")
		return nil, fmt.Errorf("error listing faculty for department %s: %w", department, err)
	}
	defer rows.Close()

	var members []models.Faculty
	for rows.Next() {
		var f models.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Department, &f.Role, &f.Email); err != nil {
			return nil, fmt.Errorf("failed to scan faculty row: %w", err)
		}
		members = append(members, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

// Create inserts a faculty member, used at onboarding and by the seeder
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	sqlQuery, args, err := r.sb.Insert("faculty").
		Columns(facultyColumns...).
		Values(faculty.ID, faculty.Name, faculty.Department, faculty.Role, faculty.Email).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_faculty_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("facultyID", faculty.ID).Msg("Error inserting faculty")
		return fmt.Errorf("error inserting faculty: %w", err)
	}

	logger.Info().Str("facultyID", faculty.ID).Str("department", faculty.Department).Msg("Faculty created")
	return nil
}
