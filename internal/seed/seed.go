package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devika/facultyhub/internal/app/models"
	"github.com/devika/facultyhub/internal/app/repositories"
	"github.com/devika/facultyhub/internal/pkg/apperrors"
	"github.com/devika/facultyhub/internal/pkg/logger"
)

// defaultFaculty is the directory seeded into a fresh database: one head of
// department per department, one cross-department editor, and a couple of
// plain members so reports have something to show.
var defaultFaculty = []models.Faculty{
	{ID: "CS-001", Name: "Meera Nair", Department: "Computer Science", Role: models.RoleHOD, Email: "meera.nair@facultyhub.app"},
	{ID: "CS-104", Name: "Asha Verma", Department: "Computer Science", Role: models.RoleFaculty, Email: "asha.verma@facultyhub.app"},
	{ID: "CS-117", Name: "Rohan Iyer", Department: "Computer Science", Role: models.RoleFaculty, Email: "rohan.iyer@facultyhub.app"},
	{ID: "EC-001", Name: "Sunil Rao", Department: "Electronics", Role: models.RoleHOD, Email: "sunil.rao@facultyhub.app"},
	{ID: "EC-052", Name: "Priya Menon", Department: "Electronics", Role: models.RoleFaculty, Email: "priya.menon@facultyhub.app"},
	{ID: "ADM-001", Name: "Devika Shetty", Department: "Administration", Role: models.RoleEditor, Email: "devika.shetty@facultyhub.app"},
}

// CreateDefaultData inserts the default faculty directory if absent.
// Existing entries are left untouched; the seed is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	facultyRepo := repositories.NewFacultyRepository(dbPool)

	logger.Info().Msg("Checking/Creating default faculty directory...")
	var finalErr error

	for _, faculty := range defaultFaculty {
		err := facultyRepo.Create(ctx, &faculty)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			logger.Error().Err(err).Str("facultyId", faculty.ID).Msg("Error seeding faculty entry")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
