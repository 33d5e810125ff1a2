package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdrincon/acadplan/internal/app/catalog"
	appRepos "github.com/jdrincon/acadplan/internal/app/repositories"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// CreateDefaultData copies the embedded program catalogs into the database if
// they are not there yet. Existing rows are left untouched, so re-running is
// safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	catalogRepo := appRepos.NewCatalogRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default program catalogs...")
	var finalErr error

	for _, pc := range catalog.All() {
		program := pc.Program
		err := catalogRepo.CreateProgram(ctx, &program)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Str("program", program.Slug).Msg("Error seeding program")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if errors.Is(err, apperrors.ErrConflict) {
			// Program already seeded; fetch its ID so course inserts can
			// still fill any missing rows.
			existing, errGet := catalogRepo.GetProgram(ctx, program.Slug)
			if errGet != nil {
				lgr.Error().Err(errGet).Str("program", program.Slug).Msg("Error loading existing program during seed")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			program.ID = existing.ID
		}

		seeded := 0
		for i := range pc.Courses {
			course := pc.Courses[i]
			err := catalogRepo.CreateCourse(ctx, program.ID, &course)
			if err != nil && !errors.Is(err, apperrors.ErrConflict) {
				lgr.Error().Err(err).Str("program", program.Slug).Str("course", course.Code).Msg("Error seeding course")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			if err == nil {
				seeded++
			}
		}

		lgr.Info().
			Str("program", program.Slug).
			Int("coursesSeeded", seeded).
			Int("coursesTotal", len(pc.Courses)).
			Msg("Program catalog seeded")
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Finished seeding default catalogs with errors")
	} else {
		lgr.Info().Msg("Finished seeding default catalogs")
	}
	return finalErr
}
