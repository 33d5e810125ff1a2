package catalog

import (
	"context"

	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

// StaticSource serves the embedded catalogs directly, without a database.
// It backs the service layer when the catalog source is configured as
// "embedded" and is the fixture source for tests.
type StaticSource struct {
	programs []ProgramCatalog
}

// NewStaticSource creates a source over the embedded program catalogs.
func NewStaticSource() *StaticSource {
	return &StaticSource{programs: All()}
}

// ListPrograms returns all embedded programs.
func (s *StaticSource) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	programs := make([]*models.Program, 0, len(s.programs))
	for i := range s.programs {
		programs = append(programs, &s.programs[i].Program)
	}
	return programs, nil
}

// GetProgram returns the program for a slug.
func (s *StaticSource) GetProgram(ctx context.Context, slug string) (*models.Program, error) {
	for i := range s.programs {
		if s.programs[i].Program.Slug == slug {
			return &s.programs[i].Program, nil
		}
	}
	return nil, apperrors.ErrProgramNotFound
}

// GetProgramCourses returns the course list for a program slug.
func (s *StaticSource) GetProgramCourses(ctx context.Context, slug string) ([]models.Course, error) {
	for i := range s.programs {
		if s.programs[i].Program.Slug == slug {
			return s.programs[i].Courses, nil
		}
	}
	return nil, apperrors.ErrProgramNotFound
}
