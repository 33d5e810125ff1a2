package services

import (
	"context"
	"fmt"

	"github.com/jdrincon/acadplan/internal/app/models"
)

// ProgramService handles catalog browsing operations
type ProgramService struct {
	catalog CatalogSource
}

// NewProgramService creates a new program service instance
func NewProgramService(catalog CatalogSource) *ProgramService {
	return &ProgramService{
		catalog: catalog,
	}
}

// GetAllPrograms retrieves all programs
func (s *ProgramService) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	programs, err := s.catalog.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// GetProgramBySlug retrieves a single program
func (s *ProgramService) GetProgramBySlug(ctx context.Context, slug string) (*models.Program, error) {
	program, err := s.catalog.GetProgram(ctx, slug)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// GetProgramCourses retrieves a program's courses, optionally restricted to
// one native semester (semester 0 means all). The host renders the result
// as the per-semester approval checklist.
func (s *ProgramService) GetProgramCourses(ctx context.Context, slug string, semester int) ([]models.Course, error) {
	courses, err := s.catalog.GetProgramCourses(ctx, slug)
	if err != nil {
		return nil, err
	}

	if semester == 0 {
		return courses, nil
	}

	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if course.Semester == semester {
			filtered = append(filtered, course)
		}
	}
	return filtered, nil
}
