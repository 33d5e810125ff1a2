package services

import (
	"context"

	"github.com/jdrincon/acadplan/internal/app/models"
)

// CatalogSource provides program catalogs to the services. It is satisfied
// by the Postgres-backed repository and by the embedded static catalog; the
// services never care which one they got.
type CatalogSource interface {
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	GetProgram(ctx context.Context, slug string) (*models.Program, error)
	GetProgramCourses(ctx context.Context, slug string) ([]models.Course, error)
}
