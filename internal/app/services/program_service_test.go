package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrincon/acadplan/internal/app/catalog"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

func TestGetAllPrograms(t *testing.T) {
	svc := NewProgramService(catalog.NewStaticSource())

	programs, err := svc.GetAllPrograms(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 2)

	slugs := []string{programs[0].Slug, programs[1].Slug}
	assert.ElementsMatch(t, []string{catalog.SlugPhysiotherapy, catalog.SlugNursing}, slugs)
}

func TestGetProgramBySlug(t *testing.T) {
	svc := NewProgramService(catalog.NewStaticSource())

	program, err := svc.GetProgramBySlug(context.Background(), catalog.SlugNursing)
	require.NoError(t, err)
	assert.Equal(t, "Enfermería", program.Name)
	assert.Equal(t, 189, program.TotalCredits)

	_, err = svc.GetProgramBySlug(context.Background(), "astronomy")
	assert.True(t, apperrors.Is(err, apperrors.ErrProgramNotFound))
}

func TestGetProgramCourses(t *testing.T) {
	svc := NewProgramService(catalog.NewStaticSource())
	ctx := context.Background()

	all, err := svc.GetProgramCourses(ctx, catalog.SlugPhysiotherapy, 0)
	require.NoError(t, err)
	assert.Len(t, all, 51)

	first, err := svc.GetProgramCourses(ctx, catalog.SlugPhysiotherapy, 1)
	require.NoError(t, err)
	require.Len(t, first, 5)
	for _, course := range first {
		assert.Equal(t, 1, course.Semester)
	}

	empty, err := svc.GetProgramCourses(ctx, catalog.SlugPhysiotherapy, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
