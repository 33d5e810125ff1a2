package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrincon/acadplan/internal/app/catalog"
	"github.com/jdrincon/acadplan/internal/app/curriculum"
	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

func newRecommendationService() *RecommendationService {
	return NewRecommendationService(catalog.NewStaticSource(), curriculum.DefaultSelectionPolicy)
}

func recommendedCodes(result *RecommendationResult) []string {
	codes := make([]string, len(result.Recommendation.Courses))
	for i, c := range result.Recommendation.Courses {
		codes[i] = c.Code
	}
	return codes
}

func TestRecommend_FreshStudent(t *testing.T) {
	svc := newRecommendationService()

	result, err := svc.Recommend(context.Background(), catalog.SlugPhysiotherapy, nil, models.SemesterConfig{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.CurrentSemester)
	assert.Equal(t, 0, result.ApprovedCredits)
	assert.Equal(t, 19, result.Recommendation.CreditCap)

	// Mandatory tracks first (English, then Core Curriculum), then regular
	// courses greedily in catalog order. Unlocked courses from later
	// semesters (CBD has no prerequisites) compete with first-semester ones;
	// MORF1 no longer fits once the mandatory tracks are in.
	assert.Equal(t, []string{"ING1", "CORE1", "CBAS", "CIB", "FFIS", "CBD"}, recommendedCodes(result))
	assert.Equal(t, 18, result.Recommendation.TotalCredits)
	assert.Empty(t, result.Recommendation.Warnings)

	assert.Equal(t, curriculum.FullSemesterFee, result.Cost.SemesterFee)
	assert.Equal(t, curriculum.FullSemesterFee, result.Cost.Total)
}

func TestRecommend_HalfEnrollment(t *testing.T) {
	svc := newRecommendationService()

	result, err := svc.Recommend(context.Background(), catalog.SlugPhysiotherapy, nil,
		models.SemesterConfig{HalfEnrollment: true})
	require.NoError(t, err)

	// floor(19/2) - 1 = 8
	assert.Equal(t, 8, result.Recommendation.CreditCap)
	assert.Equal(t, []string{"ING1", "CORE1", "CIB", "DMH"}, recommendedCodes(result))
	assert.Equal(t, 8, result.Recommendation.TotalCredits)
	assert.Equal(t, curriculum.HalfSemesterFee, result.Cost.SemesterFee)
}

func TestRecommend_PlacementBySecondSemester(t *testing.T) {
	svc := newRecommendationService()

	// 19 approved credits puts the student past the first threshold (13).
	approved := []string{"CIB", "CBAS", "MORF1", "FFIS", "ING1"}
	result, err := svc.Recommend(context.Background(), catalog.SlugPhysiotherapy, approved, models.SemesterConfig{})
	require.NoError(t, err)

	assert.Equal(t, 19, result.ApprovedCredits)
	assert.Equal(t, 2, result.CurrentSemester)
	assert.Equal(t, 18, result.Recommendation.CreditCap)
}

func TestRecommend_NursingSharedCorequisite(t *testing.T) {
	svc := newRecommendationService()

	// Fisiopatología is corequisite with both Semiología and Cuidado del
	// Adulto I. After the Cuidado bundle brings Fisiopatología into the
	// term, Semiología must still be offered as the remainder of its own
	// bundle, not silently dropped.
	approved := []string{
		"CIB", "ING1", "MORF1", "CBAS", "NCUI",
		"CORE1", "ING2", "MORF2", "FCUI", "DTEN", "MICRO",
	}
	result, err := svc.Recommend(context.Background(), catalog.SlugNursing, approved, models.SemesterConfig{})
	require.NoError(t, err)

	assert.Equal(t, 38, result.ApprovedCredits)
	assert.Equal(t, 3, result.CurrentSemester)
	assert.Equal(t, 21, result.Recommendation.CreditCap)

	assert.Equal(t, []string{"ING3", "CORE2", "CADU1", "FPAT", "EMBG", "SEMIO", "PSAP"}, recommendedCodes(result))
	assert.Equal(t, 21, result.Recommendation.TotalCredits)
	assert.Empty(t, result.Recommendation.Warnings)
}

func TestRecommend_UnknownApprovedCode(t *testing.T) {
	svc := newRecommendationService()

	_, err := svc.Recommend(context.Background(), catalog.SlugPhysiotherapy,
		[]string{"NOPE"}, models.SemesterConfig{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidationFailed))
}

func TestRecommend_UnknownProgram(t *testing.T) {
	svc := newRecommendationService()

	_, err := svc.Recommend(context.Background(), "astronomy", nil, models.SemesterConfig{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrProgramNotFound))
}

func TestRecommend_InvalidConfiguration(t *testing.T) {
	svc := newRecommendationService()

	_, err := svc.Recommend(context.Background(), catalog.SlugPhysiotherapy, nil,
		models.SemesterConfig{HalfEnrollment: true, Intersemester: true})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfiguration))
}

func TestIntersemesterOptions(t *testing.T) {
	svc := newRecommendationService()
	ctx := context.Background()

	options, err := svc.IntersemesterOptions(ctx, catalog.SlugPhysiotherapy, nil)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "ING1", options[0].Code)
	assert.Equal(t, "PRECAL", options[1].Code)

	options, err = svc.IntersemesterOptions(ctx, catalog.SlugPhysiotherapy, []string{"ING1"})
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "ING2", options[0].Code)
	assert.Equal(t, "PRECAL", options[1].Code)
}

func TestIntersemesterRecommendation(t *testing.T) {
	svc := newRecommendationService()

	result, err := svc.Recommend(context.Background(), catalog.SlugPhysiotherapy, nil,
		models.SemesterConfig{Intersemester: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"ING1"}, recommendedCodes(result))
	assert.Equal(t, curriculum.UnboundedCap, result.Recommendation.CreditCap)
	assert.Equal(t, curriculum.IntersemesterFee, result.Cost.SemesterFee)
	assert.Equal(t, curriculum.IntersemesterFee, result.Cost.Total)
}
