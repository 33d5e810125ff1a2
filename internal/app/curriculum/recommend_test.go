package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

func recommended(rec *Recommendation) []string {
	codes := make([]string, len(rec.Courses))
	for i, c := range rec.Courses {
		codes[i] = c.Code
	}
	return codes
}

func TestRecommend_MandatoryBeforeRegular(t *testing.T) {
	// The regular course appears earlier in catalog order, but only one of
	// the two fits under the cap; the mandatory English course must win.
	reg := mkCourse("AREG", 3, 1, models.CategoryRegular)
	eng := mkCourse("ING1", 4, 1, models.CategoryEnglish)

	g, err := NewGraph([]models.Course{reg, eng})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{}, 4, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Equal(t, []string{"ING1"}, recommended(rec))
	assert.Equal(t, 4, rec.TotalCredits)
	assert.Equal(t, 4, rec.CreditCap)
}

func TestRecommend_PolicyOrdersMandatoryCategories(t *testing.T) {
	core := mkCourse("CORE1", 2, 1, models.CategoryCoreCurriculum)
	eng := mkCourse("ING1", 2, 1, models.CategoryEnglish)

	g, err := NewGraph([]models.Course{core, eng})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{}, 10, DefaultSelectionPolicy)
	require.NoError(t, err)
	assert.Equal(t, []string{"ING1", "CORE1"}, recommended(rec))

	coreFirst := SelectionPolicy{MandatoryOrder: []models.CourseCategory{
		models.CategoryCoreCurriculum,
		models.CategoryEnglish,
	}}
	rec, err = Recommend(g, nil, models.SemesterConfig{}, 10, coreFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"CORE1", "ING1"}, recommended(rec))
}

func TestRecommend_MandatorySkippedWarning(t *testing.T) {
	eng := mkCourse("ING1", 6, 1, models.CategoryEnglish)
	reg := mkCourse("AREG", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{eng, reg})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{}, 5, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Equal(t, []string{"AREG"}, recommended(rec))
	require.Len(t, rec.Warnings, 1)
	assert.Equal(t, WarningMandatorySkipped, rec.Warnings[0].Kind)
	assert.Equal(t, "ING1", rec.Warnings[0].CourseCode)
}

func TestRecommend_CorequisitesAtomic(t *testing.T) {
	lead := mkCourse("LEAD", 5, 6, models.CategoryRegular)
	co := mkCourse("CO", 2, 6, models.CategoryRegular)
	lead.Corequisites = []string{"CO"}
	co.Corequisites = []string{"LEAD"}
	filler := mkCourse("FILL", 3, 6, models.CategoryRegular)

	g, err := NewGraph([]models.Course{lead, co, filler})
	require.NoError(t, err)

	// Cap 6 cannot hold the 7-credit bundle; neither member may appear alone.
	rec, err := Recommend(g, nil, models.SemesterConfig{}, 6, DefaultSelectionPolicy)
	require.NoError(t, err)
	assert.Equal(t, []string{"FILL"}, recommended(rec))

	// Cap 10 takes the whole bundle plus the filler.
	rec, err = Recommend(g, nil, models.SemesterConfig{}, 10, DefaultSelectionPolicy)
	require.NoError(t, err)
	assert.Equal(t, []string{"CO", "LEAD", "FILL"}, recommended(rec))
	assert.Equal(t, 10, rec.TotalCredits)
}

func TestRecommend_CorequisiteNeverOfferedTwice(t *testing.T) {
	lead := mkCourse("LEAD", 4, 6, models.CategoryRegular)
	co := mkCourse("CO", 2, 6, models.CategoryRegular)
	lead.Corequisites = []string{"CO"}
	co.Corequisites = []string{"LEAD"}

	g, err := NewGraph([]models.Course{lead, co})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{}, 20, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Equal(t, []string{"CO", "LEAD"}, recommended(rec))
	assert.Equal(t, 6, rec.TotalCredits)
}

func TestRecommend_OverlappingCorequisiteBundles(t *testing.T) {
	// SHARED is corequisite with both A and B. Once the A bundle brings
	// SHARED into the term, the B bundle must shrink to B alone instead of
	// being rejected.
	a := mkCourse("ACAD", 6, 3, models.CategoryRegular)
	b := mkCourse("BSEM", 3, 3, models.CategoryRegular)
	shared := mkCourse("SHARED", 3, 3, models.CategoryRegular)
	a.Corequisites = []string{"SHARED"}
	b.Corequisites = []string{"SHARED"}
	shared.Corequisites = []string{"ACAD", "BSEM"}

	g, err := NewGraph([]models.Course{a, b, shared})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{}, 20, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACAD", "SHARED", "BSEM"}, recommended(rec))
	assert.Equal(t, 12, rec.TotalCredits)
}

func TestRecommend_ShrunkBundleStillRespectsCap(t *testing.T) {
	a := mkCourse("ACAD", 6, 3, models.CategoryRegular)
	b := mkCourse("BSEM", 3, 3, models.CategoryRegular)
	shared := mkCourse("SHARED", 3, 3, models.CategoryRegular)
	a.Corequisites = []string{"SHARED"}
	b.Corequisites = []string{"SHARED"}
	shared.Corequisites = []string{"ACAD", "BSEM"}

	g, err := NewGraph([]models.Course{a, b, shared})
	require.NoError(t, err)

	// Cap 10 holds the A bundle (9) but not the shrunken B remainder (3).
	rec, err := Recommend(g, nil, models.SemesterConfig{}, 10, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACAD", "SHARED"}, recommended(rec))
	assert.Equal(t, 9, rec.TotalCredits)
}

func TestRecommend_NoCoursesAvailableWarning(t *testing.T) {
	a := mkCourse("A1", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{a})
	require.NoError(t, err)

	rec, err := Recommend(g, map[string]bool{"A1": true}, models.SemesterConfig{}, 18, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Empty(t, rec.Courses)
	require.Len(t, rec.Warnings, 1)
	assert.Equal(t, WarningNoCoursesAvailable, rec.Warnings[0].Kind)
}

func TestRecommend_IntersemesterSingleCourse(t *testing.T) {
	precal := mkCourse("PRECAL", 2, 4, models.CategoryIntersemester)
	ing1 := mkCourse("ING1", 2, 1, models.CategoryEnglish)
	reg := mkCourse("AREG", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{precal, ing1, reg})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{Intersemester: true}, 18, DefaultSelectionPolicy)
	require.NoError(t, err)

	// One course per intersemester term, English preferred.
	assert.Equal(t, []string{"ING1"}, recommended(rec))
	assert.Equal(t, UnboundedCap, rec.CreditCap)
}

func TestRecommend_IntersemesterNoOptions(t *testing.T) {
	reg := mkCourse("AREG", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{reg})
	require.NoError(t, err)

	rec, err := Recommend(g, nil, models.SemesterConfig{Intersemester: true}, 18, DefaultSelectionPolicy)
	require.NoError(t, err)

	assert.Empty(t, rec.Courses)
	require.Len(t, rec.Warnings, 1)
	assert.Equal(t, WarningNoCoursesAvailable, rec.Warnings[0].Kind)
}

func TestRecommend_InvalidConfiguration(t *testing.T) {
	a := mkCourse("A1", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{a})
	require.NoError(t, err)

	_, err = Recommend(g, nil, models.SemesterConfig{HalfEnrollment: true, Intersemester: true}, 18, DefaultSelectionPolicy)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfiguration))
}

func TestRecommend_Deterministic(t *testing.T) {
	courses := []models.Course{
		mkCourse("AREG", 3, 1, models.CategoryRegular),
		mkCourse("BREG", 4, 1, models.CategoryRegular),
		mkCourse("ING1", 2, 1, models.CategoryEnglish),
		mkCourse("CORE1", 2, 2, models.CategoryCoreCurriculum),
	}

	g, err := NewGraph(courses)
	require.NoError(t, err)

	first, err := Recommend(g, nil, models.SemesterConfig{}, 9, DefaultSelectionPolicy)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Recommend(g, nil, models.SemesterConfig{}, 9, DefaultSelectionPolicy)
		require.NoError(t, err)
		assert.Equal(t, recommended(first), recommended(again))
		assert.Equal(t, first.TotalCredits, again.TotalCredits)
	}
}
