package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrincon/acadplan/internal/app/models"
)

func bundleCodes(bundles []Bundle) [][]string {
	out := make([][]string, len(bundles))
	for i, b := range bundles {
		out[i] = b.Codes()
	}
	return out
}

func TestEligible_PrerequisitesGate(t *testing.T) {
	a := mkCourse("A1", 3, 1, models.CategoryRegular)
	b := mkCourse("B1", 3, 2, models.CategoryRegular)
	b.Prerequisites = []string{"A1"}

	g, err := NewGraph([]models.Course{a, b})
	require.NoError(t, err)

	bundles := Eligible(g, nil)
	assert.Equal(t, [][]string{{"A1"}}, bundleCodes(bundles))

	bundles = Eligible(g, map[string]bool{"A1": true})
	assert.Equal(t, [][]string{{"B1"}}, bundleCodes(bundles))
}

// Prerequisite checks are one hop deep: the engine trusts the approved set
// to be the outcome of prior valid enrollments, so a course whose direct
// prerequisites are approved is eligible even if deeper ancestors are not in
// the set.
func TestEligible_OneHopOnly(t *testing.T) {
	a := mkCourse("A1", 3, 1, models.CategoryRegular)
	b := mkCourse("B1", 3, 2, models.CategoryRegular)
	c := mkCourse("C1", 3, 3, models.CategoryRegular)
	b.Prerequisites = []string{"A1"}
	c.Prerequisites = []string{"B1"}

	g, err := NewGraph([]models.Course{a, b, c})
	require.NoError(t, err)

	bundles := Eligible(g, map[string]bool{"B1": true})
	assert.Equal(t, [][]string{{"A1"}, {"C1"}}, bundleCodes(bundles))
}

func TestEligible_ApprovedCoursesExcluded(t *testing.T) {
	a := mkCourse("A1", 3, 1, models.CategoryRegular)
	b := mkCourse("B1", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{a, b})
	require.NoError(t, err)

	bundles := Eligible(g, map[string]bool{"A1": true})
	assert.Equal(t, [][]string{{"B1"}}, bundleCodes(bundles))
}

func TestEligible_CorequisiteBundling(t *testing.T) {
	lead := mkCourse("LEAD", 5, 6, models.CategoryRegular)
	co := mkCourse("CO", 2, 6, models.CategoryRegular)
	lead.Corequisites = []string{"CO"}
	co.Corequisites = []string{"LEAD"}

	g, err := NewGraph([]models.Course{lead, co})
	require.NoError(t, err)

	bundles := Eligible(g, nil)
	require.Len(t, bundles, 2)
	// Each course leads its own bundle and carries the other as the pending
	// corequisite; selection deduplicates.
	assert.Equal(t, [][]string{{"CO", "LEAD"}, {"LEAD", "CO"}}, bundleCodes(bundles))
	assert.Equal(t, 7, bundles[0].Credits())
}

func TestEligible_ApprovedCorequisiteNotBundled(t *testing.T) {
	lead := mkCourse("LEAD", 5, 6, models.CategoryRegular)
	co := mkCourse("CO", 2, 6, models.CategoryRegular)
	lead.Corequisites = []string{"CO"}
	co.Corequisites = []string{"LEAD"}

	g, err := NewGraph([]models.Course{lead, co})
	require.NoError(t, err)

	bundles := Eligible(g, map[string]bool{"CO": true})
	assert.Equal(t, [][]string{{"LEAD"}}, bundleCodes(bundles))
}

func TestEligible_BundleDroppedWhenCorequisiteLocked(t *testing.T) {
	gate := mkCourse("GATE", 3, 1, models.CategoryRegular)
	lead := mkCourse("LEAD", 5, 6, models.CategoryRegular)
	co := mkCourse("CO", 2, 6, models.CategoryRegular)
	lead.Corequisites = []string{"CO"}
	co.Corequisites = []string{"LEAD"}
	co.Prerequisites = []string{"GATE"}

	g, err := NewGraph([]models.Course{gate, lead, co})
	require.NoError(t, err)

	// CO is locked behind GATE, so LEAD cannot be offered either.
	bundles := Eligible(g, nil)
	assert.Equal(t, [][]string{{"GATE"}}, bundleCodes(bundles))
}

func TestIntersemesterOptions_EnglishFirst(t *testing.T) {
	precal := mkCourse("PRECAL", 2, 4, models.CategoryIntersemester)
	ing1 := mkCourse("ING1", 2, 1, models.CategoryEnglish)
	ing2 := mkCourse("ING2", 3, 2, models.CategoryEnglish)
	ing2.Prerequisites = []string{"ING1"}
	reg := mkCourse("REG", 3, 1, models.CategoryRegular)

	g, err := NewGraph([]models.Course{precal, ing1, ing2, reg})
	require.NoError(t, err)

	options := IntersemesterOptions(g, nil)
	require.Len(t, options, 2)
	assert.Equal(t, "ING1", options[0].Code)
	assert.Equal(t, "PRECAL", options[1].Code)

	options = IntersemesterOptions(g, map[string]bool{"ING1": true, "PRECAL": true})
	require.Len(t, options, 1)
	assert.Equal(t, "ING2", options[0].Code)
}
