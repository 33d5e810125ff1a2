package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdrincon/acadplan/internal/app/models"
)

func TestEstimateCost_FullSemester(t *testing.T) {
	est := EstimateCost(models.SemesterConfig{}, 18, 18)
	assert.Equal(t, FullSemesterFee, est.SemesterFee)
	assert.Equal(t, 0, est.ExtraCreditsUsed)
	assert.Equal(t, FullSemesterFee, est.Total)
}

func TestEstimateCost_ExtraCredits(t *testing.T) {
	est := EstimateCost(models.SemesterConfig{ExtraCredits: 3}, 21, 18)
	assert.Equal(t, FullSemesterFee, est.SemesterFee)
	assert.Equal(t, 3, est.ExtraCreditsUsed)
	assert.Equal(t, 3*ExtraCreditFee, est.ExtraCreditsFee)
	assert.Equal(t, FullSemesterFee+3*ExtraCreditFee, est.Total)
}

func TestEstimateCost_HalfEnrollment(t *testing.T) {
	est := EstimateCost(models.SemesterConfig{HalfEnrollment: true}, 8, 18)
	assert.Equal(t, HalfSemesterFee, est.SemesterFee)
	assert.Equal(t, HalfSemesterFee, est.Total)
}

func TestEstimateCost_HalfEnrollmentExtraCredit(t *testing.T) {
	// Under half enrollment the baseline is still the standard load, so only
	// credits above it are billed; the purchased credit raises the cap, not
	// the bill, unless the recommendation actually exceeds the standard load.
	est := EstimateCost(models.SemesterConfig{HalfEnrollment: true, ExtraCredits: 1}, 9, 18)
	assert.Equal(t, HalfSemesterFee, est.SemesterFee)
	assert.Equal(t, 0, est.ExtraCreditsUsed)
	assert.Equal(t, HalfSemesterFee, est.Total)
}

func TestEstimateCost_Intersemester(t *testing.T) {
	est := EstimateCost(models.SemesterConfig{Intersemester: true}, 3, 18)
	assert.Equal(t, IntersemesterFee, est.SemesterFee)
	assert.Equal(t, 0, est.ExtraCreditsUsed)
	assert.Equal(t, IntersemesterFee, est.Total)
}
