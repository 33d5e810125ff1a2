package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

func TestCreditCap_Standard(t *testing.T) {
	cap, err := CreditCap(models.SemesterConfig{}, 19)
	require.NoError(t, err)
	assert.Equal(t, 19, cap)
}

func TestCreditCap_ExtraCredits(t *testing.T) {
	cap, err := CreditCap(models.SemesterConfig{ExtraCredits: 3}, 18)
	require.NoError(t, err)
	assert.Equal(t, 21, cap)
}

func TestCreditCap_HardCeiling(t *testing.T) {
	cap, err := CreditCap(models.SemesterConfig{ExtraCredits: 10}, 22)
	require.NoError(t, err)
	assert.Equal(t, HardCreditCeiling, cap)
}

func TestCreditCap_HalfEnrollment(t *testing.T) {
	// floor(18/2) - 1 = 8
	cap, err := CreditCap(models.SemesterConfig{HalfEnrollment: true}, 18)
	require.NoError(t, err)
	assert.Equal(t, 8, cap)

	// floor(19/2) - 1 = 8
	cap, err = CreditCap(models.SemesterConfig{HalfEnrollment: true}, 19)
	require.NoError(t, err)
	assert.Equal(t, 8, cap)
}

func TestCreditCap_HalfEnrollmentOneExtraCredit(t *testing.T) {
	cap, err := CreditCap(models.SemesterConfig{HalfEnrollment: true, ExtraCredits: 1}, 18)
	require.NoError(t, err)
	assert.Equal(t, 9, cap)
}

func TestCreditCap_HalfEnrollmentTooManyExtraCredits(t *testing.T) {
	_, err := CreditCap(models.SemesterConfig{HalfEnrollment: true, ExtraCredits: 2}, 18)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfiguration))
}

func TestCreditCap_NegativeExtraCredits(t *testing.T) {
	_, err := CreditCap(models.SemesterConfig{ExtraCredits: -1}, 18)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfiguration))
}

func TestCreditCap_HalfEnrollmentWithIntersemester(t *testing.T) {
	_, err := CreditCap(models.SemesterConfig{HalfEnrollment: true, Intersemester: true}, 18)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidConfiguration))
}

func TestCreditCap_Intersemester(t *testing.T) {
	cap, err := CreditCap(models.SemesterConfig{Intersemester: true}, 18)
	require.NoError(t, err)
	assert.Equal(t, UnboundedCap, cap)
}
