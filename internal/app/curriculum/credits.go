package curriculum

import (
	"fmt"

	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/pkg/apperrors"
)

const (
	// HardCreditCeiling is the absolute per-semester credit limit; purchased
	// credits never raise the cap past it.
	HardCreditCeiling = 25

	// MaxExtraCreditsHalfEnrollment limits purchased credits under
	// half-enrollment.
	MaxExtraCreditsHalfEnrollment = 1

	// UnboundedCap is the sentinel returned for intersemester terms, whose
	// single course does not count against any numeric cap.
	UnboundedCap = -1
)

// CreditCap computes the credit ceiling for a semester given its enrollment
// configuration and the program's standard full-load credit count for that
// semester.
//
// Intersemester terms return UnboundedCap: the restriction there is a course
// count (one), enforced by Recommend, not a credit amount. Half-enrollment
// caps at floor(standard/2) - 1. Purchased credits extend the cap and the
// result is clamped to HardCreditCeiling.
//
// Fails with apperrors.ErrInvalidConfiguration on negative purchased
// credits, on half-enrollment combined with intersemester (mutually
// exclusive modifiers), or on more than one purchased credit under
// half-enrollment.
func CreditCap(cfg models.SemesterConfig, standardCredits int) (int, error) {
	if cfg.ExtraCredits < 0 {
		return 0, apperrors.NewInvalidConfigurationError(
			fmt.Sprintf("purchased extra credits must not be negative, got %d", cfg.ExtraCredits))
	}
	if cfg.HalfEnrollment && cfg.Intersemester {
		return 0, apperrors.NewInvalidConfigurationError(
			"half enrollment and intersemester are mutually exclusive")
	}

	if cfg.Intersemester {
		return UnboundedCap, nil
	}

	cap := standardCredits
	if cfg.HalfEnrollment {
		if cfg.ExtraCredits > MaxExtraCreditsHalfEnrollment {
			return 0, apperrors.NewInvalidConfigurationError(
				fmt.Sprintf("at most %d extra credit can be purchased under half enrollment, got %d",
					MaxExtraCreditsHalfEnrollment, cfg.ExtraCredits))
		}
		cap = standardCredits/2 - 1
	}

	cap += cfg.ExtraCredits
	if cap > HardCreditCeiling {
		cap = HardCreditCeiling
	}
	return cap, nil
}
