package curriculum

import "github.com/jdrincon/acadplan/internal/app/models"

// Tuition figures in Colombian pesos, per term.
const (
	FullSemesterFee  int64 = 10_000_000
	HalfSemesterFee  int64 = 5_000_000
	IntersemesterFee int64 = 1_500_000
	ExtraCreditFee   int64 = 800_000
)

// CostEstimate breaks down the tuition for the recommended term.
type CostEstimate struct {
	SemesterFee      int64 `json:"semesterFee"`
	ExtraCreditsUsed int   `json:"extraCreditsUsed"`
	ExtraCreditsFee  int64 `json:"extraCreditsFee"`
	Total            int64 `json:"total"`
}

// EstimateCost prices a recommended term: a fixed semester fee (halved
// enrollment and intersemester terms have their own fees) plus a per-credit
// fee for every recommended credit above the standard load.
func EstimateCost(cfg models.SemesterConfig, totalCredits, standardCredits int) CostEstimate {
	est := CostEstimate{SemesterFee: FullSemesterFee}
	switch {
	case cfg.Intersemester:
		est.SemesterFee = IntersemesterFee
	case cfg.HalfEnrollment:
		est.SemesterFee = HalfSemesterFee
	}

	if !cfg.Intersemester && totalCredits > standardCredits {
		est.ExtraCreditsUsed = totalCredits - standardCredits
		est.ExtraCreditsFee = int64(est.ExtraCreditsUsed) * ExtraCreditFee
	}

	est.Total = est.SemesterFee + est.ExtraCreditsFee
	return est
}
