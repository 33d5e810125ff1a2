package models

// SemesterConfig carries the per-semester enrollment modifiers for a single
// recommendation request. It is a value object consumed once; the engine
// never stores it.
type SemesterConfig struct {
	// HalfEnrollment halves (minus one) the standard credit cap.
	HalfEnrollment bool `json:"halfEnrollment"`
	// ExtraCredits is the number of purchased credits added to the cap.
	ExtraCredits int `json:"extraCredits"`
	// Intersemester restricts the term to a single intersemester-offered
	// course, exempt from the numeric credit cap.
	Intersemester bool `json:"intersemester"`
}
