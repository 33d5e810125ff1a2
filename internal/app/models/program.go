package models

// Program represents a degree program and its enrollment parameters.
type Program struct {
	ID           int64  `json:"id,omitempty" db:"id"`
	Slug         string `json:"slug" db:"slug"`
	Name         string `json:"name" db:"name"`
	TotalCredits int    `json:"totalCredits" db:"total_credits"`

	// StandardLoad maps a semester number (1..10) to the full-load credit
	// count of that semester in the standard plan.
	StandardLoad map[int]int `json:"standardLoad,omitempty"`

	// PlacementThresholds holds the maximum cumulative approved credits for
	// each semester: a student with approved credits <= PlacementThresholds[i]
	// is placed in semester i+1. A student past the last threshold is placed
	// in the final semester.
	PlacementThresholds []int `json:"-"`
}

// SemesterFor returns the semester a student with the given cumulative
// approved credits is placed in.
func (p *Program) SemesterFor(approvedCredits int) int {
	for i, max := range p.PlacementThresholds {
		if approvedCredits <= max {
			return i + 1
		}
	}
	return len(p.PlacementThresholds) + 1
}

// StandardCreditsFor returns the full-load credit count for a semester,
// clamping past-plan semesters to the final one.
func (p *Program) StandardCreditsFor(semester int) int {
	if semester < 1 {
		semester = 1
	}
	if last := len(p.StandardLoad); semester > last && last > 0 {
		semester = last
	}
	return p.StandardLoad[semester]
}
