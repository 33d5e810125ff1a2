package curriculum

import (
	"fmt"

	"github.com/jdrincon/acadplan/internal/app/models"
)

// WarningKind identifies a non-fatal condition attached to a successful
// recommendation.
type WarningKind string

const (
	// WarningMandatorySkipped signals that a mandatory course was eligible
	// but did not fit under the credit cap; purchasing credits may help.
	WarningMandatorySkipped WarningKind = "mandatory_skipped"
	// WarningNoCoursesAvailable signals that no course is eligible at all:
	// the student is either blocked or done.
	WarningNoCoursesAvailable WarningKind = "no_courses_available"
)

// Warning is a non-fatal advisory accompanying a recommendation.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	CourseCode string      `json:"courseCode,omitempty"`
	Message    string      `json:"message"`
}

// SelectionPolicy configures the priority order among mandatory categories.
// The source rules do not fix whether English outranks Core Curriculum, so
// the order is an explicit parameter rather than a hard-coded rule.
type SelectionPolicy struct {
	// MandatoryOrder lists mandatory categories highest priority first.
	// Categories not listed rank below all listed ones.
	MandatoryOrder []models.CourseCategory
}

// DefaultSelectionPolicy ranks English ahead of Core Curriculum, consistent
// with the intersemester preference for English courses.
var DefaultSelectionPolicy = SelectionPolicy{
	MandatoryOrder: []models.CourseCategory{
		models.CategoryEnglish,
		models.CategoryCoreCurriculum,
	},
}

func (p SelectionPolicy) rank(cat models.CourseCategory) int {
	for i, c := range p.MandatoryOrder {
		if c == cat {
			return i
		}
	}
	return len(p.MandatoryOrder)
}

// Recommendation is the engine's output for one semester.
type Recommendation struct {
	// Courses are ordered by selection priority, not catalog position.
	Courses      []*models.Course
	TotalCredits int
	CreditCap    int
	Warnings     []Warning
}

// Recommend selects and orders the courses to take next semester. It
// combines eligibility bundles with the credit cap: mandatory bundles first
// (by policy rank, then native semester, then code), regular bundles after,
// greedily adding bundles and skipping any that would exceed the cap. A
// bundle member already recommended this term through an earlier bundle
// counts as satisfied, so overlapping bundles shrink to their remainder
// rather than being rejected outright.
//
// Intersemester terms ignore the partition and the numeric cap and yield at
// most the single best-priority intersemester-offered course.
//
// The computation is a pure function of its inputs: identical graph,
// approved set, configuration and policy always produce identical output.
func Recommend(g *Graph, approved map[string]bool, cfg models.SemesterConfig, standardCredits int, policy SelectionPolicy) (*Recommendation, error) {
	cap, err := CreditCap(cfg, standardCredits)
	if err != nil {
		return nil, err
	}

	if cfg.Intersemester {
		return recommendIntersemester(g, approved, cap), nil
	}

	bundles := Eligible(g, approved)
	if len(bundles) == 0 {
		return &Recommendation{
			CreditCap: cap,
			Warnings: []Warning{{
				Kind:    WarningNoCoursesAvailable,
				Message: "no eligible courses for the current approved set",
			}},
		}, nil
	}

	var mandatory, regular []Bundle
	for _, b := range bundles {
		if b.Lead().Category.Mandatory() {
			mandatory = append(mandatory, b)
		} else {
			regular = append(regular, b)
		}
	}
	sortBundles(mandatory, policy)

	rec := &Recommendation{CreditCap: cap}
	selected := make(map[string]bool)

	take := func(b Bundle) bool {
		// A bundle member can already be in the term through an earlier
		// bundle (corequisite leads appear in each other's bundles, and a
		// shared corequisite links otherwise separate leads). Members already
		// selected count as satisfied: only the remainder is added and
		// charged, and a course is never offered twice.
		var pending []*models.Course
		credits := 0
		for _, c := range b.Courses {
			if selected[c.Code] {
				continue
			}
			pending = append(pending, c)
			credits += c.Credits
		}
		if len(pending) == 0 {
			return false
		}
		if rec.TotalCredits+credits > cap {
			return false
		}
		for _, c := range pending {
			selected[c.Code] = true
			rec.Courses = append(rec.Courses, c)
		}
		rec.TotalCredits += credits
		return true
	}

	for _, b := range mandatory {
		if !take(b) && !selected[b.Lead().Code] {
			rec.Warnings = append(rec.Warnings, Warning{
				Kind:       WarningMandatorySkipped,
				CourseCode: b.Lead().Code,
				Message: fmt.Sprintf("mandatory course %s (%d credits) skipped: would exceed the %d credit cap",
					b.Lead().Code, b.Credits(), cap),
			})
		}
	}
	for _, b := range regular {
		take(b)
	}

	return rec, nil
}

func recommendIntersemester(g *Graph, approved map[string]bool, cap int) *Recommendation {
	rec := &Recommendation{CreditCap: cap}
	options := IntersemesterOptions(g, approved)
	if len(options) == 0 {
		rec.Warnings = append(rec.Warnings, Warning{
			Kind:    WarningNoCoursesAvailable,
			Message: "no eligible intersemester courses for the current approved set",
		})
		return rec
	}
	// Business rule: one course per intersemester term, English preferred.
	best := options[0]
	rec.Courses = []*models.Course{best}
	rec.TotalCredits = best.Credits
	return rec
}

// sortBundles orders mandatory bundles by policy rank, then native semester,
// then course code. Eligible already yields catalog order, so only the
// policy rank needs enforcing, but a full ordering keeps the result
// independent of the input arrangement.
func sortBundles(bundles []Bundle, policy SelectionPolicy) {
	for i := 1; i < len(bundles); i++ {
		for j := i; j > 0 && bundleLess(bundles[j], bundles[j-1], policy); j-- {
			bundles[j], bundles[j-1] = bundles[j-1], bundles[j]
		}
	}
}

func bundleLess(a, b Bundle, policy SelectionPolicy) bool {
	ra, rb := policy.rank(a.Lead().Category), policy.rank(b.Lead().Category)
	if ra != rb {
		return ra < rb
	}
	if a.Lead().Semester != b.Lead().Semester {
		return a.Lead().Semester < b.Lead().Semester
	}
	return a.Lead().Code < b.Lead().Code
}
