package curriculum

import "github.com/jdrincon/acadplan/internal/app/models"

// Bundle is a course together with its not-yet-approved corequisites. A
// bundle is the atomic unit of selection: either every course in it is
// recommended or none is, because a corequisite cannot be taken without its
// paired course in the same term. A course whose corequisites are all
// approved forms a bundle of size one.
type Bundle struct {
	// Courses holds the lead course first, then its pending corequisites in
	// catalog order.
	Courses []*models.Course
}

// Lead returns the course that made the bundle eligible.
func (b Bundle) Lead() *models.Course {
	return b.Courses[0]
}

// Credits returns the total credit weight of the bundle.
func (b Bundle) Credits() int {
	total := 0
	for _, c := range b.Courses {
		total += c.Credits
	}
	return total
}

// Codes returns the course codes of the bundle, lead first.
func (b Bundle) Codes() []string {
	codes := make([]string, len(b.Courses))
	for i, c := range b.Courses {
		codes[i] = c.Code
	}
	return codes
}

// Eligible computes the bundles that can be offered given the approved set.
// A course is eligible iff it is not approved and every prerequisite code is
// approved. Prerequisites are checked one hop deep only: transitive
// prerequisites were each approved in some prior term, because eligibility
// was enforced when they were offered.
//
// Bundles are returned in catalog order of their lead course. The result is
// deterministic for identical inputs.
func Eligible(g *Graph, approved map[string]bool) []Bundle {
	var bundles []Bundle
	for _, code := range g.Codes() {
		course, _ := g.Course(code)
		if approved[code] {
			continue
		}
		if !prerequisitesMet(course, approved) {
			continue
		}

		bundle := Bundle{Courses: []*models.Course{course}}
		complete := true
		for _, coreqCode := range course.Corequisites {
			if approved[coreqCode] {
				continue
			}
			coreq, _ := g.Course(coreqCode)
			// A pending corequisite travels with the course only if it is
			// itself unlockable; otherwise the bundle cannot be offered.
			if !prerequisitesMet(coreq, approved) {
				complete = false
				break
			}
			bundle.Courses = append(bundle.Courses, coreq)
		}
		if !complete {
			continue
		}
		bundles = append(bundles, bundle)
	}
	return bundles
}

// IntersemesterOptions returns the not-yet-approved intersemester-offered
// courses whose prerequisites are met, English first, in catalog order.
func IntersemesterOptions(g *Graph, approved map[string]bool) []*models.Course {
	var english, other []*models.Course
	for _, code := range g.Codes() {
		course, _ := g.Course(code)
		if !course.Category.IntersemesterOffered() {
			continue
		}
		if approved[code] || !prerequisitesMet(course, approved) {
			continue
		}
		if course.Category == models.CategoryEnglish {
			english = append(english, course)
		} else {
			other = append(other, course)
		}
	}
	return append(english, other...)
}

func prerequisitesMet(course *models.Course, approved map[string]bool) bool {
	for _, prereq := range course.Prerequisites {
		if !approved[prereq] {
			return false
		}
	}
	return true
}
