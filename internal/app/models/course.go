package models

// CourseCategory classifies a course for selection priority and
// intersemester availability.
type CourseCategory string

const (
	// CategoryRegular is a standard plan course with no special priority.
	CategoryRegular CourseCategory = "regular"
	// CategoryEnglish marks the English track; mandatory and offered in
	// intersemester terms.
	CategoryEnglish CourseCategory = "english"
	// CategoryCoreCurriculum marks the Core Curriculum track; mandatory.
	CategoryCoreCurriculum CourseCategory = "core_curriculum"
	// CategoryIntersemester marks courses that, besides their native
	// semester, can be taken in an intersemester term (Precalculus).
	CategoryIntersemester CourseCategory = "intersemester"
)

// IsValid reports whether the category is one of the known values.
func (c CourseCategory) IsValid() bool {
	switch c {
	case CategoryRegular, CategoryEnglish, CategoryCoreCurriculum, CategoryIntersemester:
		return true
	}
	return false
}

// Mandatory reports whether courses of this category take priority over
// regular courses during selection.
func (c CourseCategory) Mandatory() bool {
	return c == CategoryEnglish || c == CategoryCoreCurriculum
}

// IntersemesterOffered reports whether courses of this category can be taken
// in an intersemester term.
func (c CourseCategory) IntersemesterOffered() bool {
	return c == CategoryEnglish || c == CategoryIntersemester
}

// Course represents a single course in a program's curriculum. Courses are
// defined at catalog load time and never mutated afterwards.
type Course struct {
	ID        int64          `json:"id,omitempty" db:"id"`
	ProgramID int64          `json:"programId,omitempty" db:"program_id"`
	Code      string         `json:"code" db:"code"`
	Name      string         `json:"name" db:"name"`
	Credits   int            `json:"credits" db:"credits"`
	Semester  int            `json:"semester" db:"semester"`
	Category  CourseCategory `json:"category" db:"category"`

	// Prerequisites and Corequisites hold course codes within the same
	// program. Corequisite relations are symmetric.
	Prerequisites []string `json:"prerequisites,omitempty"`
	Corequisites  []string `json:"corequisites,omitempty"`
}
