package dto

import "github.com/jdrincon/acadplan/internal/app/models"

// ProgramResponse represents basic program information
type ProgramResponse struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	TotalCredits int    `json:"totalCredits"`
}

// NewProgramResponse maps a program model to its response form
func NewProgramResponse(program *models.Program) ProgramResponse {
	return ProgramResponse{
		Slug:         program.Slug,
		Name:         program.Name,
		TotalCredits: program.TotalCredits,
	}
}

// CourseResponse represents one catalog course
type CourseResponse struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	Semester      int      `json:"semester"`
	Category      string   `json:"category"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Corequisites  []string `json:"corequisites,omitempty"`
}

// NewCourseResponse maps a course model to its response form
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		Code:          course.Code,
		Name:          course.Name,
		Credits:       course.Credits,
		Semester:      course.Semester,
		Category:      string(course.Category),
		Prerequisites: course.Prerequisites,
		Corequisites:  course.Corequisites,
	}
}

// CourseListResponse represents a program's course list
type CourseListResponse struct {
	Program ProgramResponse  `json:"program"`
	Courses []CourseResponse `json:"courses"`
}
