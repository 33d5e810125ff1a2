package dto

import (
	"github.com/jdrincon/acadplan/internal/app/models"
	"github.com/jdrincon/acadplan/internal/app/services"
)

// RecommendationRequest carries the approved-course snapshot and the
// semester configuration for one recommendation call
type RecommendationRequest struct {
	ApprovedCourses []string `json:"approvedCourses"`
	HalfEnrollment  bool     `json:"halfEnrollment"`
	ExtraCredits    int      `json:"extraCredits" binding:"gte=0"`
	Intersemester   bool     `json:"intersemester"`
}

// SemesterConfig converts the request fields into the engine's value object
func (r *RecommendationRequest) SemesterConfig() models.SemesterConfig {
	return models.SemesterConfig{
		HalfEnrollment: r.HalfEnrollment,
		ExtraCredits:   r.ExtraCredits,
		Intersemester:  r.Intersemester,
	}
}

// RecommendedCourseResponse is one recommended course, in selection order
type RecommendedCourseResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Semester int    `json:"semester"`
	Category string `json:"category"`
}

// WarningResponse is a non-fatal advisory attached to the recommendation
type WarningResponse struct {
	Kind       string `json:"kind"`
	CourseCode string `json:"courseCode,omitempty"`
	Message    string `json:"message"`
}

// CostResponse is the tuition estimate for the recommended term
type CostResponse struct {
	SemesterFee      int64 `json:"semesterFee"`
	ExtraCreditsUsed int   `json:"extraCreditsUsed"`
	ExtraCreditsFee  int64 `json:"extraCreditsFee"`
	Total            int64 `json:"total"`
}

// RecommendationResponse is the full recommendation payload
type RecommendationResponse struct {
	Program         ProgramResponse             `json:"program"`
	CurrentSemester int                         `json:"currentSemester"`
	ApprovedCredits int                         `json:"approvedCredits"`
	CreditCap       int                         `json:"creditCap"`
	Courses         []RecommendedCourseResponse `json:"courses"`
	TotalCredits    int                         `json:"totalCredits"`
	Cost            CostResponse                `json:"cost"`
	Warnings        []WarningResponse           `json:"warnings"`
}

// NewRecommendationResponse maps a service result to the response payload.
// A negative credit cap is the intersemester sentinel and is passed through
// unchanged; the host renders it as "not credit-limited".
func NewRecommendationResponse(result *services.RecommendationResult) RecommendationResponse {
	rec := result.Recommendation

	courses := make([]RecommendedCourseResponse, 0, len(rec.Courses))
	for _, course := range rec.Courses {
		courses = append(courses, RecommendedCourseResponse{
			Code:     course.Code,
			Name:     course.Name,
			Credits:  course.Credits,
			Semester: course.Semester,
			Category: string(course.Category),
		})
	}

	warnings := make([]WarningResponse, 0, len(rec.Warnings))
	for _, warning := range rec.Warnings {
		warnings = append(warnings, WarningResponse{
			Kind:       string(warning.Kind),
			CourseCode: warning.CourseCode,
			Message:    warning.Message,
		})
	}

	return RecommendationResponse{
		Program:         NewProgramResponse(result.Program),
		CurrentSemester: result.CurrentSemester,
		ApprovedCredits: result.ApprovedCredits,
		CreditCap:       rec.CreditCap,
		Courses:         courses,
		TotalCredits:    rec.TotalCredits,
		Cost: CostResponse{
			SemesterFee:      result.Cost.SemesterFee,
			ExtraCreditsUsed: result.Cost.ExtraCreditsUsed,
			ExtraCreditsFee:  result.Cost.ExtraCreditsFee,
			Total:            result.Cost.Total,
		},
		Warnings: warnings,
	}
}

// IntersemesterOptionsResponse lists the intersemester courses open to the
// student, best priority first
type IntersemesterOptionsResponse struct {
	Options []RecommendedCourseResponse `json:"options"`
}

// NewIntersemesterOptionsResponse maps the option list to its response form
func NewIntersemesterOptionsResponse(options []*models.Course) IntersemesterOptionsResponse {
	resp := IntersemesterOptionsResponse{Options: make([]RecommendedCourseResponse, 0, len(options))}
	for _, course := range options {
		resp.Options = append(resp.Options, RecommendedCourseResponse{
			Code:     course.Code,
			Name:     course.Name,
			Credits:  course.Credits,
			Semester: course.Semester,
			Category: string(course.Category),
		})
	}
	return resp
}
