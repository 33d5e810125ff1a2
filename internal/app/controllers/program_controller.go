package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdrincon/acadplan/internal/app/models/dto"
	"github.com/jdrincon/acadplan/internal/app/services"
	"github.com/jdrincon/acadplan/internal/middleware"
)

// ProgramController handles catalog browsing operations
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// GetAllPrograms retrieves all academic programs
// @Summary List programs
// @Description Retrieves the academic programs available for recommendation
// @Tags programs
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ProgramResponse} "Programs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetAllPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ProgramResponse, 0, len(programs))
	for _, program := range programs {
		responses = append(responses, dto.NewProgramResponse(program))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      responses,
		Timestamp: time.Now(),
	})
}

// GetProgramCourses retrieves a program's course catalog
// @Summary List program courses
// @Description Retrieves a program's courses in catalog order, optionally restricted to one semester
// @Tags programs
// @Accept json
// @Produce json
// @Param slug path string true "Program slug"
// @Param semester query int false "Native semester filter (1-10)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid semester filter"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{slug}/courses [get]
func (c *ProgramController) GetProgramCourses(ctx *gin.Context) {
	slug := ctx.Param("slug")

	semester := 0
	if semesterStr := ctx.Query("semester"); semesterStr != "" {
		parsed, err := strconv.Atoi(semesterStr)
		if err != nil || parsed < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester filter")
			errorDetail = errorDetail.WithDetails("semester must be a positive number").WithField("semester")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		semester = parsed
	}

	program, err := c.programService.GetProgramBySlug(ctx, slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.programService.GetProgramCourses(ctx, slug, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.CourseListResponse{
		Program: dto.NewProgramResponse(program),
		Courses: make([]dto.CourseResponse, 0, len(courses)),
	}
	for i := range courses {
		response.Courses = append(response.Courses, dto.NewCourseResponse(&courses[i]))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}
