package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdrincon/acadplan/internal/app/models/dto"
	"github.com/jdrincon/acadplan/internal/app/services"
	"github.com/jdrincon/acadplan/internal/middleware"
)

// RecommendationController handles recommendation operations
type RecommendationController struct {
	recommendationService *services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// Recommend computes the recommended course plan for the next term
// @Summary Recommend next-term courses
// @Description Computes the recommended course set for the student's next term from the approved-course snapshot and semester configuration
// @Tags recommendations
// @Accept json
// @Produce json
// @Param slug path string true "Program slug"
// @Param request body dto.RecommendationRequest true "Approved courses and semester configuration"
// @Success 200 {object} dto.APIResponse{data=dto.RecommendationResponse} "Recommendation computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or semester configuration"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 422 {object} dto.ErrorResponse "Catalog integrity violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{slug}/recommendations [post]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	slug := ctx.Param("slug")

	// The route runs behind middleware.ValidateRequest; bind directly only
	// when the handler is mounted without it.
	var request *dto.RecommendationRequest
	if body, ok := ctx.Get(middleware.ValidatedBodyKey); ok {
		request = body.(*dto.RecommendationRequest)
	} else {
		request = new(dto.RecommendationRequest)
		if err := ctx.ShouldBindJSON(request); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	result, err := c.recommendationService.Recommend(ctx, slug, request.ApprovedCourses, request.SemesterConfig())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewRecommendationResponse(result),
		Timestamp: time.Now(),
	})
}

// IntersemesterOptions lists the intersemester courses open to the student
// @Summary List intersemester options
// @Description Retrieves the intersemester courses the student could take, English levels first
// @Tags recommendations
// @Accept json
// @Produce json
// @Param slug path string true "Program slug"
// @Param approved query []string false "Approved course codes" collectionFormat(multi)
// @Success 200 {object} dto.APIResponse{data=dto.IntersemesterOptionsResponse} "Options retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown approved course code"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 422 {object} dto.ErrorResponse "Catalog integrity violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{slug}/intersemester-options [get]
func (c *RecommendationController) IntersemesterOptions(ctx *gin.Context) {
	slug := ctx.Param("slug")
	approved := ctx.QueryArray("approved")

	options, err := c.recommendationService.IntersemesterOptions(ctx, slug, approved)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewIntersemesterOptionsResponse(options),
		Timestamp: time.Now(),
	})
}
