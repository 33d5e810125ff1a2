package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdrincon/acadplan/internal/app/controllers"
	"github.com/jdrincon/acadplan/internal/app/models/dto"
	"github.com/jdrincon/acadplan/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	programController *controllers.ProgramController,
	recommendationController *controllers.RecommendationController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthCheck)

	// Program catalog routes (public access)
	programs := v1.Group("/programs")
	{
		programs.GET("", programController.GetAllPrograms)
		programs.GET("/:slug/courses", programController.GetProgramCourses)
		programs.POST("/:slug/recommendations",
			middleware.ValidateRequest(func() interface{} { return new(dto.RecommendationRequest) }),
			recommendationController.Recommend)
		programs.GET("/:slug/intersemester-options", recommendationController.IntersemesterOptions)
	}
}

// healthCheck reports service liveness
// @Summary Health check
// @Description Reports whether the service is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is healthy"
// @Router /health [get]
func healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"status": "ok"},
		Timestamp: time.Now(),
	})
}
