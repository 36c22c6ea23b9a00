package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/services"
	"github.com/pradana/tracerstudy/internal/middleware"
)

// StatisticController serves the aggregated reporting endpoints
type StatisticController struct {
	statisticService services.StatisticService
}

// NewStatisticController creates a new StatisticController
func NewStatisticController(statisticService services.StatisticService) *StatisticController {
	return &StatisticController{
		statisticService: statisticService,
	}
}

// GetAlumniStatistics reports participation figures
// @Summary Get alumni statistics
// @Description Reports totals, participation and continuing-education percentages, and per-year counts
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AlumniStatistics} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /statistik/alumni [get]
func (c *StatisticController) GetAlumniStatistics(ctx *gin.Context) {
	stats, err := c.statisticService.GetAlumniStatistics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// GetQuestionnaireBreakdown reports answer distributions
// @Summary Get questionnaire breakdown
// @Description Reports, per question and graduation year, how many alumni picked each answer
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionBreakdown} "Breakdown retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /statistik/kuesioner [get]
func (c *StatisticController) GetQuestionnaireBreakdown(ctx *gin.Context) {
	breakdown, err := c.statisticService.GetQuestionnaireBreakdown(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      breakdown,
		Timestamp: time.Now(),
	})
}
