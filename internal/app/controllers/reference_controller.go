package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/services"
	"github.com/pradana/tracerstudy/internal/middleware"
)

// ReferenceController serves the lookup tables backing the survey form
type ReferenceController struct {
	referenceService services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// GetInstitutions lists institutions with their programs
// @Summary Get institutions with programs
// @Description Lists every institution together with the programs it offers
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstitutionWithPrograms} "Institutions retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referensi/perguruan-tinggi [get]
func (c *ReferenceController) GetInstitutions(ctx *gin.Context) {
	institutions, err := c.referenceService.GetInstitutionsWithPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      institutions,
		Timestamp: time.Now(),
	})
}

// GetProgramsByInstitution lists one institution's programs
// @Summary Get programs of an institution
// @Description Lists the programs offered by the given institution
// @Tags reference
// @Accept json
// @Produce json
// @Param id_perguruan_tinggi path int true "Institution ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid institution ID format"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programStudi/{id_perguruan_tinggi} [get]
func (c *ReferenceController) GetProgramsByInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id_perguruan_tinggi")
	if !ok {
		return
	}

	programs, err := c.referenceService.GetProgramsByInstitution(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      programs,
		Timestamp: time.Now(),
	})
}

// GetQuestionnaire lists questions with candidate answers
// @Summary Get the questionnaire reference
// @Description Lists the questionnaire items together with the candidate answers
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.QuestionnaireReference} "Questionnaire retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referensi/kuesioner [get]
func (c *ReferenceController) GetQuestionnaire(ctx *gin.Context) {
	questionnaire, err := c.referenceService.GetQuestionnaire(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      questionnaire,
		Timestamp: time.Now(),
	})
}

// GetAnswers lists the candidate answers
// @Summary Get candidate answers
// @Description Lists the fixed answer scale used by every questionnaire item
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Answer} "Answers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referensi/jawaban [get]
func (c *ReferenceController) GetAnswers(ctx *gin.Context) {
	answers, err := c.referenceService.GetAnswers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      answers,
		Timestamp: time.Now(),
	})
}

// GetStatuses lists the survey status options
// @Summary Get status options
// @Description Lists the post-graduation status options an alumnus can pick
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Status} "Statuses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referensi/status [get]
func (c *ReferenceController) GetStatuses(ctx *gin.Context) {
	statuses, err := c.referenceService.GetStatuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      statuses,
		Timestamp: time.Now(),
	})
}

// GetMetadata bundles every reference set the survey form needs
// @Summary Get questionnaire metadata
// @Description Returns questions, answers, statuses and funding sources in one call
// @Tags reference
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.QuestionnaireMetadata} "Metadata retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quesioner-metadata [get]
func (c *ReferenceController) GetMetadata(ctx *gin.Context) {
	metadata, err := c.referenceService.GetMetadata(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      metadata,
		Timestamp: time.Now(),
	})
}
