package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/services"
	"github.com/pradana/tracerstudy/internal/middleware"
)

// proofDocumentField is the multipart field carrying the enrollment
// proof file.
const proofDocumentField = "bukti_kuliah"

// TracerController handles survey submission and the full roster report
type TracerController struct {
	tracerService services.TracerService
	rosterService services.RosterService
}

// NewTracerController creates a new TracerController
func NewTracerController(tracerService services.TracerService, rosterService services.RosterService) *TracerController {
	return &TracerController{
		tracerService: tracerService,
		rosterService: rosterService,
	}
}

// Submit accepts a survey submission
// @Summary Submit the tracer survey
// @Description Accepts a multipart body with a JSON "data" part and an optional "bukti_kuliah" file, then records the submission in one transaction
// @Tags tracer
// @Accept multipart/form-data
// @Produce json
// @Param data formData string true "Submission payload as JSON"
// @Param bukti_kuliah formData file false "Enrollment proof document"
// @Success 200 {object} dto.APIResponse{data=dto.SubmitTracerResponse} "Submission recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing conditional requirements or unknown status"
// @Failure 404 {object} dto.ErrorResponse "Alumnus not found"
// @Failure 422 {object} dto.ErrorResponse "Malformed or invalid payload"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questionnaire/submit [post]
func (c *TracerController) Submit(ctx *gin.Context) {
	payload := ctx.PostForm("data")
	if payload == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing submission payload")
		errorDetail = errorDetail.WithField("data").WithDetails("data form field is required")
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitTracerRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Malformed submission payload")
		errorDetail = errorDetail.WithField("data").WithDetails(err.Error())
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	document, err := ctx.FormFile(proofDocumentField)
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid proof document")
			errorDetail = errorDetail.WithField(proofDocumentField).WithDetails(err.Error())
			ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
			return
		}
		document = nil
	}

	result, err := c.tracerService.Submit(ctx, &req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetAll produces the full roster report
// @Summary Get the full roster
// @Description Returns one record per alumnus with tracer state, education detail and every questionnaire item, unanswered ones marked
// @Tags tracer
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RosterEntry} "Roster retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tracer/all [get]
func (c *TracerController) GetAll(ctx *gin.Context) {
	entries, err := c.rosterService.GetFullRoster(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}
