package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/services"
	"github.com/pradana/tracerstudy/internal/middleware"
)

// AlumniController handles alumni identity and lookup operations
type AlumniController struct {
	alumniService services.AlumniService
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
	}
}

// Check verifies an alumnus identity
// @Summary Verify alumni identity
// @Description Matches the four identity fields against the alumni roster and reports whether the survey was already filled
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body dto.CheckAlumniRequest true "Identity fields"
// @Success 200 {object} dto.APIResponse{data=dto.CheckAlumniResponse} "Identity verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "No matching alumnus"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/check [post]
func (c *AlumniController) Check(ctx *gin.Context) {
	var req dto.CheckAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.alumniService.Check(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// Create registers a new alumnus
// @Summary Create a new alumnus
// @Description Creates an alumni record together with its empty tracer row
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAlumniRequest true "Alumni information"
// @Success 201 {object} dto.APIResponse{data=models.Alumni} "Alumnus created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Alumnus already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni/create [post]
func (c *AlumniController) Create(ctx *gin.Context) {
	var req dto.CreateAlumniRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	alumni, err := c.alumniService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// Detail retrieves one alumnus by id
// @Summary Get alumni details
// @Description Retrieves the personal data shown on the questionnaire form
// @Tags alumni
// @Accept json
// @Produce json
// @Param id_alumni path int true "Alumni ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Alumni} "Alumnus retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID format"
// @Failure 404 {object} dto.ErrorResponse "Alumnus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questionnaire/detail/{id_alumni} [get]
func (c *AlumniController) Detail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id_alumni")
	if !ok {
		return
	}

	alumni, err := c.alumniService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      alumni,
		Timestamp: time.Now(),
	})
}

// TracerStatus reports the survey completion flag
// @Summary Get tracer status
// @Description Reports whether the alumnus already submitted the survey
// @Tags alumni
// @Accept json
// @Produce json
// @Param id_alumni path int true "Alumni ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.TracerStatusResponse} "Status retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid alumni ID format"
// @Failure 404 {object} dto.ErrorResponse "Alumnus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tracer/status/{id_alumni} [get]
func (c *AlumniController) TracerStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id_alumni")
	if !ok {
		return
	}

	status, err := c.alumniService.GetTracerStatus(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}

// parseIDParam parses a positive int64 path parameter, writing the 400
// response itself when the value is invalid.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithField(name).WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
