package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pradana/tracerstudy/internal/app/models/dto"
	"github.com/pradana/tracerstudy/internal/app/services"
	"github.com/pradana/tracerstudy/internal/middleware"
)

// AuthController handles administrator authentication
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates an administrator
// @Summary Administrator login
// @Description Verifies credentials and returns a bearer token for the protected endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Administrator credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
