package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/services"
	"github.com/mkamau/collegehub/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a user and returns an access token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(token))
}

// GetProfile returns the authenticated user's own profile
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, err := middleware.PrincipalID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile))
}
