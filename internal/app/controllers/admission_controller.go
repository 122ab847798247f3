package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/services"
	"github.com/mkamau/collegehub/internal/middleware"
)

// AdmissionController handles the student admission endpoint
type AdmissionController struct {
	admissionService *services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService *services.AdmissionService) *AdmissionController {
	return &AdmissionController{admissionService: admissionService}
}

// AdmitStudent admits a new student: account, student record and fee rows
// are created in one transaction, then the welcome email goes out.
func (c *AdmissionController) AdmitStudent(ctx *gin.Context) {
	actorID, err := middleware.PrincipalID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.admissionService.AdmitStudent(ctx.Request.Context(), actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(result))
}
