package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/collegehub/internal/app/models/dto"
	"github.com/mkamau/collegehub/internal/app/repositories"
	"github.com/mkamau/collegehub/internal/middleware"
)

const defaultActivityLimit = 50

// ActivityController exposes the audit trail to management roles
type ActivityController struct {
	activityRepo repositories.IActivityRepository
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityRepo repositories.IActivityRepository) *ActivityController {
	return &ActivityController{activityRepo: activityRepo}
}

// ListRecent returns the most recent audit trail entries
func (c *ActivityController) ListRecent(ctx *gin.Context) {
	limit := defaultActivityLimit
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := c.activityRepo.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}
