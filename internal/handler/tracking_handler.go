package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/middleware"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/logger"
)

// TrackingHandler handles the fire-and-forget tracking ingress
type TrackingHandler struct {
	service service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(service service.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// TrackPageview godoc
// @Summary      Record a page view
// @Description  Stores a page-view event enriched with best-effort geolocation. Failures never surface to the visitor.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PageviewRequest  true  "Page view"
// @Success      200  {object}  domain.TrackResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /track/pageview [post]
func (h *TrackingHandler) TrackPageview(c *gin.Context) {
	var req domain.PageviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.RecordPageview(
		c.Request.Context(),
		&req,
		clientIP(c),
		c.GetHeader("User-Agent"),
		c.GetHeader("Referer"),
	)
	if err != nil {
		if errors.Is(err, common.ErrTrackingDisabled) {
			c.Status(http.StatusNoContent)
			return
		}
		// Telemetry is best-effort: log and report a soft failure.
		logger.Error("pageview capture failed: %v", err)
		c.JSON(http.StatusOK, domain.TrackResponse{Success: false})
		return
	}

	if resp.ID != "" {
		middleware.CountTrackedEvent(domain.StreamVisitors)
	}
	c.JSON(http.StatusOK, resp)
}

// TrackClick godoc
// @Summary      Record a click
// @Description  Stores a click event with element info and coordinates. Failures never surface to the visitor.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ClickRequest  true  "Click event"
// @Success      200  {object}  domain.TrackResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /track/click [post]
func (h *TrackingHandler) TrackClick(c *gin.Context) {
	var req domain.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.RecordClick(
		c.Request.Context(),
		&req,
		clientIP(c),
		c.GetHeader("User-Agent"),
	)
	if err != nil {
		if errors.Is(err, common.ErrTrackingDisabled) {
			c.Status(http.StatusNoContent)
			return
		}
		logger.Error("click capture failed: %v", err)
		c.JSON(http.StatusOK, domain.TrackResponse{Success: false})
		return
	}

	if resp.ID != "" {
		middleware.CountTrackedEvent(domain.StreamClicks)
	}
	c.JSON(http.StatusOK, resp)
}

// clientIP prefers the raw forwarding header so the proxy chain reaches
// the enrichment step intact
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return c.ClientIP()
}
