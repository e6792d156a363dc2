package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/ginutil"
)

// StatsHandler serves analytics to the admin dashboard
type StatsHandler struct {
	service service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetVisitorStats godoc
// @Summary      Visitor statistics
// @Description  Aggregated page-view counts with optional raw records, filtered by inclusive UTC date bounds
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Param        date       query  string  false  "Single day (YYYY-MM-DD)"
// @Param        page       query  int     false  "Page number (1-indexed)"
// @Param        visitors   query  bool    false  "Include raw records"
// @Success      200  {object}  domain.VisitorStatsResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/stats/visitors [get]
func (h *StatsHandler) GetVisitorStats(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid date filter", err)
		return
	}

	page := ginutil.QueryInt(c, "page", 1)
	includeRecords := ginutil.QueryBool(c, "visitors") || ginutil.QueryBool(c, "records")

	stats, err := h.service.VisitorStats(c.Request.Context(), filter, page, includeRecords)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load visitor stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetClickStats godoc
// @Summary      Click statistics
// @Description  Aggregated click counts with optional raw records
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "End date (YYYY-MM-DD)"
// @Param        date       query  string  false  "Single day (YYYY-MM-DD)"
// @Param        page       query  int     false  "Page number (1-indexed)"
// @Param        records    query  bool    false  "Include raw records"
// @Success      200  {object}  domain.ClickStatsResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/stats/clicks [get]
func (h *StatsHandler) GetClickStats(c *gin.Context) {
	filter, err := parseStatsFilter(c)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid date filter", err)
		return
	}

	page := ginutil.QueryInt(c, "page", 1)
	includeRecords := ginutil.QueryBool(c, "records") || ginutil.QueryBool(c, "clicks")

	stats, err := h.service.ClickStats(c.Request.Context(), filter, page, includeRecords)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load click stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteVisitorStats godoc
// @Summary      Delete all visitor events
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DeleteResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/stats/visitors [delete]
func (h *StatsHandler) DeleteVisitorStats(c *gin.Context) {
	if err := h.service.DeleteVisitors(c.Request.Context()); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete visitor events", err)
		return
	}
	c.JSON(http.StatusOK, domain.DeleteResponse{Success: true})
}

// DeleteClickStats godoc
// @Summary      Delete all click events
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DeleteResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/stats/clicks [delete]
func (h *StatsHandler) DeleteClickStats(c *gin.Context) {
	if err := h.service.DeleteClicks(c.Request.Context()); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete click events", err)
		return
	}
	c.JSON(http.StatusOK, domain.DeleteResponse{Success: true})
}

// parseStatsFilter reads date bounds from the query. `date` selects a
// single day and wins over start/end. Bounds are inclusive UTC days.
func parseStatsFilter(c *gin.Context) (domain.StatsFilter, error) {
	var filter domain.StatsFilter

	if day := c.Query("date"); day != "" {
		t, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return filter, err
		}
		filter.Start = t
		filter.End = endOfDay(t)
		return filter, nil
	}

	if start := c.Query("startDate"); start != "" {
		t, err := time.ParseInLocation("2006-01-02", start, time.UTC)
		if err != nil {
			return filter, err
		}
		filter.Start = t
	}
	if end := c.Query("endDate"); end != "" {
		t, err := time.ParseInLocation("2006-01-02", end, time.UTC)
		if err != nil {
			return filter, err
		}
		filter.End = endOfDay(t)
	}
	return filter, nil
}

func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
