package api

import (
	"net/http"
	"time"

	"hospedagem-api/internal/domain/booking"
	resdto "hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/internal/pkg/clock"
	"hospedagem-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct {
	occupancyQueries queries.OccupancyQueries
	clock            clock.Clock
}

func NewOccupancyHandler(occupancyQueries queries.OccupancyQueries, clock clock.Clock) *OccupancyHandler {
	return &OccupancyHandler{
		occupancyQueries: occupancyQueries,
		clock:            clock,
	}
}

// @Summary Occupancy report
// @Description Per-room occupied beds and classification for a date
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Param date query string false "Report date (YYYY-MM-DD), defaults to today"
// @Param group query string false "Room group filter"
// @Param status query string false "Classification filter" Enums(free, partially_occupied, fully_occupied)
// @Success 200 {object} resdto.OccupancyReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /occupancy [get]
func (h *OccupancyHandler) Report(c *gin.Context) {
	day := h.clock.Today()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
			return
		}
		day = parsed
	}

	var group *string
	if g := c.Query("group"); g != "" {
		group = &g
	}

	var status *booking.RoomOccupancy
	if statusStr := c.Query("status"); statusStr != "" {
		s := booking.RoomOccupancy(statusStr)
		switch s {
		case booking.OccupancyFree, booking.OccupancyPartially, booking.OccupancyFully:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return
		}
	}

	views, err := h.occupancyQueries.Report(c.Request.Context(), day, group, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancyViews(day.Format(dateLayout), views))
}

// @Summary Dashboard summary
// @Description Room counts by occupancy plus today's expected movements (gerente or admin)
// @Tags occupancy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardSummaryResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /dashboard/summary [get]
func (h *OccupancyHandler) Summary(c *gin.Context) {
	summary, err := h.occupancyQueries.Summary(c.Request.Context(), h.clock.Today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardSummary(summary))
}
