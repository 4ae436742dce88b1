package handlers

import (
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/dto"
	"github.com/SvcLearn/service_learning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// progressHandler handles HTTP requests for derived progress figures.
type progressHandler struct {
	progressSvc portssvc.ProgressReaderSvc
}

// newProgressHandler creates a new progressHandler.
func newProgressHandler(progressSvc portssvc.ProgressReaderSvc) *progressHandler {
	return &progressHandler{progressSvc: progressSvc}
}

// getProgress godoc
// @Summary Progress snapshot for a placement
// @Description Returns hour totals, percent complete and remaining figures, all derived from the ledger
// @Tags progress
// @Produce json
// @Param placementID path string true "Placement ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 404 {object} ErrorResponse "Placement not found"
// @Router /placements/{placementID}/progress [get]
func (h *progressHandler) getProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	snapshot, err := h.progressSvc.Snapshot(c.Request.Context(), actor, c.Param("placementID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute progress")
		return
	}

	c.JSON(http.StatusOK, dto.ToProgressResponse(snapshot))
}

// monthlyReport godoc
// @Summary Monthly hours report
// @Description Details one calendar month of a placement's ledger
// @Tags progress
// @Produce json
// @Param placementID path string true "Placement ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Router /placements/{placementID}/reports/monthly [get]
func (h *progressHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month"})
		return
	}

	report, err := h.progressSvc.MonthlyReport(c.Request.Context(), actor, c.Param("placementID"), year, time.Month(month))
	if err != nil {
		respondWithError(c, logger, err, "Failed to build monthly report")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// monthlyTotals godoc
// @Summary Per-month hour totals
// @Description Returns logged hour totals grouped by calendar month
// @Tags progress
// @Produce json
// @Param placementID path string true "Placement ID"
// @Success 200 {array} domain.MonthlyHoursAggregate
// @Failure 404 {object} ErrorResponse "Placement not found"
// @Router /placements/{placementID}/reports/monthly-totals [get]
func (h *progressHandler) monthlyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	aggregates, err := h.progressSvc.MonthlyAggregates(c.Request.Context(), actor, c.Param("placementID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to aggregate monthly hours")
		return
	}

	c.JSON(http.StatusOK, aggregates)
}

// registerProgressRoutes registers progress specific routes
func registerProgressRoutes(group *gin.RouterGroup, progressSvc portssvc.ProgressReaderSvc) {
	h := newProgressHandler(progressSvc)

	group.GET("/placements/:placementID/progress", h.getProgress)
	group.GET("/placements/:placementID/reports/monthly", h.monthlyReport)
	group.GET("/placements/:placementID/reports/monthly-totals", h.monthlyTotals)
}
