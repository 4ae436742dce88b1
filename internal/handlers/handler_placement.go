package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SvcLearn/service_learning_app/internal/core/domain"

	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/dto"
	"github.com/SvcLearn/service_learning_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// placementHandler handles HTTP requests related to placements.
type placementHandler struct {
	placementSvc portssvc.PlacementSvcFacade
}

// newPlacementHandler creates a new placementHandler.
func newPlacementHandler(placementSvc portssvc.PlacementSvcFacade) *placementHandler {
	return &placementHandler{placementSvc: placementSvc}
}

// requestPlacement godoc
// @Summary Request a service-learning placement
// @Description Creates a placement in the solicited state from an accepted application owned by the acting student
// @Tags placements
// @Accept json
// @Produce json
// @Param placement body dto.RequestPlacementRequest true "Placement request"
// @Success 201 {object} dto.PlacementResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Accepted application not found"
// @Failure 409 {object} ErrorResponse "Placement already exists for this application"
// @Router /placements [post]
func (h *placementHandler) requestPlacement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RequestPlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind placement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	placement, err := h.placementSvc.RequestPlacement(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to request placement")
		return
	}

	logger.Info("Placement requested", slog.String("placement_id", placement.PlacementID))
	c.JSON(http.StatusCreated, dto.ToPlacementResponse(placement))
}

// getPlacement godoc
// @Summary Get a placement
// @Description Retrieves a placement visible to the acting user
// @Tags placements
// @Produce json
// @Param placementID path string true "Placement ID"
// @Success 200 {object} dto.PlacementResponse
// @Failure 404 {object} ErrorResponse "Placement not found"
// @Router /placements/{placementID} [get]
func (h *placementHandler) getPlacement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	placement, err := h.placementSvc.GetPlacement(c.Request.Context(), actor, c.Param("placementID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve placement")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlacementResponse(placement))
}

// listPlacements godoc
// @Summary List placements
// @Description Lists the placements visible to the acting user, optionally filtered by state
// @Tags placements
// @Produce json
// @Param state query string false "Placement state filter (coordinator only)"
// @Success 200 {array} dto.PlacementResponse
// @Router /placements [get]
func (h *placementHandler) listPlacements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListPlacementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	placements, err := h.placementSvc.ListPlacements(c.Request.Context(), actor, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list placements")
		return
	}

	c.JSON(http.StatusOK, dto.ToPlacementResponses(placements))
}

// statusCounts godoc
// @Summary Placement counts per state
// @Description Returns per-state placement counts for the coordinator dashboard
// @Tags placements
// @Produce json
// @Success 200 {object} domain.PlacementStatusCounts
// @Failure 403 {object} ErrorResponse "Coordinator only"
// @Router /placements/status-counts [get]
func (h *placementHandler) statusCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	counts, err := h.placementSvc.StatusCounts(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, logger, err, "Failed to count placements")
		return
	}

	c.JSON(http.StatusOK, counts)
}

// applyDecision wraps the four gate transitions, which differ only in the
// service call they delegate to.
func (h *placementHandler) applyDecision(c *gin.Context, action string,
	apply func(ctx context.Context, actor domain.Actor, placementID, notes string) (*domain.Placement, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
			return
		}
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	placement, err := apply(c.Request.Context(), actor, c.Param("placementID"), req.Notes)
	if err != nil {
		respondWithError(c, logger, err, "Failed to "+action)
		return
	}

	logger.Info("Placement decision applied", slog.String("action", action), slog.String("placement_id", placement.PlacementID))
	c.JSON(http.StatusOK, dto.ToPlacementResponse(placement))
}

// coordinatorApprove godoc
// @Summary Approve a placement (coordinator gate)
// @Tags placements
// @Accept json
// @Produce json
// @Param placementID path string true "Placement ID"
// @Param decision body dto.DecisionRequest false "Optional notes"
// @Success 200 {object} dto.PlacementResponse
// @Failure 409 {object} ErrorResponse "Placement is not solicited"
// @Router /placements/{placementID}/coordinator/approve [post]
func (h *placementHandler) coordinatorApprove(c *gin.Context) {
	h.applyDecision(c, "approve placement", h.placementSvc.CoordinatorApprove)
}

// coordinatorReject godoc
// @Summary Reject a placement (coordinator gate)
// @Tags placements
// @Accept json
// @Produce json
// @Param placementID path string true "Placement ID"
// @Param decision body dto.DecisionRequest true "Rejection notes (required)"
// @Success 200 {object} dto.PlacementResponse
// @Failure 400 {object} ErrorResponse "Notes missing"
// @Failure 409 {object} ErrorResponse "Placement is not solicited"
// @Router /placements/{placementID}/coordinator/reject [post]
func (h *placementHandler) coordinatorReject(c *gin.Context) {
	h.applyDecision(c, "reject placement", h.placementSvc.CoordinatorReject)
}

// organizationAccept godoc
// @Summary Accept a placement (organization gate)
// @Tags placements
// @Accept json
// @Produce json
// @Param placementID path string true "Placement ID"
// @Param decision body dto.DecisionRequest false "Optional notes"
// @Success 200 {object} dto.PlacementResponse
// @Failure 409 {object} ErrorResponse "Placement is not coordinator-approved"
// @Router /placements/{placementID}/organization/accept [post]
func (h *placementHandler) organizationAccept(c *gin.Context) {
	h.applyDecision(c, "accept placement", h.placementSvc.OrganizationAccept)
}

// organizationReject godoc
// @Summary Reject a placement (organization gate)
// @Tags placements
// @Accept json
// @Produce json
// @Param placementID path string true "Placement ID"
// @Param decision body dto.DecisionRequest true "Rejection notes (required)"
// @Success 200 {object} dto.PlacementResponse
// @Failure 400 {object} ErrorResponse "Notes missing"
// @Failure 409 {object} ErrorResponse "Placement is not coordinator-approved"
// @Router /placements/{placementID}/organization/reject [post]
func (h *placementHandler) organizationReject(c *gin.Context) {
	h.applyDecision(c, "reject placement", h.placementSvc.OrganizationReject)
}

// cancelPlacement godoc
// @Summary Cancel a solicited placement
// @Description Deletes the acting student's placement while it is still solicited
// @Tags placements
// @Param placementID path string true "Placement ID"
// @Success 204 "Cancelled"
// @Failure 409 {object} ErrorResponse "Placement already processed"
// @Router /placements/{placementID} [delete]
func (h *placementHandler) cancelPlacement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.placementSvc.CancelPlacement(c.Request.Context(), actor, c.Param("placementID")); err != nil {
		respondWithError(c, logger, err, "Failed to cancel placement")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerPlacementRoutes registers placement specific routes
func registerPlacementRoutes(group *gin.RouterGroup, placementSvc portssvc.PlacementSvcFacade) {
	h := newPlacementHandler(placementSvc)

	placements := group.Group("/placements")
	{
		placements.POST("", h.requestPlacement)
		placements.GET("", h.listPlacements)
		placements.GET("/status-counts", h.statusCounts)
		placements.GET("/:placementID", h.getPlacement)
		placements.DELETE("/:placementID", h.cancelPlacement)
		placements.POST("/:placementID/coordinator/approve", h.coordinatorApprove)
		placements.POST("/:placementID/coordinator/reject", h.coordinatorReject)
		placements.POST("/:placementID/organization/accept", h.organizationAccept)
		placements.POST("/:placementID/organization/reject", h.organizationReject)
	}
}
