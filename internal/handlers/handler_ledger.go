package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SvcLearn/service_learning_app/internal/core/ports/services"
	"github.com/SvcLearn/service_learning_app/internal/dto"
	"github.com/SvcLearn/service_learning_app/internal/middleware"
	"github.com/SvcLearn/service_learning_app/internal/platform/storage"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to the hours ledger.
type ledgerHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
	evidence  storage.EvidenceStore
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerSvc portssvc.LedgerSvcFacade, evidence storage.EvidenceStore) *ledgerHandler {
	return &ledgerHandler{ledgerSvc: ledgerSvc, evidence: evidence}
}

// submitEntry godoc
// @Summary Submit a day of worked hours
// @Description Records one day of work against an in-progress placement owned by the acting student
// @Tags ledger
// @Accept json
// @Produce json
// @Param placementID path string true "Placement ID"
// @Param entry body dto.SubmitEntryRequest true "Hours entry"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid hours or date"
// @Failure 409 {object} ErrorResponse "Duplicate work date or placement not in progress"
// @Router /placements/{placementID}/entries [post]
func (h *ledgerHandler) submitEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind ledger entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerSvc.SubmitEntry(c.Request.Context(), actor, c.Param("placementID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to submit hours")
		return
	}

	logger.Info("Ledger entry submitted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listEntries godoc
// @Summary List a placement's ledger entries
// @Tags ledger
// @Produce json
// @Param placementID path string true "Placement ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 404 {object} ErrorResponse "Placement not found"
// @Router /placements/{placementID}/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.ledgerSvc.ListEntries(c.Request.Context(), actor, c.Param("placementID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// getEntry godoc
// @Summary Get a single ledger entry
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerSvc.GetEntry(c.Request.Context(), actor, c.Param("entryID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// reviewEntry godoc
// @Summary Review a ledger entry
// @Description Sets the acting reviewer's disposition on an entry; the organization and coordinator tracks are independent
// @Tags ledger
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param review body dto.ReviewEntryRequest true "Verdict"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Rejection notes missing"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /entries/{entryID}/review [post]
func (h *ledgerHandler) reviewEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReviewEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerSvc.ReviewEntry(c.Request.Context(), actor, c.Param("entryID"), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to review entry")
		return
	}

	logger.Info("Ledger entry reviewed", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
}

// withdrawEntry godoc
// @Summary Withdraw a pending ledger entry
// @Description Deletes the acting student's entry while the organization disposition is still pending
// @Tags ledger
// @Param entryID path string true "Entry ID"
// @Success 204 "Withdrawn"
// @Failure 409 {object} ErrorResponse "Entry already reviewed"
// @Router /entries/{entryID} [delete]
func (h *ledgerHandler) withdrawEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerSvc.WithdrawEntry(c.Request.Context(), actor, c.Param("entryID")); err != nil {
		respondWithError(c, logger, err, "Failed to withdraw entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// uploadEvidence godoc
// @Summary Upload an evidence artifact
// @Description Stores an evidence file and returns the opaque path to attach to a ledger entry. Content is never inspected.
// @Tags ledger
// @Accept mpfd
// @Produce json
// @Param file formData file true "Evidence file"
// @Success 201 {object} dto.EvidenceUploadResponse
// @Failure 400 {object} ErrorResponse "No file provided"
// @Router /evidence [post]
func (h *ledgerHandler) uploadEvidence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := middleware.GetActorFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store evidence"})
		return
	}
	defer file.Close()

	path, err := h.evidence.Store(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		logger.Error("Failed to store evidence artifact", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store evidence"})
		return
	}

	logger.Info("Evidence artifact stored", slog.String("path", path))
	c.JSON(http.StatusCreated, dto.EvidenceUploadResponse{EvidencePath: path})
}

// registerLedgerRoutes registers ledger specific routes
func registerLedgerRoutes(group *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade, evidence storage.EvidenceStore) {
	h := newLedgerHandler(ledgerSvc, evidence)

	group.POST("/placements/:placementID/entries", h.submitEntry)
	group.GET("/placements/:placementID/entries", h.listEntries)
	group.POST("/evidence", h.uploadEvidence)

	entries := group.Group("/entries")
	{
		entries.GET("/:entryID", h.getEntry)
		entries.DELETE("/:entryID", h.withdrawEntry)
		entries.POST("/:entryID/review", h.reviewEntry)
	}
}
