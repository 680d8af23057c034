package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
	"github.com/mobifroosh/shop_backend/internal/middleware"
)

// repairHandler handles device repair jobs.
type repairHandler struct {
	repairService portssvc.RepairSvcFacade
}

func newRepairHandler(rs portssvc.RepairSvcFacade) *repairHandler {
	return &repairHandler{repairService: rs}
}

// registerRepairRoutes registers routes related to repairs.
func registerRepairRoutes(rg *gin.RouterGroup, repairService portssvc.RepairSvcFacade) {
	h := newRepairHandler(repairService)

	repairs := rg.Group("/repairs")
	{
		repairs.POST("", h.createRepair)
		repairs.GET("/:repairID", h.getRepair)
		repairs.POST("/:repairID/complete", h.completeRepair)
	}
}

func (h *repairHandler) createRepair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRepairRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	repair, err := h.repairService.CreateRepair(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create repair")
		return
	}

	logger.Info("Repair created", slog.String("repair_id", repair.RepairID))
	c.JSON(http.StatusCreated, dto.ToRepairResponse(repair))
}

func (h *repairHandler) getRepair(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	repair, err := h.repairService.GetRepairByID(c.Request.Context(), c.Param("repairID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve repair")
		return
	}
	c.JSON(http.StatusOK, dto.ToRepairResponse(repair))
}

// completeRepair finalizes the job: status flip plus the customer-debit /
// technician-credit ledger pair in one atomic unit.
func (h *repairHandler) completeRepair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	repairID := c.Param("repairID")
	var req dto.CompleteRepairRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	repair, err := h.repairService.CompleteRepair(c.Request.Context(), repairID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to complete repair")
		return
	}

	logger.Info("Repair completed", slog.String("repair_id", repairID))
	c.JSON(http.StatusOK, dto.ToRepairResponse(repair))
}
