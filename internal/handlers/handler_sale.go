package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
	"github.com/mobifroosh/shop_backend/internal/middleware"
)

// saleHandler handles plain cash/credit sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers routes related to plain sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("/:saleID", h.getSale)
	}
}

// recordSale executes the sale atomic unit: inventory mutation, sale row,
// and the conditional customer debit.
func (h *saleHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to record sale")
		return
	}

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleRecordResponse(sale))
}

func (h *saleHandler) getSale(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleRecordResponse(sale))
}
