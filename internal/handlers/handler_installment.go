package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
	"github.com/mobifroosh/shop_backend/internal/middleware"
)

// installmentHandler handles the installment sale lifecycle.
type installmentHandler struct {
	installmentService portssvc.InstallmentSvcFacade
}

func newInstallmentHandler(is portssvc.InstallmentSvcFacade) *installmentHandler {
	return &installmentHandler{installmentService: is}
}

// registerInstallmentRoutes registers the installment sale, payment, and
// check routes.
func registerInstallmentRoutes(rg *gin.RouterGroup, installmentService portssvc.InstallmentSvcFacade) {
	h := newInstallmentHandler(installmentService)

	sales := rg.Group("/installment-sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:saleID", h.getSaleDetail)
	}

	payments := rg.Group("/installment-payments")
	{
		payments.POST("/:paymentID/transactions", h.applyPayment)
		payments.POST("/:paymentID/settle", h.settlePayment)
	}

	checks := rg.Group("/checks")
	{
		checks.PUT("/:checkID/status", h.setCheckStatus)
	}
}

// createSale executes the installment creation atomic unit.
func (h *installmentHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInstallmentSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.installmentService.CreateInstallmentSale(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create installment sale")
		return
	}

	logger.Info("Installment sale created", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToInstallmentSaleResponse(sale))
}

// getSaleDetail returns the sale with schedule, checks, and the derived
// status and remaining balance.
func (h *installmentHandler) getSaleDetail(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	detail, err := h.installmentService.GetSaleDetail(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve installment sale")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *installmentHandler) listSales(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	sales, err := h.installmentService.ListSales(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list installment sales")
		return
	}

	resp := make([]dto.InstallmentSaleResponse, len(sales))
	for i := range sales {
		resp[i] = dto.ToInstallmentSaleResponse(&sales[i])
	}
	c.JSON(http.StatusOK, gin.H{"sales": resp})
}

// applyPayment records a (possibly partial) payment against an obligation.
func (h *installmentHandler) applyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")
	var req dto.ApplyPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.installmentService.ApplyPartialPayment(c.Request.Context(), paymentID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to apply payment")
		return
	}

	logger.Info("Payment applied",
		slog.String("payment_id", paymentID),
		slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToInstallmentTransactionResponse(txn))
}

// settlePayment marks an obligation fully paid as of the given date.
func (h *installmentHandler) settlePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")
	var req dto.SettlePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.installmentService.SettlePayment(c.Request.Context(), paymentID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to settle payment")
		return
	}

	logger.Info("Payment settled", slog.String("payment_id", paymentID))
	c.JSON(http.StatusCreated, dto.ToInstallmentTransactionResponse(txn))
}

// setCheckStatus moves a check instrument through its state machine.
func (h *installmentHandler) setCheckStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	checkID := c.Param("checkID")
	var req dto.SetCheckStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	check, err := h.installmentService.SetCheckStatus(c.Request.Context(), checkID, req.Status, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update check status")
		return
	}

	logger.Info("Check status updated",
		slog.String("check_id", checkID),
		slog.String("status", string(check.Status)))
	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}
