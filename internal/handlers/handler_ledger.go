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

// ledgerHandler handles the append-only ledger endpoints, nested under an
// account.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers the ledger endpoints for an account.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	accounts := rg.Group("/accounts/:accountID")
	{
		accounts.POST("/entries", h.postEntry)
		accounts.GET("/entries", h.listEntries)
		accounts.GET("/balance", h.getBalance)
	}
}

// postEntry appends one manual debit/credit posting to the account.
func (h *ledgerHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	var req dto.PostLedgerEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.PostEntry(c.Request.Context(), accountID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to post ledger entry")
		return
	}

	logger.Info("Ledger entry posted",
		slog.String("account_id", accountID),
		slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listEntries returns one page of the account's entry log, oldest first.
func (h *ledgerHandler) listEntries(c *gin.Context) {
	accountID := c.Param("accountID")
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	entries, newToken, err := h.ledgerService.ListEntries(c.Request.Context(), accountID, limit, nextToken)
	if err != nil {
		respondServiceError(c, err, "Failed to list ledger entries")
		return
	}

	resp := dto.LedgerHistoryResponse{
		Entries:   make([]dto.LedgerEntryResponse, len(entries)),
		NextToken: newToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToLedgerEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ledgerHandler) getBalance(c *gin.Context) {
	accountID := c.Param("accountID")
	if _, ok := requireUserID(c); !ok {
		return
	}

	balance, err := h.ledgerService.GetCurrentBalance(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}
