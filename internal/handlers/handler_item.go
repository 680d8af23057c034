package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
	"github.com/mobifroosh/shop_backend/internal/middleware"
)

// itemHandler exposes the minimal catalog surface.
type itemHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newItemHandler(is portssvc.InventorySvcFacade) *itemHandler {
	return &itemHandler{inventoryService: is}
}

// registerItemRoutes registers the catalog routes.
func registerItemRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newItemHandler(inventoryService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("/:kind/:itemID", h.getItem)
	}
}

func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create item")
		return
	}

	logger.Info("Item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

func (h *itemHandler) getItem(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}
	kind := domain.ItemKind(c.Param("kind"))

	item, err := h.inventoryService.GetItem(c.Request.Context(), kind, c.Param("itemID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
