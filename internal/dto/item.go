package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// CreateItemRequest registers a catalog row so the engine can be exercised.
type CreateItemRequest struct {
	Kind      domain.ItemKind  `json:"kind" binding:"required,oneof=PHONE SERVICE GOODS"`
	Name      string           `json:"name" binding:"required"`
	SalePrice *decimal.Decimal `json:"salePrice"` // nil means not yet priced
	Stock     int64            `json:"stock" binding:"gte=0"`
}

// ItemResponse mirrors domain.Item for API output.
type ItemResponse struct {
	ItemID    string            `json:"itemID"`
	Kind      domain.ItemKind   `json:"kind"`
	Name      string            `json:"name"`
	SalePrice *decimal.Decimal  `json:"salePrice"`
	Stock     int64             `json:"stock"`
	Status    domain.ItemStatus `json:"status"`
	SoldAt    *time.Time        `json:"soldAt,omitempty"`
}

// ToItemResponse converts a domain item to its response DTO.
func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:    it.ItemID,
		Kind:      it.Kind,
		Name:      it.Name,
		SalePrice: it.SalePrice,
		Stock:     it.Stock,
		Status:    it.Status,
		SoldAt:    it.SoldAt,
	}
}
