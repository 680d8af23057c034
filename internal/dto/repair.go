package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// CreateRepairRequest registers a device repair job.
type CreateRepairRequest struct {
	CustomerID   string          `json:"customerID" binding:"required"`
	TechnicianID string          `json:"technicianID" binding:"required"`
	Device       string          `json:"device" binding:"required"`
	Problem      string          `json:"problem"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Wage         decimal.Decimal `json:"wage"`
	ReceivedAt   *time.Time      `json:"receivedAt"` // Defaults to now
}

// CompleteRepairRequest finalizes a repair job.
type CompleteRepairRequest struct {
	DeliveredAt *time.Time `json:"deliveredAt"` // Defaults to now
}

// RepairResponse mirrors domain.Repair for API output.
type RepairResponse struct {
	RepairID     string              `json:"repairID"`
	CustomerID   string              `json:"customerID"`
	TechnicianID string              `json:"technicianID"`
	Device       string              `json:"device"`
	Problem      string              `json:"problem,omitempty"`
	Price        decimal.Decimal     `json:"price"`
	Wage         decimal.Decimal     `json:"wage"`
	Status       domain.RepairStatus `json:"status"`
	ReceivedAt   time.Time           `json:"receivedAt"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
}

// ToRepairResponse converts a domain repair to its response DTO.
func ToRepairResponse(r *domain.Repair) RepairResponse {
	return RepairResponse{
		RepairID:     r.RepairID,
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		Device:       r.Device,
		Problem:      r.Problem,
		Price:        r.Price,
		Wage:         r.Wage,
		Status:       r.Status,
		ReceivedAt:   r.ReceivedAt,
		DeliveredAt:  r.DeliveredAt,
	}
}
