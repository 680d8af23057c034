package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Repair is the repairs table row.
type Repair struct {
	RepairID     string          `db:"repair_id"`
	CustomerID   string          `db:"customer_id"`
	TechnicianID string          `db:"technician_id"`
	Device       string          `db:"device"`
	Problem      string          `db:"problem"`
	Price        decimal.Decimal `db:"price"`
	Wage         decimal.Decimal `db:"wage"`
	Status       string          `db:"status"`
	ReceivedAt   time.Time       `db:"received_at"`
	DeliveredAt  *time.Time      `db:"delivered_at"`
	AuditFields
}
