package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus is the lifecycle of a device repair job.
type RepairStatus string

const (
	RepairReceived   RepairStatus = "RECEIVED"
	RepairInProgress RepairStatus = "IN_PROGRESS"
	RepairDelivered  RepairStatus = "DELIVERED"
)

// Repair is a device repair job. Completing it is the one payment
// finalization that posts to the ledger: the customer is debited the repair
// price and the technician partner is credited the wage, in one atomic unit.
type Repair struct {
	RepairID     string          `json:"repairID"`
	CustomerID   string          `json:"customerID"`
	TechnicianID string          `json:"technicianID"` // Partner account
	Device       string          `json:"device"`
	Problem      string          `json:"problem"`
	Price        decimal.Decimal `json:"price"` // Charged to the customer
	Wage         decimal.Decimal `json:"wage"`  // Owed to the technician
	Status       RepairStatus    `json:"status"`
	ReceivedAt   time.Time       `json:"receivedAt"`
	DeliveredAt  *time.Time      `json:"deliveredAt"`
	AuditFields
}
