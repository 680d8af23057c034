package services

import (
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	notifier := NewLogNotificationDispatcher()

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Ledger:      NewLedgerService(repos.AccountRepo, repos.LedgerRepo),
		Inventory:   NewInventoryService(repos.InventoryRepo),
		Sale:        NewSaleService(repos.SaleRepo, repos.InventoryRepo, repos.AccountRepo),
		Installment: NewInstallmentService(repos.InstallmentRepo, repos.CheckRepo, repos.InventoryRepo, repos.AccountRepo, notifier),
		Repair:      NewRepairService(repos.RepairRepo, repos.AccountRepo),
	}
}
