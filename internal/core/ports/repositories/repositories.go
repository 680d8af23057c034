package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	InventoryRepo   InventoryCatalog
	SaleRepo        SaleRepositoryFacade
	InstallmentRepo InstallmentRepositoryFacade
	CheckRepo       CheckRepositoryFacade
	RepairRepo      RepairRepositoryFacade
}
