package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	inventoryRepo := newPgxInventoryRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool, inventoryRepo, ledgerRepo)
	installmentRepo := newPgxInstallmentRepository(dbPool, inventoryRepo, ledgerRepo)
	checkRepo := newPgxCheckRepository(dbPool)
	repairRepo := newPgxRepairRepository(dbPool, ledgerRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		LedgerRepo:      ledgerRepo,
		InventoryRepo:   inventoryRepo,
		SaleRepo:        saleRepo,
		InstallmentRepo: installmentRepo,
		CheckRepo:       checkRepo,
		RepairRepo:      repairRepo,
	}
}
