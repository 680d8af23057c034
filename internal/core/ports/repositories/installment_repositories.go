package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// InstallmentReader defines read operations for installment sales.
type InstallmentReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.InstallmentSale, error)

	// FindPaymentsBySaleID returns the sale's schedule ordered by ordinal.
	FindPaymentsBySaleID(ctx context.Context, saleID string) ([]domain.InstallmentPayment, error)

	FindPaymentByID(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error)

	// FindTransactionsByPaymentID returns the money-received events for one
	// obligation, oldest first.
	FindTransactionsByPaymentID(ctx context.Context, paymentID string) ([]domain.InstallmentTransaction, error)

	// SumPaidBySaleID returns Σ(transaction amounts) across all of the
	// sale's payment obligations.
	SumPaidBySaleID(ctx context.Context, saleID string) (decimal.Decimal, error)

	ListSales(ctx context.Context, limit int, offset int) ([]domain.InstallmentSale, error)
}

// InstallmentWriter defines the two atomic units of the installment engine.
type InstallmentWriter interface {
	// CreateSale executes the creation unit: sale row, schedule batch,
	// check batch, item status flip, and the optional ledger posting.
	CreateSale(ctx context.Context, sale domain.InstallmentSale, payments []domain.InstallmentPayment, checks []domain.CheckInstrument, ledgerEntry *domain.LedgerEntry) (*domain.InstallmentSale, error)

	// ApplyPayment inserts the transaction, recomputes the obligation's
	// total paid under a row lock, and updates its status and paid date, all
	// in one transaction. It returns the stored transaction and the updated
	// payment row.
	ApplyPayment(ctx context.Context, txn domain.InstallmentTransaction, paidDate time.Time) (*domain.InstallmentTransaction, *domain.InstallmentPayment, error)
}

// InstallmentRepositoryFacade combines all installment repository interfaces.
type InstallmentRepositoryFacade interface {
	InstallmentReader
	InstallmentWriter
}
