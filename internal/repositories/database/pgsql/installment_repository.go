package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	"github.com/mobifroosh/shop_backend/internal/models"
	"github.com/mobifroosh/shop_backend/internal/utils/mapping"
)

type PgxInstallmentRepository struct {
	BaseRepository
	inventoryRepo portsrepo.InventoryCatalog
	ledgerRepo    portsrepo.LedgerRepositoryFacade
}

// newPgxInstallmentRepository creates a new repository for installment sales,
// their payment schedules, and the transactions applied against them.
func newPgxInstallmentRepository(pool *pgxpool.Pool, inventoryRepo portsrepo.InventoryCatalog, ledgerRepo portsrepo.LedgerRepositoryFacade) *PgxInstallmentRepository {
	return &PgxInstallmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		inventoryRepo:  inventoryRepo,
		ledgerRepo:     ledgerRepo,
	}
}

var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

const installmentSaleColumns = `sale_id, customer_id, item_kind, item_id, sale_price, down_payment, installment_count, installment_amount, start_date, notes, created_at, created_by, last_updated_at, last_updated_by`

const installmentPaymentColumns = `payment_id, sale_id, ordinal, due_date, amount_due, status, paid_date, created_at, created_by, last_updated_at, last_updated_by`

// CreateSale executes the installment sale's atomic unit: the sale row, the
// schedule batch, the check batch, the item status flip, and the optional
// ledger posting of the financed remainder. All-or-nothing.
func (r *PgxInstallmentRepository) CreateSale(ctx context.Context, sale domain.InstallmentSale, payments []domain.InstallmentPayment, checks []domain.CheckInstrument, ledgerEntry *domain.LedgerEntry) (*domain.InstallmentSale, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	item, err := r.inventoryRepo.FindItemForUpdate(ctx, tx, sale.ItemKind, sale.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemAvailable {
		return nil, fmt.Errorf("%w: item %s is not available (status %s)", apperrors.ErrConflict, sale.ItemID, item.Status)
	}
	if err := r.inventoryRepo.MarkSoldInTx(ctx, tx, sale.ItemKind, sale.ItemID, domain.ItemInstallmentSale, sale.CreatedAt, sale.CreatedBy, sale.CreatedAt); err != nil {
		return nil, err
	}

	m := mapping.ToModelInstallmentSale(sale)
	_, err = tx.Exec(ctx, `
		INSERT INTO installment_sales (`+installmentSaleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`,
		m.SaleID,
		m.CustomerID,
		m.ItemKind,
		m.ItemID,
		m.SalePrice,
		m.DownPayment,
		m.InstallmentCount,
		m.InstallmentAmount,
		m.StartDate,
		nullIfEmpty(m.Notes),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert installment sale "+m.SaleID, err)
	}

	batch := &pgx.Batch{}
	paymentQuery := `
		INSERT INTO installment_payments (` + installmentPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, p := range payments {
		mp := mapping.ToModelInstallmentPayment(p)
		batch.Queue(paymentQuery,
			mp.PaymentID,
			mp.SaleID,
			mp.Ordinal,
			mp.DueDate,
			mp.AmountDue,
			mp.Status,
			mp.PaidDate,
			mp.CreatedAt,
			mp.CreatedBy,
			mp.LastUpdatedAt,
			mp.LastUpdatedBy,
		)
	}
	checkQuery := `
		INSERT INTO check_instruments (check_id, sale_id, check_number, bank_name, due_date, amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, c := range checks {
		mc := mapping.ToModelCheckInstrument(c)
		batch.Queue(checkQuery,
			mc.CheckID,
			mc.SaleID,
			mc.CheckNumber,
			mc.BankName,
			mc.DueDate,
			mc.Amount,
			mc.Status,
			mc.CreatedAt,
			mc.CreatedBy,
			mc.LastUpdatedAt,
			mc.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert schedule batch for sale "+m.SaleID, err)
	}

	if ledgerEntry != nil {
		if _, err := r.ledgerRepo.PostEntryInTx(ctx, tx, *ledgerEntry); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ApplyPayment records one money-received event and rederives the
// obligation's status from the transaction sum, all under a row lock.
func (r *PgxInstallmentRepository) ApplyPayment(ctx context.Context, txn domain.InstallmentTransaction, paidDate time.Time) (*domain.InstallmentTransaction, *domain.InstallmentPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	var mp models.InstallmentPayment
	err = tx.QueryRow(ctx, `
		SELECT `+installmentPaymentColumns+`
		FROM installment_payments
		WHERE payment_id = $1
		FOR UPDATE;
	`, txn.PaymentID).Scan(
		&mp.PaymentID,
		&mp.SaleID,
		&mp.Ordinal,
		&mp.DueDate,
		&mp.AmountDue,
		&mp.Status,
		&mp.PaidDate,
		&mp.CreatedAt,
		&mp.CreatedBy,
		&mp.LastUpdatedAt,
		&mp.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, apperrors.NewAppError(500, "failed to lock payment "+txn.PaymentID, err)
	}

	mt := mapping.ToModelInstallmentTransaction(txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO installment_transactions (transaction_id, payment_id, amount, paid_at, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`,
		mt.TransactionID,
		mt.PaymentID,
		mt.Amount,
		mt.PaidAt,
		nullIfEmpty(mt.Notes),
		mt.CreatedAt,
		mt.CreatedBy,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to insert installment transaction "+mt.TransactionID, err)
	}

	var totalPaid decimal.Decimal
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM installment_transactions
		WHERE payment_id = $1;
	`, txn.PaymentID).Scan(&totalPaid)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to sum transactions for payment "+txn.PaymentID, err)
	}

	newStatus := domain.DerivePaymentStatus(totalPaid, mp.AmountDue)
	var newPaidDate *time.Time
	if newStatus != domain.Unpaid {
		newPaidDate = &paidDate
	}

	_, err = tx.Exec(ctx, `
		UPDATE installment_payments
		SET status = $2, paid_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE payment_id = $1;
	`, txn.PaymentID, string(newStatus), newPaidDate, txn.CreatedAt, txn.CreatedBy)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to update status for payment "+txn.PaymentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	mp.Status = string(newStatus)
	mp.PaidDate = newPaidDate
	updated := mapping.ToDomainInstallmentPayment(mp)
	return &txn, &updated, nil
}

// FindSaleByID retrieves an installment sale.
func (r *PgxInstallmentRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.InstallmentSale, error) {
	query := `SELECT ` + installmentSaleColumns + ` FROM installment_sales WHERE sale_id = $1;`
	m, err := scanInstallmentSaleRow(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find installment sale "+saleID, err)
	}
	s := mapping.ToDomainInstallmentSale(*m)
	return &s, nil
}

// ListSales retrieves a paginated list of installment sales, newest first.
func (r *PgxInstallmentRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.InstallmentSale, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + installmentSaleColumns + ` FROM installment_sales ORDER BY created_at DESC, sale_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query installment sales", err)
	}
	defer rows.Close()

	sales := []domain.InstallmentSale{}
	for rows.Next() {
		m, err := scanInstallmentSaleRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan installment sale row", err)
		}
		sales = append(sales, mapping.ToDomainInstallmentSale(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating installment sale rows", err)
	}
	return sales, nil
}

// FindPaymentsBySaleID returns the sale's schedule ordered by ordinal.
func (r *PgxInstallmentRepository) FindPaymentsBySaleID(ctx context.Context, saleID string) ([]domain.InstallmentPayment, error) {
	query := `SELECT ` + installmentPaymentColumns + ` FROM installment_payments WHERE sale_id = $1 ORDER BY ordinal;`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for sale "+saleID, err)
	}
	defer rows.Close()

	payments := []models.InstallmentPayment{}
	for rows.Next() {
		var m models.InstallmentPayment
		err := rows.Scan(
			&m.PaymentID,
			&m.SaleID,
			&m.Ordinal,
			&m.DueDate,
			&m.AmountDue,
			&m.Status,
			&m.PaidDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row for sale "+saleID, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows for sale "+saleID, err)
	}
	return mapping.ToDomainInstallmentPaymentSlice(payments), nil
}

// FindPaymentByID retrieves one scheduled obligation.
func (r *PgxInstallmentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error) {
	query := `SELECT ` + installmentPaymentColumns + ` FROM installment_payments WHERE payment_id = $1;`
	var m models.InstallmentPayment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.SaleID,
		&m.Ordinal,
		&m.DueDate,
		&m.AmountDue,
		&m.Status,
		&m.PaidDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment "+paymentID, err)
	}
	p := mapping.ToDomainInstallmentPayment(m)
	return &p, nil
}

// FindTransactionsByPaymentID returns the money-received events for one
// obligation, oldest first.
func (r *PgxInstallmentRepository) FindTransactionsByPaymentID(ctx context.Context, paymentID string) ([]domain.InstallmentTransaction, error) {
	query := `
		SELECT transaction_id, payment_id, amount, paid_at, notes, created_at, created_by
		FROM installment_transactions
		WHERE payment_id = $1
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for payment "+paymentID, err)
	}
	defer rows.Close()

	txns := []models.InstallmentTransaction{}
	for rows.Next() {
		var m models.InstallmentTransaction
		var notes *string
		err := rows.Scan(
			&m.TransactionID,
			&m.PaymentID,
			&m.Amount,
			&m.PaidAt,
			&notes,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for payment "+paymentID, err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for payment "+paymentID, err)
	}
	return mapping.ToDomainInstallmentTransactionSlice(txns), nil
}

// SumPaidBySaleID returns Σ(transaction amounts) across all of the sale's
// payment obligations.
func (r *PgxInstallmentRepository) SumPaidBySaleID(ctx context.Context, saleID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM installment_transactions t
		JOIN installment_payments p ON t.payment_id = p.payment_id
		WHERE p.sale_id = $1;
	`, saleID).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum transactions for sale "+saleID, err)
	}
	return total, nil
}

// scanInstallmentSaleRow scans one installment_sales row, handling nullables.
func scanInstallmentSaleRow(row pgx.Row) (*models.InstallmentSale, error) {
	var m models.InstallmentSale
	var notes *string
	err := row.Scan(
		&m.SaleID,
		&m.CustomerID,
		&m.ItemKind,
		&m.ItemID,
		&m.SalePrice,
		&m.DownPayment,
		&m.InstallmentCount,
		&m.InstallmentAmount,
		&m.StartDate,
		&notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		m.Notes = *notes
	}
	return &m, nil
}
