package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, kind domain.AccountKind, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, kind, limit, offset)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, accountID, balance, userID, now)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListEntriesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

func (m *MockLedgerRepository) PostEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	var saved *domain.LedgerEntry
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.LedgerEntry)
	}
	return saved, args.Error(1)
}

func (m *MockLedgerRepository) PostEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, entry)
	var saved *domain.LedgerEntry
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.LedgerEntry)
	}
	return saved, args.Error(1)
}

// --- Mock InventoryCatalog ---

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindItem(ctx context.Context, kind domain.ItemKind, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, kind, itemID)
	var item *domain.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	return item, args.Error(1)
}

func (m *MockInventoryRepository) FindItemForUpdate(ctx context.Context, tx pgx.Tx, kind domain.ItemKind, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, tx, kind, itemID)
	var item *domain.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	return item, args.Error(1)
}

func (m *MockInventoryRepository) MarkSoldInTx(ctx context.Context, tx pgx.Tx, kind domain.ItemKind, itemID string, status domain.ItemStatus, saleDate time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, tx, kind, itemID, status, saleDate, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) DecrementStockInTx(ctx context.Context, tx pgx.Tx, itemID string, quantity int64, userID string, now time.Time) error {
	args := m.Called(ctx, tx, itemID, quantity, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) RecordSale(ctx context.Context, sale domain.SaleRecord, ledgerEntry *domain.LedgerEntry) (*domain.SaleRecord, error) {
	args := m.Called(ctx, sale, ledgerEntry)
	var saved *domain.SaleRecord
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.SaleRecord)
	}
	return saved, args.Error(1)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.SaleRecord
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.SaleRecord)
	}
	return sale, args.Error(1)
}

// --- Mock InstallmentRepository ---

type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.InstallmentSale, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.InstallmentSale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.InstallmentSale)
	}
	return sale, args.Error(1)
}

func (m *MockInstallmentRepository) FindPaymentsBySaleID(ctx context.Context, saleID string) ([]domain.InstallmentPayment, error) {
	args := m.Called(ctx, saleID)
	var payments []domain.InstallmentPayment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.InstallmentPayment)
	}
	return payments, args.Error(1)
}

func (m *MockInstallmentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.InstallmentPayment, error) {
	args := m.Called(ctx, paymentID)
	var payment *domain.InstallmentPayment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.InstallmentPayment)
	}
	return payment, args.Error(1)
}

func (m *MockInstallmentRepository) FindTransactionsByPaymentID(ctx context.Context, paymentID string) ([]domain.InstallmentTransaction, error) {
	args := m.Called(ctx, paymentID)
	var txns []domain.InstallmentTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.InstallmentTransaction)
	}
	return txns, args.Error(1)
}

func (m *MockInstallmentRepository) SumPaidBySaleID(ctx context.Context, saleID string) (decimal.Decimal, error) {
	args := m.Called(ctx, saleID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockInstallmentRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.InstallmentSale, error) {
	args := m.Called(ctx, limit, offset)
	var sales []domain.InstallmentSale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.InstallmentSale)
	}
	return sales, args.Error(1)
}

func (m *MockInstallmentRepository) CreateSale(ctx context.Context, sale domain.InstallmentSale, payments []domain.InstallmentPayment, checks []domain.CheckInstrument, ledgerEntry *domain.LedgerEntry) (*domain.InstallmentSale, error) {
	args := m.Called(ctx, sale, payments, checks, ledgerEntry)
	var saved *domain.InstallmentSale
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.InstallmentSale)
	}
	return saved, args.Error(1)
}

func (m *MockInstallmentRepository) ApplyPayment(ctx context.Context, txn domain.InstallmentTransaction, paidDate time.Time) (*domain.InstallmentTransaction, *domain.InstallmentPayment, error) {
	args := m.Called(ctx, txn, paidDate)
	var savedTxn *domain.InstallmentTransaction
	if args.Get(0) != nil {
		savedTxn = args.Get(0).(*domain.InstallmentTransaction)
	}
	var payment *domain.InstallmentPayment
	if args.Get(1) != nil {
		payment = args.Get(1).(*domain.InstallmentPayment)
	}
	return savedTxn, payment, args.Error(2)
}

// --- Mock CheckRepository ---

type MockCheckRepository struct {
	mock.Mock
}

func (m *MockCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.CheckInstrument, error) {
	args := m.Called(ctx, checkID)
	var check *domain.CheckInstrument
	if args.Get(0) != nil {
		check = args.Get(0).(*domain.CheckInstrument)
	}
	return check, args.Error(1)
}

func (m *MockCheckRepository) FindChecksBySaleID(ctx context.Context, saleID string) ([]domain.CheckInstrument, error) {
	args := m.Called(ctx, saleID)
	var checks []domain.CheckInstrument
	if args.Get(0) != nil {
		checks = args.Get(0).([]domain.CheckInstrument)
	}
	return checks, args.Error(1)
}

func (m *MockCheckRepository) UpdateCheckStatus(ctx context.Context, checkID string, newStatus domain.CheckStatus, userID string, now time.Time) (*domain.CheckInstrument, error) {
	args := m.Called(ctx, checkID, newStatus, userID, now)
	var check *domain.CheckInstrument
	if args.Get(0) != nil {
		check = args.Get(0).(*domain.CheckInstrument)
	}
	return check, args.Error(1)
}

// --- Mock RepairRepository ---

type MockRepairRepository struct {
	mock.Mock
}

func (m *MockRepairRepository) SaveRepair(ctx context.Context, repair domain.Repair) error {
	args := m.Called(ctx, repair)
	return args.Error(0)
}

func (m *MockRepairRepository) FindRepairByID(ctx context.Context, repairID string) (*domain.Repair, error) {
	args := m.Called(ctx, repairID)
	var repair *domain.Repair
	if args.Get(0) != nil {
		repair = args.Get(0).(*domain.Repair)
	}
	return repair, args.Error(1)
}

func (m *MockRepairRepository) CompleteRepair(ctx context.Context, repairID string, deliveredAt time.Time, customerEntry domain.LedgerEntry, technicianEntry *domain.LedgerEntry, userID string, now time.Time) (*domain.Repair, error) {
	args := m.Called(ctx, repairID, deliveredAt, customerEntry, technicianEntry, userID, now)
	var repair *domain.Repair
	if args.Get(0) != nil {
		repair = args.Get(0).(*domain.Repair)
	}
	return repair, args.Error(1)
}

// --- Mock NotificationDispatcher ---

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) PaymentReceived(ctx context.Context, saleID, paymentID string) {
	m.Called(ctx, saleID, paymentID)
}

func (m *MockNotificationDispatcher) SaleCompleted(ctx context.Context, saleID string) {
	m.Called(ctx, saleID)
}
