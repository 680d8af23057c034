package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portsrepo "github.com/mobifroosh/shop_backend/internal/core/ports/repositories"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// installmentService implements the InstallmentSvcFacade interface. The two
// writes (sale creation, payment application) each map to one repository
// transaction; everything else is derived on read.
type installmentService struct {
	BaseService
	installmentRepo portsrepo.InstallmentRepositoryFacade
	checkRepo       portsrepo.CheckRepositoryFacade
	inventoryRepo   portsrepo.InventoryCatalog
	accountRepo     portsrepo.AccountRepositoryFacade
	notifier        portssvc.NotificationDispatcher
}

// NewInstallmentService creates a new installment service.
func NewInstallmentService(
	installmentRepo portsrepo.InstallmentRepositoryFacade,
	checkRepo portsrepo.CheckRepositoryFacade,
	inventoryRepo portsrepo.InventoryCatalog,
	accountRepo portsrepo.AccountRepositoryFacade,
	notifier portssvc.NotificationDispatcher,
) portssvc.InstallmentSvcFacade {
	return &installmentService{
		installmentRepo: installmentRepo,
		checkRepo:       checkRepo,
		inventoryRepo:   inventoryRepo,
		accountRepo:     accountRepo,
		notifier:        notifier,
	}
}

var _ portssvc.InstallmentSvcFacade = (*installmentService)(nil)

func (s *installmentService) CreateInstallmentSale(ctx context.Context, req dto.CreateInstallmentSaleRequest, creatorUserID string) (*domain.InstallmentSale, error) {
	if !req.SalePrice.IsPositive() {
		return nil, fmt.Errorf("%w: sale price must be positive", apperrors.ErrValidation)
	}
	if !req.InstallmentAmount.IsPositive() {
		return nil, fmt.Errorf("%w: installment amount must be positive", apperrors.ErrValidation)
	}
	if req.DownPayment.IsNegative() {
		return nil, fmt.Errorf("%w: down payment must not be negative", apperrors.ErrValidation)
	}
	if req.InstallmentCount < 1 {
		return nil, fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
	}

	customer, err := s.accountRepo.FindAccountByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer.Kind != domain.Customer {
		return nil, fmt.Errorf("%w: account %s is not a customer", apperrors.ErrValidation, req.CustomerID)
	}

	// Early availability check; the repository re-checks under a row lock
	// before flipping the item.
	item, err := s.inventoryRepo.FindItem(ctx, req.ItemKind, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Status != domain.ItemAvailable {
		return nil, fmt.Errorf("%w: item %s is not available (status %s)", apperrors.ErrConflict, req.ItemID, item.Status)
	}

	now := time.Now()
	saleID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	sale := domain.InstallmentSale{
		SaleID:            saleID,
		CustomerID:        req.CustomerID,
		ItemKind:          req.ItemKind,
		ItemID:            req.ItemID,
		SalePrice:         req.SalePrice,
		DownPayment:       req.DownPayment,
		InstallmentCount:  req.InstallmentCount,
		InstallmentAmount: req.InstallmentAmount,
		StartDate:         req.StartDate,
		Notes:             req.Notes,
		AuditFields:       audit,
	}

	dueDates := domain.ScheduleDueDates(req.StartDate, req.InstallmentCount)
	payments := make([]domain.InstallmentPayment, len(dueDates))
	for i, due := range dueDates {
		payments[i] = domain.InstallmentPayment{
			PaymentID:   uuid.NewString(),
			SaleID:      saleID,
			Ordinal:     i + 1,
			DueDate:     due,
			AmountDue:   req.InstallmentAmount,
			Status:      domain.Unpaid,
			AuditFields: audit,
		}
	}

	checks := make([]domain.CheckInstrument, len(req.Checks))
	for i, c := range req.Checks {
		if !c.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: check %s amount must be positive", apperrors.ErrValidation, c.CheckNumber)
		}
		status := c.Status
		if status == "" {
			status = domain.CheckHeld
		}
		if !domain.ValidCheckStatus(status) {
			return nil, fmt.Errorf("%w: unknown check status '%s'", apperrors.ErrValidation, c.Status)
		}
		checks[i] = domain.CheckInstrument{
			CheckID:     uuid.NewString(),
			SaleID:      saleID,
			CheckNumber: c.CheckNumber,
			BankName:    c.BankName,
			DueDate:     c.DueDate,
			Amount:      c.Amount,
			Status:      status,
			AuditFields: audit,
		}
	}

	// The financed remainder is debited to the customer at creation. When
	// the down payment covers (or exceeds) the price, the entry carries
	// both sides so the paper trail shows the full agreement.
	remaining := req.SalePrice.Sub(req.DownPayment)
	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		AccountID:     req.CustomerID,
		EntryDate:     req.StartDate,
		Description:   fmt.Sprintf("Installment sale of %s", item.Name),
		Debit:         remaining,
		Credit:        decimal.Zero,
		ReferenceKind: domain.RefInstallmentSale,
		ReferenceID:   saleID,
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
	}
	if !remaining.IsPositive() {
		entry.Debit = req.SalePrice
		entry.Credit = req.DownPayment
	}

	saved, err := s.installmentRepo.CreateSale(ctx, sale, payments, checks, &entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to create installment sale",
			slog.String("item_id", req.ItemID),
			slog.String("customer_id", req.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Installment sale created",
		slog.String("sale_id", saved.SaleID),
		slog.Int("installments", saved.InstallmentCount))
	return saved, nil
}

func (s *installmentService) GetSaleDetail(ctx context.Context, saleID string) (*dto.InstallmentSaleDetail, error) {
	sale, err := s.installmentRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	payments, err := s.installmentRepo.FindPaymentsBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	checks, err := s.checkRepo.FindChecksBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	totalPaid, err := s.installmentRepo.SumPaidBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	rawRemaining := domain.RemainingBalance(*sale, totalPaid)
	remaining := rawRemaining
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	detail := dto.InstallmentSaleDetail{
		Sale:                dto.ToInstallmentSaleResponse(sale),
		Payments:            make([]dto.InstallmentPaymentResponse, len(payments)),
		Checks:              make([]dto.CheckResponse, len(checks)),
		Status:              domain.DeriveSaleStatus(payments, time.Now()),
		RemainingBalance:    remaining,
		RemainingBalanceRaw: rawRemaining,
	}
	for i := range payments {
		detail.Payments[i] = dto.ToInstallmentPaymentResponse(&payments[i])
	}
	for i := range checks {
		detail.Checks[i] = dto.ToCheckResponse(&checks[i])
	}
	return &detail, nil
}

func (s *installmentService) ListSales(ctx context.Context, limit, offset int) ([]domain.InstallmentSale, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.installmentRepo.ListSales(ctx, limit, offset)
}

func (s *installmentService) ApplyPartialPayment(ctx context.Context, paymentID string, req dto.ApplyPaymentRequest, creatorUserID string) (*domain.InstallmentTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	payment, err := s.installmentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	txn := domain.InstallmentTransaction{
		TransactionID: uuid.NewString(),
		PaymentID:     paymentID,
		Amount:        req.Amount,
		PaidAt:        req.PaidAt,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
		CreatedBy:     creatorUserID,
	}

	savedTxn, updatedPayment, err := s.installmentRepo.ApplyPayment(ctx, txn, req.PaidAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply payment", slog.String("payment_id", paymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment applied",
		slog.String("payment_id", paymentID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(updatedPayment.Status)))

	// Notifications run after commit and never affect the result.
	if s.notifier != nil {
		s.notifier.PaymentReceived(ctx, payment.SaleID, paymentID)
		if updatedPayment.Status == domain.Paid {
			s.notifySaleIfCompleted(ctx, payment.SaleID)
		}
	}
	return savedTxn, nil
}

func (s *installmentService) SettlePayment(ctx context.Context, paymentID string, req dto.SettlePaymentRequest, creatorUserID string) (*domain.InstallmentTransaction, error) {
	payment, err := s.installmentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.Paid {
		return nil, fmt.Errorf("%w: payment %s is already paid", apperrors.ErrConflict, paymentID)
	}

	txns, err := s.installmentRepo.FindTransactionsByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	totalPaid := decimal.Zero
	for _, t := range txns {
		totalPaid = totalPaid.Add(t.Amount)
	}
	remaining := payment.AmountDue.Sub(totalPaid)
	if !remaining.IsPositive() {
		return nil, fmt.Errorf("%w: payment %s is already covered", apperrors.ErrConflict, paymentID)
	}

	// Settlement is one partial payment for whatever remains due, so the
	// stored transactions always account for the status.
	return s.ApplyPartialPayment(ctx, paymentID, dto.ApplyPaymentRequest{
		Amount: remaining,
		PaidAt: req.PaidAt,
	}, creatorUserID)
}

func (s *installmentService) SetCheckStatus(ctx context.Context, checkID string, newStatus domain.CheckStatus, userID string) (*domain.CheckInstrument, error) {
	if !domain.ValidCheckStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown check status '%s'", apperrors.ErrValidation, newStatus)
	}
	check, err := s.checkRepo.UpdateCheckStatus(ctx, checkID, newStatus, userID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update check status",
			slog.String("check_id", checkID),
			slog.String("new_status", string(newStatus)))
		return nil, err
	}
	s.LogInfo(ctx, "Check status updated",
		slog.String("check_id", checkID),
		slog.String("status", string(check.Status)))
	return check, nil
}

// notifySaleIfCompleted dispatches a completion notice when every obligation
// of the sale is paid. Read errors are logged and swallowed; the payment has
// already committed.
func (s *installmentService) notifySaleIfCompleted(ctx context.Context, saleID string) {
	payments, err := s.installmentRepo.FindPaymentsBySaleID(ctx, saleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check sale completion", slog.String("sale_id", saleID))
		return
	}
	if domain.DeriveSaleStatus(payments, time.Now()) == domain.SaleCompleted {
		s.notifier.SaleCompleted(ctx, saleID)
	}
}
