package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/core/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

type InstallmentServiceTestSuite struct {
	suite.Suite
	mockInstallmentRepo *MockInstallmentRepository
	mockCheckRepo       *MockCheckRepository
	mockInventoryRepo   *MockInventoryRepository
	mockAccountRepo     *MockAccountRepository
	mockNotifier        *MockNotificationDispatcher
	service             portssvc.InstallmentSvcFacade
}

func (suite *InstallmentServiceTestSuite) SetupTest() {
	suite.mockInstallmentRepo = new(MockInstallmentRepository)
	suite.mockCheckRepo = new(MockCheckRepository)
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockNotifier = new(MockNotificationDispatcher)
	suite.service = services.NewInstallmentService(
		suite.mockInstallmentRepo,
		suite.mockCheckRepo,
		suite.mockInventoryRepo,
		suite.mockAccountRepo,
		suite.mockNotifier,
	)
}

func (suite *InstallmentServiceTestSuite) availablePhone() *domain.Item {
	price := decimal.NewFromInt(12_000_000)
	return &domain.Item{
		ItemID:    uuid.NewString(),
		Kind:      domain.ItemPhone,
		Name:      "iPhone 13",
		SalePrice: &price,
		Status:    domain.ItemAvailable,
	}
}

func (suite *InstallmentServiceTestSuite) customerAccount() *domain.Account {
	return &domain.Account{AccountID: uuid.NewString(), Kind: domain.Customer, PartyName: "Reza"}
}

func (suite *InstallmentServiceTestSuite) baseRequest(customerID, itemID string) dto.CreateInstallmentSaleRequest {
	return dto.CreateInstallmentSaleRequest{
		CustomerID:        customerID,
		ItemKind:          domain.ItemPhone,
		ItemID:            itemID,
		SalePrice:         decimal.NewFromInt(12_000_000),
		DownPayment:       decimal.NewFromInt(2_000_000),
		InstallmentCount:  10,
		InstallmentAmount: decimal.NewFromInt(1_000_000),
		StartDate:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_Success() {
	ctx := context.Background()
	customer := suite.customerAccount()
	item := suite.availablePhone()
	req := suite.baseRequest(customer.AccountID, item.ItemID)

	suite.mockAccountRepo.On("FindAccountByID", ctx, customer.AccountID).Return(customer, nil).Once()
	suite.mockInventoryRepo.On("FindItem", ctx, domain.ItemPhone, item.ItemID).Return(item, nil).Once()
	suite.mockInstallmentRepo.On("CreateSale", ctx,
		mock.MatchedBy(func(s domain.InstallmentSale) bool {
			return s.CustomerID == customer.AccountID && s.InstallmentCount == 10
		}),
		mock.MatchedBy(func(payments []domain.InstallmentPayment) bool {
			if len(payments) != 10 {
				return false
			}
			for i, p := range payments {
				if p.Ordinal != i+1 || p.Status != domain.Unpaid || !p.AmountDue.Equal(req.InstallmentAmount) {
					return false
				}
			}
			// One obligation per calendar month from the start date.
			return payments[0].DueDate.Equal(req.StartDate) &&
				payments[1].DueDate.Equal(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))
		}),
		mock.AnythingOfType("[]domain.CheckInstrument"),
		mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			// The financed remainder: 12M - 2M down.
			return e != nil &&
				e.AccountID == customer.AccountID &&
				e.Debit.Equal(decimal.NewFromInt(10_000_000)) &&
				e.Credit.IsZero() &&
				e.ReferenceKind == domain.RefInstallmentSale
		}),
	).Return(&domain.InstallmentSale{SaleID: uuid.NewString(), InstallmentCount: 10}, nil).Once()

	sale, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_ChecksDefaultToHeld() {
	ctx := context.Background()
	customer := suite.customerAccount()
	item := suite.availablePhone()
	req := suite.baseRequest(customer.AccountID, item.ItemID)
	req.Checks = []dto.CheckDescriptor{
		{CheckNumber: "100200", BankName: "Mellat", DueDate: req.StartDate.AddDate(0, 1, 0), Amount: decimal.NewFromInt(5_000_000)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, customer.AccountID).Return(customer, nil).Once()
	suite.mockInventoryRepo.On("FindItem", ctx, domain.ItemPhone, item.ItemID).Return(item, nil).Once()
	suite.mockInstallmentRepo.On("CreateSale", ctx,
		mock.AnythingOfType("domain.InstallmentSale"),
		mock.AnythingOfType("[]domain.InstallmentPayment"),
		mock.MatchedBy(func(checks []domain.CheckInstrument) bool {
			return len(checks) == 1 && checks[0].Status == domain.CheckHeld && checks[0].CheckNumber == "100200"
		}),
		mock.AnythingOfType("*domain.LedgerEntry"),
	).Return(&domain.InstallmentSale{SaleID: uuid.NewString()}, nil).Once()

	_, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_DownPaymentCoveringPrice() {
	ctx := context.Background()
	customer := suite.customerAccount()
	item := suite.availablePhone()
	req := suite.baseRequest(customer.AccountID, item.ItemID)
	req.DownPayment = decimal.NewFromInt(12_000_000)

	suite.mockAccountRepo.On("FindAccountByID", ctx, customer.AccountID).Return(customer, nil).Once()
	suite.mockInventoryRepo.On("FindItem", ctx, domain.ItemPhone, item.ItemID).Return(item, nil).Once()
	suite.mockInstallmentRepo.On("CreateSale", ctx,
		mock.AnythingOfType("domain.InstallmentSale"),
		mock.AnythingOfType("[]domain.InstallmentPayment"),
		mock.AnythingOfType("[]domain.CheckInstrument"),
		mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			// Fully covered up front: the entry carries both sides so the
			// statement still shows the agreement.
			return e != nil &&
				e.Debit.Equal(decimal.NewFromInt(12_000_000)) &&
				e.Credit.Equal(decimal.NewFromInt(12_000_000))
		}),
	).Return(&domain.InstallmentSale{SaleID: uuid.NewString()}, nil).Once()

	_, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_ItemNotAvailable() {
	ctx := context.Background()
	customer := suite.customerAccount()
	item := suite.availablePhone()
	item.Status = domain.ItemSold
	req := suite.baseRequest(customer.AccountID, item.ItemID)

	suite.mockAccountRepo.On("FindAccountByID", ctx, customer.AccountID).Return(customer, nil).Once()
	suite.mockInventoryRepo.On("FindItem", ctx, domain.ItemPhone, item.ItemID).Return(item, nil).Once()

	_, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInstallmentRepo.AssertNotCalled(suite.T(), "CreateSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_WriteFailureSurfaces() {
	ctx := context.Background()
	customer := suite.customerAccount()
	item := suite.availablePhone()
	req := suite.baseRequest(customer.AccountID, item.ItemID)
	// The atomic unit aborts partway through (e.g. the ledger posting step);
	// the caller must see the failure and nothing else may happen.
	writeErr := apperrors.NewAppError(500, "failed to insert ledger entry", assert.AnError)

	suite.mockAccountRepo.On("FindAccountByID", ctx, customer.AccountID).Return(customer, nil).Once()
	suite.mockInventoryRepo.On("FindItem", ctx, domain.ItemPhone, item.ItemID).Return(item, nil).Once()
	suite.mockInstallmentRepo.On("CreateSale", ctx,
		mock.AnythingOfType("domain.InstallmentSale"),
		mock.AnythingOfType("[]domain.InstallmentPayment"),
		mock.AnythingOfType("[]domain.CheckInstrument"),
		mock.AnythingOfType("*domain.LedgerEntry"),
	).Return(nil, writeErr).Once()

	sale, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, writeErr)
	suite.Nil(sale)
	suite.mockNotifier.AssertNotCalled(suite.T(), "PaymentReceived", mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "SaleCompleted", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestApplyPartialPayment_WriteFailureDispatchesNothing() {
	ctx := context.Background()
	saleID := uuid.NewString()
	paymentID := uuid.NewString()
	paidAt := time.Now()
	payment := &domain.InstallmentPayment{
		PaymentID: paymentID,
		SaleID:    saleID,
		AmountDue: decimal.NewFromInt(1_000_000),
		Status:    domain.Unpaid,
	}
	req := dto.ApplyPaymentRequest{Amount: decimal.NewFromInt(400_000), PaidAt: paidAt}
	writeErr := apperrors.NewAppError(500, "failed to insert installment transaction", assert.AnError)

	suite.mockInstallmentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockInstallmentRepo.On("ApplyPayment", ctx, mock.AnythingOfType("domain.InstallmentTransaction"), paidAt).
		Return(nil, nil, writeErr).Once()

	txn, err := suite.service.ApplyPartialPayment(ctx, paymentID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, writeErr)
	suite.Nil(txn)
	suite.mockNotifier.AssertNotCalled(suite.T(), "PaymentReceived", mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "SaleCompleted", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_RejectsNonCustomer() {
	ctx := context.Background()
	partner := &domain.Account{AccountID: uuid.NewString(), Kind: domain.Partner}
	req := suite.baseRequest(partner.AccountID, uuid.NewString())

	suite.mockAccountRepo.On("FindAccountByID", ctx, partner.AccountID).Return(partner, nil).Once()

	_, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InstallmentServiceTestSuite) TestCreateInstallmentSale_RejectsNonPositiveAmounts() {
	ctx := context.Background()
	req := suite.baseRequest(uuid.NewString(), uuid.NewString())
	req.InstallmentAmount = decimal.Zero

	_, err := suite.service.CreateInstallmentSale(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestGetSaleDetail_DerivesStatusAndBalance() {
	ctx := context.Background()
	saleID := uuid.NewString()
	sale := &domain.InstallmentSale{
		SaleID:            saleID,
		SalePrice:         decimal.NewFromInt(12_000_000),
		DownPayment:       decimal.NewFromInt(2_000_000),
		InstallmentCount:  10,
		InstallmentAmount: decimal.NewFromInt(1_000_000),
	}
	payments := []domain.InstallmentPayment{
		{PaymentID: uuid.NewString(), SaleID: saleID, Ordinal: 1, DueDate: time.Now().AddDate(0, 1, 0), AmountDue: sale.InstallmentAmount, Status: domain.Partial},
	}

	suite.mockInstallmentRepo.On("FindSaleByID", ctx, saleID).Return(sale, nil).Once()
	suite.mockInstallmentRepo.On("FindPaymentsBySaleID", ctx, saleID).Return(payments, nil).Once()
	suite.mockCheckRepo.On("FindChecksBySaleID", ctx, saleID).Return([]domain.CheckInstrument{}, nil).Once()
	suite.mockInstallmentRepo.On("SumPaidBySaleID", ctx, saleID).Return(decimal.NewFromInt(400_000), nil).Once()

	detail, err := suite.service.GetSaleDetail(ctx, saleID)

	suite.Require().NoError(err)
	suite.Equal(domain.SaleInProgress, detail.Status)
	suite.True(decimal.NewFromInt(9_600_000).Equal(detail.RemainingBalance))
	suite.True(decimal.NewFromInt(9_600_000).Equal(detail.RemainingBalanceRaw))
	suite.Len(detail.Payments, 1)
}

func (suite *InstallmentServiceTestSuite) TestGetSaleDetail_OvercollectionFlooredForDisplay() {
	ctx := context.Background()
	saleID := uuid.NewString()
	sale := &domain.InstallmentSale{
		SaleID:            saleID,
		InstallmentCount:  2,
		InstallmentAmount: decimal.NewFromInt(1_000_000),
	}
	payments := []domain.InstallmentPayment{
		{PaymentID: uuid.NewString(), Status: domain.Paid, DueDate: time.Now().AddDate(0, -1, 0), AmountDue: sale.InstallmentAmount},
		{PaymentID: uuid.NewString(), Status: domain.Paid, DueDate: time.Now(), AmountDue: sale.InstallmentAmount},
	}

	suite.mockInstallmentRepo.On("FindSaleByID", ctx, saleID).Return(sale, nil).Once()
	suite.mockInstallmentRepo.On("FindPaymentsBySaleID", ctx, saleID).Return(payments, nil).Once()
	suite.mockCheckRepo.On("FindChecksBySaleID", ctx, saleID).Return([]domain.CheckInstrument{}, nil).Once()
	suite.mockInstallmentRepo.On("SumPaidBySaleID", ctx, saleID).Return(decimal.NewFromInt(2_300_000), nil).Once()

	detail, err := suite.service.GetSaleDetail(ctx, saleID)

	suite.Require().NoError(err)
	suite.Equal(domain.SaleCompleted, detail.Status)
	suite.True(detail.RemainingBalance.IsZero())
	suite.True(decimal.NewFromInt(-300_000).Equal(detail.RemainingBalanceRaw))
}

func (suite *InstallmentServiceTestSuite) TestApplyPartialPayment_Success() {
	ctx := context.Background()
	saleID := uuid.NewString()
	paymentID := uuid.NewString()
	paidAt := time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC)
	payment := &domain.InstallmentPayment{
		PaymentID: paymentID,
		SaleID:    saleID,
		AmountDue: decimal.NewFromInt(1_000_000),
		Status:    domain.Unpaid,
	}
	req := dto.ApplyPaymentRequest{Amount: decimal.NewFromInt(400_000), PaidAt: paidAt}

	suite.mockInstallmentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockInstallmentRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(txn domain.InstallmentTransaction) bool {
		return txn.PaymentID == paymentID && txn.Amount.Equal(req.Amount) && txn.PaidAt.Equal(paidAt)
	}), paidAt).Return(
		&domain.InstallmentTransaction{TransactionID: uuid.NewString(), PaymentID: paymentID, Amount: req.Amount},
		&domain.InstallmentPayment{PaymentID: paymentID, SaleID: saleID, Status: domain.Partial},
		nil,
	).Once()
	suite.mockNotifier.On("PaymentReceived", ctx, saleID, paymentID).Once()

	txn, err := suite.service.ApplyPartialPayment(ctx, paymentID, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockNotifier.AssertNotCalled(suite.T(), "SaleCompleted", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestApplyPartialPayment_LastPaymentCompletesSale() {
	ctx := context.Background()
	saleID := uuid.NewString()
	paymentID := uuid.NewString()
	paidAt := time.Now()
	payment := &domain.InstallmentPayment{
		PaymentID: paymentID,
		SaleID:    saleID,
		AmountDue: decimal.NewFromInt(1_000_000),
		Status:    domain.Partial,
	}
	req := dto.ApplyPaymentRequest{Amount: decimal.NewFromInt(600_000), PaidAt: paidAt}

	suite.mockInstallmentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockInstallmentRepo.On("ApplyPayment", ctx, mock.AnythingOfType("domain.InstallmentTransaction"), paidAt).Return(
		&domain.InstallmentTransaction{TransactionID: uuid.NewString(), PaymentID: paymentID},
		&domain.InstallmentPayment{PaymentID: paymentID, SaleID: saleID, Status: domain.Paid},
		nil,
	).Once()
	suite.mockInstallmentRepo.On("FindPaymentsBySaleID", ctx, saleID).Return([]domain.InstallmentPayment{
		{PaymentID: paymentID, Status: domain.Paid},
	}, nil).Once()
	suite.mockNotifier.On("PaymentReceived", ctx, saleID, paymentID).Once()
	suite.mockNotifier.On("SaleCompleted", ctx, saleID).Once()

	_, err := suite.service.ApplyPartialPayment(ctx, paymentID, req, "user-1")

	suite.Require().NoError(err)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestApplyPartialPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.ApplyPaymentRequest{Amount: decimal.Zero, PaidAt: time.Now()}

	_, err := suite.service.ApplyPartialPayment(ctx, uuid.NewString(), req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInstallmentRepo.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestSettlePayment_AppliesRemainder() {
	ctx := context.Background()
	saleID := uuid.NewString()
	paymentID := uuid.NewString()
	paidAt := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)
	payment := &domain.InstallmentPayment{
		PaymentID: paymentID,
		SaleID:    saleID,
		AmountDue: decimal.NewFromInt(1_000_000),
		Status:    domain.Partial,
	}
	priorTxns := []domain.InstallmentTransaction{
		{TransactionID: uuid.NewString(), PaymentID: paymentID, Amount: decimal.NewFromInt(400_000)},
	}

	// FindPaymentByID is hit twice: once by SettlePayment, once by the
	// partial-payment path it delegates to.
	suite.mockInstallmentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Twice()
	suite.mockInstallmentRepo.On("FindTransactionsByPaymentID", ctx, paymentID).Return(priorTxns, nil).Once()
	suite.mockInstallmentRepo.On("ApplyPayment", ctx, mock.MatchedBy(func(txn domain.InstallmentTransaction) bool {
		return txn.Amount.Equal(decimal.NewFromInt(600_000))
	}), paidAt).Return(
		&domain.InstallmentTransaction{TransactionID: uuid.NewString(), PaymentID: paymentID, Amount: decimal.NewFromInt(600_000)},
		&domain.InstallmentPayment{PaymentID: paymentID, SaleID: saleID, Status: domain.Paid},
		nil,
	).Once()
	suite.mockInstallmentRepo.On("FindPaymentsBySaleID", ctx, saleID).Return([]domain.InstallmentPayment{
		{PaymentID: paymentID, Status: domain.Paid},
		{PaymentID: uuid.NewString(), Status: domain.Unpaid, DueDate: time.Now().AddDate(0, 1, 0)},
	}, nil).Once()
	suite.mockNotifier.On("PaymentReceived", ctx, saleID, paymentID).Once()

	txn, err := suite.service.SettlePayment(ctx, paymentID, dto.SettlePaymentRequest{PaidAt: paidAt}, "user-1")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(600_000).Equal(txn.Amount))
	suite.mockInstallmentRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertNotCalled(suite.T(), "SaleCompleted", mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestSettlePayment_AlreadyPaidConflicts() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	payment := &domain.InstallmentPayment{
		PaymentID: paymentID,
		AmountDue: decimal.NewFromInt(1_000_000),
		Status:    domain.Paid,
	}

	suite.mockInstallmentRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()

	_, err := suite.service.SettlePayment(ctx, paymentID, dto.SettlePaymentRequest{PaidAt: time.Now()}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInstallmentRepo.AssertNotCalled(suite.T(), "ApplyPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InstallmentServiceTestSuite) TestSetCheckStatus_Passthrough() {
	ctx := context.Background()
	checkID := uuid.NewString()
	updated := &domain.CheckInstrument{CheckID: checkID, Status: domain.CheckInCollection}

	suite.mockCheckRepo.On("UpdateCheckStatus", ctx, checkID, domain.CheckInCollection, "user-1", mock.AnythingOfType("time.Time")).
		Return(updated, nil).Once()

	check, err := suite.service.SetCheckStatus(ctx, checkID, domain.CheckInCollection, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CheckInCollection, check.Status)
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *InstallmentServiceTestSuite) TestSetCheckStatus_UnknownStatusRejected() {
	ctx := context.Background()

	_, err := suite.service.SetCheckStatus(ctx, uuid.NewString(), domain.CheckStatus("LOST"), "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCheckRepo.AssertNotCalled(suite.T(), "UpdateCheckStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInstallmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InstallmentServiceTestSuite))
}
