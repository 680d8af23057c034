package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mobifroosh/shop_backend/internal/apperrors"
	"github.com/mobifroosh/shop_backend/internal/core/domain"
	portssvc "github.com/mobifroosh/shop_backend/internal/core/ports/services"
	"github.com/mobifroosh/shop_backend/internal/core/services"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

type RepairServiceTestSuite struct {
	suite.Suite
	mockRepairRepo  *MockRepairRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.RepairSvcFacade
}

func (suite *RepairServiceTestSuite) SetupTest() {
	suite.mockRepairRepo = new(MockRepairRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewRepairService(suite.mockRepairRepo, suite.mockAccountRepo)
}

func (suite *RepairServiceTestSuite) TestCreateRepair_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	technicianID := uuid.NewString()
	req := dto.CreateRepairRequest{
		CustomerID:   customerID,
		TechnicianID: technicianID,
		Device:       "Redmi Note 12",
		Problem:      "Broken screen",
		Price:        decimal.NewFromInt(2_500_000),
		Wage:         decimal.NewFromInt(800_000),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, customerID).
		Return(&domain.Account{AccountID: customerID, Kind: domain.Customer}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, technicianID).
		Return(&domain.Account{AccountID: technicianID, Kind: domain.Partner}, nil).Once()
	suite.mockRepairRepo.On("SaveRepair", ctx, mock.MatchedBy(func(r domain.Repair) bool {
		return r.Status == domain.RepairReceived && r.Price.Equal(req.Price) && r.RepairID != ""
	})).Return(nil).Once()

	repair, err := suite.service.CreateRepair(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RepairReceived, repair.Status)
	suite.mockRepairRepo.AssertExpectations(suite.T())
}

func (suite *RepairServiceTestSuite) TestCreateRepair_TechnicianMustBePartner() {
	ctx := context.Background()
	customerID := uuid.NewString()
	technicianID := uuid.NewString()
	req := dto.CreateRepairRequest{
		CustomerID:   customerID,
		TechnicianID: technicianID,
		Device:       "Redmi Note 12",
		Price:        decimal.NewFromInt(2_500_000),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, customerID).
		Return(&domain.Account{AccountID: customerID, Kind: domain.Customer}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, technicianID).
		Return(&domain.Account{AccountID: technicianID, Kind: domain.Customer}, nil).Once()

	_, err := suite.service.CreateRepair(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepairRepo.AssertNotCalled(suite.T(), "SaveRepair", mock.Anything, mock.Anything)
}

func (suite *RepairServiceTestSuite) TestCompleteRepair_PostsBothEntries() {
	ctx := context.Background()
	repairID := uuid.NewString()
	customerID := uuid.NewString()
	technicianID := uuid.NewString()
	repair := &domain.Repair{
		RepairID:     repairID,
		CustomerID:   customerID,
		TechnicianID: technicianID,
		Device:       "Redmi Note 12",
		Price:        decimal.NewFromInt(2_500_000),
		Wage:         decimal.NewFromInt(800_000),
		Status:       domain.RepairInProgress,
	}

	suite.mockRepairRepo.On("FindRepairByID", ctx, repairID).Return(repair, nil).Once()
	suite.mockRepairRepo.On("CompleteRepair", ctx, repairID,
		mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(e domain.LedgerEntry) bool {
			return e.AccountID == customerID &&
				e.Debit.Equal(repair.Price) &&
				e.ReferenceKind == domain.RefRepair &&
				e.ReferenceID == repairID
		}),
		mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e != nil &&
				e.AccountID == technicianID &&
				e.Credit.Equal(repair.Wage) &&
				e.Debit.IsZero()
		}),
		"user-1",
		mock.AnythingOfType("time.Time"),
	).Return(&domain.Repair{RepairID: repairID, Status: domain.RepairDelivered}, nil).Once()

	completed, err := suite.service.CompleteRepair(ctx, repairID, dto.CompleteRepairRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RepairDelivered, completed.Status)
	suite.mockRepairRepo.AssertExpectations(suite.T())
}

func (suite *RepairServiceTestSuite) TestCompleteRepair_ZeroWageSkipsTechnicianEntry() {
	ctx := context.Background()
	repairID := uuid.NewString()
	repair := &domain.Repair{
		RepairID:     repairID,
		CustomerID:   uuid.NewString(),
		TechnicianID: uuid.NewString(),
		Price:        decimal.NewFromInt(1_000_000),
		Wage:         decimal.Zero,
		Status:       domain.RepairReceived,
	}

	suite.mockRepairRepo.On("FindRepairByID", ctx, repairID).Return(repair, nil).Once()
	suite.mockRepairRepo.On("CompleteRepair", ctx, repairID,
		mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("domain.LedgerEntry"),
		(*domain.LedgerEntry)(nil),
		"user-1",
		mock.AnythingOfType("time.Time"),
	).Return(&domain.Repair{RepairID: repairID, Status: domain.RepairDelivered}, nil).Once()

	_, err := suite.service.CompleteRepair(ctx, repairID, dto.CompleteRepairRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.mockRepairRepo.AssertExpectations(suite.T())
}

func (suite *RepairServiceTestSuite) TestCompleteRepair_AlreadyDeliveredConflicts() {
	ctx := context.Background()
	repairID := uuid.NewString()
	repair := &domain.Repair{RepairID: repairID, Status: domain.RepairDelivered}

	suite.mockRepairRepo.On("FindRepairByID", ctx, repairID).Return(repair, nil).Once()

	_, err := suite.service.CompleteRepair(ctx, repairID, dto.CompleteRepairRequest{}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepairRepo.AssertNotCalled(suite.T(), "CompleteRepair",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRepairServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RepairServiceTestSuite))
}
