package services

import (
	"context"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
	"github.com/mobifroosh/shop_backend/internal/dto"
)

// InstallmentSvcFacade owns the installment sale lifecycle: schedule
// creation, payment application, check instrument tracking, and the derived
// aggregate status.
type InstallmentSvcFacade interface {
	// CreateInstallmentSale validates the agreement and executes the atomic
	// creation unit (sale row, schedule batch, checks, item flip, ledger
	// posting of the financed remainder).
	CreateInstallmentSale(ctx context.Context, req dto.CreateInstallmentSaleRequest, creatorUserID string) (*domain.InstallmentSale, error)

	// GetSaleDetail returns the sale with its schedule, checks, derived
	// status, and remaining balance, recomputed on every call.
	GetSaleDetail(ctx context.Context, saleID string) (*dto.InstallmentSaleDetail, error)

	ListSales(ctx context.Context, limit, offset int) ([]domain.InstallmentSale, error)

	// ApplyPartialPayment records a money-received event against an
	// obligation and rederives its status.
	ApplyPartialPayment(ctx context.Context, paymentID string, req dto.ApplyPaymentRequest, creatorUserID string) (*domain.InstallmentTransaction, error)

	// SettlePayment marks an obligation fully paid by applying one
	// transaction for whatever remains due. Goes through the same code path
	// as ApplyPartialPayment so status can never desynchronize from the
	// transaction sum.
	SettlePayment(ctx context.Context, paymentID string, req dto.SettlePaymentRequest, creatorUserID string) (*domain.InstallmentTransaction, error)

	// SetCheckStatus moves a check instrument through its state machine.
	SetCheckStatus(ctx context.Context, checkID string, newStatus domain.CheckStatus, userID string) (*domain.CheckInstrument, error)
}
