package repositories

import (
	"context"
	"time"

	"github.com/mobifroosh/shop_backend/internal/core/domain"
)

// CheckRepositoryFacade manages post-dated check instruments. Status changes
// are validated against the domain transition table under a row lock.
type CheckRepositoryFacade interface {
	FindCheckByID(ctx context.Context, checkID string) (*domain.CheckInstrument, error)

	// FindChecksBySaleID returns the sale's checks ordered by due date.
	FindChecksBySaleID(ctx context.Context, saleID string) ([]domain.CheckInstrument, error)

	// UpdateCheckStatus moves the check to newStatus if the transition table
	// allows it, returning ErrConflict otherwise.
	UpdateCheckStatus(ctx context.Context, checkID string, newStatus domain.CheckStatus, userID string, now time.Time) (*domain.CheckInstrument, error)
}
