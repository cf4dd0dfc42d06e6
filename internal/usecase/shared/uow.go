package shared

import (
	"context"
	"time"

	"foodshare/internal/domain/donation"
	"foodshare/internal/domain/order"
	"foodshare/internal/domain/perishable"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Donations() DonationRepository
	Orders() OrderRepository
	Perishables() PerishableRepository
}

type DonationRepository interface {
	Create(ctx context.Context, d *donation.Donation) (uuid.UUID, error)
	// FindByIDForUpdate locks the donation row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*donation.Donation, error)
	// Reserve atomically decrements remaining quantity when it covers amount
	// and the donation is still orderable. Fails with KindConflict otherwise.
	Reserve(ctx context.Context, id uuid.UUID, amount int32) error
	// Release returns previously reserved quantity to the pool.
	Release(ctx context.Context, id uuid.UUID, amount int32) error
	MarkReserved(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	MarkPickedUp(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status donation.Status, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	// FindByIDForUpdate locks the order row so concurrent transitions are
	// linearized.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PerishableRepository interface {
	Create(ctx context.Context, item *perishable.Item) (uuid.UUID, error)
	// SweepExpired deletes every item whose expiry instant is at or before
	// cutoff and returns the removed IDs for auditing.
	SweepExpired(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}
