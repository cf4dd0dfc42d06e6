package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrIncompleteDeliveryInfo = errors.New("incomplete delivery information")
	ErrNotPickupOrder         = errors.New("operation only valid for pickup orders")
	ErrNotDeliveryOrder       = errors.New("operation only valid for delivery orders")
	ErrNotReadyForPickup      = errors.New("order must be ready before pickup completion")
)

type Order struct {
	id          uuid.UUID
	requesterID uuid.UUID
	donationID  uuid.UUID
	quantity    int32
	details     Details
	status      Status
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewOrder builds an order in its initial pending state. Stock must already be
// reserved before the order record is persisted; the command layer runs both
// in one transaction.
func NewOrder(
	requesterID, donationID uuid.UUID,
	quantity int32,
	details Details,
	notes string,
) (*Order, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveOrderAmount
	}
	if !details.Type().IsValid() {
		return nil, ErrInvalidOrderType
	}

	return &Order{
		id:          uuid.New(),
		requesterID: requesterID,
		donationID:  donationID,
		quantity:    quantity,
		details:     details,
		status:      StatusPending,
		notes:       notes,
	}, nil
}

func ReconstructOrder(
	id, requesterID, donationID uuid.UUID,
	quantity int32,
	details Details,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		requesterID: requesterID,
		donationID:  donationID,
		quantity:    quantity,
		details:     details,
		status:      status,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// TransitionTo applies one step of the status flow. The delivery-address gate
// for in-transit is checked independently of the generic table so an
// incomplete address is reported as such, not as a bad transition.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, o.status, next)
	}
	if o.details.Type() == TypeDelivery && next == StatusInTransit {
		delivery := o.details.Delivery()
		if delivery == nil || !delivery.Address.IsComplete() {
			return ErrIncompleteDeliveryInfo
		}
	}

	o.status = next
	o.updatedAt = now
	return nil
}

// Complete finishes a pickup order. Stricter than the generic table: the
// order must currently be ready, skipping the delivery legs entirely.
func (o *Order) Complete(now time.Time) error {
	if o.details.Type() != TypePickup {
		return ErrNotPickupOrder
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, o.status, StatusCompleted)
	}
	if o.status != StatusReady {
		return ErrNotReadyForPickup
	}

	o.status = StatusCompleted
	o.updatedAt = now
	return nil
}

// ReleasesStockOnCancel reports whether moving into cancelled from the current
// state must return the reserved quantity. It is false once cancelled, so a
// second cancellation can never double-release.
func (o *Order) ReleasesStockOnCancel() bool {
	return o.status != StatusCancelled
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.requesterID == userID
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) RequesterID() uuid.UUID { return o.requesterID }
func (o *Order) DonationID() uuid.UUID  { return o.donationID }
func (o *Order) Quantity() int32        { return o.quantity }
func (o *Order) Details() Details       { return o.details }
func (o *Order) Type() Type             { return o.details.Type() }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Notes() string          { return o.notes }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) UpdatedAt() time.Time   { return o.updatedAt }
