package commands

import (
	"context"
	"errors"
	"time"

	"foodshare/internal/domain/order"
	"foodshare/internal/domain/user"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound          = errs.New("order not found")
	ErrInsufficientStock      = errs.New("insufficient stock")
	ErrInvalidTransition      = errs.New("invalid status transition")
	ErrIncompleteDeliveryInfo = errs.New("incomplete delivery information")
	ErrNotAuthorized          = errs.New("not authorized")
	ErrOrderValidation        = errs.New("order validation error")
)

type PlaceOrderInput struct {
	DonationID      uuid.UUID
	Quantity        int32
	OrderType       order.Type
	PickupTime      *time.Time
	DeliveryAddress *order.DeliveryAddress
	DeliveryTime    *time.Time
	Notes           string
}

type OrderCommands interface {
	// PlaceOrder validates the type-specific payload, then reserves stock and
	// creates the pending order inside one transaction. InsufficientStock
	// aborts with no order created.
	PlaceOrder(ctx context.Context, input PlaceOrderInput, requesterID uuid.UUID) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, next order.Status, actorID uuid.UUID, role user.Role) error
	// CompletePickup finishes a pickup order; stricter than the generic
	// transition table, the order must be ready.
	CompletePickup(ctx context.Context, orderID, actorID uuid.UUID, role user.Role) error
	// Delete removes the order, releasing its reserved stock unless it was
	// already cancelled.
	Delete(ctx context.Context, orderID, actorID uuid.UUID, role user.Role) error
}

// statusMessages drives the notification emitted on each accepted transition.
var statusMessages = map[order.Status]string{
	order.StatusConfirmed: "Your order has been confirmed and is being processed.",
	order.StatusReady:     "Your order is ready for pickup or delivery.",
	order.StatusInTransit: "Your order is now in transit and will be delivered to your address soon.",
	order.StatusDelivered: "Your order has been delivered to your address.",
	order.StatusCompleted: "Your order has been completed. Thank you for using our service!",
	order.StatusCancelled: "Your order has been cancelled.",
}

var statusTitles = map[order.Status]string{
	order.StatusConfirmed: "Order Confirmed",
	order.StatusReady:     "Order Ready",
	order.StatusInTransit: "Order In-Transit",
	order.StatusDelivered: "Order Delivered",
	order.StatusCompleted: "Order Completed",
	order.StatusCancelled: "Order Cancelled",
}

type orderCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher NotificationPublisher
	clock     clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, publisher NotificationPublisher, clock clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clock,
	}
}

func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, input PlaceOrderInput, requesterID uuid.UUID) (uuid.UUID, error) {
	// Pure validation first: no side effects until the payload is sound.
	details, err := buildDetails(input)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOrderValidation)
	}

	entity, err := order.NewOrder(requesterID, input.DonationID, input.Quantity, details, input.Notes)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrOrderValidation)
	}

	// Reserve + create are one transaction: a crash between the two rolls the
	// decrement back, so no stock is ever left reserved without an order.
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Donations().Reserve(ctx, input.DonationID, input.Quantity); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrDonationNotFound
			case infra.IsKind(err, infra.KindConflict):
				return ErrInsufficientStock
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if _, err := tx.Orders().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return entity.ID(), nil
}

func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, next order.Status, actorID uuid.UUID, role user.Role) error {
	var updated *order.Order

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadOwnedOrder(ctx, tx, orderID, actorID, role)
		if err != nil {
			return err
		}

		releaseStock := next == order.StatusCancelled && entity.ReleasesStockOnCancel()

		if err := entity.TransitionTo(next, c.clock.Now()); err != nil {
			return mapTransitionErr(err)
		}

		if err := tx.Orders().UpdateStatus(ctx, orderID, entity.Status(), entity.UpdatedAt()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if releaseStock {
			if err := tx.Donations().Release(ctx, entity.DonationID(), entity.Quantity()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		updated = entity
		return nil
	})
	if err != nil {
		return err
	}

	c.notifyStatusChanged(ctx, updated)
	return nil
}

func (c *orderCommandsImpl) CompletePickup(ctx context.Context, orderID, actorID uuid.UUID, role user.Role) error {
	var updated *order.Order

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadOwnedOrder(ctx, tx, orderID, actorID, role)
		if err != nil {
			return err
		}

		if err := entity.Complete(c.clock.Now()); err != nil {
			return mapTransitionErr(err)
		}

		if err := tx.Orders().UpdateStatus(ctx, orderID, entity.Status(), entity.UpdatedAt()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		updated = entity
		return nil
	})
	if err != nil {
		return err
	}

	c.notifyStatusChanged(ctx, updated)
	return nil
}

func (c *orderCommandsImpl) Delete(ctx context.Context, orderID, actorID uuid.UUID, role user.Role) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadOwnedOrder(ctx, tx, orderID, actorID, role)
		if err != nil {
			return err
		}

		if entity.ReleasesStockOnCancel() {
			if err := tx.Donations().Release(ctx, entity.DonationID(), entity.Quantity()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Orders().Delete(ctx, orderID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *orderCommandsImpl) loadOwnedOrder(ctx context.Context, tx shared.Tx, orderID, actorID uuid.UUID, role user.Role) (*order.Order, error) {
	entity, err := tx.Orders().FindByIDForUpdate(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.IsOwnedBy(actorID) && !role.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	return entity, nil
}

// notifyStatusChanged is fire-and-forget: publish failures are logged inside
// the publisher and never fail the transition.
func (c *orderCommandsImpl) notifyStatusChanged(ctx context.Context, entity *order.Order) {
	message, ok := statusMessages[entity.Status()]
	if !ok {
		return
	}

	recipientID := entity.RequesterID()
	c.publisher.Publish(ctx, Event{
		RecipientID: &recipientID,
		Kind:        EventKindStatusChanged,
		Title:       statusTitles[entity.Status()],
		Message:     message,
		Related: RelatedRef{
			Kind: EntityKindOrder,
			ID:   entity.ID(),
		},
	})
}

func mapTransitionErr(err error) error {
	switch {
	case errors.Is(err, order.ErrIncompleteDeliveryInfo):
		return errs.Mark(err, ErrIncompleteDeliveryInfo)
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotPickupOrder),
		errors.Is(err, order.ErrNotReadyForPickup):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return errs.Mark(err, ErrInvalidTransition)
	}
}

func buildDetails(input PlaceOrderInput) (order.Details, error) {
	switch input.OrderType {
	case order.TypePickup:
		if input.PickupTime == nil {
			return order.Details{}, order.ErrMissingPickupTime
		}
		return order.NewPickupDetails(*input.PickupTime)
	case order.TypeDelivery:
		if input.DeliveryAddress == nil {
			return order.Details{}, order.ErrIncompleteAddress
		}
		if input.DeliveryTime == nil {
			return order.Details{}, order.ErrMissingDeliveryTime
		}
		return order.NewDeliveryDetails(*input.DeliveryAddress, *input.DeliveryTime)
	default:
		return order.Details{}, order.ErrInvalidOrderType
	}
}
