package commands

import (
	"context"
	"errors"
	"time"

	"foodshare/internal/domain/donation"
	"foodshare/internal/domain/order"
	"foodshare/internal/domain/user"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDonationNotFound     = errs.New("donation not found")
	ErrDonationNotAvailable = errs.New("donation is not available")
	ErrOwnDonation          = errs.New("cannot reserve your own donation")
	ErrDonationNotReserved  = errs.New("donation must be reserved first")
	ErrDonationValidation   = errs.New("donation validation error")
)

type CreateDonationInput struct {
	Title          string
	Description    string
	FoodType       donation.FoodType
	QuantityAmount int32
	QuantityUnit   donation.Unit
	ExpirationDate time.Time
	PickupDate     time.Time
	Location       donation.Location
}

type DonationCommands interface {
	Create(ctx context.Context, input CreateDonationInput, donorID uuid.UUID) (uuid.UUID, error)
	// Reserve takes the whole remaining quantity exclusively for one
	// requester and opens a pending pickup order for it.
	Reserve(ctx context.Context, donationID, requesterID uuid.UUID) (uuid.UUID, error)
	// ConfirmPickup marks a reserved donation picked-up; only the reserving
	// user may confirm.
	ConfirmPickup(ctx context.Context, donationID, userID uuid.UUID) error
	Delete(ctx context.Context, donationID, actorID uuid.UUID, role user.Role) error
}

type donationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDonationCommands(uow shared.UnitOfWork, clock clock.Clock) DonationCommands {
	return &donationCommandsImpl{uow: uow, clock: clock}
}

func (c *donationCommandsImpl) Create(ctx context.Context, input CreateDonationInput, donorID uuid.UUID) (uuid.UUID, error) {
	quantity, err := donation.NewQuantity(input.QuantityAmount, input.QuantityUnit)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDonationValidation)
	}

	entity, err := donation.NewDonation(
		donorID,
		input.Title, input.Description,
		input.FoodType,
		quantity,
		input.ExpirationDate, input.PickupDate,
		input.Location,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDonationValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Donations().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return entity.ID(), nil
}

func (c *donationCommandsImpl) Reserve(ctx context.Context, donationID, requesterID uuid.UUID) (uuid.UUID, error) {
	var orderID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadDonationForUpdate(ctx, tx, donationID)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		if err := entity.ValidateReservation(requesterID, now); err != nil {
			switch {
			case errors.Is(err, donation.ErrOwnDonation):
				return ErrOwnDonation
			default:
				return ErrDonationNotAvailable
			}
		}

		amount := entity.Quantity().Amount()
		if amount <= 0 {
			return ErrDonationNotAvailable
		}

		// Exclusive reservation goes through the same ledger decrement as
		// partial orders, taking everything that is left.
		if err := tx.Donations().Reserve(ctx, donationID, amount); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDonationNotAvailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Donations().MarkReserved(ctx, donationID, requesterID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		details, err := order.NewPickupDetails(entity.PickupDate())
		if err != nil {
			return errs.Mark(err, ErrDonationValidation)
		}
		pickupOrder, err := order.NewOrder(requesterID, donationID, amount, details, "")
		if err != nil {
			return errs.Mark(err, ErrDonationValidation)
		}
		if _, err := tx.Orders().Create(ctx, pickupOrder); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		orderID = pickupOrder.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return orderID, nil
}

func (c *donationCommandsImpl) ConfirmPickup(ctx context.Context, donationID, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadDonationForUpdate(ctx, tx, donationID)
		if err != nil {
			return err
		}

		if err := entity.ValidatePickup(userID); err != nil {
			switch {
			case errors.Is(err, donation.ErrNotReservedByUser):
				return ErrNotAuthorized
			default:
				return ErrDonationNotReserved
			}
		}

		if err := tx.Donations().MarkPickedUp(ctx, donationID, userID, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *donationCommandsImpl) Delete(ctx context.Context, donationID, actorID uuid.UUID, role user.Role) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.loadDonationForUpdate(ctx, tx, donationID)
		if err != nil {
			return err
		}

		if !entity.IsOwnedBy(actorID) && !role.IsAdmin() {
			return ErrNotAuthorized
		}

		if err := tx.Donations().Delete(ctx, donationID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *donationCommandsImpl) loadDonationForUpdate(ctx context.Context, tx shared.Tx, donationID uuid.UUID) (*donation.Donation, error) {
	entity, err := tx.Donations().FindByIDForUpdate(ctx, donationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
