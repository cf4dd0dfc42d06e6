package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodshare/internal/domain/perishable"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPerishableValidation = errs.New("perishable validation error")

type CreatePerishableInput struct {
	DonorName    string
	DonorContact string
	Title        string
	Description  string
	Location     string
	Quantity     int32
	FoodType     string
	Temperature  float64
	Humidity     float64
	Packaging    string
}

type PerishableCommands interface {
	// Create estimates the safe-consumption duration exactly once, derives the
	// immutable expiry instant and persists the item. Estimator failures fall
	// back to a fixed duration and are logged, never propagated.
	Create(ctx context.Context, input CreatePerishableInput) (uuid.UUID, error)
	// SweepExpired removes every item within the safety threshold of expiry
	// and returns the removed IDs.
	SweepExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type perishableCommandsImpl struct {
	uow           shared.UnitOfWork
	estimator     ExpiryEstimator
	publisher     NotificationPublisher
	clock         clock.Clock
	fallbackHours float64
}

func NewPerishableCommands(
	uow shared.UnitOfWork,
	estimator ExpiryEstimator,
	publisher NotificationPublisher,
	clock clock.Clock,
	fallbackHours float64,
) PerishableCommands {
	return &perishableCommandsImpl{
		uow:           uow,
		estimator:     estimator,
		publisher:     publisher,
		clock:         clock,
		fallbackHours: fallbackHours,
	}
}

func (c *perishableCommandsImpl) Create(ctx context.Context, input CreatePerishableInput) (uuid.UUID, error) {
	hours, err := c.estimator.Estimate(ctx, input.FoodType, input.Temperature, input.Humidity, input.Packaging)
	if err != nil || hours <= 0 {
		slog.Warn("expiry estimation failed, using fallback duration",
			"food_type", input.FoodType,
			"fallback_hours", c.fallbackHours,
			"error", err)
		hours = c.fallbackHours
	}

	item, err := perishable.NewItem(
		input.DonorName, input.DonorContact,
		input.Title, input.Description, input.Location,
		input.Quantity,
		perishable.Attributes{
			FoodType:    input.FoodType,
			Temperature: input.Temperature,
			Humidity:    input.Humidity,
			Packaging:   input.Packaging,
		},
		hours,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPerishableValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Perishables().Create(ctx, item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.broadcastNewItem(ctx, item)
	return item.ID(), nil
}

func (c *perishableCommandsImpl) SweepExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var removed []uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Perishables().SweepExpired(ctx, now.Add(perishable.SweepThreshold))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		removed = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (c *perishableCommandsImpl) broadcastNewItem(ctx context.Context, item *perishable.Item) {
	attrs := item.Attrs()
	message := fmt.Sprintf(
		"New food donation available: %s (%s, qty %d) at %s. Consume within %.0f hours.",
		item.Title(), attrs.FoodType, item.Quantity(), item.Location(), item.EstimatedHours(),
	)

	c.publisher.Publish(ctx, Event{
		Kind:    EventKindNewPerishable,
		Title:   "New Food Donation Available",
		Message: message,
		Related: RelatedRef{
			Kind: EntityKindPerishable,
			ID:   item.ID(),
		},
	})
}
