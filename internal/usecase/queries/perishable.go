package queries

import (
	"context"

	"foodshare/internal/domain/perishable"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPerishableNotFound = errs.New("perishable item not found")

type PerishableReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PerishableView, error)
	ListAll(ctx context.Context) ([]*PerishableView, error)
}

type PerishableQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PerishableView, error)
	// ListActive annotates each item with remaining minutes and its
	// classification as of now. Items concurrently being swept may appear one
	// last time; none are ever observed half-deleted.
	ListActive(ctx context.Context) ([]*PerishableView, error)
}

type perishableQueriesImpl struct {
	store PerishableReadStore
	clock clock.Clock
}

func NewPerishableQueries(store PerishableReadStore, clock clock.Clock) PerishableQueries {
	return &perishableQueriesImpl{store: store, clock: clock}
}

func (q *perishableQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PerishableView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPerishableNotFound
		}
		return nil, err
	}
	annotate(view, q.clock)
	return view, nil
}

func (q *perishableQueriesImpl) ListActive(ctx context.Context) ([]*PerishableView, error) {
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		annotate(v, q.clock)
	}
	return views, nil
}

func annotate(v *PerishableView, c clock.Clock) {
	item := perishable.ReconstructItem(
		v.ID, v.DonorName, v.DonorContact, v.Title, v.Description, v.Location,
		v.Quantity,
		perishable.Attributes{
			FoodType:    v.FoodType,
			Temperature: v.Temperature,
			Humidity:    v.Humidity,
			Packaging:   v.Packaging,
		},
		v.EstimatedHours, v.CreatedAt, v.ExpiresAt,
	)
	now := c.Now()
	v.RemainingMinutes = item.RemainingMinutes(now)
	v.Classification = string(item.Classification(now))
}
