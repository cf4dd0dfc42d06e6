package queries

import (
	"context"

	"foodshare/internal/infra"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDonationNotFound = errs.New("donation not found")

type DonationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	List(ctx context.Context, filter DonationFilter) ([]*DonationView, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*DonationView, error)
	ListReservedBy(ctx context.Context, userID uuid.UUID) ([]*DonationView, error)
}

type DonationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	List(ctx context.Context, filter DonationFilter) ([]*DonationView, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*DonationView, error)
	ListReservedBy(ctx context.Context, userID uuid.UUID) ([]*DonationView, error)
}

type donationQueriesImpl struct {
	store DonationReadStore
}

func NewDonationQueries(store DonationReadStore) DonationQueries {
	return &donationQueriesImpl{store: store}
}

func (q *donationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DonationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *donationQueriesImpl) List(ctx context.Context, filter DonationFilter) ([]*DonationView, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return q.store.List(ctx, filter)
}

func (q *donationQueriesImpl) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*DonationView, error) {
	return q.store.ListByDonor(ctx, donorID)
}

func (q *donationQueriesImpl) ListReservedBy(ctx context.Context, userID uuid.UUID) ([]*DonationView, error) {
	return q.store.ListReservedBy(ctx, userID)
}
