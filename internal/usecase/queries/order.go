package queries

import (
	"context"

	"foodshare/internal/domain/user"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrNotAuthorized = errs.New("not authorized")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*OrderView, error)
}

type OrderQueries interface {
	// GetByID enforces ownership: only the requester or an admin may read an
	// order.
	GetByID(ctx context.Context, id, actorID uuid.UUID, role user.Role) (*OrderView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, role user.Role) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.RequesterID != actorID && !role.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*OrderView, error) {
	return q.store.ListByRequester(ctx, requesterID)
}
