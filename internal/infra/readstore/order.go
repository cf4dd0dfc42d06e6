package readstore

import (
	"context"

	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderViewColumns = `
id, requester_id, donation_id, quantity, order_type,
pickup_time,
street, city, state, zip_code, lat, lng, delivery_time,
status, notes, created_at, updated_at`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	sql := `SELECT ` + orderViewColumns + ` FROM orders WHERE id = $1`

	view, err := scanOrderView(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return view, nil
}

func (r *OrderReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.OrderView, error) {
	sql := `SELECT ` + orderViewColumns + ` FROM orders WHERE requester_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, sql, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by requester", err)
	}
	defer rows.Close()

	var result []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	return result, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var v queries.OrderView
	err := row.Scan(
		&v.ID, &v.RequesterID, &v.DonationID, &v.Quantity, &v.OrderType,
		&v.PickupTime,
		&v.Street, &v.City, &v.State, &v.ZipCode, &v.Lat, &v.Lng, &v.DeliveryTime,
		&v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
