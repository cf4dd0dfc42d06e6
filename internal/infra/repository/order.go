package repository

import (
	"context"
	"time"

	"foodshare/internal/domain/order"
	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

const createOrderSQL = `
INSERT INTO orders (
	id, requester_id, donation_id, quantity, order_type,
	pickup_time,
	street, city, state, zip_code, lat, lng, delivery_time,
	status, notes
) VALUES (
	$1, $2, $3, $4, $5,
	$6,
	$7, $8, $9, $10, $11, $12, $13,
	$14, $15
)
RETURNING id`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	var (
		pickupTime                   *time.Time
		street, city, state, zipCode *string
		lat, lng                     *float64
		deliveryTime                 *time.Time
	)

	switch o.Type() {
	case order.TypePickup:
		t := o.Details().Pickup().PickupTime
		pickupTime = &t
	case order.TypeDelivery:
		delivery := o.Details().Delivery()
		street = &delivery.Address.Street
		city = &delivery.Address.City
		state = &delivery.Address.State
		zipCode = &delivery.Address.ZipCode
		lat = &delivery.Address.Lat
		lng = &delivery.Address.Lng
		t := delivery.DeliveryTime
		deliveryTime = &t
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createOrderSQL,
		o.ID(), o.RequesterID(), o.DonationID(), o.Quantity(), o.Type().String(),
		pickupTime,
		street, city, state, zipCode, lat, lng, deliveryTime,
		o.Status().String(), o.Notes(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("donation for order not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return id, nil
}

const findOrderForUpdateSQL = `
SELECT id, requester_id, donation_id, quantity, order_type,
	pickup_time,
	street, city, state, zip_code, lat, lng, delivery_time,
	status, notes, created_at, updated_at
FROM orders
WHERE id = $1
FOR UPDATE`

// FindByIDForUpdate locks the row so concurrent transitions on the same order
// are applied one at a time.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row := r.db.QueryRow(ctx, findOrderForUpdateSQL, id)

	var (
		orderID, requesterID, donationID uuid.UUID
		quantity                         int32
		orderType                        string
		pickupTime                       *time.Time
		street, city, state, zipCode     *string
		lat, lng                         *float64
		deliveryTime                     *time.Time
		status                           string
		notes                            *string
		createdAt, updatedAt             time.Time
	)

	err := row.Scan(
		&orderID, &requesterID, &donationID, &quantity, &orderType,
		&pickupTime,
		&street, &city, &state, &zipCode, &lat, &lng, &deliveryTime,
		&status, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order for update", err)
	}

	details := reconstructDetails(order.Type(orderType), pickupTime, street, city, state, zipCode, lat, lng, deliveryTime)

	noteText := ""
	if notes != nil {
		noteText = *notes
	}

	return order.ReconstructOrder(
		orderID, requesterID, donationID,
		quantity,
		details,
		order.Status(status),
		noteText,
		createdAt, updatedAt,
	), nil
}

func reconstructDetails(
	typ order.Type,
	pickupTime *time.Time,
	street, city, state, zipCode *string,
	lat, lng *float64,
	deliveryTime *time.Time,
) order.Details {
	switch typ {
	case order.TypePickup:
		var pickup *order.PickupDetails
		if pickupTime != nil {
			pickup = &order.PickupDetails{PickupTime: *pickupTime}
		}
		return order.ReconstructDetails(typ, pickup, nil)
	case order.TypeDelivery:
		delivery := &order.DeliveryDetails{
			Address: order.DeliveryAddress{
				Street:  strOrEmpty(street),
				City:    strOrEmpty(city),
				State:   strOrEmpty(state),
				ZipCode: strOrEmpty(zipCode),
				Lat:     floatOrZero(lat),
				Lng:     floatOrZero(lng),
			},
		}
		if deliveryTime != nil {
			delivery.DeliveryTime = *deliveryTime
		}
		return order.ReconstructDetails(typ, nil, delivery)
	default:
		return order.ReconstructDetails(typ, nil, nil)
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

const updateOrderStatusSQL = `
UPDATE orders
SET status = $2, updated_at = $3
WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
