//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestDonation inserts a donation row with sensible defaults. The
// returned ID belongs to the given donor, carries the given quantity and
// status, and expires two days out.
func CreateTestDonation(t *testing.T, db DBLike, donorID uuid.UUID, quantity int32, status string) uuid.UUID {
	t.Helper()

	donationID := uuid.New()
	now := time.Now()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO donations (
			id, donor_id, title, description, food_type,
			quantity_amount, quantity_unit,
			expiration_date, pickup_date,
			street, city, state, zip_code, lat, lng,
			status
		) VALUES (
			$1, $2, 'Surplus bread', 'Day-old loaves from the bakery', 'baked-goods',
			$3, 'items',
			$4, $5,
			'12 Main St', 'Springfield', 'IL', '62701', 39.78, -89.65,
			$6
		)`,
		donationID, donorID, quantity, now.Add(48*time.Hour), now.Add(24*time.Hour), status)
	require.NoError(t, err)

	return donationID
}

// CreateTestPerishable inserts a perishable item expiring at the given
// instant.
func CreateTestPerishable(t *testing.T, db DBLike, expiresAt time.Time) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	now := time.Now()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO perishable_items (
			id, donor_name, donor_contact, title, description, location, quantity,
			food_type, temperature, humidity, packaging,
			estimated_hours, created_at, expires_at
		) VALUES (
			$1, 'Corner Deli', 'deli@example.com', 'Fresh salads', 'Prepared today', 'Downtown', 4,
			'prepared', 6.5, 60, 'sealed',
			$2, $3, $4
		)`,
		itemID, expiresAt.Sub(now).Hours(), now, expiresAt)
	require.NoError(t, err)

	return itemID
}

// ResetDB truncates all tables so tests start from an empty state.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE orders, donations, perishable_items CASCADE")
	return err
}
