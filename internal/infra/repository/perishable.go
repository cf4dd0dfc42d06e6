package repository

import (
	"context"
	"time"

	"foodshare/internal/domain/perishable"
	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PerishableRepository struct {
	db db.DBTX
}

func NewPerishableRepository(dbtx db.DBTX) *PerishableRepository {
	return &PerishableRepository{db: dbtx}
}

const createPerishableSQL = `
INSERT INTO perishable_items (
	id, donor_name, donor_contact, title, description, location, quantity,
	food_type, temperature, humidity, packaging,
	estimated_hours, created_at, expires_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7,
	$8, $9, $10, $11,
	$12, $13, $14
)
RETURNING id`

func (r *PerishableRepository) Create(ctx context.Context, item *perishable.Item) (uuid.UUID, error) {
	attrs := item.Attrs()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createPerishableSQL,
		item.ID(), item.DonorName(), item.DonorContact(), item.Title(), item.Description(), item.Location(), item.Quantity(),
		attrs.FoodType, attrs.Temperature, attrs.Humidity, attrs.Packaging,
		item.EstimatedHours(), item.CreatedAt(), item.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("perishable item already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create perishable item", err)
	}

	return id, nil
}

const sweepExpiredSQL = `
DELETE FROM perishable_items
WHERE expires_at <= $1
RETURNING id`

// SweepExpired removes everything at or past cutoff in one statement, so a
// reader either sees an item or does not; there is no in-between state.
func (r *PerishableRepository) SweepExpired(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, sweepExpiredSQL, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sweep expired perishables", err)
	}
	defer rows.Close()

	var removed []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan swept perishable id", err)
		}
		removed = append(removed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate swept perishables", err)
	}

	return removed, nil
}
