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

const perishableViewColumns = `
id, donor_name, donor_contact, title, description, location, quantity,
food_type, temperature, humidity, packaging,
estimated_hours, created_at, expires_at`

type PerishableReadStore struct {
	db db.DBTX
}

func NewPerishableReadStore(dbtx db.DBTX) *PerishableReadStore {
	return &PerishableReadStore{db: dbtx}
}

func (r *PerishableReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PerishableView, error) {
	sql := `SELECT ` + perishableViewColumns + ` FROM perishable_items WHERE id = $1`

	view, err := scanPerishableView(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("perishable item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find perishable item by ID", err)
	}
	return view, nil
}

// ListAll returns items soonest-to-expire first so the most urgent ones lead
// the feed.
func (r *PerishableReadStore) ListAll(ctx context.Context) ([]*queries.PerishableView, error) {
	sql := `SELECT ` + perishableViewColumns + ` FROM perishable_items ORDER BY expires_at ASC, id ASC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list perishable items", err)
	}
	defer rows.Close()

	var result []*queries.PerishableView
	for rows.Next() {
		view, err := scanPerishableView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan perishable row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate perishable rows", err)
	}

	return result, nil
}

func scanPerishableView(row pgx.Row) (*queries.PerishableView, error) {
	var v queries.PerishableView
	err := row.Scan(
		&v.ID, &v.DonorName, &v.DonorContact, &v.Title, &v.Description, &v.Location, &v.Quantity,
		&v.FoodType, &v.Temperature, &v.Humidity, &v.Packaging,
		&v.EstimatedHours, &v.CreatedAt, &v.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
