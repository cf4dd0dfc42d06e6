package readstore

import (
	"context"
	"fmt"
	"strings"

	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const donationViewColumns = `
id, donor_id, title, description, food_type,
quantity_amount, quantity_unit,
expiration_date, pickup_date,
status, reserved_by, reserved_at, picked_up_by, picked_up_at,
created_at, updated_at`

type DonationReadStore struct {
	db db.DBTX
}

func NewDonationReadStore(dbtx db.DBTX) *DonationReadStore {
	return &DonationReadStore{db: dbtx}
}

func (r *DonationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DonationView, error) {
	sql := `SELECT ` + donationViewColumns + ` FROM donations WHERE id = $1`

	view, err := scanDonationView(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("donation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find donation by ID", err)
	}
	return view, nil
}

// List builds the WHERE clause from the optional filter fields. Results are
// newest first.
func (r *DonationReadStore) List(ctx context.Context, filter queries.DonationFilter) ([]*queries.DonationView, error) {
	sql, args := buildDonationListQuery(filter)
	return r.queryDonationViews(ctx, sql, args...)
}

// buildDonationListQuery hides expired donations from the public listing
// unless the caller filters by status explicitly.
func buildDonationListQuery(filter queries.DonationFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.FoodType != nil {
		args = append(args, *filter.FoodType)
		conds = append(conds, fmt.Sprintf("food_type = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	} else {
		conds = append(conds, "status <> 'expired'")
	}

	sql := `SELECT ` + donationViewColumns + ` FROM donations`
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit)
	sql += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	sql += fmt.Sprintf(" OFFSET $%d", len(args))

	return sql, args
}

func (r *DonationReadStore) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*queries.DonationView, error) {
	sql := `SELECT ` + donationViewColumns + ` FROM donations WHERE donor_id = $1 ORDER BY created_at DESC, id DESC`
	return r.queryDonationViews(ctx, sql, donorID)
}

func (r *DonationReadStore) ListReservedBy(ctx context.Context, userID uuid.UUID) ([]*queries.DonationView, error) {
	sql := `SELECT ` + donationViewColumns + ` FROM donations WHERE reserved_by = $1 ORDER BY reserved_at DESC, id DESC`
	return r.queryDonationViews(ctx, sql, userID)
}

func (r *DonationReadStore) queryDonationViews(ctx context.Context, sql string, args ...any) ([]*queries.DonationView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list donations", err)
	}
	defer rows.Close()

	var result []*queries.DonationView
	for rows.Next() {
		view, err := scanDonationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan donation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate donation rows", err)
	}

	return result, nil
}

func scanDonationView(row pgx.Row) (*queries.DonationView, error) {
	var v queries.DonationView
	err := row.Scan(
		&v.ID, &v.DonorID, &v.Title, &v.Description, &v.FoodType,
		&v.QuantityAmount, &v.QuantityUnit,
		&v.ExpirationDate, &v.PickupDate,
		&v.Status, &v.ReservedBy, &v.ReservedAt, &v.PickedUpBy, &v.PickedUpAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
