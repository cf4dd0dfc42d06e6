package repository

import (
	"context"
	"time"

	"foodshare/internal/domain/donation"
	"foodshare/internal/infra"
	"foodshare/internal/infra/db"
	"foodshare/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DonationRepository struct {
	db db.DBTX
}

func NewDonationRepository(dbtx db.DBTX) *DonationRepository {
	return &DonationRepository{db: dbtx}
}

const createDonationSQL = `
INSERT INTO donations (
	id, donor_id, title, description, food_type,
	quantity_amount, quantity_unit,
	expiration_date, pickup_date,
	street, city, state, zip_code, lat, lng, pickup_instructions,
	status
) VALUES (
	$1, $2, $3, $4, $5,
	$6, $7,
	$8, $9,
	$10, $11, $12, $13, $14, $15, $16,
	$17
)
RETURNING id`

func (r *DonationRepository) Create(ctx context.Context, d *donation.Donation) (uuid.UUID, error) {
	loc := d.Location()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, createDonationSQL,
		d.ID(), d.DonorID(), d.Title(), d.Description(), d.FoodType().String(),
		d.Quantity().Amount(), d.Quantity().Unit().String(),
		d.ExpirationDate(), d.PickupDate(),
		loc.Street, loc.City, loc.State, loc.ZipCode, loc.Lat, loc.Lng, loc.PickupInstructions,
		d.Status().String(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("donation already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create donation", err)
	}

	return id, nil
}

const findDonationForUpdateSQL = `
SELECT id, donor_id, title, description, food_type,
	quantity_amount, quantity_unit,
	expiration_date, pickup_date,
	street, city, state, zip_code, lat, lng, pickup_instructions,
	status, reserved_by, reserved_at, picked_up_by, picked_up_at,
	created_at, updated_at
FROM donations
WHERE id = $1
FOR UPDATE`

func (r *DonationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	row := r.db.QueryRow(ctx, findDonationForUpdateSQL, id)

	var (
		donationID, donorID    uuid.UUID
		title, description     string
		foodType               string
		quantityAmount         int32
		quantityUnit           string
		expirationDate         time.Time
		pickupDate             time.Time
		loc                    donation.Location
		status                 string
		reservedBy, pickedUpBy *uuid.UUID
		reservedAt, pickedUpAt *time.Time
		createdAt, updatedAt   time.Time
	)

	err := row.Scan(
		&donationID, &donorID, &title, &description, &foodType,
		&quantityAmount, &quantityUnit,
		&expirationDate, &pickupDate,
		&loc.Street, &loc.City, &loc.State, &loc.ZipCode, &loc.Lat, &loc.Lng, &loc.PickupInstructions,
		&status, &reservedBy, &reservedAt, &pickedUpBy, &pickedUpAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("donation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find donation for update", err)
	}

	return donation.ReconstructDonation(
		donationID, donorID,
		title, description,
		donation.FoodType(foodType),
		donation.ReconstructQuantity(quantityAmount, donation.Unit(quantityUnit)),
		expirationDate, pickupDate,
		loc,
		donation.Status(status),
		reservedBy, reservedAt,
		pickedUpBy, pickedUpAt,
		createdAt, updatedAt,
	), nil
}

const reserveDonationSQL = `
UPDATE donations
SET quantity_amount = quantity_amount - $2, updated_at = now()
WHERE id = $1
  AND quantity_amount >= $2
  AND status NOT IN ('expired', 'cancelled', 'picked-up')`

// Reserve is the single mutation path for decrementing stock. The quantity
// guard lives in the UPDATE predicate, so two concurrent reservations can
// never take the database below zero.
func (r *DonationRepository) Reserve(ctx context.Context, id uuid.UUID, amount int32) error {
	tag, err := r.db.Exec(ctx, reserveDonationSQL, id, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve donation stock", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyReserveFailure(ctx, id)
	}
	return nil
}

// classifyReserveFailure distinguishes a vanished donation from one that
// exists but cannot cover the amount.
func (r *DonationRepository) classifyReserveFailure(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM donations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check donation existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("insufficient stock or donation not orderable", nil, infra.KindConflict)
}

const releaseDonationSQL = `
UPDATE donations
SET quantity_amount = quantity_amount + $2,
    status = CASE WHEN status = 'reserved' THEN 'available' ELSE status END,
    reserved_by = CASE WHEN status = 'reserved' THEN NULL ELSE reserved_by END,
    reserved_at = CASE WHEN status = 'reserved' THEN NULL ELSE reserved_at END,
    updated_at = now()
WHERE id = $1`

func (r *DonationRepository) Release(ctx context.Context, id uuid.UUID, amount int32) error {
	tag, err := r.db.Exec(ctx, releaseDonationSQL, id, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to release donation stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}

const markReservedSQL = `
UPDATE donations
SET status = 'reserved', reserved_by = $2, reserved_at = $3, updated_at = $3
WHERE id = $1`

func (r *DonationRepository) MarkReserved(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, markReservedSQL, id, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark donation reserved", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}

const markPickedUpSQL = `
UPDATE donations
SET status = 'picked-up', picked_up_by = $2, picked_up_at = $3, updated_at = $3
WHERE id = $1`

func (r *DonationRepository) MarkPickedUp(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, markPickedUpSQL, id, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark donation picked up", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateDonationStatusSQL = `
UPDATE donations
SET status = $2, updated_at = $3
WHERE id = $1`

func (r *DonationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status donation.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, updateDonationStatusSQL, id, status.String(), updatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update donation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DonationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete donation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("donation not found", nil, infra.KindNotFound)
	}
	return nil
}
