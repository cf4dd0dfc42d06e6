package donation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyDescription  = errors.New("description is required")
	ErrInvalidFoodType   = errors.New("invalid food type")
	ErrPastExpiration    = errors.New("expiration date cannot be in the past")
	ErrOwnDonation       = errors.New("cannot reserve your own donation")
	ErrNotAvailable      = errors.New("donation is not available")
	ErrNotReserved       = errors.New("donation must be reserved first")
	ErrNotReservedByUser = errors.New("donation is reserved by a different user")
)

type Donation struct {
	id             uuid.UUID
	donorID        uuid.UUID
	title          string
	description    string
	foodType       FoodType
	quantity       Quantity
	expirationDate time.Time
	pickupDate     time.Time
	location       Location
	status         Status
	reservedBy     *uuid.UUID
	reservedAt     *time.Time
	pickedUpBy     *uuid.UUID
	pickedUpAt     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewDonation(
	donorID uuid.UUID,
	title, description string,
	foodType FoodType,
	quantity Quantity,
	expirationDate, pickupDate time.Time,
	location Location,
	now time.Time,
) (*Donation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if !foodType.IsValid() {
		return nil, ErrInvalidFoodType
	}
	if !expirationDate.After(now) {
		return nil, ErrPastExpiration
	}

	return &Donation{
		id:             uuid.New(),
		donorID:        donorID,
		title:          title,
		description:    description,
		foodType:       foodType,
		quantity:       quantity,
		expirationDate: expirationDate,
		pickupDate:     pickupDate,
		location:       location,
		status:         StatusAvailable,
	}, nil
}

func ReconstructDonation(
	id, donorID uuid.UUID,
	title, description string,
	foodType FoodType,
	quantity Quantity,
	expirationDate, pickupDate time.Time,
	location Location,
	status Status,
	reservedBy *uuid.UUID, reservedAt *time.Time,
	pickedUpBy *uuid.UUID, pickedUpAt *time.Time,
	createdAt, updatedAt time.Time,
) *Donation {
	return &Donation{
		id:             id,
		donorID:        donorID,
		title:          title,
		description:    description,
		foodType:       foodType,
		quantity:       quantity,
		expirationDate: expirationDate,
		pickupDate:     pickupDate,
		location:       location,
		status:         status,
		reservedBy:     reservedBy,
		reservedAt:     reservedAt,
		pickedUpBy:     pickedUpBy,
		pickedUpAt:     pickedUpAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (d *Donation) IsExpired(now time.Time) bool {
	return now.After(d.expirationDate) || d.status == StatusExpired
}

func (d *Donation) IsAvailableForPickup(now time.Time) bool {
	return d.status == StatusAvailable && !d.IsExpired(now)
}

// ValidateReservation guards the exclusive whole-donation reservation path.
func (d *Donation) ValidateReservation(requesterID uuid.UUID, now time.Time) error {
	if !d.IsAvailableForPickup(now) {
		return ErrNotAvailable
	}
	if d.donorID == requesterID {
		return ErrOwnDonation
	}
	return nil
}

// ValidatePickup guards the picked-up confirmation: only the user holding the
// reservation may confirm pickup.
func (d *Donation) ValidatePickup(userID uuid.UUID) error {
	if d.status != StatusReserved {
		return ErrNotReserved
	}
	if d.reservedBy == nil || *d.reservedBy != userID {
		return ErrNotReservedByUser
	}
	return nil
}

func (d *Donation) IsOwnedBy(userID uuid.UUID) bool {
	return d.donorID == userID
}

func (d *Donation) ID() uuid.UUID             { return d.id }
func (d *Donation) DonorID() uuid.UUID        { return d.donorID }
func (d *Donation) Title() string             { return d.title }
func (d *Donation) Description() string       { return d.description }
func (d *Donation) FoodType() FoodType        { return d.foodType }
func (d *Donation) Quantity() Quantity        { return d.quantity }
func (d *Donation) ExpirationDate() time.Time { return d.expirationDate }
func (d *Donation) PickupDate() time.Time     { return d.pickupDate }
func (d *Donation) Location() Location        { return d.location }
func (d *Donation) Status() Status            { return d.status }
func (d *Donation) ReservedBy() *uuid.UUID    { return d.reservedBy }
func (d *Donation) ReservedAt() *time.Time    { return d.reservedAt }
func (d *Donation) PickedUpBy() *uuid.UUID    { return d.pickedUpBy }
func (d *Donation) PickedUpAt() *time.Time    { return d.pickedUpAt }
func (d *Donation) CreatedAt() time.Time      { return d.createdAt }
func (d *Donation) UpdatedAt() time.Time      { return d.updatedAt }
