package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read-side views are flat snapshots shaped for responses, decoupled from
// write-side entities (CQRS separation).

type DonationView struct {
	ID             uuid.UUID
	DonorID        uuid.UUID
	Title          string
	Description    string
	FoodType       string
	QuantityAmount int32
	QuantityUnit   string
	ExpirationDate time.Time
	PickupDate     time.Time
	Status         string
	ReservedBy     *uuid.UUID
	ReservedAt     *time.Time
	PickedUpBy     *uuid.UUID
	PickedUpAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DonationFilter struct {
	FoodType *string
	Status   *string
	Limit    int32
	Offset   int32
}

type OrderView struct {
	ID           uuid.UUID
	RequesterID  uuid.UUID
	DonationID   uuid.UUID
	Quantity     int32
	OrderType    string
	PickupTime   *time.Time
	Street       *string
	City         *string
	State        *string
	ZipCode      *string
	Lat          *float64
	Lng          *float64
	DeliveryTime *time.Time
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PerishableView struct {
	ID             uuid.UUID
	DonorName      string
	DonorContact   string
	Title          string
	Description    string
	Location       string
	Quantity       int32
	FoodType       string
	Temperature    float64
	Humidity       float64
	Packaging      string
	EstimatedHours float64
	CreatedAt      time.Time
	ExpiresAt      time.Time

	// Derived at read time, never stored.
	RemainingMinutes int64
	Classification   string
}
