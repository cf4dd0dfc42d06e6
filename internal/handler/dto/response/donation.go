package response

import (
	"time"

	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DonationResponse struct {
	ID             uuid.UUID  `json:"id"`
	DonorID        uuid.UUID  `json:"donorId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	FoodType       string     `json:"foodType"`
	QuantityAmount int32      `json:"quantityAmount"`
	QuantityUnit   string     `json:"quantityUnit"`
	ExpirationDate time.Time  `json:"expirationDate"`
	PickupDate     time.Time  `json:"pickupDate"`
	Status         string     `json:"status"`
	ReservedBy     *uuid.UUID `json:"reservedBy,omitempty"`
	ReservedAt     *time.Time `json:"reservedAt,omitempty"`
	PickedUpBy     *uuid.UUID `json:"pickedUpBy,omitempty"`
	PickedUpAt     *time.Time `json:"pickedUpAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromDonationView(view *queries.DonationView) *DonationResponse {
	var resp DonationResponse
	// Field names match one to one; copier keeps the mapping from drifting as
	// columns are added.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDonationViews(views []*queries.DonationView) []*DonationResponse {
	result := make([]*DonationResponse, len(views))
	for i, v := range views {
		result[i] = FromDonationView(v)
	}
	return result
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ReservedResponse struct {
	OrderID uuid.UUID `json:"orderId"`
}
