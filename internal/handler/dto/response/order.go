package response

import (
	"time"

	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requesterId"`
	DonationID  uuid.UUID `json:"donationId"`
	Quantity    int32     `json:"quantity"`
	OrderType   string    `json:"orderType"`

	PickupTime *time.Time `json:"pickupTime,omitempty"`

	Street       *string    `json:"street,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	ZipCode      *string    `json:"zipCode,omitempty"`
	Lat          *float64   `json:"lat,omitempty"`
	Lng          *float64   `json:"lng,omitempty"`
	DeliveryTime *time.Time `json:"deliveryTime,omitempty"`

	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	result := make([]*OrderResponse, len(views))
	for i, v := range views {
		result[i] = FromOrderView(v)
	}
	return result
}
