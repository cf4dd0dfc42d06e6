package request

import (
	"time"

	"foodshare/internal/domain/order"
	"foodshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	DonationID uuid.UUID `json:"donation_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"required"`
	OrderType  string    `json:"order_type" binding:"required,oneof=pickup delivery"`

	PickupTime *time.Time `json:"pickup_time,omitempty"`

	DeliveryAddress *DeliveryAddressRequest `json:"delivery_address,omitempty"`
	DeliveryTime    *time.Time              `json:"delivery_time,omitempty"`

	Notes string `json:"notes"`
}

type DeliveryAddressRequest struct {
	Street  string  `json:"street"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	ZipCode string  `json:"zip_code"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func (r PlaceOrderRequest) ToInput() commands.PlaceOrderInput {
	input := commands.PlaceOrderInput{
		DonationID: r.DonationID,
		Quantity:   r.Quantity,
		OrderType:  order.Type(r.OrderType),
		PickupTime: r.PickupTime,
		Notes:      r.Notes,
	}
	if r.DeliveryAddress != nil {
		input.DeliveryAddress = &order.DeliveryAddress{
			Street:  r.DeliveryAddress.Street,
			City:    r.DeliveryAddress.City,
			State:   r.DeliveryAddress.State,
			ZipCode: r.DeliveryAddress.ZipCode,
			Lat:     r.DeliveryAddress.Lat,
			Lng:     r.DeliveryAddress.Lng,
		}
	}
	input.DeliveryTime = r.DeliveryTime
	return input
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
