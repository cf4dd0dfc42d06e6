//go:build unit || e2e

package builder

import (
	"time"

	domorder "foodshare/internal/domain/order"
	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	RequesterID     uuid.UUID
	DonationID      uuid.UUID
	Quantity        int32
	OrderType       domorder.Type
	PickupTime      time.Time
	DeliveryAddress domorder.DeliveryAddress
	DeliveryTime    time.Time
	Status          domorder.Status
	Notes           string
	Now             time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		RequesterID: uuid.New(),
		DonationID:  uuid.New(),
		Quantity:    3,
		OrderType:   domorder.TypePickup,
		PickupTime:  now.Add(6 * time.Hour),
		DeliveryAddress: domorder.DeliveryAddress{
			Street:  "44 Elm Ave",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62702",
			Lat:     39.81,
			Lng:     -89.64,
		},
		DeliveryTime: now.Add(8 * time.Hour),
		Status:       domorder.StatusPending,
		Now:          now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) buildDetails() (domorder.Details, error) {
	if b.OrderType == domorder.TypeDelivery {
		return domorder.NewDeliveryDetails(b.DeliveryAddress, b.DeliveryTime)
	}
	return domorder.NewPickupDetails(b.PickupTime)
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	details, err := b.buildDetails()
	if err != nil {
		return nil, err
	}
	return domorder.NewOrder(b.RequesterID, b.DonationID, b.Quantity, details, b.Notes)
}

// BuildReconstructed stages the order at an arbitrary point of the status
// flow.
func (b *OrderBuilder) BuildReconstructed() *domorder.Order {
	var details domorder.Details
	if b.OrderType == domorder.TypeDelivery {
		details = domorder.ReconstructDetails(b.OrderType, nil, &domorder.DeliveryDetails{
			Address:      b.DeliveryAddress,
			DeliveryTime: b.DeliveryTime,
		})
	} else {
		details = domorder.ReconstructDetails(b.OrderType, &domorder.PickupDetails{PickupTime: b.PickupTime}, nil)
	}
	return domorder.ReconstructOrder(
		uuid.New(), b.RequesterID, b.DonationID,
		b.Quantity,
		details,
		b.Status,
		b.Notes,
		b.Now, b.Now,
	)
}

func (b *OrderBuilder) BuildPlaceInput() commands.PlaceOrderInput {
	input := commands.PlaceOrderInput{
		DonationID: b.DonationID,
		Quantity:   b.Quantity,
		OrderType:  b.OrderType,
		Notes:      b.Notes,
	}
	if b.OrderType == domorder.TypeDelivery {
		addr := b.DeliveryAddress
		t := b.DeliveryTime
		input.DeliveryAddress = &addr
		input.DeliveryTime = &t
	} else {
		t := b.PickupTime
		input.PickupTime = &t
	}
	return input
}

func (b *OrderBuilder) BuildPlaceRequestDTO() reqdto.PlaceOrderRequest {
	req := reqdto.PlaceOrderRequest{
		DonationID: b.DonationID,
		Quantity:   b.Quantity,
		OrderType:  b.OrderType.String(),
		Notes:      b.Notes,
	}
	if b.OrderType == domorder.TypeDelivery {
		req.DeliveryAddress = &reqdto.DeliveryAddressRequest{
			Street:  b.DeliveryAddress.Street,
			City:    b.DeliveryAddress.City,
			State:   b.DeliveryAddress.State,
			ZipCode: b.DeliveryAddress.ZipCode,
			Lat:     b.DeliveryAddress.Lat,
			Lng:     b.DeliveryAddress.Lng,
		}
		t := b.DeliveryTime
		req.DeliveryTime = &t
	} else {
		t := b.PickupTime
		req.PickupTime = &t
	}
	return req
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	view := &queries.OrderView{
		ID:          uuid.New(),
		RequesterID: b.RequesterID,
		DonationID:  b.DonationID,
		Quantity:    b.Quantity,
		OrderType:   b.OrderType.String(),
		Status:      b.Status.String(),
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
	if b.OrderType == domorder.TypeDelivery {
		view.Street = &b.DeliveryAddress.Street
		view.City = &b.DeliveryAddress.City
		view.State = &b.DeliveryAddress.State
		view.ZipCode = &b.DeliveryAddress.ZipCode
		view.Lat = &b.DeliveryAddress.Lat
		view.Lng = &b.DeliveryAddress.Lng
		view.DeliveryTime = &b.DeliveryTime
	} else {
		view.PickupTime = &b.PickupTime
	}
	return view
}

func (b *OrderBuilder) WithRequesterID(id uuid.UUID) *OrderBuilder {
	b.RequesterID = id
	return b
}

func (b *OrderBuilder) WithDonationID(id uuid.UUID) *OrderBuilder {
	b.DonationID = id
	return b
}

func (b *OrderBuilder) WithQuantity(quantity int32) *OrderBuilder {
	b.Quantity = quantity
	return b
}

func (b *OrderBuilder) WithStatus(status domorder.Status) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) AsDelivery() *OrderBuilder {
	b.OrderType = domorder.TypeDelivery
	return b
}

func (b *OrderBuilder) WithIncompleteAddress() *OrderBuilder {
	b.DeliveryAddress.ZipCode = ""
	return b
}
