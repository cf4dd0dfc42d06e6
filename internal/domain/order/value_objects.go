package order

import (
	"errors"
	"time"
)

var (
	ErrMissingPickupTime      = errors.New("pickup time is required for pickup orders")
	ErrMissingDeliveryTime    = errors.New("delivery time is required for delivery orders")
	ErrIncompleteAddress      = errors.New("incomplete delivery address")
	ErrMissingCoordinates     = errors.New("delivery address coordinates are required")
	ErrDetailsTypeMismatch    = errors.New("order details do not match order type")
	ErrInvalidOrderType       = errors.New("invalid order type")
	ErrNonPositiveOrderAmount = errors.New("order quantity must be positive")
)

type DeliveryAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Lat     float64
	Lng     float64
}

func (a DeliveryAddress) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.ZipCode != "" &&
		a.Lat != 0 && a.Lng != 0
}

func (a DeliveryAddress) Validate() error {
	if a.Street == "" || a.City == "" || a.State == "" || a.ZipCode == "" {
		return ErrIncompleteAddress
	}
	if a.Lat == 0 || a.Lng == 0 {
		return ErrMissingCoordinates
	}
	return nil
}

// Details is a tagged variant carrying exactly the payload its type requires,
// validated at construction so there are no conditionally-required fields at
// runtime.
type Details struct {
	typ      Type
	pickup   *PickupDetails
	delivery *DeliveryDetails
}

type PickupDetails struct {
	PickupTime time.Time
}

type DeliveryDetails struct {
	Address      DeliveryAddress
	DeliveryTime time.Time
}

func NewPickupDetails(pickupTime time.Time) (Details, error) {
	if pickupTime.IsZero() {
		return Details{}, ErrMissingPickupTime
	}
	return Details{
		typ:    TypePickup,
		pickup: &PickupDetails{PickupTime: pickupTime},
	}, nil
}

func NewDeliveryDetails(address DeliveryAddress, deliveryTime time.Time) (Details, error) {
	if err := address.Validate(); err != nil {
		return Details{}, err
	}
	if deliveryTime.IsZero() {
		return Details{}, ErrMissingDeliveryTime
	}
	return Details{
		typ:      TypeDelivery,
		delivery: &DeliveryDetails{Address: address, DeliveryTime: deliveryTime},
	}, nil
}

// ReconstructDetails rebuilds the variant from persisted columns without
// re-validating; historic rows may predate stricter construction rules.
func ReconstructDetails(typ Type, pickup *PickupDetails, delivery *DeliveryDetails) Details {
	return Details{typ: typ, pickup: pickup, delivery: delivery}
}

func (d Details) Type() Type {
	return d.typ
}

func (d Details) Pickup() *PickupDetails {
	return d.pickup
}

func (d Details) Delivery() *DeliveryDetails {
	return d.delivery
}
