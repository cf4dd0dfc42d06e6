package donation

import "errors"

var (
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrZeroQuantity     = errors.New("quantity must be positive")
	ErrInvalidUnit      = errors.New("invalid quantity unit")
)

// Quantity is the donation's remaining stock. The amount is only ever mutated
// through ledger reserve/release operations and never goes below zero.
type Quantity struct {
	amount int32
	unit   Unit
}

func NewQuantity(amount int32, unit Unit) (Quantity, error) {
	if amount <= 0 {
		if amount < 0 {
			return Quantity{}, ErrNegativeQuantity
		}
		return Quantity{}, ErrZeroQuantity
	}
	if !unit.IsValid() {
		return Quantity{}, ErrInvalidUnit
	}
	return Quantity{amount: amount, unit: unit}, nil
}

// ReconstructQuantity accepts zero amounts: a fully reserved donation has no
// remaining stock but is still a valid record.
func ReconstructQuantity(amount int32, unit Unit) Quantity {
	return Quantity{amount: amount, unit: unit}
}

func (q Quantity) Amount() int32 {
	return q.amount
}

func (q Quantity) Unit() Unit {
	return q.unit
}

func (q Quantity) IsDepleted() bool {
	return q.amount == 0
}

func (q Quantity) CanSatisfy(amount int32) bool {
	return amount > 0 && q.amount >= amount
}

type Location struct {
	Street             string
	City               string
	State              string
	ZipCode            string
	Lat                float64
	Lng                float64
	PickupInstructions string
}
