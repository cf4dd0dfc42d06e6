package request

import (
	"time"

	"foodshare/internal/domain/donation"
	"foodshare/internal/usecase/commands"
)

type CreateDonationRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	FoodType       string    `json:"food_type" binding:"required"`
	QuantityAmount int32     `json:"quantity_amount" binding:"required"`
	QuantityUnit   string    `json:"quantity_unit" binding:"required"`
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
	PickupDate     time.Time `json:"pickup_date" binding:"required"`

	Street             string  `json:"street"`
	City               string  `json:"city"`
	State              string  `json:"state"`
	ZipCode            string  `json:"zip_code"`
	Lat                float64 `json:"lat"`
	Lng                float64 `json:"lng"`
	PickupInstructions string  `json:"pickup_instructions"`
}

func (r CreateDonationRequest) ToInput() commands.CreateDonationInput {
	return commands.CreateDonationInput{
		Title:          r.Title,
		Description:    r.Description,
		FoodType:       donation.FoodType(r.FoodType),
		QuantityAmount: r.QuantityAmount,
		QuantityUnit:   donation.Unit(r.QuantityUnit),
		ExpirationDate: r.ExpirationDate,
		PickupDate:     r.PickupDate,
		Location: donation.Location{
			Street:             r.Street,
			City:               r.City,
			State:              r.State,
			ZipCode:            r.ZipCode,
			Lat:                r.Lat,
			Lng:                r.Lng,
			PickupInstructions: r.PickupInstructions,
		},
	}
}
