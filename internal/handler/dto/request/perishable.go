package request

import (
	"foodshare/internal/usecase/commands"
)

type CreatePerishableRequest struct {
	DonorName    string  `json:"donor_name" binding:"required"`
	DonorContact string  `json:"donor_contact"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Quantity     int32   `json:"quantity" binding:"required"`
	FoodType     string  `json:"food_type" binding:"required"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Packaging    string  `json:"packaging" binding:"required"`
}

func (r CreatePerishableRequest) ToInput() commands.CreatePerishableInput {
	return commands.CreatePerishableInput{
		DonorName:    r.DonorName,
		DonorContact: r.DonorContact,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Quantity:     r.Quantity,
		FoodType:     r.FoodType,
		Temperature:  r.Temperature,
		Humidity:     r.Humidity,
		Packaging:    r.Packaging,
	}
}
