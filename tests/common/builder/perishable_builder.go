//go:build unit || e2e

package builder

import (
	"time"

	domperishable "foodshare/internal/domain/perishable"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type PerishableBuilder struct {
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
	Now            time.Time
}

func NewPerishableBuilder() *PerishableBuilder {
	return &PerishableBuilder{
		DonorName:      "Corner Bakery",
		DonorContact:   "corner@example.com",
		Title:          "Fresh bread",
		Description:    "Two dozen loaves from this morning",
		Location:       "12 Market St, Springfield",
		Quantity:       24,
		FoodType:       "bakery",
		Temperature:    22,
		Humidity:       55,
		Packaging:      "paper",
		EstimatedHours: 5,
		Now:            time.Now(),
	}
}

func (b *PerishableBuilder) With(mutate func(*PerishableBuilder)) *PerishableBuilder {
	mutate(b)
	return b
}

func (b *PerishableBuilder) BuildDomain() (*domperishable.Item, error) {
	return domperishable.NewItem(
		b.DonorName, b.DonorContact,
		b.Title, b.Description, b.Location,
		b.Quantity,
		domperishable.Attributes{
			FoodType:    b.FoodType,
			Temperature: b.Temperature,
			Humidity:    b.Humidity,
			Packaging:   b.Packaging,
		},
		b.EstimatedHours,
		b.Now,
	)
}

func (b *PerishableBuilder) BuildCreateInput() commands.CreatePerishableInput {
	return commands.CreatePerishableInput{
		DonorName:    b.DonorName,
		DonorContact: b.DonorContact,
		Title:        b.Title,
		Description:  b.Description,
		Location:     b.Location,
		Quantity:     b.Quantity,
		FoodType:     b.FoodType,
		Temperature:  b.Temperature,
		Humidity:     b.Humidity,
		Packaging:    b.Packaging,
	}
}

func (b *PerishableBuilder) BuildView() *queries.PerishableView {
	return &queries.PerishableView{
		ID:             uuid.New(),
		DonorName:      b.DonorName,
		DonorContact:   b.DonorContact,
		Title:          b.Title,
		Description:    b.Description,
		Location:       b.Location,
		Quantity:       b.Quantity,
		FoodType:       b.FoodType,
		Temperature:    b.Temperature,
		Humidity:       b.Humidity,
		Packaging:      b.Packaging,
		EstimatedHours: b.EstimatedHours,
		CreatedAt:      b.Now,
		ExpiresAt:      b.Now.Add(time.Duration(b.EstimatedHours * float64(time.Hour))),
	}
}

func (b *PerishableBuilder) WithEstimatedHours(hours float64) *PerishableBuilder {
	b.EstimatedHours = hours
	return b
}

func (b *PerishableBuilder) WithNow(now time.Time) *PerishableBuilder {
	b.Now = now
	return b
}
