//go:build unit || e2e

package builder

import (
	"time"

	domdonation "foodshare/internal/domain/donation"
	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type DonationBuilder struct {
	DonorID        uuid.UUID
	Title          string
	Description    string
	FoodType       domdonation.FoodType
	QuantityAmount int32
	QuantityUnit   domdonation.Unit
	ExpirationDate time.Time
	PickupDate     time.Time
	Location       domdonation.Location
	Status         domdonation.Status
	ReservedBy     *uuid.UUID
	ReservedAt     *time.Time
	Now            time.Time
}

func NewDonationBuilder() *DonationBuilder {
	now := time.Now()
	return &DonationBuilder{
		DonorID:        uuid.New(),
		Title:          "Fresh vegetables",
		Description:    "Assorted garden vegetables",
		FoodType:       domdonation.FoodTypeVegetables,
		QuantityAmount: 10,
		QuantityUnit:   domdonation.UnitKg,
		ExpirationDate: now.Add(48 * time.Hour),
		PickupDate:     now.Add(24 * time.Hour),
		Location: domdonation.Location{
			Street:  "12 Market St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Lat:     39.78,
			Lng:     -89.65,
		},
		Status: domdonation.StatusAvailable,
		Now:    now,
	}
}

func (b *DonationBuilder) With(mutate func(*DonationBuilder)) *DonationBuilder {
	mutate(b)
	return b
}

func (b *DonationBuilder) BuildDomain() (*domdonation.Donation, error) {
	quantity, err := domdonation.NewQuantity(b.QuantityAmount, b.QuantityUnit)
	if err != nil {
		return nil, err
	}
	return domdonation.NewDonation(
		b.DonorID,
		b.Title, b.Description,
		b.FoodType,
		quantity,
		b.ExpirationDate, b.PickupDate,
		b.Location,
		b.Now,
	)
}

// BuildReconstructed bypasses creation-time validation, so reserved and
// depleted states can be staged directly.
func (b *DonationBuilder) BuildReconstructed() *domdonation.Donation {
	return domdonation.ReconstructDonation(
		uuid.New(), b.DonorID,
		b.Title, b.Description,
		b.FoodType,
		domdonation.ReconstructQuantity(b.QuantityAmount, b.QuantityUnit),
		b.ExpirationDate, b.PickupDate,
		b.Location,
		b.Status,
		b.ReservedBy, b.ReservedAt,
		nil, nil,
		b.Now, b.Now,
	)
}

func (b *DonationBuilder) BuildCreateInput() commands.CreateDonationInput {
	return commands.CreateDonationInput{
		Title:          b.Title,
		Description:    b.Description,
		FoodType:       b.FoodType,
		QuantityAmount: b.QuantityAmount,
		QuantityUnit:   b.QuantityUnit,
		ExpirationDate: b.ExpirationDate,
		PickupDate:     b.PickupDate,
		Location:       b.Location,
	}
}

func (b *DonationBuilder) BuildCreateRequestDTO() reqdto.CreateDonationRequest {
	return reqdto.CreateDonationRequest{
		Title:          b.Title,
		Description:    b.Description,
		FoodType:       b.FoodType.String(),
		QuantityAmount: b.QuantityAmount,
		QuantityUnit:   b.QuantityUnit.String(),
		ExpirationDate: b.ExpirationDate,
		PickupDate:     b.PickupDate,
		Street:         b.Location.Street,
		City:           b.Location.City,
		State:          b.Location.State,
		ZipCode:        b.Location.ZipCode,
		Lat:            b.Location.Lat,
		Lng:            b.Location.Lng,
	}
}

func (b *DonationBuilder) BuildView() *queries.DonationView {
	return &queries.DonationView{
		ID:             uuid.New(),
		DonorID:        b.DonorID,
		Title:          b.Title,
		Description:    b.Description,
		FoodType:       b.FoodType.String(),
		QuantityAmount: b.QuantityAmount,
		QuantityUnit:   b.QuantityUnit.String(),
		ExpirationDate: b.ExpirationDate,
		PickupDate:     b.PickupDate,
		Status:         b.Status.String(),
		ReservedBy:     b.ReservedBy,
		ReservedAt:     b.ReservedAt,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

func (b *DonationBuilder) WithDonorID(id uuid.UUID) *DonationBuilder {
	b.DonorID = id
	return b
}

func (b *DonationBuilder) WithTitle(title string) *DonationBuilder {
	b.Title = title
	return b
}

func (b *DonationBuilder) WithQuantity(amount int32, unit domdonation.Unit) *DonationBuilder {
	b.QuantityAmount = amount
	b.QuantityUnit = unit
	return b
}

func (b *DonationBuilder) WithStatus(status domdonation.Status) *DonationBuilder {
	b.Status = status
	return b
}

func (b *DonationBuilder) AsReservedBy(userID uuid.UUID) *DonationBuilder {
	at := b.Now
	b.Status = domdonation.StatusReserved
	b.ReservedBy = &userID
	b.ReservedAt = &at
	return b
}

func (b *DonationBuilder) AsExpired() *DonationBuilder {
	b.ExpirationDate = b.Now.Add(-time.Hour)
	return b
}
