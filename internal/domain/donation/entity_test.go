//go:build unit

package donation_test

import (
	"testing"
	"time"

	"foodshare/internal/domain/donation"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DonationBuilder)
	errIs  error
}

func TestDonation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDonationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, donation.StatusAvailable, actual.Status())
		assert.Equal(t, "Fresh vegetables", actual.Title())
		assert.Equal(t, int32(10), actual.Quantity().Amount())
		assert.Equal(t, donation.UnitKg, actual.Quantity().Unit())
		assert.Nil(t, actual.ReservedBy())
		assert.Nil(t, actual.PickedUpBy())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.DonationBuilder) { b.Title = "" },
				errIs:  donation.ErrEmptyTitle,
			},
			{
				name:   "whitespace title",
				mutate: func(b *builder.DonationBuilder) { b.Title = "   " },
				errIs:  donation.ErrEmptyTitle,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.DonationBuilder) { b.Description = "" },
				errIs:  donation.ErrEmptyDescription,
			},
			{
				name:   "unknown food type",
				mutate: func(b *builder.DonationBuilder) { b.FoodType = "sushi" },
				errIs:  donation.ErrInvalidFoodType,
			},
			{
				name: "expiration in the past",
				mutate: func(b *builder.DonationBuilder) {
					b.ExpirationDate = b.Now.Add(-time.Hour)
				},
				errIs: donation.ErrPastExpiration,
			},
			{
				name: "expiration exactly now",
				mutate: func(b *builder.DonationBuilder) {
					b.ExpirationDate = b.Now
				},
				errIs: donation.ErrPastExpiration,
			},
		})
	})

	t.Run("quantity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero quantity",
				mutate: func(b *builder.DonationBuilder) { b.QuantityAmount = 0 },
				errIs:  donation.ErrZeroQuantity,
			},
			{
				name:   "negative quantity",
				mutate: func(b *builder.DonationBuilder) { b.QuantityAmount = -5 },
				errIs:  donation.ErrNegativeQuantity,
			},
			{
				name:   "minimum quantity",
				mutate: func(b *builder.DonationBuilder) { b.QuantityAmount = 1 },
			},
			{
				name:   "invalid unit",
				mutate: func(b *builder.DonationBuilder) { b.QuantityUnit = "buckets" },
				errIs:  donation.ErrInvalidUnit,
			},
		})
	})
}

func TestQuantityCanSatisfy(t *testing.T) {
	q := donation.ReconstructQuantity(5, donation.UnitKg)

	assert.True(t, q.CanSatisfy(1))
	assert.True(t, q.CanSatisfy(5))
	assert.False(t, q.CanSatisfy(6))
	assert.False(t, q.CanSatisfy(0))
	assert.False(t, q.CanSatisfy(-1))

	depleted := donation.ReconstructQuantity(0, donation.UnitKg)
	assert.True(t, depleted.IsDepleted())
	assert.False(t, depleted.CanSatisfy(1))
}

func TestDonationValidateReservation(t *testing.T) {
	requester := uuid.New()

	t.Run("available donation is reservable", func(t *testing.T) {
		d := builder.NewDonationBuilder().BuildReconstructed()
		require.NoError(t, d.ValidateReservation(requester, time.Now()))
	})

	t.Run("donor cannot reserve own donation", func(t *testing.T) {
		donor := uuid.New()
		d := builder.NewDonationBuilder().WithDonorID(donor).BuildReconstructed()
		require.ErrorIs(t, d.ValidateReservation(donor, time.Now()), donation.ErrOwnDonation)
	})

	t.Run("expired donation is not reservable", func(t *testing.T) {
		d := builder.NewDonationBuilder().AsExpired().BuildReconstructed()
		require.ErrorIs(t, d.ValidateReservation(requester, time.Now()), donation.ErrNotAvailable)
	})

	t.Run("already reserved donation is not reservable", func(t *testing.T) {
		d := builder.NewDonationBuilder().AsReservedBy(uuid.New()).BuildReconstructed()
		require.ErrorIs(t, d.ValidateReservation(requester, time.Now()), donation.ErrNotAvailable)
	})

	t.Run("cancelled donation is not reservable", func(t *testing.T) {
		d := builder.NewDonationBuilder().WithStatus(donation.StatusCancelled).BuildReconstructed()
		require.ErrorIs(t, d.ValidateReservation(requester, time.Now()), donation.ErrNotAvailable)
	})
}

func TestDonationValidatePickup(t *testing.T) {
	holder := uuid.New()

	t.Run("reserving user may confirm pickup", func(t *testing.T) {
		d := builder.NewDonationBuilder().AsReservedBy(holder).BuildReconstructed()
		require.NoError(t, d.ValidatePickup(holder))
	})

	t.Run("unreserved donation rejects pickup", func(t *testing.T) {
		d := builder.NewDonationBuilder().BuildReconstructed()
		require.ErrorIs(t, d.ValidatePickup(holder), donation.ErrNotReserved)
	})

	t.Run("different user cannot confirm pickup", func(t *testing.T) {
		d := builder.NewDonationBuilder().AsReservedBy(uuid.New()).BuildReconstructed()
		require.ErrorIs(t, d.ValidatePickup(holder), donation.ErrNotReservedByUser)
	})
}

func TestStatusIsOrderable(t *testing.T) {
	assert.True(t, donation.StatusAvailable.IsOrderable())
	assert.True(t, donation.StatusReserved.IsOrderable())
	assert.False(t, donation.StatusExpired.IsOrderable())
	assert.False(t, donation.StatusCancelled.IsOrderable())
	assert.False(t, donation.StatusPickedUp.IsOrderable())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewDonationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
