//go:build unit

package perishable_test

import (
	"testing"
	"time"

	"foodshare/internal/domain/perishable"
	"foodshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Now()
		actual, err := builder.NewPerishableBuilder().WithNow(now).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Corner Bakery", actual.DonorName())
		assert.Equal(t, 5.0, actual.EstimatedHours())
		assert.Equal(t, now.Add(5*time.Hour), actual.ExpiresAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.PerishableBuilder)
			errIs  error
		}{
			{
				name:   "empty donor name",
				mutate: func(b *builder.PerishableBuilder) { b.DonorName = "  " },
				errIs:  perishable.ErrEmptyDonorName,
			},
			{
				name:   "empty title",
				mutate: func(b *builder.PerishableBuilder) { b.Title = "" },
				errIs:  perishable.ErrEmptyTitle,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.PerishableBuilder) { b.Description = "" },
				errIs:  perishable.ErrEmptyDescription,
			},
			{
				name:   "empty location",
				mutate: func(b *builder.PerishableBuilder) { b.Location = "" },
				errIs:  perishable.ErrEmptyLocation,
			},
			{
				name:   "empty packaging",
				mutate: func(b *builder.PerishableBuilder) { b.Packaging = "" },
				errIs:  perishable.ErrEmptyPackaging,
			},
			{
				name:   "zero quantity",
				mutate: func(b *builder.PerishableBuilder) { b.Quantity = 0 },
				errIs:  perishable.ErrInvalidQuantity,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.PerishableBuilder) { b.EstimatedHours = 0 },
				errIs:  perishable.ErrInvalidDuration,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.PerishableBuilder) { b.EstimatedHours = -1 },
				errIs:  perishable.ErrInvalidDuration,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewPerishableBuilder().With(c.mutate).BuildDomain()
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		minutes int64
		want    perishable.Classification
	}{
		{0, perishable.ClassExpired},
		{10, perishable.ClassExpired},
		{11, perishable.ClassCritical},
		{30, perishable.ClassCritical},
		{31, perishable.ClassWarning},
		{60, perishable.ClassWarning},
		{61, perishable.ClassSafe},
		{300, perishable.ClassSafe},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, perishable.Classify(c.minutes), "minutes=%d", c.minutes)
	}
}

func TestItemRemainingMinutes(t *testing.T) {
	now := time.Now()
	item, err := builder.NewPerishableBuilder().WithNow(now).WithEstimatedHours(5).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, int64(300), item.RemainingMinutes(now))

	// Partial minutes round up.
	assert.Equal(t, int64(301), item.RemainingMinutes(now.Add(-30*time.Second)))
	assert.Equal(t, int64(299), item.RemainingMinutes(now.Add(90*time.Second)))

	// Never negative once expired.
	assert.Equal(t, int64(0), item.RemainingMinutes(now.Add(5*time.Hour)))
	assert.Equal(t, int64(0), item.RemainingMinutes(now.Add(6*time.Hour)))
}

func TestItemClassificationOverTime(t *testing.T) {
	now := time.Now()
	item, err := builder.NewPerishableBuilder().WithNow(now).WithEstimatedHours(5).BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, perishable.ClassSafe, item.Classification(now))
	assert.Equal(t, perishable.ClassWarning, item.Classification(now.Add(4*time.Hour+15*time.Minute)))
	assert.Equal(t, perishable.ClassCritical, item.Classification(now.Add(4*time.Hour+35*time.Minute)))
	assert.Equal(t, perishable.ClassExpired, item.Classification(now.Add(4*time.Hour+52*time.Minute)))
}

func TestItemShouldBeRemoved(t *testing.T) {
	now := time.Now()
	item, err := builder.NewPerishableBuilder().WithNow(now).WithEstimatedHours(1).BuildDomain()
	require.NoError(t, err)

	// Eligible once within the sweep threshold of expiry, not before.
	assert.False(t, item.ShouldBeRemoved(now))
	assert.False(t, item.ShouldBeRemoved(now.Add(49*time.Minute)))
	assert.True(t, item.ShouldBeRemoved(now.Add(50*time.Minute)))
	assert.True(t, item.ShouldBeRemoved(now.Add(time.Hour)))
	assert.True(t, item.ShouldBeRemoved(now.Add(2*time.Hour)))
}
