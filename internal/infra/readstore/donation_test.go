//go:build unit

package readstore

import (
	"testing"

	"foodshare/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestBuildDonationListQuery(t *testing.T) {
	t.Run("unfiltered listing excludes expired donations", func(t *testing.T) {
		sql, args := buildDonationListQuery(queries.DonationFilter{Limit: 10})

		assert.Contains(t, sql, "status <> 'expired'")
		assert.Equal(t, []any{int32(10), int32(0)}, args)
	})

	t.Run("food type filter keeps the expired exclusion", func(t *testing.T) {
		foodType := "vegetables"
		sql, args := buildDonationListQuery(queries.DonationFilter{FoodType: &foodType, Limit: 10})

		assert.Contains(t, sql, "food_type = $1")
		assert.Contains(t, sql, "status <> 'expired'")
		assert.Equal(t, []any{"vegetables", int32(10), int32(0)}, args)
	})

	t.Run("explicit status filter replaces the default exclusion", func(t *testing.T) {
		status := "expired"
		sql, args := buildDonationListQuery(queries.DonationFilter{Status: &status, Limit: 10})

		assert.Contains(t, sql, "status = $1")
		assert.NotContains(t, sql, "status <> 'expired'")
		assert.Equal(t, []any{"expired", int32(10), int32(0)}, args)
	})

	t.Run("limit and offset are bound as trailing parameters", func(t *testing.T) {
		sql, args := buildDonationListQuery(queries.DonationFilter{Limit: 20, Offset: 40})

		assert.Contains(t, sql, "LIMIT $1")
		assert.Contains(t, sql, "OFFSET $2")
		assert.Equal(t, []any{int32(20), int32(40)}, args)
	})
}
