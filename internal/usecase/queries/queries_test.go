//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"foodshare/internal/domain/user"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/usecase/queries"
	"foodshare/tests/common/builder"
	queriesmock "foodshare/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDonationQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockDonationReadStore(ctrl)
	q := queries.NewDonationQueries(store)

	cases := []struct {
		name       string
		limit      int32
		offset     int32
		wantLimit  int32
		wantOffset int32
	}{
		{name: "defaults applied", limit: 0, offset: 0, wantLimit: 10, wantOffset: 0},
		{name: "negative offset clamped", limit: 20, offset: -5, wantLimit: 20, wantOffset: 0},
		{name: "oversized limit reset", limit: 500, offset: 30, wantLimit: 10, wantOffset: 30},
		{name: "in-range passthrough", limit: 100, offset: 10, wantLimit: 100, wantOffset: 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store.EXPECT().List(gomock.Any(), queries.DonationFilter{Limit: c.wantLimit, Offset: c.wantOffset}).
				Return(nil, nil)

			_, err := q.List(context.Background(), queries.DonationFilter{Limit: c.limit, Offset: c.offset})
			require.NoError(t, err)
		})
	}
}

func TestDonationQueriesGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockDonationReadStore(ctrl)
	q := queries.NewDonationQueries(store)

	t.Run("maps repository not-found to the domain error", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("donation not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), id)
		require.ErrorIs(t, err, queries.ErrDonationNotFound)
	})
}

func TestOrderQueriesGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockOrderReadStore(ctrl)
	q := queries.NewOrderQueries(store)

	view := builder.NewOrderBuilder().BuildView()

	t.Run("requester reads own order", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID, view.RequesterID, user.RoleRecipient)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("other users are rejected", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), view.ID, uuid.New(), user.RoleRecipient)
		require.ErrorIs(t, err, queries.ErrNotAuthorized)
	})

	t.Run("admin reads any order", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := q.GetByID(context.Background(), view.ID, uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("unknown order", func(t *testing.T) {
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := q.GetByID(context.Background(), id, uuid.New(), user.RoleAdmin)
		require.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestPerishableQueriesAnnotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	store := queriesmock.NewMockPerishableReadStore(ctrl)
	q := queries.NewPerishableQueries(store, clock.NewMockClock(now))

	t.Run("remaining minutes and classification derived at read time", func(t *testing.T) {
		// Expires five hours out, read with 25 minutes left.
		view := builder.NewPerishableBuilder().
			WithNow(now.Add(25*time.Minute - 5*time.Hour)).
			BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25), got.RemainingMinutes)
		assert.Equal(t, "critical", got.Classification)
	})

	t.Run("list annotates every item", func(t *testing.T) {
		fresh := builder.NewPerishableBuilder().WithNow(now).BuildView()
		stale := builder.NewPerishableBuilder().
			WithNow(now.Add(-5 * time.Hour)).
			BuildView()
		store.EXPECT().ListAll(gomock.Any()).Return([]*queries.PerishableView{fresh, stale}, nil)

		got, err := q.ListActive(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "safe", got[0].Classification)
		assert.Equal(t, int64(300), got[0].RemainingMinutes)
		assert.Equal(t, "expired", got[1].Classification)
		assert.Equal(t, int64(0), got[1].RemainingMinutes)
	})
}
