//go:build e2e

package donation_test

import (
	"context"
	"sync"
	"testing"

	"foodshare/internal/domain/order"
	"foodshare/internal/domain/user"
	"foodshare/internal/infra/readstore"
	"foodshare/internal/infra/uow"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"
	"foodshare/tests/common/builder"
	"foodshare/tests/common/dbtest"
	"foodshare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// noopPublisher satisfies the fire-and-forget contract without a broker.
type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ commands.Event) {}

type ReserveSuite struct {
	e2e.SharedSuite
	commands commands.OrderCommands
}

func (s *ReserveSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.commands = commands.NewOrderCommands(uow.NewPostgresUoW(s.DB), noopPublisher{}, clock.NewRealClock())
}

func TestReserveSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReserveSuite))
}

func (s *ReserveSuite) remainingQuantity(donationID uuid.UUID) int32 {
	var quantity int32
	err := s.DB.QueryRow(context.Background(),
		"SELECT quantity_amount FROM donations WHERE id = $1", donationID).Scan(&quantity)
	s.Require().NoError(err)
	return quantity
}

func (s *ReserveSuite) orderCount(donationID uuid.UUID) int {
	var count int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM orders WHERE donation_id = $1", donationID).Scan(&count)
	s.Require().NoError(err)
	return count
}

func (s *ReserveSuite) placeOrder(donationID uuid.UUID, quantity int32) (uuid.UUID, error) {
	input := builder.NewOrderBuilder().
		WithDonationID(donationID).
		WithQuantity(quantity).
		BuildPlaceInput()
	return s.commands.PlaceOrder(context.Background(), input, uuid.New())
}

func (s *ReserveSuite) TestConcurrentReserve() {
	s.Run("only one of two overlapping reservations wins", func() {
		donorID := uuid.New()
		donationID := dbtest.CreateTestDonation(s.T(), s.DB, donorID, 5, "available")

		quantities := []int32{3, 4}
		errsByQty := make([]error, len(quantities))

		start := make(chan struct{})
		var wg sync.WaitGroup
		for i, qty := range quantities {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, errsByQty[i] = s.placeOrder(donationID, qty)
			}()
		}
		close(start)
		wg.Wait()

		var winners, losers int
		var wonQty int32
		for i, err := range errsByQty {
			if err == nil {
				winners++
				wonQty = quantities[i]
			} else {
				losers++
				s.True(errs.Is(err, commands.ErrInsufficientStock), "loser got %v", err)
			}
		}

		s.Equal(1, winners)
		s.Equal(1, losers)
		s.Equal(5-wonQty, s.remainingQuantity(donationID))
		s.Equal(1, s.orderCount(donationID))
	})

	s.Run("insufficient stock leaves no order behind", func() {
		donationID := dbtest.CreateTestDonation(s.T(), s.DB, uuid.New(), 2, "available")

		_, err := s.placeOrder(donationID, 5)

		s.True(errs.Is(err, commands.ErrInsufficientStock))
		s.Equal(int32(2), s.remainingQuantity(donationID))
		s.Equal(0, s.orderCount(donationID))
	})
}

func (s *ReserveSuite) TestReserveCancelRetry() {
	s.Run("cancelling frees stock for a blocked retry", func() {
		donationID := dbtest.CreateTestDonation(s.T(), s.DB, uuid.New(), 5, "available")

		requesterID := uuid.New()
		firstInput := builder.NewOrderBuilder().
			WithDonationID(donationID).
			WithQuantity(4).
			BuildPlaceInput()
		firstOrderID, err := s.commands.PlaceOrder(context.Background(), firstInput, requesterID)
		s.Require().NoError(err)
		s.Equal(int32(1), s.remainingQuantity(donationID))

		_, err = s.placeOrder(donationID, 3)
		s.True(errs.Is(err, commands.ErrInsufficientStock))

		err = s.commands.UpdateStatus(context.Background(), firstOrderID, order.StatusCancelled, requesterID, user.RoleRecipient)
		s.Require().NoError(err)
		s.Equal(int32(5), s.remainingQuantity(donationID))

		_, err = s.placeOrder(donationID, 3)
		s.Require().NoError(err)
		s.Equal(int32(2), s.remainingQuantity(donationID))
	})
}

func (s *ReserveSuite) TestListHidesExpired() {
	s.Run("expired donations stay out of the public listing", func() {
		activeID := dbtest.CreateTestDonation(s.T(), s.DB, uuid.New(), 3, "available")
		expiredID := dbtest.CreateTestDonation(s.T(), s.DB, uuid.New(), 3, "expired")

		store := readstore.NewDonationReadStore(s.DB)

		views, err := store.List(context.Background(), queries.DonationFilter{Limit: 10})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(activeID, views[0].ID)

		expiredStatus := "expired"
		views, err = store.List(context.Background(), queries.DonationFilter{Status: &expiredStatus, Limit: 10})
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(expiredID, views[0].ID)
	})
}
