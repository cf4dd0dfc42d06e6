//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foodshare/internal/domain/donation"
	"foodshare/internal/domain/user"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/shared"
	"foodshare/tests/common/builder"
	sharedmock "foodshare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonationCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUoW       *sharedmock.MockUnitOfWork
	mockTx        *sharedmock.MockTx
	mockDonations *sharedmock.MockDonationRepository
	mockOrders    *sharedmock.MockOrderRepository
	clock         *clock.MockClock
	commands      commands.DonationCommands
}

func (s *DonationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockDonations = sharedmock.NewMockDonationRepository(s.mockCtrl)
	s.mockOrders = sharedmock.NewMockOrderRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Now())
	s.commands = commands.NewDonationCommands(s.mockUoW, s.clock)

	s.mockTx.EXPECT().Donations().Return(s.mockDonations).AnyTimes()
	s.mockTx.EXPECT().Orders().Return(s.mockOrders).AnyTimes()
}

func (s *DonationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDonationCommandsSuite(t *testing.T) {
	suite.Run(t, new(DonationCommandsTestSuite))
}

func (s *DonationCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func (s *DonationCommandsTestSuite) TestCreate() {
	donorID := uuid.New()

	s.Run("success", func() {
		input := builder.NewDonationBuilder().BuildCreateInput()

		s.expectWithin()
		s.mockDonations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		id, err := s.commands.Create(context.Background(), input, donorID)
		s.NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("error: invalid quantity never reaches the database", func() {
		input := builder.NewDonationBuilder().WithQuantity(0, donation.UnitKg).BuildCreateInput()

		_, err := s.commands.Create(context.Background(), input, donorID)
		s.True(errs.Is(err, commands.ErrDonationValidation))
	})

	s.Run("error: expiration in the past", func() {
		b := builder.NewDonationBuilder()
		b.ExpirationDate = b.Now.Add(-time.Hour)

		_, err := s.commands.Create(context.Background(), b.BuildCreateInput(), donorID)
		s.True(errs.Is(err, commands.ErrDonationValidation))
	})
}

func (s *DonationCommandsTestSuite) TestReserve() {
	requesterID := uuid.New()

	s.Run("success: takes remaining stock and opens a pickup order", func() {
		entity := builder.NewDonationBuilder().BuildReconstructed()
		now := s.clock.Now()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockDonations.EXPECT().Reserve(gomock.Any(), entity.ID(), entity.Quantity().Amount()).Return(nil)
		s.mockDonations.EXPECT().MarkReserved(gomock.Any(), entity.ID(), requesterID, now).Return(nil)
		s.mockOrders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		orderID, err := s.commands.Reserve(context.Background(), entity.ID(), requesterID)
		s.NoError(err)
		s.NotEqual(uuid.Nil, orderID)
	})

	s.Run("error: donor cannot reserve own donation", func() {
		entity := builder.NewDonationBuilder().WithDonorID(requesterID).BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.Reserve(context.Background(), entity.ID(), requesterID)
		s.True(errs.Is(err, commands.ErrOwnDonation))
	})

	s.Run("error: already reserved donation", func() {
		entity := builder.NewDonationBuilder().AsReservedBy(uuid.New()).BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.Reserve(context.Background(), entity.ID(), requesterID)
		s.True(errs.Is(err, commands.ErrDonationNotAvailable))
	})

	s.Run("error: depleted donation", func() {
		entity := builder.NewDonationBuilder().WithQuantity(0, donation.UnitKg).BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.commands.Reserve(context.Background(), entity.ID(), requesterID)
		s.True(errs.Is(err, commands.ErrDonationNotAvailable))
	})

	s.Run("error: concurrent reservation loses the conditional decrement", func() {
		entity := builder.NewDonationBuilder().BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockDonations.EXPECT().Reserve(gomock.Any(), entity.ID(), entity.Quantity().Amount()).
			Return(infra.WrapRepoErr("insufficient quantity", nil, infra.KindConflict))

		_, err := s.commands.Reserve(context.Background(), entity.ID(), requesterID)
		s.True(errs.Is(err, commands.ErrDonationNotAvailable))
	})

	s.Run("error: unknown donation", func() {
		donationID := uuid.New()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), donationID).
			Return(nil, infra.WrapRepoErr("donation not found", nil, infra.KindNotFound))

		_, err := s.commands.Reserve(context.Background(), donationID, requesterID)
		s.True(errs.Is(err, commands.ErrDonationNotFound))
	})
}

func (s *DonationCommandsTestSuite) TestConfirmPickup() {
	userID := uuid.New()

	s.Run("success: reserving user confirms pickup", func() {
		entity := builder.NewDonationBuilder().AsReservedBy(userID).BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockDonations.EXPECT().MarkPickedUp(gomock.Any(), entity.ID(), userID, s.clock.Now()).Return(nil)

		err := s.commands.ConfirmPickup(context.Background(), entity.ID(), userID)
		s.NoError(err)
	})

	s.Run("error: donation not reserved", func() {
		entity := builder.NewDonationBuilder().BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.commands.ConfirmPickup(context.Background(), entity.ID(), userID)
		s.True(errs.Is(err, commands.ErrDonationNotReserved))
	})

	s.Run("error: reserved by someone else", func() {
		entity := builder.NewDonationBuilder().AsReservedBy(uuid.New()).BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.commands.ConfirmPickup(context.Background(), entity.ID(), userID)
		s.True(errs.Is(err, commands.ErrNotAuthorized))
	})
}

func (s *DonationCommandsTestSuite) TestDelete() {
	donorID := uuid.New()

	s.Run("success: owner deletes", func() {
		entity := builder.NewDonationBuilder().WithDonorID(donorID).BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockDonations.EXPECT().Delete(gomock.Any(), entity.ID()).Return(nil)

		err := s.commands.Delete(context.Background(), entity.ID(), donorID, user.RoleDonor)
		s.NoError(err)
	})

	s.Run("success: admin deletes someone else's donation", func() {
		entity := builder.NewDonationBuilder().BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockDonations.EXPECT().Delete(gomock.Any(), entity.ID()).Return(nil)

		err := s.commands.Delete(context.Background(), entity.ID(), donorID, user.RoleAdmin)
		s.NoError(err)
	})

	s.Run("error: non-owner cannot delete", func() {
		entity := builder.NewDonationBuilder().BuildReconstructed()

		s.expectWithin()
		s.mockDonations.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		err := s.commands.Delete(context.Background(), entity.ID(), donorID, user.RoleRecipient)
		s.True(errs.Is(err, commands.ErrNotAuthorized))
	})
}
