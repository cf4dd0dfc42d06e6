//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foodshare/internal/domain/perishable"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/shared"
	"foodshare/tests/common/builder"
	commandsmock "foodshare/tests/mock/commands"
	sharedmock "foodshare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const fallbackHours = 6.0

type PerishableCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUoW         *sharedmock.MockUnitOfWork
	mockTx          *sharedmock.MockTx
	mockPerishables *sharedmock.MockPerishableRepository
	mockEstimator   *commandsmock.MockExpiryEstimator
	mockPublisher   *commandsmock.MockNotificationPublisher
	clock           *clock.MockClock
	commands        commands.PerishableCommands
}

func (s *PerishableCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockPerishables = sharedmock.NewMockPerishableRepository(s.mockCtrl)
	s.mockEstimator = commandsmock.NewMockExpiryEstimator(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockNotificationPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Now())
	s.commands = commands.NewPerishableCommands(s.mockUoW, s.mockEstimator, s.mockPublisher, s.clock, fallbackHours)

	s.mockTx.EXPECT().Perishables().Return(s.mockPerishables).AnyTimes()
}

func (s *PerishableCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPerishableCommandsSuite(t *testing.T) {
	suite.Run(t, new(PerishableCommandsTestSuite))
}

func (s *PerishableCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func (s *PerishableCommandsTestSuite) TestCreate() {
	s.Run("success: expiry derived from the estimate and broadcast published", func() {
		input := builder.NewPerishableBuilder().BuildCreateInput()
		now := s.clock.Now()

		s.mockEstimator.EXPECT().
			Estimate(gomock.Any(), input.FoodType, input.Temperature, input.Humidity, input.Packaging).
			Return(5.0, nil)

		var created *perishable.Item
		s.expectWithin()
		s.mockPerishables.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *perishable.Item) (uuid.UUID, error) {
				created = item
				return item.ID(), nil
			})
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, ev commands.Event) {
				s.Nil(ev.RecipientID)
				s.Equal(commands.EventKindNewPerishable, ev.Kind)
				s.Equal(commands.EntityKindPerishable, ev.Related.Kind)
			})

		id, err := s.commands.Create(context.Background(), input)
		s.NoError(err)
		s.NotEqual(uuid.Nil, id)
		s.Require().NotNil(created)
		s.Equal(5.0, created.EstimatedHours())
		s.Equal(now.Add(5*time.Hour), created.ExpiresAt())
	})

	s.Run("success: estimator failure falls back to the fixed duration", func() {
		input := builder.NewPerishableBuilder().BuildCreateInput()
		now := s.clock.Now()

		s.mockEstimator.EXPECT().
			Estimate(gomock.Any(), input.FoodType, input.Temperature, input.Humidity, input.Packaging).
			Return(0.0, errs.New("prediction service unreachable"))

		var created *perishable.Item
		s.expectWithin()
		s.mockPerishables.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *perishable.Item) (uuid.UUID, error) {
				created = item
				return item.ID(), nil
			})
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := s.commands.Create(context.Background(), input)
		s.NoError(err)
		s.Require().NotNil(created)
		s.Equal(fallbackHours, created.EstimatedHours())
		s.Equal(now.Add(6*time.Hour), created.ExpiresAt())
	})

	s.Run("success: non-positive estimate also falls back", func() {
		input := builder.NewPerishableBuilder().BuildCreateInput()

		s.mockEstimator.EXPECT().
			Estimate(gomock.Any(), input.FoodType, input.Temperature, input.Humidity, input.Packaging).
			Return(-2.0, nil)

		var created *perishable.Item
		s.expectWithin()
		s.mockPerishables.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *perishable.Item) (uuid.UUID, error) {
				created = item
				return item.ID(), nil
			})
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := s.commands.Create(context.Background(), input)
		s.NoError(err)
		s.Equal(fallbackHours, created.EstimatedHours())
	})

	s.Run("error: validation failure publishes nothing", func() {
		input := builder.NewPerishableBuilder().
			With(func(b *builder.PerishableBuilder) { b.DonorName = "" }).
			BuildCreateInput()

		s.mockEstimator.EXPECT().
			Estimate(gomock.Any(), input.FoodType, input.Temperature, input.Humidity, input.Packaging).
			Return(5.0, nil)

		_, err := s.commands.Create(context.Background(), input)
		s.True(errs.Is(err, commands.ErrPerishableValidation))
	})
}

func (s *PerishableCommandsTestSuite) TestSweepExpired() {
	s.Run("success: cutoff includes the safety threshold", func() {
		now := time.Now()
		removed := []uuid.UUID{uuid.New(), uuid.New()}

		s.expectWithin()
		s.mockPerishables.EXPECT().SweepExpired(gomock.Any(), now.Add(perishable.SweepThreshold)).
			Return(removed, nil)

		ids, err := s.commands.SweepExpired(context.Background(), now)
		s.NoError(err)
		s.Equal(removed, ids)
	})

	s.Run("success: empty sweep", func() {
		now := time.Now()

		s.expectWithin()
		s.mockPerishables.EXPECT().SweepExpired(gomock.Any(), now.Add(perishable.SweepThreshold)).
			Return(nil, nil)

		ids, err := s.commands.SweepExpired(context.Background(), now)
		s.NoError(err)
		s.Empty(ids)
	})
}
