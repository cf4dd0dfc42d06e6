//go:build unit

package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodshare/internal/pkg/clock"
	"foodshare/internal/worker"
	commandsmock "foodshare/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweeperRunsImmediatelyOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommands := commandsmock.NewMockPerishableCommands(ctrl)
	now := time.Now()

	swept := make(chan struct{}, 1)
	mockCommands.EXPECT().SweepExpired(gomock.Any(), now).
		DoAndReturn(func(context.Context, time.Time) ([]uuid.UUID, error) {
			swept <- struct{}{}
			return []uuid.UUID{uuid.New()}, nil
		})

	s := worker.NewSweeper(mockCommands, clock.NewMockClock(now), time.Hour)
	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a sweep immediately after start")
	}
}

func TestSweeperRunsOnEachTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommands := commandsmock.NewMockPerishableCommands(ctrl)

	var mu sync.Mutex
	runs := 0
	done := make(chan struct{})
	mockCommands.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]uuid.UUID, error) {
			mu.Lock()
			runs++
			if runs == 3 {
				close(done)
			}
			mu.Unlock()
			return nil, nil
		}).MinTimes(3)

	s := worker.NewSweeper(mockCommands, clock.NewRealClock(), 10*time.Millisecond)
	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected repeated sweeps from the ticker")
	}
}

func TestSweeperSkipsOverlappingRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommands := commandsmock.NewMockPerishableCommands(ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	// The first sweep blocks across several ticks; each of those ticks must be
	// skipped, so at most one more sweep runs after release.
	mockCommands.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]uuid.UUID, error) {
			entered <- struct{}{}
			<-release
			return nil, nil
		})
	mockCommands.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	s := worker.NewSweeper(mockCommands, clock.NewRealClock(), 10*time.Millisecond)
	s.Start(context.Background())

	<-entered
	// Several tick intervals elapse while the first sweep is still holding the
	// guard.
	time.Sleep(50 * time.Millisecond)
	close(release)

	s.Stop()
}

func TestSweeperStopWaitsForLoopExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommands := commandsmock.NewMockPerishableCommands(ctrl)
	mockCommands.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	s := worker.NewSweeper(mockCommands, clock.NewRealClock(), 10*time.Millisecond)
	s.Start(context.Background())

	time.Sleep(30 * time.Millisecond)
	s.Stop()

	// Second Stop is a no-op, not a deadlock.
	require.NotPanics(t, func() { s.Stop() })
}

func TestSweeperContinuesAfterSweepError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommands := commandsmock.NewMockPerishableCommands(ctrl)

	done := make(chan struct{})
	var once sync.Once
	first := mockCommands.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)
	mockCommands.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) ([]uuid.UUID, error) {
			once.Do(func() { close(done) })
			return nil, nil
		}).After(first).AnyTimes()

	s := worker.NewSweeper(mockCommands, clock.NewRealClock(), 10*time.Millisecond)
	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the loop to keep sweeping after an error")
	}
}
