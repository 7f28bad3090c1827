package patientgateway

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errTimeout = errors.New("i/o timeout")

type stubPatientClient struct {
	calls atomic.Int32
	find  func(ctx context.Context, patientID int64) (*models.Patient, error)
}

func (s *stubPatientClient) FindPatientByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	s.calls.Add(1)
	return s.find(ctx, patientID)
}

func found(ctx context.Context, patientID int64) (*models.Patient, error) {
	return &models.Patient{ID: patientID, Name: "Doe", FirstName: "Jane"}, nil
}

func missing(ctx context.Context, patientID int64) (*models.Patient, error) {
	return nil, exceptions.ErrRemotePatientNotFound(patientID)
}

func timingOut(ctx context.Context, patientID int64) (*models.Patient, error) {
	return nil, exceptions.ErrSendHTTPRequest(errTimeout)
}

func testBreakerConfig() config.AppBreaker {
	return config.AppBreaker{
		Name:                "patient-service-test",
		ConsecutiveFailures: 5,
		MinimumRequests:     10,
		FailureRatio:        0.5,
		IntervalInSeconds:   60,
		HalfOpenMaxRequests: 1,
	}
}

func newTestGateway(client *stubPatientClient, breakerConfig config.AppBreaker) (*patientGateway, *gobreaker.CircuitBreaker[*models.Patient]) {
	breaker := NewBreaker(breakerConfig, zap.NewNop())
	gateway := NewPatientGateway(client, breaker, zap.NewNop()).(*patientGateway)
	return gateway, breaker
}

// newFastBreaker uses a sub-second open timeout, which the env config cannot express.
func newFastBreaker(openTimeout time.Duration) *gobreaker.CircuitBreaker[*models.Patient] {
	return gobreaker.NewCircuitBreaker[*models.Patient](gobreaker.Settings{
		Name:         "patient-service-fast",
		MaxRequests:  1,
		Timeout:      openTimeout,
		IsSuccessful: isBreakerSuccess,
		IsExcluded:   isCallerCancellation,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

func TestPatientGateway_Lookup_Classification(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: found}, testBreakerConfig())
		outcome := gateway.Lookup(ctx, 3)
		assert.Equal(t, models.LookupFound, outcome.Status)
		require.NotNil(t, outcome.Patient)
		assert.Equal(t, int64(3), outcome.Patient.ID)
		assert.NoError(t, outcome.Cause)
	})

	t.Run("not found", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: missing}, testBreakerConfig())
		outcome := gateway.Lookup(ctx, 3)
		assert.Equal(t, models.LookupNotFound, outcome.Status)
		assert.Nil(t, outcome.Patient)
	})

	t.Run("transport failure", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: timingOut}, testBreakerConfig())
		outcome := gateway.Lookup(ctx, 3)
		assert.Equal(t, models.LookupUnavailable, outcome.Status)
		assert.ErrorIs(t, outcome.Cause, errTimeout)
	})

	t.Run("nil patient without error", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: func(ctx context.Context, id int64) (*models.Patient, error) {
			return nil, nil
		}}, testBreakerConfig())
		outcome := gateway.Lookup(ctx, 3)
		assert.Equal(t, models.LookupUnavailable, outcome.Status)
	})
}

func TestPatientGateway_NotFoundNeverTripsBreaker(t *testing.T) {
	client := &stubPatientClient{find: missing}
	gateway, breaker := newTestGateway(client, testBreakerConfig())

	for i := 0; i < 20; i++ {
		assert.Equal(t, models.LookupNotFound, gateway.Lookup(context.Background(), 42).Status)
	}

	assert.Equal(t, gobreaker.StateClosed, breaker.State())
	assert.Equal(t, int32(20), client.calls.Load())
	assert.Equal(t, uint32(0), breaker.Counts().TotalFailures)
}

func TestPatientGateway_TimeoutsOpenBreaker(t *testing.T) {
	client := &stubPatientClient{find: timingOut}
	gateway, breaker := newTestGateway(client, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		assert.Equal(t, models.LookupUnavailable, gateway.Lookup(ctx, 42).Status)
	}
	assert.Equal(t, gobreaker.StateClosed, breaker.State())

	assert.Equal(t, models.LookupUnavailable, gateway.Lookup(ctx, 42).Status)
	assert.Equal(t, gobreaker.StateOpen, breaker.State())
	assert.Equal(t, int32(5), client.calls.Load())

	t.Run("open breaker fails fast without calling the client", func(t *testing.T) {
		client.find = found
		outcome := gateway.Lookup(ctx, 42)
		assert.Equal(t, models.LookupUnavailable, outcome.Status)
		assert.ErrorIs(t, outcome.Cause, gobreaker.ErrOpenState)
		assert.Equal(t, int32(5), client.calls.Load())
	})
}

func TestPatientGateway_NotFoundResetsConsecutiveFailures(t *testing.T) {
	client := &stubPatientClient{find: timingOut}
	gateway, breaker := newTestGateway(client, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		gateway.Lookup(ctx, 1)
	}
	client.find = missing
	gateway.Lookup(ctx, 1)
	client.find = timingOut
	gateway.Lookup(ctx, 1)

	assert.Equal(t, gobreaker.StateClosed, breaker.State())
	assert.Equal(t, uint32(1), breaker.Counts().ConsecutiveFailures)
}

func TestPatientGateway_FailureRatioOpensBreaker(t *testing.T) {
	client := &stubPatientClient{}
	gateway, breaker := newTestGateway(client, testBreakerConfig())
	ctx := context.Background()

	// alternate so consecutive failures never reach 5
	for i := 0; i < 10; i++ {
		if i%2 == 1 {
			client.find = timingOut
		} else {
			client.find = found
		}
		gateway.Lookup(ctx, 1)
	}

	assert.Equal(t, gobreaker.StateOpen, breaker.State())
}

func TestPatientGateway_HalfOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("trial success closes", func(t *testing.T) {
		client := &stubPatientClient{find: timingOut}
		breaker := newFastBreaker(50 * time.Millisecond)
		gateway := NewPatientGateway(client, breaker, zap.NewNop())

		for i := 0; i < 5; i++ {
			gateway.Lookup(ctx, 1)
		}
		require.Equal(t, gobreaker.StateOpen, breaker.State())

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, gobreaker.StateHalfOpen, breaker.State())

		client.find = found
		assert.Equal(t, models.LookupFound, gateway.Lookup(ctx, 1).Status)
		assert.Equal(t, gobreaker.StateClosed, breaker.State())
	})

	t.Run("trial not found also closes", func(t *testing.T) {
		client := &stubPatientClient{find: timingOut}
		breaker := newFastBreaker(50 * time.Millisecond)
		gateway := NewPatientGateway(client, breaker, zap.NewNop())

		for i := 0; i < 5; i++ {
			gateway.Lookup(ctx, 1)
		}
		time.Sleep(80 * time.Millisecond)

		client.find = missing
		assert.Equal(t, models.LookupNotFound, gateway.Lookup(ctx, 1).Status)
		assert.Equal(t, gobreaker.StateClosed, breaker.State())
	})

	t.Run("trial transport failure reopens", func(t *testing.T) {
		client := &stubPatientClient{find: timingOut}
		breaker := newFastBreaker(50 * time.Millisecond)
		gateway := NewPatientGateway(client, breaker, zap.NewNop())

		for i := 0; i < 5; i++ {
			gateway.Lookup(ctx, 1)
		}
		time.Sleep(80 * time.Millisecond)

		assert.Equal(t, models.LookupUnavailable, gateway.Lookup(ctx, 1).Status)
		assert.Equal(t, gobreaker.StateOpen, breaker.State())
		assert.Equal(t, int32(6), client.calls.Load())
	})

	t.Run("trial cancelled by the caller leaves the breaker half-open", func(t *testing.T) {
		client := &stubPatientClient{find: timingOut}
		breaker := newFastBreaker(50 * time.Millisecond)
		gateway := NewPatientGateway(client, breaker, zap.NewNop())

		for i := 0; i < 5; i++ {
			gateway.Lookup(ctx, 1)
		}
		time.Sleep(80 * time.Millisecond)
		require.Equal(t, gobreaker.StateHalfOpen, breaker.State())

		client.find = func(ctx context.Context, patientID int64) (*models.Patient, error) {
			<-ctx.Done()
			return nil, exceptions.ErrSendHTTPRequest(ctx.Err())
		}
		trialCtx, cancel := context.WithCancel(ctx)
		time.AfterFunc(10*time.Millisecond, cancel)

		assert.Equal(t, models.LookupUnavailable, gateway.Lookup(trialCtx, 1).Status)
		assert.Equal(t, gobreaker.StateHalfOpen, breaker.State())

		client.find = timingOut
		assert.Equal(t, models.LookupUnavailable, gateway.Lookup(ctx, 1).Status)
		assert.Equal(t, gobreaker.StateOpen, breaker.State())
		assert.Equal(t, int32(7), client.calls.Load())
	})

	t.Run("excess trials are rejected", func(t *testing.T) {
		release := make(chan struct{})
		entered := make(chan struct{})
		client := &stubPatientClient{find: timingOut}
		breaker := newFastBreaker(50 * time.Millisecond)
		gateway := NewPatientGateway(client, breaker, zap.NewNop())

		for i := 0; i < 5; i++ {
			gateway.Lookup(ctx, 1)
		}
		time.Sleep(80 * time.Millisecond)

		client.find = func(ctx context.Context, patientID int64) (*models.Patient, error) {
			close(entered)
			<-release
			return found(ctx, patientID)
		}

		done := make(chan models.LookupOutcome)
		go func() { done <- gateway.Lookup(ctx, 1) }()
		<-entered

		second := gateway.Lookup(ctx, 1)
		assert.Equal(t, models.LookupUnavailable, second.Status)
		assert.ErrorIs(t, second.Cause, gobreaker.ErrTooManyRequests)

		close(release)
		assert.Equal(t, models.LookupFound, (<-done).Status)
	})
}

func TestPatientGateway_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("found is true", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: found}, testBreakerConfig())
		exists, err := gateway.Exists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not found is false without error", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: missing}, testBreakerConfig())
		exists, err := gateway.Exists(ctx, 1)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unavailable is an error", func(t *testing.T) {
		gateway, _ := newTestGateway(&stubPatientClient{find: timingOut}, testBreakerConfig())
		exists, err := gateway.Exists(ctx, 1)
		require.Error(t, err)
		assert.False(t, exists)
		assert.Equal(t, exceptions.KindDependencyUnavailable, exceptions.KindOf(err))
	})
}

func TestPatientGateway_CallerCancellationDoesNotCount(t *testing.T) {
	client := &stubPatientClient{find: func(ctx context.Context, patientID int64) (*models.Patient, error) {
		return nil, exceptions.ErrSendHTTPRequest(ctx.Err())
	}}
	gateway, breaker := newTestGateway(client, testBreakerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 10; i++ {
		assert.Equal(t, models.LookupUnavailable, gateway.Lookup(ctx, 1).Status)
	}
	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}

func TestPatientGateway_ConcurrentCountsAreNotLost(t *testing.T) {
	breakerConfig := testBreakerConfig()
	breakerConfig.ConsecutiveFailures = 10000
	breakerConfig.MinimumRequests = 10000
	client := &stubPatientClient{find: missing}
	gateway, breaker := newTestGateway(client, breakerConfig)

	const workers = 50
	const perWorker = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				gateway.Lookup(context.Background(), id)
			}
		}(int64(i))
	}
	wg.Wait()

	counts := breaker.Counts()
	assert.Equal(t, uint32(workers*perWorker), counts.Requests)
	assert.Equal(t, uint32(workers*perWorker), counts.TotalSuccesses)
	assert.Equal(t, int32(workers*perWorker), client.calls.Load())
}

func TestPatientGateway_ConcurrentFailuresOpenBreaker(t *testing.T) {
	client := &stubPatientClient{find: timingOut}
	gateway, breaker := newTestGateway(client, testBreakerConfig())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, models.LookupUnavailable, gateway.Lookup(context.Background(), 9).Status)
		}()
	}
	wg.Wait()

	assert.Equal(t, gobreaker.StateOpen, breaker.State())
	assert.GreaterOrEqual(t, client.calls.Load(), int32(5))
	assert.Equal(t, uint32(0), breaker.Counts().Requests)
}

func TestPatientGateway_Snapshot(t *testing.T) {
	gateway, _ := newTestGateway(&stubPatientClient{find: timingOut}, testBreakerConfig())
	gateway.Lookup(context.Background(), 1)

	snapshot := gateway.Snapshot()
	assert.Equal(t, "patient-service-test", snapshot.Name)
	assert.Equal(t, "closed", snapshot.State)
	assert.Equal(t, uint32(1), snapshot.ConsecutiveFailures)
}
