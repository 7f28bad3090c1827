package patientgateway

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const (
	defaultConsecutiveFailures = 5
	defaultMinimumRequests     = 10
	defaultFailureRatio        = 0.5
	defaultHalfOpenMaxRequests = 1
)

// NewBreaker builds the breaker guarding one downstream dependency for one
// calling service. It is created once at startup and handed to the gateway.
func NewBreaker(breakerConfig config.AppBreaker, log *zap.Logger) *gobreaker.CircuitBreaker[*models.Patient] {
	consecutiveFailures := breakerConfig.ConsecutiveFailures
	if consecutiveFailures == 0 {
		consecutiveFailures = defaultConsecutiveFailures
	}
	minimumRequests := breakerConfig.MinimumRequests
	if minimumRequests == 0 {
		minimumRequests = defaultMinimumRequests
	}
	failureRatio := breakerConfig.FailureRatio
	if failureRatio <= 0 {
		failureRatio = defaultFailureRatio
	}
	halfOpenMaxRequests := breakerConfig.HalfOpenMaxRequests
	if halfOpenMaxRequests == 0 {
		halfOpenMaxRequests = defaultHalfOpenMaxRequests
	}

	return gobreaker.NewCircuitBreaker[*models.Patient](gobreaker.Settings{
		Name:        breakerConfig.Name,
		MaxRequests: halfOpenMaxRequests,
		Interval:    time.Duration(breakerConfig.IntervalInSeconds) * time.Second,
		Timeout:     time.Duration(breakerConfig.OpenTimeoutInSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= consecutiveFailures {
				return true
			}
			if counts.Requests < minimumRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= failureRatio
		},
		IsSuccessful: isBreakerSuccess,
		IsExcluded:   isCallerCancellation,
		OnStateChange: func(name string, from, to gobreaker.State) {
			fields := []zap.Field{
				zap.String(constvars.LoggingBreakerNameKey, name),
				zap.String(constvars.LoggingBreakerFromKey, from.String()),
				zap.String(constvars.LoggingBreakerToKey, to.String()),
			}
			if to == gobreaker.StateOpen {
				log.Warn("patient breaker opened", fields...)
				return
			}
			log.Info("patient breaker state changed", fields...)
		},
	})
}

// isBreakerSuccess decides which outcomes count against the dependency. A
// missing patient is a healthy answer.
func isBreakerSuccess(err error) bool {
	return err == nil || errors.Is(err, exceptions.ErrRemoteEntityNotFound)
}

// isCallerCancellation keeps requests abandoned by their own caller out of the
// counts. Such a call says nothing about the peer, so a cancelled half-open
// trial neither closes nor reopens the breaker.
func isCallerCancellation(err error) bool {
	return errors.Is(err, context.Canceled)
}
