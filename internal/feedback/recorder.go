// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moodplay/internal/events"
	"github.com/tomtom215/moodplay/internal/logging"
	"github.com/tomtom215/moodplay/internal/metrics"
)

// ErrUnavailable wraps breaker rejections so callers can map them to 503.
var ErrUnavailable = errors.New("feedback: store unavailable")

// BreakerConfig configures the circuit breaker around the store.
type BreakerConfig struct {
	Name             string
	FailureThreshold uint32
	Timeout          time.Duration
	MaxRequests      uint32
}

// DefaultBreakerConfig trips after 5 consecutive failures and probes again
// after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "feedback-store",
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

// Recorder validates and persists feedback through a circuit breaker and
// publishes every stored event on TopicFeedbackRecorded.
type Recorder struct {
	store     Store
	breaker   *gobreaker.CircuitBreaker[any]
	publisher events.Publisher
	now       func() time.Time
}

// NewRecorder wires a store and an optional publisher (nil disables events).
func NewRecorder(store Store, cfg BreakerConfig, publisher events.Publisher) *Recorder {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	if cfg.Name == "" {
		cfg.Name = DefaultBreakerConfig().Name
	}
	if publisher == nil {
		publisher = events.Discard{}
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Feedback store circuit breaker state changed")
		},
	}

	return &Recorder{
		store:     store,
		breaker:   gobreaker.NewCircuitBreaker[any](settings),
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Record validates e, fills in ID and CreatedAt, persists it and publishes
// it. The returned event is the stored one.
func (r *Recorder) Record(ctx context.Context, e Event) (Event, error) {
	action, err := ParseAction(string(e.Action))
	if err != nil {
		return Event{}, err
	}
	e.Action = action
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now()
	}

	_, err = r.breaker.Execute(func() (any, error) {
		return nil, r.store.Save(ctx, e)
	})
	if err != nil {
		metrics.RecordFeedbackStoreError()
		return Event{}, r.wrap(err)
	}
	metrics.RecordFeedback(string(e.Action), string(e.Domain))

	if err := r.publisher.PublishJSON(ctx, events.TopicFeedbackRecorded, &e); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("item_id", e.ItemID).Msg("Failed to publish feedback event")
	}

	logging.Ctx(ctx).Info().
		Str("item_id", e.ItemID).
		Str("action", string(e.Action)).
		Str("user_session", e.UserSession).
		Msg("Feedback recorded")
	return e, nil
}

// Tallies reads the aggregated counts through the breaker.
func (r *Recorder) Tallies(ctx context.Context) ([]Tally, error) {
	out, err := r.breaker.Execute(func() (any, error) {
		return r.store.Aggregate(ctx)
	})
	if err != nil {
		metrics.RecordFeedbackStoreError()
		return nil, r.wrap(err)
	}
	tallies, _ := out.([]Tally)
	return tallies, nil
}

// Count returns the number of stored events.
func (r *Recorder) Count(ctx context.Context) (int64, error) {
	out, err := r.breaker.Execute(func() (any, error) {
		return r.store.Count(ctx)
	})
	if err != nil {
		return 0, r.wrap(err)
	}
	n, _ := out.(int64)
	return n, nil
}

// BreakerState reports the breaker state ("closed", "half-open", "open").
func (r *Recorder) BreakerState() string {
	return r.breaker.State().String()
}

func (r *Recorder) wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrUnavailable, err)
	}
	return err
}
