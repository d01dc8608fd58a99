// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/events"
	"github.com/tomtom215/moodplay/internal/feedback"
	"github.com/tomtom215/moodplay/internal/metrics"
)

// TallySource is implemented by *feedback.Recorder.
type TallySource interface {
	Tallies(ctx context.Context) ([]feedback.Tally, error)
}

// AffinityModel is implemented by *affinity.FeedbackModel.
type AffinityModel interface {
	Refresh(tallies []feedback.Tally)
}

// Subscriber is implemented by *events.Bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// AffinityRefreshService rebuilds the collaborative model from the stored
// feedback on start, on every interval and after each feedback.recorded
// event.
type AffinityRefreshService struct {
	source     TallySource
	model      AffinityModel
	subscriber Subscriber
	interval   time.Duration
	logger     zerolog.Logger
	name       string
}

// NewAffinityRefreshService creates the service. A nil subscriber limits
// refreshes to the interval; a non-positive interval becomes 5 minutes.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAffinityRefreshService(source TallySource, model AffinityModel, subscriber Subscriber, interval time.Duration, logger zerolog.Logger) *AffinityRefreshService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &AffinityRefreshService{
		source:     source,
		model:      model,
		subscriber: subscriber,
		interval:   interval,
		logger:     logger.With().Str("service", "affinity-refresh").Logger(),
		name:       "affinity-refresh",
	}
}

// Serve implements suture.Service. A failing refresh keeps the previous
// model.
func (s *AffinityRefreshService) Serve(ctx context.Context) error {
	var feed <-chan *message.Message
	if s.subscriber != nil {
		ch, err := s.subscriber.Subscribe(ctx, events.TopicFeedbackRecorded)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", events.TopicFeedbackRecorded, err)
		}
		feed = ch
	}

	s.refresh(ctx, "startup")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx, "interval")
		case msg, ok := <-feed:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// Bus closed underneath us; let the supervisor resubscribe.
				return fmt.Errorf("%s subscription closed", events.TopicFeedbackRecorded)
			}
			msg.Ack()
			s.drain(feed)
			s.refresh(ctx, "feedback")
		}
	}
}

// drain acks feedback events already queued so a burst costs one refresh.
func (s *AffinityRefreshService) drain(feed <-chan *message.Message) {
	for {
		select {
		case msg, ok := <-feed:
			if !ok {
				return
			}
			msg.Ack()
		default:
			return
		}
	}
}

func (s *AffinityRefreshService) refresh(ctx context.Context, reason string) {
	start := time.Now()
	tallies, err := s.source.Tallies(ctx)
	metrics.RecordAffinityRefresh(err)
	if err != nil {
		s.logger.Warn().Err(err).Str("reason", reason).Msg("Affinity refresh failed, keeping previous model")
		return
	}
	s.model.Refresh(tallies)
	s.logger.Debug().
		Str("reason", reason).
		Int("tallies", len(tallies)).
		Dur("duration", time.Since(start)).
		Msg("Affinity model refreshed")
}

// String names the service in supervisor events.
func (s *AffinityRefreshService) String() string {
	return s.name
}
