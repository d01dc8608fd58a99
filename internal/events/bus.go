// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package events is the in-process event bus connecting the feedback and
// catalog producers with background consumers. It is built on a Watermill
// GoChannel Pub/Sub; payloads are JSON.
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/logging"
)

// Topics.
const (
	TopicFeedbackRecorded = "feedback.recorded"
	TopicCatalogReloaded  = "catalog.reloaded"
)

// CatalogReloaded is the payload of TopicCatalogReloaded.
type CatalogReloaded struct {
	Version    uint64 `json:"version"`
	TotalItems int    `json:"total_items"`
}

// Publisher publishes JSON payloads to a topic.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// Bus wraps a GoChannel Pub/Sub.
type Bus struct {
	pubsub *gochannel.GoChannel
}

var _ Publisher = (*Bus)(nil)

// NewBus creates a bus whose subscribers each get a buffered channel.
// Publishing does not wait for acknowledgements.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			logging.NewWatermillLogger(logger.With().Str("component", "events").Logger()),
		),
	}
}

// PublishJSON marshals payload and publishes it with a fresh message UUID.
func (b *Bus) PublishJSON(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe returns the message channel of a topic. The channel closes when
// ctx is cancelled or the bus is closed. Consumers must Ack every message.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Close shuts down the Pub/Sub and all subscriptions.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Decode unmarshals a message payload into v.
func Decode(msg *message.Message, v any) error {
	if msg == nil {
		return errors.New("events: nil message")
	}
	return json.Unmarshal(msg.Payload, v)
}

// Discard is a Publisher that drops every payload.
type Discard struct{}

func (Discard) PublishJSON(context.Context, string, any) error { return nil }
