// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package events

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodplay/internal/logging"
)

func TestBusPublishSubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus(zerolog.New(io.Discard))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := bus.Subscribe(ctx, TopicCatalogReloaded)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	pubCtx := logging.ContextWithCorrelationID(context.Background(), "abcd1234")
	if err := bus.PublishJSON(pubCtx, TopicCatalogReloaded, CatalogReloaded{Version: 3, TotalItems: 42}); err != nil {
		t.Fatalf("PublishJSON: %v", err)
	}

	select {
	case msg := <-msgs:
		var got CatalogReloaded
		if err := Decode(msg, &got); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		msg.Ack()
		if got.Version != 3 || got.TotalItems != 42 {
			t.Errorf("payload = %+v, want version 3 / 42 items", got)
		}
		if id := msg.Metadata.Get("correlation_id"); id != "abcd1234" {
			t.Errorf("correlation_id = %q, want abcd1234", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	bus := NewBus(zerolog.New(io.Discard))
	defer bus.Close()

	if err := bus.PublishJSON(context.Background(), TopicFeedbackRecorded, map[string]string{"id": "x"}); err != nil {
		t.Errorf("PublishJSON without subscribers: %v", err)
	}
}

func TestBusPublishAfterClose(t *testing.T) {
	t.Parallel()

	bus := NewBus(zerolog.New(io.Discard))
	if err := bus.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := bus.PublishJSON(context.Background(), TopicFeedbackRecorded, 1); err == nil {
		t.Error("PublishJSON after Close should fail")
	}
}

func TestDecodeNil(t *testing.T) {
	t.Parallel()

	var v any
	if err := Decode(nil, &v); err == nil {
		t.Error("Decode(nil) should fail")
	}
	if err := (Discard{}).PublishJSON(context.Background(), "t", 1); err != nil {
		t.Errorf("Discard.PublishJSON: %v", err)
	}
}
