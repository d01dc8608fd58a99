// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package feedback

import (
	"errors"
	"testing"

	"github.com/tomtom215/moodplay/internal/catalog"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{"like", ActionLike, false},
		{"LIKE", ActionLike, false},
		{" dislike ", ActionDislike, false},
		{"love", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAction(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAction(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidAction) {
				t.Errorf("error %v does not wrap ErrInvalidAction", err)
			}
		})
	}
}

func TestEventValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		event   Event
		wantErr error
	}{
		{
			name:  "valid",
			event: Event{ItemID: "workout_1", Domain: catalog.DomainWorkout, Action: ActionLike},
		},
		{
			name:    "missing item",
			event:   Event{Domain: catalog.DomainWorkout, Action: ActionLike},
			wantErr: ErrMissingItem,
		},
		{
			name:    "plural domain rejected",
			event:   Event{ItemID: "workout_1", Domain: "workouts", Action: ActionLike},
			wantErr: ErrInvalidDomain,
		},
		{
			name:    "bad action",
			event:   Event{ItemID: "recipe_2", Domain: catalog.DomainRecipe, Action: "meh"},
			wantErr: ErrInvalidAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.event.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	events := []Event{
		{ItemID: "course_1", Action: ActionLike},
		{ItemID: "workout_1", UserSession: "s1", Action: ActionLike},
		{ItemID: "course_1", Action: ActionDislike},
		{ItemID: "workout_1", UserSession: "s1", Action: ActionLike},
		{ItemID: "workout_1", UserSession: "s2", Action: ActionDislike},
	}

	got := Aggregate(events)
	want := []Tally{
		{ItemID: "course_1", Likes: 1, Dislikes: 1},
		{ItemID: "workout_1", UserSession: "s1", Likes: 2},
		{ItemID: "workout_1", UserSession: "s2", Dislikes: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("len(Aggregate) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Aggregate()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := Aggregate(nil); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", got)
	}
}
