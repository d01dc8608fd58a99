// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodplay/internal/recommend"
)

const testDataDir = "../../data"

// run executes moodctl against the sample catalog. Every command
// reconfigures the global logger, so tests in this file are not parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--data-dir", testDataDir, "--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommendCommand_JSON(t *testing.T) {
	out, err := run(t, "recommend", "--mood", "calm", "--minutes", "60",
		"--interest", "lifestyle", "--interest", "learning", "--limit", "6", "-o", "json")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	var p recommend.Playlist
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(p.Playlist) == 0 || len(p.Playlist) > 6 {
		t.Errorf("len(playlist) = %d, want 1..6", len(p.Playlist))
	}
	if p.TotalDuration > 60 {
		t.Errorf("total_duration = %d, want <= 60", p.TotalDuration)
	}
	if p.Mood != "calm" {
		t.Errorf("mood = %q, want calm", p.Mood)
	}
}

func TestRecommendCommand_Table(t *testing.T) {
	out, err := run(t, "recommend", "--mood", "energized", "--minutes", "30", "--interest", "lifestyle,learning")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "total: ") {
		t.Errorf("output missing total line:\n%s", out)
	}
}

func TestRecommendCommand_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown mood", []string{"--mood", "sleepy", "--minutes", "30"}, "mood must be one of"},
		{"unsupported minutes", []string{"--mood", "calm", "--minutes", "45"}, "minutes must be one of"},
		{"unknown interest", []string{"--mood", "calm", "--minutes", "30", "--interest", "music"}, "interest[0] must be one of"},
		{"limit too large", []string{"--mood", "calm", "--minutes", "30", "--limit", "21"}, "limit must be between 1 and 20"},
		{"missing minutes", []string{"--mood", "calm"}, "minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"recommend"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSimilarCommand(t *testing.T) {
	out, err := run(t, "similar", "workout_1", "--limit", "3", "-o", "json")
	if err != nil {
		t.Fatalf("similar: %v", err)
	}
	var res recommend.SimilarResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if res.ItemID != "workout_1" {
		t.Errorf("item_id = %q, want workout_1", res.ItemID)
	}
	if res.Count > 3 {
		t.Errorf("count = %d, want <= 3", res.Count)
	}
	for _, e := range res.SimilarItems {
		if e.Domain != "workout" || e.ItemID == "workout_1" {
			t.Errorf("unexpected similar item %s", e.ItemID)
		}
	}

	if _, err := run(t, "similar"); err == nil {
		t.Error("similar without an item ID should fail")
	}
}

func TestQuickCommand(t *testing.T) {
	out, err := run(t, "quick", "--minutes", "30", "--domain", "recipe", "-o", "json")
	if err != nil {
		t.Fatalf("quick: %v", err)
	}
	var res recommend.QuickResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if res.Count > 3 {
		t.Errorf("count = %d, want <= 3", res.Count)
	}
	for _, e := range res.Suggestions {
		if e.Domain != "recipe" || e.DurationMin > 30 {
			t.Errorf("unexpected suggestion %s (%d min)", e.ItemID, e.DurationMin)
		}
	}

	if _, err := run(t, "quick", "--minutes", "30", "--domain", "podcast"); err == nil {
		t.Error("unknown domain should fail")
	}
}

func TestMetadataCommand(t *testing.T) {
	out, err := run(t, "metadata")
	if err != nil {
		t.Fatalf("metadata: %v", err)
	}
	if !strings.Contains(out, "total: 42 items") {
		t.Errorf("output missing item total:\n%s", out)
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "metadata", "-o", "yaml")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("error = %v, want unknown output format", err)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--data-dir", "/does/not/exist"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out.String(), "moodctl ") {
		t.Errorf("output = %q, want moodctl prefix", out.String())
	}
}
