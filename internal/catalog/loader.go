// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// LoaderConfig names the CSV file of each domain inside DataDir.
type LoaderConfig struct {
	DataDir      string
	WorkoutsFile string
	RecipesFile  string
	CoursesFile  string
}

// CSVLoader reads one CSV file per domain. It implements Source.
type CSVLoader struct {
	cfg    LoaderConfig
	logger zerolog.Logger
}

var _ Source = (*CSVLoader)(nil)

// NewCSVLoader creates a loader for the configured data directory.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewCSVLoader(cfg LoaderConfig, logger zerolog.Logger) *CSVLoader {
	if cfg.WorkoutsFile == "" {
		cfg.WorkoutsFile = "workouts.csv"
	}
	if cfg.RecipesFile == "" {
		cfg.RecipesFile = "recipes.csv"
	}
	if cfg.CoursesFile == "" {
		cfg.CoursesFile = "courses.csv"
	}
	return &CSVLoader{cfg: cfg, logger: logger.With().Str("component", "catalog_loader").Logger()}
}

// Path returns the file backing a domain.
func (l *CSVLoader) Path(d Domain) string {
	var name string
	switch d {
	case DomainWorkout:
		name = l.cfg.WorkoutsFile
	case DomainRecipe:
		name = l.cfg.RecipesFile
	case DomainCourse:
		name = l.cfg.CoursesFile
	}
	return filepath.Join(l.cfg.DataDir, name)
}

// Paths returns the files of all domains in canonical order.
func (l *CSVLoader) Paths() []string {
	paths := make([]string, 0, len(Domains))
	for _, d := range Domains {
		paths = append(paths, l.Path(d))
	}
	return paths
}

// Load reads every domain file. A missing file yields an empty domain; a
// file that cannot be parsed fails the whole load.
func (l *CSVLoader) Load(ctx context.Context) ([]Item, error) {
	var all []Item
	for _, d := range Domains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := l.Path(d)
		items, err := l.loadFile(path, d)
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Warn().Str("path", path).Str("domain", string(d)).Msg("Catalog file not found, domain will be empty")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		l.logger.Debug().Str("domain", string(d)).Int("items", len(items)).Msg("Catalog file parsed")
		all = append(all, items...)
	}
	return all, nil
}

func (l *CSVLoader) loadFile(path string, d Domain) ([]Item, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			l.logger.Warn().Err(cerr).Str("path", path).Msg("Failed to close catalog file")
		}
	}()
	return ParseCSV(f, d)
}

// columns maps lowercase header names to their index.
type columns map[string]int

func (c columns) get(row []string, name string) (string, bool) {
	idx, ok := c[name]
	if !ok {
		return "", false
	}
	if idx >= len(row) {
		return "", true
	}
	return strings.TrimSpace(row[idx]), true
}

// ParseCSV parses a domain file with header id,title,duration_min,mood_tag,tags
// and optional difficulty,description,image,type. Header names are matched
// case-insensitively and in any order.
func ParseCSV(r io.Reader, d Domain) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(columns, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	var items []Item
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		if isBlank(row) {
			continue
		}
		items = append(items, parseRow(cols, row, d, line))
	}
	return items, nil
}

func parseRow(cols columns, row []string, d Domain, ordinal int) Item {
	id, ok := cols.get(row, "id")
	if !ok || id == "" {
		id = strconv.Itoa(ordinal)
	}

	title, ok := cols.get(row, "title")
	if !ok {
		title = "Unknown title"
	}

	duration := DefaultDuration
	if raw, ok := cols.get(row, "duration_min"); ok {
		duration = parseDuration(raw)
	}

	var tags []string
	if raw, ok := cols.get(row, "tags"); ok {
		tags = SplitTags(raw)
	}

	var moodTags []string
	if raw, ok := cols.get(row, "mood_tag"); ok {
		moodTags = SplitTags(raw)
	}

	it := NewItem(d, id, title, duration, tags, moodTags)
	if raw, ok := cols.get(row, "difficulty"); ok {
		it.Difficulty = ParseDifficulty(raw)
	}
	if raw, ok := cols.get(row, "description"); ok {
		it.Description = raw
	}
	if raw, ok := cols.get(row, "image"); ok && raw != "" {
		it.Image = raw
	}
	if raw, ok := cols.get(row, "type"); ok {
		it.Type = strings.ToLower(raw)
	}
	return it
}

// parseDuration truncates fractional minutes; unparseable, negative or
// non-finite values fall back to DefaultDuration.
func parseDuration(raw string) int {
	if raw == "" {
		return DefaultDuration
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return DefaultDuration
		}
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		return DefaultDuration
	}
	return int(f)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
