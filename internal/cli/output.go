// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeEntries(w io.Writer, entries []recommend.PlaylistEntry) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Item", "Title", "Domain", "Minutes", "Score")
	for i, e := range entries {
		if err := table.Append([]string{
			strconv.Itoa(i + 1),
			e.ItemID,
			e.Title,
			string(e.Domain),
			strconv.Itoa(e.DurationMin),
			strconv.FormatFloat(e.Score, 'f', 3, 64),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func writePlaylist(w io.Writer, p *recommend.Playlist) error {
	if len(p.Playlist) == 0 {
		_, err := fmt.Fprintf(w, "No items fit %d minutes for mood %s\n", p.AvailableMinutes, p.Mood)
		return err
	}
	if err := writeEntries(w, p.Playlist); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total: %d of %d minutes, mood %s\n", p.TotalDuration, p.AvailableMinutes, p.Mood)
	return err
}

func writeMetadata(w io.Writer, md catalog.Metadata) error {
	domains := make([]string, 0, len(md.Domains))
	for d := range md.Domains {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	table := tablewriter.NewWriter(w)
	table.Header("Domain", "Items")
	for _, d := range domains {
		if err := table.Append([]string{d, strconv.Itoa(md.Domains[d])}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "total: %d items, %d..%d minutes\nmoods: %s\n",
		md.TotalItems, md.DurationRange.Min, md.DurationRange.Max, strings.Join(md.Moods, ", "))
	return err
}
