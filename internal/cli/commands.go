// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package cli

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/recommend"
	"github.com/tomtom215/moodplay/internal/recommend/mood"
	"github.com/tomtom215/moodplay/internal/validation"
)

func newRecommendCommand(opts *options) *cobra.Command {
	var (
		moodName  string
		minutes   int
		interests []string
		limit     int
		session   string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Build a playlist for a mood and a time budget",
		Example: `  moodctl recommend --mood calm --minutes 60 --interest lifestyle --interest learning
  moodctl recommend --mood energized --minutes 30 --limit 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := opts.settings
			verr := validation.OneOf("mood", moodName, rc.MoodOptions).
				Merge(validation.OneOf("minutes", minutes, rc.TimeOptions)).
				Merge(validation.EachOneOf("interest", interests, rc.InterestOptions))
			if limit != 0 {
				verr = verr.Merge(validation.Between("limit", limit, 1, rc.MaxLimit))
			}
			if verr != nil {
				return verr
			}

			req := recommend.Request{
				Mood:             mood.Mood(moodName),
				AvailableMinutes: minutes,
				Limit:            limit,
				UserSession:      session,
			}
			for _, s := range interests {
				req.Interests = append(req.Interests, recommend.Interest(s))
			}

			playlist, err := opts.engine.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.output == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), playlist)
			}
			return writePlaylist(cmd.OutOrStdout(), playlist)
		},
	}
	cmd.Flags().StringVar(&moodName, "mood", "", "energized, calm, stressed, happy or tired")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "available minutes (5, 10, 30, 60, 120)")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "lifestyle and/or learning; repeat or comma separate")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum playlist length (default 6)")
	cmd.Flags().StringVar(&session, "session", "", "user session for collaborative scores")
	_ = cmd.MarkFlagRequired("mood")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newSimilarCommand(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "similar ITEM_ID",
		Short:   "List items of the same domain with overlapping tags",
		Example: "  moodctl similar workout_1 --limit 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verr := validation.Between("limit", limit, 1, opts.settings.MaxLimit); verr != nil {
				return verr
			}
			result, err := opts.engine.Similar(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if opts.output == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeEntries(cmd.OutOrStdout(), result.SimilarItems)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of similar items (1-20)")
	return cmd
}

func newQuickCommand(opts *options) *cobra.Command {
	var (
		minutes    int
		domainName string
	)
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Suggest the longest items that fit the available minutes",
		Example: `  moodctl quick --minutes 30
  moodctl quick --minutes 10 --domain recipe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verr := validation.OneOf("minutes", minutes, opts.settings.TimeOptions); verr != nil {
				return verr
			}
			var domain *catalog.Domain
			if domainName != "" {
				d, ok := catalog.ParseDomain(domainName)
				if !ok {
					return validation.OneOf("domain", domainName, []string{"workout", "recipe", "course"})
				}
				domain = &d
			}

			result, err := opts.engine.Quick(cmd.Context(), minutes, domain)
			if err != nil {
				return err
			}
			if opts.output == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeEntries(cmd.OutOrStdout(), result.Suggestions)
		},
	}
	cmd.Flags().IntVar(&minutes, "minutes", 0, "available minutes (5, 10, 30, 60, 120)")
	cmd.Flags().StringVar(&domainName, "domain", "", "workout, recipe or course (default all)")
	_ = cmd.MarkFlagRequired("minutes")
	return cmd
}

func newMetadataCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Summarize the loaded catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			md := opts.store.Snapshot().Metadata()
			if opts.output == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), md)
			}
			return writeMetadata(cmd.OutOrStdout(), md)
		},
	}
}
