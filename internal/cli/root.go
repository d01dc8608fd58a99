// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Package cli implements moodctl, a command line front end that runs the
// recommendation engine directly against a catalog directory.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/config"
	"github.com/tomtom215/moodplay/internal/logging"
	"github.com/tomtom215/moodplay/internal/recommend"
	"github.com/tomtom215/moodplay/internal/recommend/affinity"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var version = "dev"

// SetVersion sets the version printed by "moodctl version".
func SetVersion(v string) {
	version = v
}

// options are the persistent flags plus what PersistentPreRunE builds.
type options struct {
	dataDir  string
	output   string
	logLevel string

	settings *config.RecommendConfig
	store    *catalog.Store
	engine   *recommend.Engine
}

// NewRootCommand builds the moodctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "moodctl",
		Short: "Mood-aware playlists of workouts, recipes and courses",
		Long: `moodctl loads the catalog CSV files and runs the Moodplay
recommendation engine locally, without the HTTP service.

Examples:
  moodctl --data-dir ./data recommend --mood calm --minutes 60 --interest lifestyle --interest learning
  moodctl similar workout_1 --limit 3
  moodctl quick --minutes 30 --domain recipe
  moodctl metadata -o json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return opts.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "data", "directory holding workouts.csv, recipes.csv and courses.csv")
	flags.StringVarP(&opts.output, "output", "o", FormatTable, "output format (table, json)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		newRecommendCommand(opts),
		newSimilarCommand(opts),
		newQuickCommand(opts),
		newMetadataCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs moodctl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (o *options) init(cmd *cobra.Command) error {
	if o.output != FormatTable && o.output != FormatJSON {
		return fmt.Errorf("unknown output format %q (use table or json)", o.output)
	}

	logging.Init(logging.Config{
		Level:  o.logLevel,
		Format: "console",
		Output: cmd.ErrOrStderr(),
	})
	logger := logging.Logger()

	o.settings = &config.Default().Recommend
	loader := catalog.NewCSVLoader(catalog.LoaderConfig{DataDir: o.dataDir}, logger)
	o.store = catalog.NewStore(loader, logger)
	if _, err := o.store.Reload(cmd.Context()); err != nil {
		return fmt.Errorf("load catalog from %s: %w", o.dataDir, err)
	}

	engine, err := recommend.NewEngine(recommend.ConfigFromSettings(o.settings), o.store, affinity.Neutral{}, logger)
	if err != nil {
		return err
	}
	o.engine = engine
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the moodctl version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moodctl %s\n", version)
		},
	}
}
