// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

// Command moodctl runs the Moodplay recommendation engine from the command
// line against a local catalog directory.
package main

import (
	"os"

	"github.com/tomtom215/moodplay/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
