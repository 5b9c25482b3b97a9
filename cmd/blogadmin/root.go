// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blogadmin",
	Short: "Admin interface for blog posts and categories",
	Long: `blogadmin serves an admin UI and JSON API for managing blog posts
grouped by category. All data lives in memory and is seeded from fixtures
on startup.`,
	SilenceUsage: true,
	// Running without a subcommand starts the server.
	RunE: runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
