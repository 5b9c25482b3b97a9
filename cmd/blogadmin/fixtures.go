// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogadmin/internal/fixtures"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Inspect and validate fixture files",
}

var fixturesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a fixture file",
	Long:  `Parse a YAML fixture file and seed it into a scratch store, reporting the first problem found.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := seededStore(args[0])
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("✗ %s: %v", args[0], err))
			return err
		}

		stats := st.Stats()
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ %s: %d categories, %d posts",
			args[0], stats.Categories, stats.Posts))
		return nil
	},
}

var fixturesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in fixtures as YAML",
	Long:  `Write the built-in demo data in fixture file format, ready to edit and load with FIXTURES_FILE.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := fixtures.Marshal(fixtures.Default())
		if err != nil {
			return fmt.Errorf("marshal fixtures: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	fixturesCmd.AddCommand(fixturesCheckCmd)
	fixturesCmd.AddCommand(fixturesDumpCmd)
	rootCmd.AddCommand(fixturesCmd)
}
