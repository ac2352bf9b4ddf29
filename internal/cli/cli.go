//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for retailgen.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxshowarth/retailgen/internal/config"
	"github.com/maxshowarth/retailgen/internal/logging"
	"github.com/maxshowarth/retailgen/internal/retail"
	"github.com/maxshowarth/retailgen/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "retailgen",
		Short: "Deterministic synthetic retail dataset generator",
		Long: `retailgen generates a synthetic but realistic multi-table retail
dataset: stores, products, customers, promotions, orders, order items,
and daily inventory snapshots.

The same seed, scale, and date window always produce byte-identical
output, so generated datasets are reproducible across runs and machines.
Output can be written as CSV files or loaded directly into PostgreSQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./retailgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scalesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List available scale tiers",
	Long: `List the preset scale tiers and the entity counts each one
generates. Orders is an estimate over the whole window; the realized
count lands somewhat below it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available scale tiers:")
		cmd.Println()
		for _, name := range retail.ScaleNames() {
			s, _ := retail.ScaleByName(name)
			cmd.Println(fmt.Sprintf("  %-8s - %d stores, %d products, %d customers, ~%d orders",
				name, s.Stores, s.Products, s.Customers, s.OrdersEstimate))
		}
	},
}
