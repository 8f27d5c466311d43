package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"planets-explorer/internal/galaxy"
	"planets-explorer/internal/planet"
	"planets-explorer/internal/shared/config"
	"planets-explorer/internal/shared/logger"
	"planets-explorer/internal/system"
)

type rootOptions struct {
	tuningPath string
	logLevel   string
	pretty     bool
}

func (o *rootOptions) tuning() (system.Tuning, error) {
	if o.tuningPath == "" {
		return system.DefaultTuning(), nil
	}
	return system.LoadTuning(o.tuningPath)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "procgen",
		Short:         "Generate planets, star systems and galaxies from seeds",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.tuningPath, "tuning", "", "YAML file overriding galaxy layout constants")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")

	newLogger := func() *slog.Logger {
		return logger.New(stderr, config.LoggingConfig{Level: opts.logLevel})
	}

	rootCmd.AddCommand(planetCmd(opts, newLogger))
	rootCmd.AddCommand(systemCmd(opts))
	rootCmd.AddCommand(galaxyCmd(opts, newLogger))

	return rootCmd
}

func planetCmd(opts *rootOptions, newLogger func() *slog.Logger) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Generate one planet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := planet.NewService(newLogger())
			if !cmd.Flags().Changed("seed") {
				seed = svc.RandomSeed()
			}
			return writeJSON(cmd.OutOrStdout(), svc.Generate(seed), opts.pretty)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "planet seed (random when omitted)")
	return cmd
}

func systemCmd(opts *rootOptions) *cobra.Command {
	var (
		seed  int64
		index int
	)

	cmd := &cobra.Command{
		Use:   "system",
		Short: "Generate one star system with its planets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if index < 0 {
				return fmt.Errorf("index must not be negative")
			}
			tuning, err := opts.tuning()
			if err != nil {
				return err
			}
			rec := system.Generate(seed, index, tuning, system.Options{IncludePlanets: true})
			return writeJSON(cmd.OutOrStdout(), rec, opts.pretty)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "galaxy seed")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "system index within the galaxy")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func galaxyCmd(opts *rootOptions, newLogger func() *slog.Logger) *cobra.Command {
	var (
		seed    int64
		count   int
		workers int
		planets bool
	)

	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Generate a galaxy of star systems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("count must not be negative")
			}
			tuning, err := opts.tuning()
			if err != nil {
				return err
			}

			svc := galaxy.NewService(nil, tuning, workers, newLogger())
			if !cmd.Flags().Changed("seed") {
				seed = svc.RandomSeed()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			rec, err := svc.Generate(ctx, seed, count, system.Options{IncludePlanets: planets})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rec, opts.pretty)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "galaxy seed (random when omitted)")
	cmd.Flags().IntVarP(&count, "count", "n", galaxy.DefaultSystemCount, "number of systems")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "generation workers (0 uses GOMAXPROCS)")
	cmd.Flags().BoolVar(&planets, "planets", false, "include planet lists")
	return cmd
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
