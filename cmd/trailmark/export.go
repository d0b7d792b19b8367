package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/trailmark/trailmark/internal/config"
	"github.com/trailmark/trailmark/internal/store/postgres"
	trailsync "github.com/trailmark/trailmark/internal/sync"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Write a JSONL snapshot of the event log",
	GroupID: "system",
	Args:    cobra.NoArgs,
	// Reads the database directly; no client connection needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		var w io.Writer = os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := trailsync.ExportJSONL(context.Background(), store, w); err != nil {
			return fmt.Errorf("exporting events: %w", err)
		}

		if output != "" {
			fmt.Fprintf(os.Stderr, "export written to %s\n", output)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}
