package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var heatmapCmd = &cobra.Command{
	Use:     "heatmap <page-url>",
	Short:   "Show click coordinates recorded for a page",
	GroupID: "views",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := analyticsClient.Heatmap(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("fetching heatmap: %w", err)
		}

		if jsonOutput {
			printJSON(points)
		} else {
			printHeatmapTable(points)
		}
		return nil
	},
}
