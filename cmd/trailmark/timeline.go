package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:     "timeline <session-id>",
	Short:   "Show a session's events in chronological order",
	GroupID: "views",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := analyticsClient.SessionTimeline(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("fetching timeline: %w", err)
		}

		if jsonOutput {
			printJSON(events)
		} else {
			printEventTable(events)
		}
		return nil
	},
}
