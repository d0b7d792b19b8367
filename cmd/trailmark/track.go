package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trailmark/trailmark/internal/client"
)

var trackCmd = &cobra.Command{
	Use:     "track <session-id> <event-type> <page-url>",
	Short:   "Submit a behavioral event",
	GroupID: "events",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		timestamp, _ := cmd.Flags().GetInt64("timestamp")
		if timestamp == 0 {
			timestamp = time.Now().UnixMilli()
		}

		req := &client.TrackEventRequest{
			SessionID: args[0],
			EventType: args[1],
			PageURL:   args[2],
			Timestamp: timestamp,
		}

		if cmd.Flags().Changed("click-x") {
			x, _ := cmd.Flags().GetFloat64("click-x")
			req.ClickX = &x
		}
		if cmd.Flags().Changed("click-y") {
			y, _ := cmd.Flags().GetFloat64("click-y")
			req.ClickY = &y
		}

		event, err := analyticsClient.TrackEvent(context.Background(), req)
		if err != nil {
			return fmt.Errorf("tracking event: %w", err)
		}

		if jsonOutput {
			printJSON(event)
		} else {
			fmt.Printf("tracked event %d (%s on %s)\n", event.ID, event.EventType, event.PageURL)
		}
		return nil
	},
}

func init() {
	trackCmd.Flags().Int64("timestamp", 0, "event timestamp in epoch milliseconds (default: now)")
	trackCmd.Flags().Float64("click-x", 0, "click X coordinate")
	trackCmd.Flags().Float64("click-y", 0, "click Y coordinate")
}
