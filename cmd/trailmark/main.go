package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trailmark/trailmark/internal/client"
	"github.com/trailmark/trailmark/internal/ui"
)

var (
	httpURL    string
	jsonOutput bool
	noColor    bool

	analyticsClient client.AnalyticsClient
)

func defaultHTTPURL() string {
	if s := os.Getenv("TRAILMARK_HTTP_URL"); s != "" {
		return s
	}
	if u := activeServerURL(); u != "" {
		return u
	}
	return "http://localhost:8000"
}

var rootCmd = &cobra.Command{
	Use:   "trailmark <command>",
	Short: "CLI client for the trailmark analytics service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		analyticsClient = client.NewHTTPClient(httpURL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if analyticsClient != nil {
			analyticsClient.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpURL, "http-url", defaultHTTPURL(), "HTTP server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "events", Title: "Events:"},
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false

	// Events
	rootCmd.AddCommand(trackCmd)

	// Views
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(pagesCmd)

	// System
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(serverCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
