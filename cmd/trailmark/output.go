package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/trailmark/trailmark/internal/model"
	"github.com/trailmark/trailmark/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// formatMillis renders an epoch-milliseconds timestamp for table output.
func formatMillis(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05")
}

func printSessionTable(sessions []*model.SessionSummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tEVENTS\tFIRST SEEN\tLAST SEEN")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			ui.RenderAccent(s.SessionID),
			s.EventCount,
			ui.RenderMuted(formatMillis(s.FirstSeen)),
			ui.RenderMuted(formatMillis(s.LastSeen)),
		)
	}
	w.Flush()
	fmt.Printf("\n%d sessions\n", len(sessions))
}

func printEventTable(events []*model.Event) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPAGE\tTIME\tCLICK")
	for _, e := range events {
		click := ""
		if e.ClickX != nil && e.ClickY != nil {
			click = fmt.Sprintf("%.0f,%.0f", *e.ClickX, *e.ClickY)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.EventType,
			ui.RenderAccent(e.PageURL),
			ui.RenderMuted(formatMillis(e.Timestamp)),
			click,
		)
	}
	w.Flush()
	fmt.Printf("\n%d events\n", len(events))
}

func printHeatmapTable(points []*model.HeatmapPoint) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tY\tTIME")
	for _, p := range points {
		x, y := "", ""
		if p.ClickX != nil {
			x = fmt.Sprintf("%.0f", *p.ClickX)
		}
		if p.ClickY != nil {
			y = fmt.Sprintf("%.0f", *p.ClickY)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", x, y, ui.RenderMuted(formatMillis(p.Timestamp)))
	}
	w.Flush()
	fmt.Printf("\n%d click points\n", len(points))
}

func printPageList(pages []string) {
	for _, p := range pages {
		fmt.Println(ui.RenderAccent(p))
	}
	fmt.Printf("\n%d pages\n", len(pages))
}
