package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:     "pages",
	Short:   "List distinct pages that have recorded events",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := analyticsClient.ListPages(context.Background())
		if err != nil {
			return fmt.Errorf("listing pages: %w", err)
		}

		if jsonOutput {
			printJSON(pages)
		} else {
			printPageList(pages)
		}
		return nil
	},
}
