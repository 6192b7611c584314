package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sitefacts/internal/model"
)

var scrapeURL string

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape one page and print its cleaned text",
	RunE: func(cmd *cobra.Command, args []string) error {
		page := newPageScraper().Scrape(cmd.Context(), scrapeURL)

		switch page.Status {
		case model.PageStatusFailed:
			return eris.Errorf("scrape failed: %s", page.FailReason)
		case model.PageStatusEmpty:
			zap.L().Warn("page fetched but carried no visible text",
				zap.String("url", scrapeURL),
			)
			return nil
		}

		fmt.Println(page.Text)
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeURL, "url", "", "page URL (required)")
	_ = scrapeCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(scrapeCmd)
}
