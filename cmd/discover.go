package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rotisserie/eris"
)

var discoverURL string

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover keyword-matched links on a single homepage",
	RunE: func(cmd *cobra.Command, args []string) error {
		if discoverURL == "" {
			return eris.New("--url is required")
		}

		links, err := newDiscoverer().Discover(cmd.Context(), discoverURL)
		if err != nil {
			return eris.Wrap(err, "discover")
		}

		zap.L().Info("links discovered",
			zap.String("url", discoverURL),
			zap.Int("count", len(links)),
		)
		for _, link := range links {
			fmt.Println(link)
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverURL, "url", "", "homepage URL (required)")
	_ = discoverCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(discoverCmd)
}
