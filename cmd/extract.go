package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/sitefacts/internal/extract"
	"github.com/sells-group/sitefacts/pkg/anthropic"
)

var (
	extractFile  string
	extractModel string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the six-question extraction over prepared text",
	Long:  "Reads combined site text from --file (or stdin) and prints the model's raw CSV-shaped answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic.key is required (set SITEFACTS_ANTHROPIC_KEY)")
		}

		var (
			data []byte
			err  error
		)
		if extractFile != "" {
			data, err = os.ReadFile(extractFile)
			if err != nil {
				return eris.Wrap(err, "read input file")
			}
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return eris.Wrap(err, "read stdin")
			}
		}

		picker := extract.RandomPicker(cfg.Anthropic.Models, randomSeed())
		if extractModel != "" {
			picker = extract.FixedPicker(extractModel)
		}

		client := anthropic.NewClient(cfg.Anthropic.Key)
		ex := extract.New(client, picker, int64(cfg.Anthropic.MaxTokens))

		result, err := ex.Extract(cmd.Context(), string(data))
		if err != nil {
			return err
		}

		fmt.Println(result.Details)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractFile, "file", "", "read site text from this file instead of stdin")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "pin a single model instead of random choice")
	rootCmd.AddCommand(extractCmd)
}
