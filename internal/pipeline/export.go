package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sitefacts/internal/model"
)

// resultColumns defines the ordered output CSV columns.
var resultColumns = []string{"URL", "Extracted Details"}

// WriteCSV writes the results as a CSV file at outputPath, creating or
// truncating it. Exactly one row per result, in input order, failures
// included.
func WriteCSV(results []model.SiteResult, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	if err := writeCSVTo(results, f); err != nil {
		return err
	}
	return eris.Wrap(f.Close(), "export: close file")
}

func writeCSVTo(results []model.SiteResult, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resultColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, r := range results {
		if err := cw.Write(r.Record()); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush")
}

// WriteJSON writes the full run summary as indented JSON.
func WriteJSON(summary *model.RunSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return eris.Wrap(err, "export: encode json")
	}
	return nil
}
