package extract

import (
	"encoding/csv"
	"strings"
)

// CheckCSVShape reports whether details parse as the requested shape: two
// CSV rows with the same number of columns, one per question. It never
// rejects or rewrites the details; callers only log when it returns false.
func CheckCSVShape(details string) bool {
	r := csv.NewReader(strings.NewReader(details))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return false
	}
	if len(rows) != 2 {
		return false
	}
	if len(rows[0]) != len(rows[1]) {
		return false
	}
	return len(rows[0]) == len(questions)
}
