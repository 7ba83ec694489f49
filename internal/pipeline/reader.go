package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// readCSV loads the file and splits it into a header row and data rows.
// Non-UTF-8 input is decoded as Latin-1, the most common encoding of
// exported Philippine social media datasets. Field counts are not
// enforced; ragged rows are kept as-is.
func readCSV(path string) (header []string, rows [][]string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	if !utf8.Valid(raw) {
		decoded, decErr := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw)))
		if decErr != nil {
			return nil, nil, fmt.Errorf("decode csv: %w", decErr)
		}
		raw = decoded
	}

	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil, nil
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}
