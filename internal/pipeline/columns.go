package pipeline

import (
	"regexp"
	"strings"
)

// columnMap holds the detected index of each recognized column, -1 when
// the column is absent.
type columnMap struct {
	text       int
	timestamp  int
	location   int
	source     int
	disaster   int
	sentiment  int
	confidence int
	language   int
}

var textColumnNames = []string{
	"text", "content", "message", "post", "tweet", "status",
	"description", "comments",
}

var columnKeywords = map[string][]string{
	"timestamp":  {"time", "date", "timestamp", "created", "posted"},
	"location":   {"location", "place", "area", "region", "city", "province", "address"},
	"source":     {"source", "platform", "media", "channel", "from"},
	"disaster":   {"disaster", "type", "event", "category", "calamity", "hazard"},
	"sentiment":  {"sentiment", "emotion", "feeling", "mood", "attitude"},
	"confidence": {"confidence", "score", "probability", "certainty"},
	"language":   {"language", "lang", "dialect"},
}

var dateValueRe = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{1,2}[-:]\d{2}`)

var knownCities = []string{
	"Manila", "Quezon City", "Cebu", "Davao", "Tacloban", "Legazpi",
	"Baguio", "Iloilo", "Cagayan",
}

var knownOutlets = []string{
	"Manila Times", "Rappler", "Inquirer", "ABS-CBN", "GMA News",
	"Philippine Star", "BusinessWorld",
}

// detectColumns identifies columns first by header name, then falls back
// to content heuristics: the text column defaults to the column with the
// longest average cell, and sparse "messy" exports are remapped by value
// patterns.
func detectColumns(header []string, rows [][]string) columnMap {
	cols := columnMap{
		text: -1, timestamp: -1, location: -1, source: -1,
		disaster: -1, sentiment: -1, confidence: -1, language: -1,
	}

	for i, name := range header {
		lower := strings.ToLower(strings.TrimSpace(name))
		if cols.text == -1 {
			for _, candidate := range textColumnNames {
				if lower == candidate {
					cols.text = i
					break
				}
			}
		}
		assign := func(field *int, keywords []string) {
			if *field != -1 {
				return
			}
			for _, kw := range keywords {
				if strings.Contains(lower, kw) {
					*field = i
					return
				}
			}
		}
		assign(&cols.timestamp, columnKeywords["timestamp"])
		assign(&cols.location, columnKeywords["location"])
		assign(&cols.source, columnKeywords["source"])
		assign(&cols.disaster, columnKeywords["disaster"])
		assign(&cols.sentiment, columnKeywords["sentiment"])
		assign(&cols.confidence, columnKeywords["confidence"])
		assign(&cols.language, columnKeywords["language"])
	}

	if cols.text == -1 {
		cols.text = longestColumn(len(header), rows)
	}

	remapMessyColumns(&cols, header, rows)
	return cols
}

// longestColumn picks the column with the longest average cell content.
func longestColumn(width int, rows [][]string) int {
	best, bestAvg := 0, -1.0
	for i := 0; i < width; i++ {
		total := 0
		for _, row := range rows {
			total += len(cell(row, i))
		}
		avg := 0.0
		if len(rows) > 0 {
			avg = float64(total) / float64(len(rows))
		}
		if avg > bestAvg {
			best, bestAvg = i, avg
		}
	}
	return best
}

// remapMessyColumns handles exports with many mostly-empty columns where
// header names are useless: timestamp, location and source are re-detected
// from the first few values, and the text column from content length.
func remapMessyColumns(cols *columnMap, header []string, rows [][]string) {
	if len(header) <= 10 {
		return
	}

	empty, valuable := 0, 0
	for i := range header {
		if emptyRatio(rows, i) > 0.8 {
			empty++
		} else {
			valuable++
		}
	}
	if empty <= 5 || valuable >= 5 {
		return
	}

	for i := range header {
		values := sampleValues(rows, i, 5)
		if len(values) == 0 {
			continue
		}
		if anyMatch(values, dateValueRe.MatchString) {
			cols.timestamp = i
		}
		if anyContains(values, knownCities) {
			cols.location = i
		}
		if anyContains(values, knownOutlets) {
			cols.source = i
		}
	}

	if cols.text == -1 || emptyRatio(rows, cols.text) > 0.5 {
		cols.text = longestColumn(len(header), rows)
	}
}

func emptyRatio(rows [][]string, col int) float64 {
	if len(rows) == 0 {
		return 1
	}
	empty := 0
	for _, row := range rows {
		if cell(row, col) == "" {
			empty++
		}
	}
	return float64(empty) / float64(len(rows))
}

func sampleValues(rows [][]string, col, limit int) []string {
	var out []string
	for _, row := range rows {
		if v := cell(row, col); v != "" {
			out = append(out, v)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func anyMatch(values []string, match func(string) bool) bool {
	for _, v := range values {
		if match(v) {
			return true
		}
	}
	return false
}

func anyContains(values, needles []string) bool {
	for _, v := range values {
		for _, n := range needles {
			if strings.Contains(v, n) {
				return true
			}
		}
	}
	return false
}

// cell returns the trimmed value at idx, or "" when the row is too short
// or the column is absent.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
