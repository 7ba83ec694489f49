package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

type stubAnalyzer struct {
	calls     int
	panicOnce map[string]bool
}

func (s *stubAnalyzer) AnalyzeRow(_ context.Context, text string) model.Result {
	s.calls++
	if s.panicOnce[text] {
		s.panicOnce[text] = false
		panic("transient failure")
	}
	return model.Result{
		Sentiment:    "Neutral",
		Confidence:   0.8,
		Explanation:  "stub",
		DisasterType: "Earthquake",
		Location:     "UNKNOWN",
		Language:     "English",
	}
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func fastConfig() model.PipelineConfig {
	return model.PipelineConfig{BatchSize: 30, Cooldown: 0, RowDelay: 0, RetryDelay: 0}
}

func runPipeline(t *testing.T, analyzer RowAnalyzer, cfg model.PipelineConfig, csv string) ([]model.Record, string, string) {
	t.Helper()
	var progress, results bytes.Buffer
	p := New(analyzer, NewReporter(&progress, &results), cfg, zerolog.Nop())
	records, err := p.Process(context.Background(), writeCSV(t, csv))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	return records, progress.String(), results.String()
}

func TestProcess_BatchesWithCooldown(t *testing.T) {
	var b strings.Builder
	b.WriteString("text\n")
	for i := 0; i < 45; i++ {
		fmt.Fprintf(&b, "sample disaster report number %d\n", i)
	}

	records, progress, results := runPipeline(t, &stubAnalyzer{}, fastConfig(), b.String())

	if len(records) != 45 {
		t.Fatalf("records = %d, want 45", len(records))
	}
	if n := strings.Count(results, "BATCH_COMPLETE:"); n != 2 {
		t.Errorf("batch events = %d, want 2", n)
	}
	if !strings.Contains(progress, "Starting batch 2 of 2") {
		t.Errorf("missing second batch start in progress:\n%s", progress)
	}
	if n := strings.Count(progress, "pause complete"); n != 1 {
		t.Errorf("cooldown completions = %d, want exactly 1", n)
	}
	if !strings.Contains(progress, "Analysis complete!") {
		t.Error("missing completion event")
	}
}

func TestProcess_SingleBatchSkipsCooldown(t *testing.T) {
	var b strings.Builder
	b.WriteString("text\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "row %d\n", i)
	}

	records, progress, results := runPipeline(t, &stubAnalyzer{}, fastConfig(), b.String())

	if len(records) != 20 {
		t.Fatalf("records = %d, want 20", len(records))
	}
	if n := strings.Count(results, "BATCH_COMPLETE:"); n != 1 {
		t.Errorf("batch events = %d, want 1", n)
	}
	if strings.Contains(progress, "pause") {
		t.Errorf("unexpected cooldown for single-batch file:\n%s", progress)
	}
}

func TestProcess_CSVSentimentEchoes(t *testing.T) {
	analyzer := &stubAnalyzer{}
	records, _, _ := runPipeline(t, analyzer, fastConfig(),
		"text,sentiment,confidence\nmay baha sa marikina,Panic,0.85\n")

	if analyzer.calls != 0 {
		t.Errorf("analyzer called %d times, want 0 for labeled rows", analyzer.calls)
	}
	rec := records[0]
	if rec.Sentiment != "Panic" || rec.Confidence != 0.85 {
		t.Errorf("record = %s/%v, want Panic/0.85 from CSV", rec.Sentiment, rec.Confidence)
	}
	if rec.Explanation != "Sentiment provided in CSV" {
		t.Errorf("explanation = %q", rec.Explanation)
	}
	if rec.Location != "Marikina" {
		t.Errorf("location = %q, want Marikina from text", rec.Location)
	}
}

func TestProcess_EmptyFile(t *testing.T) {
	records, progress, _ := runPipeline(t, &stubAnalyzer{}, fastConfig(), "")

	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
	if !strings.Contains(progress, "No records found in empty CSV") {
		t.Errorf("missing empty-file event:\n%s", progress)
	}
}

func TestProcess_BlankTextPlaceholder(t *testing.T) {
	records, _, _ := runPipeline(t, &stubAnalyzer{}, fastConfig(),
		"text,location\n,Cebu\n")

	rec := records[0]
	if rec.Text != "[No text content]" {
		t.Errorf("text = %q, want placeholder", rec.Text)
	}
	if rec.Location != "Cebu" {
		t.Errorf("location = %q, want CSV value", rec.Location)
	}
}

func TestProcess_SourceCellHoldingSentiment(t *testing.T) {
	records, _, _ := runPipeline(t, &stubAnalyzer{}, fastConfig(),
		"text,source\ngrabe naman ang nangyari,Fear/Anxiety\n")

	rec := records[0]
	if rec.Sentiment != "Fear/Anxiety" {
		t.Errorf("sentiment = %q, want label recovered from source cell", rec.Sentiment)
	}
	if rec.Source != "CSV Import" {
		t.Errorf("source = %q, want reset to CSV Import", rec.Source)
	}
}

func TestProcess_DisasterCellCarryingFullText(t *testing.T) {
	text := "grabe ang lindol sa cebu ngayon"
	records, _, _ := runPipeline(t, &stubAnalyzer{}, fastConfig(),
		fmt.Sprintf("text,disaster\n%s,%s talaga\n", text, text))

	if rec := records[0]; rec.DisasterType != "Earthquake" {
		t.Errorf("disasterType = %q, want analyzer value when cell holds the message", rec.DisasterType)
	}
}

func TestProcess_RetryRecoversFailedRow(t *testing.T) {
	analyzer := &stubAnalyzer{panicOnce: map[string]bool{"boom row": true}}
	records, progress, _ := runPipeline(t, analyzer, fastConfig(),
		"text\nfirst row\nboom row\nthird row\n")

	if len(records) != 3 {
		t.Fatalf("records = %d, want all 3 after retry", len(records))
	}
	if !strings.Contains(progress, "Retrying failed record 1/1") {
		t.Errorf("missing retry event:\n%s", progress)
	}
	// The recovered row lands after the batch results.
	if records[2].Text != "boom row" {
		t.Errorf("last record = %q, want retried row appended", records[2].Text)
	}
}

func TestDetectColumns_ByHeaderName(t *testing.T) {
	header := []string{"message", "Date Posted", "Location", "Platform", "Disaster Type", "Sentiment", "Confidence Score", "Language"}
	cols := detectColumns(header, nil)

	want := columnMap{text: 0, timestamp: 1, location: 2, source: 3, disaster: 4, sentiment: 5, confidence: 6, language: 7}
	if cols != want {
		t.Errorf("cols = %+v, want %+v", cols, want)
	}
}

func TestDetectColumns_TextFallbackByLength(t *testing.T) {
	header := []string{"a", "b"}
	rows := [][]string{
		{"x", "a considerably longer free text cell"},
		{"y", "another long narrative style value"},
	}
	if cols := detectColumns(header, rows); cols.text != 1 {
		t.Errorf("text column = %d, want 1 (longest average)", cols.text)
	}
}

func TestDetectColumns_MessyRemap(t *testing.T) {
	header := make([]string, 12)
	for i := range header {
		header[i] = fmt.Sprintf("c%d", i)
	}
	rows := make([][]string, 5)
	for i := range rows {
		row := make([]string, 12)
		row[2] = "2024-05-01 14:30"
		row[5] = "Manila"
		row[7] = "Rappler"
		row[9] = "mahaba at detalyadong balita tungkol sa sakuna"
		rows[i] = row
	}

	cols := detectColumns(header, rows)
	if cols.timestamp != 2 {
		t.Errorf("timestamp = %d, want 2 by date pattern", cols.timestamp)
	}
	if cols.location != 5 {
		t.Errorf("location = %d, want 5 by city name", cols.location)
	}
	if cols.source != 7 {
		t.Errorf("source = %d, want 7 by outlet name", cols.source)
	}
	if cols.text != 9 {
		t.Errorf("text = %d, want 9 by content length", cols.text)
	}
}

func TestReporter_WireFormat(t *testing.T) {
	var progress, results bytes.Buffer
	r := NewReporter(&progress, &results)

	r.Progress(0, "Loading CSV file")
	r.ProgressTotal(3, "Identifying columns", 10)
	r.BatchComplete(1, 2, nil)

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	if lines[0] != `PROGRESS:{"processed":0,"stage":"Loading CSV file"}::END_PROGRESS` {
		t.Errorf("line 0 = %s", lines[0])
	}
	if lines[1] != `PROGRESS:{"processed":3,"stage":"Identifying columns","total":10}::END_PROGRESS` {
		t.Errorf("line 1 = %s", lines[1])
	}
	if got := strings.TrimSpace(results.String()); got != `BATCH_COMPLETE:{"batchNumber":1,"totalBatches":2,"results":[]}::END_BATCH` {
		t.Errorf("batch line = %s", got)
	}
}

func TestReadCSV_Latin1Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	// "café" with a Latin-1 encoded é.
	if err := os.WriteFile(path, []byte{'t', 'e', 'x', 't', '\n', 'c', 'a', 'f', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	header, rows, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV: %v", err)
	}
	if header[0] != "text" || rows[0][0] != "café" {
		t.Errorf("decoded = %v %v", header, rows)
	}
}
