// Package pipeline runs CSV datasets through the analyzer in paced
// batches, emitting framed progress and batch-completion events for the
// host application to stream to clients.
package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/draiimon/PanicSense-Final/internal/extract"
	"github.com/draiimon/PanicSense-Final/internal/model"
)

// RowAnalyzer classifies one CSV row worth of text.
type RowAnalyzer interface {
	AnalyzeRow(ctx context.Context, text string) model.Result
}

// Pipeline is the CSV batch processor. Stages: load, column detection,
// batches with cooldown, a retry pass over failed rows, completion.
type Pipeline struct {
	analyzer RowAnalyzer
	reporter *Reporter
	cfg      model.PipelineConfig
	log      zerolog.Logger
	limiter  *rate.Limiter
}

// New builds a pipeline. RowDelay <= 0 disables pacing.
func New(analyzer RowAnalyzer, reporter *Reporter, cfg model.PipelineConfig, log zerolog.Logger) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 30
	}
	return &Pipeline{
		analyzer: analyzer,
		reporter: reporter,
		cfg:      cfg,
		log:      log.With().Str("component", "pipeline").Logger(),
		limiter:  rate.NewLimiter(rate.Every(cfg.RowDelay), 1),
	}
}

type failedRow struct {
	index int
	row   []string
}

// Process analyzes every row of the CSV at path and returns the records.
// Row failures are retried once after all batches; rows that fail twice
// are dropped with a warning.
func (p *Pipeline) Process(ctx context.Context, path string) ([]model.Record, error) {
	p.reporter.Progress(0, "Loading CSV file")

	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 && len(rows) == 0 {
		p.reporter.ProgressTotal(100, "No records found in empty CSV", 0)
		return nil, nil
	}

	total := len(rows)
	p.reporter.ProgressTotal(0, "CSV file loaded", total)
	if total == 0 {
		p.reporter.ProgressTotal(100, "No records found in CSV", 0)
		return nil, nil
	}

	p.reporter.ProgressTotal(3, "Identifying columns", total)
	cols := detectColumns(header, rows)
	p.reporter.ProgressTotal(5, "Identified data columns", total)

	var (
		records []model.Record
		failed  []failedRow
	)
	totalBatches := (total + p.cfg.BatchSize - 1) / p.cfg.BatchSize

	for start := 0; start < total; start += p.cfg.BatchSize {
		end := start + p.cfg.BatchSize
		if end > total {
			end = total
		}
		batchNum := start/p.cfg.BatchSize + 1

		p.reporter.ProgressTotal(start,
			fmt.Sprintf("Starting batch %d of %d - processing records %d to %d",
				batchNum, totalBatches, start+1, end),
			total)

		var batchRecords []model.Record
		for i := start; i < end; i++ {
			recordNum := i + 1
			p.reporter.ProgressTotal(recordNum,
				fmt.Sprintf("Processing record %d/%d", recordNum, total), total)

			if err := p.limiter.Wait(ctx); err != nil {
				return records, fmt.Errorf("pipeline interrupted: %w", err)
			}

			rec, rowErr := p.safeRow(ctx, cols, rows[i])
			if rowErr != nil {
				p.log.Error().Err(rowErr).Int("row", i).Msg("row failed, queued for retry")
				failed = append(failed, failedRow{index: i, row: rows[i]})
				continue
			}
			batchRecords = append(batchRecords, rec)

			p.reporter.ProgressTotal(recordNum,
				fmt.Sprintf("Completed record %d/%d", recordNum, total), total)
		}

		records = append(records, batchRecords...)
		p.reporter.BatchComplete(batchNum, totalBatches, batchRecords)

		if end < total {
			if err := p.cooldown(ctx, batchNum, totalBatches, end, total); err != nil {
				return records, err
			}
		}
	}

	if len(failed) > 0 {
		records = append(records, p.retryFailed(ctx, cols, failed, total)...)
	}

	p.reporter.ProgressTotal(100, "Analysis complete!", total)
	p.logStats(records)
	return records, nil
}

// cooldown pauses between batches, emitting a one-second countdown. Files
// that fit in a single batch never reach here.
func (p *Pipeline) cooldown(ctx context.Context, batchNum, totalBatches, processed, total int) error {
	seconds := int(p.cfg.Cooldown / time.Second)
	p.log.Info().Int("batch", batchNum).Msg("cooldown started")
	for remaining := seconds; remaining > 0; remaining-- {
		p.reporter.ProgressTotal(processed,
			fmt.Sprintf("%d-second pause between batches: %d seconds remaining. Completed batch %d of %d.",
				seconds, remaining, batchNum, totalBatches),
			total)
		select {
		case <-ctx.Done():
			return fmt.Errorf("pipeline interrupted: %w", ctx.Err())
		case <-time.After(time.Second):
		}
	}
	p.reporter.ProgressTotal(processed,
		fmt.Sprintf("%d-second pause complete. Starting next batch of %d records.",
			seconds, p.cfg.BatchSize),
		total)
	return nil
}

// retryFailed runs a second pass over rows that failed in their batch.
func (p *Pipeline) retryFailed(ctx context.Context, cols columnMap, failed []failedRow, total int) []model.Record {
	p.log.Info().Int("count", len(failed)).Msg("retrying failed records")

	var out []model.Record
	for i, f := range failed {
		p.reporter.ProgressTotal(total,
			fmt.Sprintf("Retrying failed record %d/%d", i+1, len(failed)), total)

		if p.cfg.RetryDelay > 0 {
			time.Sleep(p.cfg.RetryDelay)
		}

		rec, err := p.safeRow(ctx, cols, f.row)
		if err != nil {
			p.log.Warn().Err(err).Int("row", f.index).Msg("record dropped after retry")
			continue
		}
		out = append(out, rec)
	}
	return out
}

// safeRow isolates one row so a malformed cell cannot abort the whole
// file; a panic becomes an error and the row is retried later.
func (p *Pipeline) safeRow(ctx context.Context, cols columnMap, row []string) (rec model.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("row processing: %v", r)
		}
	}()
	return p.processRow(ctx, cols, row), nil
}

func (p *Pipeline) processRow(ctx context.Context, cols columnMap, row []string) model.Record {
	text := cell(row, cols.text)
	if text == "" {
		text = "[No text content]"
	}

	timestamp := cell(row, cols.timestamp)
	if timestamp == "" {
		timestamp = time.Now().Format(time.RFC3339)
	}

	source := cell(row, cols.source)
	if source == "" {
		source = "CSV Import"
	}

	// Some datasets put the label where the platform belongs.
	csvSentiment := ""
	if model.ValidSentiment(source) {
		csvSentiment = source
		source = "CSV Import"
	}
	if source == "CSV Import" {
		if outlet := extract.NewsSource(text); outlet != "Unknown Social Media" {
			source = outlet
		}
	}

	csvLocation := cleanCell(cell(row, cols.location))
	csvDisaster := cleanCell(cell(row, cols.disaster))
	csvLanguage := cleanCell(cell(row, cols.language))

	if csvLanguage != "" {
		switch strings.ToLower(csvLanguage) {
		case "tagalog", "tl", "fil", "filipino":
			csvLanguage = model.LanguageFilipino
		default:
			csvLanguage = model.LanguageEnglish
		}
	}

	var result model.Result
	if s := cell(row, cols.sentiment); model.ValidSentiment(s) {
		csvSentiment = s
		confidence := 0.7
		if c := cell(row, cols.confidence); c != "" {
			if parsed, err := strconv.ParseFloat(c, 64); err == nil {
				confidence = parsed
			}
		}
		result = model.Result{
			Sentiment:    csvSentiment,
			Confidence:   model.Round2(confidence),
			Explanation:  "Sentiment provided in CSV",
			DisasterType: extract.DisasterType(text),
			Location:     extract.Location(text),
			Language:     extract.Language(text),
		}
	} else {
		result = p.analyzer.AnalyzeRow(ctx, text)
	}

	disaster := csvDisaster
	if disaster == "" {
		disaster = result.DisasterType
	}
	// A disaster cell that carries the whole message is a mapping error.
	if len(disaster) > 20 && strings.Contains(disaster, text) {
		disaster = result.DisasterType
	}

	location := csvLocation
	if location == "" {
		location = result.Location
	}

	language := csvLanguage
	if language == "" {
		language = result.Language
	}
	if language == "" {
		language = model.LanguageEnglish
	}

	sentiment := csvSentiment
	if sentiment == "" {
		sentiment = result.Sentiment
	}

	return model.Record{
		Text:         text,
		Timestamp:    timestamp,
		Source:       source,
		Language:     language,
		Sentiment:    sentiment,
		Confidence:   result.Confidence,
		Explanation:  result.Explanation,
		DisasterType: disaster,
		Location:     location,
	}
}

func (p *Pipeline) logStats(records []model.Record) {
	locations, disasters := 0, 0
	for _, r := range records {
		if r.Location != "" && r.Location != model.LocationUnknown {
			locations++
		}
		if r.DisasterType != "" && r.DisasterType != model.DisasterNotSpecified {
			disasters++
		}
	}
	p.log.Info().
		Int("records", len(records)).
		Int("with_location", locations).
		Int("with_disaster", disasters).
		Msg("csv processing complete")
}

// cleanCell drops placeholder values exported spreadsheets leave behind.
func cleanCell(v string) string {
	switch strings.ToLower(v) {
	case "", "nan", "none":
		return ""
	}
	return v
}
