package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draiimon/PanicSense-Final/internal/metrics"
	"github.com/draiimon/PanicSense-Final/internal/model"
	"github.com/draiimon/PanicSense-Final/internal/pipeline"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file.csv>",
	Short: "Process a CSV dataset in paced batches",
	Long: `Process runs every row of a CSV file through the analyzer in batches,
pausing between batches to respect remote rate limits.

Progress events stream to stderr as framed PROGRESS lines; each finished
batch emits a BATCH_COMPLETE line on stdout, and the final line is a JSON
envelope with all records and the computed metrics.

Example:
  panicsense process disaster-tweets.csv
  panicsense process --db corrections.db dataset.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

// processEnvelope is the final stdout payload.
type processEnvelope struct {
	Error   string         `json:"error,omitempty"`
	Results []model.Record `json:"results"`
	Metrics metrics.Report `json:"metrics"`
}

func runProcess(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	reporter := pipeline.NewReporter(os.Stderr, os.Stdout)
	p := pipeline.New(s.analyzer, reporter, s.cfg.Pipeline, s.log)

	records, err := p.Process(context.Background(), args[0])
	if err != nil {
		emit(processEnvelope{
			Error:   err.Error(),
			Results: []model.Record{},
			Metrics: metrics.Calculate(nil),
		})
		return fmt.Errorf("process csv: %w", err)
	}

	if records == nil {
		records = []model.Record{}
	}
	emit(processEnvelope{
		Results: records,
		Metrics: metrics.Calculate(records),
	})
	return nil
}

func emit(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stdout, string(payload))
}
