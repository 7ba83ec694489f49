package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

// Reporter writes the framed progress and batch events consumed by the
// host application. Progress lines go to the progress writer, batch
// payloads to the results writer, so the two streams can be parsed
// independently.
type Reporter struct {
	mu       sync.Mutex
	progress io.Writer
	results  io.Writer
}

// NewReporter wires the two event streams.
func NewReporter(progress, results io.Writer) *Reporter {
	return &Reporter{progress: progress, results: results}
}

type progressEvent struct {
	Processed int    `json:"processed"`
	Stage     string `json:"stage"`
	Total     *int   `json:"total,omitempty"`
}

type batchEvent struct {
	BatchNumber  int            `json:"batchNumber"`
	TotalBatches int            `json:"totalBatches"`
	Results      []model.Record `json:"results"`
}

// Progress emits a stage event before the record total is known.
func (r *Reporter) Progress(processed int, stage string) {
	r.emitProgress(progressEvent{Processed: processed, Stage: stage})
}

// ProgressTotal emits a stage event carrying the record total.
func (r *Reporter) ProgressTotal(processed int, stage string, total int) {
	r.emitProgress(progressEvent{Processed: processed, Stage: stage, Total: &total})
}

func (r *Reporter) emitProgress(ev progressEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.progress, "PROGRESS:%s::END_PROGRESS\n", payload)
}

// BatchComplete emits the incremental results for one finished batch.
func (r *Reporter) BatchComplete(batchNumber, totalBatches int, results []model.Record) {
	if results == nil {
		results = []model.Record{}
	}
	payload, err := json.Marshal(batchEvent{
		BatchNumber:  batchNumber,
		TotalBatches: totalBatches,
		Results:      results,
	})
	if err != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.results, "BATCH_COMPLETE:%s::END_BATCH\n", payload)
}
