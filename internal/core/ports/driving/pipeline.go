package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Pipeline streams records from a source through normalisation into a sink.
type Pipeline interface {
	// Run processes every record from src in order and writes each result
	// to sink. The returned stats are populated even when Run fails, except
	// for nil ports, which return domain.ErrInvalidInput and nil stats.
	Run(ctx context.Context, src driven.RecordSource, sink driven.RecordSink) (*RunStats, error)
}

// FieldStats counts outcomes for one recognised field.
type FieldStats struct {
	// Extracted is the number of values turned into an integer.
	Extracted int

	// Nulled is the number of values left null.
	Nulled int
}

// RunStats summarises a pipeline run.
type RunStats struct {
	RunID    string
	Records  int
	Fields   map[string]*FieldStats
	Duration time.Duration
}

// NewRunStats creates empty stats for the given run.
func NewRunStats(runID string) *RunStats {
	return &RunStats{
		RunID:  runID,
		Fields: make(map[string]*FieldStats),
	}
}

// Observe updates the field counters from one normalised record.
// Only the names in recognised are counted.
func (s *RunStats) Observe(rec domain.Record, recognised func(string) bool) {
	s.Records++
	for _, f := range rec.Fields {
		if !recognised(f.Name) {
			continue
		}
		fs, ok := s.Fields[f.Name]
		if !ok {
			fs = &FieldStats{}
			s.Fields[f.Name] = fs
		}
		if f.Value == nil {
			fs.Nulled++
		} else {
			fs.Extracted++
		}
	}
}
