package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
	"github.com/custodia-labs/companynorm/internal/core/ports/driving"
	"github.com/custodia-labs/companynorm/internal/logger"
)

// Ensure PipelineService implements the interface.
var _ driving.Pipeline = (*PipelineService)(nil)

// PipelineService streams records through a normaliser one at a time.
// It never holds more than one record in memory.
type PipelineService struct {
	normaliser driving.RecordNormaliser
	registry   driven.ExtractorRegistry
}

// NewPipelineService creates a new pipeline service.
// The registry is used only to decide which fields count towards the run
// statistics.
func NewPipelineService(normaliser driving.RecordNormaliser, registry driven.ExtractorRegistry) *PipelineService {
	return &PipelineService{
		normaliser: normaliser,
		registry:   registry,
	}
}

// Run reads every record from src, normalises it and writes it to sink in
// input order. A malformed record or an I/O error stops the run; lines
// already written stay written. Cancelling ctx stops the run between
// records.
func (s *PipelineService) Run(
	ctx context.Context,
	src driven.RecordSource,
	sink driven.RecordSink,
) (*driving.RunStats, error) {
	if src == nil || sink == nil {
		return nil, domain.ErrInvalidInput
	}

	start := time.Now()
	stats := driving.NewRunStats(uuid.New().String())
	defer func() {
		stats.Duration = time.Since(start)
	}()

	logger.Section("Pipeline Run")
	logger.Info("Run %s started", stats.RunID)

	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run %s cancelled after %d records", stats.RunID, stats.Records)
			return stats, err
		}

		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read record: %w", err)
		}

		out := s.normaliser.Normalise(rec)
		s.logUnparsed(src.Line(), rec, out)

		if err := sink.Write(out); err != nil {
			return stats, fmt.Errorf("write record from line %d: %w", src.Line(), err)
		}
		stats.Observe(out, s.recognised)
	}

	logger.Info("Run %s finished: %d records", stats.RunID, stats.Records)
	return stats, nil
}

func (s *PipelineService) recognised(field string) bool {
	return s.registry.Has(field)
}

// logUnparsed reports recognised fields whose input held a value but whose
// output is null.
func (s *PipelineService) logUnparsed(line int, in, out domain.Record) {
	if !logger.IsVerbose() {
		return
	}
	for i, f := range out.Fields {
		if i >= len(in.Fields) || f.Value != nil || in.Fields[i].Value == nil || !s.recognised(f.Name) {
			continue
		}
		logger.Line(line, "%s %q not parseable", f.Name, fmt.Sprint(in.Fields[i].Value))
	}
}
