package pipeline

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gramlens/gramlens/internal/model"
	"github.com/gramlens/gramlens/internal/sanitize"
)

// BatchProcessor sanitizes multiple raw payloads concurrently.
//
// Design decision: We use errgroup with SetLimit rather than a hand-rolled
// worker pool because:
// 1. It propagates context cancellation to all in-flight jobs
// 2. SetLimit gives bounded concurrency without channel plumbing
// 3. The first error cancels the remaining work automatically
type BatchProcessor struct {
	engine      *sanitize.Engine
	logger      *slog.Logger
	concurrency int
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of payloads sanitized in parallel.
// Values below 1 fall back to the default of 4.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n >= 1 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor over the given engine.
func NewBatchProcessor(engine *sanitize.Engine, opts ...BatchOption) *BatchProcessor {
	b := &BatchProcessor{
		engine:      engine,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// ProcessBatch sanitizes all payloads and returns the normalized results in
// input order. Individual payloads never fail; the only error is context
// cancellation, in which case the partial results are discarded.
func (b *BatchProcessor) ProcessBatch(ctx context.Context, payloads []map[string]any) ([]*model.NormalizedPayload, error) {
	results := make([]*model.NormalizedPayload, len(payloads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, raw := range payloads {
		g.Go(func() error {
			job := NewJob(raw)
			pipeline := DefaultPipeline(b.engine, WithLogger(b.logger))
			if err := pipeline.Execute(ctx, job); err != nil {
				return err
			}
			results[i] = job.Report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b.logger.Info("batch sanitization complete", "payloads", len(payloads))
	return results, nil
}

// ProcessBatchWithCallback sanitizes all payloads, invoking callback for each
// completed result as it becomes available. The callback may be called from
// multiple goroutines concurrently; callers synchronize their own state. A
// callback error cancels the remaining work.
func (b *BatchProcessor) ProcessBatchWithCallback(ctx context.Context, payloads []map[string]any, callback func(index int, report *model.NormalizedPayload) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, raw := range payloads {
		g.Go(func() error {
			job := NewJob(raw)
			pipeline := DefaultPipeline(b.engine, WithLogger(b.logger))
			if err := pipeline.Execute(ctx, job); err != nil {
				return err
			}
			return callback(i, job.Report)
		})
	}

	return g.Wait()
}
