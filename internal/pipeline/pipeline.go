package pipeline

import (
	"context"
	"log/slog"

	"github.com/gramlens/gramlens/internal/model"
	"github.com/gramlens/gramlens/internal/sanitize"
)

// Job carries one sanitization run through the pipeline.
// Each job owns its input and output: nothing is shared between jobs, which
// is what makes concurrent batch processing safe without locking.
type Job struct {
	// Raw is the decoded raw payload from the upstream analysis service.
	Raw map[string]any

	// Report is the normalized payload being assembled.
	Report *model.NormalizedPayload

	// Context holds the account-level hints derived by the identity and
	// score steps and consumed by the suppression rules in later steps.
	Context sanitize.Context

	// ForbiddenMetrics are payload-supplied metric names suppressed for
	// this account beyond the engine's built-in denylist.
	ForbiddenMetrics []string

	// ForceServiceProvider overrides the payload's account classification
	// when non-nil. Set from per-account rules-file entries.
	ForceServiceProvider *bool

	// ExtraForbiddenMetrics are operator-supplied metric-name substrings
	// merged into the payload's forbidden list. Set from per-account
	// rules-file entries.
	ExtraForbiddenMetrics []string
}

// NewJob creates a Job for the given raw payload.
func NewJob(raw map[string]any) *Job {
	return &Job{
		Raw:    raw,
		Report: model.NewNormalizedPayload(),
	}
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// job from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state (the shared engine)
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features
type Step interface {
	// Do executes the pipeline step. It receives the context for
	// cancellation and the job to modify. A section that cannot be
	// sanitized is omitted from the report; only cancellation produces an
	// error.
	Do(ctx context.Context, job *Job) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution even
// when a step fails. Sanitization steps only fail on context cancellation,
// so the default is to stop: once the context is gone every later step
// would fail the same way.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
func (p *Pipeline) Execute(ctx context.Context, job *Job) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, job); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			if !p.continueOnError {
				return err
			}
		}
	}

	return nil
}

// DefaultPipeline creates the standard sanitization pipeline over the given
// engine, in dependency order.
func DefaultPipeline(engine *sanitize.Engine, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewIdentityStep(engine),
		NewScoreStep(engine),
		NewAccountStep(engine),
		NewAgentsStep(engine),
		NewSectionsStep(engine),
		NewAdvancedStep(engine),
		NewMetadataStep(engine),
	)
	return p
}

// Sanitize runs the default pipeline over one raw payload and returns the
// normalized result. This is the single entry point shared by the browser
// rendering layer and the PDF export job; it never fails, because every
// step degrades by omission.
func Sanitize(raw map[string]any, engine *sanitize.Engine) *model.NormalizedPayload {
	job := NewJob(raw)
	// Background context: the pure pipeline has no suspension points, so
	// cancellation only matters for batch callers, which pass their own.
	_ = DefaultPipeline(engine).Execute(context.Background(), job) //nolint:errcheck // never fails without cancellation
	return job.Report
}
