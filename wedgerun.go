package wedgerun

import (
	"context"
	"log/slog"

	"github.com/aretw0/wedgerun/internal/runtime"
	"github.com/aretw0/wedgerun/pkg/ports"
	"github.com/aretw0/wedgerun/pkg/schema"
)

// Version is the library and CLI version.
var Version = "0.3.0"

// Runner is the high-level entry point for the wedgerun library. It
// wraps the internal orchestrator and provides a simplified API for
// consumers.
type Runner struct {
	cfg         *schema.SweepConfig
	client      ports.ExecutionClient
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger sets a custom structured logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithLogger(logger))
	}
}

// WithLimit clamps the number of combinations submitted.
func WithLimit(n int) Option {
	return func(r *Runner) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithLimit(n))
	}
}

// WithDryRun lists the planned combinations without submitting.
func WithDryRun() Option {
	return func(r *Runner) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithDryRun(true))
	}
}

// WithOutputNode overrides the preferred output node title.
func WithOutputNode(title string) Option {
	return func(r *Runner) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithOutputNode(title))
	}
}

// WithConfirm installs a confirmation gate called with the run count and
// output directory before anything is submitted.
func WithConfirm(fn func(runs int, outputDir string) (bool, error)) Option {
	return func(r *Runner) {
		r.runtimeOpts = append(r.runtimeOpts, runtime.WithConfirm(fn))
	}
}

// New creates a Runner for a validated config and execution client.
func New(cfg *schema.SweepConfig, client ports.ExecutionClient, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run submits every sweep combination against the base template.
func (r *Runner) Run(ctx context.Context, base ports.Template) error {
	return runtime.New(r.client, r.runtimeOpts...).Run(ctx, r.cfg, base)
}

// Config returns the runner's sweep configuration.
func (r *Runner) Config() *schema.SweepConfig {
	return r.cfg
}

// LoadConfig reads, normalizes, and validates a sweep configuration
// file. Legacy document shapes are accepted and upgraded in memory.
func LoadConfig(path string) (*schema.SweepConfig, error) {
	return schema.Load(path)
}
