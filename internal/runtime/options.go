package runtime

import "log/slog"

const (
	// DefaultOutputNode is the node title tried first when assigning the
	// generated output name.
	DefaultOutputNode = "OUT_image"
	// DefaultOutputKind is the node kind used as a fallback when the
	// preferred title is absent and exactly one such node exists.
	DefaultOutputKind = "SaveImage"
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets a structured logger for run progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithLimit clamps the number of combinations submitted. A limit of
// zero means the run ends with no submissions; a negative limit means
// unlimited.
func WithLimit(n int) Option {
	return func(o *Orchestrator) { o.limit = n }
}

// WithDryRun lists the planned combinations and stops before submitting.
func WithDryRun(enabled bool) Option {
	return func(o *Orchestrator) { o.dryRun = enabled }
}

// WithPrintPlan lists each planned combination before submission starts.
func WithPrintPlan(enabled bool) Option {
	return func(o *Orchestrator) { o.printPlan = enabled }
}

// WithOutputNode overrides the preferred output node title.
func WithOutputNode(title string) Option {
	return func(o *Orchestrator) {
		if title != "" {
			o.outputNode = title
		}
	}
}

// WithOutputKind overrides the fallback output node kind.
func WithOutputKind(kind string) Option {
	return func(o *Orchestrator) {
		if kind != "" {
			o.outputKind = kind
		}
	}
}

// WithConfirm installs a confirmation gate ahead of submission.
func WithConfirm(fn ConfirmFunc) Option {
	return func(o *Orchestrator) { o.confirm = fn }
}

// WithPreview installs a reporter for the preview listing.
func WithPreview(fn PreviewFunc) Option {
	return func(o *Orchestrator) { o.preview = fn }
}
