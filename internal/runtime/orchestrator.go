// Package runtime drives a sweep end to end: it expands the configured
// axes, enumerates combinations, and submits one job per combination to
// the execution client, strictly sequentially. The flow is linear:
// build axes -> compute counts -> optional preview -> optional
// confirmation -> submit/await/record per combination.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/wedgerun/pkg/domain"
	"github.com/aretw0/wedgerun/pkg/ports"
	"github.com/aretw0/wedgerun/pkg/schema"
)

// Orchestrator sequences a sweep against one execution client. It owns
// the only cross-iteration state of a run, the recorded elapsed
// durations used for the completion estimate.
type Orchestrator struct {
	client     ports.ExecutionClient
	logger     *slog.Logger
	limit      int // -1 means unlimited
	dryRun     bool
	printPlan  bool
	outputNode string
	outputKind string
	confirm    ConfirmFunc
	preview    PreviewFunc
}

// ConfirmFunc gates submission. It receives the number of runs about to
// be submitted and the output directory; returning false ends the run
// without error.
type ConfirmFunc func(runs int, outputDir string) (bool, error)

// PreviewFunc reports one combination of the preview listing. idx is
// 1-based; total is the full cross-product size before clamping.
type PreviewFunc func(idx, total int, combo domain.Combination)

// New creates an orchestrator for the given execution client.
func New(client ports.ExecutionClient, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:     client,
		logger:     slog.Default(),
		limit:      -1,
		outputNode: DefaultOutputNode,
		outputKind: DefaultOutputKind,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the sweep described by cfg against the base template.
// The base template is never mutated: every combination gets its own
// clone. Any template rejection or submission failure aborts the whole
// run; completed combinations are not rolled back.
func (o *Orchestrator) Run(ctx context.Context, cfg *schema.SweepConfig, base ports.Template) error {
	if err := cfg.Vet(); err != nil {
		return err
	}

	axes, err := domain.BuildAxes(cfg)
	if err != nil {
		return err
	}
	total := domain.TotalCount(axes)

	maxRuns := total
	if o.limit >= 0 && o.limit < maxRuns {
		maxRuns = o.limit
	}
	if maxRuns <= 0 {
		o.logger.Info("no combinations to run")
		return nil
	}

	o.logger.Info("sweep planned",
		"combinations", total,
		"submitting", maxRuns,
		"axes", len(axes),
	)

	if o.printPlan || o.dryRun {
		it := domain.Combinations(axes)
		for idx := 1; idx <= maxRuns; idx++ {
			combo, ok := it.Next()
			if !ok {
				break
			}
			if o.preview != nil {
				o.preview(idx, total, combo)
			} else {
				o.logger.Info("planned combination", "index", fmt.Sprintf("%d/%d", idx, total), "values", domain.FormatCombination(combo))
			}
		}
		if o.dryRun {
			o.logger.Info("dry run complete, nothing submitted")
			return nil
		}
	}

	outputDir := filepath.Join(cfg.OutputFolder, "images")
	if o.confirm != nil {
		ok, err := o.confirm(maxRuns, outputDir)
		if err != nil {
			return err
		}
		if !ok {
			o.logger.Info("submission cancelled")
			return nil
		}
	}

	base.AttachMetadata("wedge_config", cfg.ToMap())

	var elapsedSeconds []float64
	it := domain.Combinations(axes)
	for idx := 1; idx <= maxRuns; idx++ {
		combo, ok := it.Next()
		if !ok {
			break
		}

		run := base.Clone()
		if err := applyOverrides(run, cfg); err != nil {
			return err
		}
		if err := applyCombination(run, axes, combo); err != nil {
			return err
		}
		run.AttachMetadata("wedge_iteration", map[string]any{
			"index":       idx,
			"of":          maxRuns,
			"combination": combo,
		})

		stem := domain.BuildFilename(cfg.FilenamePrefix, combo)
		if err := o.setOutputPrefix(run, filepath.Join(outputDir, stem)); err != nil {
			return err
		}

		o.logger.Info("submitting combination",
			"progress", fmt.Sprintf("%d/%d", idx, total),
			"values", domain.FormatCombination(combo),
		)

		jobID, err := o.client.Submit(ctx, run)
		if err != nil {
			return fmt.Errorf("submit combination %d/%d: %w", idx, total, err)
		}
		res, err := o.client.Await(ctx, jobID)
		if err != nil {
			return fmt.Errorf("await job %s: %w", jobID, err)
		}

		elapsed := o.client.ElapsedTime(res)
		elapsedSeconds = append(elapsedSeconds, elapsed.Total)

		outPath := res.LastArtifactPath()
		if outPath == "" {
			outPath = "<no artifact recorded>"
		}
		o.logger.Info("combination completed",
			"progress", fmt.Sprintf("%d/%d", idx, total),
			"job_id", jobID,
			"elapsed", elapsed.String(),
			"output", outPath,
		)

		if eta := EstimateETA(elapsedSeconds, maxRuns-idx); eta > 0 {
			o.logger.Info("estimated time remaining", "eta", eta.Truncate(time.Second).String())
		}
	}

	o.logger.Info("all requested combinations processed", "submitted", maxRuns)
	return nil
}

// applyOverrides sets every static override on the run's template clone,
// in declaration order.
func applyOverrides(tpl ports.Template, cfg *schema.SweepConfig) error {
	for _, g := range cfg.ParamOverrides {
		for _, e := range g.Entries {
			if !tpl.SetParamValue(g.Node, e.Param, e.Value) {
				return &domain.ApplyError{Node: g.Node, Param: e.Param, Value: e.Value}
			}
		}
	}
	return nil
}

// applyCombination sets the current combination's values, walking the
// axis list so application order is deterministic.
func applyCombination(tpl ports.Template, axes []domain.Axis, combo domain.Combination) error {
	for _, ax := range axes {
		value := combo[ax.Key.Node][ax.Key.Param]
		if !tpl.SetParamValue(ax.Key.Node, ax.Key.Param, value) {
			return &domain.ApplyError{Node: ax.Key.Node, Param: ax.Key.Param, Value: value}
		}
	}
	return nil
}

// setOutputPrefix assigns the generated name to the template's output
// location: the preferred node title first, then the sole node of the
// recognized output kind, else the run is aborted as ambiguous.
func (o *Orchestrator) setOutputPrefix(tpl ports.Template, prefix string) error {
	if tpl.SetParamValue(o.outputNode, "filename_prefix", prefix) {
		return nil
	}

	var candidates []ports.NodeRef
	for _, ref := range tpl.Nodes() {
		if ref.Descriptor.Kind == o.outputKind {
			candidates = append(candidates, ref)
		}
	}
	if len(candidates) == 1 && candidates[0].Descriptor.Title != "" {
		if tpl.SetParamValue(candidates[0].Descriptor.Title, "filename_prefix", prefix) {
			return nil
		}
	}
	return fmt.Errorf("no %q node and no single %s node found: %w", o.outputNode, o.outputKind, domain.ErrAmbiguousOutput)
}
