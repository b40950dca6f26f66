// Package cli wires the cobra commands to the sweep core: config
// resolution, typed input parsing, the confirmation gate, and the
// submit loop setup.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/wedgerun/internal/logging"
	"github.com/aretw0/wedgerun/internal/presentation"
	"github.com/aretw0/wedgerun/internal/runtime"
	"github.com/aretw0/wedgerun/pkg/adapters/comfy"
	"github.com/aretw0/wedgerun/pkg/domain"
	"github.com/aretw0/wedgerun/pkg/schema"
)

// RunOptions carries the submit command's flags.
type RunOptions struct {
	WorkflowPath string
	ConfigPath   string
	ConfigStdin  bool
	OutputNode   string
	Limit        int // negative means unlimited
	DryRun       bool
	PrintPlan    bool
	Confirm      bool
	PollInterval time.Duration
	LogLevel     string

	// Stdin/Stdout are injectable for tests; nil means the process files.
	Stdin  *os.File
	Stdout io.Writer
}

// RunSubmit loads the workflow and config, builds the execution client,
// and drives the sweep.
func RunSubmit(ctx context.Context, opts RunOptions) error {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := loadConfig(opts, stdin, logger)
	if err != nil {
		return err
	}
	logger.Info("config loaded",
		"output_folder", cfg.OutputFolder,
		"override_nodes", len(cfg.ParamOverrides),
		"wedge_nodes", len(cfg.ParamWedges),
	)

	workflow, err := comfy.LoadWorkflow(opts.WorkflowPath)
	if err != nil {
		return err
	}

	clientOpts := []comfy.ClientOption{comfy.WithLogger(logger)}
	if opts.PollInterval > 0 {
		clientOpts = append(clientOpts, comfy.WithPollInterval(opts.PollInterval))
	}
	client := comfy.NewClient(cfg.URL, clientOpts...)
	logger.Info("using executor", "url", client.BaseURL(), "client_id", client.ClientID())

	preview := presentation.NewPreview(stdout)
	runOpts := []runtime.Option{
		runtime.WithLogger(logger),
		runtime.WithDryRun(opts.DryRun),
		runtime.WithPrintPlan(opts.PrintPlan),
		runtime.WithOutputNode(opts.OutputNode),
		runtime.WithPreview(func(idx, total int, combo domain.Combination) {
			preview.Combination(idx, total, combo)
		}),
	}
	if opts.Limit >= 0 {
		runOpts = append(runOpts, runtime.WithLimit(opts.Limit))
	}
	if opts.Confirm {
		runOpts = append(runOpts, runtime.WithConfirm(func(runs int, outputDir string) (bool, error) {
			return PromptConfirmation(stdin, stdout, runs, outputDir)
		}))
	}

	return runtime.New(client, runOpts...).Run(ctx, cfg, workflow)
}

func loadConfig(opts RunOptions, stdin *os.File, logger *slog.Logger) (*schema.SweepConfig, error) {
	if opts.ConfigStdin {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read config from stdin: %w", err)
		}
		cfg, err := schema.FromJSON(raw)
		if err != nil {
			return nil, err
		}
		logger.Info("config loaded from stdin")
		return cfg, nil
	}

	path, err := ResolveConfigPath(opts.WorkflowPath, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return schema.Load(path)
}
