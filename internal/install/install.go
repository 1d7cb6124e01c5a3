// Package install runs the step pipelines that create, repair, update, and
// remove a linux-msvc installation.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/cache"
	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/logx"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// ErrAlreadyInstalled reports that a config file exists, so install refuses
// to run over the previous installation.
var ErrAlreadyInstalled = errors.New(messages.InstallAlreadyInstalled)

// ErrNoDestination reports that remove has neither a config nor a destination.
var ErrNoDestination = errors.New(messages.InstallNoDestination)

// Fetcher resolves a download through the installation cache.
// *cache.Fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string, name string) (string, error)
}

// Options controls pipeline behavior. Zero values select real implementations
// where one exists.
type Options struct {
	Paths  config.Paths
	Runner clients.Runner
	// Fetcher defaults to a cache.Fetcher rooted at <destination>/cache.
	Fetcher Fetcher
	System  System
	// Prompter confirms the MSVC license when AcceptLicense is false.
	Prompter      Prompter
	AcceptLicense bool
	SkipAuxTools  bool
	Verbose       bool
	// Env is the base environment; nil means os.Environ.
	Env []string
	// Out receives progress and tool output; nil discards it.
	Out io.Writer
	// WarnWriter receives warnings and tool stderr; nil means os.Stderr.
	WarnWriter io.Writer
	Logger     *zap.Logger
}

// Report summarizes a finished pipeline.
type Report struct {
	// Results holds one entry per external command, in run order.
	Results []clients.Result
	// Warnings holds best-effort failures that did not stop the pipeline.
	Warnings []string
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

type installer struct {
	cfg      *config.Config
	paths    config.Paths
	layout   config.Layout
	runner   clients.Runner
	fetcher  Fetcher
	sys      System
	prompter Prompter
	accepted bool
	skipAux  bool
	verbose  bool
	env      []string
	out      io.Writer
	warn     io.Writer
	logger   *zap.Logger
	report   Report
}

func newInstaller(cfg *config.Config, opts Options) (*installer, error) {
	if cfg == nil {
		return nil, errors.New(messages.InstallConfigRequired)
	}
	if opts.Runner == nil {
		return nil, errors.New(messages.InstallRunnerRequired)
	}
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	overlay, err := clients.ForConfig(cfg, opts.Verbose)
	if err != nil {
		return nil, err
	}
	base := opts.Env
	if base == nil {
		base = os.Environ()
	}
	inst := &installer{
		cfg:      cfg,
		paths:    opts.Paths,
		layout:   layout,
		runner:   opts.Runner,
		fetcher:  opts.Fetcher,
		sys:      opts.System,
		prompter: opts.Prompter,
		accepted: opts.AcceptLicense,
		skipAux:  opts.SkipAuxTools,
		verbose:  opts.Verbose,
		env:      overlay.Apply(base),
		out:      opts.Out,
		warn:     opts.WarnWriter,
		logger:   logx.OrNop(opts.Logger),
	}
	if inst.sys == nil {
		inst.sys = RealSystem{}
	}
	if inst.out == nil {
		inst.out = io.Discard
	}
	if inst.warn == nil {
		inst.warn = os.Stderr
	}
	if inst.fetcher == nil {
		inst.fetcher = &cache.Fetcher{Dir: layout.Cache, Logger: inst.logger, Progress: inst.out}
	}
	return inst, nil
}

// Run installs MSVC, configures the wine prefix, installs the auxiliary tools,
// and saves cfg. It refuses to run when a config file already exists. A failed
// step stops the pipeline and leaves earlier work on disk.
func Run(ctx context.Context, cfg *config.Config, opts Options) (Report, error) {
	inst, err := newInstaller(cfg, opts)
	if err != nil {
		return Report{}, err
	}
	if inst.paths.ConfigPath != "" {
		exists, err := inst.exists(inst.paths.ConfigPath)
		if err != nil {
			return Report{}, err
		}
		if exists {
			return Report{}, fmt.Errorf(messages.InstallAlreadyInstalledFmt, ErrAlreadyInstalled, inst.paths.ConfigPath)
		}
	}
	if err := confirmLicense(inst.accepted, inst.prompter); err != nil {
		return Report{}, err
	}

	steps := []step{
		{name: messages.InstallStepCreateDirs, run: inst.createDirs},
		{name: messages.InstallStepClone, run: inst.cloneRepos},
		{name: messages.InstallStepDownloadMsvc, run: inst.downloadMsvc},
		{name: messages.InstallStepInstallMsvc, run: inst.installMsvc},
		{name: messages.InstallStepConfigureWine, run: inst.configureWine},
	}
	if !inst.skipAux {
		steps = append(steps, step{name: messages.InstallStepAuxTools, run: inst.installAuxTools})
	}
	if cfg.CopyCrossFiles {
		steps = append(steps, step{name: messages.InstallStepCrossFiles, run: inst.writeCrossFiles})
	}
	if cfg.CreateConfigFile {
		steps = append(steps, step{name: messages.InstallStepSaveConfig, run: inst.saveConfig})
	}
	err = inst.runSteps(ctx, steps)
	return inst.report, err
}

// runSteps runs each step once in order and stops at the first failure.
func (inst *installer) runSteps(ctx context.Context, steps []step) error {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(inst.out, messages.InstallStepStartFmt, s.name)
		inst.logger.Debug("step started", zap.String("step", s.name))
		if err := s.run(ctx); err != nil {
			inst.logger.Debug("step failed", zap.String("step", s.name), zap.Error(err))
			return fmt.Errorf(messages.InstallStepFailedFmt, s.name, err)
		}
		inst.logger.Debug("step finished", zap.String("step", s.name))
	}
	return nil
}

// run executes one external command with the overlay environment and records its result.
func (inst *installer) run(ctx context.Context, dir string, name string, args ...string) error {
	result, err := inst.runner.Run(ctx, clients.Command{
		Name:   name,
		Args:   args,
		Dir:    dir,
		Env:    inst.env,
		Stdout: inst.out,
		Stderr: inst.warn,
	})
	if result.Tool == "" {
		result.Tool = name
		result.Args = args
	}
	inst.report.Results = append(inst.report.Results, result)
	return err
}

func (inst *installer) warnf(tool string, err error) {
	msg := fmt.Sprintf(messages.InstallAuxToolFailedFmt, tool, err)
	inst.report.Warnings = append(inst.report.Warnings, msg)
	_, _ = fmt.Fprint(inst.warn, msg)
}

func (inst *installer) exists(path string) (bool, error) {
	_, err := inst.sys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf(messages.InstallStatFailedFmt, path, err)
}

func (inst *installer) createDirs(context.Context) error {
	for _, dir := range []string{inst.layout.Root, inst.layout.Msvc, inst.layout.Cache} {
		if err := inst.sys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
		}
	}
	return nil
}

func (inst *installer) saveConfig(context.Context) error {
	return config.Save(inst.paths.ConfigPath, inst.cfg)
}
