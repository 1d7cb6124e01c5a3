package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/doctor"
	"github.com/conn-castle/linux-msvc/internal/envfile"
	"github.com/conn-castle/linux-msvc/internal/install"
	"github.com/conn-castle/linux-msvc/internal/logx"
	"github.com/conn-castle/linux-msvc/internal/messages"
	"github.com/conn-castle/linux-msvc/internal/terminal"
)

var (
	lookPath      = exec.LookPath
	getenv        = os.Getenv
	environ       = os.Environ
	defaultPaths  = config.DefaultPaths
	isInteractive = terminal.IsInteractive
	newRunner     = func(logger *zap.Logger) clients.Runner { return clients.ExecRunner{Logger: logger} }
)

const flagVerbose = "verbose"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, flagVerbose, "v", false, messages.RootVerboseFlag)
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	cmd.AddCommand(
		newInstallCmd(opts),
		newRemoveCmd(opts),
		newUpdateCmd(opts),
		newConfigCmd(opts),
		newDoctorCmd(),
		newShellCmd(opts),
		newMesonCmd(),
		newWineCmd(),
		newPwshCmd(),
		newClCmd(),
		newLinkCmd(),
	)
	return cmd
}

// session is the state every subcommand starts from.
type session struct {
	paths config.Paths
	// cfg is nil when no config file exists.
	cfg     *config.Config
	extra   map[string]string
	verbose bool
	logger  *zap.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// prepare resolves the config directory, loads the config and .env extras,
// and builds the logger. With checkDeps set it first verifies the host tools.
func prepare(cmd *cobra.Command, verbose bool, checkDeps bool) (*session, error) {
	stderr := cmd.ErrOrStderr()
	logger := logx.New(stderr, verbose)
	if checkDeps {
		ok, missing := doctor.CheckDependencies(lookPath, doctor.RequiredDependencies)
		if !ok {
			for _, dep := range missing {
				_, _ = fmt.Fprintf(stderr, messages.DependencyMissingFmt, dep)
			}
			_, _ = fmt.Fprintln(stderr, messages.DependencyMissingSummary)
			return nil, &SilentExitError{Code: 1}
		}
		logger.Debug(messages.DependenciesInstalled)
	}
	paths, err := defaultPaths(getenv)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(paths.ConfigPath)
	switch {
	case errors.Is(err, config.ErrNotFound):
		logger.Debug(messages.ConfigFileMissing, zap.String("path", paths.ConfigPath))
		cfg = nil
	case err != nil:
		return nil, err
	default:
		logger.Debug(messages.ConfigFileExists, zap.String("path", paths.ConfigPath))
	}
	extra, err := envfile.Load(paths.EnvPath)
	if err != nil {
		return nil, err
	}
	return &session{
		paths:   paths,
		cfg:     cfg,
		extra:   extra,
		verbose: verbose,
		logger:  logger,
		stdout:  cmd.OutOrStdout(),
		stderr:  stderr,
	}, nil
}

// requireConfig returns the loaded config or the not-installed error.
func (s *session) requireConfig() (*config.Config, error) {
	if s.cfg == nil {
		return nil, errors.New(messages.NotInstalled)
	}
	return s.cfg, nil
}

// env returns the base environment for pipelines: the process environment
// with .env entries filling missing variables.
func (s *session) env() []string {
	return clients.FillMissing(environ(), s.extra)
}

// progress returns the writer verbose-only progress goes to.
func (s *session) progress() io.Writer {
	if s.verbose {
		return s.stdout
	}
	return nil
}

// pipelineOptions returns the install options shared by install, update, and reset.
func (s *session) pipelineOptions() install.Options {
	return install.Options{
		Paths:      s.paths,
		Runner:     newRunner(s.logger),
		Verbose:    s.verbose,
		Env:        s.env(),
		Out:        s.stdout,
		WarnWriter: s.stderr,
		Logger:     s.logger,
	}
}
