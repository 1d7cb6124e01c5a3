package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// wrapperRun launches one wrapped tool.
type wrapperRun func(ctx context.Context, l *clients.Launcher, parsed wrapperArgs) error

// newWrapperCmd builds a pass-through command. Flag parsing is left to
// parseWrapperArgs so tool flags reach the tool untouched.
func newWrapperCmd(use string, short string, allowCrossFile bool, run wrapperRun) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseWrapperArgs(args, allowCrossFile)
			if err != nil {
				return err
			}
			s, err := prepare(cmd, parsed.verbose, false)
			if err != nil {
				return err
			}
			l, err := s.launcher(cmd)
			if err != nil {
				return err
			}
			return forwardExit(run(cmd.Context(), l, parsed))
		},
	}
}

func newWineCmd() *cobra.Command {
	return newWrapperCmd(messages.WineUse, messages.WineShort, false, func(ctx context.Context, l *clients.Launcher, parsed wrapperArgs) error {
		return l.Wine(ctx, parsed.pass)
	})
}

func newPwshCmd() *cobra.Command {
	return newWrapperCmd(messages.PwshUse, messages.PwshShort, false, func(ctx context.Context, l *clients.Launcher, parsed wrapperArgs) error {
		return l.Pwsh(ctx, parsed.pass)
	})
}

func newClCmd() *cobra.Command {
	return newWrapperCmd(messages.ClUse, messages.ClShort, false, func(ctx context.Context, l *clients.Launcher, parsed wrapperArgs) error {
		return l.Cl(ctx, parsed.pass)
	})
}

func newLinkCmd() *cobra.Command {
	return newWrapperCmd(messages.LinkUse, messages.LinkShort, false, func(ctx context.Context, l *clients.Launcher, parsed wrapperArgs) error {
		return l.Link(ctx, parsed.pass)
	})
}

func newMesonCmd() *cobra.Command {
	return newWrapperCmd(messages.MesonUse, messages.MesonShort, true, func(ctx context.Context, l *clients.Launcher, parsed wrapperArgs) error {
		return l.Meson(ctx, parsed.addCrossFile, parsed.pass)
	})
}

// launcher builds the wrapped-tool launcher for an installed config.
func (s *session) launcher(cmd *cobra.Command) (*clients.Launcher, error) {
	cfg, err := s.requireConfig()
	if err != nil {
		return nil, err
	}
	return &clients.Launcher{
		Config:   cfg,
		Runner:   newRunner(s.logger),
		Verbose:  s.verbose,
		Extra:    s.extra,
		Environ:  environ,
		LookPath: lookPath,
		Stdin:    cmd.InOrStdin(),
		Stdout:   s.stdout,
		Stderr:   s.stderr,
		Logger:   s.logger,
	}, nil
}

// forwardExit turns a wrapped tool's non-zero exit into the CLI's own exit
// status. The tool already wrote its diagnostics.
func forwardExit(err error) error {
	var toolErr *clients.ToolError
	if errors.As(err, &toolErr) {
		code := toolErr.Code
		if code <= 0 {
			code = 1
		}
		return &SilentExitError{Code: code}
	}
	return err
}
