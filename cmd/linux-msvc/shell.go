package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

func newShellCmd(root *rootOptions) *cobra.Command {
	var shellType string
	cmd := &cobra.Command{
		Use:   messages.ShellUse,
		Short: messages.ShellShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, root.verbose, false)
			if err != nil {
				return err
			}
			l, err := s.launcher(cmd)
			if err != nil {
				return err
			}
			shell := clients.ShellName(shellType, getenv)
			return forwardExit(l.Shell(cmd.Context(), shell, s.stdout))
		},
	}
	cmd.Flags().StringVar(&shellType, "type", "", messages.ShellFlagType)
	return cmd
}
