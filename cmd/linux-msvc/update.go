package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/linux-msvc/internal/install"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

func newUpdateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.UpdateUse,
		Short: messages.UpdateShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, root.verbose, true)
			if err != nil {
				return err
			}
			cfg, err := s.requireConfig()
			if err != nil {
				return err
			}
			if _, err := install.Update(cmd.Context(), cfg, s.pipelineOptions()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(s.stdout, messages.UpdateFinished)
			return nil
		},
	}
}
