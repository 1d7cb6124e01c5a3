package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/install"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(newConfigResetCmd(root), newConfigShowCmd(root))
	return cmd
}

func newConfigResetCmd(root *rootOptions) *cobra.Command {
	valid := make([]string, 0, len(install.Resources))
	for _, r := range install.Resources {
		valid = append(valid, string(r))
	}
	return &cobra.Command{
		Use:       messages.ConfigResetUse,
		Short:     messages.ConfigResetShort,
		Args:      cobra.ExactArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := install.ParseResource(args[0])
			if err != nil {
				return err
			}
			s, err := prepare(cmd, root.verbose, true)
			if err != nil {
				return err
			}
			cfg, err := s.requireConfig()
			if err != nil {
				return err
			}
			if _, err := install.Reset(cmd.Context(), cfg, resource, s.pipelineOptions()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(s.stdout, messages.ConfigResetDone, resource)
			return nil
		},
	}
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigShowUse,
		Short: messages.ConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, root.verbose, false)
			if err != nil {
				return err
			}
			cfg, err := s.requireConfig()
			if err != nil {
				return err
			}
			for _, field := range config.Fields() {
				_, _ = fmt.Fprintf(s.stdout, messages.ConfigShowLine, field.Key, cfg.Get(field.Key, field.Default))
			}
			return nil
		},
	}
}
