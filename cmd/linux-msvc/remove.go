package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/install"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

func newRemoveCmd(root *rootOptions) *cobra.Command {
	var destination string
	opts := install.RemoveOptions{}
	cmd := &cobra.Command{
		Use:   messages.RemoveUse,
		Short: messages.RemoveShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, root.verbose, false)
			if err != nil {
				return err
			}
			cfg, err := removeConfig(s.cfg, destination)
			if errors.Is(err, install.ErrNoDestination) {
				_, _ = fmt.Fprintln(s.stderr, messages.RemoveNoDestinationHint)
				return &SilentExitError{Code: 1}
			}
			if err != nil {
				return err
			}
			layout, err := cfg.Layout()
			if err != nil {
				return err
			}
			targets := install.RemoveTargets(layout, s.paths.ConfigDir, opts)
			if err := install.RemoveAll(install.RealSystem{}, targets, s.progress(), s.logger); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(s.stdout, messages.RemoveFinished)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&destination, "destination", "", messages.RemoveFlagDestination)
	f.BoolVar(&opts.DeleteCache, "delete_cache", false, messages.RemoveFlagDeleteCache)
	f.BoolVar(&opts.KeepWinePrefix, "keep_wine_prefix", false, messages.RemoveFlagKeepWinePrefix)
	f.BoolVar(&opts.KeepMsvc, "keep_msvc", false, messages.RemoveFlagKeepMSVC)
	f.BoolVar(&opts.KeepCrossFiles, "keep_cross_files", false, messages.RemoveFlagKeepCrossFiles)
	f.BoolVar(&opts.DeleteMainRepo, "delete_main_repo", false, messages.RemoveFlagDeleteMainRepo)
	f.BoolVar(&opts.KeepVcpkg, "keep_vcpkg", false, messages.RemoveFlagKeepVcpkg)
	return cmd
}

// removeConfig picks the installation to remove: the saved config, else the
// --destination flag.
func removeConfig(saved *config.Config, destination string) (*config.Config, error) {
	if saved != nil {
		return saved, nil
	}
	if strings.TrimSpace(destination) == "" {
		return nil, install.ErrNoDestination
	}
	cfg := config.Default()
	cfg.Destination = destination
	return &cfg, nil
}
