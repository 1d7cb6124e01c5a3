package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/install"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// confirmLicenseFunc shows the interactive license prompt.
var confirmLicenseFunc = func(title string) (bool, error) {
	accepted := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&accepted),
		),
	).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return accepted, err
}

type installFlags struct {
	destination         string
	noWinePrefix        bool
	noConfigFile        bool
	noCrossFiles        bool
	noCache             bool
	useSystemWinetricks bool
	acceptLicense       bool
	noAuxTools          bool
}

// config builds the installation record the flags describe.
func (f installFlags) config() (config.Config, error) {
	dest, err := config.ResolveDestination(f.destination)
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Default()
	cfg.Destination = dest
	cfg.NoWinePrefix = f.noWinePrefix
	cfg.CreateConfigFile = !f.noConfigFile
	cfg.CopyCrossFiles = !f.noCrossFiles
	cfg.UseCache = !f.noCache
	cfg.UseSystemWinetricks = f.useSystemWinetricks
	return cfg, nil
}

func newInstallCmd(root *rootOptions) *cobra.Command {
	flags := installFlags{}
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prepare(cmd, root.verbose, true)
			if err != nil {
				return err
			}
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			opts := s.pipelineOptions()
			opts.Prompter = licensePrompter()
			opts.AcceptLicense = flags.acceptLicense
			opts.SkipAuxTools = flags.noAuxTools
			_, err = install.Run(cmd.Context(), &cfg, opts)
			if errors.Is(err, install.ErrAlreadyInstalled) {
				_, _ = fmt.Fprintln(s.stderr, err)
				_, _ = fmt.Fprintln(s.stderr, messages.InstallAlreadyInstalledHint)
				return &SilentExitError{Code: 1}
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(s.stdout, messages.InstallFinished)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.destination, "destination", config.DefaultDestination, messages.InstallFlagDestination)
	f.BoolVar(&flags.noWinePrefix, "no_wine_prefix", false, messages.InstallFlagNoWinePrefix)
	f.BoolVar(&flags.noConfigFile, "no_config_file", false, messages.InstallFlagNoConfigFile)
	f.BoolVar(&flags.noCrossFiles, "no_cross_files", false, messages.InstallFlagNoCrossFiles)
	f.BoolVar(&flags.noCache, "no_cache", false, messages.InstallFlagNoCache)
	f.BoolVar(&flags.useSystemWinetricks, "use_system_winetricks", false, messages.InstallFlagUseSystemWinetricks)
	f.BoolVar(&flags.acceptLicense, "accept_license", false, messages.InstallFlagAcceptLicense)
	f.BoolVar(&flags.noAuxTools, "no_aux_tools", false, messages.InstallFlagNoAuxTools)
	return cmd
}

// licensePrompter asks on an interactive terminal and refuses otherwise.
func licensePrompter() install.Prompter {
	if !isInteractive() {
		return install.PromptFuncs{AcceptLicenseFunc: func() (bool, error) {
			return false, errors.New(messages.InstallLicenseRequiresFlag)
		}}
	}
	return install.PromptFuncs{AcceptLicenseFunc: func() (bool, error) {
		return confirmLicenseFunc(messages.InstallLicensePrompt)
	}}
}
