package install

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Sources of the auxiliary Windows tools.
const (
	PowerShellMSIURL       = "https://github.com/PowerShell/PowerShell/releases/download/v7.4.6/PowerShell-7.4.6-win-x64.msi"
	ChocolateyInstallerURL = "https://community.chocolatey.org/install.ps1"
	VcpkgRepoURL           = "https://github.com/microsoft/vcpkg"
)

// Auxiliary tool names used in warnings.
const (
	auxPowerShell = "PowerShell"
	auxChocolatey = "Chocolatey"
	auxVcpkg      = "vcpkg"
)

// installAuxTools installs PowerShell, Chocolatey, and vcpkg into the prefix.
// Failures are reported as warnings and never fail the step, except for
// cancellation.
func (inst *installer) installAuxTools(ctx context.Context) error {
	pwshErr := inst.installPowerShell(ctx)
	if pwshErr != nil {
		inst.warnf(auxPowerShell, pwshErr)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if pwshErr != nil {
		inst.warnf(auxChocolatey, fmt.Errorf(messages.InstallAuxToolSkippedFmt, auxPowerShell))
	} else if err := inst.installChocolatey(ctx); err != nil {
		inst.warnf(auxChocolatey, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := inst.installVcpkg(ctx); err != nil {
		inst.warnf(auxVcpkg, err)
	}
	return ctx.Err()
}

func (inst *installer) installPowerShell(ctx context.Context) error {
	msi, err := inst.fetcher.Fetch(ctx, PowerShellMSIURL, "")
	if err != nil {
		return err
	}
	return inst.run(ctx, "", "wine", "msiexec", "/i", msi, "/qn")
}

func (inst *installer) installChocolatey(ctx context.Context) error {
	script, err := inst.fetcher.Fetch(ctx, ChocolateyInstallerURL, "chocolatey-install.ps1")
	if err != nil {
		return err
	}
	prefix, err := inst.winePrefix()
	if err != nil {
		return err
	}
	pwsh := filepath.Join(prefix, clients.PwshRelativePath)
	return inst.run(ctx, "", "wine", pwsh, "-NoProfile", "-ExecutionPolicy", "Bypass", "-File", script)
}

func (inst *installer) installVcpkg(ctx context.Context) error {
	if err := inst.cloneIfMissing(ctx, repo{url: VcpkgRepoURL, dir: inst.layout.Vcpkg}); err != nil {
		return err
	}
	bootstrap := filepath.Join(inst.layout.Vcpkg, "bootstrap-vcpkg.bat")
	return inst.run(ctx, inst.layout.Vcpkg, "wine", "cmd", "/c", bootstrap, "-disableMetrics")
}

// winePrefix resolves the prefix the pipeline's environment points wine at.
func (inst *installer) winePrefix() (string, error) {
	return inst.cfg.WinePrefix(func(key string) string {
		value, _ := clients.GetEnv(inst.env, key)
		return value
	})
}
