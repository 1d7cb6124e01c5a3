package install

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Resource names a part of the installation config reset rebuilds.
type Resource string

const (
	// ResourceAll resets msvc and then the wine prefix.
	ResourceAll        Resource = "all"
	ResourceWinePrefix Resource = "wine_prefix"
	ResourceMsvc       Resource = "msvc"
)

// Resources lists the accepted reset arguments.
var Resources = []Resource{ResourceAll, ResourceWinePrefix, ResourceMsvc}

// ParseResource validates a reset argument.
func ParseResource(raw string) (Resource, error) {
	raw = strings.TrimSpace(raw)
	for _, r := range Resources {
		if string(r) == raw {
			return r, nil
		}
	}
	return "", fmt.Errorf(messages.ResetUnknownResourceFmt, raw)
}

// Reset deletes the named resource and re-runs only the install steps that
// rebuild it. The license was accepted when the installation was created.
func Reset(ctx context.Context, cfg *config.Config, resource Resource, opts Options) (Report, error) {
	inst, err := newInstaller(cfg, opts)
	if err != nil {
		return Report{}, err
	}
	var steps []step
	switch resource {
	case ResourceMsvc:
		steps = inst.resetMsvcSteps()
	case ResourceWinePrefix:
		steps = inst.resetPrefixSteps()
	case ResourceAll:
		steps = append(inst.resetMsvcSteps(), inst.resetPrefixSteps()...)
		if cfg.CopyCrossFiles {
			steps = append(steps, step{name: messages.InstallStepCrossFiles, run: inst.writeCrossFiles})
		}
	default:
		return Report{}, fmt.Errorf(messages.ResetUnknownResourceFmt, resource)
	}
	err = inst.runSteps(ctx, steps)
	return inst.report, err
}

func (inst *installer) resetMsvcSteps() []step {
	return []step{
		{name: messages.InstallStepRemoveMsvc, run: inst.removeMsvc},
		{name: messages.InstallStepCreateDirs, run: inst.createDirs},
		{name: messages.InstallStepClone, run: inst.cloneRepos},
		{name: messages.InstallStepDownloadMsvc, run: inst.downloadMsvc},
		{name: messages.InstallStepInstallMsvc, run: inst.installMsvc},
	}
}

func (inst *installer) resetPrefixSteps() []step {
	steps := []step{
		{name: messages.InstallStepRemovePrefix, run: inst.removePrefix},
		{name: messages.InstallStepConfigureWine, run: inst.configureWine},
	}
	if !inst.skipAux {
		steps = append(steps, step{name: messages.InstallStepAuxTools, run: inst.installAuxTools})
	}
	return steps
}

func (inst *installer) removeMsvc(context.Context) error {
	return RemoveAll(inst.sys, []RemoveTarget{
		{Path: inst.layout.Msvc, Label: "msvc install", Remove: true},
		{Path: inst.layout.MsvcWineRepo, Label: "msvc-wine repo", Remove: true},
	}, inst.progress(), inst.logger)
}

// removePrefix deletes the prefix the installation uses, which is $WINEPREFIX
// or ~/.wine when the config disables the destination prefix.
func (inst *installer) removePrefix(context.Context) error {
	prefix, err := inst.winePrefix()
	if err != nil {
		return err
	}
	return RemoveAll(inst.sys, []RemoveTarget{
		{Path: prefix, Label: "wine prefix", Remove: true},
	}, inst.progress(), inst.logger)
}

func (inst *installer) progress() io.Writer {
	if inst.verbose {
		return inst.out
	}
	return nil
}
