package install

import (
	"context"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Update fast-forwards the cloned repositories and re-runs the MSVC download
// and install into the existing destination.
func Update(ctx context.Context, cfg *config.Config, opts Options) (Report, error) {
	inst, err := newInstaller(cfg, opts)
	if err != nil {
		return Report{}, err
	}
	steps := []step{
		{name: messages.InstallStepCreateDirs, run: inst.createDirs},
		{name: messages.InstallStepPullRepos, run: inst.pullRepos},
		{name: messages.InstallStepDownloadMsvc, run: inst.downloadMsvc},
		{name: messages.InstallStepInstallMsvc, run: inst.installMsvc},
	}
	if cfg.CopyCrossFiles {
		steps = append(steps, step{name: messages.InstallStepCrossFiles, run: inst.writeCrossFiles})
	}
	err = inst.runSteps(ctx, steps)
	return inst.report, err
}
