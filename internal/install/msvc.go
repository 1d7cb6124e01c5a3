package install

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// Upstream repositories cloned into the destination.
const (
	MainRepoURL     = "https://github.com/noah1510/linux-msvc"
	MsvcWineRepoURL = "https://github.com/mstorsjo/msvc-wine/"
)

type repo struct {
	url string
	dir string
}

func (inst *installer) repos() []repo {
	return []repo{
		{url: MainRepoURL, dir: inst.layout.MainRepo},
		{url: MsvcWineRepoURL, dir: inst.layout.MsvcWineRepo},
	}
}

// cloneRepos clones each repository whose target does not already hold a checkout.
func (inst *installer) cloneRepos(ctx context.Context) error {
	for _, r := range inst.repos() {
		if err := inst.cloneIfMissing(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (inst *installer) cloneIfMissing(ctx context.Context, r repo) error {
	checkout, err := inst.exists(filepath.Join(r.dir, ".git"))
	if err != nil {
		return err
	}
	if checkout {
		_, _ = fmt.Fprintf(inst.out, messages.InstallSkipCloneFmt, r.dir)
		return nil
	}
	args := []string{"clone"}
	if !inst.verbose {
		args = append(args, "--quiet")
	}
	return inst.run(ctx, "", "git", append(args, r.url, r.dir)...)
}

// pullRepos fast-forwards every existing checkout and clones missing ones.
func (inst *installer) pullRepos(ctx context.Context) error {
	for _, r := range inst.repos() {
		checkout, err := inst.exists(filepath.Join(r.dir, ".git"))
		if err != nil {
			return err
		}
		if !checkout {
			if err := inst.cloneIfMissing(ctx, r); err != nil {
				return err
			}
			continue
		}
		if err := inst.run(ctx, r.dir, "git", "pull", "--ff-only"); err != nil {
			return err
		}
	}
	return nil
}

// downloadMsvc runs msvc-wine's downloader into <destination>/msvc.
func (inst *installer) downloadMsvc(ctx context.Context) error {
	args := []string{
		filepath.Join(inst.layout.MsvcWineRepo, "vsdownload.py"),
		"--dest", inst.layout.Msvc,
		"--accept-license",
	}
	if inst.cfg.UseCache {
		args = append(args, "--cache", inst.layout.Cache)
	}
	return inst.run(ctx, "", "python3", args...)
}

// installMsvc runs msvc-wine's install script, which writes the cl/link
// wrappers into msvc/bin.
func (inst *installer) installMsvc(ctx context.Context) error {
	return inst.run(ctx, "", filepath.Join(inst.layout.MsvcWineRepo, "install.sh"), inst.layout.Msvc)
}
