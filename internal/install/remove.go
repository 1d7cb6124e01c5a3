package install

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/logx"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// RemoveTarget is one directory resource and whether remove deletes it.
type RemoveTarget struct {
	Path   string
	Label  string
	Remove bool
}

// RemoveOptions mirrors the remove command's flags.
type RemoveOptions struct {
	DeleteCache    bool
	KeepWinePrefix bool
	KeepMsvc       bool
	KeepCrossFiles bool
	DeleteMainRepo bool
	KeepVcpkg      bool
}

// RemoveTargets lists every resource of an installation with the decision
// opts makes for it. The cache and main repository are kept unless asked for.
func RemoveTargets(layout config.Layout, configDir string, opts RemoveOptions) []RemoveTarget {
	targets := []RemoveTarget{
		{Path: layout.Cache, Label: "cache", Remove: opts.DeleteCache},
		{Path: layout.WinePrefix, Label: "wine prefix", Remove: !opts.KeepWinePrefix},
		{Path: layout.Msvc, Label: "msvc install", Remove: !opts.KeepMsvc},
		{Path: layout.MsvcWineRepo, Label: "msvc-wine repo", Remove: !opts.KeepMsvc},
		{Path: layout.Vcpkg, Label: "vcpkg", Remove: !opts.KeepVcpkg},
		{Path: layout.CrossFiles, Label: "cross files", Remove: !opts.KeepCrossFiles},
		{Path: layout.MainRepo, Label: "main repo", Remove: opts.DeleteMainRepo},
	}
	if configDir != "" {
		targets = append(targets, RemoveTarget{Path: configDir, Label: "config", Remove: true})
	}
	return targets
}

// RemoveAll deletes every target marked Remove. Missing targets are skipped.
// A failure on one target does not stop the others; all failures are joined.
// progress receives a line per deleted directory when non-nil.
func RemoveAll(sys System, targets []RemoveTarget, progress io.Writer, logger *zap.Logger) error {
	if sys == nil {
		sys = RealSystem{}
	}
	logger = logx.OrNop(logger)
	var errs []error
	for _, t := range targets {
		if !t.Remove {
			logger.Debug("keeping resource", zap.String("label", t.Label), zap.String("path", t.Path))
			continue
		}
		if _, err := sys.Lstat(t.Path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			errs = append(errs, fmt.Errorf(messages.RemoveCheckFailedFmt, t.Label, t.Path, err))
			continue
		}
		if progress != nil {
			_, _ = fmt.Fprintf(progress, messages.RemoveTargetFmt, t.Label, t.Path)
		}
		if err := sys.RemoveAll(t.Path); err != nil {
			errs = append(errs, fmt.Errorf(messages.RemoveTargetFailedFmt, t.Label, t.Path, err))
		}
	}
	return errors.Join(errs...)
}
