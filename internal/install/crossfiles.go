package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/linux-msvc/internal/messages"
	"github.com/conn-castle/linux-msvc/internal/templates"
)

// DiffMaxLines caps the diff shown for a changed cross file.
const DiffMaxLines = 40

// writeCrossFiles renders the meson cross files into <destination>/cross_files.
// In verbose mode a changed file is shown as a unified diff before it is replaced.
func (inst *installer) writeCrossFiles(context.Context) error {
	files, err := templates.CrossFiles(templates.CrossFileData{
		MsvcRoot: inst.layout.Msvc,
		MsvcBin:  inst.layout.MsvcBin,
	})
	if err != nil {
		return err
	}
	if err := inst.sys.MkdirAll(inst.layout.CrossFiles, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, inst.layout.CrossFiles, err)
	}
	for _, f := range files {
		dest := filepath.Join(inst.layout.CrossFiles, f.Name)
		existing, err := inst.sys.ReadFile(dest)
		switch {
		case err == nil && bytes.Equal(existing, f.Content):
			continue
		case err == nil:
			if inst.verbose {
				_, _ = fmt.Fprintf(inst.out, messages.InstallCrossFileChangedFmt, dest)
				_, _ = fmt.Fprint(inst.out, renderDiff(dest, string(existing), string(f.Content), DiffMaxLines))
			}
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf(messages.InstallFailedReadFmt, dest, err)
		}
		if err := inst.sys.WriteFileAtomic(dest, f.Content, 0o644); err != nil {
			return fmt.Errorf(messages.InstallFailedWriteFmt, dest, err)
		}
	}
	return nil
}

// renderDiff returns a unified diff of from and to, cut to maxLines lines.
func renderDiff(name string, from string, to string, maxLines int) string {
	diff := strings.TrimRight(udiff.Unified(name, name, from, to), "\n")
	if diff == "" {
		return ""
	}
	lines := strings.Split(diff, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], fmt.Sprintf(messages.InstallDiffTruncatedFmt, maxLines))
	}
	return strings.Join(lines, "\n") + "\n"
}
