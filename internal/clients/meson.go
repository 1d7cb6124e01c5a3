package clients

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// CrossFileName is the cross file --add_cross_file passes to meson.
const CrossFileName = "x64.txt"

// Meson runs meson with args. When addCrossFile is set the x64 cross file is
// appended as --cross-file.
func (l *Launcher) Meson(ctx context.Context, addCrossFile bool, args []string) error {
	mesonArgs := append([]string(nil), args...)
	if addCrossFile {
		layout, err := l.Config.Layout()
		if err != nil {
			return err
		}
		crossFile := filepath.Join(layout.CrossFiles, CrossFileName)
		if _, err := os.Stat(crossFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf(messages.MesonCrossFileMissingFmt, crossFile)
			}
			return err
		}
		mesonArgs = append(mesonArgs, "--cross-file", crossFile)
	}
	return l.run(ctx, "meson", mesonArgs)
}
