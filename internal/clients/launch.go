package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/config"
	"github.com/conn-castle/linux-msvc/internal/logx"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// PwshRelativePath locates pwsh.exe inside a wine prefix.
var PwshRelativePath = filepath.Join("drive_c", "Program Files", "PowerShell", "7", "pwsh.exe")

// Launcher runs wrapped tools with the installation's environment and the
// caller's stdio.
type Launcher struct {
	Config  *config.Config
	Runner  Runner
	Verbose bool
	// Extra holds .env entries that fill variables the environment lacks.
	Extra map[string]string
	// Environ returns the base environment; nil means os.Environ.
	Environ func() []string
	// LookPath resolves executables; nil means exec.LookPath.
	LookPath func(string) (string, error)
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *zap.Logger
}

// Env returns the environment wrapped tools run with.
func (l *Launcher) Env() ([]string, error) {
	overlay, err := ForConfig(l.Config, l.Verbose)
	if err != nil {
		return nil, err
	}
	environ := l.Environ
	if environ == nil {
		environ = os.Environ
	}
	env := overlay.Apply(environ())
	return FillMissing(env, l.Extra), nil
}

// Cl runs the MSVC compiler wrapper with args.
func (l *Launcher) Cl(ctx context.Context, args []string) error {
	return l.runMsvcTool(ctx, "cl", args)
}

// Link runs the MSVC linker wrapper with args.
func (l *Launcher) Link(ctx context.Context, args []string) error {
	return l.runMsvcTool(ctx, "link", args)
}

// Wine runs wine with args.
func (l *Launcher) Wine(ctx context.Context, args []string) error {
	return l.run(ctx, "wine", args)
}

// Pwsh runs PowerShell inside the wine prefix with args.
func (l *Launcher) Pwsh(ctx context.Context, args []string) error {
	env, err := l.Env()
	if err != nil {
		return err
	}
	prefix, ok := GetEnv(env, EnvWinePrefix)
	if !ok || prefix == "" {
		prefix, err = l.Config.WinePrefix(func(key string) string {
			value, _ := GetEnv(env, key)
			return value
		})
		if err != nil {
			return fmt.Errorf(messages.WrapperPrefixMissingFmt, err)
		}
	}
	pwsh := filepath.Join(prefix, PwshRelativePath)
	if err := requireFile(pwsh, "pwsh"); err != nil {
		return err
	}
	return l.runWithEnv(ctx, env, "wine", append([]string{pwsh}, args...))
}

func (l *Launcher) runMsvcTool(ctx context.Context, name string, args []string) error {
	layout, err := l.Config.Layout()
	if err != nil {
		return err
	}
	tool := filepath.Join(layout.MsvcBin, name)
	if err := requireFile(tool, name); err != nil {
		return err
	}
	return l.run(ctx, tool, args)
}

func (l *Launcher) run(ctx context.Context, name string, args []string) error {
	env, err := l.Env()
	if err != nil {
		return err
	}
	return l.runWithEnv(ctx, env, name, args)
}

func (l *Launcher) runWithEnv(ctx context.Context, env []string, name string, args []string) error {
	logx.OrNop(l.Logger).Debug("launching wrapped tool", zap.String("tool", name), zap.Strings("args", args))
	_, err := l.Runner.Run(ctx, Command{
		Name:   name,
		Args:   args,
		Env:    env,
		Stdin:  l.Stdin,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	})
	return err
}

func (l *Launcher) lookPath(file string) (string, error) {
	if l.LookPath != nil {
		return l.LookPath(file)
	}
	return exec.LookPath(file)
}

func requireFile(path string, label string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(messages.WrapperToolMissingFmt, label, path)
		}
		return err
	}
	return nil
}
