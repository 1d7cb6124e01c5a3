package install

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/config"
)

func TestRunFullPipeline(t *testing.T) {
	f := newFixture(t)
	var out bytes.Buffer
	opts := f.options()
	opts.Out = &out

	report, err := Run(context.Background(), f.cfg, opts)
	require.NoError(t, err)

	l := f.layout
	winetricks := filepath.Join(l.Cache, "winetricks")
	msi := filepath.Join(l.Cache, "PowerShell-7.4.6-win-x64.msi")
	pwsh := filepath.Join(l.WinePrefix, clients.PwshRelativePath)
	want := []string{
		"git clone --quiet " + MainRepoURL + " " + l.MainRepo,
		"git clone --quiet " + MsvcWineRepoURL + " " + l.MsvcWineRepo,
		"python3 " + filepath.Join(l.MsvcWineRepo, "vsdownload.py") + " --dest " + l.Msvc + " --accept-license --cache " + l.Cache,
		filepath.Join(l.MsvcWineRepo, "install.sh") + " " + l.Msvc,
		"sh " + winetricks + " settings win10",
		"wineserver -k",
		"wineserver -p",
		"wine wineboot",
		"wine msiexec /i " + msi + " /qn",
		"wine " + pwsh + " -NoProfile -ExecutionPolicy Bypass -File " + filepath.Join(l.Cache, "chocolatey-install.ps1"),
		"git clone --quiet " + VcpkgRepoURL + " " + l.Vcpkg,
		"wine cmd /c " + filepath.Join(l.Vcpkg, "bootstrap-vcpkg.bat") + " -disableMetrics",
	}
	assert.Equal(t, want, f.runner.lines())
	assert.Len(t, report.Results, len(want))
	assert.Empty(t, report.Warnings)
	assert.Equal(t, l.Vcpkg, f.runner.calls[len(f.runner.calls)-1].Dir)

	for _, dir := range []string{l.Root, l.Msvc, l.Cache, l.CrossFiles} {
		assert.DirExists(t, dir)
	}
	assert.FileExists(t, filepath.Join(l.CrossFiles, "x64.txt"))
	assert.FileExists(t, filepath.Join(l.CrossFiles, "x86.txt"))

	saved, err := config.Load(f.paths.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, *f.cfg, *saved)

	assert.Contains(t, out.String(), "==> download msvc")
	assert.Contains(t, out.String(), "==> save config")
}

func TestRunEnvironment(t *testing.T) {
	f := newFixture(t)
	_, err := Run(context.Background(), f.cfg, f.options())
	require.NoError(t, err)

	env := f.runner.calls[0].Env
	prefix, _ := clients.GetEnv(env, "WINEPREFIX")
	assert.Equal(t, f.layout.WinePrefix, prefix)
	arch, _ := clients.GetEnv(env, "WINEARCH")
	assert.Equal(t, "win64", arch)
	debug, _ := clients.GetEnv(env, "WINEDEBUG")
	assert.Equal(t, "-all", debug)
	path, _ := clients.GetEnv(env, "PATH")
	assert.True(t, strings.HasPrefix(path, f.layout.MsvcBin+":"))
	assert.True(t, strings.HasSuffix(path, ":/usr/bin"))
}

func TestRunVerboseKeepsWineDebugAndCloneOutput(t *testing.T) {
	f := newFixture(t)
	opts := f.options()
	opts.Verbose = true
	_, err := Run(context.Background(), f.cfg, opts)
	require.NoError(t, err)

	_, ok := clients.GetEnv(f.runner.calls[0].Env, "WINEDEBUG")
	assert.False(t, ok)
	assert.Equal(t, "git clone "+MainRepoURL+" "+f.layout.MainRepo, f.runner.lines()[0])
}

func TestRunRefusesExistingConfig(t *testing.T) {
	f := newFixture(t)
	existing := config.Default()
	require.NoError(t, config.Save(f.paths.ConfigPath, &existing))

	_, err := Run(context.Background(), f.cfg, f.options())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyInstalled))
	assert.Empty(t, f.runner.calls)
	assert.NoDirExists(t, f.layout.Root)
}

func TestRunLicense(t *testing.T) {
	tests := []struct {
		name     string
		prompter Prompter
		wantErr  error
	}{
		{name: "no prompter", wantErr: ErrLicenseNotAccepted},
		{name: "empty prompt funcs", prompter: PromptFuncs{}, wantErr: ErrLicenseNotAccepted},
		{name: "declined", prompter: PromptFuncs{AcceptLicenseFunc: func() (bool, error) { return false, nil }}, wantErr: ErrLicenseNotAccepted},
		{name: "prompt error", prompter: PromptFuncs{AcceptLicenseFunc: func() (bool, error) { return false, errPrompt }}, wantErr: errPrompt},
		{name: "accepted", prompter: PromptFuncs{AcceptLicenseFunc: func() (bool, error) { return true, nil }}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			opts := f.options()
			opts.AcceptLicense = false
			opts.Prompter = tt.prompter
			_, err := Run(context.Background(), f.cfg, opts)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, f.runner.calls)
				return
			}
			require.NoError(t, err)
			assert.True(t, f.runner.has("python3 "))
		})
	}
}

var errPrompt = errors.New("prompt aborted")

func TestRunStopsAtFirstFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.failOn = failWhen("python3", 2)

	_, err := Run(context.Background(), f.cfg, f.options())
	require.Error(t, err)
	var toolErr *clients.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 2, toolErr.Code)
	assert.Contains(t, err.Error(), "download msvc")

	assert.False(t, f.runner.has(filepath.Join(f.layout.MsvcWineRepo, "install.sh")))
	assert.False(t, f.runner.has("wine"))
	assert.False(t, exists(f.paths.ConfigPath))
	assert.DirExists(t, f.layout.Msvc)
}

func TestRunAuxToolFailuresAreWarnings(t *testing.T) {
	f := newFixture(t)
	f.runner.failOn = failWhen("wine msiexec", 1)
	var warn bytes.Buffer
	opts := f.options()
	opts.WarnWriter = &warn

	report, err := Run(context.Background(), f.cfg, opts)
	require.NoError(t, err)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "PowerShell")
	assert.Contains(t, report.Warnings[1], "Chocolatey")
	assert.Contains(t, report.Warnings[1], "skipped because PowerShell is not installed")
	assert.Contains(t, warn.String(), "Warning: could not install PowerShell")
	assert.True(t, f.runner.has("wine cmd /c"))
	assert.True(t, exists(f.paths.ConfigPath))
}

func TestRunAuxFetchFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	f.fetcher.errOn = map[string]error{ChocolateyInstallerURL: errors.New("offline")}

	report, err := Run(context.Background(), f.cfg, f.options())
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "Chocolatey")
	assert.Contains(t, report.Warnings[0], "offline")
}

func TestRunWinetricksFetchFailureStops(t *testing.T) {
	f := newFixture(t)
	f.fetcher.errOn = map[string]error{WinetricksURL: errors.New("offline")}

	_, err := Run(context.Background(), f.cfg, f.options())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configure wine")
	assert.False(t, f.runner.has("wineserver"))
}

func TestRunToleratesWineserverKillFailure(t *testing.T) {
	f := newFixture(t)
	f.runner.failOn = failWhen("wineserver -k", 1)
	_, err := Run(context.Background(), f.cfg, f.options())
	require.NoError(t, err)
	assert.True(t, f.runner.has("wine wineboot"))
}

func TestRunSkipsExistingCheckouts(t *testing.T) {
	f := newFixture(t)
	mkdirs(t,
		filepath.Join(f.layout.MainRepo, ".git"),
		filepath.Join(f.layout.MsvcWineRepo, ".git"),
		filepath.Join(f.layout.Vcpkg, ".git"),
	)
	_, err := Run(context.Background(), f.cfg, f.options())
	require.NoError(t, err)
	assert.False(t, f.runner.has("git clone"))
}

func TestRunHonorsConfigFlags(t *testing.T) {
	f := newFixture(t)
	f.cfg.UseCache = false
	f.cfg.UseSystemWinetricks = true
	f.cfg.CopyCrossFiles = false
	f.cfg.CreateConfigFile = false
	opts := f.options()
	opts.SkipAuxTools = true

	_, err := Run(context.Background(), f.cfg, opts)
	require.NoError(t, err)

	for _, line := range f.runner.lines() {
		assert.NotContains(t, line, "--cache")
	}
	assert.True(t, f.runner.has("winetricks settings win10"))
	assert.Empty(t, f.fetcher.urls)
	assert.False(t, f.runner.has("wine msiexec"))
	assert.NoDirExists(t, f.layout.CrossFiles)
	assert.False(t, exists(f.paths.ConfigPath))
}

func TestRunNoWinePrefixKeepsCallerPrefix(t *testing.T) {
	f := newFixture(t)
	f.cfg.NoWinePrefix = true
	opts := f.options()
	opts.Env = append(opts.Env, "WINEPREFIX=/home/u/custom")

	_, err := Run(context.Background(), f.cfg, opts)
	require.NoError(t, err)
	prefix, _ := clients.GetEnv(f.runner.calls[0].Env, "WINEPREFIX")
	assert.Equal(t, "/home/u/custom", prefix)
	assert.True(t, f.runner.has("wine "+filepath.Join("/home/u/custom", clients.PwshRelativePath)))
}

func TestRunCancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, f.cfg, f.options())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, f.runner.calls)
}

func TestRunValidatesInputs(t *testing.T) {
	f := newFixture(t)
	_, err := Run(context.Background(), nil, f.options())
	assert.Error(t, err)

	opts := f.options()
	opts.Runner = nil
	_, err = Run(context.Background(), f.cfg, opts)
	assert.Error(t, err)

	empty := config.Default()
	empty.Destination = ""
	_, err = Run(context.Background(), &empty, f.options())
	assert.Error(t, err)
}

func TestRunCreateDirsFailure(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.layout.Root), 0o755))
	require.NoError(t, os.WriteFile(f.layout.Root, []byte("file"), 0o644))

	_, err := Run(context.Background(), f.cfg, f.options())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create directories")
	assert.Empty(t, f.runner.calls)
}
