package install

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/config"
)

// fakeRunner records commands and fails those failOn selects.
type fakeRunner struct {
	calls  []clients.Command
	failOn func(cmd clients.Command) error
}

func (r *fakeRunner) Run(_ context.Context, cmd clients.Command) (clients.Result, error) {
	r.calls = append(r.calls, cmd)
	result := clients.Result{Tool: cmd.Name, Args: cmd.Args}
	if r.failOn != nil {
		if err := r.failOn(cmd); err != nil {
			if toolErr, ok := err.(*clients.ToolError); ok {
				result.ExitCode = toolErr.Code
			}
			return result, err
		}
	}
	return result, nil
}

// lines renders each call as "name arg1 arg2 ...".
func (r *fakeRunner) lines() []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, strings.TrimSpace(c.Name+" "+strings.Join(c.Args, " ")))
	}
	return out
}

func (r *fakeRunner) has(prefix string) bool {
	for _, line := range r.lines() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func failWhen(prefix string, code int) func(cmd clients.Command) error {
	return func(cmd clients.Command) error {
		line := cmd.Name + " " + strings.Join(cmd.Args, " ")
		if strings.HasPrefix(line, prefix) {
			return &clients.ToolError{Tool: cmd.Name, Code: code}
		}
		return nil
	}
}

// fakeFetcher returns paths inside dir without network access.
type fakeFetcher struct {
	dir   string
	urls  []string
	errOn map[string]error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string, name string) (string, error) {
	f.urls = append(f.urls, url)
	if err := f.errOn[url]; err != nil {
		return "", err
	}
	if name == "" {
		name = filepath.Base(url)
	}
	return filepath.Join(f.dir, name), nil
}

type fixture struct {
	cfg     *config.Config
	layout  config.Layout
	paths   config.Paths
	runner  *fakeRunner
	fetcher *fakeFetcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Destination = filepath.Join(root, "dest")
	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return &fixture{
		cfg:     &cfg,
		layout:  layout,
		paths:   config.PathsFor(filepath.Join(root, "config")),
		runner:  &fakeRunner{},
		fetcher: &fakeFetcher{dir: layout.Cache},
	}
}

func (f *fixture) options() Options {
	return Options{
		Paths:         f.paths,
		Runner:        f.runner,
		Fetcher:       f.fetcher,
		AcceptLicense: true,
		Env:           []string{"PATH=/usr/bin", "HOME=/home/u"},
		WarnWriter:    &strings.Builder{},
	}
}

func mkdirs(t *testing.T, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
