package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/clients"
	"github.com/conn-castle/linux-msvc/internal/config"
)

// recordingRunner records commands and returns the configured error for the
// first command whose line starts with a key of fail.
type recordingRunner struct {
	calls []clients.Command
	fail  map[string]int
}

func (r *recordingRunner) Run(_ context.Context, cmd clients.Command) (clients.Result, error) {
	r.calls = append(r.calls, cmd)
	line := cmd.Name + " " + strings.Join(cmd.Args, " ")
	for prefix, code := range r.fail {
		if strings.HasPrefix(line, prefix) {
			return clients.Result{Tool: cmd.Name, Args: cmd.Args, ExitCode: code}, &clients.ToolError{Tool: cmd.Name, Code: code}
		}
	}
	return clients.Result{Tool: cmd.Name, Args: cmd.Args}, nil
}

func (r *recordingRunner) lines() []string {
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, strings.TrimSpace(c.Name+" "+strings.Join(c.Args, " ")))
	}
	return out
}

// cliEnv isolates one CLI invocation: a temp config dir, a fake runner, and
// every host dependency present.
type cliEnv struct {
	configDir string
	dest      string
	runner    *recordingRunner
	env       map[string]string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	e := &cliEnv{
		configDir: filepath.Join(root, "config"),
		dest:      filepath.Join(root, "dest"),
		runner:    &recordingRunner{},
		env:       map[string]string{"PATH": "/usr/bin", "HOME": root, "SHELL": "/bin/zsh"},
	}
	e.env[config.EnvConfigDir] = e.configDir

	origLookPath, origGetenv, origEnviron := lookPath, getenv, environ
	origRunner, origInteractive := newRunner, isInteractive
	t.Cleanup(func() {
		lookPath, getenv, environ = origLookPath, origGetenv, origEnviron
		newRunner, isInteractive = origRunner, origInteractive
	})
	lookPath = func(file string) (string, error) {
		if filepath.IsAbs(file) {
			return file, nil
		}
		return "/usr/bin/" + file, nil
	}
	getenv = func(key string) string { return e.env[key] }
	environ = func() []string {
		out := make([]string, 0, len(e.env))
		for k, v := range e.env {
			out = append(out, k+"="+v)
		}
		return out
	}
	newRunner = func(*zap.Logger) clients.Runner { return e.runner }
	isInteractive = func() bool { return false }
	return e
}

func (e *cliEnv) run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"linux-msvc"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

// saveConfig writes an installed config for dest.
func (e *cliEnv) saveConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Destination = e.dest
	if err := config.Save(filepath.Join(e.configDir, "config.toml"), &cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	return &cfg
}

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}
}
