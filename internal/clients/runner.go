package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/logx"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

// stderrTailBytes bounds the stderr kept for error reports.
const stderrTailBytes = 4096

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env is the complete environment; nil inherits the process environment.
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a finished invocation.
type Result struct {
	Tool     string
	Args     []string
	ExitCode int
	// Stderr holds the tail of the process's standard error.
	Stderr string
}

// ToolError reports that an external tool exited with a non-zero status.
type ToolError struct {
	Tool   string
	Code   int
	Stderr string
}

func (e *ToolError) Error() string {
	if tail := strings.TrimSpace(e.Stderr); tail != "" {
		return fmt.Sprintf(messages.ToolErrorStderrFmt, e.Tool, e.Code, lastLine(tail))
	}
	return fmt.Sprintf(messages.ToolErrorFmt, e.Tool, e.Code)
}

// Runner runs external processes and waits for them to exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Logger *zap.Logger
}

var _ Runner = ExecRunner{}

// Run starts cmd and blocks until it exits. A non-zero exit returns the
// Result together with a *ToolError.
func (r ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Result{}, errors.New(messages.RunnerCommandRequired)
	}
	logx.OrNop(r.Logger).Debug("exec",
		zap.String("tool", c.Name),
		zap.Strings("args", c.Args),
		zap.String("dir", c.Dir),
	)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	tail := &tailBuffer{max: stderrTailBytes}
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(tail, c.Stderr)
	} else {
		cmd.Stderr = tail
	}

	err := cmd.Run()
	result := Result{Tool: c.Name, Args: append([]string(nil), c.Args...), Stderr: tail.String()}
	if err == nil {
		return result, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, &ToolError{Tool: c.Name, Code: result.ExitCode, Stderr: result.Stderr}
	}
	result.ExitCode = -1
	return result, fmt.Errorf(messages.RunnerStartFailedFmt, c.Name, err)
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

func lastLine(s string) string {
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
