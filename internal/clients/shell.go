package clients

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/linux-msvc/internal/messages"
)

// DefaultShell is used when neither --type nor $SHELL names a shell.
const DefaultShell = "bash"

// ShellName picks the shell to launch: the requested type, then $SHELL, then bash.
func ShellName(requested string, getenv func(string) string) string {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	if getenv != nil {
		if shell := strings.TrimSpace(getenv("SHELL")); shell != "" {
			return shell
		}
	}
	return DefaultShell
}

// Shell launches a login shell of the given name with the overlay applied.
// progress receives a line naming the shell when verbose.
func (l *Launcher) Shell(ctx context.Context, shell string, progress io.Writer) error {
	path, err := l.lookPath(shell)
	if err != nil {
		return fmt.Errorf(messages.ShellNotFoundFmt, shell)
	}
	if l.Verbose && progress != nil {
		_, _ = fmt.Fprintf(progress, messages.ShellLaunchingFmt, shell)
	}
	return l.run(ctx, path, []string{"-l"})
}
