package clients

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mkdirAndLink(real, link string) error {
	if err := os.MkdirAll(real, 0o755); err != nil {
		return err
	}
	return os.Symlink(real, link)
}

func TestResolvePathFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	link := filepath.Join(dir, "link")
	if err := mkdirAndLink(real, link); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if ResolvePath(link) != ResolvePath(real) {
		t.Fatalf("expected link and target to resolve to the same path")
	}
}

func TestResolvePathMissingIsAbsolute(t *testing.T) {
	resolved := ResolvePath("relative/missing")
	if !filepath.IsAbs(resolved) {
		t.Fatalf("expected absolute path, got %q", resolved)
	}
}

func TestResolvePathAbsErrorReturnsOriginalPath(t *testing.T) {
	origAbs, origEval := filepathAbs, filepathEvalSymlinks
	t.Cleanup(func() {
		filepathAbs, filepathEvalSymlinks = origAbs, origEval
	})
	filepathAbs = func(string) (string, error) { return "", errors.New("abs failed") }
	filepathEvalSymlinks = func(path string) (string, error) { return "", errors.New("eval failed") }

	if got := ResolvePath("relative-path"); got != "relative-path" {
		t.Fatalf("expected original path on Abs error, got %q", got)
	}
}

func TestSamePath(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	if !SamePath(a, a+string(os.PathSeparator)) {
		t.Fatalf("expected trailing separator to match")
	}
	if SamePath(a, b) {
		t.Fatalf("expected different paths to not match")
	}
}
