package clients

import "path/filepath"

var (
	filepathAbs          = filepath.Abs
	filepathEvalSymlinks = filepath.EvalSymlinks
)

// SamePath reports whether two paths name the same location after making
// them absolute and following symlinks.
func SamePath(a, b string) bool {
	return ResolvePath(a) == ResolvePath(b)
}

// ResolvePath returns the absolute, symlink-resolved form of path, or the
// best form available when resolution fails.
func ResolvePath(path string) string {
	abs, err := filepathAbs(path)
	if err != nil {
		return path
	}
	if eval, err := filepathEvalSymlinks(abs); err == nil {
		return eval
	}
	return abs
}
