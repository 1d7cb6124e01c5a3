// Package cache downloads files once into an installation's cache directory.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/conn-castle/linux-msvc/internal/logx"
	"github.com/conn-castle/linux-msvc/internal/messages"
)

var (
	osStat       = os.Stat
	osRename     = os.Rename
	osCreateTemp = os.CreateTemp
)

// DefaultClient is used when a Fetcher has no client of its own.
var DefaultClient = &http.Client{Timeout: 30 * time.Minute}

// FetchError reports a failed download of URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf(messages.CacheFetchErrorFmt, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher resolves cached files under Dir, downloading them on first use.
type Fetcher struct {
	// Dir is the cache directory, usually <destination>/cache.
	Dir string
	// Client performs downloads. Nil means DefaultClient.
	Client *http.Client
	Logger *zap.Logger
	// Progress receives a line per download. Nil discards it.
	Progress io.Writer
}

// FileName returns name when set, otherwise the trailing path segment of rawURL.
func FileName(rawURL string, name string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf(messages.CacheInvalidURLFmt, rawURL, err)
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" || base == "" {
		return "", fmt.Errorf(messages.CacheNoFileNameFmt, rawURL)
	}
	return base, nil
}

// Fetch returns the path of the cached copy of rawURL, downloading it when
// absent. A present file is returned without network access.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, name string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", errors.New(messages.CacheURLRequired)
	}
	if strings.TrimSpace(f.Dir) == "" {
		return "", errors.New(messages.CacheDirRequired)
	}
	fileName, err := FileName(rawURL, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return "", fmt.Errorf(messages.CacheCreateDirFmt, f.Dir, err)
	}
	logger := logx.OrNop(f.Logger)
	target := filepath.Join(f.Dir, fileName)

	present, err := exists(target)
	if err != nil {
		return "", err
	}
	if present {
		logger.Debug("cache hit", zap.String("file", target))
		return target, nil
	}

	err = withFileLock(target+".lock", func() error {
		// Another process may have finished the download while we waited.
		present, err := exists(target)
		if err != nil || present {
			return err
		}
		if f.Progress != nil {
			_, _ = fmt.Fprintf(f.Progress, messages.CacheDownloadingFmt, fileName)
		}
		logger.Debug("cache miss, downloading", zap.String("url", rawURL), zap.String("file", target))
		return f.download(ctx, rawURL, target)
	})
	if err != nil {
		return "", err
	}
	return target, nil
}

func exists(p string) (bool, error) {
	_, err := osStat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf(messages.CacheCheckCachedFileFmt, p, err)
}

// download writes rawURL to a temp file next to target and renames it into
// place only after the whole body arrived.
func (f *Fetcher) download(ctx context.Context, rawURL string, target string) error {
	tmp, err := osCreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.CacheCreateTempFileFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := f.get(ctx, rawURL, tmp); err != nil {
		_ = tmp.Close()
		return &FetchError{URL: rawURL, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.CacheSyncTempFileFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.CacheCloseTempFileFmt, err)
	}
	if err := osRename(tmpName, target); err != nil {
		return fmt.Errorf(messages.CacheMoveCachedFileFmt, err)
	}
	committed = true
	return nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string, dest io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf(messages.CacheCreateRequestFmt, err)
	}
	client := f.Client
	if client == nil {
		client = DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf(messages.CacheUnexpectedStatusFmt, resp.Status)
	}
	written, err := io.Copy(dest, resp.Body)
	if err != nil {
		return err
	}
	if resp.ContentLength >= 0 && written != resp.ContentLength {
		return fmt.Errorf(messages.CacheShortWriteFmt, written, resp.ContentLength)
	}
	return nil
}
