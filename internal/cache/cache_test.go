package cache

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFileName(t *testing.T) {
	tests := []struct {
		url     string
		name    string
		want    string
		wantErr bool
	}{
		{url: "https://example.com/a/b/tool.msi", want: "tool.msi"},
		{url: "https://example.com/a/b/tool.msi?x=1#frag", want: "tool.msi"},
		{url: "https://example.com/a/b/tool.msi", name: "renamed", want: "renamed"},
		{url: "https://example.com/", wantErr: true},
		{url: "https://example.com", wantErr: true},
		{url: "://bad", wantErr: true},
	}
	for _, tt := range tests {
		got, err := FileName(tt.url, tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.url)
			continue
		}
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}
}

func TestFetchDownloadsOnce(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK, "payload")
	dir := filepath.Join(t.TempDir(), "cache")
	var progress bytes.Buffer
	f := &Fetcher{Dir: dir, Client: srv.Client(), Progress: &progress}

	first, err := f.Fetch(context.Background(), srv.URL+"/files/winetricks", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "winetricks"), first)
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Contains(t, progress.String(), "Downloading winetricks")

	second, err := f.Fetch(context.Background(), srv.URL+"/files/winetricks", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestFetchExistingFileSkipsNetwork(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK, "fresh")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pwsh.msi"), []byte("stale"), 0o644))
	f := &Fetcher{Dir: dir, Client: srv.Client()}

	got, err := f.Fetch(context.Background(), srv.URL+"/other.msi", "pwsh.msi")
	require.NoError(t, err)
	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "stale", string(data))
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestFetchHTTPErrorLeavesNoFile(t *testing.T) {
	srv, _ := countingServer(t, http.StatusNotFound, "missing")
	dir := t.TempDir()
	f := &Fetcher{Dir: dir, Client: srv.Client()}

	_, err := f.Fetch(context.Background(), srv.URL+"/gone.msi", "")
	require.Error(t, err)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, srv.URL+"/gone.msi", fetchErr.URL)
	assert.Contains(t, err.Error(), "404")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "gone.msi") && !strings.HasSuffix(e.Name(), ".lock"),
			"unexpected leftover %s", e.Name())
	}
}

func TestFetchTruncatedBodyLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte("short"))
	}))
	t.Cleanup(srv.Close)
	dir := t.TempDir()
	f := &Fetcher{Dir: dir, Client: srv.Client()}

	_, err := f.Fetch(context.Background(), srv.URL+"/partial.bin", "")
	require.Error(t, err)
	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	_, statErr := os.Stat(filepath.Join(dir, "partial.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/file.bin"
	srv.Close()

	f := &Fetcher{Dir: t.TempDir(), Client: &http.Client{Timeout: time.Second}}
	_, err := f.Fetch(context.Background(), url, "")
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestFetchValidatesInput(t *testing.T) {
	f := &Fetcher{Dir: t.TempDir()}
	_, err := f.Fetch(context.Background(), "", "")
	assert.Error(t, err)

	f = &Fetcher{}
	_, err = f.Fetch(context.Background(), "https://example.com/x", "")
	assert.Error(t, err)
}

func TestFetchCancelledContext(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK, "payload")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &Fetcher{Dir: t.TempDir(), Client: srv.Client()}
	_, err := f.Fetch(ctx, srv.URL+"/x.bin", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}
