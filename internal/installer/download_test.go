package installer

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownloadFileWritesFullBody(t *testing.T) {
	body := bytes.Repeat([]byte("xray-core archive bytes "), 1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "xray-core.zip")
	ok := downloadFile(srv.Client(), srv.URL+"/archive.zip", dest)
	require.True(t, ok)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, body, got, "destination must hold the response body byte for byte")
}

func TestDownloadFileTruncatesPreviousContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "new")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "xray-core.zip")
	require.NoError(t, os.WriteFile(dest, []byte("a much longer stale archive"), 0644))

	require.True(t, downloadFile(srv.Client(), srv.URL, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}

func TestDownloadFileMidStreamFailure(t *testing.T) {
	// Promise more bytes than are sent, then drop the connection: the client
	// sees an unexpected EOF mid-stream.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(4096))
		_, _ = w.Write([]byte("partial"))
		w.(http.Flusher).Flush()
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "xray-core.zip")
	ok := downloadFile(srv.Client(), srv.URL, dest)
	require.False(t, ok)

	// The destination exists but holds only what arrived before the failure.
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "partial", string(got))
}

func TestDownloadFileTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	dest := filepath.Join(t.TempDir(), "xray-core.zip")
	require.False(t, downloadFile(http.DefaultClient, url, dest))

	// An empty destination file is left behind.
	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}
