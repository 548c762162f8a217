package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name   string
		goos   string
		goarch string
		tag    string
		want   string
	}{
		{"linux amd64", "linux", "amd64", "v1.2.3", "learnify_1.2.3_linux_amd64.tar.gz"},
		{"darwin arm64", "darwin", "arm64", "v1.2.3", "learnify_1.2.3_darwin_arm64.tar.gz"},
		{"windows gets a zip", "windows", "amd64", "v1.2.3", "learnify_1.2.3_windows_amd64.zip"},
		{"tag without v prefix", "linux", "amd64", "2.0.0", "learnify_2.0.0_linux_amd64.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assetFor(tt.goos, tt.goarch, tt.tag))
		})
	}
}

func TestExtractExecutable(t *testing.T) {
	content := []byte("#!/bin/sh\necho ok")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extractExecutable(tarGzWith(t, "learnify", content), "learnify_1.0.0_linux_amd64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary absent", func(t *testing.T) {
		_, err := extractExecutable(tarGzWith(t, "README.md", content), "learnify_1.0.0_linux_amd64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing from archive")
	})
}

func TestReplaceExecutablePreservesMode(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "learnify")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	require.NoError(t, replaceExecutable(target, []byte("new")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	_, err = os.Stat(target + ".new")
	assert.True(t, os.IsNotExist(err), "staging file must not be left behind")
}

// releaseServer serves a latest-release pointer at v2.0.0 plus its
// archive and checksum manifest for the current platform.
func releaseServer(t *testing.T, archive []byte, sumLine string) *httptest.Server {
	t.Helper()
	asset := assetFor(runtime.GOOS, runtime.GOARCH, "v2.0.0")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/nbhznb/learnify/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/nbhznb/learnify/releases/download/v2.0.0/" + checksumsName:
			_, _ = w.Write([]byte(sumLine))
		case "/nbhznb/learnify/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdateReplacesBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("release archive is a zip on windows")
	}
	content := []byte("v2 binary")
	binName := "learnify"
	archive := tarGzWith(t, binName, content)
	sum := sha256.Sum256(archive)
	asset := assetFor(runtime.GOOS, runtime.GOARCH, "v2.0.0")

	dir := t.TempDir()
	execPath := filepath.Join(dir, binName)
	require.NoError(t, os.WriteFile(execPath, []byte("v1 binary"), 0o755))

	server := releaseServer(t, archive, hex.EncodeToString(sum[:])+"  "+asset+"\n")
	checker := NewChecker(
		WithBaseURL(server.URL),
		WithDownloadBaseURL(server.URL),
		withExecPath(func() (string, error) { return execPath, nil }),
	)

	var lines []string
	err := checker.Update(context.Background(), "v1.0.0", func(msg string) {
		lines = append(lines, msg)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "v2.0.0")
}

func TestUpdateRejectsTamperedArchive(t *testing.T) {
	archive := tarGzWith(t, "learnify", []byte("v2 binary"))
	asset := assetFor(runtime.GOOS, runtime.GOARCH, "v2.0.0")
	wrong := "0000000000000000000000000000000000000000000000000000000000000000"

	server := releaseServer(t, archive, wrong+"  "+asset+"\n")
	checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

	err := checker.Update(context.Background(), "v1.0.0", func(string) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUpdateRefusesUnlistedAsset(t *testing.T) {
	archive := tarGzWith(t, "learnify", []byte("v2 binary"))

	server := releaseServer(t, archive, "")
	checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

	err := checker.Update(context.Background(), "v1.0.0", func(string) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), checksumsName)
}

func TestUpdateDevBuild(t *testing.T) {
	checker := NewChecker()
	err := checker.Update(context.Background(), "(devel)", func(string) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateAlreadyLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	err := checker.Update(context.Background(), "v1.0.0", func(string) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

// tarGzWith builds a one-file gzipped tarball.
func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0o755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
