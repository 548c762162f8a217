package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum mismatch")
)

const checksumsName = "checksums.txt"

// release identifies one published version and where its files live.
type release struct {
	tag  string // tagged version, e.g. v1.2.3
	base string // download base, {base}/{tag}/{file}
}

func (c *Checker) releaseFor(tag string) release {
	base := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag)
	return release{tag: tag, base: base}
}

func (r release) fileURL(name string) string {
	return r.base + "/" + name
}

// assetFor maps a platform onto the release archive name. Archives
// follow the goreleaser default layout: name_version_os_arch, tar.gz
// everywhere except Windows, which ships a zip.
func assetFor(goos, goarch, tag string) string {
	ext := "tar.gz"
	if goos == "windows" {
		ext = "zip"
	}
	return fmt.Sprintf("learnify_%s_%s_%s.%s", strings.TrimPrefix(tag, "v"), goos, goarch, ext)
}

// Update fetches the latest release and swaps the running binary for
// it. progress receives human-readable status lines as the stages
// complete. Version tags that do not parse as semver (a "(devel)"
// build, a source checkout) refuse to update.
func (c *Checker) Update(ctx context.Context, currentVersion string, progress func(string)) error {
	if !semver.IsValid(canonicalVersion(currentVersion)) {
		return ErrDevBuild
	}

	progress("Checking for a newer release...")
	res, err := c.Check(ctx, &CheckInput{Version: currentVersion})
	if err != nil {
		return fmt.Errorf("check latest release: %w", err)
	}
	if !res.UpdateAvailable {
		return ErrAlreadyLatest
	}

	rel := c.releaseFor(res.LatestVersion)
	asset := assetFor(runtime.GOOS, runtime.GOARCH, rel.tag)

	progress("Fetching checksums for " + rel.tag + "...")
	sums, err := c.fetchChecksums(ctx, rel)
	if err != nil {
		return err
	}
	want, ok := sums[asset]
	if !ok {
		return fmt.Errorf("%s not listed in %s for %s", asset, checksumsName, rel.tag)
	}

	progress("Downloading " + asset + "...")
	archive, err := c.downloadVerified(ctx, rel.fileURL(asset), want)
	if err != nil {
		return err
	}

	progress("Unpacking...")
	bin, err := extractExecutable(archive, asset)
	if err != nil {
		return err
	}

	progress("Installing...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate running binary: %w", err)
	}
	if err := replaceExecutable(target, bin); err != nil {
		return err
	}

	progress("Updated to " + rel.tag)
	return nil
}

// fetchChecksums downloads and parses the release checksum manifest:
// one "hexdigest  filename" pair per line.
func (c *Checker) fetchChecksums(ctx context.Context, rel release) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rel.fileURL(checksumsName), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", checksumsName, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, checksumsName)
	}

	sums := make(map[string]string)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 {
			sums[fields[1]] = fields[0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", checksumsName, err)
	}
	return sums, nil
}

// downloadVerified fetches url, hashing the stream as it arrives, and
// rejects the result when the digest disagrees with the manifest.
func (c *Checker) downloadVerified(ctx context.Context, url, wantHex string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download archive: HTTP %d", resp.StatusCode)
	}

	digest := sha256.New()
	data, err := io.ReadAll(io.TeeReader(resp.Body, digest))
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	if got := hex.EncodeToString(digest.Sum(nil)); got != wantHex {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrChecksum, wantHex, got)
	}
	return data, nil
}

// extractExecutable pulls the learnify binary out of a release archive.
func extractExecutable(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return executableFromZip(archive, "learnify.exe")
	}
	return executableFromTarGz(archive, "learnify")
}

func executableFromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s missing from archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && hdr.Name == name {
			return io.ReadAll(tr)
		}
	}
}

func executableFromZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s missing from archive", name)
}

// replaceExecutable swaps the file at target for bin, keeping the
// original permissions. The new binary is staged next to the target so
// the final rename stays on one filesystem.
func replaceExecutable(target string, bin []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat running binary: %w", err)
	}

	staged := target + ".new"
	if err := os.WriteFile(staged, bin, 0o600); err != nil {
		return fmt.Errorf("stage new binary: %w", err)
	}
	if err := os.Chmod(staged, info.Mode().Perm()); err != nil {
		_ = os.Remove(staged)
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(staged, target); err != nil {
		_ = os.Remove(staged)
		return fmt.Errorf("install new binary: %w", err)
	}
	return nil
}
