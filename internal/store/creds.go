package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbhznb/learnify/internal/auth"
)

// CredsFile stores saved sign-in credentials as a JSON file under the
// user's config directory, mode 0600 since it holds a bearer token.
type CredsFile struct {
	path string
}

// NewCredsFile builds a CredsFile at an explicit path.
func NewCredsFile(path string) *CredsFile {
	return &CredsFile{path: path}
}

// DefaultCredsPath resolves the credentials file location:
// 1. $XDG_CONFIG_HOME/learnify/credentials.json
// 2. ~/.config/learnify/credentials.json
func DefaultCredsPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "learnify", "credentials.json"), nil
}

// SaveCredentials writes the credentials, creating the directory as
// needed.
func (f *CredsFile) SaveCredentials(c auth.Credentials) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	// Write-then-rename so a crash never leaves a half-written token.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("install credentials: %w", err)
	}
	return nil
}

// LoadCredentials reads stored credentials. A missing file is not an
// error; ok reports whether anything was found.
func (f *CredsFile) LoadCredentials() (auth.Credentials, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return auth.Credentials{}, false, nil
	}
	if err != nil {
		return auth.Credentials{}, false, fmt.Errorf("read credentials: %w", err)
	}

	var c auth.Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		// A corrupt file is treated as signed out rather than wedging
		// the app; the next sign-in overwrites it.
		return auth.Credentials{}, false, nil
	}
	return c, true, nil
}

// DeleteCredentials removes the stored file. Deleting a file that is
// already gone succeeds.
func (f *CredsFile) DeleteCredentials() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
