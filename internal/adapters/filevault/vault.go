package filevault

// Package filevault persists sessions to local files. The durable location
// lives under the user config dir and survives reboots; the scoped location
// lives under the OS temp dir, namespaced to the login shell, and goes away
// with it.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	domainauth "github.com/healteex/trackctl/internal/domain/auth"
)

const (
	durableFileName  = "session.json"
	scopedFilePrefix = "trackctl-session-"
	fileMode         = 0o600
	dirMode          = 0o700
)

// Vault is a file-backed session vault.
type Vault struct {
	durablePath string
	scopedPath  string
}

// Options configures a Vault.
type Options struct {
	// Dir overrides the durable directory. Defaults to
	// <user config dir>/trackctl.
	Dir string

	// ScopedDir overrides the scoped directory. Defaults to the OS temp dir.
	ScopedDir string
}

// New builds a file vault with resolved storage paths.
func New(opts Options) (*Vault, error) {
	dir := opts.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "trackctl")
	}

	scopedDir := opts.ScopedDir
	if scopedDir == "" {
		scopedDir = os.TempDir()
	}

	// Scoped files are keyed by the login shell so parallel terminals on a
	// shared machine do not read each other's unremembered sessions.
	scopedName := scopedFilePrefix + strconv.Itoa(os.Getppid()) + ".json"

	return &Vault{
		durablePath: filepath.Join(dir, durableFileName),
		scopedPath:  filepath.Join(scopedDir, scopedName),
	}, nil
}

// ReadDurable returns the session from the durable file, or false when absent.
func (v *Vault) ReadDurable(_ context.Context) (domainauth.Session, bool, error) {
	return readSessionFile(v.durablePath)
}

// ReadScoped returns the session from the scoped file, or false when absent.
func (v *Vault) ReadScoped(_ context.Context) (domainauth.Session, bool, error) {
	return readSessionFile(v.scopedPath)
}

// WriteDurable stores the session durably and clears the scoped location.
func (v *Vault) WriteDurable(_ context.Context, sess domainauth.Session) error {
	if err := writeSessionFile(v.durablePath, sess); err != nil {
		return err
	}
	return removeIfExists(v.scopedPath)
}

// WriteScoped stores the session in the scoped location and clears the
// durable one.
func (v *Vault) WriteScoped(_ context.Context, sess domainauth.Session) error {
	if err := writeSessionFile(v.scopedPath, sess); err != nil {
		return err
	}
	return removeIfExists(v.durablePath)
}

// Clear removes the session from both locations.
func (v *Vault) Clear(_ context.Context) error {
	return errors.Join(
		removeIfExists(v.durablePath),
		removeIfExists(v.scopedPath),
	)
}

// DurablePath returns the durable file location, for diagnostics.
func (v *Vault) DurablePath() string { return v.durablePath }

// ScopedPath returns the scoped file location, for diagnostics.
func (v *Vault) ScopedPath() string { return v.scopedPath }

func readSessionFile(path string) (domainauth.Session, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domainauth.Session{}, false, nil
		}
		return domainauth.Session{}, false, fmt.Errorf("read session file: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal(raw, &sess); unmarshalErr != nil {
		// A corrupt file reads as absent so startup degrades to anonymous.
		return domainauth.Session{}, false, nil
	}
	return sess, true, nil
}

func writeSessionFile(path string, sess domainauth.Session) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// Write-then-rename keeps a crashed write from leaving a torn file.
	tmp := path + ".tmp"
	if writeErr := os.WriteFile(tmp, data, fileMode); writeErr != nil {
		return fmt.Errorf("write session file: %w", writeErr)
	}
	if renameErr := os.Rename(tmp, path); renameErr != nil {
		return fmt.Errorf("commit session file: %w", renameErr)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
