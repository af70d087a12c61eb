package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/jesspatton/lazyfiles/seq"
)

// Store mediates access to the settings file. Reads go straight to
// disk per snapshot; writes rewrite the file atomically. Flag
// overrides (from command-line switches) apply on top of whatever the
// file says, for the lifetime of the Store.
type Store struct {
	mu   sync.Mutex
	path string

	overrideSingleFile  *bool
	overrideSingleChild *bool
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// OverrideFlatten pins the flattening flags for this session without
// writing them to the file. A nil pointer leaves the file value in
// charge.
func (s *Store) OverrideFlatten(singleFile, singleChild *bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrideSingleFile = singleFile
	s.overrideSingleChild = singleChild
}

// Snapshot re-reads the settings file and returns the per-call view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Load(s.path).snapshot()
	if s.overrideSingleFile != nil {
		snap.FlattenSingleFile = *s.overrideSingleFile
	}
	if s.overrideSingleChild != nil {
		snap.FlattenSingleChild = *s.overrideSingleChild
	}
	return snap
}

// Hide adds a workspace-relative path to the hidden set. Hiding an
// already-hidden or empty path is a no-op.
func (s *Store) Hide(rel string) error {
	if rel == "" || rel == "." {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := Load(s.path)
	hidden := seq.From(cfg.Hidden).Union(seq.Of(rel), nil).ToSlice()
	if len(hidden) == len(cfg.Hidden) {
		return nil
	}
	cfg.Hidden = hidden
	return s.save(cfg)
}

// Unhide removes a path from the hidden set; unknown paths no-op.
func (s *Store) Unhide(rel string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := Load(s.path)
	hidden := seq.From(cfg.Hidden).Except(seq.Of(rel), nil).ToSlice()
	if len(hidden) == len(cfg.Hidden) {
		return nil
	}
	cfg.Hidden = hidden
	return s.save(cfg)
}

// UnhideAll clears the hidden set and reports how many entries it
// removed, so the caller can tell "nothing to unhide" apart from a
// real reset.
func (s *Store) UnhideAll() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := Load(s.path)
	n := len(cfg.Hidden)
	if n == 0 {
		return 0, nil
	}
	cfg.Hidden = nil
	return n, s.save(cfg)
}

// HiddenPaths returns the currently hidden paths, sorted.
func (s *Store) HiddenPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	hidden := slices.Clone(Load(s.path).Hidden)
	slices.Sort(hidden)
	return hidden
}

// save writes the config through a temp file and rename, so a crash
// mid-write never leaves a truncated settings file behind.
func (s *Store) save(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".lazyfiles-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
