// Package config owns the persisted explorer settings: the list of
// hidden folders and the two flattening switches. Settings live in a
// JSON file next to the workspace (".lazyfiles.json" by default) and
// are re-read on every snapshot, so hide/unhide edits take effect on
// the next refresh without any cache invalidation.
package config

import (
	"encoding/json"
	"os"
)

// FileName is the default settings file name, resolved relative to the
// workspace root.
const FileName = ".lazyfiles.json"

// Config mirrors the settings file. Absent keys resolve to defaults;
// a missing or malformed file resolves to all defaults and is never an
// error.
type Config struct {
	Hidden             []string `json:"hidden"`
	FlattenSingleFile  *bool    `json:"flattenSingleFile,omitempty"`
	FlattenSingleChild *bool    `json:"flattenSingleChild,omitempty"`
}

// Snapshot is the immutable per-call view handed to the presentation
// engine. Listing code receives it as an explicit parameter rather
// than reading ambient state, so a settings change mid-listing cannot
// split one traversal across two configurations.
type Snapshot struct {
	Hidden             map[string]struct{}
	FlattenSingleFile  bool
	FlattenSingleChild bool
}

// IsHidden reports whether the workspace-relative path is hidden.
func (s Snapshot) IsHidden(rel string) bool {
	_, ok := s.Hidden[rel]
	return ok
}

func defaultConfig() Config {
	return Config{}
}

// Load reads the settings file at path. Any problem (absent file,
// unreadable, bad JSON) yields the defaults.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}

func (c Config) snapshot() Snapshot {
	snap := Snapshot{
		Hidden:             make(map[string]struct{}, len(c.Hidden)),
		FlattenSingleFile:  true,
		FlattenSingleChild: true,
	}
	for _, rel := range c.Hidden {
		if rel != "" {
			snap.Hidden[rel] = struct{}{}
		}
	}
	if c.FlattenSingleFile != nil {
		snap.FlattenSingleFile = *c.FlattenSingleFile
	}
	if c.FlattenSingleChild != nil {
		snap.FlattenSingleChild = *c.FlattenSingleChild
	}
	return snap
}
