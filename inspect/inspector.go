// Package inspect describes what is on screen as data: a tree of nodes with
// cell bounds, state and styles, plus the layout that produced it. Tests and
// scripts read it instead of parsing terminal output.
package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Introspectable components can describe themselves as a node tree.
type Introspectable interface {
	InspectNode() *Node
}

const (
	// EnvVar set to "1" makes the app write a snapshot after every update.
	EnvVar   = "WHITEBOX_INSPECT"
	FileName = "whitebox-inspect.json"
)

var enabled = sync.OnceValue(func() bool {
	return os.Getenv(EnvVar) == "1"
})

func IsEnabled() bool {
	return enabled()
}

// GetInspectFile is where WriteSnapshot writes, or "" when inspection is off.
func GetInspectFile() string {
	if !IsEnabled() {
		return ""
	}
	return filepath.Join(os.TempDir(), FileName)
}

// WriteSnapshot replaces the inspect file with snapshot. It does nothing
// unless inspection is on.
func WriteSnapshot(snapshot *Snapshot) error {
	path := GetInspectFile()
	if path == "" {
		return nil
	}
	return WriteSnapshotToPath(snapshot, path)
}

func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
