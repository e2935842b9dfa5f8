//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes a TOML table definition into the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(name, contents string) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}

// After returns the plain output that follows the last occurrence of marker
func (tf *TUITestFramework) After(marker string) string {
	tf.t.Helper()
	s := tf.SnapshotPlain()
	i := strings.LastIndex(s, marker)
	if i < 0 {
		return ""
	}
	return s[i+len(marker):]
}

// inventoryConfig has a natural-ordered column and a date column
const inventoryConfig = `version = 1

[table]
title = "Inventory"
selectable = true
key_field = "sku"
selection_policy = "preserve"
sort_column = "item"

[[table.columns]]
key = "item"
title = "Item"
sortable = true
natural = true

[[table.columns]]
key = "added"
title = "Added"
sortable = true

[[table.columns]]
key = "sku"
title = "SKU"

[[table.rows]]
sku = "a-1"
item = "crate 10"
added = 2024-03-01

[[table.rows]]
sku = "a-2"
item = "crate 2"
added = 2024-01-15

[[table.rows]]
sku = "a-3"
item = "crate 1"
added = 2024-02-20

[ui]
show_border = true
`
