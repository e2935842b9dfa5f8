//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortByName(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-story", "default"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Default"), "Should show story title")
	require.True(t, tf.SeePlain("Vikas Gupta"), "Rows should render")

	// Focus starts on Name, so 's' sorts by it
	require.NoError(t, tf.Sort())
	require.True(t, tf.SeePlain("sorted by Name (ascending)"), "Title should show ascending sort")
	require.True(t, tf.SeePlain("Name ▲"), "Header should show ascending indicator")

	require.NoError(t, tf.Sort())
	require.True(t, tf.SeePlain("sorted by Name (descending)"), "Title should show descending sort")

	require.True(t, InOrder(tf.After("sorted by Name (descending)"), "Vikas Gupta", "Amit Sharma"),
		"Vikas should be drawn before Amit when descending")

	require.NoError(t, tf.SendKeys("0"))
	require.True(t, tf.WaitFor(func(string) bool {
		return strings.Contains(tf.After("sorted by Name (descending)"), "Name ↕")
	}, 2*time.Second), "Clearing the sort should restore the neutral indicator")
}

func TestSortMenu(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-story", "default"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Amit Sharma"), "Rows should render")

	require.NoError(t, tf.SendKeys(KeyMenu))
	require.True(t, tf.SeePlain("Sort by: Name (ascending)"), "Menu should start on the focused column")

	require.NoError(t, tf.SendKeys(KeyDown))
	require.True(t, tf.SeePlain("Sort by: Email (ascending)"), "Down should move to Email")

	require.NoError(t, tf.SendKeys("r"))
	require.True(t, tf.SeePlain("Sort by: Email (descending)"), "r should reverse the direction")

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("sorted by Email (descending)"), "Accepting should keep the previewed sort")
}

func TestSortNaturalFromConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	path, err := tf.WriteConfig("inventory.toml", inventoryConfig)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-story", "playground", "-config", path), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("sorted by Item (ascending)"), "Configured sort should apply on start")

	require.True(t, InOrder(tf.SnapshotPlain(), "crate 1 ", "crate 2", "crate 10"),
		"Natural order should put crate 2 before crate 10")
}
