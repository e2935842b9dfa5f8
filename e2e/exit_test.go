//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-story", "default"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Default"), "Should show story title")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Process should exit cleanly")
	case <-time.After(1500 * time.Millisecond):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
		t.Fatal("Application did not exit on 'q'")
	}
}

func TestListStories(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "-list").CombinedOutput()
	require.NoError(t, err, "List should run without error")

	output := string(out)
	for _, name := range []string{"default", "loading", "empty", "selectable", "selectable-with-state", "playground"} {
		require.True(t, strings.Contains(output, name), "List should include %s", name)
	}
}

func TestUnknownStory(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "-story", "nope").CombinedOutput()
	require.Error(t, err, "Unknown story should fail")
	require.Contains(t, string(out), `Unknown story "nope"`)
}
