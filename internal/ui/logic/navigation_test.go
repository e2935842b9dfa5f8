package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNavigatorClampsCursor(t *testing.T) {
	n := NewNavigator()
	n.SetBounds(3, 2)

	n.MoveUp(1)
	require.Equal(t, 0, n.Cursor())

	n.MoveDown(10)
	require.Equal(t, 2, n.Cursor())

	n.SetBounds(1, 2)
	require.Equal(t, 0, n.Cursor(), "cursor follows a shrinking data set")
}

func TestNavigatorEmptyTable(t *testing.T) {
	n := NewNavigator()
	n.SetBounds(0, 0)

	n.MoveDown(1)
	n.End()
	n.FocusRight()
	require.Equal(t, 0, n.Cursor())
	require.Equal(t, 0, n.Column())
	require.False(t, n.FocusColumn(0))

	start, end := n.VisibleRange()
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}

func TestNavigatorScrollsWithIndicators(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(5)
	n.SetBounds(10, 1)

	start, end := n.VisibleRange()
	require.Equal(t, 0, start)
	require.Equal(t, 4, end, "one line reserved for the more-below indicator")

	n.MoveDown(4)
	start, end = n.VisibleRange()
	require.Equal(t, 2, start)
	require.Equal(t, 5, end)
	require.Less(t, n.Cursor(), end)

	n.End()
	start, end = n.VisibleRange()
	require.Equal(t, 9, n.Cursor())
	require.Equal(t, 10, end)
	require.GreaterOrEqual(t, n.Cursor(), start)

	n.Home()
	require.Equal(t, 0, n.ViewportOffset())
}

func TestNavigatorFitsWithoutScrolling(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(10)
	n.SetBounds(5, 1)

	n.End()
	require.Equal(t, 0, n.ViewportOffset())
	start, end := n.VisibleRange()
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)
}

func TestNavigatorPaging(t *testing.T) {
	n := NewNavigator()
	n.SetViewportHeight(6)
	n.SetBounds(30, 1)

	n.PageDown()
	require.Greater(t, n.Cursor(), 0)
	first := n.Cursor()

	n.PageDown()
	require.Greater(t, n.Cursor(), first)

	n.PageUp()
	n.PageUp()
	n.PageUp()
	require.Equal(t, 0, n.Cursor())
}

func TestNavigatorColumnFocusWraps(t *testing.T) {
	n := NewNavigator()
	n.SetBounds(1, 3)

	n.FocusLeft()
	require.Equal(t, 2, n.Column())

	n.FocusRight()
	require.Equal(t, 0, n.Column())

	require.True(t, n.FocusColumn(1))
	require.Equal(t, 1, n.Column())
	require.False(t, n.FocusColumn(3))
	require.Equal(t, 1, n.Column())

	n.SetBounds(1, 1)
	require.Equal(t, 0, n.Column(), "focus clamps when columns shrink")
}
