package stories

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"datatable/internal/config"
	"datatable/internal/datasource"
	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/ui"
)

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("Selectable-With-State")
	require.True(t, ok)
	require.Equal(t, "selectable-with-state", s.Name)

	_, ok = Lookup("missing")
	require.False(t, ok)

	require.Len(t, Names(), len(All()))
	require.Contains(t, Names(), "playground")
}

func TestEveryStoryRenders(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			m := s.Build(eventbus.New(), config.DefaultConfig())
			m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			require.NotEmpty(t, m.View())
		})
	}
}

func TestDefaultStory(t *testing.T) {
	m := Default(nil, nil).(*ui.Model[User])
	require.Equal(t, domain.StatusReady, m.Status())
	require.Len(t, m.Rows(), 5)
	require.NotContains(t, m.View(), "[ ]")
}

func TestLoadingAndEmptyStories(t *testing.T) {
	require.Equal(t, domain.StatusLoading, Loading(nil, nil).(*ui.Model[User]).Status())

	empty := Empty(nil, nil)
	require.Equal(t, domain.StatusEmpty, empty.(*ui.Model[User]).Status())
	require.Contains(t, empty.View(), "No data available")
}

func TestSelectableWithStateSummary(t *testing.T) {
	m := SelectableWithState(nil, nil)
	require.Contains(t, m.View(), "Selected: None")

	m.Update(space())
	require.Contains(t, m.View(), "Selected: Amit Sharma")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(space())
	require.Contains(t, m.View(), "Selected: Amit Sharma, Priya Singh")

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(space())
	require.Contains(t, m.View(), "Selected: Priya Singh")
	require.Equal(t, "Priya Singh", m.(*withState).Summary())
}

func TestPlaygroundUsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Table.SortColumn = "name"
	cfg.Table.SortDescending = true

	m := Playground(nil, cfg).(*ui.Model[map[string]any])
	rows := m.Rows()
	require.Len(t, rows, 5)
	require.Equal(t, "Vikas Gupta", rows[0]["name"])
	require.True(t, m.Selectable())

	m.ToggleRow(0)
	require.Equal(t, int64(5), m.Selected()[0]["id"])

	// Same key, new values: the selection follows the row
	updated := config.DefaultConfig().Table.Rows
	updated[4]["name"] = "Vikas G."
	m.SetData(updated)
	require.Equal(t, "Vikas G.", m.Selected()[0]["name"])
}

func TestPlaygroundBadPolicyFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Table.SelectionPolicy = "never"

	m := Playground(nil, cfg)
	require.True(t, strings.Contains(m.View(), "Amit Sharma"))
}

func TestOrdersAreStable(t *testing.T) {
	a, b := Orders(50), Orders(50)
	require.Equal(t, a, b)
	require.Equal(t, "ORD-1", a[0].Number)

	seen := make(map[string]bool)
	for _, o := range a {
		require.False(t, seen[OrderKey(o)], "order keys are unique")
		seen[OrderKey(o)] = true
	}
}

func TestLargeStoryScrolls(t *testing.T) {
	m := Large(nil, nil).(*ui.Model[Order])
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 30})
	require.Contains(t, m.View(), "more below")

	// Natural order puts ORD-2 before ORD-10
	require.True(t, m.ToggleSort("number"))
	rows := m.Rows()
	require.Equal(t, "ORD-1", rows[0].Number)
	require.Equal(t, "ORD-2", rows[1].Number)

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	view := m.View()
	require.Contains(t, view, "ORD-200")
	require.Contains(t, view, "more above")
}

type fakeSource struct {
	columns []domain.Column
	rows    []datasource.Row
	err     error
	closed  bool
}

func (f *fakeSource) Columns(context.Context) ([]domain.Column, error) { return f.columns, f.err }
func (f *fakeSource) Load(context.Context) ([]datasource.Row, error)   { return f.rows, f.err }
func (f *fakeSource) Close() error                                     { f.closed = true; return nil }

func TestQueryLoadsFromSource(t *testing.T) {
	src := &fakeSource{
		columns: []domain.Column{{Key: "name", Title: "name", DataIndex: "name", Sortable: true}},
		rows:    []datasource.Row{{"name": "Vikas Gupta"}, {"name": "Amit Sharma"}},
	}
	cfg := &config.Config{Table: config.TableConfig{SortColumn: "name"}}

	m, err := Query(context.Background(), nil, cfg, src)
	require.NoError(t, err)
	require.False(t, src.closed)

	table := m.(*ui.Model[map[string]any])
	require.Equal(t, domain.StatusLoading, table.Status())
	require.Contains(t, table.View(), "Query")

	cmd := table.Init()
	require.NotNil(t, cmd)
	for _, c := range cmd().(tea.BatchMsg) {
		table.Update(c())
	}
	require.Equal(t, domain.StatusReady, table.Status())
	require.Equal(t, "Amit Sharma", table.Rows()[0]["name"])
}

func TestQueryColumnsError(t *testing.T) {
	src := &fakeSource{err: errors.New("no such table")}
	_, err := Query(context.Background(), nil, &config.Config{}, src)
	require.ErrorContains(t, err, "no such table")
	require.True(t, src.closed, "source is released on failure")
}
