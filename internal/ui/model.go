package ui

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/logic"
	"datatable/internal/ui/input"
	"datatable/internal/ui/input/keys"
	inputtypes "datatable/internal/ui/input/types"
	uilogic "datatable/internal/ui/logic"
	"datatable/internal/ui/services/selection"
	"datatable/internal/ui/services/sorting"
	"datatable/internal/ui/state"
	"datatable/internal/ui/views"
)

// Lines taken by everything around the table body: main padding, title,
// table borders and header, footer
const chromeHeight = 10

// Props configures a table
type Props[R any] struct {
	Title   string
	Data    []R
	Columns []domain.Column

	// Loading suppresses data rendering in favor of a loading indicator
	Loading bool

	// Load fetches the data in the background when the program starts. The
	// table shows the loading indicator until it returns.
	Load func(ctx context.Context) ([]R, error)

	// Selectable enables the checkbox column and row toggling
	Selectable bool

	// OnRowSelect receives the full selection after every change
	OnRowSelect func(selected []R)

	// Accessor reads cell values; nil resolves struct fields and map keys
	Accessor logic.Accessor[R]

	// Key identifies rows for selection; nil compares rows structurally
	Key logic.KeyFunc[R]

	SelectionPolicy domain.SelectionPolicy
	InitialSort     domain.SortState
	ShowHelp        bool
	HideBorder      bool
}

// Model is the table presenter. It owns the sort and selection state and
// renders the sorted rows.
type Model[R any] struct {
	bus   eventbus.EventBus
	title string
	state *state.TableState

	data     []R // rows in input order
	rows     []R // rows in display order
	accessor logic.Accessor[R]

	sorting   *sorting.Service
	selection *selection.Tracker[R]

	navigator    *uilogic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	help         help.Model
	spinner      spinner.Model
	pager        *PagerOps
	load         func(ctx context.Context) ([]R, error)

	sortMenuIndex int
	inPagerMode   bool
}

// NewModel creates a table presenter
func NewModel[R any](bus eventbus.EventBus, props Props[R]) *Model[R] {
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	accessor := props.Accessor
	if accessor == nil {
		accessor = logic.FieldAccessor[R]()
	}

	tableState := state.NewTableState()
	tableState.Loading = props.Loading || props.Load != nil
	tableState.ShowHelp = props.ShowHelp
	tableState.ShowBorder = !props.HideBorder

	m := &Model[R]{
		bus:          bus,
		title:        props.Title,
		state:        tableState,
		accessor:     accessor,
		sorting:      sorting.NewService(bus, props.Columns),
		selection:    selection.NewTracker(bus, props.Key, props.Selectable, props.OnRowSelect),
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys.Default(props.Selectable)),
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		pager:        NewPagerOps(),
		load:         props.Load,
	}
	m.spinner.Style = m.renderer.Styles().Spinner
	m.help.ShowAll = props.ShowHelp

	if props.SelectionPolicy != "" {
		m.selection.SetPolicy(props.SelectionPolicy)
	}

	if err := logic.ValidateColumns(props.Columns); err != nil {
		m.report(err)
	}
	if props.InitialSort.IsSorted() && !m.sorting.SetState(props.InitialSort) {
		m.report(fmt.Errorf("initial sort on %q ignored: not a sortable column", props.InitialSort.ColumnKey))
	}

	m.setData(props.Data)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model[R]) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model[R]) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.state.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.load != nil {
		cmds = append(cmds, m.loadCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		// The body is hidden while loading, so only quit and help respond
		if m.state.Status() == domain.StatusLoading && !m.allowedWhileLoading(msg) {
			return m, nil
		}

		actions := m.inputHandler.HandleKey(msg, m)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.updateViewportHeight()
		return m, tea.Batch(cmds...)

	case DataMsg[R]:
		m.SetData(msg.Rows)

	case LoadingMsg:
		return m, m.SetLoading(msg.Loading)

	case loadedMsg[R]:
		if msg.err != nil {
			log.Printf("Failed to load data: %v", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Load failed: %v", msg.err)
			m.bus.Publish(eventbus.ErrorEvent{Message: m.state.StatusMessage, Err: msg.err})
		} else {
			m.SetData(msg.rows)
		}
		return m, m.SetLoading(false)

	case spinner.TickMsg:
		// Stop the tick loop once loading is over
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.state.StatusMessage = e.Message
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model[R]) View() string {
	return m.renderer.Render(m.buildViewState())
}

// Status reports what the table is showing
func (m *Model[R]) Status() domain.TableStatus {
	return m.state.Status()
}

// Rows returns the rows in display order
func (m *Model[R]) Rows() []R {
	return slices.Clone(m.rows)
}

// Data returns the rows in input order
func (m *Model[R]) Data() []R {
	return slices.Clone(m.data)
}

// Selected returns the selection in selection order
func (m *Model[R]) Selected() []R {
	return m.selection.Selected()
}

// Cursor returns the display index of the row under the cursor
func (m *Model[R]) Cursor() int {
	return m.navigator.Cursor()
}

// ToggleSort toggles sorting on the column with key. Unknown and
// non-sortable columns are ignored.
func (m *Model[R]) ToggleSort(key string) bool {
	if !m.sorting.Toggle(key) {
		return false
	}
	m.resort()
	return true
}

// ToggleRow toggles the selection of the row at display index
func (m *Model[R]) ToggleRow(index int) []R {
	if index < 0 || index >= len(m.rows) {
		return m.selection.Selected()
	}
	return m.selection.Toggle(m.rows[index])
}

// SetData replaces the data set, applying the selection policy
func (m *Model[R]) SetData(rows []R) {
	m.setData(rows)
}

// SetLoading sets the loading flag and returns the spinner command if needed
func (m *Model[R]) SetLoading(loading bool) tea.Cmd {
	if m.state.Loading == loading {
		return nil
	}
	m.state.Loading = loading
	m.bus.Publish(eventbus.LoadingChangedEvent{Loading: loading})
	if loading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model[R]) allowedWhileLoading(msg tea.KeyMsg) bool {
	km := m.inputHandler.Keys()
	return key.Matches(msg, km.Quit, km.ForceQuit, km.Help)
}

// loadCmd runs the loader off the update loop
func (m *Model[R]) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		rows, err := load(context.Background())
		return loadedMsg[R]{rows: rows, err: err}
	}
}

// Context implementation for the input handler

func (m *Model[R]) CurrentRow() int             { return m.navigator.Cursor() }
func (m *Model[R]) TotalRows() int              { return len(m.rows) }
func (m *Model[R]) FocusedColumn() int          { return m.navigator.Column() }
func (m *Model[R]) Columns() []domain.Column    { return m.sorting.Columns() }
func (m *Model[R]) SortState() domain.SortState { return m.sorting.State() }
func (m *Model[R]) Selectable() bool            { return m.selection.Selectable() }
func (m *Model[R]) HasSelection() bool          { return m.selection.HasSelection() }

func (m *Model[R]) setData(rows []R) {
	m.data = slices.Clone(rows)

	if err := logic.ValidateRows(m.data, m.selection.Key); err != nil {
		m.report(err)
	}

	pruned := m.selection.Reconcile(m.data)
	m.state.RowCount = len(m.data)
	m.resort()

	m.bus.Publish(eventbus.DataLoadedEvent{Rows: len(m.data), Pruned: pruned})
}

// resort recomputes the display order, keeping the cursor on the same row
func (m *Model[R]) resort() {
	cursorKey, hadCursor := "", false
	if c := m.navigator.Cursor(); c < len(m.rows) {
		cursorKey, hadCursor = m.selection.Key(m.rows[c]), true
	}

	m.rows = sorting.Sort(m.sorting, m.data, m.accessor)
	m.navigator.SetBounds(len(m.rows), len(m.sorting.Columns()))

	if hadCursor {
		for i, row := range m.rows {
			if m.selection.Key(row) == cursorKey {
				m.navigator.SetCursor(i)
				break
			}
		}
	}
}

// processAction processes an action from the input handler
func (m *Model[R]) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.navigator.MoveUp(1)
		case "down":
			m.navigator.MoveDown(1)
		case "pageup":
			m.navigator.PageUp()
		case "pagedown":
			m.navigator.PageDown()
		case "home":
			m.navigator.Home()
		case "end":
			m.navigator.End()
		}

	case inputtypes.FocusColumnAction:
		if a.Direction == "left" {
			m.navigator.FocusLeft()
		} else {
			m.navigator.FocusRight()
		}

	case inputtypes.SortColumnAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.Column()
		} else {
			m.navigator.FocusColumn(index)
		}
		if !m.sorting.ToggleIndex(index) {
			if cols := m.sorting.Columns(); index < len(cols) {
				m.state.StatusMessage = fmt.Sprintf("%s is not sortable", columnTitle(cols[index]))
			}
			return nil
		}
		m.state.StatusMessage = ""
		m.resort()

	case inputtypes.SetSortAction:
		if m.sorting.SetState(a.State) {
			m.resort()
		}

	case inputtypes.ClearSortAction:
		if m.sorting.Clear() {
			m.resort()
		}

	case inputtypes.UpdateSortIndexAction:
		m.sortMenuIndex = a.Index

	case inputtypes.ToggleRowAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.Cursor()
		}
		m.ToggleRow(index)

	case inputtypes.ClearSelectionAction:
		m.selection.Clear()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.help.ShowAll = m.state.ShowHelp

	case inputtypes.OpenPagerAction:
		return m.openPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// openPager returns a command that shows the whole table in the ov pager
func (m *Model[R]) openPager() tea.Cmd {
	if !m.pager.Available() {
		m.state.StatusMessage = "Pager unavailable"
		return nil
	}

	viewState := m.buildViewState()
	viewState.Cells, viewState.Selected = m.formatRows(0, len(m.rows))
	content := m.renderer.RenderTable(viewState)
	program := m.pager.program

	return func() tea.Msg {
		// Pause rendering while ov owns the terminal
		program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func (m *Model[R]) buildViewState() views.ViewState {
	start, end := m.navigator.VisibleRange()
	cells, selected := m.formatRows(start, end)

	var keyMap help.KeyMap = m.inputHandler.Keys()
	var sortMenu *views.SortMenu
	if m.inputHandler.CurrentMode() == inputtypes.ModeSortSelect {
		keyMap = m.inputHandler.Keys().SortMenuKeys()
		sortMenu = &views.SortMenu{
			Options: m.inputHandler.SortSelect().Options(),
			Index:   m.sortMenuIndex,
			State:   m.sorting.State(),
		}
	}

	sortLabel := ""
	if m.sorting.State().IsSorted() {
		sortLabel = m.sorting.Describe()
	}

	return views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		Title:         m.title,
		Status:        m.state.Status(),
		Columns:       m.sorting.Columns(),
		Cells:         cells,
		Selected:      selected,
		Selectable:    m.selection.Selectable(),
		SelectedCount: m.selection.Count(),
		Cursor:        m.navigator.Cursor(),
		RowOffset:     start,
		TotalRows:     len(m.rows),
		FocusedColumn: m.navigator.Column(),
		SortState:     m.sorting.State(),
		SortLabel:     sortLabel,
		SortMenu:      sortMenu,
		ShowBorder:    m.state.ShowBorder,
		SpinnerView:   m.spinner.View(),
		StatusMessage: m.state.StatusMessage,
		HelpModel:     m.help,
		Keys:          keyMap,
	}
}

// formatRows renders the display rows in [start, end) to strings
func (m *Model[R]) formatRows(start, end int) ([][]string, []bool) {
	columns := m.sorting.Columns()
	cells := make([][]string, 0, end-start)
	selected := make([]bool, 0, end-start)

	for _, row := range m.rows[start:end] {
		line := make([]string, len(columns))
		for c, col := range columns {
			line[c] = views.FormatCell(m.accessor(row, col.DataIndex))
		}
		cells = append(cells, line)
		selected = append(selected, m.selection.IsSelected(row))
	}
	return cells, selected
}

func (m *Model[R]) updateViewportHeight() {
	if m.state.Height == 0 {
		return
	}
	height := m.state.Height - chromeHeight
	if m.inputHandler.CurrentMode() == inputtypes.ModeSortSelect {
		height -= 3
	}
	if m.state.ShowHelp {
		height -= 5
	}
	m.navigator.SetViewportHeight(height)
}

// report logs each distinct misconfiguration once and publishes it
func (m *Model[R]) report(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		if !m.state.ReportOnce(line) {
			continue
		}
		log.Printf("Table misconfiguration: %s", line)
		m.bus.Publish(eventbus.ErrorEvent{Message: line, Err: err})
	}
}

func columnTitle(col domain.Column) string {
	if col.Title != "" {
		return col.Title
	}
	return col.Key
}
