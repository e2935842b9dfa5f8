package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the table key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Left       key.Binding
	Right      key.Binding
	Sort       key.Binding
	SortNth    key.Binding
	SortMenu   key.Binding
	ClearSort  key.Binding
	Toggle     key.Binding
	ClearSel   key.Binding
	Pager      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Accept     key.Binding
	Cancel     key.Binding
	Reverse    key.Binding

	selectable bool
}

// Default returns the standard bindings. Selection keys are disabled when
// the table is not selectable so they drop out of the help view.
func Default(selectable bool) KeyMap {
	km := KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:       key.NewBinding(key.WithKeys("home"), key.WithHelp("gg/home", "first row")),
		Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last row")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:      key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "sort column")),
		SortNth:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort nth column")),
		SortMenu:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort menu")),
		ClearSort: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "unsort")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle row")),
		ClearSel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Pager:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view in pager")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
		Reverse:   key.NewBinding(key.WithKeys("r", "s"), key.WithHelp("r", "reverse")),
	}
	km.selectable = selectable
	km.Toggle.SetEnabled(selectable)
	km.ClearSel.SetEnabled(selectable)
	return km
}

// Selectable reports whether selection bindings are active
func (k KeyMap) Selectable() bool {
	return k.selectable
}

// ShortHelp returns bindings for the one-line footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Sort, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns bindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Left, k.Right, k.Sort, k.SortNth, k.SortMenu, k.ClearSort},
		{k.Toggle, k.ClearSel},
		{k.Pager, k.Help, k.Quit},
	}
}

// SortMenuHelp returns bindings shown while picking a sort column
func (k KeyMap) SortMenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reverse, k.Accept, k.Cancel}
}

// SortMenuKeys returns the bindings active in the sort menu as a help.KeyMap
func (k KeyMap) SortMenuKeys() SortMenuKeyMap {
	return SortMenuKeyMap{keys: k}
}

// SortMenuKeyMap adapts the sort menu bindings to help.KeyMap
type SortMenuKeyMap struct {
	keys KeyMap
}

func (s SortMenuKeyMap) ShortHelp() []key.Binding {
	return s.keys.SortMenuHelp()
}

func (s SortMenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.keys.SortMenuHelp()}
}
