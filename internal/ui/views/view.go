package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"datatable/internal/domain"
)

const (
	loadingText = "Loading..."
	emptyText   = "No data available"
)

// SortMenu describes the sort picker shown while choosing a column
type SortMenu struct {
	Options []domain.Column
	Index   int
	State   domain.SortState
}

// ViewState contains all the state needed for rendering. Cells holds the
// formatted rows currently in the viewport, starting at RowOffset.
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Status        domain.TableStatus
	Columns       []domain.Column
	Cells         [][]string
	Selected      []bool
	Selectable    bool
	SelectedCount int
	Cursor        int
	RowOffset     int
	TotalRows     int
	FocusedColumn int
	SortState     domain.SortState
	SortLabel     string
	SortMenu      *SortMenu
	ShowBorder    bool
	SpinnerView   string
	StatusMessage string
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.SortMenu != nil {
		content.WriteString(r.renderSortMenu(*state.SortMenu))
		content.WriteString("\n\n")
	}

	switch state.Status {
	case domain.StatusLoading:
		content.WriteString(r.styles.Loading.Render(fmt.Sprintf("%s %s", state.SpinnerView, loadingText)))
	case domain.StatusEmpty:
		content.WriteString(r.renderTable(state, nil, nil, -1))
		content.WriteString("\n")
		content.WriteString(r.styles.Empty.Render(emptyText))
	default:
		content.WriteString(r.renderBody(state))
	}

	footer := r.renderFooter(state)
	if footer != "" {
		// Push the footer to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		footerLines := strings.Count(footer, "\n") + 1
		availableLines := state.Height - 2 // Main padding
		if paddingNeeded := availableLines - currentLines - footerLines; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// RenderTable renders every row without cursor or scroll decoration, for the pager
func (r *Renderer) RenderTable(state ViewState) string {
	return r.renderTable(state, state.Cells, state.Selected, -1)
}

func (r *Renderer) renderTitle(state ViewState) string {
	title := state.Title
	if title == "" {
		title = "datatable"
	}
	logo := r.styles.Title.Render(title)

	var indicators []string
	if state.SortState.IsSorted() && state.SortLabel != "" {
		indicators = append(indicators, state.SortLabel)
	}
	if state.Selectable && state.SelectedCount > 0 {
		indicators = append(indicators, fmt.Sprintf("%d selected", state.SelectedCount))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderSortMenu(menu SortMenu) string {
	if menu.Index < 0 || menu.Index >= len(menu.Options) {
		return ""
	}
	option := menu.Options[menu.Index]
	direction := domain.Ascending
	if menu.State.ColumnKey == option.Key {
		direction = menu.State.Direction
	}
	sortLine := r.styles.SortMenu.Render(fmt.Sprintf("Sort by: %s (%s)", option.Title, direction))
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • r to reverse • Enter to accept • Esc to cancel")
	return sortLine + "\n" + helpLine
}

// renderBody renders the visible rows with scroll indicators
func (r *Renderer) renderBody(state ViewState) string {
	var lines []string

	if state.RowOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.RowOffset)))
	}

	lines = append(lines, r.renderTable(state, state.Cells, state.Selected, state.Cursor-state.RowOffset))

	if below := state.TotalRows - state.RowOffset - len(state.Cells); below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderTable builds the lipgloss table. cursor is relative to cells; -1 hides it.
func (r *Renderer) renderTable(state ViewState, cells [][]string, selected []bool, cursor int) string {
	offset := 0
	var headers []string
	if state.Selectable {
		offset = 1
		headers = append(headers, " ")
	}
	for _, col := range state.Columns {
		headers = append(headers, FitWidth(HeaderLabel(col, state.SortState), col.Width))
	}

	rows := make([][]string, 0, len(cells))
	for i, rowCells := range cells {
		row := make([]string, 0, len(rowCells)+offset)
		if state.Selectable {
			row = append(row, Checkbox(i < len(selected) && selected[i]))
		}
		for c, cell := range rowCells {
			if c < len(state.Columns) {
				cell = FitWidth(cell, state.Columns[c].Width)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	border := lipgloss.RoundedBorder()
	if !state.ShowBorder {
		border = lipgloss.HiddenBorder()
	}

	t := table.New().
		Border(border).
		BorderStyle(r.styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			dataCol := col - offset
			if row == table.HeaderRow {
				switch {
				case dataCol < 0:
					return r.styles.Header
				case dataCol == state.FocusedColumn:
					return r.styles.HeaderFocused
				case dataCol < len(state.Columns) && state.Columns[dataCol].Key == state.SortState.ColumnKey:
					return r.styles.HeaderSorted
				default:
					return r.styles.Header
				}
			}
			switch {
			case row == cursor:
				return r.styles.Cursor
			case dataCol < 0:
				return r.styles.Checkbox
			case row < len(selected) && selected[row]:
				return r.styles.Selected
			default:
				return r.styles.Cell
			}
		})

	return t.String()
}

func (r *Renderer) renderFooter(state ViewState) string {
	var parts []string
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(state.StatusMessage))
	}
	if state.Keys != nil {
		parts = append(parts, state.HelpModel.View(state.Keys))
	}
	return strings.Join(parts, "\n")
}
