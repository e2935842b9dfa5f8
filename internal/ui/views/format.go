package views

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"

	"datatable/internal/domain"
)

const (
	checkboxOn  = "[x]"
	checkboxOff = "[ ]"

	indicatorAscending  = "▲"
	indicatorDescending = "▼"
	indicatorSortable   = "↕"

	timeLayout = "2006-01-02 15:04"
)

// FormatCell renders a raw cell value. Absent values render empty.
func FormatCell(value any, ok bool) string {
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(timeLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(timeLayout)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ""
		}
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if t, isTime := rv.Interface().(time.Time); isTime {
		return t.Format(timeLayout)
	}
	return fmt.Sprint(rv.Interface())
}

// FitWidth truncates or pads s to exactly width cells. Zero leaves s alone.
func FitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// HeaderLabel returns a column title with its sort indicator
func HeaderLabel(col domain.Column, state domain.SortState) string {
	title := col.Title
	if title == "" {
		title = col.Key
	}
	if !col.Sortable {
		return title
	}
	if state.ColumnKey != col.Key {
		return title + " " + indicatorSortable
	}
	if state.Direction == domain.Descending {
		return title + " " + indicatorDescending
	}
	return title + " " + indicatorAscending
}

// Checkbox renders a selection marker
func Checkbox(checked bool) string {
	if checked {
		return checkboxOn
	}
	return checkboxOff
}
