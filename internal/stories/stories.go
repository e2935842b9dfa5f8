package stories

import (
	"context"
	"log"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"datatable/internal/config"
	"datatable/internal/datasource"
	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/logic"
	"datatable/internal/ui"
)

// Model is what a story runs. SetProgram hands over the program for the pager.
type Model interface {
	tea.Model
	SetProgram(p *tea.Program)
}

// Story is a named, runnable table configuration
type Story struct {
	Name        string
	Description string
	Build       func(bus eventbus.EventBus, cfg *config.Config) Model
}

var registry = []Story{
	{Name: "default", Description: "Sortable users table", Build: Default},
	{Name: "loading", Description: "Table waiting for data", Build: Loading},
	{Name: "empty", Description: "Table with no rows", Build: Empty},
	{Name: "selectable", Description: "Rows can be toggled, selections are logged", Build: Selectable},
	{Name: "selectable-with-state", Description: "Selection mirrored below the table", Build: SelectableWithState},
	{Name: "large", Description: "Two hundred generated orders", Build: Large},
	{Name: "playground", Description: "Table defined by the TOML config", Build: Playground},
}

// All returns every story in display order
func All() []Story {
	return slices.Clone(registry)
}

// Names returns the story names
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a story by name, ignoring case
func Lookup(name string) (Story, bool) {
	for _, s := range registry {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Story{}, false
}

// Default shows the users table with sorting only
func Default(bus eventbus.EventBus, _ *config.Config) Model {
	return ui.NewModel(bus, ui.Props[User]{
		Title:   "Default",
		Data:    Users(),
		Columns: UserColumns(),
		Key:     UserKey,
	})
}

// Loading shows the loading indicator
func Loading(bus eventbus.EventBus, _ *config.Config) Model {
	return ui.NewModel(bus, ui.Props[User]{
		Title:   "Loading",
		Columns: UserColumns(),
		Loading: true,
		Key:     UserKey,
	})
}

// Empty shows the empty state
func Empty(bus eventbus.EventBus, _ *config.Config) Model {
	return ui.NewModel(bus, ui.Props[User]{
		Title:   "Empty",
		Columns: UserColumns(),
		Key:     UserKey,
	})
}

// Selectable logs every selection change
func Selectable(bus eventbus.EventBus, _ *config.Config) Model {
	return ui.NewModel(bus, ui.Props[User]{
		Title:      "Selectable",
		Data:       Users(),
		Columns:    UserColumns(),
		Selectable: true,
		Key:        UserKey,
		OnRowSelect: func(selected []User) {
			log.Printf("onRowSelect: %d selected", len(selected))
		},
	})
}

// Playground builds a table from the loaded config
func Playground(bus eventbus.EventBus, cfg *config.Config) Model {
	return ui.NewModel(bus, configProps(cfg))
}

// Query builds a table whose rows come from src. Columns defined in cfg win
// over the ones the source reports. src is closed when Query fails.
func Query(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, src datasource.Source) (Model, error) {
	props := configProps(cfg)
	if len(props.Columns) == 0 {
		columns, err := src.Columns(ctx)
		if err != nil {
			if cerr := src.Close(); cerr != nil {
				log.Printf("Error closing source: %v", cerr)
			}
			return nil, err
		}
		props.Columns = columns
	}
	if props.Title == "" {
		props.Title = "Query"
	}
	props.Data = nil
	props.Load = src.Load
	return ui.NewModel(bus, props), nil
}

func configProps(cfg *config.Config) ui.Props[map[string]any] {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	table := cfg.Table

	var key logic.KeyFunc[map[string]any]
	if table.KeyField != "" {
		key = logic.FieldKey[map[string]any](logic.MapAccessor, table.KeyField)
	}

	policy, err := domain.ParseSelectionPolicy(table.SelectionPolicy)
	if err != nil {
		log.Printf("Playground: %v, falling back to %s", err, domain.SelectionPrune)
		policy = domain.SelectionPrune
	}

	return ui.Props[map[string]any]{
		Title:           table.Title,
		Data:            table.Rows,
		Columns:         table.ToColumns(),
		Loading:         table.Loading,
		Selectable:      table.Selectable,
		Accessor:        logic.MapAccessor,
		Key:             key,
		SelectionPolicy: policy,
		InitialSort:     table.InitialSort(),
		ShowHelp:        cfg.UISettings.ShowHelp,
		HideBorder:      !cfg.UISettings.ShowBorder,
		OnRowSelect: func(selected []map[string]any) {
			log.Printf("onRowSelect: %d selected", len(selected))
		},
	}
}
