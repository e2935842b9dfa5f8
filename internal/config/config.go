package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/logic"
)

// Config represents a table definition plus UI settings
type Config struct {
	Version    int         `toml:"version" yaml:"version"`
	Table      TableConfig `toml:"table" yaml:"table"`
	UISettings UISettings  `toml:"ui" yaml:"ui"`
}

// TableConfig describes the columns and rows of a table
type TableConfig struct {
	Title           string           `toml:"title" yaml:"title"`
	Selectable      bool             `toml:"selectable" yaml:"selectable"`
	Loading         bool             `toml:"loading" yaml:"loading"`
	// KeyField names the row identity column, empty for structural identity
	KeyField        string           `toml:"key_field" yaml:"key_field"`
	// SelectionPolicy is "prune" or "preserve"
	SelectionPolicy string           `toml:"selection_policy" yaml:"selection_policy"`
	SortColumn      string           `toml:"sort_column" yaml:"sort_column"`
	SortDescending  bool             `toml:"sort_descending" yaml:"sort_descending"`
	Columns         []ColumnConfig   `toml:"columns" yaml:"columns"`
	Rows            []map[string]any `toml:"rows" yaml:"rows"`
}

// ColumnConfig describes one column
type ColumnConfig struct {
	Key       string `toml:"key" yaml:"key"`
	Title     string `toml:"title" yaml:"title"`
	DataIndex string `toml:"data_index" yaml:"data_index"`
	Sortable  bool   `toml:"sortable" yaml:"sortable"`
	Natural   bool   `toml:"natural,omitempty" yaml:"natural,omitempty"`
	Width     int    `toml:"width,omitempty" yaml:"width,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp   bool `toml:"show_help" yaml:"show_help"`
	ShowBorder bool `toml:"show_border" yaml:"show_border"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{
		bus:      eventbus.NullBus{},
		filePath: DefaultPath(),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	if bus != nil {
		cs.bus = bus
	}
	return cs
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "datatable", "config.toml")
}

// Load loads the configuration from the default path. A missing file yields
// the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := cs.read(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := cs.read(path)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshal(config, path)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalizeRows(cfg.Table.Rows)
	return &cfg, nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:    path,
		Columns: len(cfg.Table.Columns),
		Rows:    len(cfg.Table.Rows),
	})
}

// isYAML reports whether path names a YAML file; everything else is TOML
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func marshal(config *Config, path string) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(config)
	}
	return toml.Marshal(config)
}

// normalizeRows turns TOML local dates into time.Time so they order as times
func normalizeRows(rows []map[string]any) {
	for _, row := range rows {
		for k, v := range row {
			switch t := v.(type) {
			case toml.LocalDate:
				row[k] = t.AsTime(time.UTC)
			case toml.LocalDateTime:
				row[k] = t.AsTime(time.UTC)
			}
		}
	}
}

// ToColumns converts the column configs to descriptors
func (t TableConfig) ToColumns() []domain.Column {
	columns := make([]domain.Column, len(t.Columns))
	for i, c := range t.Columns {
		dataIndex := c.DataIndex
		if dataIndex == "" {
			dataIndex = c.Key
		}
		columns[i] = domain.Column{
			Key:       c.Key,
			Title:     c.Title,
			DataIndex: dataIndex,
			Sortable:  c.Sortable,
			Natural:   c.Natural,
			Width:     c.Width,
		}
	}
	return columns
}

// InitialSort returns the configured starting sort
func (t TableConfig) InitialSort() domain.SortState {
	state := domain.SortState{ColumnKey: t.SortColumn}
	if t.SortDescending {
		state.Direction = domain.Descending
	}
	return state
}

// Validate reports every problem in the table definition
func (t TableConfig) Validate() error {
	var errs []error
	if _, err := domain.ParseSelectionPolicy(t.SelectionPolicy); err != nil {
		errs = append(errs, err)
	}
	if err := logic.ValidateColumns(t.ToColumns()); err != nil {
		errs = append(errs, err)
	}
	if t.SortColumn != "" {
		if col, ok := logic.FindColumn(t.ToColumns(), t.SortColumn); !ok || !col.Sortable {
			errs = append(errs, fmt.Errorf("sort_column %q is not a sortable column", t.SortColumn))
		}
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Table: TableConfig{
			Title:           "Users",
			Selectable:      true,
			KeyField:        "id",
			SelectionPolicy: string(domain.SelectionPrune),
			Columns: []ColumnConfig{
				{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
				{Key: "email", Title: "Email", DataIndex: "email", Sortable: true},
				{Key: "id", Title: "ID", DataIndex: "id"},
			},
			Rows: []map[string]any{
				{"id": int64(1), "name": "Amit Sharma", "email": "amit.sharma@example.com"},
				{"id": int64(2), "name": "Priya Singh", "email": "priya.singh@example.com"},
				{"id": int64(3), "name": "Rahul Verma", "email": "rahul.verma@example.com"},
				{"id": int64(4), "name": "Sneha Patel", "email": "sneha.patel@example.com"},
				{"id": int64(5), "name": "Vikas Gupta", "email": "vikas.gupta@example.com"},
			},
		},
		UISettings: UISettings{
			ShowBorder: true,
		},
	}
}
