package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"datatable/internal/config"
	"datatable/internal/datasource"
	"datatable/internal/eventbus"
	"datatable/internal/stories"
	"datatable/internal/ui"
)

func main() {
	var (
		storyName  string
		configPath string
		logPath    string
		dbPath     string
		query      string
		list       bool
	)
	flag.StringVar(&storyName, "story", "playground", "Story to run")
	flag.StringVar(&storyName, "s", "playground", "Story to run (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to a TOML or YAML table definition")
	flag.StringVar(&configPath, "c", "", "Path to a TOML or YAML table definition (shorthand)")
	flag.StringVar(&logPath, "log", "datatable.log", "Log file path")
	flag.StringVar(&dbPath, "db", "", "SQLite database to read rows from")
	flag.StringVar(&query, "query", "", "Query to run against -db")
	flag.BoolVar(&list, "list", false, "List stories and exit")
	flag.Parse()

	if list {
		for _, s := range stories.All() {
			fmt.Printf("%-24s %s\n", s.Name, s.Description)
		}
		return
	}

	// Remaining positional argument picks the story
	if flag.NArg() > 0 {
		storyName = flag.Arg(0)
	}

	story, ok := stories.Lookup(storyName)
	if !ok {
		fmt.Printf("Unknown story %q, available: %v\n", storyName, stories.Names())
		os.Exit(1)
	}

	// Set up logging
	logFile, err := tea.LogToFile(logPath, "datatable")
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()

	// Forward events to the UI without blocking the publisher
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Table error: %s: %v", event.Message, event.Err)
		}
		forwardEvent(e)
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded config from %s (%d columns, %d rows)", event.Path, event.Columns, event.Rows)
		}
	})

	configSvc := config.NewConfigServiceWithBus(bus)

	var model stories.Model
	if dbPath != "" {
		src, err := datasource.NewSQLiteSource(dbPath, query)
		if err != nil {
			fmt.Printf("Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer src.Close()

		// The query defines the columns unless a config file says otherwise
		cfg := queryConfig()
		if configPath != "" {
			cfg = loadConfig(configSvc, configPath)
		}
		// Query closes src on failure; os.Exit skips the deferred Close
		model, err = stories.Query(ctx, bus, cfg, src)
		if err != nil {
			fmt.Printf("Error reading query columns: %v\n", err)
			os.Exit(1)
		}
		log.Printf("Loading rows from %s", dbPath)
	} else {
		cfg := loadConfig(configSvc, configPath)
		if err := cfg.Table.Validate(); err != nil {
			log.Printf("Config problems: %v", err)
		}
		model = story.Build(bus, cfg)
		log.Printf("Starting story %s", story.Name)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Send(tea.Quit())
		case <-ctx.Done():
		}
	}()

	if os.Getenv("DATATABLE_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
}

// queryConfig is the table setup for rows read from a database
func queryConfig() *config.Config {
	return &config.Config{
		Version:    1,
		Table:      config.TableConfig{Selectable: true},
		UISettings: config.UISettings{ShowBorder: true},
	}
}

// loadConfig reads the table definition, falling back to the default table
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = configSvc.LoadFromPath(path)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
