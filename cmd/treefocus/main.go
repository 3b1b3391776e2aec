package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"treefocus/internal/config"
	"treefocus/internal/discovery"
	"treefocus/internal/eventbus"
	"treefocus/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		targetDir string
		maxDepth  int
		hidden    bool
	)
	flag.StringVar(&targetDir, "dir", "", "Directory to browse")
	flag.StringVar(&targetDir, "d", "", "Directory to browse (shorthand)")
	flag.IntVar(&maxDepth, "depth", -1, "Maximum scan depth (0 = unlimited, default from config)")
	flag.BoolVar(&hidden, "hidden", false, "Show hidden files and directories")
	flag.Parse()

	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("treefocus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	configPath := filepath.Join(absDir, config.FileName)
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := config.LoadOrDefault(configSvc, absDir)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig(absDir)
	}
	if maxDepth >= 0 {
		cfg.MaxDepth = maxDepth
	}
	if hidden {
		cfg.ShowHidden = true
	}

	// Persist expansion so the next session opens where this one left off.
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		saved := *cfg
		saved.Expanded = event.Expanded
		if err := configSvc.SaveToPath(&saved, configPath); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	})

	discoverySvc := discovery.NewDiscoveryService(bus)
	uiModel := ui.NewModel(ctx, cfg, bus, discoverySvc)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
