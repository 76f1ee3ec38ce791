// Copyright 2026 The Homie Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the path completion server and CLI application.

pathserve serves fast prefix-based path completions backed by the
homie-core container library: a frequency-ranked patricia index with an
LRU result cache and a Bloom registration pre-filter. It can operate as
a MessagePack IPC server for integration with the file browser UI, or
as an interactive CLI for testing and debugging.

# Usage

Start the server with default settings:

	pathserve -data paths.txt

Run in CLI mode with debug logging:

	pathserve -data paths.txt -c -d

The data file holds one entry per line, optionally followed by a tab and
an access frequency. Lines starting with '#' are skipped.

# Configuration

Runtime configuration is managed through a TOML file that supports
server limits, index sizing, cache capacity and Bloom filter sizing:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[cache]
	capacity = 256

	[bloom]
	expected_items = 50000
	false_positive_rate = 0.01

The config file is created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a
completion request:

	{"id": "req1", "cmd": "complete", "p": "doc", "l": 20}

Receive suggestions with position ranking:

	{"id": "req1", "s": [{"w": "Documents", "r": 1}], "c": 1, "t": 145}

A stats request returns the index, cache and filter counters.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/MikVR7/homie-core/internal/cli"
	"github.com/MikVR7/homie-core/internal/logger"
	"github.com/MikVR7/homie-core/pkg/config"
	"github.com/MikVR7/homie-core/pkg/server"
	"github.com/MikVR7/homie-core/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "pathserve"
	gh      = "https://github.com/MikVR7/homie-core"
)

// sigHandler exits normally on interrupt signals.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the config, completer and the chosen frontend together;
// the packages own all the logic.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataFile := flag.String("data", "", "Plain-text file with entries to index")
	configPath := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	minPrefix := flag.Int("prmin", defaultConfig.CLI.DefaultMinLen, "Minimum prefix length for suggestions")
	maxPrefix := flag.Int("prmax", defaultConfig.CLI.DefaultMaxLen, "Maximum prefix length for suggestions")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable input filtering (DBG only) - queries all raw entries")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, loadedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if loadedPath != "" {
		log.Debugf("Using config file: (%s)", loadedPath)
	}

	completer, err := suggest.NewCompleter(appConfig.Cache.Capacity, appConfig.Bloom.ExpectedItems)
	if err != nil {
		log.Fatalf("Failed to init completer: %v", err)
	}

	if *dataFile != "" {
		loaded, err := completer.LoadFile(*dataFile)
		if err != nil {
			log.Fatalf("Failed to load entries from %s: %v", *dataFile, err)
		}
		log.Debugf("Indexed %d entries from %s", loaded, *dataFile)
	} else {
		log.Warn("No data file specified, running with an empty index...")
	}

	// CLI mode is mainly for testing and dbg purposes; new features
	// should be exercised here before server mode.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig)

	showStartupInfo(*dataFile)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showVersionInfo prints the styled version output.
func showVersionInfo() {
	vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ pathserve ] Serves fast path completions!")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataFile string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" pathserve ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	if dataFile != "" {
		log.Infof("data file: ( %s )", dataFile)
	}
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
