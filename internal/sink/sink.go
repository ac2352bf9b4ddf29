//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sink writes finished datasets to an output target. Sinks are
// registered by name; the generator core never depends on a concrete
// output format.
package sink

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/maxshowarth/retailgen/internal/retail"
)

// Config holds sink construction parameters. Only the fields relevant to
// the chosen sink need to be set.
type Config struct {
	// OutputDir is the directory for file-based sinks.
	OutputDir string

	// Overwrite allows file-based sinks to replace existing output.
	Overwrite bool

	// Connection is the PostgreSQL connection string for the postgres sink.
	Connection string

	// DropExisting drops and recreates tables before loading.
	DropExisting bool
}

// RunInfo describes the generation run being written, for metadata
// recording and summary logging.
type RunInfo struct {
	Seed   int64
	Scale  string
	Window retail.Window
}

// Sink writes one complete dataset.
type Sink interface {
	// Name returns the sink name.
	Name() string

	// Write persists every table of the dataset. Writes happen after
	// generation completes, so a failed write never leaves a partially
	// generated dataset behind, only partially written output.
	Write(ctx context.Context, ds *retail.Dataset, run RunInfo) error
}

// Factory constructs a sink from configuration.
type Factory func(cfg Config) (Sink, error)

var (
	registry = make(map[string]Factory)
	mu       sync.RWMutex
)

// Register adds a sink factory to the registry.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = factory
}

// Get constructs a sink by name.
func Get(name string, cfg Config) (Sink, error) {
	mu.RLock()
	factory, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (valid: %v)", name, List())
	}
	return factory(cfg)
}

// List returns all registered sink names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
