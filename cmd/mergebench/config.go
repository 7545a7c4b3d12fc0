package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vectdb/oomerge/ints"
)

// config is a benchmark run definition, loaded from a JSON file with the
// same "plain struct, json tags, encoding/json.Unmarshal" shape as the
// teacher's own BuildConfig/ProjectManifest loader in internal/build.
type config struct {
	// DataRows is the size of the already-sorted partition each run
	// merges new rows into.
	DataRows int `json:"dataRows"`
	// OOORows is the number of out-of-order rows merged in per run.
	OOORows int `json:"oooRows"`
	// Runs is how many repetitions to time and average over.
	Runs int `json:"runs"`
	// SortThreshold overrides vect's quicksort/radix dispatch threshold
	// for this run; 0 means use vect.Sort's built-in default.
	SortThreshold int `json:"sortThreshold"`
	// WatchAddr, if non-empty, serves a websocket at this address that
	// broadcasts one progress message per completed run.
	WatchAddr string `json:"watchAddr"`
}

func defaultConfig() config {
	return config{
		DataRows:      1_000_000,
		OOORows:       10_000,
		Runs:          5,
		SortThreshold: 0,
	}
}

// loadConfig reads a bench.json run definition at path.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("loadConfig: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("loadConfig: parsing %s: %w", path, err)
	}
	if cfg.SortThreshold > 0 {
		cfg.SortThreshold = ints.Clamp(cfg.SortThreshold, 1, cfg.DataRows+cfg.OOORows)
	}
	return cfg, nil
}
