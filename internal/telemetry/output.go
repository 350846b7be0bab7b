package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"vita/internal/sims/vita"
)

// OutputManager writes structured run output: a per-generation stats CSV and
// a YAML snapshot of the configuration that produced it. A nil manager is
// valid and discards everything, so callers can wire it unconditionally.
type OutputManager struct {
	dir       string
	statsFile *os.File

	statsHeaderWritten bool
}

// NewOutputManager creates the output directory and stats file. Returns nil
// if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	return &OutputManager{dir: dir, statsFile: f}, nil
}

// WriteConfig saves the run configuration as YAML alongside the stats.
func (om *OutputManager) WriteConfig(cfg vita.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a generation record to stats.csv, emitting the header on
// the first call.
func (om *OutputManager) WriteStats(s GenStats) error {
	if om == nil {
		return nil
	}
	rows := []GenStats{s}
	if !om.statsHeaderWritten {
		if err := gocsv.MarshalFile(&rows, om.statsFile); err != nil {
			return fmt.Errorf("writing stats header: %w", err)
		}
		om.statsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(&rows, om.statsFile); err != nil {
		return fmt.Errorf("writing stats row: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying files.
func (om *OutputManager) Close() error {
	if om == nil || om.statsFile == nil {
		return nil
	}
	err := om.statsFile.Close()
	om.statsFile = nil
	return err
}
