package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores benchmark results as CSV files under a timestamped
// subfolder of baseDir.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

// Dir returns the folder this writer stores records in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	path := filepath.Join(w.baseDir, "search_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"width", "height", "algorithm", "depth", "nodes_expanded", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Width),
			strconv.Itoa(record.Height),
			record.Algorithm,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.NodesExpanded),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"step", "player", "algorithm", "depth", "nodes_expanded", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Step),
			record.Player,
			record.Algorithm,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.NodesExpanded),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
