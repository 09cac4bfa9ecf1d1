package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// ErrEmptyTable is returned when a write is attempted with no rows. Callers
// are expected to treat an empty run as a distinct "no data" outcome and keep
// the previous artifact untouched.
var ErrEmptyTable = errors.New("dataset table is empty")

var header = []string{"state", "title", "url", "source", "political_leaning", "date"}

// WriteCSV persists the table to path, replacing any previous artifact. The
// data is written to a temporary file in the same directory and renamed into
// place, so readers observe either the old artifact or the complete new one.
func WriteCSV(path string, table *Table) error {
	if table.Empty() {
		return ErrEmptyTable
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(header)
	for _, row := range table.Rows() {
		if writeErr != nil {
			break
		}
		writeErr = w.Write([]string{
			row.State,
			row.Title,
			row.URL,
			row.Source,
			strconv.FormatFloat(row.PoliticalLeaning, 'f', -1, 64),
			row.Date,
		})
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if err := f.Close(); writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write CSV: %w", writeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace artifact: %w", err)
	}

	return nil
}

// ReadCSV loads a previously written artifact. It validates the header, the
// column count and that every leaning value is a finite number. A missing
// file surfaces as an error wrapping os.ErrNotExist so callers can report
// "no dataset yet" distinctly.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header", path)
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("dataset %s has %d columns, expected %d", path, len(records[0]), len(header))
	}

	table := NewTable()
	for i, record := range records[1:] {
		leaning, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid political_leaning %q: %w", i+1, record[4], err)
		}
		if math.IsNaN(leaning) || math.IsInf(leaning, 0) {
			return nil, fmt.Errorf("row %d: political_leaning is not finite: %q", i+1, record[4])
		}

		table.Append(Row{
			State:            record[0],
			Title:            record[1],
			URL:              record[2],
			Source:           record[3],
			PoliticalLeaning: leaning,
			Date:             record[5],
		})
	}

	return table, nil
}
