package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sampleTable() *Table {
	table := NewTable()
	table.Append(Row{
		State:            "Texas",
		Title:            "Budget vote, with a comma",
		URL:              "https://example.com/a",
		Source:           "Example News",
		PoliticalLeaning: 3.5,
		Date:             "2025-01-15",
	})
	table.Append(Row{
		State:            "Ohio",
		Title:            "Budget vote, with a comma",
		URL:              "https://example.com/a",
		Source:           "Example News",
		PoliticalLeaning: 3.5,
		Date:             "2025-01-15",
	})
	return table
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "news_political_data.csv")

	if err := WriteCSV(path, sampleTable()); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", loaded.Len())
	}
	rows := loaded.Rows()
	if rows[0].State != "Texas" || rows[1].State != "Ohio" {
		t.Errorf("Row order not preserved: %v, %v", rows[0].State, rows[1].State)
	}
	if rows[0].PoliticalLeaning != 3.5 {
		t.Errorf("Expected leaning 3.5, got %v", rows[0].PoliticalLeaning)
	}
	if rows[0].Title != "Budget vote, with a comma" {
		t.Errorf("Comma in title not preserved: %q", rows[0].Title)
	}
}

func TestWriteCSV_RefusesEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := WriteCSV(path, NewTable())
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("Expected ErrEmptyTable, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("Empty table must not create an artifact file")
	}
}

func TestWriteCSV_OverwritesPreviousArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(path, sampleTable()); err != nil {
		t.Fatal(err)
	}

	replacement := NewTable()
	replacement.Append(Row{State: "Maine", URL: "https://b", PoliticalLeaning: -1, Date: "2025-02-01"})
	if err := WriteCSV(path, replacement); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 1 {
		t.Errorf("Expected wholesale replacement with 1 row, got %d", loaded.Len())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file must not remain after a successful write")
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected error to wrap os.ErrNotExist, got %v", err)
	}
}

func TestReadCSV_RejectsMalformedLeaning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "state,title,url,source,political_leaning,date\n" +
		"Texas,Title,https://a,Src,not-a-number,2025-01-15\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadCSV(path); err == nil {
		t.Error("Expected error for malformed leaning value")
	}
}

func TestReadCSV_RejectsWrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("state,title,url\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadCSV(path); err == nil {
		t.Error("Expected error for wrong column count")
	}
}
