package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// table is a header-indexed CSV document.
type table struct {
	cols map[string]int
	rows [][]string
}

// parseCSV reads an entire CSV stream with a header row. Rows may be
// ragged; missing trailing fields read as empty.
func parseCSV(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record)
	}
	return &table{cols: cols, rows: rows}, nil
}

// field returns the named column of a row, empty when absent.
func (t *table) field(row []string, name string) string {
	i, ok := t.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// strOrNil maps an empty CSV field to SQL NULL.
func strOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// intOrNil parses an integer field, mapping empty or malformed to NULL.
func intOrNil(s string) any {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return n
}
