package gateway

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
)

// encoding selects how the raw bytes of an input file are decoded.
type encoding int

const (
	encodingUTF8 encoding = iota
	encodingWindows1252
)

// table is a CSV file read fully into memory with a case-insensitive header
// index. Records wider than the header are right-aligned against it, which
// is how a trailing delimiter shifts columns in the bank export.
type table struct {
	file    string
	columns map[string]int
	width   int
	rows    [][]string
	missing map[string]bool
}

func readTable(path string, enc encoding, skipBanner bool) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var src io.Reader = file
	if enc == encodingWindows1252 {
		src = charmap.Windows1252.NewDecoder().Reader(file)
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if skipBanner {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("failed to read banner from %s: %w", path, err)
		}
	}
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	t := &table{
		file:    path,
		columns: make(map[string]int, len(header)),
		width:   len(header),
		missing: make(map[string]bool),
	}
	for i, name := range header {
		key := normalizeColumn(name)
		if _, dup := t.columns[key]; !dup {
			t.columns[key] = i
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if isBlank(record) {
			continue
		}
		t.rows = append(t.rows, record)
	}
	return t, nil
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// get returns the cell of the first matching column name, or "" when the
// table has none of them. A missing column is logged once per table.
func (t *table) get(log zerolog.Logger, record []string, names ...string) string {
	offset := 0
	if len(record) > t.width {
		offset = len(record) - t.width
	}
	for _, n := range names {
		idx, ok := t.columns[normalizeColumn(n)]
		if !ok {
			continue
		}
		idx += offset
		if idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}
	if !t.missing[names[0]] {
		t.missing[names[0]] = true
		log.Warn().Str("file", t.file).Str("column", names[0]).Msg("column missing, values read as zero")
	}
	return ""
}
