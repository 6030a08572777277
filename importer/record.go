package importer

import (
	"jobaudit/joblog"
	"strings"
)

type Record struct {
	RowNumber int
	Values    map[string]string
}

func (r Record) Get(keys ...string) string {
	value, _ := r.Lookup(keys...)
	return value
}

// Lookup is like Get but reports whether any of the keys exists as a column,
// so an empty cell can be told apart from a missing column.
func (r Record) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		normalized := normalizeHeader(key)
		if value, ok := r.Values[normalized]; ok {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

func recordsFromRows(rows [][]string) []Record {
	if len(rows) == 0 {
		return []Record{}
	}

	normalizedHeaders := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		normalizedHeaders[i] = normalizeHeader(header)
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		values := make(map[string]string, len(normalizedHeaders))
		for col := range normalizedHeaders {
			if col < len(row) {
				values[normalizedHeaders[col]] = row[col]
			} else {
				values[normalizedHeaders[col]] = ""
			}
		}

		records = append(records, Record{RowNumber: i + 2, Values: values})
	}
	return records
}

func logRowsFromRows(rows [][]string) []joblog.Row {
	out := make([]joblog.Row, 0, len(rows))
	for i, fields := range rows {
		out = append(out, joblog.Row{Number: i + 1, Fields: fields})
	}
	return out
}
