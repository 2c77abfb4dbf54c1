package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

// ErrNotRecords is returned when a value cannot be laid out as CSV rows.
var ErrNotRecords = &toolerr.FormatError{Msg: "Data must be a list of objects for CSV conversion"}

// ParseCSV reads comma-separated records into an array of objects keyed by
// the header record. Quoted fields may contain commas and newlines. Fields
// are trimmed, blank lines are skipped and records whose field count differs
// from the header are dropped. Stray or unterminated quotes are a ParseError.
func ParseCSV(data string) (Value, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return Value{}, &toolerr.FormatError{Msg: "Empty CSV data"}
	}

	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return Value{}, csvError(err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := Value{kind: Array, items: []Value{}}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Value{}, csvError(err)
		}
		if len(record) != len(header) {
			continue
		}

		row := Value{kind: Object}
		for i, field := range record {
			row.set(header[i], NewString(strings.TrimSpace(field)))
		}
		rows.items = append(rows.items, row)
	}
	return rows, nil
}

func csvError(err error) error {
	return &toolerr.ParseError{Subject: "CSV", Detail: err.Error()}
}

// RenderCSV lays out an array of objects as CSV. The header is the first
// object's keys; keys missing from later objects render as empty cells.
// An empty array renders as an empty string.
func RenderCSV(v Value) (string, error) {
	if v.kind != Array {
		return "", ErrNotRecords
	}
	for _, item := range v.items {
		if item.kind != Object {
			return "", ErrNotRecords
		}
	}
	if len(v.items) == 0 {
		return "", nil
	}

	header := v.items[0].Keys()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := writeRecord(w, &buf, header); err != nil {
		return "", err
	}
	for _, item := range v.items {
		record := make([]string, len(header))
		for i, key := range header {
			if cell, ok := item.Get(key); ok {
				record[i] = Cell(cell)
			}
		}
		if err := writeRecord(w, &buf, record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// writeRecord writes record through w. A lone empty field is written as ""
// since csv.Writer would emit a blank line, which readers skip.
func writeRecord(w *csv.Writer, buf *bytes.Buffer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return w.Write(record)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	buf.WriteString("\"\"\n")
	return nil
}

// Cell renders a single value as CSV cell text: strings raw, numbers as
// written, booleans as true/false, null as empty and nested values as
// compact JSON.
func Cell(v Value) string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		if v.boolean {
			return "true"
		}
		return "false"
	case Number, String:
		return v.text
	default:
		return CompactJSON(v)
	}
}
