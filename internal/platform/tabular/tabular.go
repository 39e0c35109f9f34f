// Package tabular serializes flat records to comma-separated text and parses
// such text back into records keyed by header.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	ErrEmptyExport     = errors.New("no data to export")
	ErrMalformedImport = errors.New("csv must have at least a header and one data row")
)

// Record is one row keyed by header name
type Record map[string]string

// Table is an imported document: the header row in order plus the data rows
type Table struct {
	Headers []string
	Records []Record
}

// Export writes headers followed by one line per record, in header order.
// Values holding a comma, a quote or a line break are quoted with inner
// quotes doubled. Lines are separated by "\n" with no trailing newline.
func Export(headers []string, records []Record) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrEmptyExport
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, joinLine(headers))
	row := make([]string, len(headers))
	for _, rec := range records {
		for i, h := range headers {
			row[i] = rec[h]
		}
		lines = append(lines, joinLine(row))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

func joinLine(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return strings.Join(quoted, ",")
}

func quote(v string) string {
	if !strings.ContainsAny(v, ",\"\r\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// FileName builds the download name "{base}-{YYYY-MM-DD}.csv".
func FileName(base string, at time.Time) string {
	return fmt.Sprintf("%s-%s.csv", base, at.Format(time.DateOnly))
}

// Import parses text whose first line is the header row. Headers and values
// are trimmed. Rows whose field count differs from the header are dropped.
func Import(text string) (Table, error) {
	text = strings.TrimSpace(text)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: %w", ErrMalformedImport, err)
		}
		rows = append(rows, fields)
	}
	if len(rows) < 2 {
		return Table{}, ErrMalformedImport
	}

	headers := trimAll(rows[0])
	table := Table{Headers: headers}
	for _, fields := range rows[1:] {
		if len(fields) != len(headers) {
			continue
		}
		values := trimAll(fields)
		rec := make(Record, len(headers))
		for i, h := range headers {
			rec[h] = values[i]
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// WriteTo is Export straight into w.
func WriteTo(w io.Writer, headers []string, records []Record) error {
	data, err := Export(headers, records)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}
