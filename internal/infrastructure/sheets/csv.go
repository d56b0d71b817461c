package sheets

import "strings"

// Record is one decoded CSV data line keyed by header label.
type Record map[string]string

// DecodeCSV parses a raw CSV export into header-keyed records. The first
// line is the header row; a payload without at least one data line decodes
// to nothing. Values are trimmed, and data lines shorter than the header get
// empty strings for the missing columns.
//
// Quotes only toggle whether a comma acts as a separator; escaped quote
// characters inside quoted fields are not supported, matching what the
// export service actually emits.
func DecodeCSV(raw string) []Record {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := decodeLine(lines[0])
	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := decodeLine(line)
		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(values) {
				record[header] = values[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

func decodeLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}
