package main

import (
	"strings"
	"tabularDataEditor/contracts"
)

// SerializeDelimited writes the grid in current visual order, taking overlay values
// where present and the original parse otherwise. A blank line of the original text
// stays blank while all its cells are empty.
func SerializeDelimited(
	rows *IndexMap[contracts.RowKey], columns *IndexMap[contracts.ColumnKey],
	overlay *ValueOverlay, original [][]string, format contracts.DocumentFormat,
) string {
	delimiter := format.Delimiter
	if delimiter == "" {
		delimiter = contracts.DefaultDelimiter
	}
	terminator := format.Terminator
	if terminator == "" {
		terminator = contracts.DefaultTerminator
	}

	rowKeys := rows.Keys()
	columnKeys := columns.Keys()

	var builder strings.Builder
	fields := make([]string, len(columnKeys))
	for index, rowKey := range rowKeys {
		if index > 0 {
			builder.WriteString(terminator)
		}

		for j, columnKey := range columnKeys {
			key := contracts.CellKey{Row: rowKey, Column: columnKey}
			if text, ok := overlay.Get(key); ok {
				fields[j] = text
			} else {
				fields[j] = originalValue(original, key)
			}
		}
		if isBlankOriginal(original, rowKey) && allEmpty(fields) {
			continue
		}
		writeRow(&builder, fields, delimiter)
	}

	if format.TrailingTerminator && len(rowKeys) > 0 {
		builder.WriteString(terminator)
	}

	return builder.String()
}

func isBlankOriginal(original [][]string, rowKey contracts.RowKey) bool {
	return int(rowKey) < len(original) && isBlankRecord(original[rowKey])
}

func allEmpty(fields []string) bool {
	for _, field := range fields {
		if field != "" {
			return false
		}
	}
	return true
}

func writeRow(builder *strings.Builder, fields []string, delimiter string) {
	for i, field := range fields {
		if i > 0 {
			builder.WriteString(delimiter)
		}
		writeField(builder, field, delimiter)
	}
}

func writeField(builder *strings.Builder, field string, delimiter string) {
	if !fieldNeedsQuotes(field, delimiter) {
		builder.WriteString(field)
		return
	}

	builder.WriteByte('"')
	builder.WriteString(strings.ReplaceAll(field, `"`, `""`))
	builder.WriteByte('"')
}

func fieldNeedsQuotes(field string, delimiter string) bool {
	return strings.Contains(field, delimiter) ||
		strings.HasPrefix(field, `"`) ||
		strings.ContainsAny(field, "\r\n")
}
