package main

import (
	"errors"
	"fmt"
	"strings"
	"tabularDataEditor/contracts"
)

var UnterminatedQuoteError = errors.New("unterminated quoted field")

// ParseDelimited splits text into rows on the first line break style found outside
// quotes and into fields on delimiter. Rows are padded to the widest row.
func ParseDelimited(text string, delimiter string) (*contracts.ParsedDocument, error) {
	if delimiter == "" {
		delimiter = contracts.DefaultDelimiter
	}

	records, err := scanRecords(text, delimiter)
	if err != nil {
		return nil, err
	}

	format := contracts.DocumentFormat{
		Delimiter:          delimiter,
		Terminator:         records.terminator,
		TrailingTerminator: records.trailing,
	}
	if format.Terminator == "" {
		format.Terminator = contracts.DefaultTerminator
	}

	return &contracts.ParsedDocument{
		Rows:   padRows(records.rows, true),
		Format: format,
	}, nil
}

// ParseBlock parses clipboard text. When the text as a whole does not parse, lines
// are taken one by one and a line whose quoting is broken is kept whole as a single
// cell.
func ParseBlock(text string, delimiter string) [][]string {
	if text == "" {
		return nil
	}

	if records, err := scanRecords(text, delimiter); err == nil {
		return padRows(records.rows, false)
	}

	lines := splitLines(text)
	block := make([][]string, 0, len(lines))
	for _, line := range lines {
		records, err := scanRecords(line, delimiter)
		if err != nil || len(records.rows) != 1 {
			block = append(block, []string{line})
			continue
		}
		block = append(block, records.rows[0])
	}

	return padRows(block, false)
}

// FormatBlock is the clipboard form of a block of cells.
func FormatBlock(block [][]string, delimiter string) string {
	var builder strings.Builder
	for _, row := range block {
		writeRow(&builder, row, delimiter)
		builder.WriteString(contracts.DefaultTerminator)
	}
	return builder.String()
}

type scannedRecords struct {
	rows       [][]string
	terminator string
	trailing   bool
}

func scanRecords(text string, delimiter string) (scannedRecords, error) {
	result := scannedRecords{rows: [][]string{}}

	var field strings.Builder
	var row []string
	inQuotes := false
	quoted := false
	rowStarted := false

	endField := func() {
		row = append(row, field.String())
		field.Reset()
		quoted = false
	}

	for i := 0; i < len(text); {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteByte(c)
			i++
			continue
		}

		rowStarted = true

		switch {
		case c == '"' && field.Len() == 0 && !quoted:
			inQuotes = true
			quoted = true
			i++

		case strings.HasPrefix(text[i:], delimiter):
			endField()
			i += len(delimiter)

		case c == '\r' || c == '\n':
			terminator := string(c)
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				terminator = "\r\n"
			}
			if result.terminator == "" {
				result.terminator = terminator
			}
			endField()
			result.rows = append(result.rows, row)
			row = nil
			rowStarted = false
			i += len(terminator)

		default:
			field.WriteByte(c)
			i++
		}
	}

	if inQuotes {
		return result, fmt.Errorf("%w: row %d", UnterminatedQuoteError, len(result.rows))
	}

	if rowStarted {
		endField()
		result.rows = append(result.rows, row)
	} else if len(result.rows) > 0 {
		result.trailing = true
	}

	return result, nil
}

func splitLines(text string) []string {
	lines := make([]string, 0)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// padRows pads rows to the widest row. With keepBlank a blank line stays a single
// empty field, so it is written back as a blank line.
func padRows(rows [][]string, keepBlank bool) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		if keepBlank && isBlankRecord(row) {
			continue
		}
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

func isBlankRecord(row []string) bool {
	return len(row) == 1 && row[0] == ""
}
