package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"tabularDataEditor/contracts"

	"github.com/xuri/excelize/v2"
)

const XlsxSheetName = "Sheet1"

// XlsxExporter writes the visible grid into a single-sheet workbook. Columns inferred
// as numeric or boolean are written as typed values, everything else as text.
type XlsxExporter struct {
}

func NewXlsxExporter() *XlsxExporter {
	return &XlsxExporter{}
}

func (e *XlsxExporter) Export(grid contracts.GridReader, types []contracts.CellType, w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	streamWriter, err := f.NewStreamWriter(XlsxSheetName)
	if err != nil {
		return err
	}

	firstDataRow := 0
	if header := grid.Header(); header != nil {
		firstDataRow = 1
		if err = e.writeHeader(streamWriter, header); err != nil {
			return err
		}
	}

	columnCount := grid.ColumnCount()
	for row := firstDataRow; row < grid.RowCount(); row++ {
		values := make([]interface{}, columnCount)
		for column := 0; column < columnCount; column++ {
			values[column] = e.typedValue(grid.CellAt(row, column), columnType(types, column))
		}

		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		if err = streamWriter.SetRow(cell, values); err != nil {
			return fmt.Errorf("xlsx row %d: %w", row, err)
		}
	}

	if err = streamWriter.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func (e *XlsxExporter) writeHeader(streamWriter *excelize.StreamWriter, header []string) error {
	values := make([]interface{}, len(header))
	for i, title := range header {
		values[i] = title
	}
	return streamWriter.SetRow("A1", values)
}

func (e *XlsxExporter) typedValue(text string, cellType contracts.CellType) interface{} {
	if text == "" {
		return nil
	}

	trimmed := strings.TrimSpace(text)
	switch cellType {
	case contracts.CellTypeInteger:
		if value, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return value
		}
	case contracts.CellTypeNumber:
		if value, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return value
		}
	case contracts.CellTypeBoolean:
		return strings.EqualFold(trimmed, "true")
	}

	return text
}

func columnType(types []contracts.CellType, column int) contracts.CellType {
	if column < len(types) {
		return types[column]
	}
	return contracts.CellTypeString
}
