package main

import (
	"strconv"
	"strings"
	"tabularDataEditor/contracts"
)

type CellTypeInferrer struct {
}

func NewCellTypeInferrer() *CellTypeInferrer {
	return &CellTypeInferrer{}
}

func (i *CellTypeInferrer) InferCell(text string) contracts.CellType {
	switch parseCellValue(text).(type) {
	case nil:
		return contracts.CellTypeEmpty
	case bool:
		return contracts.CellTypeBoolean
	case int64:
		return contracts.CellTypeInteger
	case float64:
		return contracts.CellTypeNumber
	}
	return contracts.CellTypeString
}

// InferColumns returns one type per visible column: the most general type of its
// non-empty cells. The header row does not count.
func (i *CellTypeInferrer) InferColumns(grid contracts.GridReader) []contracts.CellType {
	columnCount := grid.ColumnCount()
	types := make([]contracts.CellType, columnCount)
	for column := range types {
		types[column] = contracts.CellTypeEmpty
	}

	firstRow := 0
	if grid.Header() != nil {
		firstRow = 1
	}

	for row := firstRow; row < grid.RowCount(); row++ {
		for column := 0; column < columnCount; column++ {
			types[column] = widenCellType(types[column], i.InferCell(grid.CellAt(row, column)))
		}
	}

	return types
}

func widenCellType(current contracts.CellType, next contracts.CellType) contracts.CellType {
	switch {
	case next == contracts.CellTypeEmpty || current == next:
		return current
	case current == contracts.CellTypeEmpty:
		return next
	case current == contracts.CellTypeInteger && next == contracts.CellTypeNumber,
		current == contracts.CellTypeNumber && next == contracts.CellTypeInteger:
		return contracts.CellTypeNumber
	}
	return contracts.CellTypeString
}

// parseCellValue gives the typed value of a cell text: nil for empty, then bool,
// int64, float64 and finally the string itself.
func parseCellValue(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if strings.EqualFold(trimmed, "true") {
		return true
	} else if strings.EqualFold(trimmed, "false") {
		return false
	}

	if intValue, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return intValue
	}

	// ParseFloat also accepts inf and nan spellings
	if strings.ContainsAny(trimmed, "0123456789") {
		if floatValue, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return floatValue
		}
	}

	return text
}
