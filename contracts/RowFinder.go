package contracts

import "errors"

type RowFinder interface {
	// FindText returns the positions of cells containing text, row by row.
	FindText(grid GridReader, text string) []CellPosition
	// FindRows returns the visual row positions for which the expression is true.
	FindRows(grid GridReader, expression string) ([]int, error)
}

type GridReader interface {
	RowCount() int
	ColumnCount() int
	CellAt(row int, column int) string
	Header() []string
}

const ExpressionPrefix = "="

var ExpressionError = errors.New("expression error")
