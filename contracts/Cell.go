package contracts

import (
	"errors"
)

// RowKey and ColumnKey are stable identities of rows and columns. A key is never
// reused within a document session, even after its row or column is removed.
type RowKey int64

type ColumnKey int64

type CellKey struct {
	Row    RowKey
	Column ColumnKey
}

// CellValue is an overlay value. Present=false means the cell has no overlay entry
// and reads fall back to the original parse.
type CellValue struct {
	Text    string `json:"text"`
	Present bool   `json:"present"`
}

func Absent() CellValue {
	return CellValue{}
}

func Text(text string) CellValue {
	return CellValue{Text: text, Present: true}
}

type CellPosition struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type CellType string

const (
	CellTypeEmpty   CellType = "empty"
	CellTypeBoolean CellType = "boolean"
	CellTypeInteger CellType = "integer"
	CellTypeNumber  CellType = "number"
	CellTypeString  CellType = "string"
)

// EditedCell is a reachable overlay entry in visual coordinates.
type EditedCell struct {
	CellPosition
	Value string `json:"value"`
}

var IndexRangeError = errors.New("index map position out of range")

var PatchConflictError = errors.New("patch does not match document state")
