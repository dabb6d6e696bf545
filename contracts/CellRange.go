package contracts

// CellRange is a rectangular block of cells, bounds inclusive.
type CellRange struct {
	FirstRow    int `json:"first_row"`
	FirstColumn int `json:"first_column"`
	LastRow     int `json:"last_row"`
	LastColumn  int `json:"last_column"`
}

func NewCellRange(row, column, rows, columns int) CellRange {
	return CellRange{
		FirstRow:    row,
		FirstColumn: column,
		LastRow:     row + rows - 1,
		LastColumn:  column + columns - 1,
	}
}

func (r CellRange) Normalize() CellRange {
	if r.FirstRow > r.LastRow {
		r.FirstRow, r.LastRow = r.LastRow, r.FirstRow
	}
	if r.FirstColumn > r.LastColumn {
		r.FirstColumn, r.LastColumn = r.LastColumn, r.FirstColumn
	}
	return r
}

func (r CellRange) Rows() int {
	return r.LastRow - r.FirstRow + 1
}

func (r CellRange) Columns() int {
	return r.LastColumn - r.FirstColumn + 1
}

// Clamp cuts the range to a rowCount x columnCount grid. ok is false when nothing is left.
func (r CellRange) Clamp(rowCount int, columnCount int) (clamped CellRange, ok bool) {
	r = r.Normalize()
	r.FirstRow = max(r.FirstRow, 0)
	r.FirstColumn = max(r.FirstColumn, 0)
	r.LastRow = min(r.LastRow, rowCount-1)
	r.LastColumn = min(r.LastColumn, columnCount-1)

	if r.FirstRow > r.LastRow || r.FirstColumn > r.LastColumn {
		return CellRange{}, false
	}
	return r, true
}

func (r CellRange) Shift(rows int, columns int) CellRange {
	r.FirstRow += rows
	r.LastRow += rows
	r.FirstColumn += columns
	r.LastColumn += columns
	return r
}

// Union returns the bounding range of both.
func (r CellRange) Union(other CellRange) CellRange {
	return CellRange{
		FirstRow:    min(r.FirstRow, other.FirstRow),
		FirstColumn: min(r.FirstColumn, other.FirstColumn),
		LastRow:     max(r.LastRow, other.LastRow),
		LastColumn:  max(r.LastColumn, other.LastColumn),
	}
}

type Selection struct {
	Active bool      `json:"active"`
	Range  CellRange `json:"range"`
}

func NoSelection() Selection {
	return Selection{}
}

func Select(r CellRange) Selection {
	return Selection{Active: true, Range: r.Normalize()}
}
