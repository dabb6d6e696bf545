package main

import (
	"fmt"
	"slices"
	"tabularDataEditor/contracts"
)

// GridModel keeps the original parse untouched and layers index maps and the value
// overlay on top of it. Original rows and columns get keys equal to their parse
// position, so the original value of a key is original[row][column].
type GridModel struct {
	original        [][]string
	originalColumns int

	rows    *IndexMap[contracts.RowKey]
	columns *IndexMap[contracts.ColumnKey]
	overlay *ValueOverlay

	nextRowKey    contracts.RowKey
	nextColumnKey contracts.ColumnKey
}

func NewGridModel(original [][]string) *GridModel {
	columnCount := 0
	for _, row := range original {
		columnCount = max(columnCount, len(row))
	}

	rowKeys := make([]contracts.RowKey, len(original))
	for i := range rowKeys {
		rowKeys[i] = contracts.RowKey(i)
	}
	columnKeys := make([]contracts.ColumnKey, columnCount)
	for i := range columnKeys {
		columnKeys[i] = contracts.ColumnKey(i)
	}

	return &GridModel{
		original:        original,
		originalColumns: columnCount,
		rows:            NewIndexMap(rowKeys),
		columns:         NewIndexMap(columnKeys),
		overlay:         NewValueOverlay(),
		nextRowKey:      contracts.RowKey(len(rowKeys)),
		nextColumnKey:   contracts.ColumnKey(len(columnKeys)),
	}
}

func (m *GridModel) RowCount() int {
	return m.rows.Len()
}

func (m *GridModel) ColumnCount() int {
	return m.columns.Len()
}

func (m *GridModel) Rows() *IndexMap[contracts.RowKey] {
	return m.rows
}

func (m *GridModel) Columns() *IndexMap[contracts.ColumnKey] {
	return m.columns
}

func (m *GridModel) Overlay() *ValueOverlay {
	return m.overlay
}

func (m *GridModel) Original() [][]string {
	return m.original
}

func (m *GridModel) MintRowKeys(count int) []contracts.RowKey {
	keys := make([]contracts.RowKey, count)
	for i := range keys {
		keys[i] = m.nextRowKey
		m.nextRowKey++
	}
	return keys
}

func (m *GridModel) MintColumnKeys(count int) []contracts.ColumnKey {
	keys := make([]contracts.ColumnKey, count)
	for i := range keys {
		keys[i] = m.nextColumnKey
		m.nextColumnKey++
	}
	return keys
}

func (m *GridModel) OriginalValue(key contracts.CellKey) string {
	return originalValue(m.original, key)
}

func (m *GridModel) ValueAt(key contracts.CellKey) string {
	if text, ok := m.overlay.Get(key); ok {
		return text
	}
	return m.OriginalValue(key)
}

func (m *GridModel) KeyAt(row int, column int) (contracts.CellKey, error) {
	rowKey, err := m.rows.KeyAt(row)
	if err != nil {
		return contracts.CellKey{}, err
	}
	columnKey, err := m.columns.KeyAt(column)
	if err != nil {
		return contracts.CellKey{}, err
	}
	return contracts.CellKey{Row: rowKey, Column: columnKey}, nil
}

// CellAt reads a visual position; out of range reads are empty.
func (m *GridModel) CellAt(row int, column int) string {
	key, err := m.KeyAt(row, column)
	if err != nil {
		return ""
	}
	return m.ValueAt(key)
}

// ReadRange returns the values of a clamped range row by row.
func (m *GridModel) ReadRange(rng contracts.CellRange) [][]string {
	rng, ok := rng.Clamp(m.RowCount(), m.ColumnCount())
	if !ok {
		return [][]string{}
	}

	rowKeys := m.rows.KeysIn(rng.FirstRow, rng.Rows())
	columnKeys := m.columns.KeysIn(rng.FirstColumn, rng.Columns())

	keys := make([]contracts.CellKey, 0, len(rowKeys)*len(columnKeys))
	for _, rowKey := range rowKeys {
		for _, columnKey := range columnKeys {
			keys = append(keys, contracts.CellKey{Row: rowKey, Column: columnKey})
		}
	}

	values := NewValuesGetterChain(m.overlay.Getter(), m.originalGetter())(keys)

	block := make([][]string, len(rowKeys))
	for i := range block {
		block[i] = make([]string, len(columnKeys))
		for j := range block[i] {
			if value := values[i*len(columnKeys)+j]; value != nil {
				block[i][j] = *value
			}
		}
	}
	return block
}

func (m *GridModel) originalGetter() CellKeyValuesGetter {
	return func(keys []contracts.CellKey) []*string {
		values := make([]*string, len(keys))
		for index, key := range keys {
			if key.Row >= 0 && int(key.Row) < len(m.original) && key.Column >= 0 && int(key.Column) < m.originalColumns {
				value := m.OriginalValue(key)
				values[index] = &value
			}
		}
		return values
	}
}

// Normalize turns a write into the overlay value it should become: writing back the
// original text drops the overlay entry.
func (m *GridModel) Normalize(key contracts.CellKey, text string) contracts.CellValue {
	if text == m.OriginalValue(key) {
		return contracts.Absent()
	}
	return contracts.Text(text)
}

// Apply replays a patch on the model. The patch must match the current state; a
// mismatch means the history is corrupt. A patch that fails leaves the model as it was.
func (m *GridModel) Apply(patch contracts.Patch) error {
	switch p := patch.(type) {
	case nil:
		return nil

	case *contracts.RowSplicePatch:
		if err := checkRemoved(m.rows, p.Position, p.Removed); err != nil {
			return fmt.Errorf("row splice: %w", err)
		}
		_, err := m.rows.Splice(p.Position, len(p.Removed), p.Inserted)
		return err

	case *contracts.ColumnSplicePatch:
		if err := checkRemoved(m.columns, p.Position, p.Removed); err != nil {
			return fmt.Errorf("column splice: %w", err)
		}
		_, err := m.columns.Splice(p.Position, len(p.Removed), p.Inserted)
		return err

	case *contracts.CellSetPatch:
		if err := m.checkChanges(p.Changes); err != nil {
			return err
		}
		for _, change := range p.Changes {
			m.overlay.Put(change.Key, change.New)
		}
		return nil

	case *contracts.CompositePatch:
		for index, part := range p.Parts {
			if err := m.Apply(part); err != nil {
				m.rollback(p.Parts[:index])
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("%w: unsupported patch %T", contracts.PatchConflictError, patch)
}

// checkChanges validates every change before any is written. A key changed twice
// must see its own earlier write.
func (m *GridModel) checkChanges(changes []contracts.CellChange) error {
	pending := make(map[contracts.CellKey]contracts.CellValue, len(changes))
	for _, change := range changes {
		current, ok := pending[change.Key]
		if !ok {
			current = m.overlay.Lookup(change.Key)
		}
		if current != change.Old {
			return fmt.Errorf("%w: cell %v holds %+v, patch expects %+v", contracts.PatchConflictError, change.Key, current, change.Old)
		}
		pending[change.Key] = change.New
	}
	return nil
}

// rollback undoes parts that were already applied, last first.
func (m *GridModel) rollback(applied []contracts.Patch) {
	for index := len(applied) - 1; index >= 0; index-- {
		if err := m.Apply(applied[index].Inverse()); err != nil {
			panic(fmt.Errorf("rollback of %s failed: %w", applied[index].Kind(), err))
		}
	}
}

func checkRemoved[K IndexKey](index *IndexMap[K], position int, removed []K) error {
	if !slices.Equal(index.KeysIn(position, len(removed)), removed) {
		return fmt.Errorf("%w: removed keys differ at position %d", contracts.PatchConflictError, position)
	}
	return nil
}

func originalValue(original [][]string, key contracts.CellKey) string {
	if key.Row < 0 || int(key.Row) >= len(original) {
		return ""
	}
	row := original[key.Row]
	if key.Column < 0 || int(key.Column) >= len(row) {
		return ""
	}
	return row[key.Column]
}
