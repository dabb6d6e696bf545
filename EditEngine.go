package main

import (
	"fmt"
	"tabularDataEditor/contracts"
)

// EditEngine builds a patch for every edit command, applies it to the model right
// away and returns it. A nil patch means the command was a no-op.
type EditEngine struct {
	model     *GridModel
	delimiter string
}

func NewEditEngine(model *GridModel, delimiter string) *EditEngine {
	return &EditEngine{model: model, delimiter: delimiter}
}

func (e *EditEngine) InsertRows(position int, count int) contracts.Patch {
	if count <= 0 {
		return nil
	}

	return e.apply(&contracts.RowSplicePatch{
		Position: clamp(position, 0, e.model.RowCount()),
		Inserted: e.model.MintRowKeys(count),
	})
}

func (e *EditEngine) InsertColumns(position int, count int) contracts.Patch {
	if count <= 0 {
		return nil
	}

	return e.apply(&contracts.ColumnSplicePatch{
		Position: clamp(position, 0, e.model.ColumnCount()),
		Inserted: e.model.MintColumnKeys(count),
	})
}

func (e *EditEngine) RemoveRows(position int, count int) contracts.Patch {
	position = clamp(position, 0, e.model.RowCount())
	removed := e.model.Rows().KeysIn(position, count)
	if len(removed) == 0 {
		return nil
	}

	return e.apply(&contracts.RowSplicePatch{Position: position, Removed: removed})
}

func (e *EditEngine) RemoveColumns(position int, count int) contracts.Patch {
	position = clamp(position, 0, e.model.ColumnCount())
	removed := e.model.Columns().KeysIn(position, count)
	if len(removed) == 0 {
		return nil
	}

	return e.apply(&contracts.ColumnSplicePatch{Position: position, Removed: removed})
}

// MoveRows relocates span rows starting at from so that the first one lands on to.
// Moving onto the same position still yields a patch.
func (e *EditEngine) MoveRows(from int, to int, span int) contracts.Patch {
	length := e.model.RowCount()
	from, to, span, ok := clampMove(from, to, span, length)
	if !ok {
		return nil
	}

	moved := e.model.Rows().KeysIn(from, span)
	return e.apply(contracts.Compose(
		&contracts.RowSplicePatch{Position: from, Removed: moved},
		&contracts.RowSplicePatch{Position: to, Inserted: moved},
	))
}

func (e *EditEngine) MoveColumns(from int, to int, span int) contracts.Patch {
	length := e.model.ColumnCount()
	from, to, span, ok := clampMove(from, to, span, length)
	if !ok {
		return nil
	}

	moved := e.model.Columns().KeysIn(from, span)
	return e.apply(contracts.Compose(
		&contracts.ColumnSplicePatch{Position: from, Removed: moved},
		&contracts.ColumnSplicePatch{Position: to, Inserted: moved},
	))
}

// SetCell always records a change, even when the value does not change.
func (e *EditEngine) SetCell(row int, column int, value string) contracts.Patch {
	key, err := e.model.KeyAt(row, column)
	if err != nil {
		return nil
	}

	return e.apply(&contracts.CellSetPatch{Changes: []contracts.CellChange{e.change(key, value)}})
}

// Clear writes the empty string to every cell of the range. Cells whose original
// text is empty lose their overlay entry instead.
func (e *EditEngine) Clear(rng contracts.CellRange) contracts.Patch {
	rng, ok := rng.Clamp(e.model.RowCount(), e.model.ColumnCount())
	if !ok {
		return nil
	}

	rowKeys := e.model.Rows().KeysIn(rng.FirstRow, rng.Rows())
	columnKeys := e.model.Columns().KeysIn(rng.FirstColumn, rng.Columns())

	overlay := e.model.Overlay()
	previous := overlay.ClearRange(rowKeys, columnKeys)

	changes := make([]contracts.CellChange, 0, len(previous))
	for _, rowKey := range rowKeys {
		for _, columnKey := range columnKeys {
			key := contracts.CellKey{Row: rowKey, Column: columnKey}
			cleared := e.model.Normalize(key, "")
			if !cleared.Present {
				overlay.Delete(key)
			}
			changes = append(changes, contracts.CellChange{Key: key, Old: previous[key], New: cleared})
		}
	}

	return &contracts.CellSetPatch{Changes: changes}
}

func (e *EditEngine) Copy(rng contracts.CellRange, clipboard contracts.Clipboard) error {
	block := e.model.ReadRange(rng)
	if len(block) == 0 {
		return nil
	}

	return clipboard.Write(FormatBlock(block, e.delimiter))
}

func (e *EditEngine) Cut(rng contracts.CellRange, clipboard contracts.Clipboard) (contracts.Patch, error) {
	if err := e.Copy(rng, clipboard); err != nil {
		return nil, fmt.Errorf("cut: %w", err)
	}
	return e.Clear(rng), nil
}

// Paste writes the delimited block at origin, growing the grid first when the block
// does not fit. The result is one compound patch.
func (e *EditEngine) Paste(origin contracts.CellPosition, text string) contracts.Patch {
	block := ParseBlock(text, e.delimiter)
	if len(block) == 0 {
		return nil
	}

	blockRows := len(block)
	blockColumns := len(block[0])
	row := clamp(origin.Row, 0, e.model.RowCount())
	column := clamp(origin.Column, 0, e.model.ColumnCount())

	rowGrow := e.InsertRows(e.model.RowCount(), row+blockRows-e.model.RowCount())
	columnGrow := e.InsertColumns(e.model.ColumnCount(), column+blockColumns-e.model.ColumnCount())

	rowKeys := e.model.Rows().KeysIn(row, blockRows)
	columnKeys := e.model.Columns().KeysIn(column, blockColumns)

	changes := make([]contracts.CellChange, 0, blockRows*blockColumns)
	for i, rowKey := range rowKeys {
		for j, columnKey := range columnKeys {
			changes = append(changes, e.change(contracts.CellKey{Row: rowKey, Column: columnKey}, block[i][j]))
		}
	}

	values := e.apply(&contracts.CellSetPatch{Changes: changes})
	return contracts.Compose(rowGrow, columnGrow, values)
}

func (e *EditEngine) change(key contracts.CellKey, text string) contracts.CellChange {
	return contracts.CellChange{
		Key: key,
		Old: e.model.Overlay().Lookup(key),
		New: e.model.Normalize(key, text),
	}
}

// apply panics on failure. Patches are built from the current state, so they always apply.
func (e *EditEngine) apply(patch contracts.Patch) contracts.Patch {
	if err := e.model.Apply(patch); err != nil {
		panic(fmt.Errorf("edit engine: %w", err))
	}
	return patch
}

func clampMove(from int, to int, span int, length int) (int, int, int, bool) {
	from = clamp(from, 0, length)
	span = clamp(span, 0, length-from)
	if span == 0 {
		return 0, 0, 0, false
	}
	to = clamp(to, 0, length-span)
	return from, to, span, true
}
