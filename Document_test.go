package main

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tabularDataEditor/contracts"
	"tabularDataEditor/mocks"
)

func _newDocument(t *testing.T, text string, options ...DocumentOption) *Document {
	parsed, err := ParseDelimited(text, ",")
	require.NoError(t, err)
	return NewDocument(parsed, options...)
}

type _documentState struct {
	rows      []contracts.RowKey
	columns   []contracts.ColumnKey
	overlay   map[contracts.CellKey]string
	selection contracts.Selection
}

func _captureState(d *Document) _documentState {
	return _documentState{
		rows:      d.Model().Rows().Keys(),
		columns:   d.Model().Columns().Keys(),
		overlay:   maps.Clone(d.Model().Overlay().values),
		selection: d.Selection(),
	}
}

func TestDocument_EditScenario(t *testing.T) {
	text := "a,b,c\n1,2,3\nx,y,z\n"
	d := _newDocument(t, text)

	_, ok := d.InsertRowsAbove(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 4, d.RowCount())
	assert.Equal(t, [][]string{{"", "", ""}}, d.Window(contracts.NewCellRange(1, 0, 1, 3)))

	_, ok = d.Undo()
	assert.True(t, ok)
	assert.Equal(t, []contracts.RowKey{0, 1, 2}, d.Model().Rows().Keys())

	d.RemoveColumns(0, 1)
	assert.Equal(t, "b", d.CellAt(0, 0))

	d.SetCell(0, 0, "B")
	value, present := d.Model().Overlay().Get(contracts.CellKey{Row: 0, Column: 1})
	assert.True(t, present)
	assert.Equal(t, "B", value)

	d.Undo()
	d.Undo()
	assert.Equal(t, []contracts.ColumnKey{0, 1, 2}, d.Model().Columns().Keys())
	assert.Equal(t, 0, d.Model().Overlay().Len())
	assert.Equal(t, text, d.Serialize())
	assert.False(t, d.CanUndo())
}

func TestDocument_PasteIsOneTransaction(t *testing.T) {
	d := _newDocument(t, "a,b,c\n1,2,3\nx,y,z\n")

	assert.NoError(t, d.Copy(contracts.NewCellRange(0, 0, 2, 2)))
	_, ok, err := d.Paste(contracts.CellPosition{Row: 2, Column: 2})

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, d.RowCount())
	assert.Equal(t, 4, d.ColumnCount())
	assert.Equal(t, contracts.PatchComposite, d.Log().Top().Patch.Kind())
	assert.Equal(t, contracts.Select(contracts.NewCellRange(2, 2, 2, 2)), d.Selection())
	assert.Equal(t, 1, d.Log().UndoDepth())

	d.Undo()

	assert.Equal(t, 3, d.RowCount())
	assert.Equal(t, 3, d.ColumnCount())
	assert.Equal(t, "z", d.CellAt(2, 2))
	assert.False(t, d.CanUndo())
}

func TestDocument_UndoRedoRestoresEveryState(t *testing.T) {
	d := _newDocument(t, "a,b,c\n1,2,3\nx,y,z\n")
	d.Select(contracts.Select(contracts.NewCellRange(0, 0, 1, 1)))

	states := []_documentState{_captureState(d)}
	steps := []func(){
		func() { d.InsertRowsBelow(0, 2) },
		func() { d.SetCell(1, 1, "new") },
		func() { d.MoveColumns(0, 2, 1) },
		func() { d.Cut(contracts.NewCellRange(0, 0, 2, 2)) },
		func() { d.Paste(contracts.CellPosition{Row: 4, Column: 2}) },
		func() { d.RemoveRows(0, 1) },
		func() { d.InsertColumnsLeft(1, 1) },
		func() { d.SetCell(0, 0, "a") },
		func() { d.Clear(contracts.NewCellRange(0, 0, 10, 10)) },
		func() { d.MoveRows(2, 0, 2) },
		func() { d.InsertColumnsRight(0, 1) },
		func() { d.RemoveColumns(1, 2) },
	}
	for _, step := range steps {
		step()
		states = append(states, _captureState(d))
	}
	assert.Equal(t, len(steps), d.Log().UndoDepth())

	for i := len(states) - 2; i >= 0; i-- {
		_, ok := d.Undo()
		assert.True(t, ok)
		assert.Equal(t, states[i], _captureState(d), "after undo to state %d", i)
	}
	_, ok := d.Undo()
	assert.False(t, ok)

	for i := 1; i < len(states); i++ {
		_, ok := d.Redo()
		assert.True(t, ok)
		assert.Equal(t, states[i], _captureState(d), "after redo to state %d", i)
	}
	_, ok = d.Redo()
	assert.False(t, ok)
}

func TestDocument_SetCell(t *testing.T) {
	t.Run("undo_removes_new_entry", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")

		d.SetCell(1, 1, "q")
		d.Undo()

		_, present := d.Model().Overlay().Get(contracts.CellKey{Row: 1, Column: 1})
		assert.False(t, present)
		assert.Equal(t, "2", d.CellAt(1, 1))
	})

	t.Run("same_value_is_recorded", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")

		_, ok := d.SetCell(0, 0, "a")

		assert.True(t, ok)
		assert.True(t, d.CanUndo())
		assert.Equal(t, 0, d.Model().Overlay().Len())
	})

	t.Run("out_of_range_is_not_recorded", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")

		_, ok := d.SetCell(5, 0, "q")

		assert.False(t, ok)
		assert.False(t, d.CanUndo())
	})

	t.Run("commit_clears_redo", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")
		d.SetCell(0, 0, "q")
		d.Undo()
		assert.True(t, d.CanRedo())

		d.SetCell(0, 1, "w")

		assert.False(t, d.CanRedo())
		_, ok := d.Redo()
		assert.False(t, ok)
	})
}

func TestDocument_Selection(t *testing.T) {
	t.Run("insert_rows_below", func(t *testing.T) {
		d := _newDocument(t, "a\nb\nc\n")
		d.Select(contracts.Select(contracts.NewCellRange(1, 0, 1, 1)))

		d.InsertRowsBelow(1, 2)
		assert.Equal(t, contracts.Select(contracts.NewCellRange(3, 0, 1, 1)), d.Selection())

		d.Undo()
		assert.Equal(t, contracts.Select(contracts.NewCellRange(1, 0, 1, 1)), d.Selection())

		d.Redo()
		assert.Equal(t, contracts.Select(contracts.NewCellRange(3, 0, 1, 1)), d.Selection())
	})

	t.Run("move_rows_follows_rows", func(t *testing.T) {
		d := _newDocument(t, "a,1\nb,2\nc,3\nd,4\n")
		d.Select(contracts.Select(contracts.NewCellRange(0, 0, 1, 2)))

		d.MoveRows(0, 2, 1)

		assert.Equal(t, contracts.Select(contracts.NewCellRange(2, 0, 1, 2)), d.Selection())
		assert.Equal(t, "a", d.CellAt(2, 0))

		d.Undo()
		assert.Equal(t, contracts.Select(contracts.NewCellRange(0, 0, 1, 2)), d.Selection())
	})

	t.Run("move_columns_without_selection", func(t *testing.T) {
		d := _newDocument(t, "a,b,c\n")

		d.MoveColumns(2, 0, 1)

		assert.Equal(t, contracts.Select(contracts.NewCellRange(0, 0, 1, 1)), d.Selection())
		assert.Equal(t, "c", d.CellAt(0, 0))
	})

	t.Run("remove_rows_clamps", func(t *testing.T) {
		d := _newDocument(t, "a\nb\nc\n")
		d.Select(contracts.Select(contracts.NewCellRange(0, 0, 3, 1)))

		d.RemoveRows(1, 1)

		assert.Equal(t, contracts.Select(contracts.NewCellRange(0, 0, 2, 1)), d.Selection())
	})

	t.Run("select_normalizes", func(t *testing.T) {
		d := _newDocument(t, "a,b\n")

		d.Select(contracts.Selection{Active: true, Range: contracts.CellRange{FirstRow: 2, LastRow: 0, FirstColumn: 1, LastColumn: 0}})

		assert.Equal(t, contracts.CellRange{FirstRow: 0, LastRow: 2, FirstColumn: 0, LastColumn: 1}, d.Selection().Range)
		assert.False(t, d.CanUndo())
	})
}

func TestDocument_Events(t *testing.T) {
	var events []contracts.ChangeEvent
	d := _newDocument(t, "a,b\n1,2\n", WithChangeListener(func(event contracts.ChangeEvent) {
		events = append(events, event)
	}))

	d.InsertRowsAbove(0, 1)
	d.SetCell(1, 1, "q")
	d.SetCell(9, 9, "ignored")
	d.Undo()
	d.Redo()

	assert.Len(t, events, 4)

	assert.Equal(t, contracts.ChangeCommitted, events[0].Kind)
	assert.Equal(t, contracts.CommandInsertRowsAbove, events[0].Tag)
	assert.Equal(t, []contracts.SpliceRegion{{Position: 0, Inserted: 1}}, events[0].RowSplices)
	assert.Equal(t, 3, events[0].RowCount)
	assert.Equal(t, 2, events[0].ColumnCount)

	cell := contracts.NewCellRange(1, 1, 1, 1)
	assert.Equal(t, &cell, events[1].Cells)

	assert.Equal(t, contracts.ChangeUndone, events[2].Kind)
	assert.Equal(t, contracts.CommandSetCell, events[2].Tag)
	assert.Equal(t, &cell, events[2].Cells)

	assert.Equal(t, contracts.ChangeRedone, events[3].Kind)
}

func TestDocument_Dirty(t *testing.T) {
	d := _newDocument(t, "a,b\n")
	assert.False(t, d.IsDirty())

	d.SetCell(0, 0, "q")
	assert.True(t, d.IsDirty())

	d.MarkSaved()
	assert.False(t, d.IsDirty())

	d.Undo()
	assert.True(t, d.IsDirty())

	d.Redo()
	assert.False(t, d.IsDirty())
}

func TestDocument_Header(t *testing.T) {
	parsed, _ := ParseDelimited("name,price\nbook,10\n", ",")
	assert.Nil(t, NewDocument(parsed).Header())

	parsed.Format.HasHeader = true
	d := NewDocument(parsed)
	assert.Equal(t, []string{"name", "price"}, d.Header())

	d.RemoveColumns(0, 2)
	assert.Equal(t, []string{}, d.Header())
}

func TestDocument_Clipboard(t *testing.T) {
	t.Run("cut_and_paste", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")

		_, ok, err := d.Cut(contracts.NewCellRange(0, 0, 1, 2))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, ",\n1,2\n", d.Serialize())

		_, ok, err = d.Paste(contracts.CellPosition{Row: 1, Column: 0})
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, ",\na,b\n", d.Serialize())
	})

	t.Run("copy_and_paste_multiline_cell", func(t *testing.T) {
		d := _newDocument(t, "\"x\ny\",b\n1,2\n")

		assert.NoError(t, d.Copy(contracts.NewCellRange(0, 0, 1, 1)))
		_, ok, err := d.Paste(contracts.CellPosition{Row: 1, Column: 1})

		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, d.RowCount())
		assert.Equal(t, "x\ny", d.CellAt(1, 1))
		assert.Equal(t, "\"x\ny\",b\n1,\"x\ny\"\n", d.Serialize())
	})

	t.Run("clipboard_error", func(t *testing.T) {
		clipboard := mocks.NewClipboard(t)
		clipboard.On("Read").Return("", errors.New("denied"))
		d := _newDocument(t, "a,b\n", WithClipboard(clipboard))

		_, ok, err := d.Paste(contracts.CellPosition{})

		assert.Error(t, err)
		assert.False(t, ok)
		assert.False(t, d.CanUndo())
	})

	t.Run("cut_write_error", func(t *testing.T) {
		clipboard := mocks.NewClipboard(t)
		clipboard.On("Write", "a\n").Return(errors.New("denied"))
		d := _newDocument(t, "a,b\n", WithClipboard(clipboard))

		_, ok, err := d.Cut(contracts.NewCellRange(0, 0, 1, 1))

		assert.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, "a", d.CellAt(0, 0))
	})
}

func TestDocument_Execute(t *testing.T) {
	t.Run("commands", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")
		text := "p,q"

		commands := []contracts.DocumentCommand{
			{Command: contracts.CommandInsertRowsBelow, Row: 1, Count: 1},
			{Command: contracts.CommandInsertColumnsRight, Column: 1, Count: 1},
			{Command: contracts.CommandSetCell, Row: 2, Column: 2, Value: "v"},
			{Command: contracts.CommandPaste, Row: 2, Column: 0, Text: &text},
			{Command: contracts.CommandMoveColumns, From: 2, To: 0, Span: 1},
		}
		for _, command := range commands {
			_, ok, err := d.Execute(command)
			assert.NoError(t, err)
			assert.True(t, ok, string(command.Command))
		}

		assert.Equal(t, ",a,b\n,1,2\nv,p,q\n", d.Serialize())

		_, ok, err := d.Execute(contracts.DocumentCommand{Command: contracts.CommandUndo})
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a,b,\n1,2,\np,q,v\n", d.Serialize())
	})

	t.Run("range_falls_back_to_selection", func(t *testing.T) {
		d := _newDocument(t, "a,b\n1,2\n")

		_, ok, _ := d.Execute(contracts.DocumentCommand{Command: contracts.CommandClear})
		assert.False(t, ok)

		d.Select(contracts.Select(contracts.NewCellRange(1, 0, 1, 2)))
		_, ok, _ = d.Execute(contracts.DocumentCommand{Command: contracts.CommandClear})
		assert.True(t, ok)
		assert.Equal(t, "a,b\n,\n", d.Serialize())
	})

	t.Run("copy_is_not_recorded", func(t *testing.T) {
		d := _newDocument(t, "a,b\n")
		rng := contracts.NewCellRange(0, 1, 1, 1)

		_, ok, err := d.Execute(contracts.DocumentCommand{Command: contracts.CommandCopy, Range: &rng})

		assert.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, d.CanUndo())
		text, _ := d.clipboard.Read()
		assert.Equal(t, "b\n", text)
	})

	t.Run("unknown", func(t *testing.T) {
		d := _newDocument(t, "a,b\n")

		_, _, err := d.Execute(contracts.DocumentCommand{Command: "explode"})

		assert.ErrorIs(t, err, contracts.UnknownCommandError)
	})
}
