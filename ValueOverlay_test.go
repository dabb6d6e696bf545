package main

import (
	"github.com/stretchr/testify/assert"
	"tabularDataEditor/contracts"
	"testing"
)

func TestValueOverlay_SetAndDelete(t *testing.T) {
	overlay := NewValueOverlay()
	key := contracts.CellKey{Row: 1, Column: 2}

	previous := overlay.Set(key, "first")
	assert.Equal(t, contracts.Absent(), previous)

	previous = overlay.Set(key, "second")
	assert.Equal(t, contracts.Text("first"), previous)

	text, ok := overlay.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "second", text)

	previous = overlay.Put(key, contracts.Absent())
	assert.Equal(t, contracts.Text("second"), previous)
	_, ok = overlay.Get(key)
	assert.False(t, ok)
	assert.Equal(t, 0, overlay.Len())
}

func TestValueOverlay_ClearRange(t *testing.T) {
	overlay := NewValueOverlay()
	overlay.Set(contracts.CellKey{Row: 0, Column: 0}, "kept")

	cleared := overlay.ClearRange([]contracts.RowKey{0, 1}, []contracts.ColumnKey{0})

	assert.Equal(t, map[contracts.CellKey]contracts.CellValue{
		{Row: 0, Column: 0}: contracts.Text("kept"),
		{Row: 1, Column: 0}: contracts.Absent(),
	}, cleared)
	assert.Equal(t, contracts.Text(""), overlay.Lookup(contracts.CellKey{Row: 0, Column: 0}))
	assert.Equal(t, contracts.Text(""), overlay.Lookup(contracts.CellKey{Row: 1, Column: 0}))
}

func TestValueOverlay_Reachable(t *testing.T) {
	overlay := NewValueOverlay()
	overlay.Set(contracts.CellKey{Row: 2, Column: 0}, "c")
	overlay.Set(contracts.CellKey{Row: 0, Column: 1}, "b")
	overlay.Set(contracts.CellKey{Row: 5, Column: 0}, "orphan")

	rows := NewIndexMap([]contracts.RowKey{2, 0})
	columns := NewIndexMap([]contracts.ColumnKey{0, 1})

	edited := overlay.Reachable(rows, columns)

	assert.Equal(t, []contracts.EditedCell{
		{CellPosition: contracts.CellPosition{Row: 0, Column: 0}, Value: "c"},
		{CellPosition: contracts.CellPosition{Row: 1, Column: 1}, Value: "b"},
	}, edited)
	// unreachable entries are kept
	assert.Equal(t, 3, overlay.Len())
}
