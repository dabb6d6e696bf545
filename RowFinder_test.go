package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tabularDataEditor/contracts"
	"tabularDataEditor/mocks"
	"testing"
)

func _newGrid(t *testing.T, text string, header bool) *Document {
	parsed, err := ParseDelimited(text, ",")
	require.NoError(t, err)
	parsed.Format.HasHeader = header
	return NewDocument(parsed)
}

const _goodsCsv = "Name,Unit Price,Qty\nbook,10,3\npen,2,10\nlamp,25,1\n"

func TestRowFinder_FindText(t *testing.T) {
	finder := NewRowFinder(NewCanonicalizer())
	grid := _newGrid(t, _goodsCsv, true)

	assert.Equal(t, []contracts.CellPosition{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 2, Column: 0}}, finder.FindText(grid, "N"))
	assert.Equal(t, []contracts.CellPosition{{Row: 0, Column: 1}}, finder.FindText(grid, "price"))
	assert.Empty(t, finder.FindText(grid, "missing"))
	assert.Empty(t, finder.FindText(grid, ""))
}

func TestRowFinder_FindRows(t *testing.T) {
	finder := NewRowFinder(NewCanonicalizer())

	t.Run("header_names", func(t *testing.T) {
		rows, err := finder.FindRows(_newGrid(t, _goodsCsv, true), "=unit_price > 5 && name != 'lamp'")

		assert.NoError(t, err)
		assert.Equal(t, []int{1}, rows)
	})

	t.Run("positional_names", func(t *testing.T) {
		rows, err := finder.FindRows(_newGrid(t, _goodsCsv, false), "=c3 == 10 || c1 == 'Name'")

		assert.NoError(t, err)
		assert.Equal(t, []int{0, 2}, rows)
	})

	t.Run("row_variable", func(t *testing.T) {
		rows, err := finder.FindRows(_newGrid(t, _goodsCsv, true), "=row >= 2")

		assert.NoError(t, err)
		assert.Equal(t, []int{2, 3}, rows)
	})

	t.Run("functions", func(t *testing.T) {
		grid := _newGrid(t, _goodsCsv, true)

		rows, err := finder.FindRows(grid, "=max(unit_price, qty) == 10")
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, rows)

		rows, err = finder.FindRows(grid, "=sum(unit_price, qty) > 20")
		assert.NoError(t, err)
		assert.Equal(t, []int{3}, rows)
	})

	t.Run("functions_skip_empty_cells", func(t *testing.T) {
		grid := _newGrid(t, "Name,Unit Price,Qty\nbook,10,\npen,,2\nlamp,,\n", true)

		rows, err := finder.FindRows(grid, "=sum(unit_price, qty) >= 2")
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, rows)

		rows, err = finder.FindRows(grid, "=avg(unit_price, qty) == 0")
		assert.NoError(t, err)
		assert.Equal(t, []int{3}, rows)
	})

	t.Run("follows_edits", func(t *testing.T) {
		grid := _newGrid(t, _goodsCsv, true)
		grid.MoveRows(3, 1, 1)
		grid.SetCell(3, 1, "99")

		rows, err := finder.FindRows(grid, "=unit_price > 20")

		assert.NoError(t, err)
		assert.Equal(t, []int{1, 3}, rows)
	})

	t.Run("not_bool", func(t *testing.T) {
		_, err := finder.FindRows(_newGrid(t, _goodsCsv, true), "=qty + 1")

		assert.ErrorIs(t, err, contracts.ExpressionError)
	})

	t.Run("compile_error", func(t *testing.T) {
		_, err := finder.FindRows(_newGrid(t, _goodsCsv, true), "=qty >")

		assert.ErrorIs(t, err, contracts.ExpressionError)
	})

	t.Run("canonicalizer_is_used", func(t *testing.T) {
		canonicalizer := mocks.NewCanonicalizer(t)
		canonicalizer.On("Canonicalize", "Name").Return("name")
		canonicalizer.On("Canonicalize", "Unit Price").Return("price")
		canonicalizer.On("Canonicalize", "Qty").Return("qty")
		canonicalizer.On("Canonicalize", "price").Return("price")

		rows, err := NewRowFinder(canonicalizer).FindRows(_newGrid(t, _goodsCsv, true), "=price == 2")

		assert.NoError(t, err)
		assert.Equal(t, []int{2}, rows)
	})
}

func TestRowFinder_IsExpression(t *testing.T) {
	finder := NewRowFinder(NewCanonicalizer())

	assert.True(t, finder.IsExpression("=a > 1"))
	assert.False(t, finder.IsExpression("a > 1"))
}
