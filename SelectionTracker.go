package main

import "tabularDataEditor/contracts"

// SelectionTracker holds the current selection and knows where a command leaves it.
type SelectionTracker struct {
	current contracts.Selection
}

func NewSelectionTracker(initial contracts.Selection) *SelectionTracker {
	return &SelectionTracker{current: initial}
}

func (t *SelectionTracker) Current() contracts.Selection {
	return t.current
}

func (t *SelectionTracker) Set(selection contracts.Selection) {
	t.current = selection
}

// Resolve maps the selection recorded after a transaction to the cells the user ends
// up on. The recorded selection is in pre-edit coordinates for inserts below/right
// and moves.
func (t *SelectionTracker) Resolve(tx *contracts.Transaction) contracts.Selection {
	selection := tx.SelectionAfter
	if !selection.Active {
		return selection
	}

	switch tx.Tag {
	case contracts.CommandInsertRowsBelow:
		if splice, ok := tx.Patch.(*contracts.RowSplicePatch); ok {
			selection.Range = selection.Range.Shift(len(splice.Inserted), 0)
		}

	case contracts.CommandInsertColumnsRight:
		if splice, ok := tx.Patch.(*contracts.ColumnSplicePatch); ok {
			selection.Range = selection.Range.Shift(0, len(splice.Inserted))
		}

	case contracts.CommandMoveRows:
		if position, span, ok := moveDestination(tx.Patch); ok {
			selection.Range.FirstRow = position
			selection.Range.LastRow = position + span - 1
		}

	case contracts.CommandMoveColumns:
		if position, span, ok := moveDestination(tx.Patch); ok {
			selection.Range.FirstColumn = position
			selection.Range.LastColumn = position + span - 1
		}
	}

	return selection
}

// moveDestination reads the insert half of a move patch.
func moveDestination(patch contracts.Patch) (position int, span int, ok bool) {
	composite, ok := patch.(*contracts.CompositePatch)
	if !ok || len(composite.Parts) != 2 {
		return 0, 0, false
	}

	switch insert := composite.Parts[1].(type) {
	case *contracts.RowSplicePatch:
		return insert.Position, len(insert.Inserted), true
	case *contracts.ColumnSplicePatch:
		return insert.Position, len(insert.Inserted), true
	}
	return 0, 0, false
}
