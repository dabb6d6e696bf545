package main

import (
	"fmt"
	"tabularDataEditor/contracts"
)

// Execute runs one command against the document. ok is false when the command
// changed nothing. Range commands fall back to the current selection.
func (d *Document) Execute(command contracts.DocumentCommand) (event contracts.ChangeEvent, ok bool, err error) {
	switch command.Command {
	case contracts.CommandInsertRowsAbove:
		event, ok = d.InsertRowsAbove(command.Row, command.Count)
	case contracts.CommandInsertRowsBelow:
		event, ok = d.InsertRowsBelow(command.Row, command.Count)
	case contracts.CommandInsertColumnsLeft:
		event, ok = d.InsertColumnsLeft(command.Column, command.Count)
	case contracts.CommandInsertColumnsRight:
		event, ok = d.InsertColumnsRight(command.Column, command.Count)
	case contracts.CommandRemoveRows:
		event, ok = d.RemoveRows(command.Row, command.Count)
	case contracts.CommandRemoveColumns:
		event, ok = d.RemoveColumns(command.Column, command.Count)
	case contracts.CommandMoveRows:
		event, ok = d.MoveRows(command.From, command.To, command.Span)
	case contracts.CommandMoveColumns:
		event, ok = d.MoveColumns(command.From, command.To, command.Span)
	case contracts.CommandSetCell:
		event, ok = d.SetCell(command.Row, command.Column, command.Value)

	case contracts.CommandClear:
		if rng, hasRange := d.commandRange(command); hasRange {
			event, ok = d.Clear(rng)
		}
	case contracts.CommandCut:
		if rng, hasRange := d.commandRange(command); hasRange {
			event, ok, err = d.Cut(rng)
		}
	case contracts.CommandCopy:
		if rng, hasRange := d.commandRange(command); hasRange {
			err = d.Copy(rng)
		}

	case contracts.CommandPaste:
		origin := contracts.CellPosition{Row: command.Row, Column: command.Column}
		if command.Text != nil {
			event, ok = d.PasteText(origin, *command.Text)
		} else {
			event, ok, err = d.Paste(origin)
		}

	case contracts.CommandUndo:
		event, ok = d.Undo()
	case contracts.CommandRedo:
		event, ok = d.Redo()

	default:
		err = fmt.Errorf("%w: %q", contracts.UnknownCommandError, command.Command)
	}

	return
}

func (d *Document) commandRange(command contracts.DocumentCommand) (contracts.CellRange, bool) {
	if command.Range != nil {
		return command.Range.Normalize(), true
	}

	selection := d.selection.Current()
	return selection.Range, selection.Active
}
