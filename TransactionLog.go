package main

import "tabularDataEditor/contracts"

// TransactionLog is a linear undo/redo history. The bottom of the undo stack is the
// document load and is never undone.
type TransactionLog struct {
	undo    []*contracts.Transaction
	redo    []*contracts.Transaction
	tracker *SelectionTracker
}

func NewTransactionLog(tracker *SelectionTracker, initialSelection contracts.Selection) *TransactionLog {
	sentinel := &contracts.Transaction{
		SelectionBefore: initialSelection,
		SelectionAfter:  initialSelection,
		Tag:             contracts.CommandLoad,
	}

	return &TransactionLog{
		undo:    []*contracts.Transaction{sentinel},
		redo:    []*contracts.Transaction{},
		tracker: tracker,
	}
}

// Commit records an applied patch and drops everything that could be redone.
func (l *TransactionLog) Commit(
	patch contracts.Patch, selectionBefore contracts.Selection, selectionAfter contracts.Selection, tag contracts.CommandTag,
) *contracts.Transaction {
	tx := &contracts.Transaction{
		Patch:           patch,
		SelectionBefore: selectionBefore,
		SelectionAfter:  selectionAfter,
		Tag:             tag,
	}

	l.undo = append(l.undo, tx)
	l.redo = l.redo[:0]
	return tx
}

// Undo pops the last transaction and hands back what the caller has to apply.
func (l *TransactionLog) Undo() (inverse contracts.Patch, selection contracts.Selection, tx *contracts.Transaction, ok bool) {
	if len(l.undo) <= 1 {
		return nil, contracts.Selection{}, nil, false
	}

	tx = l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, tx)

	if tx.Patch != nil {
		inverse = tx.Patch.Inverse()
	}
	return inverse, tx.SelectionBefore, tx, true
}

func (l *TransactionLog) Redo() (patch contracts.Patch, selection contracts.Selection, tx *contracts.Transaction, ok bool) {
	if len(l.redo) == 0 {
		return nil, contracts.Selection{}, nil, false
	}

	tx = l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, tx)

	return tx.Patch, l.tracker.Resolve(tx), tx, true
}

func (l *TransactionLog) State() contracts.LogState {
	if len(l.redo) > 0 {
		return contracts.LogHasRedo
	}
	return contracts.LogClean
}

func (l *TransactionLog) CanUndo() bool {
	return len(l.undo) > 1
}

func (l *TransactionLog) CanRedo() bool {
	return len(l.redo) > 0
}

// UndoDepth counts undoable transactions, the load sentinel excluded.
func (l *TransactionLog) UndoDepth() int {
	return len(l.undo) - 1
}

func (l *TransactionLog) RedoDepth() int {
	return len(l.redo)
}

// Top is the transaction the document currently reflects.
func (l *TransactionLog) Top() *contracts.Transaction {
	return l.undo[len(l.undo)-1]
}
