package main

import (
	"fmt"
	"tabularDataEditor/contracts"

	"github.com/sirupsen/logrus"
)

// Document is one open delimited file: model, history, selection and the
// collaborators injected by the host. It is not safe for concurrent use.
type Document struct {
	model     *GridModel
	engine    *EditEngine
	log       *TransactionLog
	selection *SelectionTracker
	format    contracts.DocumentFormat

	clipboard contracts.Clipboard
	listener  contracts.ChangeListener
	logger    *logrus.Entry

	saved *contracts.Transaction
}

type DocumentOption func(d *Document)

func WithClipboard(clipboard contracts.Clipboard) DocumentOption {
	return func(d *Document) {
		d.clipboard = clipboard
	}
}

func WithChangeListener(listener contracts.ChangeListener) DocumentOption {
	return func(d *Document) {
		d.listener = listener
	}
}

func WithLogger(logger *logrus.Entry) DocumentOption {
	return func(d *Document) {
		d.logger = logger
	}
}

func NewDocument(parsed *contracts.ParsedDocument, options ...DocumentOption) *Document {
	model := NewGridModel(parsed.Rows)
	tracker := NewSelectionTracker(contracts.NoSelection())

	d := &Document{
		model:     model,
		engine:    NewEditEngine(model, parsed.Format.Delimiter),
		log:       NewTransactionLog(tracker, contracts.NoSelection()),
		selection: tracker,
		format:    parsed.Format,
		clipboard: NewMemoryClipboard(),
		logger:    logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(d)
	}

	d.saved = d.log.Top()
	return d
}

func (d *Document) RowCount() int {
	return d.model.RowCount()
}

func (d *Document) ColumnCount() int {
	return d.model.ColumnCount()
}

func (d *Document) CellAt(row int, column int) string {
	return d.model.CellAt(row, column)
}

// Header is the first row when the format declares one.
func (d *Document) Header() []string {
	if !d.format.HasHeader || d.model.RowCount() == 0 {
		return nil
	}
	window := d.model.ReadRange(contracts.NewCellRange(0, 0, 1, d.model.ColumnCount()))
	if len(window) == 0 {
		return []string{}
	}
	return window[0]
}

func (d *Document) Window(rng contracts.CellRange) [][]string {
	return d.model.ReadRange(rng)
}

func (d *Document) Format() contracts.DocumentFormat {
	return d.format
}

func (d *Document) Selection() contracts.Selection {
	return d.selection.Current()
}

func (d *Document) Select(selection contracts.Selection) {
	if selection.Active {
		selection.Range = selection.Range.Normalize()
	}
	d.selection.Set(selection)
}

func (d *Document) Log() *TransactionLog {
	return d.log
}

func (d *Document) Model() *GridModel {
	return d.model
}

func (d *Document) CanUndo() bool {
	return d.log.CanUndo()
}

func (d *Document) CanRedo() bool {
	return d.log.CanRedo()
}

func (d *Document) IsDirty() bool {
	return d.log.Top() != d.saved
}

func (d *Document) MarkSaved() {
	d.saved = d.log.Top()
}

func (d *Document) Serialize() string {
	return SerializeDelimited(d.model.Rows(), d.model.Columns(), d.model.Overlay(), d.model.Original(), d.format)
}

func (d *Document) EditedCells() []contracts.EditedCell {
	return d.model.Overlay().Reachable(d.model.Rows(), d.model.Columns())
}

func (d *Document) InsertRowsAbove(position int, count int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.InsertRows(position, count), before, before, contracts.CommandInsertRowsAbove)
}

// InsertRowsBelow inserts count rows after the row at position.
func (d *Document) InsertRowsBelow(position int, count int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.InsertRows(position+1, count), before, before, contracts.CommandInsertRowsBelow)
}

func (d *Document) InsertColumnsLeft(position int, count int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.InsertColumns(position, count), before, before, contracts.CommandInsertColumnsLeft)
}

func (d *Document) InsertColumnsRight(position int, count int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.InsertColumns(position+1, count), before, before, contracts.CommandInsertColumnsRight)
}

func (d *Document) RemoveRows(position int, count int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	patch := d.engine.RemoveRows(position, count)
	return d.commit(patch, before, d.clampSelection(before), contracts.CommandRemoveRows)
}

func (d *Document) RemoveColumns(position int, count int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	patch := d.engine.RemoveColumns(position, count)
	return d.commit(patch, before, d.clampSelection(before), contracts.CommandRemoveColumns)
}

func (d *Document) MoveRows(from int, to int, span int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.MoveRows(from, to, span), before, d.rowBand(before, span), contracts.CommandMoveRows)
}

func (d *Document) MoveColumns(from int, to int, span int) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.MoveColumns(from, to, span), before, d.columnBand(before, span), contracts.CommandMoveColumns)
}

func (d *Document) SetCell(row int, column int, value string) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.SetCell(row, column, value), before, before, contracts.CommandSetCell)
}

func (d *Document) Clear(rng contracts.CellRange) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	return d.commit(d.engine.Clear(rng), before, before, contracts.CommandClear)
}

func (d *Document) Copy(rng contracts.CellRange) error {
	return d.engine.Copy(rng, d.clipboard)
}

func (d *Document) Cut(rng contracts.CellRange) (contracts.ChangeEvent, bool, error) {
	before := d.selection.Current()
	patch, err := d.engine.Cut(rng, d.clipboard)
	if err != nil {
		return contracts.ChangeEvent{}, false, err
	}

	event, ok := d.commit(patch, before, before, contracts.CommandCut)
	return event, ok, nil
}

// Paste writes the clipboard at origin and selects the pasted block.
func (d *Document) Paste(origin contracts.CellPosition) (contracts.ChangeEvent, bool, error) {
	text, err := d.clipboard.Read()
	if err != nil {
		return contracts.ChangeEvent{}, false, fmt.Errorf("paste: %w", err)
	}

	event, ok := d.PasteText(origin, text)
	return event, ok, nil
}

func (d *Document) PasteText(origin contracts.CellPosition, text string) (contracts.ChangeEvent, bool) {
	before := d.selection.Current()
	block := ParseBlock(text, d.format.Delimiter)
	row := clamp(origin.Row, 0, d.model.RowCount())
	column := clamp(origin.Column, 0, d.model.ColumnCount())

	patch := d.engine.Paste(origin, text)
	if patch == nil {
		return contracts.ChangeEvent{}, false
	}

	after := contracts.Select(contracts.NewCellRange(row, column, len(block), len(block[0])))
	return d.commit(patch, before, after, contracts.CommandPaste)
}

func (d *Document) Undo() (contracts.ChangeEvent, bool) {
	inverse, selection, tx, ok := d.log.Undo()
	if !ok {
		return contracts.ChangeEvent{}, false
	}

	d.replay(inverse)
	d.selection.Set(selection)
	return d.emit(contracts.ChangeUndone, tx.Tag, inverse), true
}

func (d *Document) Redo() (contracts.ChangeEvent, bool) {
	patch, selection, tx, ok := d.log.Redo()
	if !ok {
		return contracts.ChangeEvent{}, false
	}

	d.replay(patch)
	d.selection.Set(selection)
	return d.emit(contracts.ChangeRedone, tx.Tag, patch), true
}

func (d *Document) commit(
	patch contracts.Patch, before contracts.Selection, after contracts.Selection, tag contracts.CommandTag,
) (contracts.ChangeEvent, bool) {
	if patch == nil {
		return contracts.ChangeEvent{}, false
	}

	tx := d.log.Commit(patch, before, after, tag)
	d.selection.Set(d.selection.Resolve(tx))

	d.logger.WithFields(logrus.Fields{"tag": tag, "patch": patch.Kind().String()}).Debug("transaction committed")
	return d.emit(contracts.ChangeCommitted, tag, patch), true
}

func (d *Document) replay(patch contracts.Patch) {
	if err := d.model.Apply(patch); err != nil {
		d.logger.WithError(err).Error("history replay failed")
		panic(fmt.Errorf("document history is corrupt: %w", err))
	}
}

func (d *Document) emit(kind contracts.ChangeKind, tag contracts.CommandTag, patch contracts.Patch) contracts.ChangeEvent {
	event := contracts.ChangeEvent{
		Kind:        kind,
		Tag:         tag,
		Selection:   d.selection.Current(),
		RowCount:    d.model.RowCount(),
		ColumnCount: d.model.ColumnCount(),
	}
	d.describe(&event, patch)

	if d.listener != nil {
		d.listener(event)
	}
	return event
}

// describe fills the regions touched by an already applied patch.
func (d *Document) describe(event *contracts.ChangeEvent, patch contracts.Patch) {
	switch p := patch.(type) {
	case *contracts.RowSplicePatch:
		event.RowSplices = append(event.RowSplices, contracts.SpliceRegion{
			Position: p.Position, Removed: len(p.Removed), Inserted: len(p.Inserted),
		})

	case *contracts.ColumnSplicePatch:
		event.ColumnSplices = append(event.ColumnSplices, contracts.SpliceRegion{
			Position: p.Position, Removed: len(p.Removed), Inserted: len(p.Inserted),
		})

	case *contracts.CellSetPatch:
		for _, change := range p.Changes {
			row, rowOk := d.model.Rows().PositionOf(change.Key.Row)
			column, columnOk := d.model.Columns().PositionOf(change.Key.Column)
			if !rowOk || !columnOk {
				continue
			}

			cell := contracts.NewCellRange(row, column, 1, 1)
			if event.Cells != nil {
				cell = event.Cells.Union(cell)
			}
			event.Cells = &cell
		}

	case *contracts.CompositePatch:
		for _, part := range p.Parts {
			d.describe(event, part)
		}
	}
}

func (d *Document) clampSelection(selection contracts.Selection) contracts.Selection {
	if !selection.Active {
		return selection
	}

	rng, ok := selection.Range.Clamp(d.model.RowCount(), d.model.ColumnCount())
	if !ok {
		return contracts.NoSelection()
	}
	return contracts.Select(rng)
}

// rowBand is the selection a row move snaps to; Resolve places it on the destination.
func (d *Document) rowBand(selection contracts.Selection, span int) contracts.Selection {
	columns := max(d.model.ColumnCount(), 1)
	if selection.Active {
		return contracts.Select(contracts.CellRange{
			FirstRow: 0, LastRow: span - 1,
			FirstColumn: selection.Range.FirstColumn, LastColumn: selection.Range.LastColumn,
		})
	}
	return contracts.Select(contracts.NewCellRange(0, 0, span, columns))
}

func (d *Document) columnBand(selection contracts.Selection, span int) contracts.Selection {
	rows := max(d.model.RowCount(), 1)
	if selection.Active {
		return contracts.Select(contracts.CellRange{
			FirstRow: selection.Range.FirstRow, LastRow: selection.Range.LastRow,
			FirstColumn: 0, LastColumn: span - 1,
		})
	}
	return contracts.Select(contracts.NewCellRange(0, 0, rows, span))
}
