package contracts

// CommandTag names the command that produced a transaction.
type CommandTag string

const (
	CommandLoad               CommandTag = "load"
	CommandInsertRowsAbove    CommandTag = "insert-rows-above"
	CommandInsertRowsBelow    CommandTag = "insert-rows-below"
	CommandInsertColumnsLeft  CommandTag = "insert-columns-left"
	CommandInsertColumnsRight CommandTag = "insert-columns-right"
	CommandRemoveRows         CommandTag = "remove-rows"
	CommandRemoveColumns      CommandTag = "remove-columns"
	CommandMoveRows           CommandTag = "move-rows"
	CommandMoveColumns        CommandTag = "move-columns"
	CommandSetCell            CommandTag = "set-cell"
	CommandClear              CommandTag = "clear"
	CommandCut                CommandTag = "cut"
	CommandPaste              CommandTag = "paste"
)

type Transaction struct {
	Patch           Patch
	SelectionBefore Selection
	SelectionAfter  Selection
	Tag             CommandTag
}

type LogState int

const (
	LogClean LogState = iota
	LogHasRedo
)

func (s LogState) String() string {
	if s == LogHasRedo {
		return "has-redo"
	}
	return "clean"
}

// Commands that are accepted by a document but never recorded as transactions.
const (
	CommandCopy CommandTag = "copy"
	CommandUndo CommandTag = "undo"
	CommandRedo CommandTag = "redo"
)

// DocumentCommand is one edit request. Only the fields used by Command are read.
type DocumentCommand struct {
	Command CommandTag `json:"command" binding:"required"`
	Row     int        `json:"row"`
	Column  int        `json:"column"`
	Count   int        `json:"count"`
	From    int        `json:"from"`
	To      int        `json:"to"`
	Span    int        `json:"span"`
	Value   string     `json:"value"`
	Range   *CellRange `json:"range,omitempty"`
	Text    *string    `json:"text,omitempty"`
}
