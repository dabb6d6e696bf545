package contracts

type ChangeKind string

const (
	ChangeCommitted ChangeKind = "committed"
	ChangeUndone    ChangeKind = "undone"
	ChangeRedone    ChangeKind = "redone"
)

// SpliceRegion describes an index splice in visual positions.
type SpliceRegion struct {
	Position int `json:"position"`
	Removed  int `json:"removed"`
	Inserted int `json:"inserted"`
}

// ChangeEvent is emitted once per committed, undone or redone transaction.
type ChangeEvent struct {
	DocumentId    string         `json:"document_id,omitempty"`
	Kind          ChangeKind     `json:"kind"`
	Tag           CommandTag     `json:"tag"`
	RowSplices    []SpliceRegion `json:"row_splices,omitempty"`
	ColumnSplices []SpliceRegion `json:"column_splices,omitempty"`
	Cells         *CellRange     `json:"cells,omitempty"`
	Selection     Selection      `json:"selection"`
	RowCount      int            `json:"row_count"`
	ColumnCount   int            `json:"column_count"`
}

type ChangeListener func(event ChangeEvent)

type ChangeDispatcher interface {
	SetWebhookUrl(documentId string, webhookUrl string)
	GetWebhookUrl(documentId string) string
	Notify(event ChangeEvent)
	Start()
	Close()
}
