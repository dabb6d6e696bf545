package contracts

import "errors"

type DocumentFormat struct {
	Delimiter          string `json:"delimiter"`
	Terminator         string `json:"terminator"`
	TrailingTerminator bool   `json:"trailing_terminator"`
	HasHeader          bool   `json:"has_header"`
}

const DefaultDelimiter = ","

const DefaultTerminator = "\n"

// ParsedDocument is the untouched result of parsing delimited text. Rows are padded
// to the widest row.
type ParsedDocument struct {
	Rows   [][]string
	Format DocumentFormat
}

type StoredDocument struct {
	Name      string `json:"name"`
	Delimiter string `json:"delimiter"`
	Header    bool   `json:"header"`
	Text      string `json:"text"`
}

type DocumentInfo struct {
	Id          string         `json:"id"`
	Name        string         `json:"name"`
	Format      DocumentFormat `json:"format"`
	RowCount    int            `json:"row_count"`
	ColumnCount int            `json:"column_count"`
	Dirty       bool           `json:"dirty"`
	CanUndo     bool           `json:"can_undo"`
	CanRedo     bool           `json:"can_redo"`
	Selection   Selection      `json:"selection"`
}

var DocumentNotFoundError = errors.New("document not found")

var DocumentAlreadyOpenError = errors.New("document already open")

var UnknownCommandError = errors.New("unknown command")

type OpenDocumentRequest struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	Delimiter string `json:"delimiter"`
	Header    bool   `json:"header"`
}

type FindResult struct {
	Query string         `json:"query"`
	Cells []CellPosition `json:"cells,omitempty"`
	Rows  []int          `json:"rows,omitempty"`
}
