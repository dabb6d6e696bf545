package contracts

import "io"

type DocumentManager interface {
	Open(documentId string, request OpenDocumentRequest) (DocumentInfo, error)
	Load(documentId string) (DocumentInfo, error)
	Close(documentId string, save bool) error
	CloseAll()
	Info(documentId string) (DocumentInfo, error)
	Execute(documentId string, command DocumentCommand) (*ChangeEvent, error)
	Select(documentId string, selection Selection) (DocumentInfo, error)
	Save(documentId string) error
	Window(documentId string, rng CellRange) ([][]string, error)
	Types(documentId string) ([]CellType, error)
	Edits(documentId string) ([]EditedCell, error)
	Find(documentId string, query string) (*FindResult, error)
	ExportXlsx(documentId string, w io.Writer) error
	Text(documentId string) (string, error)
}
