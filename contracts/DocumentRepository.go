package contracts

type DocumentRepository interface {
	Save(id string, document StoredDocument) error
	Load(id string) (*StoredDocument, error)
	Delete(id string) error
	List() ([]string, error)
}
