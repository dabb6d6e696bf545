package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"tabularDataEditor/contracts"
	"time"

	"github.com/sirupsen/logrus"
)

// DocumentManager owns the open document sessions of the service.
type DocumentManager struct {
	mu       sync.RWMutex
	sessions map[string]*DocumentSession

	repository contracts.DocumentRepository
	dispatcher contracts.ChangeDispatcher
	finder     contracts.RowFinder
	exporter   contracts.XlsxExporter
	window     time.Duration
	logger     *logrus.Entry
}

func NewDocumentManager(
	repository contracts.DocumentRepository, dispatcher contracts.ChangeDispatcher,
	finder contracts.RowFinder, exporter contracts.XlsxExporter,
	window time.Duration, logger *logrus.Entry,
) *DocumentManager {
	return &DocumentManager{
		sessions:   map[string]*DocumentSession{},
		repository: repository,
		dispatcher: dispatcher,
		finder:     finder,
		exporter:   exporter,
		window:     window,
		logger:     logger.WithField("component", "document_manager"),
	}
}

func (m *DocumentManager) Open(documentId string, request contracts.OpenDocumentRequest) (contracts.DocumentInfo, error) {
	parsed, err := ParseDelimited(request.Text, request.Delimiter)
	if err != nil {
		return contracts.DocumentInfo{}, fmt.Errorf("%s: %w", documentId, err)
	}
	parsed.Format.HasHeader = request.Header

	name := request.Name
	if name == "" {
		name = documentId
	}

	session, err := m.register(documentId, name, parsed)
	if err != nil {
		return contracts.DocumentInfo{}, err
	}
	return session.Info(), nil
}

// Load opens a document previously saved to the repository.
func (m *DocumentManager) Load(documentId string) (contracts.DocumentInfo, error) {
	stored, err := m.repository.Load(documentId)
	if err != nil {
		return contracts.DocumentInfo{}, err
	}

	return m.Open(documentId, contracts.OpenDocumentRequest{
		Name:      stored.Name,
		Text:      stored.Text,
		Delimiter: stored.Delimiter,
		Header:    stored.Header,
	})
}

// Close drops the session. With save set a dirty document is written first.
func (m *DocumentManager) Close(documentId string, save bool) error {
	session, err := m.session(documentId)
	if err != nil {
		return err
	}

	if save {
		if err = m.saveSession(session, false); err != nil {
			return err
		}
	}

	m.mu.Lock()
	delete(m.sessions, session.id)
	m.mu.Unlock()

	session.Stop()
	m.dispatcher.SetWebhookUrl(session.id, "")
	m.logger.WithField("document", session.id).Info("document closed")
	return nil
}

// CloseAll saves dirty documents and closes every session.
func (m *DocumentManager) CloseAll() {
	m.mu.RLock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	for _, id := range ids {
		if err := m.Close(id, true); err != nil {
			m.logger.WithError(err).WithField("document", id).Error("document close failed")
		}
	}
}

func (m *DocumentManager) Info(documentId string) (contracts.DocumentInfo, error) {
	session, err := m.session(documentId)
	if err != nil {
		return contracts.DocumentInfo{}, err
	}
	return session.Info(), nil
}

// Execute runs the command and returns its change event, nil when nothing changed.
func (m *DocumentManager) Execute(documentId string, command contracts.DocumentCommand) (*contracts.ChangeEvent, error) {
	session, err := m.session(documentId)
	if err != nil {
		return nil, err
	}

	var event *contracts.ChangeEvent
	err = session.Do(func(document *Document) error {
		changed, ok, err := document.Execute(command)
		if ok {
			changed.DocumentId = session.id
			event = &changed
		}
		return err
	})

	return event, err
}

func (m *DocumentManager) Select(documentId string, selection contracts.Selection) (info contracts.DocumentInfo, err error) {
	session, err := m.session(documentId)
	if err != nil {
		return
	}

	_ = session.Do(func(document *Document) error {
		document.Select(selection)
		info = session.info()
		return nil
	})
	return
}

func (m *DocumentManager) Save(documentId string) error {
	session, err := m.session(documentId)
	if err != nil {
		return err
	}
	return m.saveSession(session, true)
}

func (m *DocumentManager) Window(documentId string, rng contracts.CellRange) (window [][]string, err error) {
	session, err := m.session(documentId)
	if err != nil {
		return
	}

	_ = session.Do(func(document *Document) error {
		window = document.Window(rng)
		return nil
	})
	return
}

func (m *DocumentManager) Types(documentId string) ([]contracts.CellType, error) {
	session, err := m.session(documentId)
	if err != nil {
		return nil, err
	}
	return session.Types(), nil
}

func (m *DocumentManager) Edits(documentId string) (edits []contracts.EditedCell, err error) {
	session, err := m.session(documentId)
	if err != nil {
		return
	}

	_ = session.Do(func(document *Document) error {
		edits = document.EditedCells()
		return nil
	})
	return
}

func (m *DocumentManager) Find(documentId string, query string) (*contracts.FindResult, error) {
	session, err := m.session(documentId)
	if err != nil {
		return nil, err
	}

	result := &contracts.FindResult{Query: query}
	err = session.Do(func(document *Document) (err error) {
		if strings.HasPrefix(query, contracts.ExpressionPrefix) {
			result.Rows, err = m.finder.FindRows(document, query)
		} else {
			result.Cells = m.finder.FindText(document, query)
		}
		return
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (m *DocumentManager) ExportXlsx(documentId string, w io.Writer) error {
	session, err := m.session(documentId)
	if err != nil {
		return err
	}

	session.FlushTypes()
	types := session.Types()
	return session.Do(func(document *Document) error {
		return m.exporter.Export(document, types, w)
	})
}

func (m *DocumentManager) Text(documentId string) (text string, err error) {
	session, err := m.session(documentId)
	if err != nil {
		return
	}

	_ = session.Do(func(document *Document) error {
		text = document.Serialize()
		return nil
	})
	return
}

func (m *DocumentManager) register(documentId string, name string, parsed *contracts.ParsedDocument) (*DocumentSession, error) {
	documentId = strings.ToLower(documentId)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[documentId]; exists {
		return nil, fmt.Errorf("%s: %w", documentId, contracts.DocumentAlreadyOpenError)
	}

	session := NewDocumentSession(documentId, name, parsed, m.dispatcher.Notify, m.window, m.logger)
	m.sessions[documentId] = session

	m.logger.WithFields(logrus.Fields{
		"document": documentId,
		"rows":     len(parsed.Rows),
	}).Info("document opened")
	return session, nil
}

func (m *DocumentManager) session(documentId string) (*DocumentSession, error) {
	documentId = strings.ToLower(documentId)

	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[documentId]
	if !ok {
		return nil, fmt.Errorf("%s: %w", documentId, contracts.DocumentNotFoundError)
	}
	return session, nil
}

// saveSession writes the document; a clean one is skipped unless force is set.
func (m *DocumentManager) saveSession(session *DocumentSession, force bool) error {
	return session.Do(func(document *Document) error {
		if !force && !document.IsDirty() {
			return nil
		}

		if err := m.repository.Save(session.id, session.stored()); err != nil {
			return fmt.Errorf("save %s: %w", session.id, err)
		}

		document.MarkSaved()
		m.logger.WithField("document", session.id).Info("document saved")
		return nil
	})
}
