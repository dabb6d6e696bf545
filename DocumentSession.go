package main

import (
	"sync"
	"tabularDataEditor/contracts"
	"time"

	"github.com/sirupsen/logrus"
)

// DocumentSession serialises access to one open document. Column types are
// recomputed once edits have been quiet for the configured window.
type DocumentSession struct {
	mu       sync.Mutex
	id       string
	name     string
	document *Document

	types     []contracts.CellType
	inferrer  *CellTypeInferrer
	scheduler *QuiescenceScheduler
	logger    *logrus.Entry
}

func NewDocumentSession(
	id string, name string, parsed *contracts.ParsedDocument,
	notify contracts.ChangeListener, window time.Duration, logger *logrus.Entry,
) *DocumentSession {
	session := &DocumentSession{
		id:       id,
		name:     name,
		inferrer: NewCellTypeInferrer(),
		logger:   logger.WithField("document", id),
	}

	session.scheduler = NewQuiescenceScheduler(window, session.recomputeTypes)
	session.document = NewDocument(
		parsed,
		WithLogger(session.logger),
		WithChangeListener(func(event contracts.ChangeEvent) {
			event.DocumentId = id
			session.scheduler.Touch()
			if notify != nil {
				notify(event)
			}
		}),
	)
	session.types = session.inferrer.InferColumns(session.document)

	return session
}

// Do runs fn with the session lock held.
func (s *DocumentSession) Do(fn func(document *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.document)
}

func (s *DocumentSession) Info() contracts.DocumentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info()
}

func (s *DocumentSession) info() contracts.DocumentInfo {
	return contracts.DocumentInfo{
		Id:          s.id,
		Name:        s.name,
		Format:      s.document.Format(),
		RowCount:    s.document.RowCount(),
		ColumnCount: s.document.ColumnCount(),
		Dirty:       s.document.IsDirty(),
		CanUndo:     s.document.CanUndo(),
		CanRedo:     s.document.CanRedo(),
		Selection:   s.document.Selection(),
	}
}

// Types returns the last computed column types.
func (s *DocumentSession) Types() []contracts.CellType {
	s.mu.Lock()
	defer s.mu.Unlock()

	types := make([]contracts.CellType, len(s.types))
	copy(types, s.types)
	return types
}

// FlushTypes recomputes the column types now if edits are waiting for it.
func (s *DocumentSession) FlushTypes() {
	s.scheduler.Flush()
}

func (s *DocumentSession) Stored() contracts.StoredDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored()
}

func (s *DocumentSession) stored() contracts.StoredDocument {
	return contracts.StoredDocument{
		Name:      s.name,
		Delimiter: s.document.Format().Delimiter,
		Header:    s.document.Format().HasHeader,
		Text:      s.document.Serialize(),
	}
}

func (s *DocumentSession) Stop() {
	s.scheduler.Stop()
}

func (s *DocumentSession) recomputeTypes() {
	started := time.Now()

	s.mu.Lock()
	s.types = s.inferrer.InferColumns(s.document)
	s.mu.Unlock()

	s.logger.WithField("duration", time.Since(started)).Debug("column types recomputed")
}
