package mocks

import (
	"github.com/airenas/revy/internal/pkg/messages"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

// FileStore is file store mock
type FileStore struct{ mock.Mock }

// AddFile func mock
func (m *FileStore) AddFile(rec *persistence.FileRecord) {
	m.Called(rec)
}

// GetFileByID func mock
func (m *FileStore) GetFileByID(id string) *persistence.FileRecord {
	args := m.Called(id)
	return to[*persistence.FileRecord](args.Get(0))
}

// UpdateFile func mock
func (m *FileStore) UpdateFile(id string, patch *persistence.FilePatch) {
	m.Called(id, patch)
}

// ListFiles func mock
func (m *FileStore) ListFiles() []*persistence.FileRecord {
	args := m.Called()
	return to[[]*persistence.FileRecord](args.Get(0))
}

// Notifier is status change listener mock
type Notifier struct{ mock.Mock }

// StatusChanged func mock
func (m *Notifier) StatusChanged(msg *messages.StatusMessage) {
	m.Called(msg)
}

func to[T any](val interface{}) T {
	var res T
	if val == nil {
		return res
	}
	return val.(T)
}
