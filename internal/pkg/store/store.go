package store

import (
	"sync"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/messages"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
	"github.com/facebookgo/clock"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Notifier is informed about every file status change
type Notifier interface {
	StatusChanged(msg *messages.StatusMessage)
}

// Options keeps store settings
type Options struct {
	// ProcessingDelay is the time after which a Processing file becomes Pending
	ProcessingDelay time.Duration
	Clock           clock.Clock
	Notifier        Notifier
}

// FileStore keeps file records in memory, newest first.
// Returned records are copies, changes go through UpdateFile only.
type FileStore struct {
	mu       sync.RWMutex
	files    []*persistence.FileRecord
	delay    time.Duration
	clock    clock.Clock
	notifier Notifier
}

// NewFileStore creates store with initial records kept in the provided order.
// No timers are armed for the initial records.
func NewFileStore(opts Options, initial []*persistence.FileRecord) (*FileStore, error) {
	if opts.ProcessingDelay < 0 {
		return nil, errors.Errorf("wrong processing delay %v", opts.ProcessingDelay)
	}
	res := &FileStore{delay: opts.ProcessingDelay, clock: opts.Clock, notifier: opts.Notifier}
	if res.clock == nil {
		res.clock = clock.New()
	}
	for _, r := range initial {
		res.files = append(res.files, r.Copy())
	}
	goapp.Log.Info().Int("files", len(res.files)).Dur("processingDelay", res.delay).Msg("file store initialized")
	return res, nil
}

// AddFile inserts the record at the front.
// A Processing record becomes Pending after the processing delay.
func (s *FileStore) AddFile(rec *persistence.FileRecord) {
	r := rec.Copy()
	s.mu.Lock()
	s.files = append([]*persistence.FileRecord{r}, s.files...)
	s.mu.Unlock()
	filesAdded.Inc()
	logRecord(goapp.Log.Info(), r).Msg("file added")

	if r.Status == status.Processing {
		id := r.ID
		// fire and forget, there is no cancellation: a missing record makes the update a no-op
		s.clock.AfterFunc(s.delay, func() {
			goapp.Log.Debug().Str("ID", id).Msg("processing finished")
			s.UpdateFile(id, persistence.StatusPatch(status.Pending))
		})
	}
}

// GetFileByID returns a copy of the record or nil if there is no such id
func (s *FileStore) GetFileByID(id string) *persistence.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r := s.find(id); r != nil {
		return r.Copy()
	}
	return nil
}

// UpdateFile merges patch into the record, it does nothing if id is not found.
// A status change not allowed by status.CanTransit is dropped, other fields are merged anyway.
func (s *FileStore) UpdateFile(id string, patch *persistence.FilePatch) {
	if patch == nil {
		return
	}
	msg := s.update(id, patch)
	if msg != nil && s.notifier != nil {
		s.notifier.StatusChanged(msg)
	}
}

func (s *FileStore) update(id string, patch *persistence.FilePatch) *messages.StatusMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.find(id)
	if r == nil {
		goapp.Log.Debug().Str("ID", id).Msg("no file, skip update")
		return nil
	}
	patch.Apply(r)
	if patch.Status == nil || *patch.Status == r.Status {
		return nil
	}
	from, to := r.Status, *patch.Status
	if !status.CanTransit(from, to) {
		transitionsDiscarded.Inc()
		logRecord(goapp.Log.Warn(), r).Str("to", to.String()).Msg("status change not allowed, skip")
		return nil
	}
	r.Status = to
	transitions.WithLabelValues(from.String(), to.String()).Inc()
	logRecord(goapp.Log.Info(), r).Str("from", from.String()).Msg("status changed")
	return messages.NewStatusMessage(id, from, to)
}

// ListFiles returns copies of all records, newest first
func (s *FileStore) ListFiles() []*persistence.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]*persistence.FileRecord, 0, len(s.files))
	for _, r := range s.files {
		res = append(res, r.Copy())
	}
	return res
}

func (s *FileStore) find(id string) *persistence.FileRecord {
	for _, r := range s.files {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func logRecord(le *zerolog.Event, r *persistence.FileRecord) *zerolog.Event {
	return le.Str("ID", r.ID).Str("status", r.Status.String())
}
