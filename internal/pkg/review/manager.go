package review

import (
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned for unknown, expired or finished wizards
	ErrNotFound = errors.New("wizard not found")
	// ErrFileNotFound is returned when a review is started for an unknown file
	ErrFileNotFound = errors.New("file not found")
	// ErrNoName is returned when an upload is finished without a file name
	ErrNoName = errors.New("no name")
)

// Options keeps manager settings
type Options struct {
	Clock clock.Clock
	// ProcessingGate is the delay after which the ProcessingEdit step becomes ready
	ProcessingGate time.Duration
	CacheSize      int
	// TTL drops abandoned wizards
	TTL time.Duration
}

// Manager keeps live wizards
type Manager struct {
	wizards *expirable.LRU[string, *Wizard]
	store   FileStore
	maker   RecordMaker
	clock   clock.Clock
	gate    time.Duration
}

// NewManager creates wizard manager
func NewManager(store FileStore, maker RecordMaker, opts Options) (*Manager, error) {
	if store == nil {
		return nil, errors.New("no store")
	}
	if maker == nil {
		return nil, errors.New("no record maker")
	}
	if opts.CacheSize < 1 {
		return nil, errors.Errorf("wrong cache size %d", opts.CacheSize)
	}
	if opts.ProcessingGate < 0 {
		return nil, errors.Errorf("wrong processing gate %v", opts.ProcessingGate)
	}
	res := &Manager{store: store, maker: maker, clock: opts.Clock, gate: opts.ProcessingGate}
	if res.clock == nil {
		res.clock = clock.New()
	}
	res.wizards = expirable.NewLRU[string, *Wizard](opts.CacheSize, func(key string, _ *Wizard) {
		goapp.Log.Debug().Str("ID", key).Msg("wizard dropped")
	}, opts.TTL)
	goapp.Log.Info().Int("size", opts.CacheSize).Dur("ttl", opts.TTL).Dur("gate", res.gate).Msg("wizard manager initialized")
	return res, nil
}

// StartUpload starts a new file wizard
func (m *Manager) StartUpload(uploader string) *State {
	w := newWizard(uuid.NewString(), FlowUpload, "", uploader, m)
	return m.keep(w)
}

// StartReview starts a wizard for an existing file
func (m *Manager) StartReview(fileID string) (*State, error) {
	if m.store.GetFileByID(fileID) == nil {
		return nil, ErrFileNotFound
	}
	w := newWizard(uuid.NewString(), FlowReview, fileID, "", m)
	return m.keep(w), nil
}

// Get returns wizard state
func (m *Manager) Get(id string) (*State, error) {
	w, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return w.State(), nil
}

// Next moves wizard forward
func (m *Manager) Next(id string, data *persistence.FilePatch) (*State, error) {
	w, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return w.Next(data), nil
}

// Back moves wizard back
func (m *Manager) Back(id string) (*State, error) {
	w, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return w.Back(), nil
}

// Replace replaces a phrase in the wizard draft text
func (m *Manager) Replace(id, phrase, replacement string) (*State, error) {
	w, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return w.Replace(phrase, replacement), nil
}

// Finish commits and drops the wizard, a rejected finish keeps it alive
func (m *Manager) Finish(id string, data *persistence.FilePatch) (*Result, error) {
	w, err := m.get(id)
	if err != nil {
		return nil, err
	}
	res, err := w.Finish(data)
	if errors.Is(err, ErrNoName) {
		return nil, err
	}
	m.wizards.Remove(id)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Len returns live wizard count
func (m *Manager) Len() int {
	return m.wizards.Len()
}

func (m *Manager) keep(w *Wizard) *State {
	m.wizards.Add(w.id, w)
	wizardsStarted.WithLabelValues(w.flow.String()).Inc()
	goapp.Log.Info().Str("ID", w.id).Str("flow", w.flow.String()).Str("file", w.fileID).Msg("wizard started")
	return w.State()
}

func (m *Manager) get(id string) (*Wizard, error) {
	w, ok := m.wizards.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return w, nil
}
