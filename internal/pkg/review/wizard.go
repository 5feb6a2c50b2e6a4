package review

import (
	"strings"
	"sync"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
	"github.com/facebookgo/clock"
)

// DashboardPath is where the client goes after the wizard is finished
const DashboardPath = "/dashboard"

// FileStore is the store the wizard commits to
type FileStore interface {
	AddFile(rec *persistence.FileRecord)
	GetFileByID(id string) *persistence.FileRecord
	UpdateFile(id string, patch *persistence.FilePatch)
}

// RecordMaker prepares new records for the upload flow
type RecordMaker interface {
	Make(data *persistence.FilePatch, uploader string) *persistence.FileRecord
	Transcribe() persistence.Transcript
}

// State is a wizard snapshot for the stepper display
type State struct {
	ID       string                  `json:"id"`
	Flow     Flow                    `json:"flow"`
	FileID   string                  `json:"fileId,omitempty"`
	Step     Step                    `json:"step"`
	Label    string                  `json:"label"`
	Index    int                     `json:"index"`
	Total    int                     `json:"total"`
	Steps    []Step                  `json:"steps"`
	Data     *persistence.FilePatch  `json:"data"`
	File     *persistence.FileRecord `json:"file,omitempty"`
	Progress int                     `json:"progress"`
	Ready    bool                    `json:"ready"`
	Done     bool                    `json:"done"`
}

// Result is returned on finish
type Result struct {
	Redirect string `json:"redirect"`
	FileID   string `json:"fileId,omitempty"`
}

// Wizard steps one file through the review flow.
// All methods are safe to call concurrently.
type Wizard struct {
	mu       sync.Mutex
	id       string
	flow     Flow
	steps    []Step
	index    int
	fileID   string
	uploader string
	data     persistence.FilePatch
	progress int
	gateGen  int
	done     bool

	clock clock.Clock
	gate  time.Duration
	store FileStore
	maker RecordMaker
}

func newWizard(id string, flow Flow, fileID, uploader string, m *Manager) *Wizard {
	res := &Wizard{id: id, flow: flow, steps: flowSteps[flow], fileID: fileID, uploader: uploader,
		clock: m.clock, gate: m.gate, store: m.store, maker: m.maker}
	res.mu.Lock()
	defer res.mu.Unlock()
	res.enter()
	return res
}

// Next merges data and moves one step forward, the last step is kept
func (w *Wizard) Next(data *persistence.FilePatch) *State {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return w.state()
	}
	w.data.Merge(data)
	if w.index < len(w.steps)-1 {
		w.index++
		w.enter()
	}
	return w.state()
}

// Back moves one step back, the first step is kept
func (w *Wizard) Back() *State {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return w.state()
	}
	if w.index > 0 {
		w.index--
		w.enter()
	}
	return w.state()
}

// Replace replaces phrase occurrences in the edited text draft
func (w *Wizard) Replace(phrase, replacement string) *State {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done || phrase == "" {
		return w.state()
	}
	text := w.editedText()
	w.data.EditedText = persistence.Str(strings.ReplaceAll(text, phrase, replacement))
	goapp.Log.Debug().Str("ID", w.id).Int("count", strings.Count(text, phrase)).Msg("phrase replaced")
	return w.state()
}

// Finish merges data and commits the wizard.
// Returns ErrNotFound if the wizard is already finished, ErrNoName if an upload has no name.
func (w *Wizard) Finish(data *persistence.FilePatch) (*Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return nil, ErrNotFound
	}
	w.data.Merge(data)
	if w.flow == FlowUpload && (w.data.Name == nil || strings.TrimSpace(*w.data.Name) == "") {
		return nil, ErrNoName
	}
	w.done = true
	res := &Result{Redirect: DashboardPath}
	switch w.flow {
	case FlowUpload:
		rec := w.maker.Make(&w.data, w.uploader)
		rec.Status = status.Approved
		w.store.AddFile(rec)
		res.FileID = rec.ID
		wizardCommits.WithLabelValues(w.flow.String(), "created").Inc()
	case FlowReview:
		p := w.data
		st := status.Approved
		p.Status = &st
		if w.store.GetFileByID(w.fileID) == nil {
			goapp.Log.Warn().Str("ID", w.fileID).Msg("no file, skip commit")
			wizardCommits.WithLabelValues(w.flow.String(), "missing").Inc()
		} else {
			wizardCommits.WithLabelValues(w.flow.String(), "updated").Inc()
		}
		w.store.UpdateFile(w.fileID, &p)
		res.FileID = w.fileID
	}
	goapp.Log.Info().Str("ID", w.id).Str("flow", w.flow.String()).Str("file", res.FileID).Msg("wizard finished")
	return res, nil
}

// State returns current wizard state
func (w *Wizard) State() *State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state()
}

func (w *Wizard) state() *State {
	step := w.steps[w.index]
	data := w.data
	if data.ExtractedPhrases != nil {
		data.ExtractedPhrases = append([]string{}, data.ExtractedPhrases...)
	}
	res := &State{ID: w.id, Flow: w.flow, FileID: w.fileID, Step: step, Label: step.Label(),
		Index: w.index, Total: len(w.steps), Steps: append([]Step{}, w.steps...), Data: &data,
		Progress: w.progress, Ready: w.progress >= 100, Done: w.done}
	if w.fileID != "" {
		res.File = w.store.GetFileByID(w.fileID)
	}
	return res
}

func (w *Wizard) editedText() string {
	if w.data.EditedText != nil {
		return *w.data.EditedText
	}
	if w.fileID != "" {
		if f := w.store.GetFileByID(w.fileID); f != nil {
			return f.EditedText
		}
	}
	return ""
}

// enter runs the current step entry actions, must be called under lock
func (w *Wizard) enter() {
	if w.steps[w.index] != ProcessingEdit {
		return
	}
	if w.flow == FlowUpload && w.data.OriginalText == nil {
		tr := w.maker.Transcribe()
		w.data.OriginalText = persistence.Str(tr.Text)
		if w.data.EditedText == nil {
			w.data.EditedText = persistence.Str(tr.Text)
		}
		if w.data.ExtractedPhrases == nil {
			w.data.ExtractedPhrases = append([]string{}, tr.Phrases...)
		}
	}
	w.progress = 0
	w.gateGen++
	if w.gate <= 0 {
		w.progress = 100
		return
	}
	gen := w.gateGen
	w.clock.AfterFunc(w.gate, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.gateGen == gen {
			w.progress = 100
		}
	})
}
