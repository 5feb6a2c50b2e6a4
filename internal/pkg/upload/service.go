package upload

import (
	"math/rand"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
	"github.com/airenas/revy/internal/pkg/utils"
	"github.com/facebookgo/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	unknownValue = "نامشخص"
	noName       = "بدون نام"
	maxSubject   = 50
)

// Form is the upload form
type Form struct {
	Name          string `json:"name"`
	Subject       string `json:"subject,omitempty"`
	Type          string `json:"type,omitempty"`
	SubCollection string `json:"subCollection,omitempty"`
	AudioFileName string `json:"audioFileName,omitempty"`
}

// Transcriber simulates automatic transcription
type Transcriber func() persistence.Transcript

// Options for the record maker
type Options struct {
	Clock       clock.Clock
	DateFormat  string
	Transcriber Transcriber
}

// Maker prepares new file records
type Maker struct {
	clock       clock.Clock
	dateFormat  string
	transcriber Transcriber
	duration    func() int
}

// NewMaker creates record maker
func NewMaker(opts Options) (*Maker, error) {
	if opts.DateFormat == "" {
		return nil, errors.New("no date format")
	}
	if opts.Transcriber == nil {
		return nil, errors.New("no transcriber")
	}
	res := &Maker{clock: opts.Clock, dateFormat: opts.DateFormat, transcriber: opts.Transcriber,
		duration: func() int { return rand.Intn(500) + 100 }}
	if res.clock == nil {
		res.clock = clock.New()
	}
	return res, nil
}

// Validate checks the form
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("no name")
	}
	if utf8.RuneCountInString(f.Subject) > maxSubject {
		return errors.Errorf("subject is longer than %d", maxSubject)
	}
	if f.AudioFileName != "" {
		ext := filepath.Ext(f.AudioFileName)
		if !utils.SupportAudioExt(strings.ToLower(ext)) {
			return errors.Errorf("wrong file extension: '%s'", ext)
		}
	}
	return nil
}

// Patch returns form values as file patch
func (f *Form) Patch() *persistence.FilePatch {
	res := &persistence.FilePatch{Name: persistence.Str(f.Name)}
	if f.Type != "" {
		res.Type = persistence.Str(f.Type)
	}
	if f.SubCollection != "" {
		res.SubCollection = persistence.Str(f.SubCollection)
	}
	return res
}

// Transcribe returns a simulated transcript
func (m *Maker) Transcribe() persistence.Transcript {
	return m.transcriber()
}

// Make creates a new Processing record from data.
// Missing transcript fields are filled with a simulated transcript.
func (m *Maker) Make(data *persistence.FilePatch, uploader string) *persistence.FileRecord {
	now := m.clock.Now()
	res := &persistence.FileRecord{ID: "file_" + uuid.NewString(), Name: noName, Type: unknownValue,
		SubCollection: unknownValue, Status: status.Processing, Uploader: uploader,
		UploadDate: now.Format(m.dateFormat), Duration: m.duration(), Created: now}
	if data != nil {
		p := *data
		p.Uploader, p.Duration = nil, nil
		p.Apply(res)
	}
	if res.OriginalText == "" {
		tr := m.Transcribe()
		res.OriginalText = tr.Text
		if res.EditedText == "" {
			res.EditedText = tr.Text
		}
		if res.ExtractedPhrases == nil {
			res.ExtractedPhrases = tr.Phrases
		}
	}
	return res
}
