package persistence

import (
	"time"

	"github.com/airenas/revy/internal/pkg/status"
)

type (

	//FileRecord is an uploaded item with its transcript and review status
	FileRecord struct {
		ID               string        `json:"id"`
		Name             string        `json:"name"`
		UploadDate       string        `json:"uploadDate"`
		Type             string        `json:"type"`
		SubCollection    string        `json:"subCollection"`
		Status           status.Status `json:"status,omitempty"`
		Duration         int           `json:"duration,omitempty"`
		Uploader         string        `json:"uploader,omitempty"`
		OriginalText     string        `json:"originalText,omitempty"`
		EditedText       string        `json:"editedText,omitempty"`
		AudioSrc         string        `json:"audioSrc,omitempty"`
		ExtractedPhrases []string      `json:"extractedPhrases,omitempty"`
		Created          time.Time     `json:"created"`
	}

	//FilePatch keeps fields to change, nil means untouched
	FilePatch struct {
		Name             *string        `json:"name,omitempty"`
		Type             *string        `json:"type,omitempty"`
		SubCollection    *string        `json:"subCollection,omitempty"`
		Status           *status.Status `json:"status,omitempty"`
		Duration         *int           `json:"duration,omitempty"`
		Uploader         *string        `json:"uploader,omitempty"`
		OriginalText     *string        `json:"originalText,omitempty"`
		EditedText       *string        `json:"editedText,omitempty"`
		AudioSrc         *string        `json:"audioSrc,omitempty"`
		ExtractedPhrases []string       `json:"extractedPhrases,omitempty"`
	}

	//DictionaryTerm is a glossary entry
	DictionaryTerm struct {
		ID            string `json:"id"`
		Term          string `json:"term"`
		Description   string `json:"description"`
		SubCollection string `json:"subCollection"`
	}

	//Transcript is an automatic transcription result
	Transcript struct {
		Text    string
		Phrases []string
	}

	//User is a logged in user profile
	User struct {
		Name       string `json:"name"`
		Role       string `json:"role"`
		EmployeeID string `json:"employeeId"`
		Department string `json:"department"`
	}
)

// Copy returns a deep copy of the record
func (r *FileRecord) Copy() *FileRecord {
	res := *r
	if r.ExtractedPhrases != nil {
		res.ExtractedPhrases = append([]string{}, r.ExtractedPhrases...)
	}
	return &res
}

// Apply merges non nil patch fields into the record, status is not touched.
// OriginalText is set only while the record has none.
func (p *FilePatch) Apply(r *FileRecord) {
	setStr(&r.Name, p.Name)
	setStr(&r.Type, p.Type)
	setStr(&r.SubCollection, p.SubCollection)
	setStr(&r.Uploader, p.Uploader)
	setStr(&r.EditedText, p.EditedText)
	setStr(&r.AudioSrc, p.AudioSrc)
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.OriginalText != nil && r.OriginalText == "" {
		r.OriginalText = *p.OriginalText
	}
	if p.ExtractedPhrases != nil {
		r.ExtractedPhrases = append([]string{}, p.ExtractedPhrases...)
	}
}

// Merge copies non nil fields of other into p
func (p *FilePatch) Merge(other *FilePatch) {
	if other == nil {
		return
	}
	mergePtr(&p.Name, other.Name)
	mergePtr(&p.Type, other.Type)
	mergePtr(&p.SubCollection, other.SubCollection)
	mergePtr(&p.Status, other.Status)
	mergePtr(&p.Duration, other.Duration)
	mergePtr(&p.Uploader, other.Uploader)
	mergePtr(&p.OriginalText, other.OriginalText)
	mergePtr(&p.EditedText, other.EditedText)
	mergePtr(&p.AudioSrc, other.AudioSrc)
	if other.ExtractedPhrases != nil {
		p.ExtractedPhrases = append([]string{}, other.ExtractedPhrases...)
	}
}

// StatusPatch makes a patch changing status only
func StatusPatch(st status.Status) *FilePatch {
	return &FilePatch{Status: &st}
}

// Str returns pointer to the string
func Str(s string) *string {
	return &s
}

func setStr(to *string, from *string) {
	if from != nil {
		*to = *from
	}
}

func mergePtr[T any](to **T, from *T) {
	if from != nil {
		v := *from
		*to = &v
	}
}
