package transcriber

import (
	"sync/atomic"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
)

// Simulated returns the same transcript for every audio
type Simulated struct {
	result persistence.Transcript
	calls  atomic.Int64
}

// NewSimulated creates simulated transcriber
func NewSimulated(result persistence.Transcript) *Simulated {
	return &Simulated{result: result}
}

// Transcribe returns a copy of the configured transcript
func (s *Simulated) Transcribe() persistence.Transcript {
	n := s.calls.Add(1)
	goapp.Log.Debug().Int64("calls", n).Msg("transcribe")
	res := s.result
	res.Phrases = append([]string{}, s.result.Phrases...)
	return res
}

// Calls returns how many transcripts were made
func (s *Simulated) Calls() int64 {
	return s.calls.Load()
}
