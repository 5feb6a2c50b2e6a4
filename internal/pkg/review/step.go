package review

import (
	"github.com/pkg/errors"
)

// Step is a wizard step, the value is shared with the stepper display
type Step int

const (
	// Uploading - metadata form
	Uploading Step = iota
	// ProcessingEdit - automatic transcription and manual edit
	ProcessingEdit
	// FinalReview - check before approval
	FinalReview
)

var stepName = map[Step]string{Uploading: "UPLOADING", ProcessingEdit: "PROCESSING_EDIT", FinalReview: "FINAL_REVIEW"}

var stepLabel = map[Step]string{Uploading: "بارگذاری", ProcessingEdit: "پردازش و ویرایش", FinalReview: "بازبینی نهایی"}

func (s Step) String() string {
	return stepName[s]
}

// Label returns display name
func (s Step) Label() string {
	return stepLabel[s]
}

// MarshalText writes step name
func (s Step) MarshalText() ([]byte, error) {
	res, ok := stepName[s]
	if !ok {
		return nil, errors.Errorf("unknown step %d", int(s))
	}
	return []byte(res), nil
}

// UnmarshalText parses step name
func (s *Step) UnmarshalText(b []byte) error {
	for k, v := range stepName {
		if v == string(b) {
			*s = k
			return nil
		}
	}
	return errors.Errorf("unknown step '%s'", string(b))
}

// Flow tells what the wizard commits on finish
type Flow int

const (
	// FlowUpload creates a new file
	FlowUpload Flow = iota + 1
	// FlowReview approves an existing file
	FlowReview
)

var flowName = map[Flow]string{FlowUpload: "upload", FlowReview: "review"}

var flowSteps = map[Flow][]Step{
	FlowUpload: {Uploading, ProcessingEdit, FinalReview},
	FlowReview: {ProcessingEdit, FinalReview},
}

func (f Flow) String() string {
	return flowName[f]
}

// ParseFlow returns flow by name
func ParseFlow(s string) (Flow, error) {
	for k, v := range flowName {
		if v == s {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown flow '%s'", s)
}

// MarshalText writes flow name
func (f Flow) MarshalText() ([]byte, error) {
	res, ok := flowName[f]
	if !ok {
		return nil, errors.Errorf("unknown flow %d", int(f))
	}
	return []byte(res), nil
}

// UnmarshalText parses flow name
func (f *Flow) UnmarshalText(b []byte) error {
	res, err := ParseFlow(string(b))
	if err != nil {
		return err
	}
	*f = res
	return nil
}
