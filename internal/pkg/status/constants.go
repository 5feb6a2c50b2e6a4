package status

import (
	"github.com/pkg/errors"
)

//Status represents review status of a file
type Status int

const (
	// Pending - waiting for reviewer approval
	Pending Status = iota + 1
	// Processing - automatic transcription is running
	Processing
	// Approved - final step
	Approved
	// Rejected - final step
	Rejected
)

var (
	statusName = map[Status]string{Pending: "PENDING", Processing: "PROCESSING",
		Approved: "APPROVED", Rejected: "REJECTED"}
	nameStatus = map[string]Status{"PENDING": Pending, "PROCESSING": Processing,
		"APPROVED": Approved, "REJECTED": Rejected}
	statusLabel = map[Status]string{Pending: "در انتظار تایید", Processing: "در حال پردازش",
		Approved: "تایید شده", Rejected: "رد شده"}
)

// All returns statuses in display order
func All() []Status {
	return []Status{Pending, Processing, Approved, Rejected}
}

func (st Status) String() string {
	return statusName[st]
}

// Label returns the user facing status name
func (st Status) Label() string {
	return statusLabel[st]
}

// From returns status obj from string
func From(st string) Status {
	return nameStatus[st]
}

// MarshalText implements encoding.TextMarshaler
func (st Status) MarshalText() ([]byte, error) {
	res, ok := statusName[st]
	if !ok {
		return nil, errors.Errorf("unknown status %d", int(st))
	}
	return []byte(res), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (st *Status) UnmarshalText(b []byte) error {
	res := From(string(b))
	if res == 0 {
		return errors.Errorf("unknown status '%s'", string(b))
	}
	*st = res
	return nil
}
