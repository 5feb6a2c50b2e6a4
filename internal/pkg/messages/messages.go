package messages

import (
	amessages "github.com/airenas/async-api/pkg/messages"
	"github.com/airenas/revy/internal/pkg/status"
)

// StatusMessage informs about file status change
type StatusMessage struct {
	amessages.QueueMessage
	From status.Status `json:"from,omitempty"`
	To   status.Status `json:"to"`
}

// NewStatusMessage creates status change message
func NewStatusMessage(ID string, from, to status.Status) *StatusMessage {
	return &StatusMessage{QueueMessage: amessages.QueueMessage{ID: ID}, From: from, To: to}
}
