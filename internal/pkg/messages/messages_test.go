package messages

import (
	"testing"

	"github.com/airenas/revy/internal/pkg/status"
	"github.com/stretchr/testify/assert"
)

func TestNewStatusMessage(t *testing.T) {
	m := NewStatusMessage("1", status.Processing, status.Pending)
	assert.Equal(t, "1", m.ID)
	assert.Equal(t, status.Processing, m.From)
	assert.Equal(t, status.Pending, m.To)
}
