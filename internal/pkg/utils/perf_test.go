package utils

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPerfEndpoint_Disabled(t *testing.T) {
	assert.Nil(t, RunPerfEndpoint(0))
	assert.Nil(t, RunPerfEndpoint(-1))
}

func TestRunPerfEndpoint_PortBusy(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.Nil(t, err)
	defer l.Close()
	err = RunPerfEndpoint(l.Addr().(*net.TCPAddr).Port)
	assert.NotNil(t, err)
}
