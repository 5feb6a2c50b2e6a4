package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportAudioExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{ext: ".wav", want: true},
		{ext: ".mp3", want: true},
		{ext: ".mp4", want: true},
		{ext: ".m4a", want: true},
		{ext: ".ogg", want: false},
		{ext: ".zip", want: false},
		{ext: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, SupportAudioExt(tt.ext))
		})
	}
}

func TestParamTrue(t *testing.T) {
	assert.True(t, ParamTrue("true"))
	assert.True(t, ParamTrue("TRUE"))
	assert.True(t, ParamTrue("1"))
	assert.False(t, ParamTrue(""))
	assert.False(t, ParamTrue("0"))
}
