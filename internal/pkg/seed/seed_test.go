package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiles_NewestFirst(t *testing.T) {
	files := Files(time.Now())
	assert.Equal(t, 5, len(files))
	for i := 1; i < len(files); i++ {
		assert.True(t, files[i-1].Created.After(files[i].Created))
	}
}

func TestSampleTranscript_Copy(t *testing.T) {
	tr := SampleTranscript()
	tr.Phrases[0] = "olia"
	assert.Equal(t, "جلسه فنی", SampleTranscript().Phrases[0])
	assert.NotEmpty(t, SampleTranscript().Text)
}

func TestTerms(t *testing.T) {
	assert.Equal(t, 10, len(Terms()))
}
