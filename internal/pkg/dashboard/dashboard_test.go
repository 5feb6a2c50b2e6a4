package dashboard

import (
	"testing"
	"time"

	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
	"github.com/stretchr/testify/assert"
)

var tNow = time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC)

func testFiles() []*persistence.FileRecord {
	return []*persistence.FileRecord{
		{ID: "3", Name: "Meeting.wav", Type: "t1", SubCollection: "s1", Status: status.Pending, Created: tNow},
		{ID: "2", Name: "report.mp3", Type: "t2", SubCollection: "s2", Status: status.Processing, Created: tNow.Add(-time.Hour)},
		{ID: "1", Name: "meeting 2.mp3", Type: "t1", SubCollection: "s2", Status: status.Approved, Created: tNow.Add(-2 * time.Hour)},
		{ID: "0", Name: "old.wav", Type: "t1", SubCollection: "s1", Status: status.Approved, Created: tNow.Add(-2 * time.Hour)},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{name: "all", q: Query{}, want: []string{"3", "2", "1", "0"}},
		{name: "search", q: Query{Search: "MEETING"}, want: []string{"3", "1"}},
		{name: "status", q: Query{Status: status.Approved}, want: []string{"1", "0"}},
		{name: "type", q: Query{Type: "t1"}, want: []string{"3", "1", "0"}},
		{name: "sub collection", q: Query{SubCollection: "s2"}, want: []string{"2", "1"}},
		{name: "combined", q: Query{Type: "t1", SubCollection: "s1", Status: status.Pending}, want: []string{"3"}},
		{name: "oldest", q: Query{Sort: Oldest}, want: []string{"1", "0", "2", "3"}},
		{name: "none", q: Query{Search: "olia"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, f := range Filter(testFiles(), tt.q) {
				got = append(got, f.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeStats(t *testing.T) {
	assert.Equal(t, Stats{Total: 4, Pending: 1, Processing: 1, Approved: 2}, MakeStats(testFiles()))
	assert.Equal(t, Stats{}, MakeStats(nil))
}

func TestMakeFilterOptions(t *testing.T) {
	got := MakeFilterOptions(testFiles())
	assert.Equal(t, []string{"t1", "t2"}, got.Types)
	assert.Equal(t, []string{"s1", "s2"}, got.SubCollections)
	assert.Equal(t, status.All(), got.Statuses)
	assert.Equal(t, []SortOrder{Newest, Oldest}, got.Sort)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in     string
		want   SortOrder
		wantOK bool
	}{
		{in: "", want: Newest, wantOK: true},
		{in: "newest", want: Newest, wantOK: true},
		{in: "oldest", want: Oldest, wantOK: true},
		{in: "olia", want: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSort(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
