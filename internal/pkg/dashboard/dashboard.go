package dashboard

import (
	"sort"
	"strings"

	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
)

// SortOrder by file creation time
type SortOrder string

const (
	// Newest first, default
	Newest SortOrder = "newest"
	// Oldest first
	Oldest SortOrder = "oldest"
)

// Query keeps dashboard filters, empty values match all
type Query struct {
	Search        string
	Status        status.Status
	Type          string
	SubCollection string
	Sort          SortOrder
}

// Stats counts files by status
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
}

// FilterOptions lists values available for filtering
type FilterOptions struct {
	Statuses       []status.Status `json:"statuses"`
	Types          []string        `json:"types"`
	SubCollections []string        `json:"subCollections"`
	Sort           []SortOrder     `json:"sort"`
}

// Filter returns files matching the query in requested order.
// Files with the same creation time keep the input order.
func Filter(files []*persistence.FileRecord, q Query) []*persistence.FileRecord {
	search := strings.ToLower(q.Search)
	res := []*persistence.FileRecord{}
	for _, f := range files {
		if !strings.Contains(strings.ToLower(f.Name), search) {
			continue
		}
		if q.Status != 0 && f.Status != q.Status {
			continue
		}
		if q.Type != "" && f.Type != q.Type {
			continue
		}
		if q.SubCollection != "" && f.SubCollection != q.SubCollection {
			continue
		}
		res = append(res, f)
	}
	sort.SliceStable(res, func(i, j int) bool {
		if q.Sort == Oldest {
			return res[i].Created.Before(res[j].Created)
		}
		return res[i].Created.After(res[j].Created)
	})
	return res
}

// MakeStats counts files by status
func MakeStats(files []*persistence.FileRecord) Stats {
	res := Stats{Total: len(files)}
	for _, f := range files {
		switch f.Status {
		case status.Pending:
			res.Pending++
		case status.Processing:
			res.Processing++
		case status.Approved:
			res.Approved++
		case status.Rejected:
			res.Rejected++
		}
	}
	return res
}

// MakeFilterOptions collects distinct types and sub collections in list order
func MakeFilterOptions(files []*persistence.FileRecord) FilterOptions {
	res := FilterOptions{Statuses: status.All(), Types: []string{}, SubCollections: []string{},
		Sort: []SortOrder{Newest, Oldest}}
	types, subs := map[string]bool{}, map[string]bool{}
	for _, f := range files {
		if !types[f.Type] {
			types[f.Type] = true
			res.Types = append(res.Types, f.Type)
		}
		if !subs[f.SubCollection] {
			subs[f.SubCollection] = true
			res.SubCollections = append(res.SubCollections, f.SubCollection)
		}
	}
	return res
}

// ParseSort returns sort order, empty value means Newest
func ParseSort(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case "", Newest:
		return Newest, true
	case Oldest:
		return Oldest, true
	}
	return "", false
}
