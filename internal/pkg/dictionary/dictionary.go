package dictionary

import (
	"strings"
	"sync"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/pkg/errors"
)

// Query keeps dictionary list filters, empty values match all
type Query struct {
	Search        string
	SubCollection string
	// Page is 1 based
	Page int
}

// Page is a result of a list query
type Page struct {
	Terms          []*persistence.DictionaryTerm `json:"terms"`
	Page           int                           `json:"page"`
	PageSize       int                           `json:"pageSize"`
	Total          int                           `json:"total"`
	TotalPages     int                           `json:"totalPages"`
	SubCollections []string                      `json:"subCollections"`
}

// Store keeps glossary terms in memory
type Store struct {
	mu       sync.RWMutex
	terms    []*persistence.DictionaryTerm
	pageSize int
}

// NewStore creates dictionary store
func NewStore(terms []*persistence.DictionaryTerm, pageSize int) (*Store, error) {
	if pageSize < 1 {
		return nil, errors.Errorf("wrong page size %d", pageSize)
	}
	res := &Store{pageSize: pageSize}
	for _, t := range terms {
		c := *t
		res.terms = append(res.terms, &c)
	}
	goapp.Log.Info().Int("terms", len(res.terms)).Int("pageSize", pageSize).Msg("dictionary initialized")
	return res, nil
}

// List returns a page of terms matching the query
func (s *Store) List(q Query) *Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(q.Search)
	filtered := []*persistence.DictionaryTerm{}
	for _, t := range s.terms {
		if !strings.Contains(strings.ToLower(t.Term), search) {
			continue
		}
		if q.SubCollection != "" && t.SubCollection != q.SubCollection {
			continue
		}
		filtered = append(filtered, t)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	res := &Page{Page: page, PageSize: s.pageSize, Total: len(filtered),
		TotalPages: (len(filtered) + s.pageSize - 1) / s.pageSize,
		Terms:      []*persistence.DictionaryTerm{}, SubCollections: s.subCollections()}
	if page > res.TotalPages {
		return res
	}
	from := (page - 1) * s.pageSize
	to := min(from+s.pageSize, len(filtered))
	for _, t := range filtered[from:to] {
		c := *t
		res.Terms = append(res.Terms, &c)
	}
	return res
}

// Get returns a copy of the term or nil
func (s *Store) Get(id string) *persistence.DictionaryTerm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.find(id); t != nil {
		c := *t
		return &c
	}
	return nil
}

// UpdateDescription changes term description, returns false if there is no such term
func (s *Store) UpdateDescription(id, description string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(id)
	if t == nil {
		return false
	}
	t.Description = description
	goapp.Log.Info().Str("ID", id).Msg("description updated")
	return true
}

func (s *Store) find(id string) *persistence.DictionaryTerm {
	for _, t := range s.terms {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Store) subCollections() []string {
	res := []string{}
	was := map[string]bool{}
	for _, t := range s.terms {
		if !was[t.SubCollection] {
			was[t.SubCollection] = true
			res = append(res, t.SubCollection)
		}
	}
	return res
}
