package testsupport

import (
	"context"
	"sync"

	"readmark/internal/catalog"
	"readmark/internal/content"
	"readmark/internal/services"
)

// StubSource is an in-memory catalog.Source for tests. It records every
// search query it receives.
type StubSource struct {
	CatalogName content.CatalogName
	Entries     []catalog.Entry
	Err         error
	// OnSearch, when set, runs before the stub answers a search.
	OnSearch func(ctx context.Context, query string)

	mu      sync.Mutex
	queries []string
}

var _ catalog.Source = (*StubSource)(nil)

// NewStubSource returns a stub catalog answering every search with entries.
func NewStubSource(name content.CatalogName, entries ...catalog.Entry) *StubSource {
	return &StubSource{CatalogName: name, Entries: entries}
}

// NewFailingSource returns a stub catalog whose calls fail with err.
func NewFailingSource(name content.CatalogName, err error) *StubSource {
	return &StubSource{CatalogName: name, Err: err}
}

func (s *StubSource) Name() content.CatalogName { return s.CatalogName }

func (s *StubSource) Search(ctx context.Context, query string, _ content.Category) ([]catalog.Entry, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()
	if s.OnSearch != nil {
		s.OnSearch(ctx, query)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]catalog.Entry(nil), s.Entries...), nil
}

func (s *StubSource) Lookup(_ context.Context, id string, _ content.Category) (*catalog.Entry, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, entry := range s.Entries {
		if entry.ID == id {
			found := entry
			return &found, nil
		}
	}
	return nil, services.Wrap(services.ErrNotFound, string(s.CatalogName), "lookup", "id "+id, nil)
}

// Queries returns the search queries received so far.
func (s *StubSource) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}
