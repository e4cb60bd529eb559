package resolver_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"readmark/internal/catalog"
	"readmark/internal/config"
	"readmark/internal/content"
	"readmark/internal/resolver"
	"readmark/internal/services"
	"readmark/internal/testsupport"
)

func TestResolveReturnsNilWhenEveryCatalogMisses(t *testing.T) {
	sources := []catalog.Source{
		testsupport.NewFailingSource(content.CatalogAniList, services.Wrap(services.ErrUpstream, "anilist", "search", "status 500", nil)),
		testsupport.NewStubSource(content.CatalogJikan),
		testsupport.NewStubSource(content.CatalogKitsu, catalog.Entry{ID: "1", Titles: []string{"Completely Unrelated"}}),
	}
	r := resolver.New(sources)

	if got := r.Resolve(context.Background(), "Frieren", content.CategoryAnime); got != nil {
		t.Fatalf("expected nil candidate, got %+v", got)
	}
}

func TestResolveWalksFallbacksInOrder(t *testing.T) {
	anilist := testsupport.NewFailingSource(content.CatalogAniList, errors.New("connection refused"))
	jikan := testsupport.NewStubSource(content.CatalogJikan, catalog.Entry{ID: "9", Titles: []string{"Berserk of Gluttony"}})
	kitsu := testsupport.NewStubSource(content.CatalogKitsu, catalog.Entry{ID: "42", Titles: []string{"Berserk"}, CoverURL: "https://img.test/42.jpg"})
	mangadex := testsupport.NewStubSource(content.CatalogMangaDex, catalog.Entry{ID: "md", Titles: []string{"Berserk"}})

	r := resolver.New([]catalog.Source{anilist, jikan, kitsu, mangadex})
	got := r.Resolve(context.Background(), "Berserk", content.CategoryAnime)
	if got == nil {
		t.Fatal("expected a candidate")
	}
	want := content.Candidate{ID: "42", Title: "Berserk", ThumbnailURL: "https://img.test/42.jpg", Source: content.CatalogKitsu, Score: 1}
	if *got != want {
		t.Fatalf("unexpected candidate %+v", *got)
	}
	for _, stub := range []*testsupport.StubSource{anilist, jikan, kitsu} {
		if q := stub.Queries(); len(q) != 1 || q[0] != "Berserk" {
			t.Fatalf("%s: expected one query, got %q", stub.Name(), q)
		}
	}
	if q := mangadex.Queries(); len(q) != 0 {
		t.Fatalf("mangadex is not in the anime strategy, got queries %q", q)
	}
}

func TestResolveMatchesAnyTitleVariant(t *testing.T) {
	anilist := testsupport.NewStubSource(content.CatalogAniList,
		catalog.Entry{ID: "1", Titles: []string{"Shingeki no Kyojin", "Attack on Titan"}})
	r := resolver.New([]catalog.Source{anilist})

	got := r.Resolve(context.Background(), "Read Attack on Titan Online Free", content.CategoryManga)
	if got == nil {
		t.Fatal("expected a candidate")
	}
	if got.Title != "Shingeki no Kyojin" || got.Score != 1 || got.Source != content.CatalogAniList {
		t.Fatalf("unexpected candidate %+v", *got)
	}
	if q := anilist.Queries(); len(q) != 1 || q[0] != "Attack on Titan" {
		t.Fatalf("expected cleaned query, got %q", q)
	}
}

func TestResolveRespectsAcceptThreshold(t *testing.T) {
	entries := []catalog.Entry{{ID: "1", Titles: []string{"One Piece Party"}}}
	strict := resolver.New([]catalog.Source{testsupport.NewStubSource(content.CatalogAniList, entries...)})
	if got := strict.Resolve(context.Background(), "One Piece", content.CategoryManga); got != nil {
		t.Fatalf("expected 0.6 similarity to be rejected, got %+v", got)
	}

	lenient := resolver.New(
		[]catalog.Source{testsupport.NewStubSource(content.CatalogAniList, entries...)},
		resolver.WithMatching(config.Matching{AcceptThreshold: 0.5, EarlyAcceptThreshold: 0.95}),
	)
	got := lenient.Resolve(context.Background(), "One Piece", content.CategoryManga)
	if got == nil || got.ID != "1" {
		t.Fatalf("expected lowered threshold to accept, got %+v", got)
	}
}

func TestResolveSkipsEmptyTitle(t *testing.T) {
	stub := testsupport.NewStubSource(content.CatalogAniList, catalog.Entry{ID: "1", Titles: []string{"Anything"}})
	r := resolver.New([]catalog.Source{stub})
	if got := r.Resolve(context.Background(), "   ", content.CategoryManga); got != nil {
		t.Fatalf("expected nil for blank title, got %+v", got)
	}
	if len(stub.Queries()) != 0 {
		t.Fatalf("blank title must not reach catalogs")
	}
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	anilist := testsupport.NewStubSource(content.CatalogAniList)
	anilist.OnSearch = func(context.Context, string) { cancel() }
	mangadex := testsupport.NewStubSource(content.CatalogMangaDex, catalog.Entry{ID: "1", Titles: []string{"Vagabond"}})

	r := resolver.New([]catalog.Source{anilist, mangadex})
	if got := r.Resolve(ctx, "Vagabond", content.CategoryManga); got != nil {
		t.Fatalf("expected nil after cancellation, got %+v", got)
	}
	if len(mangadex.Queries()) != 0 {
		t.Fatal("cascade continued after cancellation")
	}
}

func TestResolveUnknownCategoryUsesDefaultStrategy(t *testing.T) {
	anilist := testsupport.NewStubSource(content.CatalogAniList, catalog.Entry{ID: "7", Titles: []string{"Monster"}})
	r := resolver.New([]catalog.Source{anilist})
	got := r.Resolve(context.Background(), "Monster", content.Category("podcast"))
	if got == nil || got.ID != "7" {
		t.Fatalf("expected default strategy match, got %+v", got)
	}
}

func TestStrategyTable(t *testing.T) {
	tests := []struct {
		category content.Category
		want     []content.CatalogName
	}{
		{content.CategoryAnime, []content.CatalogName{content.CatalogAniList, content.CatalogJikan, content.CatalogKitsu}},
		{content.CategoryManga, []content.CatalogName{content.CatalogAniList, content.CatalogMangaDex, content.CatalogKitsu}},
		{content.CategoryWebcomic, []content.CatalogName{content.CatalogMangaDex, content.CatalogAniList}},
		{content.CategoryNovel, []content.CatalogName{content.CatalogOpenLibrary}},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if got := resolver.StrategyFor(tt.category).Order(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("StrategyFor(%s) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestResolveByID(t *testing.T) {
	stub := testsupport.NewStubSource(content.CatalogMangaDex, catalog.Entry{ID: "abc", Titles: []string{"Vinland Saga"}, CoverURL: "https://img.test/abc.jpg"})
	r := resolver.New([]catalog.Source{stub})

	got, err := r.ResolveByID(context.Background(), content.CatalogMangaDex, "abc", content.CategoryManga)
	if err != nil {
		t.Fatalf("ResolveByID returned error: %v", err)
	}
	want := content.Candidate{ID: "abc", Title: "Vinland Saga", ThumbnailURL: "https://img.test/abc.jpg", Source: content.CatalogMangaDex}
	if *got != want {
		t.Fatalf("unexpected candidate %+v", *got)
	}
	if len(stub.Queries()) != 0 {
		t.Fatal("lookup by id must not search")
	}

	if _, err := r.ResolveByID(context.Background(), content.CatalogMangaDex, "missing", content.CategoryManga); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := r.ResolveByID(context.Background(), content.CatalogKitsu, "1", content.CategoryManga); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for unregistered catalog, got %v", err)
	}
	if _, err := r.ResolveByID(context.Background(), content.CatalogMangaDex, " ", content.CategoryManga); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for blank id, got %v", err)
	}
}

func TestFromConfigSkipsDisabledCatalogs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDisabledCatalogs("kitsu", "jikan"))
	r, err := resolver.FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig returned error: %v", err)
	}
	for _, name := range []content.CatalogName{content.CatalogAniList, content.CatalogMangaDex, content.CatalogOpenLibrary} {
		if _, ok := r.Source(name); !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
	for _, name := range []content.CatalogName{content.CatalogKitsu, content.CatalogJikan} {
		if _, ok := r.Source(name); ok {
			t.Fatalf("expected %s to be skipped", name)
		}
	}
}

func TestResolveAgainstHTTPCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search.json":
			_, _ = w.Write([]byte(`{"docs":[{"key":"/works/OL7W","title":"The Hobbit","cover_i":5}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t, testsupport.WithCatalogServer(server.URL))
	r, err := resolver.FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig returned error: %v", err)
	}
	got := r.Resolve(context.Background(), "The Hobbit", content.CategoryNovel)
	if got == nil {
		t.Fatal("expected a candidate")
	}
	if got.ID != "OL7W" || got.ThumbnailURL != server.URL+"/b/id/5-L.jpg" {
		t.Fatalf("unexpected candidate %+v", *got)
	}
}
