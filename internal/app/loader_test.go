package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/five82/locedit/internal/config"
	"github.com/five82/locedit/internal/state"
	"github.com/five82/locedit/internal/translation"
)

type fakeFetcher struct {
	entries []translation.APIEntry
	err     error
	calls   int
}

func (f *fakeFetcher) FetchTranslations(context.Context) ([]translation.APIEntry, error) {
	f.calls++
	return f.entries, f.err
}

func newStore() *state.Store {
	return state.NewStore(state.Reducer{})
}

func TestBootstrapLoadsRemote(t *testing.T) {
	store := newStore()
	fetcher := &fakeFetcher{entries: []translation.APIEntry{
		{Key: "app.title", Data: map[string]string{"base": "Title", "zh-tw": "標題"}},
		{Key: "app.close", Data: map[string]string{"base": "Close"}},
	}}
	loader := &Loader{Dispatcher: store, Fetcher: fetcher, FallbackToSample: true}

	src, err := loader.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if src != SourceRemote {
		t.Fatalf("source = %q, want remote", src)
	}
	snap := store.Snapshot()
	if len(snap.Translations) != 2 || snap.Translations[0].Key != "app.title" {
		t.Fatalf("unexpected translations: %+v", snap.Translations)
	}
	if snap.Loading || snap.HasError() {
		t.Fatalf("loading=%v error=%q after success", snap.Loading, snap.Error)
	}
}

func TestBootstrapFallsBackToSample(t *testing.T) {
	store := newStore()
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	loader := &Loader{Dispatcher: store, Fetcher: fetcher, FallbackToSample: true}

	src, err := loader.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if src != SourceSample {
		t.Fatalf("source = %q, want sample", src)
	}
	snap := store.Snapshot()
	if len(snap.Translations) == 0 {
		t.Fatal("expected sample translations")
	}
	if snap.HasError() {
		t.Fatalf("fetch failure with fallback should not surface, got %q", snap.Error)
	}
	if snap.ModifiedCount() != 0 {
		t.Fatalf("sample load should start clean, got %d modified", snap.ModifiedCount())
	}
}

func TestBootstrapWithoutRemoteUsesSample(t *testing.T) {
	store := newStore()
	loader := &Loader{Dispatcher: store, FallbackToSample: true}

	src, err := loader.Bootstrap(context.Background())
	if err != nil || src != SourceSample {
		t.Fatalf("Bootstrap = %q, %v; want sample, nil", src, err)
	}
}

func TestBootstrapWithoutFallbackRecordsError(t *testing.T) {
	store := newStore()
	fetcher := &fakeFetcher{err: errors.New("boom")}
	loader := &Loader{Dispatcher: store, Fetcher: fetcher}

	src, err := loader.Bootstrap(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if src != SourceNone {
		t.Fatalf("source = %q, want none", src)
	}
	snap := store.Snapshot()
	if !strings.Contains(snap.Error, "failed to fetch translations") || !strings.Contains(snap.Error, "boom") {
		t.Fatalf("error = %q", snap.Error)
	}
	if snap.Loading {
		t.Fatal("loading should be cleared")
	}
}

func TestBootstrapNoSourceAtAll(t *testing.T) {
	store := newStore()
	loader := &Loader{Dispatcher: store}

	if _, err := loader.Bootstrap(context.Background()); !errors.Is(err, errNoSource) {
		t.Fatalf("err = %v, want errNoSource", err)
	}
	if !store.Snapshot().HasError() {
		t.Fatal("expected store error")
	}
}

func TestBootstrapFallbackFailure(t *testing.T) {
	store := newStore()
	loader := &Loader{
		Dispatcher:       store,
		Fetcher:          &fakeFetcher{err: errors.New("offline")},
		FallbackToSample: true,
		Sample: func() ([]translation.Translation, error) {
			return nil, errors.New("corrupt sample")
		},
	}

	src, err := loader.Bootstrap(context.Background())
	if err == nil || src != SourceNone {
		t.Fatalf("Bootstrap = %q, %v; want none with error", src, err)
	}
	snap := store.Snapshot()
	if !strings.Contains(snap.Error, "corrupt sample") {
		t.Fatalf("error = %q", snap.Error)
	}
	if snap.Loading {
		t.Fatal("loading should be cleared")
	}
}

func TestReloadWithoutRemote(t *testing.T) {
	store := newStore()
	loader := &Loader{Dispatcher: store, FallbackToSample: true}
	if err := loader.Reload(context.Background()); err == nil {
		t.Fatal("expected error without remote")
	}
	if !store.Snapshot().HasError() {
		t.Fatal("expected store error")
	}
}

func TestReloadReplacesCollection(t *testing.T) {
	store := newStore()
	fetcher := &fakeFetcher{entries: []translation.APIEntry{
		{Key: "a", Data: map[string]string{"base": "A"}},
	}}
	loader := &Loader{Dispatcher: store, Fetcher: fetcher}
	if _, err := loader.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	fetcher.entries = []translation.APIEntry{
		{Key: "b", Data: map[string]string{"base": "B"}},
		{Key: "c", Data: map[string]string{"base": "C"}},
	}
	if err := loader.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	snap := store.Snapshot()
	if len(snap.Translations) != 2 || snap.Translations[0].Key != "b" {
		t.Fatalf("unexpected translations after reload: %+v", snap.Translations)
	}
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestNewLoaderWiresRemoteClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"greeting":{"base":"Hello","zh-tw":"你好"}}`))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.APIURL = srv.URL
	store := newStore()
	loader, err := NewLoader(cfg, store, nil)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if loader.Fetcher == nil {
		t.Fatal("expected remote fetcher")
	}

	src, err := loader.Bootstrap(context.Background())
	if err != nil || src != SourceRemote {
		t.Fatalf("Bootstrap = %q, %v", src, err)
	}
	rec, idx := store.Snapshot().Find("greeting")
	if idx < 0 || rec.Locales[translation.LocaleZhTW] != "你好" {
		t.Fatalf("unexpected record %+v at %d", rec, idx)
	}
}

func TestNewLoaderWithoutEndpoint(t *testing.T) {
	loader, err := NewLoader(config.Default(), newStore(), nil)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	if loader.Fetcher != nil {
		t.Fatal("expected no fetcher without api_url")
	}
}
