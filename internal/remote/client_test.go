package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseEndpoint(t *testing.T) {
	u, err := parseEndpoint("example.com:8080/v2/translations/en-us?x=1#frag")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/v2/translations/en-us" || u.RawQuery != "x=1" {
		t.Fatalf("url = %q, want path and query kept", u.String())
	}
	if u.Fragment != "" {
		t.Fatalf("fragment = %q, want dropped", u.Fragment)
	}

	for _, bad := range []string{"", "   ", "ftp://example.com/x", "http://"} {
		if _, err := parseEndpoint(bad); err == nil {
			t.Fatalf("parseEndpoint(%q) returned nil error", bad)
		}
	}
}

func TestClient_FetchTranslations(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/v2/translations/en-us" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"zeta": {"base": "Zeta", "zh-tw": "澤塔"},
			"alpha": {"base": "Alpha", "en-us": "Alpha!"}
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/v2/translations/en-us")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	entries, err := c.FetchTranslations(ctx)
	if err != nil {
		t.Fatalf("FetchTranslations returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "zeta" || entries[1].Key != "alpha" {
		t.Fatalf("entries = %#v, want zeta then alpha", entries)
	}
	if entries[0].Data["zh-tw"] != "澤塔" || entries[1].Data["en-us"] != "Alpha!" {
		t.Fatalf("entry data = %#v, want locale values", entries)
	}
	if !strings.HasPrefix(gotUserAgent, "locedit/") {
		t.Fatalf("User-Agent = %q, want locedit/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			_, _ = w.Write([]byte("{not-json"))
		case "/array":
			_, _ = w.Write([]byte("[]"))
		case "/redirect-ish":
			w.WriteHeader(http.StatusNotModified)
		default:
			http.Error(w, "nope", http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path string
		want string
	}{
		{"/broken", "decode response"},
		{"/array", "decode response"},
		{"/redirect-ish", "returned status 304"},
		{"/down", "returned status 503"},
	}
	for _, tc := range cases {
		c, err := NewClient(server.URL + tc.path)
		if err != nil {
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchTranslations(context.Background())
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error = %v, want %q", tc.path, err, tc.want)
		}
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.FetchTranslations(ctx)
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("error = %v, want execute request error", err)
	}
}

func TestClient_Options(t *testing.T) {
	h := &http.Client{Timeout: time.Second}
	c, err := NewClient("localhost:1", WithHTTPClient(h), WithUserAgent(" custom/1 "), WithTimeout(3*time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.http != h || c.http.Timeout != 3*time.Second {
		t.Fatalf("http client not applied: %#v", c.http)
	}
	if c.userAgent != "custom/1" {
		t.Fatalf("userAgent = %q, want custom/1", c.userAgent)
	}
	if c.Endpoint() != "http://localhost:1" {
		t.Fatalf("Endpoint() = %q, want http://localhost:1", c.Endpoint())
	}

	var nilClient *Client
	if _, err := nilClient.FetchTranslations(context.Background()); err == nil {
		t.Fatalf("nil client returned nil error")
	}
}
