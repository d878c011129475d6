// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/pdiddy/market-scout/pkg/types"
)

func TestPrioritizeWikipedia(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		want  []string
	}{
		{
			"moves wikipedia to front",
			[]string{"https://a.com", "https://en.wikipedia.org/wiki/X", "https://b.com"},
			[]string{"https://en.wikipedia.org/wiki/X", "https://a.com", "https://b.com"},
		},
		{
			"no wikipedia unchanged",
			[]string{"https://a.com", "https://b.com"},
			[]string{"https://a.com", "https://b.com"},
		},
		{
			"already first unchanged",
			[]string{"https://en.wikipedia.org/wiki/X", "https://a.com"},
			[]string{"https://en.wikipedia.org/wiki/X", "https://a.com"},
		},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrioritizeWikipedia(tt.links); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PrioritizeWikipedia = %v, want %v", got, tt.want)
			}
		})
	}
}

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "test/0.1",
		},
		APIKey:   "test-key",
		EngineID: "test-cx",
		MaxLinks: 5,
	}
}

func TestGoogleProviderSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("cx"); got != "test-cx" {
			t.Errorf("cx = %q, want test-cx", got)
		}
		fmt.Fprint(w, `{"items": [
			{"link": "https://a.com"},
			{"link": "https://en.wikipedia.org/wiki/Acme"},
			{"link": "https://b.com"},
			{"link": "https://c.com"},
			{"link": "https://d.com"},
			{"link": "https://e.com"}
		]}`)
	}))
	defer srv.Close()

	oldBase := googleSearchBase
	googleSearchBase = srv.URL
	defer func() { googleSearchBase = oldBase }()

	p := &GoogleProvider{Client: srv.Client(), Config: testSearchCfg()}
	links, err := p.Search(context.Background(), "Acme company profile")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	want := []string{
		"https://en.wikipedia.org/wiki/Acme",
		"https://a.com",
		"https://b.com",
		"https://c.com",
		"https://d.com",
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestGoogleProviderEmptyQuery(t *testing.T) {
	p := &GoogleProvider{Client: http.DefaultClient, Config: testSearchCfg()}
	if _, err := p.Search(context.Background(), ""); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestGoogleProviderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	oldBase := googleSearchBase
	googleSearchBase = srv.URL
	defer func() { googleSearchBase = oldBase }()

	p := &GoogleProvider{Client: srv.Client(), Config: testSearchCfg()}
	if _, err := p.Search(context.Background(), "Acme"); err == nil {
		t.Error("expected error for HTTP 403")
	}
}
