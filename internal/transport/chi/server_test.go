package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tuxcast/epidex/internal/domain/catalog"
	"github.com/tuxcast/epidex/internal/domain/episode"
	healthuc "github.com/tuxcast/epidex/internal/usecase/health"
	searchuc "github.com/tuxcast/epidex/internal/usecase/search"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	byID := map[int64]episode.Episode{
		1: {ID: 1, Title: "Wire Shark Basics", Tags: []string{"networking", "security"}, URL: "https://example.com/1"},
		2: {ID: 2, Title: "Cooking Show", Tags: []string{"food"}, URL: "https://example.com/2"},
	}
	byTag := map[string][]int64{
		"networking": {1},
		"security":   {1},
		"food":       {2},
	}
	cat, err := catalog.New(byID, byTag)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	searchSvc := searchuc.New(cat, searchuc.DefaultStoplist())
	healthSvc := healthuc.New(cat)

	srv, err := NewServer(searchSvc, healthSvc, zap.NewNop())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSearchAPI(t *testing.T) {
	h := newTestHandler(t)

	rr := doGet(t, h, "/api/search?query=wire+-food")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 || len(resp.Episodes) != 1 {
		t.Fatalf("expected exactly 1 result, got %+v", resp)
	}
	if resp.Episodes[0].ID != 1 {
		t.Errorf("expected episode 1, got %d", resp.Episodes[0].ID)
	}
	if resp.Query != "wire -food" {
		t.Errorf("echoed query = %q", resp.Query)
	}
}

func TestSearchAPI_EmptyQuery(t *testing.T) {
	h := newTestHandler(t)

	rr := doGet(t, h, "/api/search")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (empty result is not an error)", rr.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("expected 0 results, got %d", resp.Count)
	}
	if resp.Episodes == nil {
		t.Error("episodes must encode as [], not null")
	}
}

func TestSearchPage(t *testing.T) {
	h := newTestHandler(t)

	rr := doGet(t, h, "/search?query=wire")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Wire Shark Basics") {
		t.Errorf("results page missing episode title:\n%s", body)
	}
}

func TestSearchPage_NoResults(t *testing.T) {
	h := newTestHandler(t)

	rr := doGet(t, h, "/search?query=zzzzz")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No results") {
		t.Error("results page should say no results were found")
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rr := doGet(t, h, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want \"ok\"", resp.Status)
	}
	if resp.Episodes != 2 {
		t.Errorf("episodes = %d, want 2", resp.Episodes)
	}
}

func TestStaticIndex(t *testing.T) {
	h := newTestHandler(t)

	rr := doGet(t, h, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Episode search") {
		t.Error("landing page missing search form")
	}
}
