package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xraph/dashub"
	"github.com/xraph/dashub/menu"
)

func testApps() []menu.App {
	return []menu.App{
		{Label: "auth", Name: "Authentication", URL: "/admin/auth/", Models: []menu.Model{
			{ObjectName: "User", Name: "Users", AdminURL: "/admin/auth/user/", AddURL: "/admin/auth/user/add/"},
		}},
		{Label: "books", Name: "Books", URL: "/admin/books/", Models: []menu.Model{
			{ObjectName: "Book", Name: "Books", AdminURL: "/admin/books/book/", AddURL: "/admin/books/book/add/"},
			{ObjectName: "Author", Name: "Authors", AdminURL: "/admin/books/author/", AddURL: "/admin/books/author/add/"},
		}},
	}
}

func newTestServer(t *testing.T, z *zap.Logger) *Server {
	t.Helper()

	if z == nil {
		z = zap.NewNop()
	}

	d, err := dashub.New(dashub.DefaultSettings(),
		dashub.WithZapLogger(z),
		dashub.WithSubmenus("books.book"),
		dashub.WithCustomLinks("support", menu.CustomLink{Name: "Docs", URL: "/docs/"}),
	)
	require.NoError(t, err)

	return New(d, testApps(), Config{Addr: "127.0.0.1:0"})
}

func get(t *testing.T, s *Server, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	return rec
}

func TestPreview(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/?path=/admin/books/book/&p=3")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	body := rec.Body.String()
	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, `class="ps-hasmenu open-menu active" data-ps-menu="books.book"`)
	assert.Contains(t, body, "ps-format-horizontal_tabs")
	assert.Contains(t, body, `data-ps-target="chapters-tab"`)
	assert.Contains(t, body, `id="id_chapters-0-number"`)
	assert.Contains(t, body, "data-ps-related-modal")
	assert.Contains(t, body, `<li class="page-item active"><a class="page-link" href="javascript:void(0);">3</a></li>`)
	assert.Contains(t, body, "<strong>Admin</strong> Dashboard")
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/static/js/dashub.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mob-sidebar-active")

	assert.Equal(t, http.StatusNotFound, get(t, s, "/static/js/nope.js").Code)
}

func TestMenuAPI(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/menu")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp MenuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Sections, 3)
	assert.Equal(t, "auth", resp.Sections[0].Label)
	assert.Equal(t, "books", resp.Sections[1].Label)
	assert.Equal(t, "support", resp.Sections[2].Label)
	assert.Len(t, resp.Sections[1].Items[0].Submenu, 2)
}

func TestSearchAPI(t *testing.T) {
	s := newTestServer(t, nil)

	rec := get(t, s, "/api/search?q=author")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "author", resp.Query)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "Authors", resp.Results[0].Title)

	rec = get(t, s, "/api/search?q=")
	assert.Contains(t, rec.Body.String(), `"results":[]`)

	rec = get(t, s, "/api/search?q=books&limit=1")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 1)
}

func TestSearchAPIRejectsBadLimit(t *testing.T) {
	s := newTestServer(t, nil)

	for _, limit := range []string{"abc", "0", "-2"} {
		rec := get(t, s, "/api/search?q=books&limit="+limit)
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
		assert.Contains(t, rec.Body.String(), "limit must be a positive integer")
	}
}

func TestSettingsAPI(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/settings")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, dashub.DefaultSiteTitle, body["site_title"])
	assert.Equal(t, "227, 24, 55", body["theme_color_rgb"])
}

func TestRequestIDAndLogging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := newTestServer(t, zap.New(core))

	rec := get(t, s, "/api/menu", RequestIDHeader, "req-42")
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("request completed").FilterField(zap.String("request_id", "req-42")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dashub.server", entries[0].LoggerName)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["http.status"])
}

func TestRecovererAndMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	s := newTestServer(t, zap.New(core))
	s.router.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rec := get(t, s, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	get(t, s, "/api/menu")

	metrics := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)

	body, err := io.ReadAll(metrics.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `dashub_http_requests_total{method="GET",path="/api/menu",status_code="200"} 1`)
	assert.Contains(t, string(body), `dashub_http_requests_total{method="GET",path="/boom",status_code="500"} 1`)
}

func TestStaticPrefix(t *testing.T) {
	assert.Equal(t, "/static/", staticPrefix("https://cdn.example.com/admin/"))
	assert.Equal(t, "/assets/", staticPrefix("/assets"))
	assert.Equal(t, "/static/", staticPrefix("/static/"))
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.ListenAndServe(ctx))
}
