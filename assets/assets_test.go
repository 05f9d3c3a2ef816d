package assets

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFiles(t *testing.T) {
	for _, name := range append([]string{Stylesheet, Avatar}, Scripts...) {
		data, err := ReadFile(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestScriptsShareClassNames(t *testing.T) {
	js, err := ReadFile("js/dashub.js")
	require.NoError(t, err)

	css, err := ReadFile(Stylesheet)
	require.NoError(t, err)

	for _, class := range []string{"ps-hasmenu", "open-menu", "ps-sidebar-hide", "mob-sidebar-active", "ps-caption", "ps-link"} {
		assert.Contains(t, string(js), class)
		assert.Contains(t, string(css), class)
	}
}

func TestSearchMatchesEntryLabelOnly(t *testing.T) {
	js, err := ReadFile("js/dashub.js")
	require.NoError(t, err)

	assert.Contains(t, string(js), `":scope > .ps-link .ps-mtext"`)
	assert.NotContains(t, string(js), "entry.textContent")
}

func TestWidgetsSkipEmptyForm(t *testing.T) {
	js, err := ReadFile("js/widgets.js")
	require.NoError(t, err)

	assert.Contains(t, string(js), `"__prefix__"`)
	assert.Contains(t, string(js), "formset:added")
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/css/dashub.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css"))

	rec = httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/js/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFSListsScripts(t *testing.T) {
	entries, err := fs.ReadDir(FS(), "js")
	require.NoError(t, err)
	assert.Len(t, entries, len(Scripts))
}
