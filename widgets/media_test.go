package widgets

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestMediaMergeDeduplicatesInOrder(t *testing.T) {
	a := Media{CSS: []string{"a.css"}, JS: []string{"jquery.js", "a.js"}}
	b := Media{CSS: []string{"b.css", "a.css"}, JS: []string{"jquery.js", "b.js", ""}}

	assert.Equal(t, Media{
		CSS: []string{"a.css", "b.css"},
		JS:  []string{"jquery.js", "a.js", "b.js"},
	}, a.Merge(b))
}

func TestAllMediaLoadsJQueryOnceAndFirst(t *testing.T) {
	m := AllMedia(DefaultCDN())

	require.NotEmpty(t, m.JS)
	assert.Equal(t, DefaultCDN().JQuery, m.JS[0])

	count := 0
	for _, js := range m.JS {
		if js == DefaultCDN().JQuery {
			count++
		}
	}

	assert.Equal(t, 1, count)
	assert.Len(t, m.CSS, 4)
}

func TestCDNWithDefaults(t *testing.T) {
	cdn := CDN{Select2JS: "/static/select2.js"}.WithDefaults()

	assert.Equal(t, "/static/select2.js", cdn.Select2JS)
	assert.Equal(t, DefaultCDN().Select2CSS, cdn.Select2CSS)
	assert.Equal(t, DefaultCDN().JQuery, cdn.JQuery)
}

func TestMediaNodes(t *testing.T) {
	m := Media{CSS: []string{"/a.css"}, JS: []string{"/a.js"}}

	var buf bytes.Buffer
	require.NoError(t, g.Group(append(m.HeadNodes(), m.ScriptNodes()...)).Render(&buf))

	assert.Equal(t, `<link rel="stylesheet" href="/a.css"><script src="/a.js"></script>`, buf.String())
}
