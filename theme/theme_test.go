package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	g "maragu.dev/gomponents"

	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    [3]uint8
		wantErr bool
	}{
		{name: "long form", in: "#e31837", want: [3]uint8{227, 24, 55}},
		{name: "short form", in: "#fff", want: [3]uint8{255, 255, 255}},
		{name: "no hash", in: "000000", want: [3]uint8{0, 0, 0}},
		{name: "upper case", in: "#00FF7F", want: [3]uint8{0, 255, 127}},
		{name: "bad length", in: "#abcd", wantErr: true},
		{name: "bad digits", in: "#zzzzzz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, gr, b, err := HexToRGB(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidConfig(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, [3]uint8{r, gr, b})
		})
	}
}

func render(t *testing.T, nodes ...g.Node) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, g.Group(nodes).Render(&buf))

	return buf.String()
}

func TestManagerHeadNodes(t *testing.T) {
	m := NewManager(ThemeConfig{
		Branding:  Branding{Color: "#336699", Icon: "/static/favicon.png"},
		CustomCSS: "/static/site.css",
	}, nil)

	out := render(t, m.HeadNodes()...)

	assert.Contains(t, out, `<meta name="theme-color" content="#336699">`)
	assert.Contains(t, out, "--ps-theme-color:#336699;")
	assert.Contains(t, out, "--ps-theme-color-rgb:51, 102, 153;")
	assert.Contains(t, out, `<link rel="icon" href="/static/favicon.png">`)
	assert.Contains(t, out, `<link rel="stylesheet" href="/static/site.css">`)
	assert.Nil(t, m.CustomJSNode())
}

func TestManagerInvalidColorFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := NewManager(ThemeConfig{Branding: Branding{Color: "red"}}, logger.NewFromZap(zap.New(core)))

	assert.Equal(t, DefaultColor, m.Color())
	assert.Equal(t, "227, 24, 55", m.RGB())
	assert.Equal(t, DefaultColor, m.Branding().Color)
	assert.Equal(t, 1, logs.FilterMessage("invalid theme colour, using default").Len())
}

func TestManagerEmptyColorUsesDefaultSilently(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(ThemeConfig{}, logger.NewFromZap(zap.New(core)))

	assert.Equal(t, DefaultColor, m.Color())
	assert.Zero(t, logs.Len())
	assert.NotContains(t, render(t, m.HeadNodes()...), `rel="icon"`)
}

func TestManagerCustomJS(t *testing.T) {
	m := NewManager(ThemeConfig{CustomJS: "/static/site.js"}, nil)

	assert.Equal(t, `<script src="/static/site.js"></script>`, render(t, m.CustomJSNode()))
}
