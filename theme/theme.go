// Package theme renders the branding of the admin shell: the theme colour as
// CSS custom properties, the favicon, and the site's custom CSS and JS assets.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/internal/logger"
)

// DefaultColor is the theme colour used when none or an invalid one is configured.
const DefaultColor = "#e31837"

// Branding is the site identity shown in the header, sidebar and browser tab.
// Every field is optional.
type Branding struct {
	Title  string `json:"site_title"  yaml:"site_title"`
	Header string `json:"site_header" yaml:"site_header"`
	Brand  string `json:"site_brand"  yaml:"site_brand"`
	Logo   string `json:"site_logo"   yaml:"site_logo"`
	Icon   string `json:"site_icon"   yaml:"site_icon"`
	Color  string `json:"theme_color" yaml:"theme_color"`
}

// ThemeConfig holds everything the Manager renders.
type ThemeConfig struct {
	Branding  Branding
	CustomCSS string // stylesheet URL
	CustomJS  string // script URL
}

// Manager renders theme nodes for the page <head> and the end of <body>.
type Manager struct {
	config ThemeConfig
	color  string
	rgb    string
}

// NewManager creates a Manager. An invalid theme colour is replaced by
// DefaultColor and reported as a warning.
func NewManager(config ThemeConfig, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNoopLogger()
	}

	color := strings.TrimSpace(config.Branding.Color)
	if color == "" {
		color = DefaultColor
	}

	rgb, err := RGBString(color)
	if err != nil {
		log.Warn("invalid theme colour, using default",
			logger.String("theme_color", color),
			logger.String("default", DefaultColor),
			logger.Err(err),
		)

		color = DefaultColor
		rgb, _ = RGBString(DefaultColor)
	}

	config.Branding.Color = color

	return &Manager{config: config, color: color, rgb: rgb}
}

// Branding returns the effective branding, with the resolved colour.
func (m *Manager) Branding() Branding { return m.config.Branding }

// Color returns the effective theme colour in hex.
func (m *Manager) Color() string { return m.color }

// RGB returns the effective theme colour as "r, g, b".
func (m *Manager) RGB() string { return m.rgb }

// StyleVars returns the :root rule declaring the theme custom properties.
func (m *Manager) StyleVars() string {
	return fmt.Sprintf(":root{--ps-theme-color:%s;--ps-theme-color-rgb:%s;}", m.color, m.rgb)
}

// HeadNodes returns the nodes to include in <head>: theme-color meta, the CSS
// variables, the favicon and the custom stylesheet.
func (m *Manager) HeadNodes() []g.Node {
	nodes := []g.Node{
		html.Meta(html.Name("theme-color"), html.Content(m.color)),
		html.StyleEl(g.Raw(m.StyleVars())),
	}

	if icon := m.config.Branding.Icon; icon != "" {
		nodes = append(nodes, html.Link(html.Rel("icon"), html.Href(icon)))
	}

	if css := m.CustomCSSNode(); css != nil {
		nodes = append(nodes, css)
	}

	return nodes
}

// CustomCSSNode returns a stylesheet link for the custom CSS, or nil.
func (m *Manager) CustomCSSNode() g.Node {
	if m.config.CustomCSS == "" {
		return nil
	}

	return html.Link(html.Rel("stylesheet"), html.Href(m.config.CustomCSS))
}

// CustomJSNode returns a script tag for the custom JS, or nil.
func (m *Manager) CustomJSNode() g.Node {
	if m.config.CustomJS == "" {
		return nil
	}

	return html.Script(html.Src(m.config.CustomJS))
}

// HexToRGB parses "#rgb" or "#rrggbb" (the leading # is optional).
func HexToRGB(hex string) (r, gr, b uint8, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	if len(s) != 6 {
		return 0, 0, 0, errors.ErrInvalidConfig("theme_color", fmt.Errorf("%q is not a #rgb or #rrggbb colour", hex))
	}

	v, perr := strconv.ParseUint(s, 16, 32)
	if perr != nil {
		return 0, 0, 0, errors.ErrInvalidConfig("theme_color", perr)
	}

	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// RGBString formats a hex colour as "r, g, b" for use inside rgba().
func RGBString(hex string) (string, error) {
	r, gr, b, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d, %d, %d", r, gr, b), nil
}
