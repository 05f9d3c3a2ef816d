package dashub

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/theme"
)

// Settings file names searched by FindSettings, in order.
var settingsFileNames = []string{".dashub.yaml", ".dashub.yml", ".dashub.json"}

// Environment variables that override file settings.
const (
	EnvSiteTitle          = "DASHUB_SITE_TITLE"
	EnvSiteLogo           = "DASHUB_SITE_LOGO"
	EnvSiteIcon           = "DASHUB_SITE_ICON"
	EnvThemeColor         = "DASHUB_THEME_COLOR"
	EnvRelatedModalActive = "DASHUB_RELATED_MODAL_ACTIVE"
	EnvLogLevel           = "DASHUB_LOG_LEVEL"
)

// LoadSettings reads a YAML or JSON settings file (by extension, YAML when
// unknown), applies environment overrides, normalizes and validates it.
// Loading fails only on error-level validation issues.
func LoadSettings(path string) (Settings, error) {
	s, err := ReadSettings(path)
	if err != nil {
		return Settings{}, err
	}

	if issues := s.Validate(); issues.HasErrors() {
		return s, errors.ErrConfigError("invalid settings in "+path, issues.Err())
	}

	return s, nil
}

// ReadSettings is LoadSettings without validation.
func ReadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.ErrConfigError("failed to read settings file", err).WithContext("path", path)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	s, err := ParseSettings(data, format)
	if err != nil {
		return Settings{}, errors.ErrConfigError("failed to parse settings file", err).WithContext("path", path)
	}

	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return Settings{}, err
	}

	s.Normalize()

	return s, nil
}

// ParseSettings decodes settings over DefaultSettings. format is "yaml" or
// "json". Unknown keys are ignored. The result is not normalized.
func ParseSettings(data []byte, format string) (Settings, error) {
	s := DefaultSettings()

	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &s); err != nil {
			return Settings{}, err
		}

		s.customLinkKeys = jsonCustomLinkKeys(data)
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, err
		}

		s.customLinkKeys = yamlCustomLinkKeys(data)
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}

	return s, nil
}

// FindSettings searches dir and its parents for a settings file and loads
// the first one found. An empty dir starts at the working directory.
func FindSettings(dir string) (Settings, string, error) {
	path, err := LocateSettings(dir)
	if err != nil {
		return Settings{}, "", err
	}

	s, err := LoadSettings(path)

	return s, path, err
}

// LocateSettings returns the path of the settings file FindSettings would
// load.
func LocateSettings(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.ErrConfigError("failed to get current directory", err)
		}

		dir = wd
	}

	for {
		for _, name := range settingsFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ErrConfigError(
				"no .dashub.yaml, .dashub.yml or .dashub.json found in current directory or any parent", nil)
		}

		dir = parent
	}
}

// ApplyEnv overrides branding settings from the environment.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str(EnvSiteTitle, &s.SiteTitle)
	str(EnvSiteLogo, &s.SiteLogo)
	str(EnvSiteIcon, &s.SiteIcon)
	str(EnvThemeColor, &s.ThemeColor)
	str(EnvLogLevel, &s.Logging.Level)

	if v, ok := lookup(EnvRelatedModalActive); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.ErrInvalidConfig(EnvRelatedModalActive, err)
		}

		s.RelatedModalActive = b
	}

	return nil
}

// Normalize lower-cases identifiers, fills derived values and falls back to
// defaults for empty keys. It is idempotent.
func (s *Settings) Normalize() {
	if s.SiteTitle == "" {
		s.SiteTitle = DefaultSiteTitle
	}

	if s.SiteHeader == "" {
		s.SiteHeader = s.SiteTitle
	}

	if s.SiteBrand == "" {
		s.SiteBrand = s.SiteHeader
	}

	if s.SiteIcon == "" {
		s.SiteIcon = s.SiteLogo
	}

	s.ThemeColor = strings.TrimSpace(s.ThemeColor)
	if s.ThemeColor == "" {
		s.ThemeColor = theme.DefaultColor
	}

	if rgb, err := theme.RGBString(s.ThemeColor); err == nil {
		s.ThemeColorRGB = rgb
	} else {
		s.ThemeColorRGB, _ = theme.RGBString(theme.DefaultColor)
	}

	s.HideApps = lowerList(s.HideApps)
	s.HideModels = lowerList(s.HideModels)
	s.SubmenusModels = lowerList(s.SubmenusModels)
	s.Icons = lowerMap(s.Icons, true)
	s.ChangeformFormatOverrides = lowerMap(s.ChangeformFormatOverrides, true)
	s.ChangeformFormat = strings.ToLower(strings.TrimSpace(s.ChangeformFormat))

	if s.DefaultIconParents == "" {
		s.DefaultIconParents = menu.DefaultParentIcon
	}

	if s.DefaultIconChildren == "" {
		s.DefaultIconChildren = menu.DefaultChildIcon
	}

	submenus := make(map[string][]menu.SubmenuLink, len(s.ModelSubmenus))
	for k, v := range s.ModelSubmenus {
		key := lowerKey(k)
		submenus[key] = append(submenus[key], v...)
	}

	s.ModelSubmenus = submenus

	links := make(map[string][]menu.CustomLink, len(s.CustomLinks))
	for k, v := range s.CustomLinks {
		key := lowerKey(k)
		links[key] = append(links[key], v...)
	}

	s.CustomLinks = links

	seen := make(map[string]bool, len(s.customLinkKeys))
	keys := make([]string, 0, len(s.customLinkKeys))

	// Keys keep their declared casing; it is the label of a new section.
	for _, k := range s.customLinkKeys {
		key := lowerKey(k)
		if _, ok := links[key]; ok && !seen[key] {
			seen[key] = true
			keys = append(keys, strings.TrimSpace(k))
		}
	}

	s.customLinkKeys = keys

	if s.StaticURL == "" {
		s.StaticURL = DefaultStaticURL
	}

	if !strings.HasSuffix(s.StaticURL, "/") {
		s.StaticURL += "/"
	}

	s.Assets = s.Assets.WithDefaults()
}

func lowerKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func lowerList(values StringList) StringList {
	if values == nil {
		return nil
	}

	out := make(StringList, 0, len(values))
	for _, v := range values {
		if v = lowerKey(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

func lowerMap(m map[string]string, values bool) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if values {
			v = strings.ToLower(strings.TrimSpace(v))
		}

		out[lowerKey(k)] = v
	}

	return out
}

// yamlCustomLinkKeys returns the custom_links keys in document order.
func yamlCustomLinkKeys(data []byte) []string {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "custom_links" || root.Content[i+1].Kind != yaml.MappingNode {
			continue
		}

		links := root.Content[i+1]
		keys := make([]string, 0, len(links.Content)/2)

		for j := 0; j+1 < len(links.Content); j += 2 {
			keys = append(keys, links.Content[j].Value)
		}

		return keys
	}

	return nil
}

// jsonCustomLinkKeys returns the custom_links keys in document order.
func jsonCustomLinkKeys(data []byte) []string {
	var keys []string

	iter := jsoniter.ParseBytes(json, data)
	iter.ReadMapCB(func(it *jsoniter.Iterator, field string) bool {
		if field != "custom_links" || it.WhatIsNext() != jsoniter.ObjectValue {
			it.Skip()
			return true
		}

		it.ReadMapCB(func(inner *jsoniter.Iterator, key string) bool {
			keys = append(keys, key)
			inner.Skip()

			return true
		})

		return true
	})

	return keys
}
