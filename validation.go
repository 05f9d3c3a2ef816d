package dashub

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xraph/dashub/changeform"
	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/menu"
	"github.com/xraph/dashub/theme"
)

// Validation issue levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// ValidationIssue is a configuration problem found by Validate.
type ValidationIssue struct {
	Field      string `json:"field"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (v ValidationIssue) Error() string {
	if v.Suggestion != "" {
		return fmt.Sprintf("%s: %s\nSuggestion: %s", v.Field, v.Message, v.Suggestion)
	}

	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationIssues is the result of Validate.
type ValidationIssues []ValidationIssue

// HasErrors returns true if there are any error-level issues.
func (v ValidationIssues) HasErrors() bool {
	for _, issue := range v {
		if issue.Level == LevelError {
			return true
		}
	}

	return false
}

// HasWarnings returns true if there are any warning-level issues.
func (v ValidationIssues) HasWarnings() bool {
	for _, issue := range v {
		if issue.Level == LevelWarning {
			return true
		}
	}

	return false
}

// Err joins the error-level issues into one VALIDATION_ERROR, or nil.
func (v ValidationIssues) Err() error {
	var errs []error

	for _, issue := range v {
		if issue.Level == LevelError {
			errs = append(errs, errors.ErrValidationError(issue.Field, errors.New(issue.Message)))
		}
	}

	return errors.Join(errs...)
}

// Validate checks the settings. Duplicate or nameless rules are errors
// because they make the menu ambiguous; anything that is silently defaulted
// at render time is a warning.
func (s Settings) Validate() ValidationIssues {
	var issues ValidationIssues

	add := func(level, field, message, suggestion string) {
		issues = append(issues, ValidationIssue{Field: field, Level: level, Message: message, Suggestion: suggestion})
	}

	apps := make(map[string]int, len(s.OrderMenus))

	for i, rule := range s.OrderMenus {
		field := fmt.Sprintf("order_menus[%d]", i)
		app := lowerKey(rule.App)

		if app == "" {
			add(LevelError, field+".app", "order rule has no app", `Add the app label:\norder_menus:\n  - app: "auth"\n    order: 1`)
			continue
		}

		if first, dup := apps[app]; dup {
			add(LevelError, field+".app",
				fmt.Sprintf("app %q is already ordered by order_menus[%d]", rule.App, first),
				"Merge the two rules into one")

			continue
		}

		apps[app] = i
		models := make(map[string]bool, len(rule.Models))

		for j, m := range rule.Models {
			modelField := fmt.Sprintf("%s.models[%d].model", field, j)
			model := lowerKey(m.Model)

			switch {
			case model == "":
				add(LevelError, modelField, "model order rule has no model", "")
			case models[model]:
				add(LevelError, modelField, fmt.Sprintf("model %q is ordered twice in app %q", m.Model, rule.App), "")
			default:
				models[model] = true
			}
		}
	}

	for app, links := range s.CustomLinks {
		for i, link := range links {
			field := fmt.Sprintf("custom_links.%s[%d]", app, i)

			if strings.TrimSpace(link.Name) == "" {
				add(LevelError, field+".name", "custom link has no name", "")
			}

			if link.URL == "" && len(link.Submenu) == 0 {
				add(LevelWarning, field+".url", "custom link has no url or submenu", `Set url: "/path/" or add submenu entries`)
			}

			for j, sub := range link.Submenu {
				if strings.TrimSpace(sub.Name) == "" {
					add(LevelError, fmt.Sprintf("%s.submenu[%d].name", field, j), "submenu link has no name", "")
				}
			}
		}
	}

	if _, _, _, err := theme.HexToRGB(s.ThemeColor); err != nil {
		add(LevelWarning, "theme_color", fmt.Sprintf("%q is not a hex colour, %s is used", s.ThemeColor, theme.DefaultColor),
			`Use #rgb or #rrggbb, e.g. theme_color: "#e31837"`)
	}

	if s.ChangeformFormat != "" {
		if _, ok := changeform.ParseFormat(s.ChangeformFormat); !ok {
			add(LevelWarning, "changeform_format", fmt.Sprintf("unknown format %q, %s is used", s.ChangeformFormat, changeform.DefaultFormat),
				formatSuggestion())
		}
	}

	for model, format := range s.ChangeformFormatOverrides {
		field := "changeform_format_overrides." + model

		if !isModelRef(model) {
			add(LevelWarning, field, fmt.Sprintf("%q is not an app.model identifier", model), "")
		}

		if _, ok := changeform.ParseFormat(format); !ok {
			add(LevelWarning, field, fmt.Sprintf("unknown format %q", format), formatSuggestion())
		}
	}

	submenus := make(map[string]bool, len(s.SubmenusModels))

	for i, model := range s.SubmenusModels {
		submenus[lowerKey(model)] = true

		if !isModelRef(model) {
			add(LevelWarning, fmt.Sprintf("submenus_models[%d]", i), fmt.Sprintf("%q is not an app.model identifier", model),
				`Use the lower-case "app.model" form, e.g. "auth.user"`)
		}
	}

	for model, links := range s.ModelSubmenus {
		if !submenus[lowerKey(model)] {
			add(LevelWarning, "model_submenus."+model, "model has no submenu, add it to submenus_models", "")
		}

		for i, link := range links {
			if link.Model == "" && link.URL == "" {
				add(LevelWarning, fmt.Sprintf("model_submenus.%s[%d]", model, i), "submenu entry has neither model nor url", "")
			}
		}
	}

	menus := []struct {
		field string
		links []menu.Link
	}{
		{field: "topmenu_links", links: s.TopmenuLinks},
		{field: "usermenu_links", links: s.UsermenuLinks},
	}

	for _, m := range menus {
		for i, link := range m.links {
			if link.URL == "" && link.Model == "" && link.App == "" {
				add(LevelWarning, fmt.Sprintf("%s[%d]", m.field, i), "link has no url, model or app and is skipped", "")
			}
		}
	}

	switch lowerKey(s.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		add(LevelWarning, "logging.level", fmt.Sprintf("unknown log level %q, info is used", s.Logging.Level), "")
	}

	// Map iteration is random; keep the report stable.
	slices.SortStableFunc(issues, func(a, b ValidationIssue) int {
		return strings.Compare(a.Field, b.Field)
	})

	return issues
}

func isModelRef(s string) bool {
	app, model, ok := strings.Cut(s, ".")
	return ok && app != "" && model != "" && !strings.Contains(model, ".")
}

func formatSuggestion() string {
	names := make([]string, 0, len(changeform.Formats()))
	for _, f := range changeform.Formats() {
		names = append(names, string(f))
	}

	return "Use one of: " + strings.Join(names, ", ")
}
