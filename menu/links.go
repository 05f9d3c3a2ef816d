package menu

import "strings"

// MakeLinks resolves top-menu or user-menu links against the installed apps.
// Model links point at the model changelist; app links become a dropdown of
// the app's models when allowAppMenus is set. Links that reference something
// that is not installed are dropped.
func MakeLinks(links []Link, apps []App, allowAppMenus bool) []Entry {
	entries := make([]Entry, 0, len(links))
	lookup := AppsLookup(apps)

	for _, link := range links {
		switch {
		case link.Model != "":
			appLabel, objectName, ok := cutRef(link.Model)
			if !ok {
				continue
			}

			name, url, found := lookup.LookupModel(appLabel, objectName)
			if !found {
				continue
			}

			if link.Name != "" {
				name = link.Name
			}

			entries = append(entries, Entry{Name: name, URL: url, Icon: link.Icon, NewWindow: link.NewWindow})

		case link.App != "":
			if !allowAppMenus {
				continue
			}

			app, ok := findApp(apps, link.App)
			if !ok {
				continue
			}

			entry := Entry{Name: app.Name, URL: "#", Icon: link.Icon}
			if link.Name != "" {
				entry.Name = link.Name
			}

			for _, m := range app.Models {
				entry.Children = append(entry.Children, Entry{Name: m.Name, URL: m.AdminURL})
			}

			entries = append(entries, entry)

		case link.URL != "":
			entries = append(entries, Entry{Name: link.Name, URL: link.URL, Icon: link.Icon, NewWindow: link.NewWindow})
		}
	}

	return entries
}

func findApp(apps []App, label string) (App, bool) {
	for _, app := range apps {
		if lower(app.Label) == lower(label) {
			return app, true
		}
	}

	return App{}, false
}

func cutRef(ref string) (string, string, bool) {
	appLabel, objectName, ok := strings.Cut(ref, ".")
	if !ok || appLabel == "" || objectName == "" {
		return "", "", false
	}

	return appLabel, objectName, true
}
