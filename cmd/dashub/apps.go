package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xraph/dashub/internal/errors"
	"github.com/xraph/dashub/menu"
)

// sampleApps stands in for the host's app list when --apps is not given.
var sampleApps = []menu.App{
	{Label: "auth", Name: "Authentication and Authorization", URL: "/admin/auth/", Models: []menu.Model{
		{ObjectName: "Group", Name: "Groups", AdminURL: "/admin/auth/group/", AddURL: "/admin/auth/group/add/"},
		{ObjectName: "User", Name: "Users", AdminURL: "/admin/auth/user/", AddURL: "/admin/auth/user/add/"},
	}},
}

// loadApps reads a YAML list of apps in the shape the host admin reports.
func loadApps(path string) ([]menu.App, error) {
	if path == "" {
		return sampleApps, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrConfigError("failed to read apps file", err).WithContext("path", path)
	}

	var apps []menu.App
	if err := yaml.Unmarshal(data, &apps); err != nil {
		return nil, errors.ErrConfigError("failed to parse apps file", err).WithContext("path", path)
	}

	return apps, nil
}
