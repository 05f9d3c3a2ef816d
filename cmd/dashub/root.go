package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xraph/dashub"
	"github.com/xraph/dashub/internal/errors"
)

type rootOptions struct {
	configPath string
	appsPath   string
	noColor    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "dashub",
		Short:        "Inspect dashub settings and preview the admin theme",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "settings file (default: search for .dashub.yaml upwards)")
	flags.StringVar(&opts.appsPath, "apps", "", "YAML file listing the installed apps (default: a sample auth app)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colour output")

	cmd.AddCommand(
		newMenuCommand(opts),
		newValidateCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// settingsPath returns the explicit --config path or the nearest settings
// file. ok is false when neither exists.
func (o *rootOptions) settingsPath() (string, bool) {
	if o.configPath != "" {
		return o.configPath, true
	}

	path, err := dashub.LocateSettings("")
	if err != nil {
		return "", false
	}

	return path, true
}

// readSettings reads the settings without validating them. Without a
// settings file the defaults apply, with environment overrides.
func (o *rootOptions) readSettings() (dashub.Settings, string, error) {
	path, ok := o.settingsPath()
	if !ok {
		s := dashub.DefaultSettings()
		if err := s.ApplyEnv(os.LookupEnv); err != nil {
			return dashub.Settings{}, "", err
		}

		s.Normalize()

		return s, "", nil
	}

	s, err := dashub.ReadSettings(path)

	return s, path, err
}

func (o *rootOptions) newDashub() (*dashub.Dashub, error) {
	s, _, err := o.readSettings()
	if err != nil {
		return nil, err
	}

	return dashub.New(s)
}

var errInvalidSettings = errors.New("settings have errors")
