package main

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/xraph/dashub/menu"
)

func newMenuCommand(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the resolved sidebar for the installed apps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.newDashub()
			if err != nil {
				return err
			}

			apps, err := loadApps(opts.appsPath)
			if err != nil {
				return err
			}

			sections := d.SideMenu(apps)

			if asJSON {
				data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(sections, "", "  ")
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(append(data, '\n'))

				return err
			}

			printMenu(newPrinter(cmd.OutOrStdout(), opts.noColor), sections)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the sections as JSON")

	return cmd
}

func printMenu(p *printer, sections []menu.Section) {
	for _, s := range sections {
		p.printf("%s %s %s\n", p.bold.Sprint(s.Name), p.gray.Sprintf("(%s)", s.Label), p.gray.Sprint(s.Icon))

		for _, it := range s.Items {
			name := it.Name
			if it.Custom {
				name = p.yellow.Sprint(name)
			}

			p.printf("  %s  %s\n", name, p.green.Sprint(it.URL))

			for _, sub := range it.Submenu {
				p.printf("    - %s  %s\n", sub.Name, p.green.Sprint(sub.URL))
			}
		}
	}
}
