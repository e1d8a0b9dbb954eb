package main

import (
	"fmt"
	"io"
	"strings"

	"burgerpos/internal/adapters/out/menufile"
	"burgerpos/internal/core/domain/model/menu"

	"github.com/spf13/cobra"
)

func newMenuCmd(opts *rootOptions) *cobra.Command {
	var menuFile string

	c := &cobra.Command{
		Use:   "menu",
		Short: "Validate and print the menu",
		Long:  "Load the menu from --file, MENU_FILE or the built-in default and print it.",
		RunE: func(c *cobra.Command, _ []string) error {
			config, _, err := opts.bootstrap()
			if err != nil {
				return err
			}
			if menuFile == "" {
				menuFile = config.MenuFile
			}

			catalog, err := menufile.New().Load(menuFile)
			if err != nil {
				return err
			}
			return printMenu(c.OutOrStdout(), catalog)
		},
	}
	c.Flags().StringVar(&menuFile, "file", "", "menu YAML file (overrides MENU_FILE)")
	return c
}

func printMenu(w io.Writer, catalog *menu.Catalog) error {
	for _, item := range catalog.List() {
		if _, err := fmt.Fprintf(w, "%-24s %8s  %s\n",
			item.Name(), item.Price(), strings.Join(item.Ingredients(), ", ")); err != nil {
			return err
		}
	}
	return nil
}
