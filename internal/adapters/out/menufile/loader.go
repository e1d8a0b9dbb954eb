// Package menufile loads the menu catalog from YAML.
package menufile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/menu"

	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenu []byte

var ErrMenuIsEmpty = errors.New("menu has no items")

type fileMenu struct {
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Description string   `yaml:"description"`
	Ingredients []string `yaml:"ingredients"`
}

// YAMLLoader builds a menu.Catalog from a YAML file, or from the built-in menu
// when no path is configured.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads path. An empty path selects the built-in menu; a path that does not
// exist is an error.
func (l *YAMLLoader) Load(path string) (*menu.Catalog, error) {
	if path == "" {
		return l.Parse(defaultMenu, "default menu")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu file: %w", err)
	}
	return l.Parse(data, path)
}

// Parse decodes a YAML menu. source names the input in error messages.
func (l *YAMLLoader) Parse(data []byte, source string) (*menu.Catalog, error) {
	var file fileMenu
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("invalid %s: %w", source, ErrMenuIsEmpty)
	}

	catalog := menu.NewCatalog()
	for i, entry := range file.Items {
		price, err := kernel.MoneyFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: item %d: %w", source, i+1, err)
		}

		item, err := menu.NewMenuItem(entry.Name, entry.Description, price, entry.Ingredients)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: item %d: %w", source, i+1, err)
		}

		if err = catalog.Add(item); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", source, err)
		}
	}
	return catalog, nil
}
