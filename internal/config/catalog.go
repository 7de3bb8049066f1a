package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"delstarford/internal/models"
)

// catalogFile is the on-disk shape of an optional catalogue override.
type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// LoadCatalog loads the product catalogue. If the configured YAML file
// exists it replaces the built-in list wholesale; otherwise the defaults are
// returned. The catalogue is loaded once at startup and injected into the
// handlers that render it, never read through a global.
func LoadCatalog(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Catalogue file is optional
			return models.DefaultCatalog(), nil
		}
		return nil, err
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if len(cf.Products) == 0 {
		return models.DefaultCatalog(), nil
	}
	return cf.Products, nil
}
