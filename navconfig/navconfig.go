// Package navconfig loads the header navigation from YAML.
//
//	brand: Example
//	brandLink: /
//	items:
//	  - title: About
//	    link: /about
//	  - title: GitHub
//	    link: https://github.com/example
//	    external: true
package navconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/navheader/components/header"
)

// ErrNoItems is returned when a configuration declares no navigation items.
var ErrNoItems = errors.New("navigation config has no items")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the header configuration.
type Config struct {
	Brand     string                     `yaml:"brand"`
	BrandLink string                     `yaml:"brandLink"`
	Items     []header.NavLinkDescriptor `yaml:"items"`
}

// Default returns the header used when no configuration file is given.
func Default() *Config {
	return &Config{
		Brand:     "Substrate",
		BrandLink: "/",
		Items: []header.NavLinkDescriptor{
			{Link: "/", Title: "Home"},
			{Link: "/docs", Title: "Docs"},
			{Link: "/tutorials", Title: "Tutorials"},
			{Link: "/about", Title: "About"},
			{External: true, Link: "https://github.com/paritytech/substrate", Title: "GitHub"},
		},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read navigation config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse navigation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every item has a title and a link.
func (c *Config) Validate() error {
	if len(c.Items) == 0 {
		return ErrNoItems
	}

	var errs []error
	for i, item := range c.Items {
		if err := validate.Struct(item); err != nil {
			errs = append(errs, itemError(i, err))
		}
	}
	return errors.Join(errs...)
}

func itemError(i int, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("item %d: %w", i, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("item %d: %s: %w", i, strings.Join(fields, ", "), err)
}
