package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

// File is the YAML shape of a catalog seed file.
type File struct {
	Products []models.Product `yaml:"products" json:"products"`
}

// LoadFile reads a YAML catalog seed file.
func LoadFile(path string) ([]models.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	products, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return products, nil
}

// Decode parses and validates a YAML catalog. Every invalid entry is reported.
func Decode(r io.Reader) ([]models.Product, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(file.Products); err != nil {
		return nil, err
	}
	if file.Products == nil {
		file.Products = []models.Product{}
	}
	return file.Products, nil
}

// Validate checks that every product has a unique id, a name and a known category.
func Validate(products []models.Product) error {
	var errs error
	seen := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: id is required", i))
		} else if first, dup := seen[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("product %d: duplicate id %q (first at %d)", i, p.ID, first))
		} else {
			seen[p.ID] = i
		}
		if p.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: name is required", i))
		}
		if !p.Category.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("product %d: unknown category %q", i, p.Category))
		}
	}
	return errs
}

// Encode writes products in the format Decode accepts.
func Encode(w io.Writer, products []models.Product) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Products: products}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
