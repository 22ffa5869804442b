// Command catalog prints the seeded mock catalog so it can be inspected or saved as a
// SWIFTMARKET_CATALOG_FILE fixture.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/angelmondragon/swiftmarket-backend/internal/catalog"
	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

const (
	seedFlag        = "seed"
	perCategoryFlag = "per-category"
	formatFlag      = "format"
	categoryFlag    = "category"
	outputFlag      = "output"
)

type options struct {
	seed        uint64
	perCategory int
	format      string
	category    string
	output      string
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "catalog", Format: "console", Output: os.Stderr})
	ctx := context.Background()

	opts := parseFlags()
	if err := run(opts); err != nil {
		logg.Error(ctx, "catalog export failed", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	pflag.Uint64VarP(&opts.seed, seedFlag, "s", 42, "random seed")
	pflag.IntVarP(&opts.perCategory, perCategoryFlag, "n", catalog.DefaultPerCategory, "products per category")
	pflag.StringVarP(&opts.format, formatFlag, "f", "yaml", "output format: yaml or json")
	pflag.StringVarP(&opts.category, categoryFlag, "c", "", "only emit one category")
	pflag.StringVarP(&opts.output, outputFlag, "o", "", "write to file instead of stdout")
	pflag.Parse()
	return opts
}

func run(opts options) (err error) {
	products := catalog.Generate(opts.seed, opts.perCategory)
	if opts.category != "" {
		category, err := enums.ParseProductCategory(opts.category)
		if err != nil {
			return fmt.Errorf("--%s flag: %w", categoryFlag, err)
		}
		products = onlyCategory(products, category)
	}

	var w io.Writer = os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch opts.format {
	case "yaml", "yml":
		return catalog.Encode(w, products)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog.File{Products: products})
	default:
		return fmt.Errorf("--%s flag: unsupported format %q", formatFlag, opts.format)
	}
}

func onlyCategory(products []models.Product, category enums.ProductCategory) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
