package catalog

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
)

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate(42, DefaultPerCategory)
	b := Generate(42, DefaultPerCategory)
	c := Generate(7, DefaultPerCategory)

	if len(a) != 12*DefaultPerCategory {
		t.Fatalf("expected %d products, got %d", 12*DefaultPerCategory, len(a))
	}
	differs := false
	for i := range a {
		if a[i].ID != b[i].ID || !a[i].Price.Equal(b[i].Price) || a[i].Rating != b[i].Rating {
			t.Fatalf("seed 42 produced different product at %d", i)
		}
		if !a[i].Price.Equal(c[i].Price) {
			differs = true
		}
	}
	if !differs {
		t.Fatalf("different seeds should produce different prices")
	}
}

func TestGenerateShapesProducts(t *testing.T) {
	products := Generate(1, 6)

	first := products[0]
	if first.ID != "100" || first.Category != enums.ProductCategoryElectronics || first.VendorID != "v1" {
		t.Fatalf("unexpected first product %+v", first)
	}
	if first.Name != "Electronics Premium Ultra #1" {
		t.Fatalf("unexpected name %q", first.Name)
	}
	if products[5].Name != "Electronics Premium Ultra #6" {
		t.Fatalf("tier should wrap after five, got %q", products[5].Name)
	}
	if first.Image != "https://picsum.photos/id/110/600/600" {
		t.Fatalf("unexpected image %q", first.Image)
	}
	if !strings.HasPrefix(first.Description, "High-end electronics solution") {
		t.Fatalf("unexpected description %q", first.Description)
	}

	seen := map[string]bool{}
	for _, p := range products {
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true

		base := basePriceFor(t, p.Category)
		if p.Price.LessThan(base) || p.Price.GreaterThan(base.Mul(decimal.RequireFromString("1.8"))) {
			t.Fatalf("price %s outside range for %s", p.Price, p.Category)
		}
		if p.Price.Exponent() < -2 {
			t.Fatalf("price %s not rounded to cents", p.Price)
		}
		if p.Rating < 4 || p.Rating > 4.9 {
			t.Fatalf("rating %v out of range", p.Rating)
		}
		if p.Reviews < 20 || p.Reviews > 819 {
			t.Fatalf("reviews %d out of range", p.Reviews)
		}
		if p.Stock < 10 || p.Stock > 109 {
			t.Fatalf("stock %d out of range", p.Stock)
		}
	}
}

func TestGenerateClampsCount(t *testing.T) {
	if got := len(Generate(1, -5)); got != 0 {
		t.Fatalf("expected empty catalog, got %d", got)
	}
	if got := len(Generate(1, 500)); got != 12*MaxPerCategory {
		t.Fatalf("expected clamp to %d per category, got %d", MaxPerCategory, got)
	}
}

func TestDefaultUser(t *testing.T) {
	u := DefaultUser()
	if u.ID != "user123" || u.Role != enums.UserRoleCustomer || u.Email != "alex@example.com" {
		t.Fatalf("unexpected default user %+v", u)
	}
}

func basePriceFor(t *testing.T, category enums.ProductCategory) decimal.Decimal {
	t.Helper()
	for _, cs := range categorySeeds {
		if cs.category == category {
			return decimal.NewFromFloat(cs.basePrice)
		}
	}
	t.Fatalf("no seed for %s", category)
	return decimal.Zero
}

func TestRandomImageIDRange(t *testing.T) {
	const prefix, suffix = "https://picsum.photos/id/", "/600/600"
	for range 500 {
		url := RandomImage()
		if !strings.HasPrefix(url, prefix) || !strings.HasSuffix(url, suffix) {
			t.Fatalf("unexpected image url %s", url)
		}
		id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(url, prefix), suffix))
		if err != nil {
			t.Fatalf("image id not numeric in %s: %v", url, err)
		}
		if id < 0 || id >= 200 {
			t.Fatalf("image id %d outside [0, 200)", id)
		}
	}
}
