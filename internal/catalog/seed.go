package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

const (
	// DefaultPerCategory is the number of products generated per category.
	DefaultPerCategory = 20
	// MaxPerCategory keeps generated ids inside each category's id block.
	MaxPerCategory = 100
)

var tiers = []string{"Ultra", "Pro", "Elite", "Max", "Z"}

type categorySeed struct {
	category  enums.ProductCategory
	startID   int
	basePrice float64
	vendorID  string
}

var categorySeeds = []categorySeed{
	{enums.ProductCategoryElectronics, 100, 250, "v1"},
	{enums.ProductCategoryFashion, 200, 55, "v2"},
	{enums.ProductCategoryHome, 300, 90, "v1"},
	{enums.ProductCategoryBeauty, 400, 35, "v2"},
	{enums.ProductCategoryFitness, 500, 60, "v3"},
	{enums.ProductCategoryKitchen, 600, 130, "v1"},
	{enums.ProductCategoryPets, 700, 20, "v3"},
	{enums.ProductCategoryGarden, 800, 75, "v2"},
	{enums.ProductCategoryBooks, 900, 15, "v1"},
	{enums.ProductCategoryToys, 1000, 40, "v3"},
	{enums.ProductCategoryAutomotive, 1100, 180, "v2"},
	{enums.ProductCategoryOffice, 1200, 85, "v1"},
}

// Generate builds the mock catalog: perCategory products for every category, in category
// order. The same seed always yields the same catalog. perCategory is clamped to
// [0, MaxPerCategory].
func Generate(seed uint64, perCategory int) []models.Product {
	perCategory = max(0, min(perCategory, MaxPerCategory))
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]models.Product, 0, perCategory*len(categorySeeds))
	for _, cs := range categorySeeds {
		for i := 0; i < perCategory; i++ {
			out = append(out, generateProduct(rng, cs, i))
		}
	}
	return out
}

func generateProduct(rng *rand.Rand, cs categorySeed, i int) models.Product {
	id := cs.startID + i
	price := cs.basePrice + rng.Float64()*cs.basePrice*0.8
	rating := 4 + rng.Float64()*0.9
	reviews := int(math.Floor(rng.Float64()*800)) + 20
	stock := int(math.Floor(rng.Float64()*100)) + 10

	return models.Product{
		ID:          strconv.Itoa(id),
		Name:        fmt.Sprintf("%s Premium %s #%d", cs.category, tiers[i%len(tiers)], i+1),
		Description: Description(cs.category),
		Price:       decimal.NewFromFloat(price).Round(2),
		Category:    cs.category,
		Image:       ProductImage(id),
		VendorID:    cs.vendorID,
		Stock:       stock,
		Rating:      math.Round(rating*10) / 10,
		Reviews:     reviews,
	}
}

// Description is the stock marketing copy for generated products.
func Description(category enums.ProductCategory) string {
	return fmt.Sprintf("High-end %s solution engineered for those who demand the best in quality, durability, and style. Proven performance in every condition.",
		strings.ToLower(string(category)))
}

// ProductImage returns the placeholder image URI for a numeric product id.
func ProductImage(id int) string {
	return fmt.Sprintf("https://picsum.photos/id/%d/600/600", id%200+10)
}

// RandomImage picks a placeholder image for listings created without one.
func RandomImage() string {
	return fmt.Sprintf("https://picsum.photos/id/%d/600/600", rand.IntN(200))
}

// DefaultUser is the mock account every session starts with.
func DefaultUser() models.User {
	return models.User{
		ID:     "user123",
		Name:   "Alex Johnson",
		Email:  "alex@example.com",
		Role:   enums.UserRoleCustomer,
		Avatar: "https://picsum.photos/id/64/100/100",
	}
}
