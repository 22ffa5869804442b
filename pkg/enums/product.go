package enums

import "fmt"

// ProductCategory represents the canonical product categories supported by the catalog.
type ProductCategory string

// CategoryAll is the filter sentinel meaning "every category". It is never a product category.
const CategoryAll = "All"

const (
	ProductCategoryElectronics ProductCategory = "Electronics"
	ProductCategoryFashion     ProductCategory = "Fashion"
	ProductCategoryHome        ProductCategory = "Home"
	ProductCategoryBeauty      ProductCategory = "Beauty"
	ProductCategoryFitness     ProductCategory = "Fitness"
	ProductCategoryKitchen     ProductCategory = "Kitchen"
	ProductCategoryPets        ProductCategory = "Pets"
	ProductCategoryGarden      ProductCategory = "Garden"
	ProductCategoryBooks       ProductCategory = "Books"
	ProductCategoryToys        ProductCategory = "Toys"
	ProductCategoryAutomotive  ProductCategory = "Automotive"
	ProductCategoryOffice      ProductCategory = "Office"
)

var validProductCategories = []ProductCategory{
	ProductCategoryElectronics,
	ProductCategoryFashion,
	ProductCategoryHome,
	ProductCategoryBeauty,
	ProductCategoryFitness,
	ProductCategoryKitchen,
	ProductCategoryPets,
	ProductCategoryGarden,
	ProductCategoryBooks,
	ProductCategoryToys,
	ProductCategoryAutomotive,
	ProductCategoryOffice,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ProductCategories returns the catalog categories in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}

// FilterCategories returns the category filter options, starting with the All sentinel.
func FilterCategories() []string {
	out := make([]string, 0, len(validProductCategories)+1)
	out = append(out, CategoryAll)
	for _, c := range validProductCategories {
		out = append(out, string(c))
	}
	return out
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
