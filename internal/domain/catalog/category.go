package catalog

// Category represents a product category from the closed catalog set
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategoryHome        Category = "Home"
	CategorySports      Category = "Sports"
	CategoryToys        Category = "Toys"
	CategoryFood        Category = "Food"
	CategoryBeauty      Category = "Beauty"
	CategoryAutomotive  Category = "Automotive"
	CategoryOther       Category = "Other"
)

// AllCategories returns every valid category in display order
func AllCategories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryBooks,
		CategoryHome,
		CategorySports,
		CategoryToys,
		CategoryFood,
		CategoryBeauty,
		CategoryAutomotive,
		CategoryOther,
	}
}

// IsValid checks if the category is part of the closed set
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryHome,
		CategorySports, CategoryToys, CategoryFood, CategoryBeauty,
		CategoryAutomotive, CategoryOther:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}
