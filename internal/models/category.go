package models

// Category is the meal slot a recipe belongs to.
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDessert   Category = "Dessert"
	CategorySnacks    Category = "Snacks"
	CategoryDrinks    Category = "Drinks"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySnacks,
	CategoryDrinks,
}

// Valid reports whether c is one of Categories. Matching is exact.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
