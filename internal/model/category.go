package model

// Category classifies an item and constrains which order sections it can fill.
type Category string

const (
	CategoryGenre       Category = "Genre"
	CategoryAccessories Category = "Accessories"
	CategoryFashion     Category = "Fashion"
	CategoryFood        Category = "Food"
	CategoryLifestyle   Category = "Lifestyle"
	CategoryArt         Category = "Art/Entertainment"
	CategorySurprise    Category = "Surprise"
)

// Categories lists every category in display order, Surprise last.
var Categories = []Category{
	CategoryGenre,
	CategoryAccessories,
	CategoryFashion,
	CategoryFood,
	CategoryLifestyle,
	CategoryArt,
	CategorySurprise,
}

// CreatorCategories lists the categories a creator may assign to an item.
// Surprise is reserved for order sections.
var CreatorCategories = []Category{
	CategoryGenre,
	CategoryAccessories,
	CategoryFashion,
	CategoryFood,
	CategoryLifestyle,
	CategoryArt,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CreatorAssignable reports whether a creator may list an item under c.
func (c Category) CreatorAssignable() bool {
	return c.Valid() && c != CategorySurprise
}

// Accepts reports whether an item of the given category may fill a section
// requesting c. Surprise accepts any item.
func (c Category) Accepts(item Category) bool {
	return c == CategorySurprise || c == item
}
