package seed

import "curio-box/internal/model"

// Catalog is an ordered set of starter items used to seed an empty store.
type Catalog []model.Item

// Default returns the built-in starter catalog, used when no catalog file is
// configured or loadable.
func Default() Catalog {
	return Catalog{
		{
			ID:          "starter-1",
			Name:        "Shea Glow Body Butter",
			Business:    "Melanin Bloom Naturals",
			Category:    model.CategoryLifestyle,
			Description: "Hydrating whipped shea butter with citrus scent.",
		},
		{
			ID:          "starter-2",
			Name:        "Kente Street Tote",
			Business:    "Rooted Thread Co.",
			Category:    model.CategoryFashion,
			Description: "Everyday tote made with Ghana-inspired print details.",
		},
		{
			ID:          "starter-3",
			Name:        "Jollof Spice Blend",
			Business:    "Savor Diaspora Kitchen",
			Category:    model.CategoryFood,
			Description: "A mild spice mix to season rice, stews, and proteins.",
		},
	}
}
