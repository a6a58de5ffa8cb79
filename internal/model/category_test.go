package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.Valid(), "category %s", category)
	}
	assert.False(t, Category("Gadgets").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategory_CreatorAssignable(t *testing.T) {
	for _, category := range CreatorCategories {
		assert.True(t, category.CreatorAssignable(), "category %s", category)
	}
	assert.False(t, CategorySurprise.CreatorAssignable())
	assert.False(t, Category("Gadgets").CreatorAssignable())
}

func TestCategory_Accepts(t *testing.T) {
	assert.True(t, CategoryFashion.Accepts(CategoryFashion))
	assert.False(t, CategoryFashion.Accepts(CategoryFood))

	// Surprise is the wildcard.
	for _, category := range CreatorCategories {
		assert.True(t, CategorySurprise.Accepts(category), "category %s", category)
	}
}

func TestOrder_FullyAssigned(t *testing.T) {
	id := "i1"
	order := Order{Sections: []Section{
		{RequestedCategory: CategoryFashion, SelectedItemID: &id},
		{RequestedCategory: CategorySurprise},
	}}
	assert.False(t, order.FullyAssigned())

	order.Sections[1].SelectedItemID = &id
	assert.True(t, order.FullyAssigned())

	assert.True(t, Order{}.FullyAssigned(), "an order with no sections is vacuously assigned")
}
