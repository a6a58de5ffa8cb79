package service

import (
	"context"
	"testing"

	"curio-box/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatorService_ListItems(t *testing.T) {
	items := []model.Item{
		{ID: "i1", Name: "Tote", Business: "Thread Co.", Category: model.CategoryFashion, Description: "A tote."},
	}

	domain := new(MockDomain)
	domain.On("Items").Return(items)

	got := NewCreatorService(domain, zerolog.Nop()).ListItems(context.Background())

	assert.Equal(t, items, got)
	domain.AssertExpectations(t)
}

func TestCreatorService_AddItem(t *testing.T) {
	ctx := context.Background()
	req := &model.ItemRequest{
		Name:        "Tote",
		Business:    "Thread Co.",
		Category:    model.CategoryFashion,
		Description: "A tote.",
	}
	created := model.Item{ID: "i1", Name: "Tote", Business: "Thread Co.", Category: model.CategoryFashion, Description: "A tote."}

	domain := new(MockDomain)
	domain.On("AddItem", ctx, "Tote", "Thread Co.", model.CategoryFashion, "A tote.").Return(created, nil)

	item, err := NewCreatorService(domain, zerolog.Nop()).AddItem(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, item)
	domain.AssertExpectations(t)
}

func TestCreatorService_AddItem_Rejected(t *testing.T) {
	ctx := context.Background()

	domain := new(MockDomain)
	domain.On("AddItem", ctx, "", "Biz", model.CategoryFood, "Desc").
		Return(model.Item{}, error(model.ErrEmptyField))

	_, err := NewCreatorService(domain, zerolog.Nop()).AddItem(ctx, &model.ItemRequest{
		Business:    "Biz",
		Category:    model.CategoryFood,
		Description: "Desc",
	})

	assert.ErrorIs(t, err, model.ErrEmptyField)
}

func TestCreatorService_AddItem_NilRequest(t *testing.T) {
	domain := new(MockDomain)

	_, err := NewCreatorService(domain, zerolog.Nop()).AddItem(context.Background(), nil)

	assert.ErrorIs(t, err, model.ErrEmptyField)
	domain.AssertNotCalled(t, "AddItem")
}

func TestCreatorService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	domain := new(MockDomain)
	domain.On("RemoveItem", ctx, "i1").Return(nil)

	err := NewCreatorService(domain, zerolog.Nop()).RemoveItem(ctx, "i1")

	assert.NoError(t, err)
	domain.AssertExpectations(t)
}
