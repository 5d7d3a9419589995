package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/testutil"
)

func newMenuUC(t *testing.T) *usecase.MenuUseCase {
	s := testutil.NewStore()
	return usecase.NewMenuUseCase(s.MenuCategories(), s.MenuItems(), fixedClock(t))
}

func TestMenuCreateCategory_NombreDuplicado(t *testing.T) {
	uc := newMenuUC(t)
	ctx := context.Background()
	_, err := uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "bebidas", DisplayName: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "bebidas", DisplayName: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, domain.ErrCategoryNameTaken.Error(), err.Error())
}

func TestMenuCreateItem_CategoriaInexistente(t *testing.T) {
	uc := newMenuUC(t)
	_, err := uc.CreateItem(context.Background(), dto.CreateMenuItemRequest{CategoryID: "nope", Name: "Suco", Price: dec("8")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenuPublic_SoloActivosOrdenados(t *testing.T) {
	uc := newMenuUC(t)
	ctx := context.Background()
	off := false
	one, two := 1, 2

	pratos, err := uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "pratos", DisplayName: "Pratos", Order: &two})
	require.NoError(t, err)
	bebidas, err := uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "bebidas", DisplayName: "Bebidas", Order: &one})
	require.NoError(t, err)
	_, err = uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "ocultos", DisplayName: "Ocultos", Active: &off})
	require.NoError(t, err)

	_, err = uc.CreateItem(ctx, dto.CreateMenuItemRequest{CategoryID: pratos.ID, Name: "Feijoada", Price: dec("45")})
	require.NoError(t, err)
	_, err = uc.CreateItem(ctx, dto.CreateMenuItemRequest{CategoryID: pratos.ID, Name: "Moqueca", Price: dec("60"), Active: &off})
	require.NoError(t, err)

	public, err := uc.Public(ctx)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, bebidas.ID, public[0].ID)
	assert.Empty(t, public[0].Items)
	require.Len(t, public[1].Items, 1)
	assert.Equal(t, "Feijoada", public[1].Items[0].Name)

	all, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cats, items, err := uc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cats)
	assert.Equal(t, 2, items)
}

func TestMenuDeleteCategory_BorraItems(t *testing.T) {
	uc := newMenuUC(t)
	ctx := context.Background()
	c, err := uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "sobremesas", DisplayName: "Sobremesas"})
	require.NoError(t, err)
	it, err := uc.CreateItem(ctx, dto.CreateMenuItemRequest{CategoryID: c.ID, Name: "Pudim", Price: dec("12")})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteCategory(ctx, c.ID))
	_, err = uc.GetItem(ctx, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DeleteCategory(ctx, c.ID), domain.ErrNotFound)
}

func TestMenuUpdateItem_CambiaCategoria(t *testing.T) {
	uc := newMenuUC(t)
	ctx := context.Background()
	a, err := uc.CreateCategory(ctx, dto.CreateMenuCategoryRequest{Name: "a", DisplayName: "A"})
	require.NoError(t, err)
	it, err := uc.CreateItem(ctx, dto.CreateMenuItemRequest{CategoryID: a.ID, Name: "X", Price: dec("1")})
	require.NoError(t, err)

	missing := "nope"
	_, err = uc.UpdateItem(ctx, it.ID, dto.UpdateMenuItemRequest{CategoryID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	spicy := true
	out, err := uc.UpdateItem(ctx, it.ID, dto.UpdateMenuItemRequest{Spicy: &spicy, Price: dec("2.50")})
	require.NoError(t, err)
	assert.True(t, out.Spicy)
	assert.True(t, out.Active)
	assertDec(t, "2.50", out.Price)
}
