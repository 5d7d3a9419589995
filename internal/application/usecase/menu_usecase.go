package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// MenuUseCase administración del cardápio y su vista pública.
type MenuUseCase struct {
	categories repository.MenuCategoryRepository
	items      repository.MenuItemRepository
	clock      ports.Clock
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(categories repository.MenuCategoryRepository, items repository.MenuItemRepository, clock ports.Clock) *MenuUseCase {
	return &MenuUseCase{categories: categories, items: items, clock: clock}
}

// ListCategories todas las categorías con sus ítems, ordenadas por order.
func (uc *MenuUseCase) ListCategories(ctx context.Context) ([]dto.MenuCategoryResponse, error) {
	return uc.tree(ctx, false)
}

// Public cardápio público: solo categorías e ítems activos.
func (uc *MenuUseCase) Public(ctx context.Context) ([]dto.MenuCategoryResponse, error) {
	return uc.tree(ctx, true)
}

func (uc *MenuUseCase) tree(ctx context.Context, activeOnly bool) ([]dto.MenuCategoryResponse, error) {
	cats, err := uc.categories.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	items, err := uc.items.List(ctx, "", activeOnly)
	if err != nil {
		return nil, err
	}
	byCategory := make(map[string][]dto.MenuItemResponse, len(cats))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], toMenuItemResponse(it))
	}
	out := make([]dto.MenuCategoryResponse, 0, len(cats))
	for _, c := range cats {
		r := toCategoryResponse(c)
		r.Items = byCategory[c.ID]
		if r.Items == nil {
			r.Items = []dto.MenuItemResponse{}
		}
		out = append(out, r)
	}
	return out, nil
}

// GetCategory una categoría con sus ítems.
func (uc *MenuUseCase) GetCategory(ctx context.Context, id string) (*dto.MenuCategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCategoryNotFound
	}
	items, err := uc.items.List(ctx, id, false)
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	out.Items = make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out.Items = append(out.Items, toMenuItemResponse(it))
	}
	return &out, nil
}

func (uc *MenuUseCase) CreateCategory(ctx context.Context, in dto.CreateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	now := uc.clock.Now()
	c := &entity.MenuCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Icon:        in.Icon,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, categoryErr(err)
	}
	out := toCategoryResponse(c)
	return &out, nil
}

func (uc *MenuUseCase) UpdateCategory(ctx context.Context, id string, in dto.UpdateMenuCategoryRequest) (*dto.MenuCategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.DisplayName != nil {
		c.DisplayName = *in.DisplayName
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.Icon != nil {
		c.Icon = in.Icon
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, categoryErr(err)
	}
	out := toCategoryResponse(c)
	return &out, nil
}

// DeleteCategory elimina la categoría y sus ítems.
func (uc *MenuUseCase) DeleteCategory(ctx context.Context, id string) error {
	return categoryErr(uc.categories.Delete(ctx, id))
}

// ListItems ítems, opcionalmente de una categoría.
func (uc *MenuUseCase) ListItems(ctx context.Context, q dto.MenuItemListQuery) ([]dto.MenuItemResponse, error) {
	list, err := uc.items.List(ctx, q.CategoryID, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toMenuItemResponse(it))
	}
	return out, nil
}

func (uc *MenuUseCase) GetItem(ctx context.Context, id string) (*dto.MenuItemResponse, error) {
	it, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	out := toMenuItemResponse(it)
	return &out, nil
}

// CreateItem crea un ítem; la categoría debe existir.
func (uc *MenuUseCase) CreateItem(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if err := uc.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	it := &entity.MenuItem{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Active:      boolOr(in.Active, true),
		Featured:    boolOr(in.Featured, false),
		Popular:     boolOr(in.Popular, false),
		Spicy:       boolOr(in.Spicy, false),
		Vegetarian:  boolOr(in.Vegetarian, false),
		NewItem:     boolOr(in.NewItem, false),
		ImageURL:    emptyToNil(in.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Order != nil {
		it.Order = *in.Order
	}
	if err := uc.items.Create(ctx, it); err != nil {
		return nil, err
	}
	out := toMenuItemResponse(it)
	return &out, nil
}

func (uc *MenuUseCase) UpdateItem(ctx context.Context, id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	it, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrMenuItemNotFound
	}
	if in.CategoryID != nil && *in.CategoryID != it.CategoryID {
		if err := uc.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		it.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Description != nil {
		it.Description = in.Description
	}
	if in.Price != nil {
		it.Price = *in.Price
	}
	it.Active = boolOr(in.Active, it.Active)
	it.Featured = boolOr(in.Featured, it.Featured)
	it.Popular = boolOr(in.Popular, it.Popular)
	it.Spicy = boolOr(in.Spicy, it.Spicy)
	it.Vegetarian = boolOr(in.Vegetarian, it.Vegetarian)
	it.NewItem = boolOr(in.NewItem, it.NewItem)
	if in.ImageURL != nil {
		it.ImageURL = emptyToNil(in.ImageURL)
	}
	if in.Order != nil {
		it.Order = *in.Order
	}
	it.UpdatedAt = uc.clock.Now()
	if err := uc.items.Update(ctx, it); err != nil {
		return nil, notFound(err, domain.ErrMenuItemNotFound)
	}
	out := toMenuItemResponse(it)
	return &out, nil
}

func (uc *MenuUseCase) DeleteItem(ctx context.Context, id string) error {
	return notFound(uc.items.Delete(ctx, id), domain.ErrMenuItemNotFound)
}

// Counts cantidad de categorías e ítems; lo usa el health check.
func (uc *MenuUseCase) Counts(ctx context.Context) (categories, items int, err error) {
	if categories, err = uc.categories.Count(ctx); err != nil {
		return 0, 0, err
	}
	if items, err = uc.items.Count(ctx); err != nil {
		return 0, 0, err
	}
	return categories, items, nil
}

func (uc *MenuUseCase) ensureCategory(ctx context.Context, id string) error {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func categoryErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicate):
		return domain.ErrCategoryNameTaken
	default:
		return notFound(err, domain.ErrCategoryNotFound)
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
