package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// MenuCategoryRepository puerto de persistencia para MenuCategory.
type MenuCategoryRepository interface {
	// Create devuelve domain.ErrDuplicate si el name ya existe.
	Create(ctx context.Context, c *entity.MenuCategory) error
	GetByID(ctx context.Context, id string) (*entity.MenuCategory, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.MenuCategory, error)
	Update(ctx context.Context, c *entity.MenuCategory) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// MenuItemRepository puerto de persistencia para MenuItem.
type MenuItemRepository interface {
	Create(ctx context.Context, i *entity.MenuItem) error
	GetByID(ctx context.Context, id string) (*entity.MenuItem, error)
	// List filtra por categoría si categoryID no está vacío; orden (order, name).
	List(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.MenuItem, error)
	Update(ctx context.Context, i *entity.MenuItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
