package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var (
	_ repository.MenuCategoryRepository = (*MenuCategoryRepo)(nil)
	_ repository.MenuItemRepository     = (*MenuItemRepo)(nil)
)

// MenuCategoryRepo implementación del puerto MenuCategoryRepository.
type MenuCategoryRepo struct {
	db Querier
}

// NewMenuCategoryRepository construye el repositorio de categorías del cardápio.
func NewMenuCategoryRepository(db Querier) *MenuCategoryRepo {
	return &MenuCategoryRepo{db: db}
}

const categoryColumns = `id, name, display_name, description, icon, sort_order, active, created_at, updated_at`

func scanCategory(row scanner) (*entity.MenuCategory, error) {
	var c entity.MenuCategory
	err := row.Scan(&c.ID, &c.Name, &c.DisplayName, &c.Description, &c.Icon, &c.Order, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuCategoryRepo) Create(ctx context.Context, c *entity.MenuCategory) error {
	query := `INSERT INTO menu_categories (` + categoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.DisplayName, c.Description, c.Icon, c.Order, c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu category: %w", err)
	}
	return nil
}

func (r *MenuCategoryRepo) GetByID(ctx context.Context, id string) (*entity.MenuCategory, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM menu_categories WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu category: %w", err)
	}
	return c, nil
}

func (r *MenuCategoryRepo) List(ctx context.Context, activeOnly bool) ([]*entity.MenuCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM menu_categories
		WHERE ($1::boolean = FALSE OR active)
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list menu categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.MenuCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *MenuCategoryRepo) Update(ctx context.Context, c *entity.MenuCategory) error {
	query := `
		UPDATE menu_categories SET name = $2, display_name = $3, description = $4, icon = $5,
			sort_order = $6, active = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, c.ID, c.Name, c.DisplayName, c.Description, c.Icon, c.Order, c.Active, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update menu category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete los ítems de la categoría se borran en cascada.
func (r *MenuCategoryRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "menu_categories", id)
}

func (r *MenuCategoryRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM menu_categories`)
}

// MenuItemRepo implementación del puerto MenuItemRepository.
type MenuItemRepo struct {
	db Querier
}

// NewMenuItemRepository construye el repositorio de ítems del cardápio.
func NewMenuItemRepository(db Querier) *MenuItemRepo {
	return &MenuItemRepo{db: db}
}

const itemColumns = `id, category_id, name, description, price, active, featured, popular, spicy,
	vegetarian, new_item, image_url, sort_order, created_at, updated_at`

func scanItem(row scanner) (*entity.MenuItem, error) {
	var i entity.MenuItem
	err := row.Scan(&i.ID, &i.CategoryID, &i.Name, &i.Description, &i.Price, &i.Active, &i.Featured, &i.Popular,
		&i.Spicy, &i.Vegetarian, &i.NewItem, &i.ImageURL, &i.Order, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *MenuItemRepo) Create(ctx context.Context, i *entity.MenuItem) error {
	query := `INSERT INTO menu_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query, i.ID, i.CategoryID, i.Name, i.Description, i.Price, i.Active, i.Featured,
		i.Popular, i.Spicy, i.Vegetarian, i.NewItem, i.ImageURL, i.Order, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func (r *MenuItemRepo) GetByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	i, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return i, nil
}

func (r *MenuItemRepo) List(ctx context.Context, categoryID string, activeOnly bool) ([]*entity.MenuItem, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items
		WHERE ($1 = '' OR category_id = $1)
		  AND ($2::boolean = FALSE OR active)
		ORDER BY sort_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query, categoryID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var list []*entity.MenuItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func (r *MenuItemRepo) Update(ctx context.Context, i *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET category_id = $2, name = $3, description = $4, price = $5, active = $6,
			featured = $7, popular = $8, spicy = $9, vegetarian = $10, new_item = $11, image_url = $12,
			sort_order = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, i.ID, i.CategoryID, i.Name, i.Description, i.Price, i.Active, i.Featured,
		i.Popular, i.Spicy, i.Vegetarian, i.NewItem, i.ImageURL, i.Order, i.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MenuItemRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "menu_items", id)
}

func (r *MenuItemRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM menu_items`)
}
