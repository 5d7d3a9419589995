package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuCategoryRequest entrada de POST /menu/categories.
type CreateMenuCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=50,slug"`
	DisplayName string  `json:"displayName" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}

// UpdateMenuCategoryRequest entrada de PUT /menu/categories/:id.
type UpdateMenuCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50,slug"`
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon" validate:"omitempty,max=50"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
	Active      *bool   `json:"active"`
}

// MenuCategoryResponse salida de una categoría.
type MenuCategoryResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	DisplayName string             `json:"displayName"`
	Description *string            `json:"description"`
	Icon        *string            `json:"icon"`
	Order       int                `json:"order"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Items       []MenuItemResponse `json:"items,omitempty"`
}

// MenuItemListQuery filtros de GET /menu/items.
type MenuItemListQuery struct {
	CategoryID string `query:"categoryId" validate:"omitempty,max=100"`
}

// CreateMenuItemRequest entrada de POST /menu/items.
type CreateMenuItemRequest struct {
	CategoryID  string           `json:"categoryId" validate:"required,max=100"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Active      *bool            `json:"active"`
	Featured    *bool            `json:"featured"`
	Popular     *bool            `json:"popular"`
	Spicy       *bool            `json:"spicy"`
	Vegetarian  *bool            `json:"vegetarian"`
	NewItem     *bool            `json:"newItem"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,url,max=500"`
	Order       *int             `json:"order" validate:"omitempty,min=0"`
}

// UpdateMenuItemRequest entrada de PUT /menu/items/:id.
type UpdateMenuItemRequest struct {
	CategoryID  *string          `json:"categoryId" validate:"omitempty,min=1,max=100"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Active      *bool            `json:"active"`
	Featured    *bool            `json:"featured"`
	Popular     *bool            `json:"popular"`
	Spicy       *bool            `json:"spicy"`
	Vegetarian  *bool            `json:"vegetarian"`
	NewItem     *bool            `json:"newItem"`
	ImageURL    *string          `json:"imageUrl" validate:"omitempty,url,max=500"`
	Order       *int             `json:"order" validate:"omitempty,min=0"`
}

// MenuItemResponse salida de un ítem del cardápio.
type MenuItemResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"categoryId"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	Featured    bool            `json:"featured"`
	Popular     bool            `json:"popular"`
	Spicy       bool            `json:"spicy"`
	Vegetarian  bool            `json:"vegetarian"`
	NewItem     bool            `json:"newItem"`
	ImageURL    *string         `json:"imageUrl"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
