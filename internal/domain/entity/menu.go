package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory categoría del cardápio. Name es un slug en minúsculas (ej. "bebidas").
type MenuCategory struct {
	ID          string
	Name        string
	DisplayName string
	Description *string
	Icon        *string
	Order       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MenuItem plato o bebida del cardápio.
type MenuItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description *string
	Price       decimal.Decimal
	Active      bool
	Featured    bool
	Popular     bool
	Spicy       bool
	Vegetarian  bool
	NewItem     bool
	ImageURL    *string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
