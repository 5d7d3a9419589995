package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
)

// HealthUseCase verifica la conexión con la base y devuelve conteos del cardápio.
type HealthUseCase struct {
	db    ports.Pinger
	menu  *MenuUseCase
	clock ports.Clock
}

// NewHealthUseCase construye el caso de uso.
func NewHealthUseCase(db ports.Pinger, menu *MenuUseCase, clock ports.Clock) *HealthUseCase {
	return &HealthUseCase{db: db, menu: menu, clock: clock}
}

// Check devuelve el estado; error si la base no responde.
func (uc *HealthUseCase) Check(ctx context.Context) (*dto.HealthResponse, error) {
	if err := uc.db.Ping(ctx); err != nil {
		return nil, err
	}
	categories, items, err := uc.menu.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HealthResponse{
		Status:     "ok",
		Database:   "connected",
		Categories: categories,
		Items:      items,
		Timestamp:  uc.clock.Now().UTC().Format(time.RFC3339),
	}, nil
}
