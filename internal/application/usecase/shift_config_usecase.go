package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/ports"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// DefaultShiftConfigs parámetros creados por el seed si faltan.
var DefaultShiftConfigs = []struct {
	Name        string
	Description string
	Value       decimal.Decimal
}{
	{"lunch_value", "Valor padrão do turno de almoço", decimal.NewFromInt(50)},
	{"dinner_weekday_value", "Valor padrão do jantar (segunda a sexta)", decimal.NewFromInt(60)},
	{"dinner_weekend_value", "Valor padrão do jantar (sábado e domingo)", decimal.NewFromInt(80)},
}

// ShiftConfigUseCase parámetros globales de turnos.
type ShiftConfigUseCase struct {
	repo  repository.ShiftConfigRepository
	clock ports.Clock
}

// NewShiftConfigUseCase construye el caso de uso.
func NewShiftConfigUseCase(repo repository.ShiftConfigRepository, clock ports.Clock) *ShiftConfigUseCase {
	return &ShiftConfigUseCase{repo: repo, clock: clock}
}

// List configuraciones ordenadas por nombre.
func (uc *ShiftConfigUseCase) List(ctx context.Context) ([]dto.ShiftConfigResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShiftConfigResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ShiftConfigResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Value:       c.Value,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return out, nil
}

// Update actualiza los valores por nombre y devuelve la lista completa.
// Un nombre inexistente corta la operación con ErrNotFound.
func (uc *ShiftConfigUseCase) Update(ctx context.Context, in dto.UpdateShiftConfigRequest) ([]dto.ShiftConfigResponse, error) {
	for _, c := range in.Configs {
		if err := uc.repo.UpdateValue(ctx, c.Name, *c.Value); err != nil {
			return nil, err
		}
	}
	return uc.List(ctx)
}

// EnsureDefaults crea las configuraciones por defecto que falten.
func (uc *ShiftConfigUseCase) EnsureDefaults(ctx context.Context) error {
	now := uc.clock.Now()
	for _, d := range DefaultShiftConfigs {
		desc := d.Description
		err := uc.repo.Ensure(ctx, &entity.ShiftConfig{
			ID:          uuid.New().String(),
			Name:        d.Name,
			Description: &desc,
			Value:       d.Value,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
