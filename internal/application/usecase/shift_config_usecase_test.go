package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/testutil"
)

func TestShiftConfig_DefaultsYUpdate(t *testing.T) {
	s := testutil.NewStore()
	uc := usecase.NewShiftConfigUseCase(s.ShiftConfigs(), fixedClock(t))
	ctx := context.Background()

	require.NoError(t, uc.EnsureDefaults(ctx))
	require.NoError(t, uc.EnsureDefaults(ctx))
	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(usecase.DefaultShiftConfigs))
	assert.Equal(t, "dinner_weekday_value", list[0].Name)

	out, err := uc.Update(ctx, dto.UpdateShiftConfigRequest{Configs: []dto.ShiftConfigValue{{Name: "lunch_value", Value: dec("55.5")}}})
	require.NoError(t, err)
	for _, c := range out {
		if c.Name == "lunch_value" {
			assertDec(t, "55.5", c.Value)
		}
	}

	_, err = uc.Update(ctx, dto.UpdateShiftConfigRequest{Configs: []dto.ShiftConfigValue{{Name: "nope", Value: dec("1")}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	s := testutil.NewStore()
	menu := usecase.NewMenuUseCase(s.MenuCategories(), s.MenuItems(), fixedClock(t))

	out, err := usecase.NewHealthUseCase(pinger{}, menu, fixedClock(t)).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, "2024-03-15T18:00:00Z", out.Timestamp)

	_, err = usecase.NewHealthUseCase(pinger{err: errors.New("down")}, menu, fixedClock(t)).Check(context.Background())
	assert.Error(t, err)
}
