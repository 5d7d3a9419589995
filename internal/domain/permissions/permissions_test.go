package permissions_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/permissions"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestCanEditDatedRecord_ManagerVentanaDeDosDias(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, loc)

	casos := []struct {
		nombre    string
		fecha     time.Time
		permitido bool
	}{
		{"hoy", time.Date(2024, 3, 10, 23, 0, 0, 0, loc), true},
		{"ayer", time.Date(2024, 3, 9, 0, 0, 0, 0, loc), true},
		{"hace dos días", time.Date(2024, 3, 8, 12, 0, 0, 0, loc), true},
		{"hace tres días", time.Date(2024, 3, 7, 23, 59, 0, 0, loc), false},
		{"hace un mes", time.Date(2024, 2, 10, 12, 0, 0, 0, loc), false},
		{"futuro", time.Date(2024, 3, 15, 12, 0, 0, 0, loc), true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			d := permissions.CanEditDatedRecord("MANAGER", c.fecha, now, loc)
			assert.Equal(t, c.permitido, d.Allowed)
			if !c.permitido {
				assert.Contains(t, d.Reason, c.fecha.Format("02/01/2006"), "el motivo debe nombrar la fecha")
			} else {
				assert.Empty(t, d.Reason)
			}
		})
	}
}

func TestCanEditDatedRecord_AdminSinRestriccion(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	d := permissions.CanEditDatedRecord("ADMIN", now.AddDate(-1, 0, 0), now, time.UTC)
	assert.True(t, d.Allowed)
	assert.NoError(t, d.Err())
}

func TestCanCreateDatedRecord_RolDesconocidoDenegado(t *testing.T) {
	now := time.Now()
	d := permissions.CanCreateDatedRecord("COZINHEIRO", now, now, time.UTC)
	assert.False(t, d.Allowed)
}

func TestCanCreateDatedRecord_MensajeNombraFecha(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	d := permissions.CanCreateDatedRecord("MANAGER", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), now, time.UTC)
	require.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "01/03/2024")

	err := d.Err()
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	var pe *domain.PermissionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, d.Reason, pe.Reason)
}

func TestCanDeleteDatedRecord_SoloAdmin(t *testing.T) {
	assert.True(t, permissions.CanDeleteDatedRecord("ADMIN").Allowed)
	assert.False(t, permissions.CanDeleteDatedRecord("MANAGER").Allowed)
	assert.False(t, permissions.CanDeleteDatedRecord("").Allowed)
}

func TestCanAccessTimeEntries(t *testing.T) {
	assert.True(t, permissions.CanAccessTimeEntries("ADMIN").Allowed)
	assert.True(t, permissions.CanAccessTimeEntries("MANAGER").Allowed)
	for _, r := range []string{"", "admin", "WAITER", "manager"} {
		assert.False(t, permissions.CanAccessTimeEntries(r).Allowed, "rol %q no debe acceder", r)
	}
}

// En São Paulo 2018-11-04 empezó el horario de verano: ese día tiene 23 horas.
func TestDaysBetween_CambioDeHorario(t *testing.T) {
	loc := saoPaulo(t)
	record := time.Date(2018, 11, 2, 12, 0, 0, 0, loc)
	now := time.Date(2018, 11, 4, 1, 30, 0, 0, loc)
	assert.Equal(t, 2, permissions.DaysBetween(record, now, loc))
	assert.True(t, permissions.CanEditDatedRecord("MANAGER", record, now, loc).Allowed)
}

func TestDaysBetween_UsaZonaDelNegocio(t *testing.T) {
	loc := saoPaulo(t)
	// 02:00 UTC del día 10 sigue siendo el día 9 en São Paulo (UTC-3).
	now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	record := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, permissions.DaysBetween(record, now, loc))
	assert.Equal(t, 4, permissions.DaysBetween(record, now, time.UTC))
}
