// Package permissions contiene las reglas puras de "quién puede tocar qué registro fechado".
// Ninguna función hace I/O; el instante actual y la zona horaria llegan como parámetros.
package permissions

import (
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ManagerWindowDays días hacia atrás (inclusive) que un MANAGER puede crear o editar.
const ManagerWindowDays = 2

// Decision resultado de una regla. Reason solo se completa cuando Allowed es false.
type Decision struct {
	Allowed bool
	Reason  string
}

// Err convierte una negativa en *domain.PermissionError; nil si está permitido.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &domain.PermissionError{Reason: d.Reason}
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// CanEditDatedRecord ADMIN sin restricción; MANAGER solo registros de hoy hasta hace 2 días.
func CanEditDatedRecord(role string, recordDate, now time.Time, loc *time.Location) Decision {
	return withinManagerWindow(role, recordDate, now, loc, "editar")
}

// CanCreateDatedRecord misma ventana que la edición, aplicada a registros retroactivos.
func CanCreateDatedRecord(role string, recordDate, now time.Time, loc *time.Location) Decision {
	return withinManagerWindow(role, recordDate, now, loc, "crear")
}

// CanDeleteDatedRecord solo ADMIN.
func CanDeleteDatedRecord(role string) Decision {
	if role == entity.RoleAdmin {
		return allow()
	}
	return deny("solo administradores pueden eliminar registros")
}

// CanAccessTimeEntries ADMIN o MANAGER; cualquier otro rol queda fuera.
func CanAccessTimeEntries(role string) Decision {
	switch role {
	case entity.RoleAdmin, entity.RoleManager:
		return allow()
	default:
		return deny("sin permiso para acceder a los registros de ponto")
	}
}

func withinManagerWindow(role string, recordDate, now time.Time, loc *time.Location, verb string) Decision {
	switch role {
	case entity.RoleAdmin:
		return allow()
	case entity.RoleManager:
		diff := DaysBetween(recordDate, now, loc)
		if diff <= ManagerWindowDays {
			return allow()
		}
		return deny(fmt.Sprintf(
			"los gerentes solo pueden %s registros de los últimos %d días; este registro es del %s",
			verb, ManagerWindowDays, recordDate.In(zone(loc)).Format("02/01/2006"),
		))
	default:
		return deny("sin permiso")
	}
}

// DaysBetween cuenta días de calendario desde record hasta now en la zona loc.
// Negativo si record está en el futuro. Las fechas se reconstruyen en UTC para que
// un cambio de horario de verano no altere la diferencia.
func DaysBetween(record, now time.Time, loc *time.Location) int {
	loc = zone(loc)
	ry, rm, rd := record.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	r := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(n.Sub(r).Hours() / 24)
}

func zone(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
