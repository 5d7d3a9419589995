package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// EmployeeFilter filtros de listado de funcionarios.
type EmployeeFilter struct {
	ActiveOnly bool
}

// EmployeeListItem funcionario con el conteo de vales (listado).
type EmployeeListItem struct {
	Employee      *entity.Employee
	AdvancesCount int
}

// EmployeeCounts conteos de registros hijos para la vista de detalle.
type EmployeeCounts struct {
	Advances    int
	TimeEntries int
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	List(ctx context.Context, f EmployeeFilter) ([]EmployeeListItem, error)
	Counts(ctx context.Context, id string) (EmployeeCounts, error)
	CountActive(ctx context.Context) (int, error)
	// Update y Delete devuelven domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
