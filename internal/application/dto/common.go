package dto

// PageRequest paginación 1-based para listados de seguridad.
type PageRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage(limit int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = limit
	}
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcula el total de páginas.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// ErrorResponse cuerpo de error HTTP. Details lista problemas por campo en errores de validación.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// MonthQuery filtro ?month=YYYY-MM.
type MonthQuery struct {
	Month string `query:"month" validate:"omitempty,yearmonth"`
}

// EmployeeRef vista mínima del funcionario embebida en otras respuestas.
type EmployeeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// DeletedResponse confirmación de borrado.
type DeletedResponse struct {
	Message string `json:"message"`
}
