package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

func toEmployeeRef(r *entity.EmployeeRef) *dto.EmployeeRef {
	if r == nil {
		return nil
	}
	return &dto.EmployeeRef{ID: r.ID, Name: r.Name, Role: r.Role}
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	s := e.Shifts
	return dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Phone:     e.Phone,
		Document:  e.Document,
		HireDate:  e.HireDate,
		Salary:    e.Salary,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		ShiftSettingsResponse: dto.ShiftSettingsResponse{
			WorksLunch:         s.WorksLunch,
			LunchPaymentType:   s.LunchPaymentType,
			LunchValue:         s.LunchValue,
			LunchStartTime:     s.LunchStartTime,
			LunchEndTime:       s.LunchEndTime,
			WorksDinner:        s.WorksDinner,
			DinnerPaymentType:  s.DinnerPaymentType,
			DinnerWeekdayValue: s.DinnerWeekdayValue,
			DinnerWeekendValue: s.DinnerWeekendValue,
			DinnerStartTime:    s.DinnerStartTime,
			DinnerEndTime:      s.DinnerEndTime,
		},
	}
}

func toAdvanceResponse(a *entity.Advance) dto.AdvanceResponse {
	return dto.AdvanceResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Amount:      a.Amount,
		RequestDate: a.RequestDate,
		Status:      a.Status,
		PaymentDate: a.PaymentDate,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Employee:    toEmployeeRef(a.Employee),
	}
}

func toPayrollResponse(e *entity.PayrollEntry) dto.PayrollEntryResponse {
	return dto.PayrollEntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Month:       e.Month,
		BaseSalary:  e.BaseSalary,
		Advances:    e.Advances,
		Bonuses:     e.Bonuses,
		Deductions:  e.Deductions,
		NetSalary:   e.NetSalary,
		Paid:        e.Paid,
		PaymentDate: e.PaymentDate,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Employee:    toEmployeeRef(e.Employee),
	}
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toRevenueResponse(r *entity.Revenue) dto.RevenueResponse {
	return dto.RevenueResponse{
		ID:          r.ID,
		Source:      r.Source,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.MenuCategory) dto.MenuCategoryResponse {
	return dto.MenuCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Description: c.Description,
		Icon:        c.Icon,
		Order:       c.Order,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toMenuItemResponse(i *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          i.ID,
		CategoryID:  i.CategoryID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Active:      i.Active,
		Featured:    i.Featured,
		Popular:     i.Popular,
		Spicy:       i.Spicy,
		Vegetarian:  i.Vegetarian,
		NewItem:     i.NewItem,
		ImageURL:    i.ImageURL,
		Order:       i.Order,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toTimeEntryResponse(t *entity.TimeEntry) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:             t.ID,
		EmployeeID:     t.EmployeeID,
		Date:           t.Date,
		WorkedLunch:    t.WorkedLunch,
		WorkedDinner:   t.WorkedDinner,
		ClockInLunch:   t.ClockInLunch,
		ClockOutLunch:  t.ClockOutLunch,
		ClockInDinner:  t.ClockInDinner,
		ClockOutDinner: t.ClockOutDinner,
		Status:         t.Status,
		Notes:          t.Notes,
		LunchValue:     t.LunchValue,
		DinnerValue:    t.DinnerValue,
		TotalValue:     t.TotalValue,
		CreatedByID:    t.CreatedByID,
		UpdatedByID:    t.UpdatedByID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		Employee:       toEmployeeRef(t.Employee),
	}
}

func toPayrollPeriodResponse(p *entity.PayrollPeriod) dto.PayrollPeriodResponse {
	out := dto.PayrollPeriodResponse{
		ID:          p.ID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		PeriodType:  p.PeriodType,
		TotalAmount: p.TotalAmount,
		CreatedByID: p.CreatedByID,
		CreatedAt:   p.CreatedAt,
		Payments:    make([]dto.PeriodPaymentResponse, 0, len(p.Payments)),
	}
	for _, pay := range p.Payments {
		out.Payments = append(out.Payments, dto.PeriodPaymentResponse{
			ID:           pay.ID,
			EmployeeID:   pay.EmployeeID,
			EmployeeName: pay.EmployeeName,
			DaysWorked:   pay.DaysWorked,
			LunchShifts:  pay.LunchShifts,
			DinnerShifts: pay.DinnerShifts,
			LunchTotal:   pay.LunchTotal,
			DinnerTotal:  pay.DinnerTotal,
			GrossAmount:  pay.GrossAmount,
			Advances:     pay.Advances,
			NetAmount:    pay.NetAmount,
		})
	}
	return out
}

func toSalesOrderResponse(o *entity.SalesOrder) dto.SalesOrderResponse {
	return dto.SalesOrderResponse{
		ID:            o.ID,
		ExternalID:    o.ExternalID,
		Origin:        o.Origin,
		OrderType:     o.OrderType,
		ItemsCount:    o.ItemsCount,
		Amount:        o.Amount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		OpenedAt:      o.OpenedAt,
		ClosedAt:      o.ClosedAt,
		Duration:      o.Duration,
		Unit:          o.Unit,
		TableNumber:   o.TableNumber,
		IsCounter:     o.IsCounter,
		IsDelivery:    o.IsDelivery,
		PaymentMethod: o.PaymentMethod,
		SyncedAt:      o.SyncedAt,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// parseDateField parsea una fecha de entrada y reporta el campo en el error.
func parseDateField(field, value string, loc *time.Location) (time.Time, error) {
	t, err := ledger.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, domain.Invalid(field, "fecha inválida")
	}
	return t, nil
}

// monthPeriod convierte un filtro opcional "YYYY-MM" en período; vacío ⇒ nil.
func monthPeriod(month string, loc *time.Location) (*ledger.Period, error) {
	if strings.TrimSpace(month) == "" {
		return nil, nil
	}
	p, err := ledger.MonthRange(month, loc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// notFound traduce el ErrNotFound genérico de un repo al error con mensaje del recurso.
func notFound(err, specific error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return specific
	}
	return err
}

// optString nil para cadenas vacías.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
