package entity

import "time"

// Acciones de auditoría registradas fuera de los handlers CRUD.
const (
	AuditAccessDenied = "ACCESS_DENIED"
	AuditLogin        = "LOGIN"
	AuditLogout       = "LOGOUT"
)

// Acciones de auditoría de escrituras CRUD.
const (
	AuditCreateEmployee     = "CREATE_EMPLOYEE"
	AuditUpdateEmployee     = "UPDATE_EMPLOYEE"
	AuditDeleteEmployee     = "DELETE_EMPLOYEE"
	AuditCreateAdvance      = "CREATE_ADVANCE"
	AuditUpdateAdvance      = "UPDATE_ADVANCE"
	AuditDeleteAdvance      = "DELETE_ADVANCE"
	AuditGeneratePayroll    = "GENERATE_PAYROLL"
	AuditUpdatePayroll      = "UPDATE_PAYROLL"
	AuditCreateExpense      = "CREATE_EXPENSE"
	AuditUpdateExpense      = "UPDATE_EXPENSE"
	AuditDeleteExpense      = "DELETE_EXPENSE"
	AuditCreateRevenue      = "CREATE_REVENUE"
	AuditUpdateRevenue      = "UPDATE_REVENUE"
	AuditDeleteRevenue      = "DELETE_REVENUE"
	AuditCreateMenuCategory = "CREATE_MENU_CATEGORY"
	AuditUpdateMenuCategory = "UPDATE_MENU_CATEGORY"
	AuditDeleteMenuCategory = "DELETE_MENU_CATEGORY"
	AuditCreateMenuItem     = "CREATE_MENU_ITEM"
	AuditUpdateMenuItem     = "UPDATE_MENU_ITEM"
	AuditDeleteMenuItem     = "DELETE_MENU_ITEM"
	AuditCreateUser         = "CREATE_USER"
	AuditUpdateUser         = "UPDATE_USER"
	AuditDeleteUser         = "DELETE_USER"
	AuditCreateTimeEntry    = "CREATE_TIME_ENTRY"
	AuditUpdateTimeEntry    = "UPDATE_TIME_ENTRY"
	AuditDeleteTimeEntry    = "DELETE_TIME_ENTRY"
	AuditUpdateShiftConfig  = "UPDATE_SHIFT_CONFIG"
	AuditClosePayrollPeriod = "CLOSE_PAYROLL_PERIOD"
	AuditSyncSales          = "SYNC_SALES"
)

// LoginAttempt intento de login (solo inserción).
type LoginAttempt struct {
	ID        string
	Email     string
	IPAddress string
	Success   bool
	UserAgent *string
	CreatedAt time.Time
}

// AuditLog registro de una acción administrativa y su autor (solo inserción).
type AuditLog struct {
	ID         string
	UserID     *string
	UserEmail  *string
	Action     string
	Resource   string
	ResourceID *string
	Details    *string // JSON
	IPAddress  *string
	UserAgent  *string
	CreatedAt  time.Time
}
