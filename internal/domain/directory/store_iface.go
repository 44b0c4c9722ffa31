package directory

import "context"

// StoreAPI is the persistence surface the service runs on. Lookup
// methods return nil when no row matches.
type StoreAPI interface {
	UnitByID(ctx context.Context, unitID string) (*Unit, error)
	UnitByName(ctx context.Context, name string) (*Unit, error)
	InsertUnit(ctx context.Context, name string) (Unit, error)
	UpdateUnitName(ctx context.Context, unitID, name string) error
	DeleteUnit(ctx context.Context, unitID string) error
	ListUnits(ctx context.Context) ([]Unit, error)
	ListUnitsPage(ctx context.Context, limit, offset int) ([]Unit, error)
	CountUnits(ctx context.Context) (int, error)

	EmployeeByID(ctx context.Context, employeeID string) (*Employee, error)
	EmployeeCountByUnit(ctx context.Context, unitID string) (int, error)
	InsertEmployee(ctx context.Context, name, nip, unitID string) (Employee, error)
	UpdateEmployee(ctx context.Context, employeeID, name, nip, unitID string) error
	DeleteEmployeeCascade(ctx context.Context, employeeID string) (CascadeResult, error)
	ListEmployees(ctx context.Context, unitID string, limit, offset int) ([]Employee, error)
	CountEmployees(ctx context.Context, unitID string) (int, error)
	ListEmployeesByUnit(ctx context.Context, unitID string) ([]Employee, error)
}
