package directory

import (
	"context"
	"strings"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/identity"
	"sipeka/internal/platform/querier"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) CreateUnit(ctx context.Context, caller identity.User, name string) (Unit, error) {
	if caller.Role != identity.RoleAdmin {
		return Unit{}, apperr.Auth("hanya admin yang dapat menambahkan bidang baru")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Unit{}, apperr.Validation("nama bidang wajib diisi")
	}

	existing, err := s.store.UnitByName(ctx, name)
	if err != nil {
		return Unit{}, err
	}
	if existing != nil {
		return Unit{}, apperr.Conflict("bidang dengan nama tersebut sudah ada")
	}

	unit, err := s.store.InsertUnit(ctx, name)
	if querier.IsUniqueViolation(err) {
		return Unit{}, apperr.Conflict("bidang dengan nama tersebut sudah ada")
	}
	return unit, err
}

func (s *Service) RenameUnit(ctx context.Context, caller identity.User, unitID, name string) error {
	if caller.Role != identity.RoleAdmin {
		return apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("nama bidang wajib diisi")
	}

	unit, err := s.store.UnitByID(ctx, unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return apperr.NotFound("bidang tidak ditemukan")
	}

	existing, err := s.store.UnitByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != unitID {
		return apperr.Conflict("bidang dengan nama tersebut sudah ada")
	}

	return s.store.UpdateUnitName(ctx, unitID, name)
}

func (s *Service) DeleteUnit(ctx context.Context, caller identity.User, unitID string) error {
	if caller.Role != identity.RoleAdmin {
		return apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}

	unit, err := s.store.UnitByID(ctx, unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return apperr.NotFound("bidang tidak ditemukan")
	}

	count, err := s.store.EmployeeCountByUnit(ctx, unitID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("tidak bisa menghapus bidang karena masih ada pegawai di dalamnya")
	}

	err = s.store.DeleteUnit(ctx, unitID)
	if querier.IsForeignKeyViolation(err) {
		return apperr.Conflict("bidang masih dirujuk oleh data penilaian")
	}
	return err
}

func (s *Service) ListUnits(ctx context.Context, caller identity.User) ([]Unit, error) {
	return s.store.ListUnits(ctx)
}

func (s *Service) ListUnitsPage(ctx context.Context, caller identity.User, limit, offset int) ([]Unit, int, error) {
	units, err := s.store.ListUnitsPage(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountUnits(ctx)
	if err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

func (s *Service) CreateEmployee(ctx context.Context, caller identity.User, name, nip, unitID string) (Employee, error) {
	if caller.Role != identity.RoleAdmin {
		return Employee{}, apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}
	if err := validateEmployeeInput(name, nip); err != nil {
		return Employee{}, err
	}
	if err := s.checkUnit(ctx, unitID); err != nil {
		return Employee{}, err
	}
	return s.store.InsertEmployee(ctx, strings.TrimSpace(name), strings.TrimSpace(nip), unitID)
}

func (s *Service) UpdateEmployee(ctx context.Context, caller identity.User, employeeID, name, nip, unitID string) error {
	if caller.Role != identity.RoleAdmin {
		return apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}
	if err := validateEmployeeInput(name, nip); err != nil {
		return err
	}

	employee, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperr.NotFound("pegawai tidak ditemukan")
	}
	if err := s.checkUnit(ctx, unitID); err != nil {
		return err
	}

	return s.store.UpdateEmployee(ctx, employeeID, strings.TrimSpace(name), strings.TrimSpace(nip), unitID)
}

func (s *Service) DeleteEmployee(ctx context.Context, caller identity.User, employeeID string) (CascadeResult, error) {
	if caller.Role != identity.RoleAdmin {
		return CascadeResult{}, apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}

	employee, err := s.store.EmployeeByID(ctx, employeeID)
	if err != nil {
		return CascadeResult{}, err
	}
	if employee == nil {
		return CascadeResult{}, apperr.NotFound("pegawai tidak ditemukan")
	}

	return s.store.DeleteEmployeeCascade(ctx, employeeID)
}

// ListEmployees is the admin browse view; other roles see nothing.
func (s *Service) ListEmployees(ctx context.Context, caller identity.User, unitID string, limit, offset int) ([]Employee, int, error) {
	if caller.Role != identity.RoleAdmin {
		return []Employee{}, 0, nil
	}
	employees, err := s.store.ListEmployees(ctx, unitID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountEmployees(ctx, unitID)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListMyEmployees feeds the nomination screen: admins see everyone,
// unit leaders see their own unit, everyone else sees nothing.
func (s *Service) ListMyEmployees(ctx context.Context, caller identity.User) ([]Employee, error) {
	switch {
	case caller.Role == identity.RoleAdmin:
		return s.store.ListEmployeesByUnit(ctx, "")
	case caller.Role == identity.RoleUnitLeader && caller.UnitID != "":
		return s.store.ListEmployeesByUnit(ctx, caller.UnitID)
	default:
		return []Employee{}, nil
	}
}

func validateEmployeeInput(name, nip string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validation("nama pegawai wajib diisi")
	}
	if strings.TrimSpace(nip) == "" {
		return apperr.Validation("NIP pegawai wajib diisi")
	}
	return nil
}

func (s *Service) checkUnit(ctx context.Context, unitID string) error {
	if strings.TrimSpace(unitID) == "" {
		return apperr.Validation("bidang wajib diisi")
	}
	unit, err := s.store.UnitByID(ctx, unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return apperr.NotFound("bidang tidak ditemukan")
	}
	return nil
}
