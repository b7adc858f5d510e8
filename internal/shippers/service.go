package shippers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

const shippersTable = "shippers"

type shippersRepository interface {
	Insert(ctx context.Context, statement string, params []any) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Shipper, error)
	List(ctx context.Context) ([]models.Shipper, error)
	Update(ctx context.Context, id int64, columns map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service exposes shipper CRUD semantics with the source-discriminated
// insertion.
type Service interface {
	CreateShipper(ctx context.Context, input Input) (int64, error)
	GetShipper(ctx context.Context, id int64) (*models.Shipper, error)
	ListShippers(ctx context.Context) ([]models.Shipper, error)
	UpdateShipper(ctx context.Context, id int64, input Input) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status bool) (int64, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (int64, error)
	DeleteShipper(ctx context.Context, id int64) (int64, error)
}

// Input carries the flat shipper field set. Exactly one of the BOL and
// Reference groups is persisted, selected by Source; the other group's fields
// are ignored even when populated.
type Input struct {
	AddedBy                string
	Customer               string
	Industry               string
	Commodity              string
	CompanyPhone           string
	Address                string
	State                  string
	Website                string
	Linkedin               string
	EmployeeCount          string
	LogisticsManager       string
	LogisticsManagerPhone  string
	LogisticsManagerEmail  string
	OperationsManager      string
	OperationsManagerPhone string
	OperationsManagerEmail string
	GeneralManager         string
	GeneralManagerPhone    string
	GeneralManagerEmail    string
	GeneralContact         string
	GeneralContactPhone    string
	GeneralContactEmail    string
	Notes                  string
	Source                 string

	Consignee                 string
	BOLIndustry               string
	BOLCommodity              string
	BOLCompanyPhone           string
	BOLAddress                string
	BOLState                  string
	BOLWebsite                string
	BOLLinkedin               string
	BOLEmployeeCount          string
	BOLLogisticsManager       string
	BOLLogisticsManagerPhone  string
	BOLLogisticsManagerEmail  string
	BOLOperationsManager      string
	BOLOperationsManagerPhone string
	BOLOperationsManagerEmail string
	BOLGeneralManager         string
	BOLGeneralManagerPhone    string
	BOLGeneralManagerEmail    string
	BOLGeneralContact         string
	BOLGeneralContactPhone    string
	BOLGeneralContactEmail    string
	BOLNotes                  string

	Reference        string
	ReferencePhone   string
	ReferenceEmail   string
	ReferenceWebsite string

	Status bool
}

type service struct {
	repo shippersRepository
	now  func() time.Time
}

// NewService builds a shipper service backed by the provided repository.
func NewService(repo shippersRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipper repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) CreateShipper(ctx context.Context, input Input) (int64, error) {
	source, err := enums.ParseShipperSource(input.Source)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid source")
	}
	if strings.TrimSpace(input.Customer) == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "customer is required")
	}

	group := baseGroup(input, s.now())
	switch source {
	case enums.ShipperSourceBOL:
		group = group.append(bolGroup(input))
	case enums.ShipperSourceReference:
		group = group.append(referenceGroup(input))
	}

	statement, params, err := buildInsert(shippersTable, group)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, statement, params)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipper")
	}
	return id, nil
}

func (s *service) GetShipper(ctx context.Context, id int64) (*models.Shipper, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipper not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup shipper")
	}
	return row, nil
}

func (s *service) ListShippers(ctx context.Context) ([]models.Shipper, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shippers")
	}
	return rows, nil
}

// UpdateShipper rewrites every stored column, including both optional groups.
// The group not selected by Source is written back as empty so a source flip
// cannot leave stale values behind.
func (s *service) UpdateShipper(ctx context.Context, id int64, input Input) (int64, error) {
	source, err := enums.ParseShipperSource(input.Source)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid source")
	}

	columns := map[string]any{}
	write := func(group fieldGroup) {
		for i, col := range group.columns {
			columns[col] = group.params[i]
		}
	}
	write(baseGroup(input, s.now()))

	blank := Input{}
	switch source {
	case enums.ShipperSourceBOL:
		write(bolGroup(input))
		write(referenceGroup(blank))
	case enums.ShipperSourceReference:
		write(referenceGroup(input))
		write(bolGroup(blank))
	}
	delete(columns, "created_at")

	changed, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipper")
	}
	return changed, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status bool) (int64, error) {
	changed, err := s.repo.Update(ctx, id, map[string]any{"status": status})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipper status")
	}
	return changed, nil
}

func (s *service) UpdateNotes(ctx context.Context, id int64, notes string) (int64, error) {
	changed, err := s.repo.Update(ctx, id, map[string]any{"notes": notes})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipper notes")
	}
	return changed, nil
}

func (s *service) DeleteShipper(ctx context.Context, id int64) (int64, error) {
	changed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shipper")
	}
	return changed, nil
}

func baseGroup(input Input, now time.Time) fieldGroup {
	return fieldGroup{
		columns: []string{
			"added_by", "customer", "industry", "commodity", "company_phone",
			"address", "state", "website", "linkedin", "employee_count",
			"logistics_manager", "logistics_manager_phone", "logistics_manager_email",
			"operations_manager", "operations_manager_phone", "operations_manager_email",
			"general_manager", "general_manager_phone", "general_manager_email",
			"general_contact", "general_contact_phone", "general_contact_email",
			"notes", "source", "status", "created_at", "updated_at",
		},
		params: []any{
			input.AddedBy, input.Customer, input.Industry, input.Commodity, input.CompanyPhone,
			input.Address, input.State, input.Website, input.Linkedin, input.EmployeeCount,
			input.LogisticsManager, input.LogisticsManagerPhone, input.LogisticsManagerEmail,
			input.OperationsManager, input.OperationsManagerPhone, input.OperationsManagerEmail,
			input.GeneralManager, input.GeneralManagerPhone, input.GeneralManagerEmail,
			input.GeneralContact, input.GeneralContactPhone, input.GeneralContactEmail,
			input.Notes, input.Source, input.Status, now, now,
		},
	}
}

func bolGroup(input Input) fieldGroup {
	return fieldGroup{
		columns: []string{
			"consignee", "bol_industry", "bol_commodity", "bol_company_phone",
			"bol_address", "bol_state", "bol_website", "bol_linkedin", "bol_employee_count",
			"bol_logistics_manager", "bol_logistics_manager_phone", "bol_logistics_manager_email",
			"bol_operations_manager", "bol_operations_manager_phone", "bol_operations_manager_email",
			"bol_general_manager", "bol_general_manager_phone", "bol_general_manager_email",
			"bol_general_contact", "bol_general_contact_phone", "bol_general_contact_email",
			"bol_notes",
		},
		params: []any{
			input.Consignee, input.BOLIndustry, input.BOLCommodity, input.BOLCompanyPhone,
			input.BOLAddress, input.BOLState, input.BOLWebsite, input.BOLLinkedin, input.BOLEmployeeCount,
			input.BOLLogisticsManager, input.BOLLogisticsManagerPhone, input.BOLLogisticsManagerEmail,
			input.BOLOperationsManager, input.BOLOperationsManagerPhone, input.BOLOperationsManagerEmail,
			input.BOLGeneralManager, input.BOLGeneralManagerPhone, input.BOLGeneralManagerEmail,
			input.BOLGeneralContact, input.BOLGeneralContactPhone, input.BOLGeneralContactEmail,
			input.BOLNotes,
		},
	}
}

func referenceGroup(input Input) fieldGroup {
	return fieldGroup{
		columns: []string{"reference", "reference_phone", "reference_email", "reference_website"},
		params:  []any{input.Reference, input.ReferencePhone, input.ReferenceEmail, input.ReferenceWebsite},
	}
}
