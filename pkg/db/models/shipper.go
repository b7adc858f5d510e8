package models

import (
	"time"

	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
)

// Shipper is a flat prospect/customer record. The Source discriminator picks
// exactly one of the two optional field groups: BOL consignee contacts or a
// reference contact. The unselected group's columns stay empty for the row.
type Shipper struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	AddedBy                string              `gorm:"column:added_by"`
	Customer               string              `gorm:"column:customer"`
	Industry               string              `gorm:"column:industry"`
	Commodity              string              `gorm:"column:commodity"`
	CompanyPhone           string              `gorm:"column:company_phone"`
	Address                string              `gorm:"column:address"`
	State                  string              `gorm:"column:state"`
	Website                string              `gorm:"column:website"`
	Linkedin               string              `gorm:"column:linkedin"`
	EmployeeCount          string              `gorm:"column:employee_count"`
	LogisticsManager       string              `gorm:"column:logistics_manager"`
	LogisticsManagerPhone  string              `gorm:"column:logistics_manager_phone"`
	LogisticsManagerEmail  string              `gorm:"column:logistics_manager_email"`
	OperationsManager      string              `gorm:"column:operations_manager"`
	OperationsManagerPhone string              `gorm:"column:operations_manager_phone"`
	OperationsManagerEmail string              `gorm:"column:operations_manager_email"`
	GeneralManager         string              `gorm:"column:general_manager"`
	GeneralManagerPhone    string              `gorm:"column:general_manager_phone"`
	GeneralManagerEmail    string              `gorm:"column:general_manager_email"`
	GeneralContact         string              `gorm:"column:general_contact"`
	GeneralContactPhone    string              `gorm:"column:general_contact_phone"`
	GeneralContactEmail    string              `gorm:"column:general_contact_email"`
	Notes                  string              `gorm:"column:notes"`
	Source                 enums.ShipperSource `gorm:"column:source"`

	// BOL group, populated only when Source == "BOL".
	Consignee                 string `gorm:"column:consignee"`
	BOLIndustry               string `gorm:"column:bol_industry"`
	BOLCommodity              string `gorm:"column:bol_commodity"`
	BOLCompanyPhone           string `gorm:"column:bol_company_phone"`
	BOLAddress                string `gorm:"column:bol_address"`
	BOLState                  string `gorm:"column:bol_state"`
	BOLWebsite                string `gorm:"column:bol_website"`
	BOLLinkedin               string `gorm:"column:bol_linkedin"`
	BOLEmployeeCount          string `gorm:"column:bol_employee_count"`
	BOLLogisticsManager       string `gorm:"column:bol_logistics_manager"`
	BOLLogisticsManagerPhone  string `gorm:"column:bol_logistics_manager_phone"`
	BOLLogisticsManagerEmail  string `gorm:"column:bol_logistics_manager_email"`
	BOLOperationsManager      string `gorm:"column:bol_operations_manager"`
	BOLOperationsManagerPhone string `gorm:"column:bol_operations_manager_phone"`
	BOLOperationsManagerEmail string `gorm:"column:bol_operations_manager_email"`
	BOLGeneralManager         string `gorm:"column:bol_general_manager"`
	BOLGeneralManagerPhone    string `gorm:"column:bol_general_manager_phone"`
	BOLGeneralManagerEmail    string `gorm:"column:bol_general_manager_email"`
	BOLGeneralContact         string `gorm:"column:bol_general_contact"`
	BOLGeneralContactPhone    string `gorm:"column:bol_general_contact_phone"`
	BOLGeneralContactEmail    string `gorm:"column:bol_general_contact_email"`
	BOLNotes                  string `gorm:"column:bol_notes"`

	// Reference group, populated only when Source == "Reference".
	Reference        string `gorm:"column:reference"`
	ReferencePhone   string `gorm:"column:reference_phone"`
	ReferenceEmail   string `gorm:"column:reference_email"`
	ReferenceWebsite string `gorm:"column:reference_website"`

	Status    bool      `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
