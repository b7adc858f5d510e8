package models

import (
	"time"

	dbtypes "github.com/royalstarlog/freightdesk-backend/pkg/db/types"
)

// Carrier is a motor carrier keyed externally by its MC number. Document
// columns hold derived filenames; the bytes live in the upload area under the
// MC-number naming convention.
type Carrier struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CarrierName    string `gorm:"column:carrier_name"`
	CarrierAddress string `gorm:"column:carrier_address"`
	CarrierPhone   string `gorm:"column:carrier_phone"`
	CarrierFax     string `gorm:"column:carrier_fax"`
	CarrierEmail   string `gorm:"column:carrier_email"`
	CarrierWebsite string `gorm:"column:carrier_website"`
	MCNumber       string `gorm:"column:mc_number;uniqueIndex:ux_carriers_mc_number"`
	DOTNumber      string `gorm:"column:dot_number"`
	FEIN           string `gorm:"column:fein"`

	OperatingAuthority    string             `gorm:"column:operating_authority"`
	InsuranceCertificates dbtypes.StringList `gorm:"column:insurance_certificates;type:text"`
	W9Form                string             `gorm:"column:w9_form"`
	InsuranceCertificate  string             `gorm:"column:insurance_certificate"`

	InsuranceAgentContact  string `gorm:"column:insurance_agent_contact"`
	InsurancePolicyNumbers string `gorm:"column:insurance_policy_numbers"`
	InsuranceLimits        string `gorm:"column:insurance_limits"`
	SafetyRating           string `gorm:"column:safety_rating"`
	CSAScores              string `gorm:"column:csa_scores"`
	AccidentHistory        string `gorm:"column:accident_history"`
	DriverInfo             string `gorm:"column:driver_info"`
	BankingInfo            string `gorm:"column:banking_info"`
	FactoringCompany       string `gorm:"column:factoring_company"`
	CreditReferences       string `gorm:"column:credit_references"`
	EquipmentTypes         string `gorm:"column:equipment_types"`
	GeoAreas               string `gorm:"column:geo_areas"`
	Specializations        string `gorm:"column:specializations"`
	FleetSize              string `gorm:"column:fleet_size"`
	CarrierReferences      string `gorm:"column:carrier_references"`
	YearsInBusiness        string `gorm:"column:years_in_business"`
	Experience             string `gorm:"column:experience"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
