package carriers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db"
	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	dbtypes "github.com/royalstarlog/freightdesk-backend/pkg/db/types"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
)

type carriersRepository interface {
	Create(ctx context.Context, carrier *models.Carrier) (*models.Carrier, error)
	FindByID(ctx context.Context, id int64) (*models.Carrier, error)
	ExistsByMCNumber(ctx context.Context, mcNumber string) (bool, error)
	List(ctx context.Context) ([]models.Carrier, error)
	Update(ctx context.Context, id int64, columns map[string]any) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type fileManager interface {
	Store(mcNumber string, role enums.FileRole, originalName string, src io.Reader) (string, error)
	ListFor(mcNumber string) ([]string, error)
	DeleteFor(mcNumber string) (int, error)
}

// Service exposes carrier CRUD semantics, including the MC-number uniqueness
// invariant and the document lifecycle.
type Service interface {
	CreateCarrier(ctx context.Context, input Input, uploads []Upload) (*models.Carrier, error)
	GetCarrier(ctx context.Context, id int64) (*CarrierWithFiles, error)
	ListCarriers(ctx context.Context) ([]models.Carrier, error)
	UpdateCarrier(ctx context.Context, id int64, input Input) (int64, error)
	DeleteCarrier(ctx context.Context, id int64) (int64, error)
	ListFiles(ctx context.Context, mcNumber string) ([]FileLink, error)
}

// Input holds the mutable carrier fields.
type Input struct {
	CarrierName    string
	CarrierAddress string
	CarrierPhone   string
	CarrierFax     string
	CarrierEmail   string
	CarrierWebsite string
	MCNumber       string
	DOTNumber      string
	FEIN           string

	InsuranceAgentContact  string
	InsurancePolicyNumbers string
	InsuranceLimits        string
	SafetyRating           string
	CSAScores              string
	AccidentHistory        string
	DriverInfo             string
	BankingInfo            string
	FactoringCompany       string
	CreditReferences       string
	EquipmentTypes         string
	GeoAreas               string
	Specializations        string
	FleetSize              string
	CarrierReferences      string
	YearsInBusiness        string
	Experience             string
}

// Upload is one incoming document to attach to the carrier.
type Upload struct {
	Role         enums.FileRole
	OriginalName string
	Content      io.Reader
}

// FileLink points a client at one stored carrier document.
type FileLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CarrierWithFiles is a carrier row joined with its stored document links.
type CarrierWithFiles struct {
	models.Carrier
	Files []FileLink `json:"files"`
}

type service struct {
	repo    carriersRepository
	files   fileManager
	urlBase string
	logg    *logger.Logger
}

// NewService builds a carrier service backed by the provided repository and
// file manager. urlBase prefixes stored filenames when building public links.
func NewService(repo carriersRepository, files fileManager, urlBase string, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("carrier repository required")
	}
	if files == nil {
		return nil, fmt.Errorf("file manager required")
	}
	if urlBase == "" {
		urlBase = "/uploads"
	}
	return &service{
		repo:    repo,
		files:   files,
		urlBase: strings.TrimRight(urlBase, "/"),
		logg:    logg,
	}, nil
}

// CreateCarrier enforces MC-number uniqueness before touching the file area,
// so a rejected duplicate leaves no files behind. The unique index backstops
// the check under concurrent creates.
func (s *service) CreateCarrier(ctx context.Context, input Input, uploads []Upload) (*models.Carrier, error) {
	mc := strings.TrimSpace(input.MCNumber)
	if mc == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mc_number is required")
	}

	exists, err := s.repo.ExistsByMCNumber(ctx, mc)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check mc number")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("carrier with mc number %s already exists", mc))
	}

	carrier := buildCarrier(input, mc)
	for _, upload := range uploads {
		if !upload.Role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown file role %q", upload.Role))
		}
		stored, err := s.files.Store(mc, upload.Role, upload.OriginalName, upload.Content)
		if err != nil {
			return nil, err
		}
		switch upload.Role {
		case enums.FileRoleOperatingAuthority:
			carrier.OperatingAuthority = stored
		case enums.FileRoleInsuranceCertificates:
			carrier.InsuranceCertificates = append(carrier.InsuranceCertificates, stored)
		case enums.FileRoleW9Form:
			carrier.W9Form = stored
		case enums.FileRoleInsuranceCertificate:
			carrier.InsuranceCertificate = stored
		}
	}

	created, err := s.repo.Create(ctx, carrier)
	if err != nil {
		if db.IsUniqueViolation(err, "ux_carriers_mc_number") {
			s.cleanupFiles(ctx, mc)
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, fmt.Sprintf("carrier with mc number %s already exists", mc))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create carrier")
	}
	return created, nil
}

func (s *service) GetCarrier(ctx context.Context, id int64) (*CarrierWithFiles, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carrier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup carrier")
	}

	links, err := s.ListFiles(ctx, row.MCNumber)
	if err != nil {
		return nil, err
	}
	return &CarrierWithFiles{Carrier: *row, Files: links}, nil
}

func (s *service) ListCarriers(ctx context.Context) ([]models.Carrier, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list carriers")
	}
	return rows, nil
}

// UpdateCarrier rewrites the contact and compliance columns. The MC number
// and document columns are immutable through this path.
func (s *service) UpdateCarrier(ctx context.Context, id int64, input Input) (int64, error) {
	changed, err := s.repo.Update(ctx, id, map[string]any{
		"carrier_name":             input.CarrierName,
		"carrier_address":          input.CarrierAddress,
		"carrier_phone":            input.CarrierPhone,
		"carrier_fax":              input.CarrierFax,
		"carrier_email":            input.CarrierEmail,
		"carrier_website":          input.CarrierWebsite,
		"dot_number":               input.DOTNumber,
		"fein":                     input.FEIN,
		"insurance_agent_contact":  input.InsuranceAgentContact,
		"insurance_policy_numbers": input.InsurancePolicyNumbers,
		"insurance_limits":         input.InsuranceLimits,
		"safety_rating":            input.SafetyRating,
		"csa_scores":               input.CSAScores,
		"accident_history":         input.AccidentHistory,
		"driver_info":              input.DriverInfo,
		"banking_info":             input.BankingInfo,
		"factoring_company":        input.FactoringCompany,
		"credit_references":        input.CreditReferences,
		"equipment_types":          input.EquipmentTypes,
		"geo_areas":                input.GeoAreas,
		"specializations":          input.Specializations,
		"fleet_size":               input.FleetSize,
		"carrier_references":       input.CarrierReferences,
		"years_in_business":        input.YearsInBusiness,
		"experience":               input.Experience,
	})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update carrier")
	}
	return changed, nil
}

// DeleteCarrier removes the row and then every associated file. File cleanup
// is best-effort: a failure is logged but does not fail the request, since the
// row is already gone and retrying the request cannot bring it back.
func (s *service) DeleteCarrier(ctx context.Context, id int64) (int64, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "carrier not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup carrier")
	}

	changed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete carrier")
	}

	s.cleanupFiles(ctx, row.MCNumber)
	return changed, nil
}

func (s *service) ListFiles(ctx context.Context, mcNumber string) ([]FileLink, error) {
	names, err := s.files.ListFor(mcNumber)
	if err != nil {
		return nil, err
	}
	links := make([]FileLink, len(names))
	for i, name := range names {
		links[i] = FileLink{Name: name, URL: s.urlBase + "/" + name}
	}
	return links, nil
}

func (s *service) cleanupFiles(ctx context.Context, mcNumber string) {
	if _, err := s.files.DeleteFor(mcNumber); err != nil && s.logg != nil {
		ctx = s.logg.WithMCNumber(ctx, mcNumber)
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "carrier.file_cleanup_failed")
	}
}

func buildCarrier(input Input, mc string) *models.Carrier {
	return &models.Carrier{
		CarrierName:            strings.TrimSpace(input.CarrierName),
		CarrierAddress:         input.CarrierAddress,
		CarrierPhone:           input.CarrierPhone,
		CarrierFax:             input.CarrierFax,
		CarrierEmail:           input.CarrierEmail,
		CarrierWebsite:         input.CarrierWebsite,
		MCNumber:               mc,
		DOTNumber:              input.DOTNumber,
		FEIN:                   input.FEIN,
		InsuranceCertificates:  dbtypes.StringList{},
		InsuranceAgentContact:  input.InsuranceAgentContact,
		InsurancePolicyNumbers: input.InsurancePolicyNumbers,
		InsuranceLimits:        input.InsuranceLimits,
		SafetyRating:           input.SafetyRating,
		CSAScores:              input.CSAScores,
		AccidentHistory:        input.AccidentHistory,
		DriverInfo:             input.DriverInfo,
		BankingInfo:            input.BankingInfo,
		FactoringCompany:       input.FactoringCompany,
		CreditReferences:       input.CreditReferences,
		EquipmentTypes:         input.EquipmentTypes,
		GeoAreas:               input.GeoAreas,
		Specializations:        input.Specializations,
		FleetSize:              input.FleetSize,
		CarrierReferences:      input.CarrierReferences,
		YearsInBusiness:        input.YearsInBusiness,
		Experience:             input.Experience,
	}
}
