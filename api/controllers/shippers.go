package controllers

import (
	"net/http"

	"github.com/royalstarlog/freightdesk-backend/api/responses"
	"github.com/royalstarlog/freightdesk-backend/api/validators"
	"github.com/royalstarlog/freightdesk-backend/internal/shippers"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
)

type shipperRequest struct {
	AddedBy                string `json:"added_by"`
	Customer               string `json:"customer" validate:"required"`
	Industry               string `json:"industry"`
	Commodity              string `json:"commodity"`
	CompanyPhone           string `json:"company_phone"`
	Address                string `json:"address"`
	State                  string `json:"state"`
	Website                string `json:"website"`
	Linkedin               string `json:"linkedin"`
	EmployeeCount          string `json:"employee_count"`
	LogisticsManager       string `json:"logistics_manager"`
	LogisticsManagerPhone  string `json:"logistics_manager_phone"`
	LogisticsManagerEmail  string `json:"logistics_manager_email"`
	OperationsManager      string `json:"operations_manager"`
	OperationsManagerPhone string `json:"operations_manager_phone"`
	OperationsManagerEmail string `json:"operations_manager_email"`
	GeneralManager         string `json:"general_manager"`
	GeneralManagerPhone    string `json:"general_manager_phone"`
	GeneralManagerEmail    string `json:"general_manager_email"`
	GeneralContact         string `json:"general_contact"`
	GeneralContactPhone    string `json:"general_contact_phone"`
	GeneralContactEmail    string `json:"general_contact_email"`
	Notes                  string `json:"notes"`
	Source                 string `json:"source" validate:"required,oneof=BOL Reference"`

	Consignee                 string `json:"consignee"`
	BOLIndustry               string `json:"bol_industry"`
	BOLCommodity              string `json:"bol_commodity"`
	BOLCompanyPhone           string `json:"bol_company_phone"`
	BOLAddress                string `json:"bol_address"`
	BOLState                  string `json:"bol_state"`
	BOLWebsite                string `json:"bol_website"`
	BOLLinkedin               string `json:"bol_linkedin"`
	BOLEmployeeCount          string `json:"bol_employee_count"`
	BOLLogisticsManager       string `json:"bol_logistics_manager"`
	BOLLogisticsManagerPhone  string `json:"bol_logistics_manager_phone"`
	BOLLogisticsManagerEmail  string `json:"bol_logistics_manager_email"`
	BOLOperationsManager      string `json:"bol_operations_manager"`
	BOLOperationsManagerPhone string `json:"bol_operations_manager_phone"`
	BOLOperationsManagerEmail string `json:"bol_operations_manager_email"`
	BOLGeneralManager         string `json:"bol_general_manager"`
	BOLGeneralManagerPhone    string `json:"bol_general_manager_phone"`
	BOLGeneralManagerEmail    string `json:"bol_general_manager_email"`
	BOLGeneralContact         string `json:"bol_general_contact"`
	BOLGeneralContactPhone    string `json:"bol_general_contact_phone"`
	BOLGeneralContactEmail    string `json:"bol_general_contact_email"`
	BOLNotes                  string `json:"bol_notes"`

	Reference        string `json:"reference"`
	ReferencePhone   string `json:"reference_phone"`
	ReferenceEmail   string `json:"reference_email"`
	ReferenceWebsite string `json:"reference_website"`

	Status bool `json:"status"`
}

func (r shipperRequest) toInput() shippers.Input {
	return shippers.Input{
		AddedBy:                r.AddedBy,
		Customer:               r.Customer,
		Industry:               r.Industry,
		Commodity:              r.Commodity,
		CompanyPhone:           r.CompanyPhone,
		Address:                r.Address,
		State:                  r.State,
		Website:                r.Website,
		Linkedin:               r.Linkedin,
		EmployeeCount:          r.EmployeeCount,
		LogisticsManager:       r.LogisticsManager,
		LogisticsManagerPhone:  r.LogisticsManagerPhone,
		LogisticsManagerEmail:  r.LogisticsManagerEmail,
		OperationsManager:      r.OperationsManager,
		OperationsManagerPhone: r.OperationsManagerPhone,
		OperationsManagerEmail: r.OperationsManagerEmail,
		GeneralManager:         r.GeneralManager,
		GeneralManagerPhone:    r.GeneralManagerPhone,
		GeneralManagerEmail:    r.GeneralManagerEmail,
		GeneralContact:         r.GeneralContact,
		GeneralContactPhone:    r.GeneralContactPhone,
		GeneralContactEmail:    r.GeneralContactEmail,
		Notes:                  r.Notes,
		Source:                 r.Source,

		Consignee:                 r.Consignee,
		BOLIndustry:               r.BOLIndustry,
		BOLCommodity:              r.BOLCommodity,
		BOLCompanyPhone:           r.BOLCompanyPhone,
		BOLAddress:                r.BOLAddress,
		BOLState:                  r.BOLState,
		BOLWebsite:                r.BOLWebsite,
		BOLLinkedin:               r.BOLLinkedin,
		BOLEmployeeCount:          r.BOLEmployeeCount,
		BOLLogisticsManager:       r.BOLLogisticsManager,
		BOLLogisticsManagerPhone:  r.BOLLogisticsManagerPhone,
		BOLLogisticsManagerEmail:  r.BOLLogisticsManagerEmail,
		BOLOperationsManager:      r.BOLOperationsManager,
		BOLOperationsManagerPhone: r.BOLOperationsManagerPhone,
		BOLOperationsManagerEmail: r.BOLOperationsManagerEmail,
		BOLGeneralManager:         r.BOLGeneralManager,
		BOLGeneralManagerPhone:    r.BOLGeneralManagerPhone,
		BOLGeneralManagerEmail:    r.BOLGeneralManagerEmail,
		BOLGeneralContact:         r.BOLGeneralContact,
		BOLGeneralContactPhone:    r.BOLGeneralContactPhone,
		BOLGeneralContactEmail:    r.BOLGeneralContactEmail,
		BOLNotes:                  r.BOLNotes,

		Reference:        r.Reference,
		ReferencePhone:   r.ReferencePhone,
		ReferenceEmail:   r.ReferenceEmail,
		ReferenceWebsite: r.ReferenceWebsite,

		Status: r.Status,
	}
}

// ShipperCreate handles the source-discriminated shipper insertion.
func ShipperCreate(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipper service unavailable"))
			return
		}

		var payload shipperRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.CreateShipper(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, createdResponse{ID: id})
	}
}

// ShipperGet fetches one shipper by id.
func ShipperGet(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetShipper(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

// ShipperList returns every shipper.
func ShipperList(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListShippers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// ShipperUpdate rewrites the full shipper record.
func ShipperUpdate(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shipperRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdateShipper(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

type shipperStatusRequest struct {
	Status bool `json:"status"`
}

// ShipperUpdateStatus flips only the prospect status flag.
func ShipperUpdateStatus(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shipperStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdateStatus(r.Context(), id, payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

type shipperNotesRequest struct {
	Notes string `json:"notes"`
}

// ShipperUpdateNotes changes only the free-form notes.
func ShipperUpdateNotes(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shipperNotesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdateNotes(r.Context(), id, validators.SanitizeString(payload.Notes, maxNotesLen))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

// ShipperDelete removes a shipper.
func ShipperDelete(svc shippers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.DeleteShipper(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}
