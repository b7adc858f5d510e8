package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/royalstarlog/freightdesk-backend/api/responses"
	"github.com/royalstarlog/freightdesk-backend/api/validators"
	"github.com/royalstarlog/freightdesk-backend/internal/carriers"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
)

type carrierForm struct {
	CarrierName string `validate:"required"`
	MCNumber    string `validate:"required"`
}

func carrierInputFromForm(r *http.Request) carriers.Input {
	return carriers.Input{
		CarrierName:    r.FormValue("carrier_name"),
		CarrierAddress: r.FormValue("carrier_address"),
		CarrierPhone:   r.FormValue("carrier_phone"),
		CarrierFax:     r.FormValue("carrier_fax"),
		CarrierEmail:   r.FormValue("carrier_email"),
		CarrierWebsite: r.FormValue("carrier_website"),
		MCNumber:       r.FormValue("mc_number"),
		DOTNumber:      r.FormValue("dot_number"),
		FEIN:           r.FormValue("fein"),

		InsuranceAgentContact:  r.FormValue("insurance_agent_contact"),
		InsurancePolicyNumbers: r.FormValue("insurance_policy_numbers"),
		InsuranceLimits:        r.FormValue("insurance_limits"),
		SafetyRating:           r.FormValue("safety_rating"),
		CSAScores:              r.FormValue("csa_scores"),
		AccidentHistory:        r.FormValue("accident_history"),
		DriverInfo:             r.FormValue("driver_info"),
		BankingInfo:            r.FormValue("banking_info"),
		FactoringCompany:       r.FormValue("factoring_company"),
		CreditReferences:       r.FormValue("credit_references"),
		EquipmentTypes:         r.FormValue("equipment_types"),
		GeoAreas:               r.FormValue("geo_areas"),
		Specializations:        r.FormValue("specializations"),
		FleetSize:              r.FormValue("fleet_size"),
		CarrierReferences:      r.FormValue("carrier_references"),
		YearsInBusiness:        r.FormValue("years_in_business"),
		Experience:             r.FormValue("experience"),
	}
}

// CarrierCreate handles the multipart carrier onboarding form. Documents
// arrive as file parts named after their role.
func CarrierCreate(svc carriers.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "carrier service unavailable"))
			return
		}

		if err := r.ParseMultipartForm(int64(maxUploadMB) << 20); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				r.MultipartForm.RemoveAll()
			}
		}()

		input := carrierInputFromForm(r)
		if err := validators.Struct(carrierForm{CarrierName: input.CarrierName, MCNumber: input.MCNumber}); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		uploads := []carriers.Upload{}
		closers := []func(){}
		defer func() {
			for _, close := range closers {
				close()
			}
		}()

		for _, role := range enums.FileRoles() {
			headers := r.MultipartForm.File[role.String()]
			if !role.MultiFile() && len(headers) > 1 {
				headers = headers[:1]
			}
			for _, header := range headers {
				file, err := header.Open()
				if err != nil {
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unreadable upload"))
					return
				}
				closers = append(closers, func() { file.Close() })
				uploads = append(uploads, carriers.Upload{
					Role:         role,
					OriginalName: header.Filename,
					Content:      file,
				})
			}
		}

		created, err := svc.CreateCarrier(r.Context(), input, uploads)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, createdResponse{ID: created.ID})
	}
}

// CarrierGet fetches one carrier with its stored document links.
func CarrierGet(svc carriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetCarrier(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

// CarrierList returns every carrier.
func CarrierList(svc carriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListCarriers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

type carrierUpdateRequest struct {
	CarrierName    string `json:"carrier_name" validate:"required"`
	CarrierAddress string `json:"carrier_address"`
	CarrierPhone   string `json:"carrier_phone"`
	CarrierFax     string `json:"carrier_fax"`
	CarrierEmail   string `json:"carrier_email" validate:"omitempty,email"`
	CarrierWebsite string `json:"carrier_website"`
	DOTNumber      string `json:"dot_number"`
	FEIN           string `json:"fein"`

	InsuranceAgentContact  string `json:"insurance_agent_contact"`
	InsurancePolicyNumbers string `json:"insurance_policy_numbers"`
	InsuranceLimits        string `json:"insurance_limits"`
	SafetyRating           string `json:"safety_rating"`
	CSAScores              string `json:"csa_scores"`
	AccidentHistory        string `json:"accident_history"`
	DriverInfo             string `json:"driver_info"`
	BankingInfo            string `json:"banking_info"`
	FactoringCompany       string `json:"factoring_company"`
	CreditReferences       string `json:"credit_references"`
	EquipmentTypes         string `json:"equipment_types"`
	GeoAreas               string `json:"geo_areas"`
	Specializations        string `json:"specializations"`
	FleetSize              string `json:"fleet_size"`
	CarrierReferences      string `json:"carrier_references"`
	YearsInBusiness        string `json:"years_in_business"`
	Experience             string `json:"experience"`
}

// CarrierUpdate rewrites the contact and compliance columns.
func CarrierUpdate(svc carriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload carrierUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdateCarrier(r.Context(), id, carriers.Input{
			CarrierName:            payload.CarrierName,
			CarrierAddress:         payload.CarrierAddress,
			CarrierPhone:           payload.CarrierPhone,
			CarrierFax:             payload.CarrierFax,
			CarrierEmail:           payload.CarrierEmail,
			CarrierWebsite:         payload.CarrierWebsite,
			DOTNumber:              payload.DOTNumber,
			FEIN:                   payload.FEIN,
			InsuranceAgentContact:  payload.InsuranceAgentContact,
			InsurancePolicyNumbers: payload.InsurancePolicyNumbers,
			InsuranceLimits:        payload.InsuranceLimits,
			SafetyRating:           payload.SafetyRating,
			CSAScores:              payload.CSAScores,
			AccidentHistory:        payload.AccidentHistory,
			DriverInfo:             payload.DriverInfo,
			BankingInfo:            payload.BankingInfo,
			FactoringCompany:       payload.FactoringCompany,
			CreditReferences:       payload.CreditReferences,
			EquipmentTypes:         payload.EquipmentTypes,
			GeoAreas:               payload.GeoAreas,
			Specializations:        payload.Specializations,
			FleetSize:              payload.FleetSize,
			CarrierReferences:      payload.CarrierReferences,
			YearsInBusiness:        payload.YearsInBusiness,
			Experience:             payload.Experience,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

// CarrierDelete removes a carrier row and its stored documents.
func CarrierDelete(svc carriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.DeleteCarrier(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

// CarrierFiles lists the stored documents for an MC number.
func CarrierFiles(svc carriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mcNumber := chi.URLParam(r, "mcNumber")
		links, err := svc.ListFiles(r.Context(), mcNumber)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, links)
	}
}
