package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/royalstarlog/freightdesk-backend/api/responses"
	"github.com/royalstarlog/freightdesk-backend/api/validators"
	"github.com/royalstarlog/freightdesk-backend/internal/loads"
	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	dbtypes "github.com/royalstarlog/freightdesk-backend/pkg/db/types"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
)

type stopPayload struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`
}

type loadRequest struct {
	LoadNo       string        `json:"load_no" validate:"required"`
	Customer     string        `json:"customer" validate:"required"`
	PickUpCount  int           `json:"pick_up_count" validate:"min=0"`
	DropOffCount int           `json:"drop_off_count" validate:"min=0"`
	LoadStatus   string        `json:"load_status" validate:"required,oneof=open active closed"`
	PickUps      []stopPayload `json:"pick_ups" validate:"dive"`
	DropOffs     []stopPayload `json:"drop_offs" validate:"dive"`
	Notes        string        `json:"notes"`
}

func (r loadRequest) toInput() loads.Input {
	return loads.Input{
		LoadNo:       r.LoadNo,
		Customer:     r.Customer,
		PickUpCount:  r.PickUpCount,
		DropOffCount: r.DropOffCount,
		LoadStatus:   r.LoadStatus,
		PickUps:      toStops(r.PickUps),
		DropOffs:     toStops(r.DropOffs),
		Notes:        r.Notes,
	}
}

func toStops(payloads []stopPayload) []dbtypes.Stop {
	stops := make([]dbtypes.Stop, len(payloads))
	for i, p := range payloads {
		stops[i] = dbtypes.Stop{
			Address: p.Address,
			City:    p.City,
			State:   p.State,
			Zip:     p.Zip,
			Date:    p.Date,
			Time:    p.Time,
			Notes:   p.Notes,
		}
	}
	return stops
}

type loadResponse struct {
	ID           int64            `json:"id"`
	LoadNo       string           `json:"load_no"`
	Customer     string           `json:"customer"`
	PickUpCount  int              `json:"pick_up_count"`
	DropOffCount int              `json:"drop_off_count"`
	LoadStatus   enums.LoadStatus `json:"load_status"`
	PickUps      []dbtypes.Stop   `json:"pick_ups"`
	DropOffs     []dbtypes.Stop   `json:"drop_offs"`
	Notes        string           `json:"notes"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func loadResponseFromModel(m *models.Load) loadResponse {
	pickUps := []dbtypes.Stop(m.PickUps)
	if pickUps == nil {
		pickUps = []dbtypes.Stop{}
	}
	dropOffs := []dbtypes.Stop(m.DropOffs)
	if dropOffs == nil {
		dropOffs = []dbtypes.Stop{}
	}
	return loadResponse{
		ID:           m.ID,
		LoadNo:       m.LoadNo,
		Customer:     m.Customer,
		PickUpCount:  m.PickUpCount,
		DropOffCount: m.DropOffCount,
		LoadStatus:   m.LoadStatus,
		PickUps:      pickUps,
		DropOffs:     dropOffs,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// LoadCreate handles creating a freight load.
func LoadCreate(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "load service unavailable"))
			return
		}

		var payload loadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateLoad(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, createdResponse{ID: created.ID})
	}
}

// LoadList returns every load, or a single load when the load_no query
// parameter is present.
func LoadList(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadNo := strings.TrimSpace(r.URL.Query().Get("load_no")); loadNo != "" {
			row, err := svc.GetLoadByLoadNo(r.Context(), loadNo)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, loadResponseFromModel(row))
			return
		}

		rows, err := svc.ListLoads(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]loadResponse, len(rows))
		for i := range rows {
			out[i] = loadResponseFromModel(&rows[i])
		}
		responses.WriteSuccess(w, out)
	}
}

// LoadGet fetches one load by id.
func LoadGet(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.GetLoad(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, loadResponseFromModel(row))
	}
}

// LoadUpdate rewrites every load column, stops included.
func LoadUpdate(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload loadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdateLoad(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

type loadStatusRequest struct {
	LoadStatus string `json:"load_status" validate:"required,oneof=open active closed"`
}

// LoadUpdateStatus changes only the lifecycle status.
func LoadUpdateStatus(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload loadStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.UpdateStatus(r.Context(), id, payload.LoadStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}

type loadNotesRequest struct {
	Notes string `json:"notes"`
}

// LoadUpdateNotes changes only the free-form notes.
func LoadUpdateNotes(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload loadNotesRequest
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

// LoadDelete removes a load and cleans up its generated document.
func LoadDelete(svc loads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		changed, err := svc.DeleteLoad(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}
