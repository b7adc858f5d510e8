package controllers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/royalstarlog/freightdesk-backend/api/responses"
	"github.com/royalstarlog/freightdesk-backend/api/validators"
	"github.com/royalstarlog/freightdesk-backend/internal/rateconfirmations"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
)

type rateConRequest struct {
	LoadNo  string `json:"load_no" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// RateConSave renders and upserts the confirmation for a load. Saving twice
// for the same load number replaces the content in place.
func RateConSave(svc rateconfirmations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rate confirmation service unavailable"))
			return
		}

		var payload rateConRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := svc.SaveRateConfirmation(r.Context(), payload.LoadNo, payload.Content)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

type rateConDocumentRequest struct {
	LoadNo   string `json:"load_no" validate:"required"`
	Document string `json:"document" validate:"required"`
}

// RateConSaveDocument stores a client-rendered PDF, sent base64-encoded, for
// the load without touching the content row.
func RateConSaveDocument(svc rateconfirmations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload rateConDocumentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		raw := payload.Document
		if idx := strings.Index(raw, ";base64,"); idx >= 0 {
			raw = raw[idx+len(";base64,"):]
		}
		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "document must be base64-encoded"))
			return
		}

		name, err := svc.SaveDocument(r.Context(), payload.LoadNo, data)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"file": name})
	}
}

// RateConGet fetches the stored content for a load number.
func RateConGet(svc rateconfirmations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadNo := chi.URLParam(r, "loadNo")
		row, err := svc.GetRateConfirmation(r.Context(), loadNo)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, row)
	}
}

// RateConList returns every stored confirmation.
func RateConList(svc rateconfirmations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListRateConfirmations(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// RateConView serves the generated document bytes for a load number.
func RateConView(svc rateconfirmations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadNo := chi.URLParam(r, "loadNo")
		path, err := svc.DocumentPath(r.Context(), loadNo)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		http.ServeFile(w, r, path)
	}
}

// RateConDelete removes the confirmation row and its generated document.
func RateConDelete(svc rateconfirmations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadNo := chi.URLParam(r, "loadNo")
		changed, err := svc.DeleteRateConfirmation(r.Context(), loadNo)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, changedResponse{Changed: changed})
	}
}
