package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

// idParam parses the numeric {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid id")
	}
	return id, nil
}

// maxNotesLen caps free-form notes payloads.
const maxNotesLen = 10000

type changedResponse struct {
	Changed int64 `json:"changed"`
}

type createdResponse struct {
	ID int64 `json:"id"`
}
