// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/internal/utils"
	"github.com/MKhiriev/go-material-keeper/models"
)

// submitMaterial handles POST /api/materials.
//
// The body is a [models.MaterialForm]; numbers may be sent as JSON strings or
// number literals. On success the stored record and its report are returned
// with 201 Created.
func (h *Handler) submitMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.submitMaterial").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var form models.MaterialForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Err(err).Str("func", "*Handler.submitMaterial").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	submission, err := h.services.MaterialService.Submit(ctx, userID, form)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitMaterial").Msg("submission failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, submission, http.StatusCreated)
}

// getHistory handles GET /api/materials.
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getHistory").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	records, err := h.services.MaterialService.History(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getHistory").Msg("history was not loaded")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{Records: records, Length: len(records)}, http.StatusOK)
}
