package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// importDocuments runs an import job to completion and returns its result.
// Per-file failures are part of a 200 response. A started job is not
// cancelled by a client disconnect.
func (h *Handler) importDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.importDocuments").Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}
	if len(req.Sources) == 0 {
		writeError(w, ErrNoSources)
		return
	}

	panel, err := models.ParsePanel(req.Panel)
	if err != nil {
		writeError(w, err)
		return
	}
	policy, err := models.ParseImportPolicy(req.Policy)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.services.ImportService.Import(context.WithoutCancel(r.Context()), models.ImportJob{
		Sources:        req.Sources,
		Panel:          panel,
		TargetFolderID: req.FolderID,
		Policy:         policy,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.importDocuments").Msg("import failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NewImportResponse(result), http.StatusOK)
}
