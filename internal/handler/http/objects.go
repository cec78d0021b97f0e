package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// Objects are addressed by their opaque on-disk name, never by path.

func (h *Handler) describeObject(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	path, err := h.services.VaultService.ResolvePath(name)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ObjectResponse{
		ObjectName:   name,
		OriginalName: h.services.VaultService.OriginalFilename(path),
		Size:         h.services.VaultService.FileSize(path),
		Path:         path,
	}, http.StatusOK)
}

func (h *Handler) viewObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	path, err := h.services.VaultService.ResolvePath(name)
	if err != nil {
		writeError(w, err)
		return
	}

	handle, err := h.services.ViewService.OpenForView(r.Context(), path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.viewObject").Str("object", name).Msg("error opening object for view")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, handle, http.StatusOK)
}

func (h *Handler) deleteObject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "name")

	path, err := h.services.VaultService.ResolvePath(name)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.services.VaultService.Delete(r.Context(), path); err != nil {
		log.Err(err).Str("func", "*Handler.deleteObject").Str("object", name).Msg("error deleting object")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
