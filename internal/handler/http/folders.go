package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	panel, err := models.ParsePanel(chi.URLParam(r, "panel"))
	if err != nil {
		writeError(w, err)
		return
	}

	var parentID *int64
	if raw := r.URL.Query().Get("parent_id"); raw != "" {
		id, parseErr := parseFolderID(raw)
		if parseErr != nil {
			writeError(w, parseErr)
			return
		}
		parentID = &id
	}

	folders, err := h.services.VaultService.ListFolders(r.Context(), panel, parentID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFolders").Msg("error listing folders")
		writeError(w, err)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	utils.WriteJSON(w, folders, http.StatusOK)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	panel, err := models.ParsePanel(chi.URLParam(r, "panel"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req models.CreateFolderRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	folder, err := h.services.VaultService.CreateFolder(r.Context(), req.Name, req.ParentID, panel)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createFolder").Msg("error creating folder")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, folder, http.StatusCreated)
}

func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folderID, err := parseFolderID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	files, err := h.services.VaultService.ListFiles(r.Context(), folderID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFiles").Int64("folder_id", folderID).Msg("error listing files")
		writeError(w, err)
		return
	}
	if files == nil {
		files = []models.FileRecord{}
	}

	utils.WriteJSON(w, files, http.StatusOK)
}

func (h *Handler) countFiles(w http.ResponseWriter, r *http.Request) {
	folderID, err := parseFolderID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	recursive, _ := strconv.ParseBool(r.URL.Query().Get("recursive"))

	count, err := h.services.VaultService.CountFiles(r.Context(), folderID, recursive)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.countFiles").Msg("error counting files")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.CountResponse{FolderID: folderID, Recursive: recursive, Count: count}, http.StatusOK)
}

func parseFolderID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidFolderID
	}
	return id, nil
}
