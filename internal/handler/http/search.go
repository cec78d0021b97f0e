package http

import (
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// search answers GET /api/search?name=&type=&panel=. An empty panel searches
// every panel.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	filter := models.SearchFilter{
		Name: query.Get("name"),
		Type: models.ParseFileTypeFilter(query.Get("type")),
	}
	if panel := query.Get("panel"); panel != "" {
		parsed, err := models.ParsePanel(panel)
		if err != nil {
			writeError(w, err)
			return
		}
		filter.Panel = parsed
	}

	result, err := h.services.SearchService.Search(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.search").Msg("search failed")
		writeError(w, err)
		return
	}

	records := result.Records
	if records == nil {
		records = []models.FileRecord{}
	}

	utils.WriteJSON(w, models.SearchResponse{
		Records:   records,
		Length:    len(records),
		Cached:    result.Cached,
		ElapsedMS: result.Elapsed.Milliseconds(),
	}, http.StatusOK)
}
