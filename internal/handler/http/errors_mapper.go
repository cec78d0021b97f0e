package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidFolderID:            http.StatusBadRequest,
	ErrNoSources:                  http.StatusBadRequest,
	models.ErrUnknownPanel:        http.StatusBadRequest,
	models.ErrUnknownImportPolicy: http.StatusBadRequest,
	service.ErrInvalidFolderName:  http.StatusBadRequest,

	store.ErrRecordNotFound:   http.StatusNotFound,
	store.ErrObjectNotFound:   http.StatusNotFound,
	store.ErrFolderNotFound:   http.StatusNotFound,
	service.ErrSourceNotFound: http.StatusNotFound,

	crypto.ErrCrypto: http.StatusUnprocessableEntity,

	service.ErrSearchInProgress: http.StatusConflict,
	store.ErrDuplicatePath:      http.StatusConflict,

	store.ErrCatalogWrite:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Server side failures
// are reported with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteJSONError(w, message, status)
}
