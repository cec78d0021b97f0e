package models

// SearchResponse is returned by GET /api/search.
type SearchResponse struct {
	Records []FileRecord `json:"records"`

	// Length is the number of records.
	Length int `json:"length"`

	// Cached reports whether the records were served from the search cache.
	Cached bool `json:"cached"`

	// ElapsedMS is the time spent answering the query, in milliseconds.
	ElapsedMS int64 `json:"elapsed_ms"`
}

// ImportFailureResponse is the serializable form of [ImportFailure].
type ImportFailureResponse struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ImportResponse is returned by POST /api/imports.
type ImportResponse struct {
	Total    int                     `json:"total"`
	Imported int                     `json:"imported"`
	Failures []ImportFailureResponse `json:"failures"`
}

// NewImportResponse flattens failure reasons to strings.
func NewImportResponse(result ImportResult) ImportResponse {
	failures := make([]ImportFailureResponse, 0, len(result.Failures))
	for _, f := range result.Failures {
		reason := ""
		if f.Reason != nil {
			reason = f.Reason.Error()
		}
		failures = append(failures, ImportFailureResponse{Path: f.Path, Reason: reason})
	}

	return ImportResponse{
		Total:    result.Total,
		Imported: result.Imported,
		Failures: failures,
	}
}

// ObjectResponse describes a stored object by its opaque name.
type ObjectResponse struct {
	ObjectName   string `json:"object_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}

// CountResponse is returned by GET /api/folders/{id}/count.
type CountResponse struct {
	FolderID  int64 `json:"folder_id"`
	Recursive bool  `json:"recursive"`
	Count     int   `json:"count"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
