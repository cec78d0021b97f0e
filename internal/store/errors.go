package store

import "errors"

// Sentinel errors returned by the vault stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when the metadata catalog has no record
	// for the requested object.
	ErrRecordNotFound = errors.New("metadata record not found")

	// ErrObjectNotFound is returned when a sealed object is missing from
	// the vault directory.
	ErrObjectNotFound = errors.New("sealed object not found")

	// ErrCatalogWrite is returned when the metadata catalog cannot be
	// persisted. The in-memory catalog is rolled back to its previous state.
	ErrCatalogWrite = errors.New("failed to write metadata catalog")

	// ErrCatalogMalformed is returned by [MetadataCatalog.Load] when the
	// catalog file exists but cannot be decoded. The catalog continues with
	// an empty mapping.
	ErrCatalogMalformed = errors.New("metadata catalog is malformed")

	// ErrFolderNotFound is returned when a catalog index folder id does not
	// exist.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrDuplicatePath is returned when a storage path is registered twice
	// in the catalog index.
	ErrDuplicatePath = errors.New("storage path already indexed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
