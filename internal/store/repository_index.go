package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

const (
	busyRetries     = 3
	busyRetryBase   = 20 * time.Millisecond
	defaultRootName = "root"
)

// catalogIndexRepository is the SQLite implementation of [CatalogIndex].
type catalogIndexRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCatalogIndexRepository(db *DB, logger *logger.Logger) CatalogIndex {
	return &catalogIndexRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogIndexRepository) GetSubfolders(ctx context.Context, parentID *int64, panel models.Panel) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSubfoldersQuery(parentID, panel)
	if err != nil {
		log.Err(err).Str("func", "catalogIndexRepository.GetSubfolders").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.GetSubfolders").
			Str("panel", string(panel)).
			Msg("failed to query subfolders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		folder, scanErr := scanFolder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "catalogIndexRepository.GetSubfolders").Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		folders = append(folders, folder)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (r *catalogIndexRepository) GetFolder(ctx context.Context, id int64) (models.Folder, error) {
	folder, err := scanFolder(r.db.QueryRowContext(ctx, selectFolderByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, fmt.Errorf("%w: id=%d", ErrFolderNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogIndexRepository.GetFolder").
			Int64("folder_id", id).
			Msg("failed to scan folder row")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

func (r *catalogIndexRepository) CreateFolder(ctx context.Context, name string, parentID *int64, panel models.Panel) (int64, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		name = defaultRootName
	}

	var id int64
	err := r.execWithRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, insertFolder, name, parentID, string(panel))
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.CreateFolder").
			Str("panel", string(panel)).
			Str("name", name).
			Msg("failed to insert folder")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *catalogIndexRepository) AddFile(ctx context.Context, folderID int64, displayName, storagePath string) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.execWithRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, insertFile, folderID, displayName, storagePath, models.Extension(displayName))
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.AddFile").
			Int64("folder_id", folderID).
			Str("path", storagePath).
			Msg("failed to insert file")
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicatePath, storagePath)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *catalogIndexRepository) CountFilesInFolder(ctx context.Context, folderID int64, recursive bool) (int, error) {
	query := countFilesInFolder
	if recursive {
		query = countFilesInFolderRecursive
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, folderID).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogIndexRepository.CountFilesInFolder").
			Int64("folder_id", folderID).
			Bool("recursive", recursive).
			Msg("failed to count files")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *catalogIndexRepository) SearchFilesFast(ctx context.Context, query models.SearchQuery) ([]models.FileRecord, error) {
	sqlQuery, args, err := buildSearchFilesQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryFiles(ctx, "catalogIndexRepository.SearchFilesFast", sqlQuery, args)
}

func (r *catalogIndexRepository) ListChildren(ctx context.Context, folderID int64) ([]models.FileRecord, error) {
	sqlQuery, args, err := buildListChildrenQuery(folderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryFiles(ctx, "catalogIndexRepository.ListChildren", sqlQuery, args)
}

func (r *catalogIndexRepository) DeleteFileByPath(ctx context.Context, storagePath string) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.execWithRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, deleteFileByPath, storagePath)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "catalogIndexRepository.DeleteFileByPath").
			Str("path", storagePath).
			Msg("failed to delete file row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().Str("path", storagePath).Msg("file was not indexed")
	}

	return nil
}

func (r *catalogIndexRepository) queryFiles(ctx context.Context, funcName, query string, args []any) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FileRecord, 0)
	for rows.Next() {
		var (
			rec   models.FileRecord
			panel string
		)
		if err = rows.Scan(
			&rec.ID,
			&rec.FolderID,
			&rec.Filename,
			&rec.Filepath,
			&rec.Extension,
			&rec.CreatedAt,
			&panel,
			&rec.FolderName,
		); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Panel = models.Panel(panel)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// execWithRetry runs fn again while the database reports it is busy.
func (r *catalogIndexRepository) execWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(busyRetries, retry.NewExponential(busyRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var (
		folder   models.Folder
		parentID sql.NullInt64
		panel    string
	)
	if err := row.Scan(&folder.ID, &folder.Name, &parentID, &panel, &folder.CreatedAt); err != nil {
		return models.Folder{}, err
	}
	if parentID.Valid {
		folder.ParentID = &parentID.Int64
	}
	folder.Panel = models.Panel(panel)

	return folder, nil
}
