package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-vault/models"
)

const (
	selectFolderByID = `SELECT id, name, parent_id, panel, created_at
		FROM folders
		WHERE id = ?;`

	insertFolder = `INSERT INTO folders (name, parent_id, panel)
		VALUES (?, ?, ?);`

	insertFile = `INSERT INTO files (folder_id, filename, filepath, extension)
		VALUES (?, ?, ?, ?);`

	countFilesInFolder = `SELECT COUNT(*)
		FROM files
		WHERE folder_id = ?;`

	countFilesInFolderRecursive = `WITH RECURSIVE subtree(id) AS (
			SELECT id FROM folders WHERE id = ?
			UNION ALL
			SELECT f.id FROM folders f JOIN subtree s ON f.parent_id = s.id
		)
		SELECT COUNT(*)
		FROM files
		WHERE folder_id IN (SELECT id FROM subtree);`

	deleteFileByPath = `DELETE FROM files
		WHERE filepath = ?;`
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var fileColumns = []string{
	"f.id",
	"f.folder_id",
	"f.filename",
	"f.filepath",
	"f.extension",
	"f.created_at",
	"d.panel",
	"d.name",
}

// buildSelectSubfoldersQuery lists folders directly under parentID (panel
// roots when parentID is nil) of one panel, oldest first.
func buildSelectSubfoldersQuery(parentID *int64, panel models.Panel) (string, []any, error) {
	where := sq.Eq{"panel": string(panel)}
	if parentID == nil {
		where["parent_id"] = nil
	} else {
		where["parent_id"] = *parentID
	}

	return sqlite.
		Select("id", "name", "parent_id", "panel", "created_at").
		From("folders").
		Where(where).
		OrderBy("id").
		ToSql()
}

// buildSearchFilesQuery builds the search over file names. An empty filename
// matches everything, extensions and panel narrow the result when set.
func buildSearchFilesQuery(query models.SearchQuery) (string, []any, error) {
	builder := sqlite.
		Select(fileColumns...).
		From("files f").
		Join("folders d ON d.id = f.folder_id")

	if query.Filename != "" {
		builder = builder.Where(sq.Like{"f.filename": "%" + query.Filename + "%"})
	}
	if len(query.Extensions) > 0 {
		builder = builder.Where(sq.Eq{"f.extension": query.Extensions})
	}
	if query.Panel != "" {
		builder = builder.Where(sq.Eq{"d.panel": string(query.Panel)})
	}
	if query.Limit > 0 {
		builder = builder.Limit(query.Limit)
	}

	return builder.OrderBy("f.created_at DESC", "f.id DESC").ToSql()
}

// buildListChildrenQuery lists the files of one folder by name.
func buildListChildrenQuery(folderID int64) (string, []any, error) {
	return sqlite.
		Select(fileColumns...).
		From("files f").
		Join("folders d ON d.id = f.folder_id").
		Where(sq.Eq{"f.folder_id": folderID}).
		OrderBy("f.filename", "f.id").
		ToSql()
}
