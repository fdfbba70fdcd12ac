package repository

import (
	"context"
	"strings"

	"internhub/internal/database"
	"internhub/internal/domain/file"
	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

const fileColumns = `id, owner_id, type, filename, content_type, size_bytes, storage_key, created_at`

var fileSort = sortColumns{
	columns: map[string]string{
		"created_at": "created_at",
		"filename":   "filename",
		"size":       "size_bytes",
		"id":         "id",
	},
	idColumn: "id",
	def:      page.Sort{Field: "created_at", Direction: page.Desc},
}

type PostgresFileRepository struct {
	db database.DB
}

var _ file.Repository = (*PostgresFileRepository)(nil)

func NewPostgresFileRepository(db database.DB) *PostgresFileRepository {
	return &PostgresFileRepository{db: db}
}

func (r *PostgresFileRepository) Create(ctx context.Context, f file.StoredFile) (file.StoredFile, error) {
	const op = "create file"
	if err := validateFile(op, f); err != nil {
		return file.StoredFile{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO files (owner_id, type, filename, content_type, size_bytes, storage_key)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+fileColumns,
		f.OwnerID, string(f.Type), f.FileName, f.ContentType, f.Size, f.StorageKey,
	)
	created, err := scanFile(row)
	if err != nil {
		return file.StoredFile{}, translate(op, err)
	}
	return created, nil
}

func (r *PostgresFileRepository) FindByID(ctx context.Context, id uuid.UUID) (file.StoredFile, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+fileColumns+` FROM files WHERE id = $1`, id)
	return findOne("find file", row, scanFile)
}

func (r *PostgresFileRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return existsQuery(ctx, r.db, "file exists", `SELECT EXISTS(SELECT 1 FROM files WHERE id = $1)`, id)
}

func (r *PostgresFileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, fileType file.Type, req page.Request) (page.Page[file.StoredFile], error) {
	const op = "find files by owner"
	filter := `WHERE owner_id = $1`
	args := []any{ownerID}
	if fileType != "" {
		if !fileType.Valid() {
			return page.Page[file.StoredFile]{}, validationError(op, "unknown file type "+string(fileType), nil)
		}
		filter += ` AND type = $2`
		args = append(args, string(fileType))
	}
	return pageQuery[file.StoredFile]{
		op:     op,
		count:  `SELECT COUNT(1) FROM files`,
		list:   `SELECT ` + fileColumns + ` FROM files`,
		filter: filter,
		args:   args,
		order:  fileSort,
		scan:   scanFile,
		req:    req,
	}.run(ctx, r.db)
}

func validateFile(op string, f file.StoredFile) error {
	if f.OwnerID == uuid.Nil {
		return &Error{Kind: ErrReferentialIntegrity, Op: op, Message: "owner is required"}
	}
	if !f.Type.Valid() {
		return validationError(op, "unknown file type "+string(f.Type), nil)
	}
	if strings.TrimSpace(f.FileName) == "" {
		return validationError(op, "file name is required", nil)
	}
	if strings.TrimSpace(f.ContentType) == "" {
		return validationError(op, "content type is required", nil)
	}
	if f.Size < 0 {
		return validationError(op, "file size must not be negative", nil)
	}
	if strings.TrimSpace(f.StorageKey) == "" {
		return validationError(op, "storage key is required", nil)
	}
	return nil
}

func scanFile(row database.Row) (file.StoredFile, error) {
	var f file.StoredFile
	var typ string
	if err := row.Scan(&f.ID, &f.OwnerID, &typ, &f.FileName, &f.ContentType, &f.Size, &f.StorageKey, &f.CreatedAt); err != nil {
		return file.StoredFile{}, err
	}
	f.Type = file.Type(typ)
	return f, nil
}
