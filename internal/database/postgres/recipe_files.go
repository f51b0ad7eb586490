package postgres

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/craftbench/internal/domain"
)

// RecipeFileRepository keeps recipe file documents in the recipe_files table.
type RecipeFileRepository struct {
	db *pgxpool.Pool
}

// NewRecipeFileRepository creates a new RecipeFileRepository
func NewRecipeFileRepository(db *pgxpool.Pool) *RecipeFileRepository {
	return &RecipeFileRepository{db: db}
}

// EnsureFolder accepts any non-empty folder. Folders exist implicitly as row prefixes.
func (r *RecipeFileRepository) EnsureFolder(ctx context.Context, folder string) error {
	if strings.TrimSpace(folder) == "" {
		return fmt.Errorf("%w: empty folder", domain.ErrInvalidInput)
	}
	return nil
}

// List returns the file names in folder, sorted.
func (r *RecipeFileRepository) List(ctx context.Context, folder string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT file_name FROM recipe_files WHERE folder = $1 ORDER BY file_name`, folder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipeFiles, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRecipeFiles, err)
	}
	return names, nil
}

// Read returns the stored document.
func (r *RecipeFileRepository) Read(ctx context.Context, folder, name string) ([]byte, error) {
	var content string
	err := r.db.QueryRow(ctx,
		`SELECT content::text FROM recipe_files WHERE folder = $1 AND file_name = $2`,
		folder, name).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path.Join(folder, name))
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadRecipeFile, err)
	}
	return []byte(content), nil
}

// Write upserts the document and returns its logical path.
func (r *RecipeFileRepository) Write(ctx context.Context, folder, name string, data []byte) (string, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO recipe_files (folder, file_name, content, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (folder, file_name)
		DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()`,
		folder, name, string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgFailedToWriteRecipeFile, err)
	}
	return path.Join(folder, name), nil
}
