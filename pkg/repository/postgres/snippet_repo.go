package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snipvault/backend/pkg/snippet"
)

// SnippetRepository implements snippet.Repository backed by PostgreSQL (pgx).
type SnippetRepository struct {
	pool *pgxpool.Pool
}

func NewSnippetRepository(pool *pgxpool.Pool) *SnippetRepository {
	return &SnippetRepository{pool: pool}
}

const snippetColumns = `id, author_id, title, description, language, code,
	file_name, file_path, status, created_at, updated_at`

func (r *SnippetRepository) Create(ctx context.Context, s snippet.Snippet) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO snippets (id, author_id, title, description, language, code,
			file_name, file_path, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, s.ID, s.AuthorID, s.Title, s.Description, s.Language, s.Code,
		s.FileName, s.FilePath, string(s.Status), s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *SnippetRepository) GetByID(ctx context.Context, id uuid.UUID) (snippet.Snippet, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+snippetColumns+`
		FROM snippets WHERE id = $1
	`, id)
	return scanSnippet(row)
}

func (r *SnippetRepository) Update(ctx context.Context, s snippet.Snippet) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE snippets
		SET title = $2, description = $3, language = $4, code = $5,
			file_name = $6, file_path = $7, status = $8, updated_at = $9
		WHERE id = $1
	`, s.ID, s.Title, s.Description, s.Language, s.Code,
		s.FileName, s.FilePath, string(s.Status), s.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return snippet.ErrNotFound
	}
	return nil
}

func (r *SnippetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM snippets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return snippet.ErrNotFound
	}
	return nil
}

func (r *SnippetRepository) List(ctx context.Context, f snippet.Filter) ([]snippet.Snippet, error) {
	query := `SELECT ` + snippetColumns + ` FROM snippets`
	var (
		args  []any
		where []string
	)
	if f.Status != nil {
		args = append(args, string(*f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.AuthorID != nil {
		args = append(args, *f.AuthorID)
		where = append(where, fmt.Sprintf("author_id = $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []snippet.Snippet
	for rows.Next() {
		s, err := scanSnippet(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func scanSnippet(row pgx.Row) (snippet.Snippet, error) {
	var (
		s         snippet.Snippet
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(&s.ID, &s.AuthorID, &s.Title, &s.Description, &s.Language, &s.Code,
		&s.FileName, &s.FilePath, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return snippet.Snippet{}, snippet.ErrNotFound
		}
		return snippet.Snippet{}, err
	}
	s.Status = snippet.Status(status)
	s.CreatedAt = createdAt.UTC()
	s.UpdatedAt = updatedAt.UTC()
	return s, nil
}
