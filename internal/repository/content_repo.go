package repository

import (
	"context"
	"errors"
	"fmt"

	"content_manager/internal/access"
	"content_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// ContentRepository defines operations for content data. Every read and
// mutation by id is filtered through an access.Scope, so rows outside the
// scope behave exactly like missing rows.
type ContentRepository interface {
	Create(ctx context.Context, content *model.Content) error
	FindAll(ctx context.Context, scope access.Scope) ([]model.Content, error)
	FindByID(ctx context.Context, id int, scope access.Scope) (*model.Content, error)
	Update(ctx context.Context, content *model.Content, scope access.Scope) (bool, error)
	Delete(ctx context.Context, id int, scope access.Scope) (bool, error)
}

type contentRepository struct {
	db DBTX
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db DBTX) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = `id, title, body, summary, COALESCE(user_id, 0)`

func scanContent(row pgx.Row) (*model.Content, error) {
	c := &model.Content{}
	var owner int
	if err := row.Scan(&c.ID, &c.Title, &c.Body, &c.Summary, &owner); err != nil {
		return nil, err
	}
	if owner > 0 {
		c.UserID = &owner
	}
	return c, nil
}

// withScope appends the scope predicate to a query whose WHERE clause
// already uses len(args) placeholders.
func withScope(sql string, hasWhere bool, args []interface{}, scope access.Scope) (string, []interface{}) {
	if !scope.Restricted() {
		return sql, args
	}
	clause, scopeArgs := scope.Predicate(len(args) + 1)
	if hasWhere {
		sql += " AND " + clause
	} else {
		sql += " WHERE " + clause
	}
	return sql, append(args, scopeArgs...)
}

// Create inserts a new content row
func (r *contentRepository) Create(ctx context.Context, c *model.Content) error {
	sql := `INSERT INTO content (title, body, summary, user_id) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, c.Title, c.Body, c.Summary, c.UserID).Scan(&c.ID); err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}
	return nil
}

// FindAll returns every row in scope ordered by id
func (r *contentRepository) FindAll(ctx context.Context, scope access.Scope) ([]model.Content, error) {
	sql, args := withScope(`SELECT `+contentColumns+` FROM content`, false, nil, scope)
	sql += " ORDER BY id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query content: %w", err)
	}
	defer rows.Close()

	contents := []model.Content{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		contents = append(contents, *c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}
	return contents, nil
}

// FindByID retrieves a content row by id if it is in scope
func (r *contentRepository) FindByID(ctx context.Context, id int, scope access.Scope) (*model.Content, error) {
	sql, args := withScope(`SELECT `+contentColumns+` FROM content WHERE id = $1`, true, []interface{}{id}, scope)
	c, err := scanContent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find content by ID: %w", err)
	}
	return c, nil
}

// Update overwrites title, body and summary of an in-scope row. It reports
// false when no row matched.
func (r *contentRepository) Update(ctx context.Context, c *model.Content, scope access.Scope) (bool, error) {
	sql, args := withScope(`UPDATE content SET title = $1, body = $2, summary = $3 WHERE id = $4`, true,
		[]interface{}{c.Title, c.Body, c.Summary, c.ID}, scope)
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update content: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// Delete removes an in-scope row. It reports false when no row matched.
func (r *contentRepository) Delete(ctx context.Context, id int, scope access.Scope) (bool, error) {
	sql, args := withScope(`DELETE FROM content WHERE id = $1`, true, []interface{}{id}, scope)
	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete content: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
