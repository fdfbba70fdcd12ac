package repository

import (
	"context"
	"fmt"
	"strings"

	"internhub/internal/database"
	"internhub/internal/domain/page"
)

// sortColumns maps the sort field names callers may use to qualified
// columns. idColumn is appended to every ORDER BY.
type sortColumns struct {
	columns  map[string]string
	idColumn string
	def      page.Sort
}

func (s sortColumns) orderBy(op string, sort page.Sort) (string, error) {
	field := strings.ToLower(strings.TrimSpace(sort.Field))
	if field == "" {
		field = s.def.Field
	}
	col, ok := s.columns[field]
	if !ok {
		return "", validationError(op, "unsupported sort field", fmt.Errorf("%w: %q", page.ErrInvalidSortField, sort.Field))
	}

	dir, err := page.ParseDirection(string(sort.Direction), s.def.Direction)
	if err != nil {
		return "", validationError(op, "unsupported sort direction", err)
	}

	if col == s.idColumn {
		return fmt.Sprintf("ORDER BY %s %s", col, dir), nil
	}
	return fmt.Sprintf("ORDER BY %s %s, %s %s", col, dir, s.idColumn, dir), nil
}

type pageQuery[T any] struct {
	op     string
	count  string
	list   string
	args   []any
	order  sortColumns
	scan   func(database.Row) (T, error)
	req    page.Request
	filter string
}

// run counts and lists inside one repeatable-read snapshot so Total and
// Items agree with each other.
func (q pageQuery[T]) run(ctx context.Context, db database.DB) (page.Page[T], error) {
	if err := q.req.Validate(); err != nil {
		return page.Page[T]{}, validationError(q.op, "invalid page request", err)
	}
	order, err := q.order.orderBy(q.op, q.req.Sort)
	if err != nil {
		return page.Page[T]{}, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return page.Page[T]{}, translate(q.op, err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `SET TRANSACTION ISOLATION LEVEL REPEATABLE READ READ ONLY`); err != nil {
		return page.Page[T]{}, translate(q.op, err)
	}

	var total int64
	if err := tx.QueryRow(ctx, q.count+" "+q.filter, q.args...).Scan(&total); err != nil {
		return page.Page[T]{}, translate(q.op, err)
	}

	items := make([]T, 0, q.req.Size)
	if total > int64(q.req.Offset()) {
		listSQL := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d",
			q.list, q.filter, order, len(q.args)+1, len(q.args)+2)
		args := append(append([]any{}, q.args...), q.req.Size, q.req.Offset())

		rows, err := tx.Query(ctx, listSQL, args...)
		if err != nil {
			return page.Page[T]{}, translate(q.op, err)
		}
		defer rows.Close()

		for rows.Next() {
			it, err := q.scan(rows)
			if err != nil {
				return page.Page[T]{}, translate(q.op, err)
			}
			items = append(items, it)
		}
		if err := rows.Err(); err != nil {
			return page.Page[T]{}, translate(q.op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return page.Page[T]{}, translate(q.op, err)
	}
	return page.New(items, q.req, total), nil
}

func existsQuery(ctx context.Context, db database.DB, op, query string, args ...any) (bool, error) {
	var exists bool
	if err := db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, translate(op, err)
	}
	return exists, nil
}

func findOne[T any](op string, row database.Row, scan func(database.Row) (T, error)) (T, bool, error) {
	var zero T
	v, err := scan(row)
	if err != nil {
		if isNoRows(err) {
			return zero, false, nil
		}
		return zero, false, translate(op, err)
	}
	return v, true, nil
}

func updateOne[T any](op, missing string, row database.Row, scan func(database.Row) (T, error)) (T, error) {
	var zero T
	v, err := scan(row)
	if err != nil {
		if isNoRows(err) {
			return zero, notFoundError(op, missing)
		}
		return zero, translate(op, err)
	}
	return v, nil
}
