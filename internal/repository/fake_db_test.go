package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sync"

	"internhub/internal/database"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d dest, %d vals", len(dest), len(r.vals))
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan dest %d is not a pointer", i)
		}
		target := dv.Elem()
		if r.vals[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(r.vals[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan type mismatch at %d: %s into %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}

type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (r *fakeRows) Close() {}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.rows) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return fakeRow{vals: r.rows[r.i-1]}.Scan(dest...)
}

func (r *fakeRows) Err() error { return r.err }

type call struct {
	kind  string
	query string
	args  []any
}

// fakeDB answers statements through the handler funcs and records every
// call. Transactions share the same handlers.
type fakeDB struct {
	mu    sync.Mutex
	calls []call

	onQueryRow func(query string, args []any) database.Row
	onQuery    func(query string, args []any) (database.Rows, error)
	onExec     func(query string, args []any) (int64, error)
	beginErr   error

	commits   int
	rollbacks int
}

func (f *fakeDB) record(kind, query string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{kind: kind, query: query, args: args})
}

func (f *fakeDB) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.record("exec", query, args)
	if f.onExec == nil {
		return 0, nil
	}
	return f.onExec(query, args)
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.record("query", query, args)
	if f.onQuery == nil {
		return &fakeRows{}, nil
	}
	return f.onQuery(query, args)
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	f.record("queryrow", query, args)
	if f.onQueryRow == nil {
		return fakeRow{err: sql.ErrNoRows}
	}
	return f.onQueryRow(query, args)
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	f.record("begin", "", nil)
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return &fakeTx{db: f}, nil
}

type fakeTx struct {
	db *fakeDB
}

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}

func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}

func (t *fakeTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.db.QueryRow(ctx, query, args...)
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.mu.Lock()
	t.db.commits++
	t.db.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.db.mu.Lock()
	t.db.rollbacks++
	t.db.mu.Unlock()
	return nil
}
