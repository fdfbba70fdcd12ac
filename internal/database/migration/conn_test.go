package migration

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

// stmtLog is shared by every connection a fakeConnector opens.
type stmtLog struct {
	mu      sync.Mutex
	stmts   []string
	commits int
	applied [][]driver.Value
}

func (l *stmtLog) add(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stmts = append(l.stmts, strings.TrimSpace(q))
}

func (l *stmtLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.stmts...)
}

type fakeConnector struct{ log *stmtLog }

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) { return &fakeConn{log: c.log}, nil }
func (c fakeConnector) Driver() driver.Driver                        { return fakeDriver{log: c.log} }

type fakeDriver struct{ log *stmtLog }

func (d fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{log: d.log}, nil }

type fakeConn struct{ log *stmtLog }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare not supported") }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return fakeTx{log: c.log}, nil }

func (c *fakeConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.log.add(query)
	return driver.RowsAffected(0), nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.log.add(query)
	c.log.mu.Lock()
	defer c.log.mu.Unlock()
	return &fakeRows{rows: append([][]driver.Value(nil), c.log.applied...)}, nil
}

type fakeTx struct{ log *stmtLog }

func (t fakeTx) Commit() error {
	t.log.mu.Lock()
	defer t.log.mu.Unlock()
	t.log.commits++
	return nil
}

func (t fakeTx) Rollback() error { return nil }

type fakeRows struct {
	rows [][]driver.Value
	i    int
}

func (r *fakeRows) Columns() []string { return []string{"version", "checksum"} }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

func openFakeDB(t *testing.T, log *stmtLog) *sql.DB {
	t.Helper()
	db := sql.OpenDB(fakeConnector{log: log})
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunner_SingleConnectionPool(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__users.sql", "CREATE TABLE users (id uuid);")
	writeFile(t, dir, "V2__jobs.sql", "CREATE TABLE jobs (id uuid);")

	log := &stmtLog{}
	db := openFakeDB(t, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := (Runner{Dir: dir}).Run(ctx, db); err != nil {
		t.Fatalf("run: %v", err)
	}

	stmts := log.snapshot()
	if len(stmts) == 0 || !strings.Contains(stmts[0], "pg_advisory_lock") {
		t.Fatalf("expected the lock first, got %v", stmts)
	}
	if !strings.Contains(stmts[len(stmts)-1], "pg_advisory_unlock") {
		t.Fatalf("expected the unlock last, got %v", stmts)
	}

	var applied, recorded int
	for _, s := range stmts {
		switch {
		case strings.HasPrefix(s, "CREATE TABLE users"), strings.HasPrefix(s, "CREATE TABLE jobs"):
			applied++
		case strings.HasPrefix(s, "INSERT INTO schema_migrations"):
			recorded++
		}
	}
	if applied != 2 || recorded != 2 || log.commits != 2 {
		t.Fatalf("expected 2 applied, recorded and committed, got %d/%d/%d", applied, recorded, log.commits)
	}
}

func TestRunner_SkipsAppliedAndRejectsChangedChecksum(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__users.sql", "CREATE TABLE users (id uuid);")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	log := &stmtLog{applied: [][]driver.Value{{int64(1), migs[0].Checksum}}}
	db := openFakeDB(t, log)
	if err := (Runner{Dir: dir}).Run(context.Background(), db); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, s := range log.snapshot() {
		if strings.HasPrefix(s, "CREATE TABLE users") {
			t.Fatalf("applied migration must not run again")
		}
	}

	changed := &stmtLog{applied: [][]driver.Value{{int64(1), "stale"}}}
	err = (Runner{Dir: dir}).Run(context.Background(), openFakeDB(t, changed))
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}
