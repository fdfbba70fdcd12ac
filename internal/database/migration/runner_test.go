package migration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__add_index.sql", "CREATE INDEX x ON jobs (status);")
	writeFile(t, dir, "V1__init_schema.sql", "CREATE TABLE users (id UUID);\n")
	writeFile(t, dir, "README.md", "not a migration")
	writeFile(t, dir, "v3__lowercase.sql", "SELECT 1;")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[0].Name != "init_schema" || migs[1].Version != 2 {
		t.Fatalf("unexpected order: %+v", migs)
	}
	if migs[0].SQL != "CREATE TABLE users (id UUID);" {
		t.Fatalf("expected trimmed sql, got %q", migs[0].SQL)
	}
	if len(migs[0].Checksum) != 64 {
		t.Fatalf("expected sha256 hex checksum, got %q", migs[0].Checksum)
	}
}

func TestLoadMigrations_Duplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V01__b.sql", "SELECT 2;")
	_, err := loadMigrations(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadMigrations_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__empty.sql", "   \n")
	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected error for empty migration")
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil || migs != nil {
		t.Fatalf("missing dir must be a no-op, got %v %v", migs, err)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{Dir: t.TempDir()}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected nil db error")
	}
}

func TestRepositoryMigrationsParse(t *testing.T) {
	migs, err := loadMigrations(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("load repository migrations: %v", err)
	}
	if len(migs) == 0 || migs[0].Version != 1 {
		t.Fatalf("expected V1 migration, got %+v", migs)
	}
	for _, want := range []string{"uq_candidate_job", "uq_users_email_lower", "fk_jobs_recruiter", "fk_users_cv_file"} {
		if !strings.Contains(migs[0].SQL, want) {
			t.Fatalf("schema must declare %s", want)
		}
	}
}
