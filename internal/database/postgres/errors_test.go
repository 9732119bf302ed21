package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	fk := &pgconn.PgError{Code: "23503"}
	dupTable := &pgconn.PgError{Code: "42P07"}

	if !IsUniqueViolation(unique) {
		t.Fatalf("expected wrapped 23505 to be a unique violation")
	}
	if IsUniqueViolation(fk) {
		t.Fatalf("23503 must not be a unique violation")
	}
	if !IsForeignKeyViolation(fk) {
		t.Fatalf("expected 23503 to be a foreign key violation")
	}
	if !IsAlreadyExists(dupTable) {
		t.Fatalf("expected 42P07 to be already-exists")
	}
	if IsAlreadyExists(errors.New("boom")) {
		t.Fatalf("plain error must not classify")
	}
	if got := ConstraintName(unique); got != "users_username_key" {
		t.Fatalf("constraint=%q", got)
	}
	if !IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)) || !IsNoRows(sql.ErrNoRows) {
		t.Fatalf("expected no-rows errors to classify")
	}
}
