package migration

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoad_OrdersByVersionAndSkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"V10__later.sql":    {Data: []byte("SELECT 10;")},
		"V2__second.sql":    {Data: []byte("  SELECT 2;\n")},
		"V1__first.sql":     {Data: []byte("SELECT 1;")},
		"README.md":         {Data: []byte("not a migration")},
		"v3__lowercase.sql": {Data: []byte("SELECT 3;")},
	}

	migs, err := Load(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	want := []int64{1, 2, 10}
	for i, m := range migs {
		if m.Version != want[i] {
			t.Fatalf("position %d: version=%d want=%d", i, m.Version, want[i])
		}
	}
	if migs[1].SQL != "SELECT 2;" {
		t.Fatalf("expected trimmed sql, got %q", migs[1].SQL)
	}
	if migs[1].Name != "second" || migs[1].Filename != "V2__second.sql" {
		t.Fatalf("unexpected name fields: %+v", migs[1])
	}
}

func TestLoad_ChecksumIgnoresSurroundingWhitespace(t *testing.T) {
	a, err := Load(fstest.MapFS{"V1__a.sql": {Data: []byte("SELECT 1;")}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b, err := Load(fstest.MapFS{"V1__a.sql": {Data: []byte("\n\nSELECT 1;\n")}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if a[0].Checksum != b[0].Checksum {
		t.Fatalf("checksums differ")
	}
}

func TestLoad_RejectsDuplicateVersion(t *testing.T) {
	_, err := Load(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version: 1") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestLoad_RejectsEmptyFile(t *testing.T) {
	_, err := Load(fstest.MapFS{"V1__blank.sql": {Data: []byte("   \n")}})
	if err == nil || !strings.Contains(err.Error(), "empty migration file") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestEmbedded_ContainsSchema(t *testing.T) {
	migs, err := Load(Embedded())
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if len(migs) == 0 {
		t.Fatalf("expected embedded migrations")
	}

	var all strings.Builder
	for i, m := range migs {
		if m.Version != int64(i+1) {
			t.Fatalf("embedded versions must be contiguous from 1, got %d at %d", m.Version, i)
		}
		all.WriteString(m.SQL)
	}
	for _, table := range []string{"users", "job_seeker_profiles", "employer_profiles", "skills", "job_seeker_skills", "job_postings", "job_applications", "saved_candidates", "messages"} {
		if !strings.Contains(all.String(), "CREATE TABLE IF NOT EXISTS "+table+" (") {
			t.Fatalf("missing table %s", table)
		}
	}
	if !strings.Contains(all.String(), "UNIQUE (job_posting_id, job_seeker_id)") {
		t.Fatalf("missing application uniqueness constraint")
	}
}

func TestRun_NilDB(t *testing.T) {
	if err := (Runner{}).Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
