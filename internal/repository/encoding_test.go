package repository

import "testing"

func TestEscapeLike(t *testing.T) {
	got := escapeLike(`50%_off\`)
	if got != `50\%\_off\\` {
		t.Fatalf("escapeLike=%q", got)
	}
}

func TestLikePatterns(t *testing.T) {
	got := likePatterns([]string{"go", " ", "c_sharp"})
	if len(got) != 2 || got[0] != "%go%" || got[1] != `%c\_sharp%` {
		t.Fatalf("likePatterns=%q", got)
	}
	if got := likePatterns(nil); len(got) != 0 {
		t.Fatalf("nil terms must give no patterns, got %q", got)
	}
}

func TestSkillsJSON(t *testing.T) {
	enc, err := encodeSkills(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if enc != "[]" {
		t.Fatalf("nil skills must encode as empty array, got %s", enc)
	}

	dec, err := decodeSkills([]byte(`["Excel","SQL"]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dec) != 2 || dec[0] != "Excel" || dec[1] != "SQL" {
		t.Fatalf("unexpected skills: %v", dec)
	}

	dec, err = decodeSkills([]byte("null"))
	if err != nil {
		t.Fatalf("decode null: %v", err)
	}
	if dec == nil || len(dec) != 0 {
		t.Fatalf("null must decode to empty slice, got %#v", dec)
	}

	if _, err := decodeSkills([]byte("{")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
