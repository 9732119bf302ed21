package main

import (
	"testing"
	"time"

	"job-bridge/internal/database/seeder"

	qt "github.com/frankban/quicktest"
)

func seederNames(items []seeder.Seeder) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.Name())
	}
	return out
}

func TestSelectSeeders(t *testing.T) {
	c := qt.New(t)
	all := seeder.Defaults()

	got, err := selectSeeders(all, "")
	c.Assert(err, qt.IsNil)
	c.Assert(seederNames(got), qt.DeepEquals, []string{"skills", "demo_accounts", "demo_postings"})

	got, err = selectSeeders(all, " demo_postings, skills ")
	c.Assert(err, qt.IsNil)
	c.Assert(seederNames(got), qt.DeepEquals, []string{"skills", "demo_postings"})

	_, err = selectSeeders(all, "skills,nope,also_nope")
	c.Assert(err, qt.ErrorMatches, "unknown seeders: also_nope, nope")
}

func TestParseTimeout(t *testing.T) {
	c := qt.New(t)

	d, err := parseTimeout("90s")
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.Equals, 90*time.Second)

	_, err = parseTimeout("0s")
	c.Assert(err, qt.IsNotNil)
	_, err = parseTimeout("soon")
	c.Assert(err, qt.ErrorMatches, `invalid --timeout "soon"`)
}
