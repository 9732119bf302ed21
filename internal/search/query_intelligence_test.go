package search

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNormalizeQuery(t *testing.T) {
	c := qt.New(t)

	c.Assert(NormalizeQuery(""), qt.Equals, "")
	c.Assert(NormalizeQuery("   "), qt.Equals, "")
	c.Assert(NormalizeQuery("  Go   Lang! "), qt.Equals, "go lang")
	c.Assert(NormalizeQuery("C++"), qt.Equals, "c++")
	c.Assert(NormalizeQuery("Node.JS"), qt.Equals, "node.js")
	c.Assert(NormalizeQuery("UI/UX, (design)"), qt.Equals, "ui/ux design")
}

func TestExpandQuery(t *testing.T) {
	c := qt.New(t)

	c.Assert(ExpandQuery(""), qt.DeepEquals, []string{})
	c.Assert(ExpandQuery("golang"), qt.DeepEquals, []string{"golang", "go"})
	c.Assert(ExpandQuery("python"), qt.DeepEquals, []string{"python"})
	c.Assert(ExpandQuery("signlang"), qt.DeepEquals, []string{"signlang", "sign lang", "sign language"})
}

func TestProcessQuery(t *testing.T) {
	c := qt.New(t)

	q := ProcessQuery("  Postgres ")
	c.Assert(q.Original, qt.Equals, "  Postgres ")
	c.Assert(q.Normalized, qt.Equals, "postgres")
	c.Assert(q.Variants, qt.DeepEquals, []string{"postgres", "postgresql"})

	c.Assert(ProcessQuery("?!").Variants, qt.DeepEquals, []string{})
}
