package search

import (
	"strings"
	"unicode"
)

const maxVariants = 8

type QueryContext struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lowercases input and collapses whitespace. Symbols that
// appear in skill names (c++, c#, node.js, ui/ux, front-end) are kept; all
// other punctuation is dropped.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune("+#./-", r):
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery returns normalized followed by its synonyms. A single word
// that is the compact form of a spaced key ("signlang") expands like that
// key.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	if !strings.Contains(normalized, " ") {
		for k, syns := range Synonyms {
			if !strings.Contains(k, " ") || strings.ReplaceAll(k, " ", "") != normalized {
				continue
			}
			add(k)
			for _, syn := range syns {
				add(syn)
			}
			break
		}
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func ProcessQuery(input string) QueryContext {
	ctx := QueryContext{Original: input}
	ctx.Normalized = NormalizeQuery(input)
	if ctx.Normalized == "" {
		ctx.Variants = []string{}
		return ctx
	}
	ctx.Variants = ExpandQuery(ctx.Normalized)
	return ctx
}
