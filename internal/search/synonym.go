package search

// Synonyms maps a normalized term to the spellings stored in the skill
// catalogue and profiles.
var Synonyms = map[string][]string{
	"golang":     {"go"},
	"js":         {"javascript"},
	"ts":         {"typescript"},
	"postgres":   {"postgresql"},
	"k8s":        {"kubernetes"},
	"ml":         {"machine learning"},
	"frontend":   {"front end", "front-end"},
	"backend":    {"back end", "back-end"},
	"sign lang":  {"sign language"},
	"ux":         {"user experience", "ui/ux"},
	"excel":      {"microsoft excel", "spreadsheets"},
	"dataentry":  {"data entry"},
	"office":     {"microsoft office", "office administration"},
	"admin":      {"administration", "office administration"},
	"cs":         {"customer service"},
	"support":    {"customer service", "customer support"},
	"accounting": {"bookkeeping"},
}

func GetSynonyms(term string) []string {
	if term == "" {
		return []string{}
	}
	if v, ok := Synonyms[term]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
