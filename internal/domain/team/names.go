package team

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NameResult is the outcome of resolving a raw team name.
// It is either Mapped or Unmapped.
type NameResult interface {
	isNameResult()
	// Canonical returns the name to key data by. Unmapped results return the original text.
	Canonical() string
}

// Mapped is a raw name that matched a known alias.
type Mapped struct {
	Name string
	Rule MatchRule
}

// Unmapped is a raw name no rule could match; it is never guessed.
type Unmapped struct {
	Original string
}

func (Mapped) isNameResult()   {}
func (Unmapped) isNameResult() {}

func (m Mapped) Canonical() string   { return m.Name }
func (u Unmapped) Canonical() string { return u.Original }

// MatchRule identifies which normalisation step produced a match.
type MatchRule int

const (
	RuleExact MatchRule = iota + 1
	RuleCaseInsensitive
	RuleFolded
	RuleSuffixStripped
)

func (r MatchRule) String() string {
	switch r {
	case RuleExact:
		return "exact"
	case RuleCaseInsensitive:
		return "case_insensitive"
	case RuleFolded:
		return "folded"
	case RuleSuffixStripped:
		return "suffix_stripped"
	default:
		return "unknown"
	}
}

var clubAffixes = []string{"fc", "cf", "sc", "sfc", "ac", "afc", "cd"}

// Normalizer resolves raw team names to canonical names using an ordered
// rule list: exact alias, case-insensitive alias, accent-folded alias and
// finally club-affix stripped alias. A rule only matches when it yields a
// single canonical name.
type Normalizer struct {
	exact    map[string]string
	lower    map[string][]string
	folded   map[string][]string
	stripped map[string][]string
}

// NewNormalizer builds a normalizer from alias → canonical pairs. Every
// canonical name is also registered as an alias of itself.
func NewNormalizer(aliases map[string]string) *Normalizer {
	n := &Normalizer{
		exact:    make(map[string]string, len(aliases)*2),
		lower:    make(map[string][]string),
		folded:   make(map[string][]string),
		stripped: make(map[string][]string),
	}

	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		canonical := aliases[alias]
		n.add(alias, canonical)
		n.add(canonical, canonical)
	}
	return n
}

func (n *Normalizer) add(alias, canonical string) {
	alias = collapseSpaces(alias)
	if alias == "" || canonical == "" {
		return
	}
	if _, exists := n.exact[alias]; !exists {
		n.exact[alias] = canonical
	}
	n.lower[strings.ToLower(alias)] = appendUnique(n.lower[strings.ToLower(alias)], canonical)
	n.folded[Fold(alias)] = appendUnique(n.folded[Fold(alias)], canonical)
	if key := stripAffixes(Fold(alias)); key != "" {
		n.stripped[key] = appendUnique(n.stripped[key], canonical)
	}
}

// Resolve maps raw to a canonical name or reports it as Unmapped.
func (n *Normalizer) Resolve(raw string) NameResult {
	name := collapseSpaces(raw)
	if name == "" {
		return Unmapped{Original: raw}
	}

	if canonical, ok := n.exact[name]; ok {
		return Mapped{Name: canonical, Rule: RuleExact}
	}
	if canonical, ok := single(n.lower[strings.ToLower(name)]); ok {
		return Mapped{Name: canonical, Rule: RuleCaseInsensitive}
	}
	folded := Fold(name)
	if canonical, ok := single(n.folded[folded]); ok {
		return Mapped{Name: canonical, Rule: RuleFolded}
	}
	if key := stripAffixes(folded); key != "" {
		if canonical, ok := single(n.stripped[key]); ok {
			return Mapped{Name: canonical, Rule: RuleSuffixStripped}
		}
	}
	return Unmapped{Original: name}
}

// Fold lowercases, strips diacritics and collapses punctuation to single spaces.
func Fold(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, value)
	if err != nil {
		stripped = value
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return collapseSpaces(b.String())
}

func stripAffixes(folded string) string {
	words := strings.Fields(folded)
	out := words[:0:0]
	for _, w := range words {
		if isAffix(w) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

func isAffix(word string) bool {
	for _, a := range clubAffixes {
		if word == a {
			return true
		}
	}
	return false
}

func collapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}

func single(values []string) (string, bool) {
	if len(values) != 1 {
		return "", false
	}
	return values[0], true
}
