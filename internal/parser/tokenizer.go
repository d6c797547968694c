package parser

import (
	"sort"
	"strings"
)

// Argument prefixes.
const (
	prefixName       = "n/"
	prefixPhone      = "p/"
	prefixEmail      = "e/"
	prefixAddress    = "a/"
	prefixTag        = "t/"
	prefixSubject    = "s/"
	prefixExamName   = "en/"
	prefixDate       = "d/"
	prefixStart      = "st/"
	prefixEnd        = "et/"
	prefixDetails    = "dt/"
	prefixAssessment = "an/"
	prefixGrade      = "g/"
	prefixFee        = "f/"
	prefixUsername   = "u/"
	prefixPassword   = "pw/"
	prefixRole       = "r/"
	prefixDish       = "m/"
	prefixPosition   = "pos/"
)

// argMap holds the preamble and every value given for each prefix.
type argMap struct {
	preamble string
	values   map[string][]string
}

// tokenize splits args into a preamble and prefixed values. A word starting
// with a known prefix opens a new value; following words extend it.
func tokenize(args string, prefixes ...string) argMap {
	sorted := append([]string(nil), prefixes...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	m := argMap{values: make(map[string][]string)}
	var (
		preamble []string
		current  string
		words    []string
	)
	flush := func() {
		if current != "" {
			m.values[current] = append(m.values[current], strings.Join(words, " "))
		}
	}
	for _, word := range strings.Fields(args) {
		prefix := matchPrefix(word, sorted)
		if prefix == "" {
			if current == "" {
				preamble = append(preamble, word)
			} else {
				words = append(words, word)
			}
			continue
		}
		flush()
		current = prefix
		words = words[:0]
		if rest := strings.TrimPrefix(word, prefix); rest != "" {
			words = append(words, rest)
		}
	}
	flush()
	m.preamble = strings.Join(preamble, " ")
	return m
}

func matchPrefix(word string, prefixes []string) string {
	lower := strings.ToLower(word)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return p
		}
	}
	return ""
}

// value returns the last value for prefix.
func (m argMap) value(prefix string) (string, bool) {
	vs := m.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// all returns every value for prefix.
func (m argMap) all(prefix string) []string {
	return m.values[prefix]
}

// has reports whether every prefix was supplied.
func (m argMap) has(prefixes ...string) bool {
	for _, p := range prefixes {
		if _, ok := m.value(p); !ok {
			return false
		}
	}
	return true
}
