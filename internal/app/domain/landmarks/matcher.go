package landmarks

import (
	"sort"
	"sync"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Destinations returns every district and place of the catalog, sorted and
// without duplicates.
func Destinations() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, d := range Catalog {
		add(d.Name)
		for _, p := range d.Places {
			add(p)
		}
	}
	sort.Strings(out)
	return out
}

// Matcher finds catalog names mentioned in free text. Matching is ASCII case
// insensitive, whole word, and prefers the longest name ("Ooty Lake" over "Ooty").
type Matcher struct {
	mu    sync.Mutex
	ac    ahocorasick.AhoCorasick
	names []string
}

func NewMatcher(names []string) *Matcher {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})
	return &Matcher{
		ac:    builder.Build(names),
		names: names,
	}
}

var (
	defaultMatcher     *Matcher
	defaultMatcherOnce sync.Once
)

// Default returns the matcher over the whole catalog.
func Default() *Matcher {
	defaultMatcherOnce.Do(func() {
		defaultMatcher = NewMatcher(Destinations())
	})
	return defaultMatcher
}

// Find returns the distinct names mentioned in text, in order of first mention.
func (m *Matcher) Find(text string) []string {
	if text == "" || len(m.names) == 0 {
		return nil
	}

	m.mu.Lock()
	matches := m.ac.FindAll(text)
	m.mu.Unlock()

	seen := make(map[int]struct{}, len(matches))
	var out []string
	for _, match := range matches {
		idx := match.Pattern()
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, m.names[idx])
	}
	return out
}

// Top returns at most n names from Find.
func (m *Matcher) Top(text string, n int) []string {
	found := m.Find(text)
	if len(found) > n {
		return found[:n]
	}
	return found
}
