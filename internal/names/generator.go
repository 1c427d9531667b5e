package names

import (
	"strconv"
	"strings"
)

// Delimiter separates a name from its subname: NAME_SUBNAME123.
const Delimiter = '_'

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ParsedName is a name split as NAME[_SUBNAME[NUMBER]].
type ParsedName struct {
	Name      string
	Subname   string
	Number    int
	HasNumber bool
}

// ParseName splits s at the first delimiter. The part after it is split into
// a text subname and a trailing decimal number, either of which may be empty.
func ParseName(s string) ParsedName {
	i := strings.IndexByte(s, Delimiter)
	if i < 0 {
		return ParsedName{Name: s}
	}
	p := ParsedName{Name: s[:i]}
	p.Subname, p.Number, p.HasNumber = parseSubname(s[i+1:])
	return p
}

func parseSubname(s string) (string, int, bool) {
	j := len(s)
	for j > 0 && s[j-1] >= '0' && s[j-1] <= '9' {
		j--
	}
	if j == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[j:])
	if err != nil {
		return s, 0, false
	}
	return s[:j], n, true
}

// String renders the canonical form. Names differing only in leading zeros of
// the number share a canonical form.
func (p ParsedName) String() string {
	if p.Subname == "" && !p.HasNumber {
		return p.Name
	}
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte(Delimiter)
	b.WriteString(p.Subname)
	if p.HasNumber {
		b.WriteString(strconv.Itoa(p.Number))
	}
	return b.String()
}

// NameGenerator proposes default names. Its bookkeeping covers the names it
// issued and the names callers reported with MarkUsed; it is a hint, not a
// uniqueness authority. Callers confirm against their Dictionary.
type NameGenerator struct {
	used map[string]struct{}
}

// NewNameGenerator returns a generator with no used names.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{used: make(map[string]struct{})}
}

// IsUsed reports whether name (in canonical form) is issued or marked.
func (g *NameGenerator) IsUsed(name string) bool {
	return g.isUsed(ParseName(name))
}

func (g *NameGenerator) isUsed(p ParsedName) bool {
	_, ok := g.used[p.String()]
	return ok
}

// MarkUsed records name as taken. It reports false if it already was.
func (g *NameGenerator) MarkUsed(name string) bool {
	key := ParseName(name).String()
	if _, ok := g.used[key]; ok {
		return false
	}
	g.used[key] = struct{}{}
	return true
}

// Release returns name to the pool. It reports whether it was used.
func (g *NameGenerator) Release(name string) bool {
	key := ParseName(name).String()
	if _, ok := g.used[key]; !ok {
		return false
	}
	delete(g.used, key)
	return true
}

// Peek returns the name Next would issue without reserving it.
func (g *NameGenerator) Peek(prefix string) string {
	if prefix == "" {
		return g.peekAlphabet().String()
	}
	if !g.IsUsed(prefix) {
		return prefix
	}
	return g.peekNumbered(ParseName(prefix)).String()
}

// Next returns prefix itself when unused, otherwise prefix with the smallest
// free numeric suffix. The empty prefix walks the alphabet: the letter whose
// next free name carries the smallest number wins, an unnumbered name
// counting as smaller than any number. The result is reserved.
func (g *NameGenerator) Next(prefix string) string {
	name := g.Peek(prefix)
	g.MarkUsed(name)
	return name
}

// Generate is Next with the empty prefix.
func (g *NameGenerator) Generate() string { return g.Next("") }

func (g *NameGenerator) peekNumbered(p ParsedName) ParsedName {
	p.HasNumber, p.Number = false, 0
	if !g.isUsed(p) {
		return p
	}
	p.HasNumber = true
	for n := 0; ; n++ {
		p.Number = n
		if !g.isUsed(p) {
			return p
		}
	}
}

func (g *NameGenerator) peekAlphabet() ParsedName {
	var (
		best     ParsedName
		bestRank = -2
	)
	for _, r := range alphabet {
		p := ParsedName{Name: string(r)}
		if g.isUsed(p) {
			p = g.peekNumbered(p)
		}
		rank := -1
		if p.HasNumber {
			rank = p.Number
		}
		if bestRank == -2 || rank < bestRank {
			best, bestRank = p, rank
		}
	}
	return best
}
