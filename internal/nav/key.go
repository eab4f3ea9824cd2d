// ABOUTME: Structural position keys for route groups
// ABOUTME: Keys are slugged group names from the root, stable under unrelated insertions

package nav

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/K25anjali/local-Konnect/internal/routes"
)

// Key identifies a group by its path from the tree root, e.g. "our-application".
type Key string

// keyer hands out keys for the groups of one sibling list, suffixing repeated
// slugs with "#2", "#3", ... in order.
type keyer struct {
	parent Key
	seen   map[string]int
}

func newKeyer(parent Key) *keyer {
	return &keyer{parent: parent, seen: make(map[string]int)}
}

func (k *keyer) next(name string) Key {
	s := slug(name)
	k.seen[s]++
	if n := k.seen[s]; n > 1 {
		s += "#" + strconv.Itoa(n)
	}
	if k.parent == "" {
		return Key(s)
	}
	return Key(string(k.parent) + "/" + s)
}

// slug lowercases name and collapses everything that is not a letter or digit
// into single dashes.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "group"
	}
	return s
}

// GroupKeys returns the key of every group in the tree, in traversal order.
func GroupKeys(tree routes.Tree) []Key {
	var out []Key
	groupKeys(tree, "", 0, &out)
	return out
}

func groupKeys(entries []routes.Entry, parent Key, depth int, out *[]Key) {
	if depth > routes.MaxDepth {
		return
	}
	k := newKeyer(parent)
	for _, e := range entries {
		g, ok := e.(routes.Group)
		if !ok {
			continue
		}
		key := k.next(g.Name)
		*out = append(*out, key)
		groupKeys(g.Children, key, depth+1, out)
	}
}
