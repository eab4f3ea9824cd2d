// ABOUTME: Pure walkers over the route tree: Flatten, Locate, Title and IsActive
// ABOUTME: Traversal is depth-first in array order with a bounded depth

package routes

import (
	"net/http"
	"strings"
)

// MaxDepth bounds how deep walkers descend. Well-formed trees nest one level.
const MaxDepth = 8

// DefaultTitle is shown when the current location matches no entry.
const DefaultTitle = "Default Brand Text"

// Route is one row of the flattened page table.
type Route struct {
	Address string
	Name    string
	Page    http.Handler
}

// Flatten returns the (address, page) table for every leaf that has a page,
// in tree order. Placeholders and groups contribute nothing themselves.
func Flatten(tree Tree) []Route {
	var out []Route
	flatten(tree, "", 0, &out)
	return out
}

func flatten(entries []Entry, parentBase string, depth int, out *[]Route) {
	if depth > MaxDepth {
		return
	}
	for _, e := range entries {
		switch v := e.(type) {
		case Leaf:
			leaf := v.inherit(parentBase)
			if leaf.Page == nil {
				continue
			}
			*out = append(*out, Route{Address: leaf.Address(), Name: leaf.Name, Page: leaf.Page})
		case Group:
			base := v.BasePath
			if base == "" {
				base = parentBase
			}
			flatten(v.Children, base, depth+1, out)
		}
	}
}

// Locate finds the first leaf whose address equals location exactly.
// The returned leaf carries its effective BasePath. ok is false when nothing
// matches.
func Locate(tree Tree, location string) (leaf Leaf, ok bool) {
	return locate(tree, location, "", 0)
}

func locate(entries []Entry, location, parentBase string, depth int) (Leaf, bool) {
	if depth > MaxDepth {
		return Leaf{}, false
	}
	for _, e := range entries {
		switch v := e.(type) {
		case Leaf:
			leaf := v.inherit(parentBase)
			if leaf.Address() == location {
				return leaf, true
			}
		case Group:
			base := v.BasePath
			if base == "" {
				base = parentBase
			}
			if leaf, ok := locate(v.Children, location, base, depth+1); ok {
				return leaf, true
			}
		}
	}
	return Leaf{}, false
}

// Title returns the name of the entry at location, or DefaultTitle.
func Title(tree Tree, location string) string {
	if leaf, ok := Locate(tree, location); ok {
		return leaf.Name
	}
	return DefaultTitle
}

// NavbarText returns the navbar message of the entry at location, or "".
func NavbarText(tree Tree, location string) string {
	if leaf, ok := Locate(tree, location); ok {
		return leaf.NavbarText
	}
	return ""
}

// IsActive reports whether location contains the leaf's address. Containment
// rather than equality is intentional so "/admin/bookings?page=2" and deeper
// locations still highlight their menu entry. A group has no address and is
// never active by itself; callers OR its children together.
//
// The leaf must already carry its effective BasePath (see Resolve).
func IsActive(e Entry, location string) bool {
	leaf, ok := e.(Leaf)
	if !ok {
		return false
	}
	return strings.Contains(location, leaf.Address())
}

// Resolve returns the children of g with BasePath inherited from g.
func Resolve(g Group) []Entry {
	out := make([]Entry, len(g.Children))
	for i, c := range g.Children {
		switch v := c.(type) {
		case Leaf:
			out[i] = v.inherit(g.BasePath)
		case Group:
			if v.BasePath == "" {
				v.BasePath = g.BasePath
			}
			out[i] = v
		}
	}
	return out
}
