// ABOUTME: Route tree entry types: Leaf pages and Group sections
// ABOUTME: Entry is a closed union; walkers switch over the two variants

package routes

import "net/http"

// Entry is a node of the route tree. It is implemented only by Leaf and Group.
type Entry interface {
	// Label returns the display name of the entry.
	Label() string
	isEntry()
}

// Leaf is one navigable page.
type Leaf struct {
	Name     string
	BasePath string // area prefix, e.g. "/admin"; inherited from the parent group when empty
	Path     string // relative segment, e.g. "/default"

	// Page renders the leaf. A nil Page marks a placeholder reserved for a
	// future page: it shows up in navigation but is never mounted.
	Page http.Handler

	Icon       string
	Secondary  bool
	NavbarText string // optional message shown next to the navbar title
}

// Group is a labelled, collapsible collection of entries.
type Group struct {
	Name     string
	BasePath string
	Icon     string
	Children []Entry
}

// Label returns the leaf name.
func (l Leaf) Label() string { return l.Name }

// Label returns the group name.
func (g Group) Label() string { return g.Name }

func (Leaf) isEntry()  {}
func (Group) isEntry() {}

// Address returns the absolute address of the leaf.
func (l Leaf) Address() string {
	return Address(l.BasePath, l.Path)
}

// Address joins a base path and a relative path. The join is plain
// concatenation; slashes are not normalized.
func Address(basePath, path string) string {
	return basePath + path
}

// inherit fills in an empty BasePath from the enclosing group.
func (l Leaf) inherit(parentBase string) Leaf {
	if l.BasePath == "" {
		l.BasePath = parentBase
	}
	return l
}

// Tree is the ordered list of top-level entries. Order is both render order
// and the tie-break order for matching.
type Tree []Entry

// InArea returns the top-level entries whose BasePath equals basePath.
func (t Tree) InArea(basePath string) Tree {
	var out Tree
	for _, e := range t {
		switch v := e.(type) {
		case Leaf:
			if v.BasePath == basePath {
				out = append(out, v)
			}
		case Group:
			if v.BasePath == basePath {
				out = append(out, v)
			}
		}
	}
	return out
}

// Addresses returns the addresses of every mounted page in registration order.
func (t Tree) Addresses() []string {
	flat := Flatten(t)
	out := make([]string, len(flat))
	for i, r := range flat {
		out[i] = r.Address
	}
	return out
}
