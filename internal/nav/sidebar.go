// ABOUTME: Builds the sidebar render model from the route tree, location and expansion state
// ABOUTME: Groups are active when any child is active; children render only while expanded

package nav

import "github.com/K25anjali/local-Konnect/internal/routes"

// ItemKind distinguishes sidebar links from collapsible groups.
type ItemKind int

const (
	ItemLink ItemKind = iota
	ItemGroup
)

// Item is one rendered sidebar row.
type Item struct {
	Kind      ItemKind
	Label     string
	Icon      string
	Href      string // links only
	Key       Key    // groups only
	Active    bool
	Expanded  bool
	Secondary bool
	Children  []Item // groups only, populated while expanded
}

// Build walks the tree and produces the sidebar for location. A nil
// expansion renders every group collapsed.
func Build(tree routes.Tree, location string, expansion *Expansion) []Item {
	return build(tree, location, expansion, "", 0)
}

func build(entries []routes.Entry, location string, expansion *Expansion, parent Key, depth int) []Item {
	if depth > routes.MaxDepth {
		return nil
	}
	k := newKeyer(parent)
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case routes.Leaf:
			items = append(items, Item{
				Kind:      ItemLink,
				Label:     v.Name,
				Icon:      v.Icon,
				Href:      v.Address(),
				Active:    routes.IsActive(v, location),
				Secondary: v.Secondary,
			})
		case routes.Group:
			key := k.next(v.Name)
			children := routes.Resolve(v)
			item := Item{
				Kind:     ItemGroup,
				Label:    v.Name,
				Icon:     v.Icon,
				Key:      key,
				Active:   anyActive(children, location, depth+1),
				Expanded: expansion != nil && expansion.Expanded(key),
			}
			if item.Expanded {
				item.Children = build(children, location, expansion, key, depth+1)
			}
			items = append(items, item)
		}
	}
	return items
}

// anyActive ORs IsActive over a group's descendants.
func anyActive(entries []routes.Entry, location string, depth int) bool {
	if depth > routes.MaxDepth {
		return false
	}
	for _, e := range entries {
		switch v := e.(type) {
		case routes.Leaf:
			if routes.IsActive(v, location) {
				return true
			}
		case routes.Group:
			if anyActive(routes.Resolve(v), location, depth+1) {
				return true
			}
		}
	}
	return false
}
