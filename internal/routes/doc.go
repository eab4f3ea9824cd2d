// Package routes models the dashboard's navigation tree and the pure walkers over it.
//
// # Overview
//
// A Tree is an ordered list of entries. Each entry is either a Leaf (one
// navigable page) or a Group (a labelled collection of leaves rendered as a
// collapsible sidebar section):
//
//	tree := routes.Tree{
//		routes.Leaf{Name: "Dashboard", BasePath: "/admin", Path: "/default", Page: dashboard},
//		routes.Group{Name: "Our Application", BasePath: "/admin", Children: []routes.Entry{
//			routes.Leaf{Name: "Bookings", Path: "/bookings", Page: bookings},
//		}},
//	}
//
// # Addresses
//
// The absolute address of a leaf is BasePath + Path, joined by plain
// concatenation. A leaf inside a group with an empty BasePath inherits the
// group's BasePath.
//
// # Walkers
//
//   - Flatten: the (address, page) table handed to the HTTP mux
//   - Locate: exact-match lookup of the current location, first match wins
//   - IsActive: substring containment used for sidebar highlighting
//
// Duplicate addresses are a configuration defect and are not reported; the
// earlier entry in traversal order wins. Walkers stop descending at MaxDepth so
// a malformed tree cannot recurse without bound.
package routes
