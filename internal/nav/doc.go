// Package nav holds the sidebar state of the dashboard shell.
//
// Each group in the route tree is collapsed until the user toggles it. The
// state is keyed by a structural Key (the slugged group names from the tree
// root) so inserting unrelated entries does not move it to a different group.
// Toggling one group never changes another, and navigating never expands a
// group.
//
// Expansion state belongs to one shell (one signed-in browser session) and is
// kept in memory only: Shells.Mount creates it, Shells.Unmount drops it.
package nav
