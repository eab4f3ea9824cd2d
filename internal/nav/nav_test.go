// ABOUTME: Tests for sidebar expansion state, structural keys and the sidebar model
// ABOUTME: Covers toggle isolation, double-toggle, key stability and active aggregation

package nav

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K25anjali/local-Konnect/internal/routes"
)

func testTree() routes.Tree {
	return routes.Tree{
		routes.Leaf{Name: "Dashboard", BasePath: "/admin", Path: "/default"},
		routes.Group{Name: "Our Application", BasePath: "/admin", Children: []routes.Entry{
			routes.Leaf{Name: "Bookings", Path: "/bookings"},
			routes.Leaf{Name: "Invoices", Path: "/invoices"},
		}},
		routes.Group{Name: "Empty", BasePath: "/admin"},
		routes.Leaf{Name: "Profile", BasePath: "/admin", Path: "/profile", Secondary: true},
	}
}

func TestExpansion_StartsCollapsed(t *testing.T) {
	e := NewExpansion()
	assert.False(t, e.Expanded("our-application"))
	assert.Empty(t, e.Snapshot())
}

func TestExpansion_DoubleToggleRestores(t *testing.T) {
	e := NewExpansion()

	assert.True(t, e.Toggle("a"))
	assert.True(t, e.Expanded("a"))
	assert.False(t, e.Toggle("a"))
	assert.False(t, e.Expanded("a"))
	assert.Empty(t, e.Snapshot())
}

func TestExpansion_ToggleIsolated(t *testing.T) {
	e := NewExpansion()
	e.Toggle("b")

	before := e.Snapshot()
	e.Toggle("a")
	after := e.Snapshot()

	assert.Equal(t, before["b"], after["b"])
	assert.True(t, after["a"])
	assert.False(t, e.Expanded("c"))
}

func TestExpansion_ConcurrentToggles(t *testing.T) {
	e := NewExpansion()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Toggle("x")
		}()
	}
	wg.Wait()

	assert.False(t, e.Expanded("x"), "an even number of toggles leaves the group collapsed")
}

func TestGroupKeys(t *testing.T) {
	tree := routes.Tree{
		routes.Group{Name: "Our Application"},
		routes.Group{Name: "Reports & Exports", Children: []routes.Entry{
			routes.Group{Name: "Archive"},
		}},
		routes.Group{Name: "our application"},
		routes.Group{Name: "!!!"},
	}

	assert.Equal(t, []Key{
		"our-application",
		"reports-exports",
		"reports-exports/archive",
		"our-application#2",
		"group",
	}, GroupKeys(tree))
}

func TestGroupKeys_StableUnderInsertion(t *testing.T) {
	tree := testTree()
	before := GroupKeys(tree)

	inserted := append(routes.Tree{routes.Leaf{Name: "New", BasePath: "/admin", Path: "/new"}}, tree...)
	assert.Equal(t, before, GroupKeys(inserted))
}

func TestBuild_CollapsedGroupHidesChildren(t *testing.T) {
	items := Build(testTree(), "/admin/bookings", NewExpansion())

	require.Len(t, items, 4)
	assert.Equal(t, ItemLink, items[0].Kind)
	assert.Equal(t, "/admin/default", items[0].Href)
	assert.False(t, items[0].Active)

	group := items[1]
	assert.Equal(t, ItemGroup, group.Kind)
	assert.Equal(t, Key("our-application"), group.Key)
	assert.True(t, group.Active, "a group is active when a child is active")
	assert.False(t, group.Expanded, "navigating does not expand the group")
	assert.Empty(t, group.Children)

	assert.True(t, items[3].Secondary)
}

func TestBuild_ExpandedGroupShowsChildren(t *testing.T) {
	e := NewExpansion()
	e.Toggle("our-application")

	items := Build(testTree(), "/admin/invoices?page=2", e)
	group := items[1]

	require.True(t, group.Expanded)
	require.Len(t, group.Children, 2)
	assert.Equal(t, "/admin/bookings", group.Children[0].Href)
	assert.False(t, group.Children[0].Active)
	assert.Equal(t, "/admin/invoices", group.Children[1].Href)
	assert.True(t, group.Children[1].Active)
}

func TestBuild_EmptyGroupToggleHasNoVisibleEffect(t *testing.T) {
	e := NewExpansion()
	before := Build(testTree(), "/admin/default", e)
	e.Toggle("empty")
	after := Build(testTree(), "/admin/default", e)

	assert.False(t, before[2].Expanded)
	assert.True(t, after[2].Expanded)
	assert.Empty(t, before[2].Children)
	assert.Empty(t, after[2].Children)
}

func TestBuild_NilExpansion(t *testing.T) {
	items := Build(testTree(), "/admin/default", nil)
	assert.True(t, items[0].Active)
	assert.False(t, items[1].Expanded)
}

func TestShells_MountUnmount(t *testing.T) {
	s := NewShells()

	a := s.Mount("a")
	a.Toggle("our-application")
	assert.Same(t, a, s.Mount("a"))
	assert.Equal(t, 1, s.Len())

	b := s.Mount("b")
	assert.False(t, b.Expanded("our-application"), "shells do not share state")

	s.Unmount("a")
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Mount("a").Expanded("our-application"), "remount starts collapsed")

	s.Unmount("missing")
}
