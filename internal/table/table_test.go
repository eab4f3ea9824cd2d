// ABOUTME: Tests for the listing helpers
// ABOUTME: Covers filtering, page clamping and CSV output

package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, got)

	assert.Empty(t, Filter([]int{}, func(int) bool { return true }))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		number    int
		perPage   int
		wantItems []int
		wantNum   int
		wantTotal int
	}{
		{"first page", 1, 3, []int{1, 2, 3}, 1, 3},
		{"last partial page", 3, 3, []int{7}, 3, 3},
		{"clamped high", 9, 3, []int{7}, 3, 3},
		{"clamped low", 0, 3, []int{1, 2, 3}, 1, 3},
		{"single page", 1, 10, items, 1, 1},
		{"zero per page", 2, 0, []int{2}, 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(items, tt.number, tt.perPage)
			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantNum, p.Number)
			assert.Equal(t, tt.wantTotal, p.TotalPages)
			assert.Equal(t, len(items), p.TotalItems)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string(nil), 4, 5)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, []int{1}, p.Numbers())
}

func TestPage_Navigation(t *testing.T) {
	p := Paginate([]int{1, 2, 3, 4, 5, 6}, 2, 2)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 3, p.Next())
	assert.Equal(t, []int{1, 2, 3}, p.Numbers())
}

func TestContainsAndEqual(t *testing.T) {
	assert.True(t, Contains("Plumbing Repair", "plumb"))
	assert.True(t, Contains("anything", ""))
	assert.False(t, Contains("Painting", "plumb"))

	assert.True(t, Equal("Delhi", ""))
	assert.True(t, Equal("Delhi", "Delhi"))
	assert.False(t, Equal("Delhi", "Pune"))
}

func TestDistinct(t *testing.T) {
	got := Distinct([]string{"b", "a", "", "b", "c"}, func(s string) string { return s })
	assert.Equal(t, []string{"b", "a", "c"}, got)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"Task", "City"}, [][]string{
		{"Plumbing", "Delhi"},
		{"Painting, exterior", "Pune"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Task,City\nPlumbing,Delhi\n\"Painting, exterior\",Pune\n", buf.String())
}

func TestWriteCSV_RowWidthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"A", "B"}, [][]string{{"only one"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}
