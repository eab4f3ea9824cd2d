// ABOUTME: Listing helpers for dashboard tables: filtering, pagination, CSV export
// ABOUTME: Pages are clamped so out-of-range requests land on the nearest page

// Package table holds the listing helpers shared by the report pages.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Filter returns the items for which keep returns true, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based
	PerPage    int
	TotalPages int // at least 1
	TotalItems int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Prev returns the previous page number.
func (p Page[T]) Prev() int { return p.Number - 1 }

// Next returns the next page number.
func (p Page[T]) Next() int { return p.Number + 1 }

// Numbers lists every page number, for pager links.
func (p Page[T]) Numbers() []int {
	nums := make([]int, p.TotalPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// Paginate cuts items into pages of perPage and returns page number (clamped
// to 1..TotalPages). A perPage below 1 is treated as 1.
func Paginate[T any](items []T, number, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}
	total := (len(items) + perPage - 1) / perPage
	if total < 1 {
		total = 1
	}
	number = min(max(number, 1), total)

	start := (number - 1) * perPage
	end := min(start+perPage, len(items))
	if start > len(items) {
		start = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		PerPage:    perPage,
		TotalPages: total,
		TotalItems: len(items),
	}
}

// Contains reports whether s contains query, ignoring case. An empty query
// matches everything.
func Contains(s, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// Equal reports whether s equals want, or want is empty.
func Equal(s, want string) bool {
	return want == "" || s == want
}

// Distinct returns the unique non-empty values of field over items, in first-seen order.
func Distinct[T any](items []T, field func(T) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		v := field(item)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// WriteCSV writes header followed by one record per row.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("csv row %d has %d fields, want %d", i, len(row), len(header))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
