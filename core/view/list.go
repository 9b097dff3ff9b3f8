// Package view implements the filtered, paginated list views backing
// the portal dashboards. A List layers a case-insensitive text filter
// and a 1-based page cursor over a reactive collection; everything
// downstream of the collection is derived, never stored.
package view

import (
	"strings"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/reactive"
)

// Source is a reactive collection a List can be built on: a
// *reactive.Cell[[]T] or a *reactive.Derived[[]T].
type Source[T any] interface {
	reactive.Source
	Get() []T
}

// List is one list view: a search term, a page cursor and the derived
// filtered/paginated slices. An item matches the search term when the
// lower-cased term is a substring of at least one of its projections;
// the empty term matches everything. Filtering preserves collection
// order and never mutates the source.
type List[T any] struct {
	Search *reactive.Cell[string]

	pageSize int
	page     *reactive.Cell[int]
	filtered *reactive.Derived[[]T]
}

// NewList builds a list view over src. project returns the searchable
// string projections of an item, in a fixed order.
func NewList[T any](src Source[T], pageSize int, project func(T) []string) *List[T] {
	l := &List[T]{
		Search:   reactive.NewCell(""),
		pageSize: pageSize,
		page:     reactive.NewCell(1),
	}
	l.filtered = reactive.Derive(func() []T {
		query := core.CleanString(l.Search.Get(), true /* lower */)
		items := src.Get()
		out := make([]T, 0, len(items))
		for _, item := range items {
			for _, proj := range project(item) {
				if strings.Contains(strings.ToLower(proj), query) {
					out = append(out, item)
					break
				}
			}
		}
		return out
	}, src, l.Search)
	return l
}

// Filtered returns the search-filtered collection in source order.
func (l *List[T]) Filtered() []T { return l.filtered.Get() }

func (l *List[T]) Page() int { return l.page.Get() }

// SetPage moves the cursor without clamping; navigation controls are
// generated from PageNumbers so out-of-range requests do not normally
// occur, and PageItems tolerates them by returning an empty slice.
func (l *List[T]) SetPage(n int) { l.page.Set(n) }

// ResetPage returns the cursor to the first page. Called when the
// backing collection is reloaded, NOT when the search term changes:
// shrinking a result set below the current page leaves the view on an
// empty page on purpose.
func (l *List[T]) ResetPage() { l.page.Set(1) }

// PageItems returns the slice of the filtered collection for the
// current page, clipped to the collection bounds.
func (l *List[T]) PageItems() []T {
	filtered := l.Filtered()
	start := (l.page.Get() - 1) * l.pageSize
	if start < 0 || start >= len(filtered) {
		return filtered[:0]
	}
	end := start + l.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageCount reports the number of pages; an empty collection still
// counts as one page.
func (l *List[T]) PageCount() int {
	n := (len(l.Filtered()) + l.pageSize - 1) / l.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// PageNumbers returns [1..PageCount] for building navigation controls.
func (l *List[T]) PageNumbers() []int {
	nums := make([]int, l.PageCount())
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}
