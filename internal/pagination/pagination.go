// Package pagination slices an in-memory ordered list into pages.
package pagination

const (
	DefaultPage = 1
	DefaultSize = 50
	MaxSize     = 100
)

// Params is a page request. Zero values mean "use the default".
type Params struct {
	Page int
	Size int
}

// Page is one window of items plus the metadata needed to walk the rest.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Resolve fills unset fields of p from the defaults and clamps size to
// MaxSize.
func (p Params) Resolve(defaultSize int) Params {
	if defaultSize <= 0 || defaultSize > MaxSize {
		defaultSize = DefaultSize
	}
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Paginate returns the requested page of items. p must already be resolved.
// A page past the end has no items but still reports the totals.
func Paginate[T any](items []T, p Params) Page[T] {
	total := len(items)
	pages := 0
	if total > 0 {
		pages = (total + p.Size - 1) / p.Size
	}

	// Compare against pages before multiplying: (Page-1)*Size can overflow
	// for huge page numbers, while pages*Size is bounded by total.
	window := []T{}
	if p.Page <= pages {
		start := (p.Page - 1) * p.Size
		end := min(start+p.Size, total)
		window = append(window, items[start:end]...)
	}

	return Page[T]{
		Items: window,
		Page:  p.Page,
		Size:  p.Size,
		Total: total,
		Pages: pages,
	}
}
