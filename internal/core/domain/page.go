package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate slices items preserving order.
//
// Non-positive page or pageSize values fall back to the defaults.
// A page beyond the last one yields empty items.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return Page[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
}
