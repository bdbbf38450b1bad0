package dto

import "locallibrary/internal/http-api/service"

// PageResponse wraps one page of a listing.
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// PageQuery binds ?page=N.
type PageQuery struct {
	Page int `form:"page" binding:"omitempty,min=1"`
}

// MapPage converts every item of a service page.
func MapPage[S, T any](p *service.Page[S], convert func(S) T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, convert(it))
	}
	return PageResponse[T]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
