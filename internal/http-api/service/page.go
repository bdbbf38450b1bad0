package service

import "locallibrary/internal/http-api/repository"

// DefaultPageSize applies to catalog listings.
const DefaultPageSize = 10

// Page is one slice of an ordered listing.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int64
	TotalPages int64
}

func pageRequest(page, size int) repository.PageRequest {
	if page < 1 {
		page = 1
	}
	return repository.PageRequest{Page: page, PageSize: size}
}

func newPage[T any](items []T, req repository.PageRequest, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		TotalPages: (total + int64(req.PageSize) - 1) / int64(req.PageSize),
	}
}
