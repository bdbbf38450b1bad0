package repository

// PageRequest selects one 1-indexed page of an ordered listing.
type PageRequest struct {
	Page     int
	PageSize int
}

func (p PageRequest) limit() int {
	if p.PageSize < 1 {
		return 10
	}
	return p.PageSize
}

func (p PageRequest) offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.limit()
}
