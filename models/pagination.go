package models

// Pagination is a 1-based page window over the ledger.
type Pagination struct {
	Page    int
	PerPage int
}

// Clamp forces Page to at least 1 and PerPage into [1, maxPerPage]. A zero
// PerPage becomes defaultPerPage before clamping.
func (p Pagination) Clamp(defaultPerPage, maxPerPage int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage == 0 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage < 1 {
		p.PerPage = 1
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

// StartsBeyond reports whether the page begins at or after row total. It
// divides instead of multiplying, so arbitrarily large page numbers cannot
// wrap around. Call it on a clamped value.
func (p Pagination) StartsBeyond(total int64) bool {
	if total <= 0 {
		return true
	}
	pages := (total-1)/int64(p.PerPage) + 1
	return int64(p.Page-1) >= pages
}

// Offset is the number of rows preceding the page. Only meaningful once
// StartsBeyond has returned false, which bounds the product by total.
func (p Pagination) Offset() uint64 {
	return uint64(p.Page-1) * uint64(p.PerPage)
}
