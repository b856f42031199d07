package service

// MaxPerPage bounds every paginated listing
const MaxPerPage = 50

// MaxPage keeps the row offset well inside int range
const MaxPage = 100000

// PageMeta describes one page of a paginated listing
type PageMeta struct {
	CurrentPage int   `json:"current_page" example:"1"`
	PerPage     int   `json:"per_page" example:"15"`
	Total       int64 `json:"total" example:"42"`
	LastPage    int   `json:"last_page" example:"3"`
}

// normalizePage clamps page to [1, MaxPage] and perPage to [1, MaxPerPage], substituting
// defaultPerPage for non-positive values. It returns the clamped values and the row offset.
func normalizePage(page, perPage, defaultPerPage int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage, (page - 1) * perPage
}

func newPageMeta(page, perPage int, total int64) PageMeta {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return PageMeta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}
