package models

// Pagination summarizes a paginated listing for the client.
type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ProductPage is the response shape of the paginated product listings.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes the pagination summary for a listing of total
// documents viewed through the given page and limit. TotalPages is the
// ceiling of total/limit.
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return Pagination{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1,
	}
}
