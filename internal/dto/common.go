package dto

// PaginationParams defines the page-based query parameters shared by list endpoints.
type PaginationParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// Normalize clamps the parameters to sane values.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset converts the page number to a row offset.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
