package model

// Page is the paginated envelope returned by list endpoints.
// Number is the zero-based index of the current page.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	NumberOfElements int   `json:"numberOfElements"`
}

// PageRequest carries paging and sorting parameters for list operations.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

// Normalize applies defaults matching what the backend expects.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 20
	}
	return p
}
