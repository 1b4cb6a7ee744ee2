package types

// TableQuery — параметри табличного подання колекції.
// http://localhost:8080/api/needs?search=Ноутбук&period=week&location=2&sort=quantity&dir=desc&page=1&limit=25
type TableQuery struct {
	Search     string `json:"search,omitempty"`
	Period     string `json:"period,omitempty"`
	LocationID uint64 `json:"location_id,omitempty"`
	SortField  string `json:"sort,omitempty"`
	SortDesc   bool   `json:"desc,omitempty"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// Pagination — метадані пагінації у відповіді.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}
