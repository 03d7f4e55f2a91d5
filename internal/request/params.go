package request

import "strconv"

// ListParams are the query parameters of the paginated list endpoints.
type ListParams struct {
	Page     int
	PageSize int
	Sort     SortState
	Search   string
	Status   *Status
	Language string
}

// Query renders the parameters as the backend's query string keys.
func (p ListParams) Query() map[string]string {
	query := map[string]string{
		"pageNumber": strconv.Itoa(p.Page),
		"pageSize":   strconv.Itoa(p.PageSize),
	}

	if active, exists := p.Sort.Active(); exists {
		query["orderByColumn"] = active.Key
		query["orderDirection"] = active.Order.Param()
	}
	if p.Search != "" {
		query["searchText"] = p.Search
	}
	if p.Status != nil {
		query["statusId"] = strconv.Itoa(int(*p.Status))
	}
	if p.Language != "" {
		query["Language"] = p.Language
	}

	return query
}
