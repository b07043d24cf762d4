// FilePath: internal/models/models.table.go
package models

// TableRequest carries the query-string parameters of a table browse call.
// Decoded with gorilla/schema; zero page/pageSize mean "not provided".
type TableRequest struct {
	TableName string `schema:"tableName" json:"tableName"`
	Page      int    `schema:"page" json:"page"`
	PageSize  int    `schema:"pageSize" json:"pageSize"`
	Filter    string `schema:"filter" json:"filter"`
	SortBy    string `schema:"sortBy" json:"sortBy"`
	SortOrder string `schema:"sortOrder" json:"sortOrder"`
}

// TableMeta describes the page that was returned.
type TableMeta struct {
	TotalRows   int64  `json:"totalRows"`
	TotalPages  int64  `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
	TableName   string `json:"tableName"`
	Filter      string `json:"filter"`
	SortBy      string `json:"sortBy,omitempty"`
	SortOrder   string `json:"sortOrder"`
}

// TablePage is one page of rows plus its pagination metadata.
type TablePage struct {
	Data []map[string]interface{} `json:"data"`
	Meta TableMeta                `json:"meta"`
}
