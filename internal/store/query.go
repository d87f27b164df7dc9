package store

import "fmt"

// Query carries list pagination and ordering options parsed from
// request parameters.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Normalize fills zero-valued fields from defaults and clamps the page
// size to maxLimit. Page values below 1 are passed through unchanged;
// the resulting negative offset is ignored by the database layer.
func (q Query) Normalize(defaults Query, maxLimit int) Query {
	if q.Page == 0 {
		q.Page = defaults.Page
	}
	if q.Limit <= 0 {
		q.Limit = defaults.Limit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.SortBy == "" {
		q.SortBy = defaults.SortBy
	}
	if q.SortOrder == "" {
		q.SortOrder = defaults.SortOrder
	}
	return q
}

// Offset returns the number of records to skip for the page window.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// OrderClause maps SortBy through the per-entity column whitelist and
// builds an ORDER BY clause with an id tiebreak for a stable order.
// Unknown sort fields fall back to defaultColumn. Any order other than
// "asc" sorts descending.
func (q Query) OrderClause(columns map[string]string, defaultColumn string) string {
	col, ok := columns[q.SortBy]
	if !ok {
		col = defaultColumn
	}
	dir := "DESC"
	if q.SortOrder == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s, id %s", col, dir, dir)
}
