package dto

// ExportQuery is the status/featured subset of the listing filter: exports
// always cover the full filtered set, no search and no pagination.
type ExportQuery struct {
	Format   string `form:"format" validate:"required,oneof=csv json"`
	Status   string `form:"status" validate:"is-status-filter"`
	Featured string `form:"featured" validate:"omitempty,oneof=all true false"`
}

func (q *ExportQuery) StatusOrAll() string {
	if q.Status == "" {
		return "ALL"
	}
	return q.Status
}

func (q *ExportQuery) FeaturedFilter() *bool {
	switch q.Featured {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
