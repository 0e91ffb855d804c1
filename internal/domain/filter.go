package domain

// TaskFilter is a conjunctive exact-match constraint set for task listing
// queries. Nil fields are unconstrained; the query matches tasks that
// equal every non-nil field.
type TaskFilter struct {
	Project  *string
	Name     *string
	Status   *string
	Username *string
}

// IsEmpty reports whether the filter constrains nothing at all.
func (f TaskFilter) IsEmpty() bool {
	return f.Project == nil && f.Name == nil && f.Status == nil && f.Username == nil
}
