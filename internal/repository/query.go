package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no row matches the requested id or key.
var ErrNotFound = errors.New("record not found")

// ErrNoFields is returned when a partial update carries none of the
// resource's updatable columns.
var ErrNoFields = errors.New("no fields to update")

// whereBuilder accumulates AND-combined predicates with $n placeholders so
// every repository shares one numbering scheme instead of counting
// placeholders by hand in each query.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

// Eq adds an exact-match predicate unconditionally.
func (w *whereBuilder) Eq(column string, value interface{}) {
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

// EqFilter adds an exact-match predicate unless value is empty or the
// literal "all", which both mean "no filter".
func (w *whereBuilder) EqFilter(column, value string) {
	if value == "" || value == "all" {
		return
	}
	w.Eq(column, value)
}

// Cmp adds a comparison predicate (date/number bounds) when value is set.
func (w *whereBuilder) Cmp(column, op, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s %s $%d", column, op, len(w.args)))
}

// Search adds a case-insensitive substring match OR-combined over the
// given columns. Empty terms are skipped.
func (w *whereBuilder) Search(term string, columns ...string) {
	if term == "" {
		return
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		w.args = append(w.args, "%"+term+"%")
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, len(w.args))
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

// Clause renders " WHERE ..." or an empty string when nothing is active.
func (w *whereBuilder) Clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *whereBuilder) Args() []interface{} { return w.args }

// buildSet renders the SET clause of a partial update. Only columns present
// in fields are included, in the order given by allowed; keys outside
// allowed are ignored. Presence decides, not truthiness: an explicit null
// or empty string still updates its column.
func buildSet(fields map[string]interface{}, allowed []string) (string, []interface{}, error) {
	var set []string
	var args []interface{}
	for _, col := range allowed {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(set) == 0 {
		return "", nil, ErrNoFields
	}
	return strings.Join(set, ", "), args, nil
}
