package postgres

import (
	"fmt"
	"strings"
	"time"
)

// whereBuilder collects conjunctive conditions with positional arguments.
// Each helper skips its condition when the value is the zero value, so an
// unset filter field never constrains the query.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) eqString(col, v string) {
	if v == "" {
		return
	}
	w.add(col+" = $%d", v)
}

func (w *whereBuilder) eqInt(col string, v int64) {
	if v == 0 {
		return
	}
	w.add(col+" = $%d", v)
}

func (w *whereBuilder) after(col string, t time.Time) {
	if t.IsZero() {
		return
	}
	w.add(col+" > $%d", t)
}

// clause renders "WHERE ..." or an empty string when no condition was added.
func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT/OFFSET placeholders after the filter arguments and
// returns the suffix together with the full argument list. The filter
// arguments themselves are left untouched for the count query.
func (w *whereBuilder) page(limit, offset int) (string, []any) {
	n := len(w.args)
	args := make([]any, 0, n+2)
	args = append(args, w.args...)
	args = append(args, limit, offset)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", n+1, n+2), args
}
