package dbx

import (
	"fmt"
	"sort"
	"strings"
)

// BuildSparseUpdate renders a single-row UPDATE statement from a
// column → value map. Columns are validated against the allowed set and
// emitted in sorted order so the generated SQL is deterministic. The row id
// becomes the last placeholder. An empty fields map yields ok=false and no
// statement: the caller should skip the write entirely.
func BuildSparseUpdate(table string, fields map[string]string, allowed map[string]struct{}, id int64) (query string, args []any, ok bool, err error) {
	if len(fields) == 0 {
		return "", nil, false, nil
	}

	cols := make([]string, 0, len(fields))
	for c := range fields {
		if _, found := allowed[c]; !found {
			return "", nil, false, fmt.Errorf("column %q not allowed for update on %s", c, table)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)

	set := make([]string, 0, len(cols))
	args = make([]any, 0, len(cols)+1)
	for i, c := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", c, i+1))
		args = append(args, fields[c])
	}
	args = append(args, id)

	query = fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(set, ", "), len(cols)+1)
	return query, args, true, nil
}
