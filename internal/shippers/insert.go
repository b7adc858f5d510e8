package shippers

import (
	"fmt"
	"strings"

	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

// fieldGroup pairs an ordered column list with its bound parameters. Column
// names come only from the fixed allowlists below, never from caller input;
// caller values travel exclusively as bound parameters.
type fieldGroup struct {
	columns []string
	params  []any
}

func (g fieldGroup) append(other fieldGroup) fieldGroup {
	return fieldGroup{
		columns: append(append([]string{}, g.columns...), other.columns...),
		params:  append(append([]any{}, g.params...), other.params...),
	}
}

// buildInsert constructs a parameterized INSERT over the accumulated columns.
// Before returning it asserts placeholders and parameters line up; a mismatch
// means a builder bug, so it fails rather than executing a skewed statement.
func buildInsert(table string, group fieldGroup) (string, []any, error) {
	if len(group.columns) == 0 {
		return "", nil, pkgerrors.New(pkgerrors.CodeInternal, "insert builder: no columns")
	}
	if len(group.columns) != len(group.params) {
		return "", nil, pkgerrors.New(
			pkgerrors.CodeInternal,
			fmt.Sprintf("insert builder: %d columns but %d parameters", len(group.columns), len(group.params)),
		)
	}

	placeholders := make([]string, len(group.columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	statement := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table,
		strings.Join(group.columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if strings.Count(statement, "?") != len(group.params) {
		return "", nil, pkgerrors.New(
			pkgerrors.CodeInternal,
			fmt.Sprintf("insert builder: %d placeholders but %d parameters", strings.Count(statement, "?"), len(group.params)),
		)
	}
	return statement, group.params, nil
}
