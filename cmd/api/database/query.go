package database

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/library-service/cmd/api/query"
)

var dialect = goqu.Dialect("postgres")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// column is anything an example field can be matched against: a plain column or an expression over one.
type column interface {
	exp.Comparable
	exp.Likeable
}

/* Translates an example into where expressions. Containing fields become an ILIKE, exact ones an equality. */
func whereExample(filter query.Example, columns map[string]column) []exp.Expression {
	exprs := make([]exp.Expression, 0, len(filter.Fields()))
	for _, f := range filter.Fields() {
		col, ok := columns[f.Column]
		if !ok {
			continue
		}
		switch f.Mode {
		case query.Exact:
			exprs = append(exprs, col.Eq(f.Value))
		default:
			exprs = append(exprs, col.ILike("%"+likeEscaper.Replace(f.Value)+"%"))
		}
	}
	return exprs
}
