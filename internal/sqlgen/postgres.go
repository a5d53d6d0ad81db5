package sqlgen

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

func init() {
	Register(NewPostgres, "postgres", "postgresql", "pg")
}

// Keywords PostgreSQL refuses as bare column or table names: the reserved
// list plus the type_func_name keywords.
var postgresReserved = wordSet(`all analyse analyze and any array as asc asymmetric both case cast
check collate column constraint create current_catalog current_date current_role current_time
current_timestamp current_user default deferrable desc distinct do else end except false fetch for
foreign from grant group having in initially intersect into lateral leading limit localtime
localtimestamp not null offset on only or order placing primary references returning select
session_user some symmetric system_user table then to trailing true union unique user using
variadic when where window with
authorization binary collation concurrently cross current_schema freeze full ilike inner is
isnull join left like natural notnull outer overlaps right similar tablesample verbose`)

type postgres struct{}

// NewPostgres returns the dialect used for postgres, postgresql and pg profiles.
func NewPostgres() Dialect { return postgres{} }

func (postgres) Name() string { return "postgresql" }

// QuoteIdentifier keeps lower-case plain names bare; PostgreSQL folds unquoted
// names to lower case, so mixed-case names are quoted to preserve them.
func (postgres) QuoteIdentifier(name string) string {
	if isPlain(name, postgresReserved) && name == strings.ToLower(name) {
		return name
	}
	return pgx.Identifier{name}.Sanitize()
}

func (postgres) Validate(string) error { return nil }
