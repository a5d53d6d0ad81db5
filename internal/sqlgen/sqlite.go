package sqlgen

import "strings"

func init() {
	Register(NewSQLite, "sqlite", "sqlite3")
}

var sqliteReserved = wordSet(`abort action add after all alter always analyze and as asc attach
autoincrement before begin between by cascade case cast check collate column commit conflict
constraint create cross current current_date current_time current_timestamp database default
deferrable deferred delete desc detach distinct do drop each else end escape except exclude
exclusive exists explain fail filter first following for foreign from full generated glob group
groups having if ignore immediate in index indexed initially inner insert instead intersect into
is isnull join key last left like limit match materialized natural no not nothing notnull null
nulls of offset on or order others outer over partition plan pragma preceding primary query raise
range recursive references regexp reindex release rename replace restrict returning right
rollback row rows savepoint select set table temp temporary then ties to transaction trigger
unbounded union unique update using vacuum values view virtual when where window with without`)

// ANSI keywords common to most engines; used for unknown profile types.
var ansiReserved = wordSet(`all alter and as between by case check column constraint create cross
default delete distinct drop else end exists false for foreign from full grant group having in
inner insert intersect into is join left like not null on or order outer primary references right
select set table then to true union unique update user using values when where with`)

// quotedDialect quotes with double quotes, doubling embedded ones.
type quotedDialect struct {
	name     string
	reserved map[string]bool
}

// NewSQLite returns the dialect used for sqlite and sqlite3 profiles.
func NewSQLite() Dialect {
	return quotedDialect{name: "sqlite", reserved: sqliteReserved}
}

// NewANSI returns the fallback dialect for profile types with no registration.
func NewANSI() Dialect {
	return quotedDialect{name: "ansi", reserved: ansiReserved}
}

func (d quotedDialect) Name() string { return d.name }

func (d quotedDialect) QuoteIdentifier(name string) string {
	if isPlain(name, d.reserved) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (quotedDialect) Validate(string) error { return nil }
