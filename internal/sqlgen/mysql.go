package sqlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver" // registers the value expression driver the parser needs
)

func init() {
	Register(NewMySQL, "mysql", "mariadb", "tidb")
}

// mysqlReserved holds every word the parser refuses as a bare identifier.
var mysqlReserved = func() map[string]bool {
	set := make(map[string]bool, len(parser.Keywords))
	for _, kw := range parser.Keywords {
		if kw.Reserved {
			set[strings.ToLower(kw.Word)] = true
		}
	}
	return set
}()

type mysqlDialect struct {
	p *parser.Parser
}

// NewMySQL returns the dialect used for mysql, mariadb and tidb profiles.
func NewMySQL() Dialect {
	return &mysqlDialect{p: parser.New()}
}

func (*mysqlDialect) Name() string { return "mysql" }

func (*mysqlDialect) QuoteIdentifier(name string) string {
	if isPlain(name, mysqlReserved) {
		return name
	}
	name = strings.ReplaceAll(name, "`", "``")
	return "`" + name + "`"
}

// Validate parses stmt and requires exactly one ALTER TABLE ... ADD COLUMN.
func (d *mysqlDialect) Validate(stmt string) error {
	nodes, _, err := d.p.Parse(stmt, "", "")
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(nodes) != 1 {
		return fmt.Errorf("expected 1 statement, got %d", len(nodes))
	}
	alter, ok := nodes[0].(*ast.AlterTableStmt)
	if !ok {
		return errors.New("not an ALTER TABLE statement")
	}
	for _, spec := range alter.Specs {
		if spec.Tp != ast.AlterTableAddColumns {
			return fmt.Errorf("unexpected ALTER TABLE clause %v", spec.Tp)
		}
	}
	return nil
}
