package transfer

import (
	"fmt"

	"susos-migrate/internal/config"
)

// Statement is one transfer insertion before rendering. Exactly one of
// FromExpr/ToExpr is "NULL"; the other is a correlated column reference on
// the lookup table.
type Statement struct {
	FromExpr  string
	ToExpr    string
	Amount    int
	Table     string
	Alias     string
	Predicate string
}

// Cleanup renders the statement that removes a previously seeded batch, so
// the generated file stays safe to apply more than once.
func Cleanup(b config.Batch) string {
	return fmt.Sprintf("DELETE FROM transfer where createdAt='%s';", b.Timestamp)
}

// SQL renders the insert-select in the exact grammar the SuDoSoS operators
// review: a single line, version 0, both audit timestamps set to the batch
// timestamp.
func (s Statement) SQL(b config.Batch) string {
	return fmt.Sprintf("insert into transfer(`version`, createdAt, updatedAt, fromId, toId, amount, description) SELECT 0, '%s', '%s', %s, %s, %d, '%s' FROM %s AS %s WHERE %s;",
		b.Timestamp, b.Timestamp, s.FromExpr, s.ToExpr, s.Amount, b.Description, s.Table, s.Alias, s.Predicate)
}
