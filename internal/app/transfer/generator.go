package transfer

import (
	"fmt"
	"io"
	"math"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"susos-migrate/internal/app/model"
	"susos-migrate/internal/config"
)

// Summary tallies what a generator run did with its input, so suppressed
// rows are visible instead of silently lost.
type Summary struct {
	Emitted int
	Skipped map[Verdict]int
}

// NetCents converts a balance/fine pair into minor currency units. The cent
// value is rounded half away from zero: the float subtraction routinely
// lands on values like 114.99999999999999, and truncation would drift a cent
// low on those.
func NetCents(balance, fine float64) int {
	return int(math.Round((balance - fine) * 100))
}

// Generate writes the cleanup statement followed by one transfer insertion
// per qualifying row, in input order. It never touches a database; the
// output is executed later by an operator.
func Generate(w io.Writer, b config.Batch, accounts []model.LegacyAccount, log *zap.Logger) (Summary, error) {
	summary := Summary{}

	if _, err := fmt.Fprintln(w, Cleanup(b)); err != nil {
		return summary, fmt.Errorf("write cleanup statement: %w", err)
	}

	verdicts := make([]Verdict, 0, len(accounts))
	for _, acc := range accounts {
		number, verdict := Classify(acc)
		verdicts = append(verdicts, verdict)
		if verdict != Valid {
			log.Debug("skipping legacy account",
				zap.Int("id", acc.ID),
				zap.String("label", acc.Label),
				zap.String("reason", verdict.String()))
			continue
		}

		stmt := buildStatement(b, acc, number)
		if _, err := fmt.Fprintln(w, stmt.SQL(b)); err != nil {
			return summary, fmt.Errorf("write transfer statement for account %d: %w", acc.ID, err)
		}
		summary.Emitted++
	}

	summary.Skipped = lo.CountValues(lo.Filter(verdicts, func(v Verdict, _ int) bool {
		return v != Valid
	}))

	return summary, nil
}

// buildStatement resolves the counterparty and direction for a valid row.
// A non-negative net amount means the account is owed money and receives the
// transfer; a negative one means the account owes the system and funds it.
func buildStatement(b config.Batch, acc model.LegacyAccount, number int) Statement {
	var s Statement
	var counterparty string

	switch acc.Kind() {
	case model.KindGewis:
		counterparty = fmt.Sprintf("%s.userId", b.GewisAlias)
		s.Table = b.GewisTable
		s.Alias = b.GewisAlias
		s.Predicate = fmt.Sprintf("%s.gewisId = %d", b.GewisAlias, number)
	case model.KindExternal:
		counterparty = fmt.Sprintf("%s.id", b.UserAlias)
		s.Table = b.UserTable
		s.Alias = b.UserAlias
		s.Predicate = fmt.Sprintf("%s.id = %d", b.UserAlias, acc.ID)
	}

	net := NetCents(acc.Balance, acc.Fine)
	if net >= 0 {
		s.FromExpr = "NULL"
		s.ToExpr = counterparty
		s.Amount = net
	} else {
		s.FromExpr = counterparty
		s.ToExpr = "NULL"
		s.Amount = -net
	}

	return s
}
