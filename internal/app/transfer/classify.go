package transfer

import (
	"strconv"

	"susos-migrate/internal/app/model"
)

// sentinelAccount is a known broken legacy account that must never be
// migrated, whatever its balance says.
const sentinelAccount = "OUDESANNEVANDERLINDEN"

// reservedGewisBelow marks the block of low-numbered GEWIS accounts used for
// tests and board reservations in SuSOS.
const reservedGewisBelow = 1000

// Verdict is the outcome of classifying a legacy account row. The original
// script skipped rows by catching parse exceptions; naming each skip reason
// keeps the conditions independently testable and countable.
type Verdict int

const (
	Valid Verdict = iota
	Malformed
	ExcludedSentinel
	ExcludedReservedGewis
	ExcludedUnknownKind
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Malformed:
		return "malformed"
	case ExcludedSentinel:
		return "sentinel"
	case ExcludedReservedGewis:
		return "reserved gewis id"
	case ExcludedUnknownKind:
		return "unknown account kind"
	}
	return "invalid verdict"
}

// Classify decides whether a row produces a transfer statement. For valid
// rows it also returns the parsed account number.
//
// The sentinel is matched before the numeric parse so it is reported under
// its own name; since the literal is non-numeric the emitted output is
// identical either way.
func Classify(acc model.LegacyAccount) (int, Verdict) {
	number := acc.Number()

	if number == sentinelAccount {
		return 0, ExcludedSentinel
	}

	n, err := strconv.Atoi(number)
	if err != nil {
		return 0, Malformed
	}

	kind := acc.Kind()
	if kind == model.KindGewis && n < reservedGewisBelow {
		return 0, ExcludedReservedGewis
	}
	if kind == model.KindUnknown {
		return 0, ExcludedUnknownKind
	}

	return n, Valid
}
