package repository

import (
	"context"

	"susos-migrate/internal/app/model"
)

// AccountDAO supplies the legacy account rows. Implementations must return
// the rows sorted ascending by account label so the generated SQL is
// reproducible across runs.
type AccountDAO interface {
	Close() error

	FetchAccounts(ctx context.Context) ([]model.LegacyAccount, error)
}
