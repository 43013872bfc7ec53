package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"susos-migrate/internal/app/model"
)

// SnapshotDB reads legacy accounts from an offline SQLite dump of the SuSOS
// gebruiker table, for dry runs without access to the production host.
type SnapshotDB struct {
	db *sql.DB
}

func Open(path string) (*SnapshotDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	return &SnapshotDB{db: db}, nil
}

// openReadWrite is used by tests to seed an in-memory snapshot.
func openReadWrite(dsn string) (*SnapshotDB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	return &SnapshotDB{db: db}, nil
}

func (s *SnapshotDB) Close() error {
	return s.db.Close()
}

func (s *SnapshotDB) FetchAccounts(ctx context.Context) ([]model.LegacyAccount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, gebruikersnaam, saldo, boete FROM gebruiker ORDER BY gebruikersnaam ASC`)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var accounts []model.LegacyAccount

	for rows.Next() {
		var a model.LegacyAccount
		if err := rows.Scan(&a.ID, &a.Label, &a.Balance, &a.Fine); err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return accounts, nil
}
