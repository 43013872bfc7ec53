package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"susos-migrate/internal/app/model"
	"susos-migrate/internal/config"
)

// fetchQuery names the positional columns the legacy schema exposes: id,
// gebruikersnaam (account label), saldo (balance), boete (fine).
const fetchQuery = `SELECT id, gebruikersnaam, saldo, boete FROM gebruiker ORDER BY gebruikersnaam ASC`

type SusosDB struct {
	db *sql.DB
}

func Open(cfg *config.Susos) (*SusosDB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open susos database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach susos database at %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return &SusosDB{db: db}, nil
}

func (s *SusosDB) Close() error {
	return s.db.Close()
}

func (s *SusosDB) FetchAccounts(ctx context.Context) ([]model.LegacyAccount, error) {
	rows, err := s.db.QueryContext(ctx, fetchQuery)
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
