package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"susos-migrate/internal/app/model"
	"susos-migrate/internal/app/repository"
)

func TestSnapshotDB_Interface(t *testing.T) {
	var _ repository.AccountDAO = (*SnapshotDB)(nil)
}

func TestSnapshotDB_FetchAccounts(t *testing.T) {
	snap, err := openReadWrite(":memory:")
	require.NoError(t, err)
	defer snap.Close()

	_, err = snap.db.Exec(`CREATE TABLE gebruiker (
		id INTEGER PRIMARY KEY,
		gebruikersnaam TEXT,
		saldo REAL,
		boete REAL
	)`)
	require.NoError(t, err)

	// Inserted out of label order; the fetch must sort ascending.
	_, err = snap.db.Exec(`INSERT INTO gebruiker (id, gebruikersnaam, saldo, boete) VALUES
		(42, 'g2500', 10.00, 2.50),
		(7, 'e7', -5.00, 0.00)`)
	require.NoError(t, err)

	accounts, err := snap.FetchAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.LegacyAccount{
		{ID: 7, Label: "e7", Balance: -5.00, Fine: 0.00},
		{ID: 42, Label: "g2500", Balance: 10.00, Fine: 2.50},
	}, accounts)
}

func TestSnapshotDB_MissingTable(t *testing.T) {
	snap, err := openReadWrite(":memory:")
	require.NoError(t, err)
	defer snap.Close()

	_, err = snap.FetchAccounts(context.Background())
	assert.ErrorContains(t, err, "query failed")
}
