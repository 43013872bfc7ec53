package transfers

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"susos-migrate/internal/app/repository"
	"susos-migrate/internal/app/repository/mysql"
	"susos-migrate/internal/app/repository/sqlite"
	"susos-migrate/internal/app/transfer"
	"susos-migrate/internal/config"
	"susos-migrate/internal/logger"
)

var source string
var snapshot string
var batchConfig string

func init() {
	Cmd.Flags().StringVarP(&source, "source", "s", "mysql", "legacy data source: mysql or sqlite")
	Cmd.Flags().StringVarP(&snapshot, "snapshot", "f", "", "path to a SQLite snapshot of the gebruiker table (sqlite source only)")
	Cmd.Flags().StringVarP(&batchConfig, "batch-config", "c", "", "YAML file overriding the batch timestamp, description and lookup tables")
}

// Cmd represents the transfers command
var Cmd = &cobra.Command{
	Use:   "transfers",
	Short: "Generate SuDoSoS transfer seed statements from SuSOS balances",
	Long: `Generate SuDoSoS transfer seed statements from SuSOS balances

- Reads the legacy gebruiker table ordered by account label
- Prints a cleanup DELETE for the batch followed by one signed transfer
  insertion per qualifying account
- Malformed and excluded rows are counted on stderr, never printed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		log := logger.MustNewLogger(verbose)
		defer log.Sync()

		batch := config.DefaultBatch()
		if batchConfig != "" {
			var err error
			if batch, err = config.LoadBatch(batchConfig); err != nil {
				return err
			}
		}

		dao, err := openSource()
		if err != nil {
			return err
		}
		defer dao.Close()

		accounts, err := dao.FetchAccounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch legacy accounts: %w", err)
		}

		out := bufio.NewWriter(os.Stdout)
		summary, err := transfer.Generate(out, batch, accounts, log)
		if err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}

		fields := []zap.Field{
			zap.Int("rows", len(accounts)),
			zap.Int("emitted", summary.Emitted),
		}
		for verdict, count := range summary.Skipped {
			fields = append(fields, zap.Int("skipped: "+verdict.String(), count))
		}
		log.Info("transfer statement generation finished", fields...)
		return nil
	},
}

func openSource() (repository.AccountDAO, error) {
	switch source {
	case "mysql":
		cfg, err := config.SusosFromEnv()
		if err != nil {
			return nil, err
		}
		return mysql.Open(cfg)
	case "sqlite":
		if snapshot == "" {
			return nil, fmt.Errorf("--snapshot is required when --source=sqlite")
		}
		return sqlite.Open(snapshot)
	}
	return nil, fmt.Errorf("unknown source %q: expected mysql or sqlite", source)
}
