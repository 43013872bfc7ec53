package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"susos-migrate/cmd/s2s/cmd/transfers"
	"susos-migrate/cmd/s2s/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "s2s",
	Short: "One-off migration tooling from SuSOS to SuDoSoS",
	Long: `One-off migration tooling from the legacy SuSOS point-of-sale system
to SuDoSoS. The generated SQL is printed to stdout and reviewed by a database
administrator before execution; nothing is written to the target database.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transfers.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
