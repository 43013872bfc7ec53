package main

import (
	"fmt"
	"os"

	"susos-migrate/cmd/s2s/cmd"
	"susos-migrate/internal/config"
)

func main() {
	// Credentials come from .env or the environment; a missing file is fine,
	// the transfers command fails later if the password is actually needed.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
