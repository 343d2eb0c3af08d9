package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/incidentdesk/incidentdesk/internal/interfaces/cli/migrate"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/cli/seed"
	"github.com/incidentdesk/incidentdesk/internal/interfaces/cli/server"
	"github.com/incidentdesk/incidentdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "incidentdesk",
		Short:   "incidentdesk - facility incident ticketing",
		Long:    `incidentdesk tracks incident tickets reported across facility zones, with comment threads and closure notifications.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
