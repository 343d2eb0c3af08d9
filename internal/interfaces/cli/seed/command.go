package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/incidentdesk/incidentdesk/internal/infrastructure/config"
	"github.com/incidentdesk/incidentdesk/internal/infrastructure/database"
	seedfile "github.com/incidentdesk/incidentdesk/internal/infrastructure/seed"
	httpRouter "github.com/incidentdesk/incidentdesk/internal/interfaces/http"
	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the administrator, default zones and seed data",
		Long: `Create the administrator account and the configured default zones when they
are missing, then apply an optional YAML file of zones and users.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file with zones and users")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	// Parse before touching the database so a bad file changes nothing.
	var seed *seedfile.File
	if file != "" {
		if seed, err = seedfile.Load(file); err != nil {
			return err
		}
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx := cmd.Context()
	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	if err := container.Bootstrap(ctx); err != nil {
		return err
	}

	if seed != nil {
		if err := container.ApplySeed(ctx, seed); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Seed completed")
	return nil
}
