package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/pasajeros/internal/config"
	"github.com/mmynk/pasajeros/pkg/logging"
)

var (
	// Global flags
	configPath string

	// Loaded in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pasajeros",
	Short: "Passenger log for a shared-ride route",
	Long: `pasajeros keeps the passenger log of a shared-ride service: who travels,
where they are picked up, what they owe and whether they paid.

Run "pasajeros serve" to start the RPC server and web UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			configPath = os.Getenv("PASAJEROS_CONFIG")
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logging.SetupWith(logging.ParseLevel(cfg.Logging.Level), logging.ParseFormat(cfg.Logging.Format))
		slog.Debug("Configuration loaded", "config", configPath, "backend", cfg.Storage.Backend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file (default $PASAJEROS_CONFIG)")

	rootCmd.AddCommand(serveCmd, backupCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
