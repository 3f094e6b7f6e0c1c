package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/pasajeros/internal/service"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or restore a full backup (records, locations, settings)",
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup bundle",
	Long: `Writes the records, location data and settings as one JSON bundle.
Use --out - to write to standard output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, kv, err := openStore(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer kv.Close()

		data, err := store.ExportBundle(cmd.Context())
		if err != nil {
			return err
		}

		out := backupOut
		if out == "" {
			out = service.BackupFileName(time.Now())
		}
		return writeOutput(cmd, out, data)
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a backup bundle",
	Long: `Restores a bundle written by "backup export". Records, locations and
settings present in the bundle replace the stored ones; anything missing from
the bundle is kept. Nothing is written if the bundle is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}

		store, kv, err := openStore(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer kv.Close()

		if !store.ImportBundle(cmd.Context(), data) {
			return fmt.Errorf("%s is not a valid backup", args[0])
		}
		slog.Info("Backup imported", "file", args[0], "records", len(store.ListRecords(cmd.Context())))
		return nil
	},
}

func init() {
	backupExportCmd.Flags().StringVarP(&backupOut, "out", "o", "", "output file (default backup_pasajeros_<date>.json)")
	backupCmd.AddCommand(backupExportCmd, backupImportCmd)
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d bytes)\n", path, len(data))
	return nil
}
