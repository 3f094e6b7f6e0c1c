package main

import (
	"bytes"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/pasajeros/internal/export"
	"github.com/mmynk/pasajeros/internal/query"
)

var (
	exportFormat string
	exportOut    string
	exportSearch string
	exportFilter query.Filters
	exportPaid   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the passenger list as CSV, text, summary or PDF",
	Long: `Exports the records matching the given search and filters.

Formats:
  - csv:     one row per passenger
  - text:    detailed listing
  - summary: one line per passenger, for sharing in chat apps
  - pdf:     printable manifest with totals`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		filters := exportFilter
		if filters.PaidStatus, err = query.ParsePaidStatus(exportPaid); err != nil {
			return err
		}

		store, kv, err := openStore(cmd.Context(), nil)
		if err != nil {
			return err
		}
		defer kv.Close()

		view := query.FilterRecords(store.ListRecords(cmd.Context()), exportSearch, filters)

		now := time.Now()
		var buf bytes.Buffer
		if err := export.Render(&buf, format, view, now); err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = export.FileName(format, now)
		}
		return writeOutput(cmd, out, buf.Bytes())
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportFormat, "format", "f", "csv", "csv, text, summary or pdf")
	f.StringVarP(&exportOut, "out", "o", "", "output file, - for stdout (default depends on format)")
	f.StringVar(&exportSearch, "search", "", "free-text search")
	f.StringVar(&exportFilter.Name, "name", "", "name contains")
	f.StringVar(&exportFilter.Date, "date", "", "trip date (YYYY-MM-DD)")
	f.StringVar(&exportFilter.Destination, "destination", "", "exact destination")
	f.StringVar(&exportPaid, "paid", "all", "all, paid or unpaid")
}
