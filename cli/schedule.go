package cli

import (
	"context"
	"errors"
	"registro/export"
	"registro/models"
	"registro/schedule"
	"registro/services"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newScheduleCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Fetch class schedules",
	}

	var (
		controlNumber string
		password      string
		pdf           bool
		html          bool
	)

	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the schedule for a control number",
		Long: `Fetch requests the class schedule from the schedule API using the control
number and password as Basic credentials. The result is printed as a table,
as JSON with --json or as an HTML document with --html. With --pdf the
schedule is also written to horarios.pdf in the export directory.`,
		Example: `  registro schedule fetch --control 20210001 --password secreto
  registro schedule fetch --control 20210001 --password secreto --pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := services.NewScheduleService(
				schedule.NewClient(e.cfg.ScheduleAPIURL, e.cfg.ScheduleTimeout),
				export.NewPDFExporter(e.cfg.ExportDir),
				e.logger,
			)

			entries, err := service.Load(controlNumber, password)
			if err != nil {
				if errors.Is(err, services.ErrMissingCredentials) || errors.Is(err, services.ErrInvalidCredentials) {
					return userError("fetch schedule: %w", err)
				}
				return sysError("%w", err)
			}

			switch {
			case e.jsonOut:
				if err := e.printJSON(entries); err != nil {
					return err
				}
			case html:
				if err := service.RenderHTML(context.Background(), e.out); err != nil {
					return sysError("render schedule: %w", err)
				}
			default:
				if err := e.printScheduleTable(entries); err != nil {
					return err
				}
			}

			if pdf {
				path, err := service.Export()
				if err != nil {
					return sysError("%w", err)
				}
				e.logger.Info("schedule exported", "path", path)
				if !e.jsonOut && !html {
					e.printf("PDF written to %s\n", path)
				}
			}
			return nil
		},
	}

	fetch.Flags().StringVar(&controlNumber, "control", "", "student control number (required)")
	fetch.Flags().StringVar(&password, "password", "", "schedule API password (required)")
	fetch.Flags().BoolVar(&pdf, "pdf", false, "also export the schedule to PDF")
	fetch.Flags().BoolVar(&html, "html", false, "print the schedule as an HTML document")
	_ = fetch.MarkFlagRequired("control")
	_ = fetch.MarkFlagRequired("password")

	cmd.AddCommand(fetch)
	return cmd
}

func (e *env) printScheduleTable(entries []models.ScheduleEntry) error {
	w := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	w.Write([]byte(strings.Join(models.ScheduleColumns, "\t") + "\n"))
	for _, entry := range entries {
		w.Write([]byte(strings.Join(entry.Cells(), "\t") + "\n"))
	}
	if err := w.Flush(); err != nil {
		return sysError("write output: %w", err)
	}
	return nil
}
