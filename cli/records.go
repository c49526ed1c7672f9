package cli

import (
	"errors"
	"registro/config/setup"
	"registro/database"
	"registro/services"
	"strconv"

	"github.com/spf13/cobra"
)

func newRecordsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage stored records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all records in id order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withView(func(_ *database.Repository, view *services.RecordView) error {
				records := view.Snapshot().Records
				if e.jsonOut {
					return e.printJSON(records)
				}
				for _, r := range records {
					e.printf("%d\t%s\n", r.ID, r.Text)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a record",
		Example: `  registro records add "Comprar pan"
  registro records add "Llamar a Ana" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withView(func(_ *database.Repository, view *services.RecordView) error {
				record, err := view.Add(args[0])
				if record.ID == 0 {
					return recordError("add record", err)
				}
				if err != nil {
					e.logger.Warn("record added but reload failed", "id", record.ID, "error", err)
				}
				if e.jsonOut {
					return e.printJSON(record)
				}
				e.printf("Added record %d\n", record.ID)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace the text of a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withView(func(repo *database.Repository, view *services.RecordView) error {
				if _, err := view.EnterEdit(id); err != nil {
					return recordError("edit record", err)
				}
				if err := view.SaveText(args[1]); err != nil {
					return recordError("edit record", err)
				}
				if e.jsonOut {
					record, err := repo.Get(id)
					if err != nil {
						return sysError("read record: %w", err)
					}
					return e.printJSON(record)
				}
				e.printf("Updated record %d\n", id)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return e.withView(func(repo *database.Repository, view *services.RecordView) error {
				record, err := repo.Get(id)
				if err != nil {
					return sysError("read record: %w", err)
				}
				if record == nil {
					return userError("record %d not found", id)
				}
				if err := view.Delete(id); err != nil {
					return recordError("delete record", err)
				}
				e.printf("Deleted record %d\n", id)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withView(func(_ *database.Repository, view *services.RecordView) error {
				if err := view.ClearAll(); err != nil {
					return recordError("clear records", err)
				}
				e.printf("Cleared all records\n")
				return nil
			})
		},
	})

	return cmd
}

// withView opens the database, loads a record view and closes the database
// when fn returns
func (e *env) withView(fn func(repo *database.Repository, view *services.RecordView) error) error {
	db, err := setup.InitDatabase(e.cfg.DBPath, e.logger)
	if err != nil {
		return sysError("open database: %w", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	view := services.NewRecordView(repo, e.logger)
	if err := view.Load(); err != nil {
		return sysError("load records: %w", err)
	}

	return fn(repo, view)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, userError("invalid record id %q", s)
	}
	return id, nil
}

// recordError classifies a RecordView error as a user or system failure
func recordError(op string, err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyText),
		errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrNotEditing),
		errors.Is(err, services.ErrEditInProgress):
		return userError("%s: %w", op, err)
	default:
		return sysError("%s: %w", op, err)
	}
}
