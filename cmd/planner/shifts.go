package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"shift-planner/internal/models"
	"shift-planner/internal/store"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (string, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return s, nil
}

func printJoinedShifts(cmd *cobra.Command, shifts []models.ShiftWithUser) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tSTATUS\tWORKER")
	for _, sh := range shifts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", sh.ID, sh.Date, sh.ShiftType, sh.Status, sh.Users.Name)
	}
	return w.Flush()
}

func newShiftsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shifts",
		Short: "Manage shifts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shifts with their workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := a.store.ShiftsWithUsers()
			if err != nil {
				return err
			}
			return printJoinedShifts(cmd, shifts)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pending",
		Short: "List shift requests waiting for a decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shifts, err := a.store.PendingShifts()
			if err != nil {
				return err
			}
			return printJoinedShifts(cmd, shifts)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "for-date <date>",
		Short: "List the shifts scheduled on one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return err
			}
			shifts, err := a.store.ShiftsForDate(date)
			if err != nil {
				return err
			}
			return printJoinedShifts(cmd, shifts)
		},
	})

	var status string
	add := &cobra.Command{
		Use:   "add <user-id> <date> <type>",
		Short: "Schedule a shift",
		Long: `Schedule a shift of type 1, 2 or 3 for a worker.

Without --status, shifts added by a signed-in administrator are approved
immediately; everyone else's requests start out pending.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[1])
			if err != nil {
				return err
			}
			st := models.RequestStatus(status)
			if st == "" {
				st = models.StatusPending
				if u := a.session.CurrentUser(); u != nil && u.IsAdmin() {
					st = models.StatusApproved
				}
			}
			sh, err := a.store.AddShift(args[0], date, models.ShiftType(args[2]), st)
			if err != nil {
				return err
			}
			cmd.Printf("added shift %s on %s (%s)\n", sh.ID, sh.Date, sh.Status)
			return nil
		},
	}
	add.Flags().StringVar(&status, "status", "", "pending, approved or rejected")
	cmd.AddCommand(add)

	var newStatus, newType, newDate string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a shift's status, type or date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd store.ShiftUpdate
			if cmd.Flags().Changed("status") {
				st := models.RequestStatus(newStatus)
				upd.Status = &st
			}
			if cmd.Flags().Changed("type") {
				tp := models.ShiftType(newType)
				upd.ShiftType = &tp
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(newDate)
				if err != nil {
					return err
				}
				upd.Date = &date
			}
			sh, err := a.store.UpdateShift(args[0], upd)
			if err != nil {
				return err
			}
			if sh == nil {
				return fmt.Errorf("no shift with id %s", args[0])
			}
			cmd.Printf("updated shift %s: %s %s %s\n", sh.ID, sh.Date, sh.ShiftType, sh.Status)
			return nil
		},
	}
	update.Flags().StringVar(&newStatus, "status", "", "new status")
	update.Flags().StringVar(&newType, "type", "", "new shift type")
	update.Flags().StringVar(&newDate, "date", "", "new date")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a shift and its absences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteShift(args[0]); err != nil {
				return err
			}
			cmd.Println("deleted")
			return nil
		},
	})

	return cmd
}
