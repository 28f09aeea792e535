package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shift-planner/internal/models"
	"shift-planner/internal/store"
)

func newAbsencesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "absences",
		Short: "Manage absence reports",
	}

	var shiftID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List absences, optionally for one shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				absences []models.Absence
				err      error
			)
			if shiftID != "" {
				absences, err = a.store.AbsencesByShift(shiftID)
			} else {
				absences, err = a.store.Absences()
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSHIFT\tSTATUS\tREPLACEMENT\tREASON")
			for _, ab := range absences {
				repl := "-"
				if ab.ReplacementUserID != nil {
					repl = *ab.ReplacementUserID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ab.ID, ab.ShiftID, ab.Status, repl, ab.Reason)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&shiftID, "shift", "", "only absences for this shift id")
	cmd.AddCommand(list)

	var replacement string
	add := &cobra.Command{
		Use:   "add <shift-id> <reason>",
		Short: "Report an absence for a shift",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ab, err := a.store.AddAbsence(args[0], args[1], replacement)
			if err != nil {
				return err
			}
			cmd.Printf("added absence %s (%s)\n", ab.ID, ab.Status)
			return nil
		},
	}
	add.Flags().StringVar(&replacement, "replacement", "", "id of the replacement worker")
	cmd.AddCommand(add)

	var newStatus, newReason, newReplacement string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change an absence's status, reason or replacement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd store.AbsenceUpdate
			if cmd.Flags().Changed("status") {
				st := models.RequestStatus(newStatus)
				upd.Status = &st
			}
			if cmd.Flags().Changed("reason") {
				upd.Reason = &newReason
			}
			if cmd.Flags().Changed("replacement") {
				upd.ReplacementUserID = &newReplacement
			}
			ab, err := a.store.UpdateAbsence(args[0], upd)
			if err != nil {
				return err
			}
			if ab == nil {
				return fmt.Errorf("no absence with id %s", args[0])
			}
			cmd.Printf("updated absence %s (%s)\n", ab.ID, ab.Status)
			return nil
		},
	}
	update.Flags().StringVar(&newStatus, "status", "", "new status")
	update.Flags().StringVar(&newReason, "reason", "", "new reason")
	update.Flags().StringVar(&newReplacement, "replacement", "", "new replacement worker id, empty to clear")
	cmd.AddCommand(update)

	return cmd
}
