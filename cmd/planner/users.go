package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shift-planner/internal/models"
	"shift-planner/internal/store"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := a.store.Users()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tROLE\tCREATED")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Role, u.CreatedAt)
			}
			return w.Flush()
		},
	})

	var username, password, name, role string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a user that can sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.store.AddUser(username, password, name, models.Role(role))
			if err != nil {
				return err
			}
			cmd.Printf("added %s (%s), id %s\n", u.Name, u.Role, u.ID)
			return nil
		},
	}
	add.Flags().StringVar(&username, "username", "", "login username")
	add.Flags().StringVar(&password, "password", "", "login password")
	add.Flags().StringVar(&name, "name", "", "display name")
	add.Flags().StringVar(&role, "role", string(models.RoleWorker), "worker or admin")
	add.MarkFlagRequired("username")
	add.MarkFlagRequired("password")
	add.MarkFlagRequired("name")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "add-worker <name>",
		Short: "Add a worker without login credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.store.AddWorker(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("added worker %s, id %s\n", u.Name, u.ID)
			return nil
		},
	})

	var newName, newRole string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a user's name or role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd store.UserUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &newName
			}
			if cmd.Flags().Changed("role") {
				r := models.Role(newRole)
				upd.Role = &r
			}
			u, err := a.store.UpdateUser(args[0], upd)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("no user with id %s", args[0])
			}
			cmd.Printf("updated %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}
	update.Flags().StringVar(&newName, "name", "", "new display name")
	update.Flags().StringVar(&newRole, "role", "", "new role")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user and the user's shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.DeleteUser(args[0]); err != nil {
				return err
			}
			cmd.Println("deleted")
			return nil
		},
	})

	return cmd
}

func newWorkersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Inspect workers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, err := a.store.Workers()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED")
			for _, u := range workers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Name, u.CreatedAt)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats <id>",
		Short: "Show a worker's approved shifts and hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.store.UserByID(args[0])
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("no user with id %s", args[0])
			}
			stats, err := a.store.StatsForWorker(u.ID)
			if err != nil {
				return err
			}
			cmd.Printf("%s: %d approved shifts, %d hours\n", u.Name, stats.ShiftCount, stats.Hours)
			return nil
		},
	})

	return cmd
}
