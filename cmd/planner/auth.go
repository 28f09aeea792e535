package main

import (
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Sign in and persist the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.SignIn(args[0], args[1]); err != nil {
				return err
			}
			u := a.session.CurrentUser()
			cmd.Printf("signed in as %s (%s)\n", u.Name, u.Role)
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.SignOut(); err != nil {
				return err
			}
			cmd.Println("signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.session.CurrentUser()
			if u == nil {
				cmd.Println("not signed in")
				return nil
			}
			cmd.Printf("%s (%s), id %s\n", u.Name, u.Role, u.ID)
			return nil
		},
	}
}
