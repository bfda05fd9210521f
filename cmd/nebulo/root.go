package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebulohub/mobile/core/session"
	"github.com/nebulohub/mobile/pkg/validate"
)

func newRootCmd() *cobra.Command {
	var a *app

	root := &cobra.Command{
		Use:           "nebulo",
		Short:         "Browse and rate startups on NebuloHub",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp()
			if err != nil {
				return err
			}
			a.manager.Restore(cmd.Context())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a != nil {
				a.close()
			}
		},
	}

	root.AddCommand(
		newLoginCmd(&a),
		newLogoutCmd(&a),
		newWhoamiCmd(&a),
		newRegisterCmd(&a),
		newStartupsCmd(&a),
		newSkillsCmd(&a),
		newRateCmd(&a),
	)

	return root
}

// requireAuth guards commands that hit protected endpoints.
func requireAuth(a *app) error {
	if !a.manager.IsAuthenticated() {
		return errors.New("not signed in: run 'nebulo login' first")
	}
	return nil
}

func newLoginCmd(a **app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validate.Email(email) {
				return errors.New("invalid email address")
			}

			err := (*a).manager.SignIn(cmd.Context(), session.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			current := (*a).manager.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (session valid until %s)\n",
				current.User.Name, current.ExpiresAt.Format("15:04:05"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*a).manager.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a **app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := (*a).manager.Current()
			if !current.IsAuthenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "anonymous")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> role=%s id=%s\nsession expires %s\n",
				current.User.Name, current.User.Email, current.User.Role,
				current.User.ExternalID, current.ExpiresAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func newRegisterCmd(a **app) *cobra.Command {
	var reg session.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (sign in afterward)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validate.Email(reg.Email) {
				return errors.New("invalid email address")
			}
			if !validate.Password(reg.Password) {
				return errors.New("password must be at least 8 characters with upper, lower, digit and symbol")
			}
			if !validate.CPF(reg.Identifier) {
				return errors.New("invalid CPF")
			}

			if err := (*a).manager.SignUp(cmd.Context(), reg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account created, sign in with 'nebulo login'")
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Identifier, "cpf", "", "CPF")
	cmd.Flags().StringVar(&reg.Name, "name", "", "full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password")
	cmd.Flags().StringVar(&reg.Role, "role", "user", "account role")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("cpf")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
