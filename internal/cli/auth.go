package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sakif/notekeeper/internal/client"
	"github.com/sakif/notekeeper/internal/validate"
)

func newSignupCmd(a *app) *cobra.Command {
	var (
		name            string
		email           string
		password        string
		confirmPassword string
		phone           string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate everything before the network is touched, and report
			// every violation at once — nobody wants to fix the form one
			// field per attempt.
			violations := validate.Signup(validate.SignupInput{
				Name:            name,
				Email:           email,
				Password:        password,
				ConfirmPassword: confirmPassword,
				Phone:           phone,
			})
			if len(violations) > 0 {
				fields := make([]string, 0, len(violations))
				for field := range violations {
					fields = append(fields, field)
				}
				sort.Strings(fields)

				for _, field := range fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", field, violations[field])
				}
				return fmt.Errorf("signup aborted: %d validation problem(s)", len(violations))
			}

			result, err := a.client.Signup(cmd.Context(), client.SignupParams{
				Name:     name,
				Email:    email,
				Password: password,
				Phone:    phone,
			})
			if err != nil {
				return renderError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s <%s>. You are now logged in.\n",
				result.User.Name, result.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (min 8 chars, upper + lower + digit)")
	cmd.Flags().StringVar(&confirmPassword, "confirm-password", "", "repeat the password to catch typos")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (optional)")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return renderError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>.\n", result.User.Name, result.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Long: `Logout discards the locally stored session token. It works offline —
the server holds no session state, so there is nothing to tell it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.client.Profile(cmd.Context())
			if err != nil {
				return renderError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:   %s\n", user.Name)
			fmt.Fprintf(out, "Email:  %s\n", user.Email)
			if user.Phone != "" {
				fmt.Fprintf(out, "Phone:  %s\n", user.Phone)
			}
			fmt.Fprintf(out, "Member since: %s\n", user.CreatedAt.Format("2 Jan 2006"))
			return nil
		},
	}
}
