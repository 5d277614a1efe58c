package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordclinic/bookctl/pkg/types"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session locally",
	Long: `Log in against the booking service and store the issued token and
user record locally.

Examples:
  bookctl login --email ana@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		client := newAPIClient()
		sess, err := client.Login(cmd.Context(), types.Credentials{Email: email, Password: password})
		if err != nil {
			return err
		}

		if err := sessions.Save(sess); err != nil {
			return fmt.Errorf("failed to store session: %v", err)
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", sess.User.Name, sess.User.Role)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a patient account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		client := newAPIClient()
		creds := types.Credentials{Email: email, Password: password}

		user, err := client.Register(cmd.Context(), name, creds)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Account created for %s\n", user.Email)

		// Registration issues no token; log in right away like the web
		// client does.
		sess, err := client.Login(cmd.Context(), creds)
		if err != nil {
			return err
		}
		if err := sessions.Save(sess); err != nil {
			return fmt.Errorf("failed to store session: %v", err)
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", sess.User.Name, sess.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sessions.Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %v", err)
		}
		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := sessions.Load()
		if err != nil {
			return err
		}
		if !sess.Valid() {
			fmt.Println("Not logged in. Run 'bookctl login' first.")
			return nil
		}

		fmt.Printf("%s <%s>\n", sess.User.Name, sess.User.Email)
		fmt.Printf("  Role: %s\n", sess.User.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Account email (required)")
	loginCmd.Flags().String("password", "", "Account password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().String("name", "", "Full name (required)")
	registerCmd.Flags().String("email", "", "Account email (required)")
	registerCmd.Flags().String("password", "", "Account password (required)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
