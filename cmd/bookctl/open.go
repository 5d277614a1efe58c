package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordclinic/bookctl/pkg/guard"
	"github.com/nordclinic/bookctl/pkg/types"
	"github.com/nordclinic/bookctl/pkg/workflow"
)

var openCmd = &cobra.Command{
	Use:   "open PATH",
	Short: "Navigate to a view the way the web client would",
	Long: `Resolve PATH through the route guard and render the resulting view.

Routes are guarded exactly like the web client's: asking for a dashboard
without a session redirects to /login, and a logged-in user asking for
/login is sent to their own dashboard instead.

Examples:
  bookctl open /
  bookctl open /dashboard
  bookctl open /admin`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	sess, err := sessions.Load()
	if err != nil {
		return err
	}

	path := args[0]
	decision := guard.Decide(sess, path)
	for decision.Action == guard.ActionRedirect {
		fmt.Printf("→ %s\n", decision.Path)
		decision = guard.Decide(sess, decision.Path)
	}
	if decision.Action == guard.ActionNotFound {
		return fmt.Errorf("no such view: %s", decision.Path)
	}

	return renderView(cmd, sess, decision.Path)
}

func renderView(cmd *cobra.Command, sess *types.Session, path string) error {
	switch path {
	case guard.PathDashboard:
		return renderPatientDashboard(cmd, sess)
	case guard.PathAdmin:
		return renderAdminDashboard(cmd, sess)
	case guard.PathLogin:
		fmt.Println("Not logged in. Run 'bookctl login' or 'bookctl register'.")
		return nil
	case guard.PathRegister:
		fmt.Println("Run 'bookctl register --name NAME --email EMAIL --password PASSWORD'.")
		return nil
	default:
		return fmt.Errorf("no such view: %s", path)
	}
}

// renderPatientDashboard mirrors the web client's patient view: open
// slots next to the user's own bookings, fetched together.
func renderPatientDashboard(cmd *cobra.Command, sess *types.Session) error {
	fmt.Printf("Patient Dashboard — welcome, %s\n\n", sess.User.Name)

	dash := workflow.NewDashboard(newAPIClient())
	if err := dash.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("%s", dash.State().Message)
	}
	state := dash.State()

	fmt.Println("Available slots (next 7 days):")
	printSlots(state.Slots)
	fmt.Println()
	fmt.Println("Your bookings:")
	printBookings(state.Bookings, false)
	return nil
}

func renderAdminDashboard(cmd *cobra.Command, sess *types.Session) error {
	fmt.Printf("Admin Dashboard — welcome, %s\n\n", sess.User.Name)

	bookings, err := newAPIClient().ListAllBookings(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("All bookings:")
	printBookings(bookings, true)
	return nil
}
