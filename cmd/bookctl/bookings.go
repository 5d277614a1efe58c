package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nordclinic/bookctl/pkg/types"
	"github.com/nordclinic/bookctl/pkg/workflow"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings",
	Long: `List your own bookings, or every booking with --all (admin only;
the backend enforces the role).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		client := newAPIClient()
		var (
			bookings []types.Booking
			err      error
		)
		if all {
			bookings, err = client.ListAllBookings(cmd.Context())
		} else {
			bookings, err = client.ListMyBookings(cmd.Context())
		}
		if err != nil {
			return err
		}

		printBookings(bookings, all)
		return nil
	},
}

var bookCmd = &cobra.Command{
	Use:   "book SLOT_ID",
	Short: "Book an open slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slotID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid slot id %q", args[0])
		}

		dash := workflow.NewDashboard(newAPIClient())
		if err := dash.Book(cmd.Context(), slotID); err != nil {
			return errors.New(dash.State().Message)
		}

		state := dash.State()
		fmt.Printf("✓ %s\n", state.Message)
		fmt.Printf("Open slots: %d, your bookings: %d\n", len(state.Slots), len(state.Bookings))
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel BOOKING_ID",
	Short: "Cancel one of your bookings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookingID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid booking id %q", args[0])
		}

		var confirm workflow.Confirmer = &workflow.TerminalConfirmer{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
		}
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			confirm = workflow.AutoConfirmer{}
		}

		dash := workflow.NewDashboard(newAPIClient())
		err = dash.Cancel(cmd.Context(), bookingID, confirm)
		if errors.Is(err, workflow.ErrDeclined) {
			fmt.Println("Cancellation aborted.")
			return nil
		}
		if err != nil {
			return errors.New(dash.State().Message)
		}

		state := dash.State()
		fmt.Printf("✓ %s\n", state.Message)
		fmt.Printf("Open slots: %d, your bookings: %d\n", len(state.Slots), len(state.Bookings))
		return nil
	},
}

func init() {
	bookingsCmd.Flags().Bool("all", false, "List every booking (admin)")
	cancelCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(cancelCmd)
}

func printBookings(bookings []types.Booking, withUser bool) {
	if len(bookings) == 0 {
		fmt.Println("No bookings yet")
		return
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if withUser {
		fmt.Fprintln(w, "ID\tDATE\tSTART\tSTATUS\tPATIENT")
	} else {
		fmt.Fprintln(w, "ID\tDATE\tSTART\tSTATUS")
	}

	for i := range bookings {
		b := &bookings[i]
		start := b.SlotStart.Local()

		status := "Completed"
		if b.Upcoming(now) {
			status = "Booked"
		}

		if withUser {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s <%s>\n",
				b.ID, start.Format("Mon 2006-01-02"), start.Format("15:04"), status, b.UserName, b.UserEmail)
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				b.ID, start.Format("Mon 2006-01-02"), start.Format("15:04"), status)
		}
	}
	w.Flush()
}
