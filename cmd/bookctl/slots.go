package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nordclinic/bookctl/pkg/types"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List open appointment slots",
	Long: `List slots that are still open for booking.

Without flags the backend applies its default window, the next 7 days.

Examples:
  bookctl slots
  bookctl slots --from 2026-09-01 --to 2026-09-05`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")

		var from, to time.Time
		if fromStr != "" || toStr != "" {
			if fromStr == "" || toStr == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			var err error
			if from, err = time.Parse("2006-01-02", fromStr); err != nil {
				return fmt.Errorf("invalid --from date %q (want YYYY-MM-DD)", fromStr)
			}
			if to, err = time.Parse("2006-01-02", toStr); err != nil {
				return fmt.Errorf("invalid --to date %q (want YYYY-MM-DD)", toStr)
			}
		}

		client := newAPIClient()
		slots, err := client.ListSlots(cmd.Context(), from, to)
		if err != nil {
			return err
		}

		printSlots(slots)
		return nil
	},
}

func init() {
	slotsCmd.Flags().String("from", "", "Window start, YYYY-MM-DD")
	slotsCmd.Flags().String("to", "", "Window end, YYYY-MM-DD")

	rootCmd.AddCommand(slotsCmd)
}

func printSlots(slots []types.Slot) {
	if len(slots) == 0 {
		fmt.Println("No available slots")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTART\tEND")
	for _, slot := range slots {
		start := slot.StartAt.Local()
		end := slot.EndAt.Local()
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			slot.ID,
			start.Format("Mon 2006-01-02"),
			start.Format("15:04"),
			end.Format("15:04"),
		)
	}
	w.Flush()
}
