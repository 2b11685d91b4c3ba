package cmd

import (
	"fmt"
	"io"

	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/spf13/cobra"
)

var eventsDate string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print the appointments of a day",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().StringVar(&eventsDate, "date", "", "Date as YYYY-MM-DD (defaults to today)")
}

func runEvents(cmd *cobra.Command, args []string) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()

	key := deps.CalendarService.Today()
	if eventsDate != "" {
		key, err = appointment.ParseDateKey(eventsDate)
		if err != nil {
			return err
		}
	}

	printDay(cmd.OutOrStdout(), deps.CalendarService.Day(key))
	return nil
}

func printDay(w io.Writer, d calendar.DayDetail) {
	fmt.Fprintln(w, d.Label)
	if d.Empty() {
		fmt.Fprintln(w, "No appointments scheduled for this day")
		return
	}
	for _, e := range d.Events {
		fmt.Fprintf(w, "%s  %-20s %-16s with %-14s %3d min  %s\n",
			e.Time, e.Title, e.Client, e.Worker, e.Duration, e.Status)
	}
}
