package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/spf13/cobra"
)

var (
	gridYear  int
	gridMonth int
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print a month grid",
	Long: `Prints the Sunday-start month grid. Days with appointments carry a '*',
today is wrapped in brackets and days of adjacent months are in parentheses.`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().IntVar(&gridYear, "year", 0, "Year (defaults to the current year)")
	gridCmd.Flags().IntVar(&gridMonth, "month", 0, "Month 1-12 (defaults to the current month)")
}

func runGrid(cmd *cobra.Command, args []string) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()

	year, month := deps.CalendarService.CurrentMonth()
	if gridYear != 0 {
		year = gridYear
	}
	if gridMonth != 0 {
		month = time.Month(gridMonth)
	}

	m, err := deps.CalendarService.Month(year, month)
	if err != nil {
		return err
	}
	printGrid(cmd.OutOrStdout(), m)
	return nil
}

func printGrid(w io.Writer, m calendar.Month) {
	fmt.Fprintln(w, m.Title)
	for _, name := range m.Weekdays {
		fmt.Fprintf(w, "%6s", name)
	}
	fmt.Fprintln(w)
	for _, week := range m.Weeks() {
		for _, d := range week {
			fmt.Fprintf(w, "%6s", gridCell(d))
		}
		fmt.Fprintln(w)
	}
}

func gridCell(d calendar.Day) string {
	cell := fmt.Sprintf("%d", d.DayOfMonth)
	switch {
	case d.IsToday:
		cell = "[" + cell + "]"
	case !d.InMonth:
		cell = "(" + cell + ")"
	}
	if d.HasEvents {
		cell += "*"
	}
	return cell
}
