package cmd

import (
	"fmt"
	"io"

	"github.com/bookwell/bookwell/pkg/client"
	"github.com/bookwell/bookwell/pkg/worker"
	"github.com/spf13/cobra"
)

var (
	clientsSearch string
	workersSearch string
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer deps.Close()
		printClients(cmd.OutOrStdout(), deps.ClientService.List(clientsSearch))
		return nil
	},
}

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "List workers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := loadDependencies()
		if err != nil {
			return err
		}
		defer deps.Close()
		printWorkers(cmd.OutOrStdout(), deps.WorkerService.List(workersSearch))
		return nil
	},
}

func init() {
	clientsCmd.Flags().StringVar(&clientsSearch, "search", "", "Case-insensitive match on name or email")
	workersCmd.Flags().StringVar(&workersSearch, "search", "", "Case-insensitive match on name, specialization or email")
}

func printClients(w io.Writer, v client.ListView) {
	fmt.Fprintf(w, "Active: %d  New: %d  Inactive: %d\n", v.Counts.Active, v.Counts.New, v.Counts.Inactive)
	if v.Empty() {
		fmt.Fprintln(w, "No clients found.")
		return
	}
	for _, c := range v.Clients {
		next := "-"
		if c.NextAppointment != nil {
			next = c.NextAppointment.String()
		}
		fmt.Fprintf(w, "%-18s %-26s %-9s next: %s\n", c.Name, c.Email, c.Status, next)
	}
}

func printWorkers(w io.Writer, v worker.ListView) {
	fmt.Fprintf(w, "Available: %d  Busy: %d  Offline: %d\n", v.Counts.Available, v.Counts.Busy, v.Counts.Offline)
	if v.Empty() {
		fmt.Fprintln(w, "No workers found.")
		return
	}
	for _, wk := range v.Workers {
		fmt.Fprintf(w, "%-18s %-22s %-9s %.1f/5\n", wk.Name, wk.Specialization, wk.Status, wk.Rating)
	}
}
