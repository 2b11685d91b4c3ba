package app

import (
	"github.com/bookwell/bookwell/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Shell
	r.HandleFunc("/api/shell", deps.ShellHandler.Get).Methods("GET")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.Get).Methods("GET")

	// Calendar
	r.HandleFunc("/api/calendar/month", deps.CalendarHandler.GetMonth).Methods("GET")
	r.HandleFunc("/api/calendar/day", deps.CalendarHandler.GetDay).Methods("GET")
	r.HandleFunc("/api/calendar/export.ics", deps.CalendarHandler.ExportICS).Methods("GET")

	// Lists
	r.HandleFunc("/api/clients", deps.ClientHandler.List).Methods("GET")
	r.HandleFunc("/api/workers", deps.WorkerHandler.List).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats/tabs", deps.TabStats.Get).Methods("GET")

	// Session
	r.HandleFunc("/api/session", deps.SessionHandler.Create).Methods("POST")
	r.HandleFunc("/api/session/{id}", deps.SessionHandler.Get).Methods("GET")
	r.HandleFunc("/api/session/{id}", deps.SessionHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/session/{id}/tab", deps.SessionHandler.SelectTab).Methods("PUT")
	r.HandleFunc("/api/session/{id}/date", deps.SessionHandler.SelectDate).Methods("PUT")
	r.HandleFunc("/api/session/{id}/month", deps.SessionHandler.ShiftMonth).Methods("PUT")
	r.HandleFunc("/api/session/{id}/search", deps.SessionHandler.SetSearch).Methods("PUT")
	r.HandleFunc("/api/session/{id}/view", deps.SessionHandler.Render).Methods("GET")
}
