package dashboard

import (
	"net/http"

	"github.com/bookwell/bookwell/internal/rest"
	"github.com/bookwell/bookwell/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

type CountsDTO struct {
	Today    int `json:"today"`
	Upcoming int `json:"upcoming"`
	Pending  int `json:"pending"`
	Total    int `json:"total"`
}

type ViewDTO struct {
	Today    string              `json:"today"`
	Counts   CountsDTO           `json:"counts"`
	Todays   []calendar.EventDTO `json:"todayAppointments"`
	Upcoming []calendar.EventDTO `json:"upcomingAppointments"`
}

type Handler struct {
	dashboard *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

// Get godoc
// @Summary Dashboard
// @Description Today's and upcoming appointments with summary counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} ViewDTO
// @Router /api/dashboard [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	view := h.dashboard.View()
	log.Tracef("dashboard for %s: %+v", view.Today, view.Counts)

	rest.WriteJSON(w, http.StatusOK, ViewToDTO(view))
}

func ViewToDTO(v View) ViewDTO {
	return ViewDTO{
		Today: v.Today.String(),
		Counts: CountsDTO{
			Today:    v.Counts.Today,
			Upcoming: v.Counts.Upcoming,
			Pending:  v.Counts.Pending,
			Total:    v.Counts.Total,
		},
		Todays:   calendar.EventsToDTO(v.Todays),
		Upcoming: calendar.EventsToDTO(v.Upcoming),
	}
}
