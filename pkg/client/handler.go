package client

import (
	"net/http"

	"github.com/bookwell/bookwell/internal/rest"
	log "github.com/sirupsen/logrus"
)

type ClientDTO struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	LastAppointment   string `json:"lastAppointment,omitempty"`
	NextAppointment   string `json:"nextAppointment,omitempty"`
	TotalAppointments int    `json:"totalAppointments"`
	Status            string `json:"status"`
	StatusClass       string `json:"statusClass"`
}

type StatusCountsDTO struct {
	Active   int `json:"active"`
	New      int `json:"new"`
	Inactive int `json:"inactive"`
}

type ListDTO struct {
	Search  string          `json:"search"`
	Clients []ClientDTO     `json:"clients"`
	Counts  StatusCountsDTO `json:"counts"`
	Empty   bool            `json:"empty"`
}

type Handler struct {
	clients *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

// List godoc
// @Summary List clients
// @Description Clients whose name or email contains the search term (case-insensitive)
// @Tags Clients
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} ListDTO
// @Router /api/clients [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	view := h.clients.List(term)
	log.Tracef("clients search %q: %d results", term, len(view.Clients))

	rest.WriteJSON(w, http.StatusOK, ListViewToDTO(view))
}

func ClientToDTO(c Client) ClientDTO {
	dto := ClientDTO{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		Phone:             c.Phone,
		TotalAppointments: c.TotalAppointments,
		Status:            string(c.Status),
		StatusClass:       c.Status.BadgeClass(),
	}
	if c.LastAppointment != nil {
		dto.LastAppointment = c.LastAppointment.String()
	}
	if c.NextAppointment != nil {
		dto.NextAppointment = c.NextAppointment.String()
	}
	return dto
}

func ListViewToDTO(v ListView) ListDTO {
	clients := make([]ClientDTO, 0, len(v.Clients))
	for _, c := range v.Clients {
		clients = append(clients, ClientToDTO(c))
	}
	return ListDTO{
		Search:  v.Term,
		Clients: clients,
		Counts: StatusCountsDTO{
			Active:   v.Counts.Active,
			New:      v.Counts.New,
			Inactive: v.Counts.Inactive,
		},
		Empty: v.Empty(),
	}
}
