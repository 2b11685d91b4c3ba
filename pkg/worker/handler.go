package worker

import (
	"net/http"

	"github.com/bookwell/bookwell/internal/rest"
	log "github.com/sirupsen/logrus"
)

type WorkerDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Specialization    string  `json:"specialization"`
	Rating            float64 `json:"rating"`
	TotalClients      int     `json:"totalClients"`
	TodayAppointments int     `json:"todayAppointments"`
	WeeklyHours       int     `json:"weeklyHours"`
	Status            string  `json:"status"`
	StatusClass       string  `json:"statusClass"`
	IndicatorClass    string  `json:"indicatorClass"`
}

type StatusCountsDTO struct {
	Available int `json:"available"`
	Busy      int `json:"busy"`
	Offline   int `json:"offline"`
}

type ListDTO struct {
	Search  string          `json:"search"`
	Workers []WorkerDTO     `json:"workers"`
	Counts  StatusCountsDTO `json:"counts"`
	Empty   bool            `json:"empty"`
}

type Handler struct {
	workers *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

// List godoc
// @Summary List workers
// @Description Workers whose name, specialization or email contains the search term (case-insensitive)
// @Tags Workers
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} ListDTO
// @Router /api/workers [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	view := h.workers.List(term)
	log.Tracef("workers search %q: %d results", term, len(view.Workers))

	rest.WriteJSON(w, http.StatusOK, ListViewToDTO(view))
}

func WorkerToDTO(wk Worker) WorkerDTO {
	return WorkerDTO{
		ID:                wk.ID,
		Name:              wk.Name,
		Email:             wk.Email,
		Phone:             wk.Phone,
		Specialization:    wk.Specialization,
		Rating:            wk.Rating,
		TotalClients:      wk.TotalClients,
		TodayAppointments: wk.TodayAppointments,
		WeeklyHours:       wk.WeeklyHours,
		Status:            string(wk.Status),
		StatusClass:       wk.Status.BadgeClass(),
		IndicatorClass:    wk.Status.IndicatorClass(),
	}
}

func ListViewToDTO(v ListView) ListDTO {
	workers := make([]WorkerDTO, 0, len(v.Workers))
	for _, wk := range v.Workers {
		workers = append(workers, WorkerToDTO(wk))
	}
	return ListDTO{
		Search:  v.Term,
		Workers: workers,
		Counts: StatusCountsDTO{
			Available: v.Counts.Available,
			Busy:      v.Counts.Busy,
			Offline:   v.Counts.Offline,
		},
		Empty: v.Empty(),
	}
}
