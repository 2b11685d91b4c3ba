package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookwell/bookwell/internal/rest"
	"github.com/bookwell/bookwell/pkg/appointment"
	"github.com/bookwell/bookwell/pkg/calendar"
	"github.com/bookwell/bookwell/pkg/client"
	"github.com/bookwell/bookwell/pkg/dashboard"
	"github.com/bookwell/bookwell/pkg/worker"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SessionDTO struct {
	Id           string `json:"id"`
	ActiveTab    string `json:"activeTab"`
	SelectedDate string `json:"selectedDate"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	ClientSearch string `json:"clientSearch"`
	WorkerSearch string `json:"workerSearch"`
}

type CalendarViewDTO struct {
	Month    calendar.MonthDTO     `json:"month"`
	Selected calendar.DayDetailDTO `json:"selected"`
}

type SettingsViewDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

type ContentDTO struct {
	Tab       string             `json:"tab"`
	Dashboard *dashboard.ViewDTO `json:"dashboard,omitempty"`
	Calendar  *CalendarViewDTO   `json:"calendar,omitempty"`
	Clients   *client.ListDTO    `json:"clients,omitempty"`
	Workers   *worker.ListDTO    `json:"workers,omitempty"`
	Settings  *SettingsViewDTO   `json:"settings,omitempty"`
}

type selectTabRequest struct {
	Tab string `json:"tab"`
}

type selectDateRequest struct {
	Date string `json:"date"`
}

type shiftMonthRequest struct {
	Delta int `json:"delta"`
}

type searchRequest struct {
	View string `json:"view"`
	Term string `json:"term"`
}

type Handler struct {
	sessions *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

// Create godoc
// @Summary Start a UI session
// @Tags Session
// @Produce json
// @Success 201 {object} SessionDTO
// @Router /api/session [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create(r.Context())
	rest.WriteJSON(w, http.StatusCreated, SessionToDTO(sess))
}

// Get godoc
// @Summary Get session state
// @Tags Session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionDTO
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SessionToDTO(sess))
}

// Delete godoc
// @Summary Close a UI session
// @Tags Session
// @Param id path string true "Session id"
// @Success 204
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Close(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectTab godoc
// @Summary Switch the active tab
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionDTO
// @Failure 400 {object} rest.ErrorResponse "Unknown tab"
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id}/tab [put]
func (h *Handler) SelectTab(w http.ResponseWriter, r *http.Request) {
	var req selectTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}
	tab, err := ParseTab(req.Tab)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Unknown tab", "'tab' must be one of dashboard, calendar, clients, workers, settings")
		return
	}

	sess, err := h.sessions.SelectTab(r.Context(), mux.Vars(r)["id"], tab)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SessionToDTO(sess))
}

// SelectDate godoc
// @Summary Select a calendar date
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid date"
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id}/date [put]
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req selectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}
	date, err := appointment.ParseDateKey(req.Date)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}

	sess, err := h.sessions.SelectDate(r.Context(), mux.Vars(r)["id"], date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SessionToDTO(sess))
}

// ShiftMonth godoc
// @Summary Move the calendar's reference month
// @Description delta -1 shows the previous month, 1 the next one
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionDTO
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id}/month [put]
func (h *Handler) ShiftMonth(w http.ResponseWriter, r *http.Request) {
	var req shiftMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}

	sess, err := h.sessions.ShiftMonth(r.Context(), mux.Vars(r)["id"], req.Delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SessionToDTO(sess))
}

// SetSearch godoc
// @Summary Set the search term of the clients or workers list
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} SessionDTO
// @Failure 400 {object} rest.ErrorResponse "View has no search"
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id}/search [put]
func (h *Handler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body format", err.Error())
		return
	}

	sess, err := h.sessions.SetSearch(r.Context(), mux.Vars(r)["id"], Tab(req.View), req.Term)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, SessionToDTO(sess))
}

// Render godoc
// @Summary Content of the active tab
// @Tags Session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} ContentDTO
// @Failure 404 {object} rest.ErrorResponse "Session not found"
// @Router /api/session/{id}/view [get]
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	content, err := h.sessions.Render(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ContentToDTO(content))
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		rest.WriteError(w, http.StatusNotFound, "Session not found", "")
	case errors.Is(err, ErrUnknownTab), errors.Is(err, ErrUnknownView):
		rest.WriteError(w, http.StatusBadRequest, "Invalid view", err.Error())
	case errors.Is(err, calendar.ErrInvalidYear):
		rest.WriteError(w, http.StatusBadRequest, "Invalid month", err.Error())
	default:
		log.Errorf("session request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func SessionToDTO(s Session) SessionDTO {
	return SessionDTO{
		Id:           s.Id,
		ActiveTab:    string(s.ActiveTab),
		SelectedDate: s.SelectedDate.String(),
		Year:         s.Year,
		Month:        int(s.Month),
		ClientSearch: s.ClientSearch,
		WorkerSearch: s.WorkerSearch,
	}
}

func ContentToDTO(c Content) ContentDTO {
	dto := ContentDTO{Tab: string(c.Tab)}
	if c.Dashboard != nil {
		view := dashboard.ViewToDTO(*c.Dashboard)
		dto.Dashboard = &view
	}
	if c.Calendar != nil {
		dto.Calendar = &CalendarViewDTO{
			Month:    calendar.MonthToDTO(c.Calendar.Month),
			Selected: calendar.DayDetailToDTO(c.Calendar.Selected),
		}
	}
	if c.Clients != nil {
		view := client.ListViewToDTO(*c.Clients)
		dto.Clients = &view
	}
	if c.Workers != nil {
		view := worker.ListViewToDTO(*c.Workers)
		dto.Workers = &view
	}
	if c.Settings != nil {
		dto.Settings = &SettingsViewDTO{
			Title:       c.Settings.Title,
			Description: c.Settings.Description,
			Message:     c.Settings.Message,
		}
	}
	return dto
}
