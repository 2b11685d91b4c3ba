package calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bookwell/bookwell/internal/rest"
	"github.com/bookwell/bookwell/pkg/appointment"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	calendar *Service
}

type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Client      string `json:"client"`
	Worker      string `json:"worker"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	StatusClass string `json:"statusClass"`
}

type DayDTO struct {
	Date       string `json:"date"`
	DayOfMonth int    `json:"dayOfMonth"`
	InMonth    bool   `json:"inMonth"`
	IsToday    bool   `json:"isToday"`
	HasEvents  bool   `json:"hasEvents"`
}

type MonthDTO struct {
	Year     int        `json:"year"`
	Month    int        `json:"month"`
	Title    string     `json:"title"`
	Weekdays []string   `json:"weekdays"`
	Weeks    [][]DayDTO `json:"weeks"`
	Prev     MonthRef   `json:"prev"`
	Next     MonthRef   `json:"next"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type DayDetailDTO struct {
	Date   string     `json:"date"`
	Label  string     `json:"label"`
	Events []EventDTO `json:"events"`
	Empty  bool       `json:"empty"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

// GetMonth godoc
// @Summary Month grid
// @Description Sunday-start grid of the requested month padded to whole weeks. Defaults to the current month.
// @Tags Calendar
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} MonthDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid year or month"
// @Router /api/calendar/month [get]
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, month := h.calendar.CurrentMonth()
	query := r.URL.Query()

	if s := query.Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid year", "'year' must be an integer")
			return
		}
		year = y
	}
	if s := query.Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid month", "'month' must be an integer between 1 and 12")
			return
		}
		month = time.Month(m)
	}

	grid, err := h.calendar.Month(year, month)
	if errors.Is(err, ErrInvalidYear) {
		rest.WriteError(w, http.StatusBadRequest, "Invalid year", err.Error())
		return
	}
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid month", err.Error())
		return
	}
	log.Tracef("month grid %s: %d days", grid.Title, len(grid.Days))

	rest.WriteJSON(w, http.StatusOK, MonthToDTO(grid))
}

// GetDay godoc
// @Summary Events of a day
// @Tags Calendar
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} DayDetailDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid date"
// @Router /api/calendar/day [get]
func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	key, err := appointment.ParseDateKey(r.URL.Query().Get("date"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}

	rest.WriteJSON(w, http.StatusOK, DayDetailToDTO(h.calendar.Day(key)))
}

// ExportICS godoc
// @Summary iCalendar feed of all appointments
// @Tags Calendar
// @Produce text/calendar
// @Success 200 {string} string
// @Router /api/calendar/export.ics [get]
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	feed, err := h.calendar.ExportICS()
	if err != nil {
		log.Errorf("failed to export calendar: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="appointments.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		log.Errorf("failed to write calendar feed: %v", err)
	}
}

func EventToDTO(e appointment.Event) EventDTO {
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Client:      e.Client,
		Worker:      e.Worker,
		Date:        e.Date.String(),
		Time:        e.Time.String(),
		Duration:    e.Duration,
		Status:      string(e.Status),
		StatusClass: e.Status.BadgeClass(),
	}
}

func EventsToDTO(events []appointment.Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, EventToDTO(e))
	}
	return dtos
}

func MonthToDTO(m Month) MonthDTO {
	weeks := make([][]DayDTO, 0, len(m.Days)/daysPerWeek)
	for _, week := range m.Weeks() {
		row := make([]DayDTO, 0, daysPerWeek)
		for _, d := range week {
			row = append(row, DayDTO{
				Date:       d.Key.String(),
				DayOfMonth: d.DayOfMonth,
				InMonth:    d.InMonth,
				IsToday:    d.IsToday,
				HasEvents:  d.HasEvents,
			})
		}
		weeks = append(weeks, row)
	}
	prevYear, prevMonth := ShiftMonth(m.Year, m.Month, -1)
	nextYear, nextMonth := ShiftMonth(m.Year, m.Month, 1)

	return MonthDTO{
		Year:     m.Year,
		Month:    int(m.Month),
		Title:    m.Title,
		Weekdays: m.Weekdays,
		Weeks:    weeks,
		Prev:     MonthRef{Year: prevYear, Month: int(prevMonth)},
		Next:     MonthRef{Year: nextYear, Month: int(nextMonth)},
	}
}

func DayDetailToDTO(d DayDetail) DayDetailDTO {
	return DayDetailDTO{
		Date:   d.Key.String(),
		Label:  d.Label,
		Events: EventsToDTO(d.Events),
		Empty:  d.Empty(),
	}
}
