package calendar

import (
	"time"

	"github.com/bookwell/bookwell/internal/utils"
	"github.com/bookwell/bookwell/pkg/appointment"
)

type Service struct {
	index *appointment.Index
	clock utils.Clock
	loc   *time.Location
}

func NewService(index *appointment.Index, clock utils.Clock, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{index: index, clock: clock, loc: loc}
}

// Today is the current date in the service's location.
func (s *Service) Today() appointment.DateKey {
	return appointment.DateKeyOf(s.clock.Now().In(s.loc))
}

// CurrentMonth is the month containing Today.
func (s *Service) CurrentMonth() (int, time.Month) {
	now := s.clock.Now().In(s.loc)
	return now.Year(), now.Month()
}

func (s *Service) Month(year int, month time.Month) (Month, error) {
	return BuildMonth(year, month, s.Today(), s.index)
}

func (s *Service) Day(key appointment.DateKey) DayDetail {
	return BuildDayDetail(key, s.index)
}

func (s *Service) ExportICS() (string, error) {
	return appointment.ExportICS(s.index.All(), s.loc, s.clock.Now())
}
